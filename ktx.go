package ktx

import (
	"encoding/binary"
	"fmt"

	"github.com/woozymasta/bcn"
)

// HeaderSize is the fixed size of the KTX 1.0 header in bytes.
const HeaderSize = 64

// endiannessLittle is the value of the endianness header field when the
// file was written on a little-endian machine. The field is decoded but no
// byte swapping is ever performed; files must share the decoder's byte order.
const endiannessLittle = 0x04030201

// identifier is the 12-byte magic sequence opening every KTX 1.0 file.
var identifier = [12]byte{0xAB, 0x4B, 0x54, 0x58, 0x20, 0x31, 0x31, 0xBB, 0x0D, 0x0A, 0x1A, 0x0A}

// Header is the fixed 64-byte KTX 1.0 file header.
type Header struct {
	Identifier            [12]byte
	Endianness            uint32
	GLType                uint32
	GLTypeSize            uint32
	GLFormat              uint32
	GLInternalFormat      uint32
	GLBaseInternalFormat  uint32
	PixelWidth            uint32
	PixelHeight           uint32
	PixelDepth            uint32
	NumberOfArrayElements uint32
	NumberOfFaces         uint32
	NumberOfMipmapLevels  uint32
	BytesOfKeyValueData   uint32
}

// DecodeHeader decodes the fixed KTX header from the start of data.
func DecodeHeader(data []byte) (*Header, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes, need %d", ErrTruncatedFile, len(data), HeaderSize)
	}

	h := &Header{}
	copy(h.Identifier[:], data[:12])
	if h.Identifier != identifier {
		return nil, fmt.Errorf("%w: % X", ErrInvalidMagic, h.Identifier)
	}

	h.Endianness = binary.LittleEndian.Uint32(data[12:16])
	h.GLType = binary.LittleEndian.Uint32(data[16:20])
	h.GLTypeSize = binary.LittleEndian.Uint32(data[20:24])
	h.GLFormat = binary.LittleEndian.Uint32(data[24:28])
	h.GLInternalFormat = binary.LittleEndian.Uint32(data[28:32])
	h.GLBaseInternalFormat = binary.LittleEndian.Uint32(data[32:36])
	h.PixelWidth = binary.LittleEndian.Uint32(data[36:40])
	h.PixelHeight = binary.LittleEndian.Uint32(data[40:44])
	h.PixelDepth = binary.LittleEndian.Uint32(data[44:48])
	h.NumberOfArrayElements = binary.LittleEndian.Uint32(data[48:52])
	h.NumberOfFaces = binary.LittleEndian.Uint32(data[52:56])
	h.NumberOfMipmapLevels = binary.LittleEndian.Uint32(data[56:60])
	h.BytesOfKeyValueData = binary.LittleEndian.Uint32(data[60:64])

	return h, nil
}

// Texture is one fully decoded KTX file. It is immutable after Decode and
// owns Data and Mipmaps exclusively.
type Texture struct {
	// Width is the base level width, taken verbatim from the header.
	Width uint32
	// Height and Depth are the base level extents, floored to 1.
	Height uint32
	Depth  uint32

	MipLevels     uint32
	ArrayElements uint32
	Faces         uint32

	// Target is the image dimensionality derived from the raw header.
	Target ImageType
	// Format is the resolved Vulkan format identifier.
	Format Format

	// Data holds all mip payloads packed contiguously, mip 0 first.
	Data []byte
	// Mipmaps gives each level's byte range into Data plus its extents.
	Mipmaps []Mipmap

	// previewOpts are the BCn decode options supplied at open time; nil
	// means defaults. Set once before the texture is handed out.
	previewOpts *bcn.DecodeOptions
}

// Decode parses a complete KTX 1.0 file held in memory.
//
// The decode is a pure synchronous transform: it either produces a fully
// populated Texture or fails with one of the package sentinel errors, never
// a partial result. Independent decodes may run concurrently.
func Decode(data []byte) (*Texture, error) {
	header, err := DecodeHeader(data)
	if err != nil {
		return nil, err
	}

	format, err := resolveFormat(header)
	if err != nil {
		return nil, err
	}

	t := &Texture{
		Width:         header.PixelWidth,
		Height:        max(header.PixelHeight, 1),
		Depth:         max(header.PixelDepth, 1),
		MipLevels:     max(header.NumberOfMipmapLevels, 1),
		ArrayElements: max(header.NumberOfArrayElements, 1),
		Faces:         max(header.NumberOfFaces, 1),
		Target:        imageTarget(header),
		Format:        format,
	}

	if t.ArrayElements > 1 || t.Faces > 1 {
		return nil, fmt.Errorf("%w: %d array elements, %d faces",
			ErrUnsupportedTextureLayout, header.NumberOfArrayElements, header.NumberOfFaces)
	}

	offset := HeaderSize + int(header.BytesOfKeyValueData)
	if offset > len(data) {
		return nil, fmt.Errorf("%w: key-value block runs past end of file", ErrTruncatedMipData)
	}

	t.Data, t.Mipmaps, err = readMipmaps(data[offset:], t.Width, t.Height, t.MipLevels)
	if err != nil {
		return nil, err
	}

	return t, nil
}
