package ktx

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Encode serializes a mip chain into a KTX 1.0 stream.
// The mipmaps slice must be ordered from largest to smallest and each
// payload must match the block-compressed size of its level.
func Encode(w io.Writer, format Format, width, height int, mipmaps [][]byte) error {
	if len(mipmaps) == 0 {
		return ErrEmptyMipmaps
	}

	glInternal, ok := glInternalFormatFor(format)
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidFormat, format)
	}

	w32, err := u32FromInt(width)
	if err != nil {
		return err
	}
	h32, err := u32FromInt(height)
	if err != nil {
		return err
	}
	mip32, err := u32FromInt(len(mipmaps))
	if err != nil {
		return err
	}

	for i, mip := range mipmaps {
		mipW := mipDimension(width, i)
		mipH := mipDimension(height, i)
		expected := expectedDataLength(format, mipW, mipH)
		if expected <= 0 {
			return fmt.Errorf("%w: %s", ErrInvalidFormat, format)
		}
		if len(mip) != expected {
			return fmt.Errorf("%w: mipmap %d: expected %d, got %d",
				ErrMipmapSizeMismatch, i, expected, len(mip))
		}
	}

	var hdr [HeaderSize]byte
	copy(hdr[:12], identifier[:])
	put := func(off int, v uint32) {
		binary.LittleEndian.PutUint32(hdr[off:off+4], v)
	}
	put(12, endiannessLittle)
	put(16, 0) // glType, compressed
	put(20, 1) // glTypeSize
	put(24, 0) // glFormat, compressed
	put(28, glInternal)
	put(32, baseInternalFormat(format))
	put(36, w32)
	put(40, h32)
	put(44, 0) // pixelDepth, 2D only
	put(48, 0) // numberOfArrayElements
	put(52, 1) // numberOfFaces
	put(56, mip32)
	put(60, 0) // no key-value data

	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteHeader, err)
	}

	var prefix [4]byte
	for i, mip := range mipmaps {
		size32, err := u32FromInt(len(mip))
		if err != nil {
			return err
		}
		binary.LittleEndian.PutUint32(prefix[:], size32)
		if _, err := w.Write(prefix[:]); err != nil {
			return fmt.Errorf("%w: mipmap %d: %v", ErrWriteMipmap, i, err)
		}
		if _, err := w.Write(mip); err != nil {
			return fmt.Errorf("%w: mipmap %d: %v", ErrWriteMipmap, i, err)
		}
	}

	return nil
}

// WriteFile writes a KTX file from pre-encoded mip payloads.
func WriteFile(path string, format Format, width, height int, mipmaps [][]byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrCreateFile, path, err)
	}
	defer func() { _ = f.Close() }()

	return Encode(f, format, width, height, mipmaps)
}
