package ktx

import (
	"encoding/binary"
	"fmt"
)

// Mipmap locates one mip level inside Texture.Data.
type Mipmap struct {
	// Offset and Size are byte positions into Texture.Data, not the file.
	Offset int
	Size   int
	// Width and Height are the extents of this level. Levels past
	// log2(min(width,height)) record zero extents; see readMipmaps.
	Width  uint32
	Height uint32
}

// readMipmaps walks the length-prefixed mip sequence following the header
// and key-value block, packing all payloads into one contiguous buffer.
//
// Extents are halved by integer division with no floor at 1, so a chain
// longer than the base extents allow records zero widths or heights for its
// tail levels. The source slice is never retained.
func readMipmaps(src []byte, width, height, levels uint32) ([]byte, []Mipmap, error) {
	mipmaps := make([]Mipmap, 0, levels)
	var data []byte

	cursor := 0
	mipW, mipH := width, height
	for i := uint32(0); i < levels; i++ {
		if len(src)-cursor < 4 {
			return nil, nil, fmt.Errorf("%w: level %d: length prefix past end of data",
				ErrTruncatedMipData, i)
		}
		size32 := binary.LittleEndian.Uint32(src[cursor:])
		cursor += 4

		// compare before converting: on 32-bit ints a prefix >= 2^31 would
		// wrap negative and slip past the bounds check
		if uint64(size32) > uint64(len(src)-cursor) {
			return nil, nil, fmt.Errorf("%w: level %d: %d byte payload, %d remaining",
				ErrTruncatedMipData, i, size32, len(src)-cursor)
		}
		size := int(size32)

		mipmaps = append(mipmaps, Mipmap{Offset: len(data), Size: size, Width: mipW, Height: mipH})
		data = append(data, src[cursor:cursor+size]...)
		cursor += size

		mipW /= 2
		mipH /= 2
	}

	return data, mipmaps, nil
}

// mipDimension calculates the dimension of a mipmap level.
func mipDimension(base, level int) int {
	result := base >> level
	if result < 1 {
		return 1
	}

	return result
}
