package ktx

import "fmt"

// Format is a Vulkan format identifier (VkFormat enum value).
type Format uint32

// Vulkan block-compressed formats resolvable from a KTX file.
const (
	FormatUnknown      Format = 0
	FormatBC1RGBUnorm  Format = 131
	FormatBC1RGBSRGB   Format = 132
	FormatBC1RGBAUnorm Format = 133
	FormatBC1RGBASRGB  Format = 134
	FormatBC2Unorm     Format = 135
	FormatBC2SRGB      Format = 136
	FormatBC3Unorm     Format = 137
	FormatBC3SRGB      Format = 138
	FormatBC4Unorm     Format = 139
	FormatBC4Snorm     Format = 140
	FormatBC5Unorm     Format = 141
	FormatBC5Snorm     Format = 142
	FormatBC6HUfloat   Format = 143
	FormatBC6HSfloat   Format = 144
	FormatBC7Unorm     Format = 145
	FormatBC7SRGB      Format = 146
)

// String returns the Vulkan-style name of the format.
func (f Format) String() string {
	switch f {
	case FormatBC1RGBUnorm:
		return "BC1_RGB_UNORM"
	case FormatBC1RGBSRGB:
		return "BC1_RGB_SRGB"
	case FormatBC1RGBAUnorm:
		return "BC1_RGBA_UNORM"
	case FormatBC1RGBASRGB:
		return "BC1_RGBA_SRGB"
	case FormatBC2Unorm:
		return "BC2_UNORM"
	case FormatBC2SRGB:
		return "BC2_SRGB"
	case FormatBC3Unorm:
		return "BC3_UNORM"
	case FormatBC3SRGB:
		return "BC3_SRGB"
	case FormatBC4Unorm:
		return "BC4_UNORM"
	case FormatBC4Snorm:
		return "BC4_SNORM"
	case FormatBC5Unorm:
		return "BC5_UNORM"
	case FormatBC5Snorm:
		return "BC5_SNORM"
	case FormatBC6HUfloat:
		return "BC6H_UFLOAT"
	case FormatBC6HSfloat:
		return "BC6H_SFLOAT"
	case FormatBC7Unorm:
		return "BC7_UNORM"
	case FormatBC7SRGB:
		return "BC7_SRGB"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint32(f))
	}
}

// ImageType is a Vulkan image dimensionality (VkImageType enum value).
type ImageType uint32

const (
	ImageType1D ImageType = 0
	ImageType2D ImageType = 1
	ImageType3D ImageType = 2
)

// String returns the Vulkan-style name of the image type.
func (t ImageType) String() string {
	switch t {
	case ImageType1D:
		return "IMAGE_TYPE_1D"
	case ImageType2D:
		return "IMAGE_TYPE_2D"
	case ImageType3D:
		return "IMAGE_TYPE_3D"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint32(t))
	}
}

// formatPair couples the linear and sRGB variants of a compressed format.
// srgb is FormatUnknown where OpenGL defines no sRGB counterpart.
type formatPair struct {
	linear Format
	srgb   Format
}

// glToVkFormats maps OpenGL compressed internal format codes to Vulkan
// formats. ETC2 and ASTC codes are deliberately absent (the renderer only
// requires the textureCompressionBC feature).
var glToVkFormats = map[uint32]formatPair{
	// S3TC
	0x83F0: {linear: FormatBC1RGBUnorm, srgb: FormatBC1RGBSRGB},
	0x83F1: {linear: FormatBC1RGBAUnorm, srgb: FormatBC1RGBASRGB},
	0x83F2: {linear: FormatBC2Unorm, srgb: FormatBC2SRGB},
	0x83F3: {linear: FormatBC3Unorm, srgb: FormatBC3SRGB},

	// RGTC
	0x8DBB: {linear: FormatBC4Unorm},
	0x8DBC: {linear: FormatBC4Snorm},
	0x8DBD: {linear: FormatBC5Unorm},
	0x8DBE: {linear: FormatBC5Snorm},

	// BPTC
	0x8E8F: {linear: FormatBC6HUfloat},
	0x8E8E: {linear: FormatBC6HSfloat},
	0x8E8C: {linear: FormatBC7Unorm},
	0x8E8D: {linear: FormatBC7SRGB},
}

// resolveFormat maps the header's internal format code to a Vulkan format.
//
// The linear member of a (linear, sRGB) pair is always selected; sRGB
// selection is a stated simplification of this decoder, and the pair kept in
// the table is the seam for enabling it later.
func resolveFormat(h *Header) (Format, error) {
	if h.GLType != 0 || h.GLTypeSize != 1 || h.GLFormat != 0 {
		return FormatUnknown, fmt.Errorf("%w: glType=%d glTypeSize=%d glFormat=%d",
			ErrUnsupportedPixelFormat, h.GLType, h.GLTypeSize, h.GLFormat)
	}

	pair, ok := glToVkFormats[h.GLInternalFormat]
	if !ok {
		return FormatUnknown, fmt.Errorf("%w: glInternalFormat=0x%04X",
			ErrUnknownCompressionFormat, h.GLInternalFormat)
	}

	return pair.linear, nil
}

// glInternalFormatFor is the reverse lookup used by the writer.
func glInternalFormatFor(f Format) (uint32, bool) {
	if f == FormatUnknown {
		return 0, false
	}
	for gl, pair := range glToVkFormats {
		if pair.linear == f || pair.srgb == f {
			return gl, true
		}
	}
	return 0, false
}

// OpenGL base internal formats recorded in written headers.
const (
	glRed  = 0x1903
	glRG   = 0x8227
	glRGB  = 0x1907
	glRGBA = 0x1908
)

// baseInternalFormat returns the uncompressed base format matching f.
func baseInternalFormat(f Format) uint32 {
	switch f {
	case FormatBC4Unorm, FormatBC4Snorm:
		return glRed
	case FormatBC5Unorm, FormatBC5Snorm:
		return glRG
	case FormatBC1RGBUnorm, FormatBC1RGBSRGB, FormatBC6HUfloat, FormatBC6HSfloat:
		return glRGB
	default:
		return glRGBA
	}
}

// imageTarget classifies the image dimensionality.
// It reads the raw header fields, not the clamped texture extents.
func imageTarget(h *Header) ImageType {
	if h.PixelHeight == 0 {
		return ImageType1D
	}
	if h.PixelDepth > 0 {
		return ImageType3D
	}
	return ImageType2D
}

// expectedDataLength returns the byte size of one mip level for a BC format.
func expectedDataLength(format Format, width, height int) int {
	blocksW := (width + 3) / 4
	blocksH := (height + 3) / 4
	switch format {
	case FormatBC1RGBUnorm, FormatBC1RGBSRGB, FormatBC1RGBAUnorm, FormatBC1RGBASRGB,
		FormatBC4Unorm, FormatBC4Snorm:
		return blocksW * blocksH * 8
	case FormatBC2Unorm, FormatBC2SRGB, FormatBC3Unorm, FormatBC3SRGB,
		FormatBC5Unorm, FormatBC5Snorm,
		FormatBC6HUfloat, FormatBC6HSfloat, FormatBC7Unorm, FormatBC7SRGB:
		return blocksW * blocksH * 16
	default:
		return -1
	}
}
