package ktx

import (
	"fmt"
	"image"

	"github.com/woozymasta/bcn"
)

// bcnFormat maps a Vulkan format to the BCn decoder's format enum.
// Only the linear unorm variants have a CPU-side decoder; SNORM, BC6H and
// BC7 previews are not available.
func bcnFormat(f Format) bcn.Format {
	switch f {
	case FormatBC1RGBUnorm, FormatBC1RGBAUnorm:
		return bcn.FormatDXT1
	case FormatBC2Unorm:
		return bcn.FormatDXT3
	case FormatBC3Unorm:
		return bcn.FormatDXT5
	case FormatBC4Unorm:
		return bcn.FormatBC4
	case FormatBC5Unorm:
		return bcn.FormatBC5
	default:
		return bcn.FormatUnknown
	}
}

// Image decodes the base mip level into an RGBA image.
func (t *Texture) Image() (image.Image, error) {
	return t.ImageAt(0)
}

// ImageAt decodes one mip level into an RGBA image, using the decode
// options the texture was opened with.
func (t *Texture) ImageAt(level int) (image.Image, error) {
	return t.ImageAtWithOptions(level, t.previewOpts)
}

// ImageAtWithOptions decodes one mip level with the given BCn decode
// options. Nil opts uses default decoding.
func (t *Texture) ImageAtWithOptions(level int, opts *bcn.DecodeOptions) (image.Image, error) {
	if level < 0 || level >= len(t.Mipmaps) {
		return nil, fmt.Errorf("%w: level %d of %d", ErrInvalidMipLevel, level, len(t.Mipmaps))
	}

	format := bcnFormat(t.Format)
	if format == bcn.FormatUnknown {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPreview, t.Format)
	}

	mip := t.Mipmaps[level]
	if mip.Width == 0 || mip.Height == 0 {
		return nil, fmt.Errorf("%w: level %d has zero extent", ErrDecodeImage, level)
	}

	payload := t.Data[mip.Offset : mip.Offset+mip.Size]
	img, err := bcn.DecodeImageWithOptions(payload, int(mip.Width), int(mip.Height), format, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: level %d: %v", ErrDecodeImage, level, err)
	}

	return img, nil
}
