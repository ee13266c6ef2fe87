package ktx

import "errors"

var (
	// ErrTruncatedFile indicates the buffer is shorter than the fixed header.
	ErrTruncatedFile = errors.New("file shorter than KTX header")
	// ErrInvalidMagic indicates the file identifier does not match KTX 1.0.
	ErrInvalidMagic = errors.New("KTX identifier mismatch")
	// ErrUnsupportedPixelFormat indicates the file declares an uncompressed format.
	ErrUnsupportedPixelFormat = errors.New("uncompressed pixel formats not supported")
	// ErrUnknownCompressionFormat indicates an internal format with no table entry.
	ErrUnknownCompressionFormat = errors.New("unknown compression format")
	// ErrUnsupportedTextureLayout indicates a texture array or cube map.
	ErrUnsupportedTextureLayout = errors.New("texture arrays and cube maps not supported")
	// ErrTruncatedMipData indicates mip data ends before the header promised.
	ErrTruncatedMipData = errors.New("truncated mipmap data")
	// ErrOpenFile indicates KTX file open failed.
	ErrOpenFile = errors.New("open file failed")
	// ErrDecompressAsset indicates unwrapping a compressed-at-rest asset failed.
	ErrDecompressAsset = errors.New("decompress asset failed")
	// ErrDecodeImage indicates mip preview decode failed.
	ErrDecodeImage = errors.New("decode image failed")
	// ErrUnsupportedPreview indicates no CPU decoder exists for the format.
	ErrUnsupportedPreview = errors.New("no CPU decoder for format")
	// ErrInvalidMipLevel indicates a mip level index out of range.
	ErrInvalidMipLevel = errors.New("mip level out of range")
	// ErrInvalidFormat indicates unsupported format.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrEmptyMipmaps indicates missing mipmap data.
	ErrEmptyMipmaps = errors.New("empty mipmaps")
	// ErrMipmapSizeMismatch indicates mipmap payload size mismatch.
	ErrMipmapSizeMismatch = errors.New("mipmap size mismatch")
	// ErrSizeOverflow indicates a size or dimension exceeds supported limits.
	ErrSizeOverflow = errors.New("size overflow")
	// ErrCreateFile indicates file creation failed.
	ErrCreateFile = errors.New("create file failed")
	// ErrWriteHeader indicates KTX header write failed.
	ErrWriteHeader = errors.New("writing KTX header failed")
	// ErrWriteMipmap indicates mipmap payload write failed.
	ErrWriteMipmap = errors.New("writing mipmap failed")
	// ErrCreateCache indicates texture cache creation failed.
	ErrCreateCache = errors.New("create texture cache failed")
)
