package ktx

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/woozymasta/bcn"
)

// ReadOptions configures KTX reading (e.g. BCn preview decode workers).
type ReadOptions struct {
	// DecodeOptions are passed to the BCn decoder when rendering mip
	// previews (e.g. Workers).
	DecodeOptions *bcn.DecodeOptions
}

// Magic prefixes of the compression wrappers asset pipelines put around
// textures at rest.
var (
	magicGzip = []byte{0x1F, 0x8B}
	magicZstd = []byte{0x28, 0xB5, 0x2F, 0xFD}
	magicLZ4  = []byte{0x04, 0x22, 0x4D, 0x18}
)

// Open reads and decodes a KTX file.
//
// Files wrapped in a gzip, zstd or lz4-frame stream are decompressed
// transparently before decoding. Errors carry the file path.
func Open(path string) (*Texture, error) {
	return OpenWithOptions(path, nil)
}

// OpenWithOptions reads and decodes a KTX file with the given options.
// Nil opts uses defaults. The DecodeOptions carried in opts become the
// texture's default preview decode options.
func OpenWithOptions(path string, opts *ReadOptions) (*Texture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrOpenFile, path, err)
	}

	data, err := unwrapAsset(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrDecompressAsset, path, err)
	}

	t, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}

	if opts != nil {
		t.previewOpts = opts.DecodeOptions
	}

	return t, nil
}

// unwrapAsset strips a compression wrapper when the buffer starts with a
// known magic. Plain KTX data passes through untouched.
func unwrapAsset(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, magicGzip):
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer func() { _ = zr.Close() }()
		return io.ReadAll(zr)

	case bytes.HasPrefix(data, magicZstd):
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return dec.DecodeAll(data, nil)

	case bytes.HasPrefix(data, magicLZ4):
		return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))

	default:
		return data, nil
	}
}
