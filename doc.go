/*
Package ktx implements reading and writing of KTX 1.0 compressed-texture
containers and maps their OpenGL internal format codes onto Vulkan format
identifiers.

A KTX file stores a fixed 64-byte header, an optional key-value metadata
block (skipped verbatim) and a sequence of length-prefixed mipmap payloads.
Decode slices the payloads into one contiguous buffer with per-level byte
ranges ready for GPU upload. Only block-compressed formats (BC1 through BC7)
are handled: texture arrays, cube maps and uncompressed pixel data are
rejected, and no endianness conversion is performed.

The package focuses on practical asset loading: open a file (optionally
gzip, zstd or lz4-frame compressed at rest), decode it, hand the mip byte
ranges to the renderer, and optionally decode a mip level into an
image.Image for CPU-side inspection.
*/
package ktx
