package compress

import (
	"io"

	"github.com/arloliu/bi5/format"
	"github.com/pierrec/lz4/v4"
)

// LZ4Decompressor decodes LZ4 frames.
//
// The frame format is self-delimiting, so the decompressed size does not need
// to be known up front, unlike raw LZ4 blocks.
type LZ4Decompressor struct{}

var _ Decompressor = (*LZ4Decompressor)(nil)

// NewLZ4Decompressor creates a new LZ4 decompressor.
//
// Returns:
//   - LZ4Decompressor: New LZ4 decompressor instance
func NewLZ4Decompressor() LZ4Decompressor {
	return LZ4Decompressor{}
}

// Type returns format.CompressionLZ4.
func (d LZ4Decompressor) Type() format.CompressionType {
	return format.CompressionLZ4
}

// Decompress decompresses a complete LZ4 frame.
func (d LZ4Decompressor) Decompress(data []byte) ([]byte, error) {
	return decompressAll(d, data)
}

// DecompressTo streams the decompressed payload into w.
func (d LZ4Decompressor) DecompressTo(w io.Writer, data []byte) (int64, error) {
	return decompressStream("lz4", openLZ4, w, data)
}

func openLZ4(r io.Reader) (io.Reader, error) {
	return lz4.NewReader(r), nil
}
