package compress

import (
	"io"

	"github.com/arloliu/bi5/format"
)

// NoOpDecompressor passes uncompressed record payloads through unchanged.
//
// It is useful for payloads that were already decompressed by an external
// tool, and as a baseline when measuring decompression overhead.
type NoOpDecompressor struct{}

var _ Decompressor = (*NoOpDecompressor)(nil)

// NewNoOpDecompressor creates a new pass-through decompressor.
func NewNoOpDecompressor() NoOpDecompressor {
	return NoOpDecompressor{}
}

// Type returns format.CompressionNone.
func (d NoOpDecompressor) Type() format.CompressionType {
	return format.CompressionNone
}

// Decompress returns the input data directly without copying.
//
// Note: The returned slice shares the same underlying memory as the input.
func (d NoOpDecompressor) Decompress(data []byte) ([]byte, error) {
	if data == nil {
		return []byte{}, nil
	}

	return data, nil
}

// DecompressTo writes data to w unchanged.
func (d NoOpDecompressor) DecompressTo(w io.Writer, data []byte) (int64, error) {
	n, err := w.Write(data)
	return int64(n), err
}
