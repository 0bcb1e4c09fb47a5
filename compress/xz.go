package compress

import (
	"io"

	"github.com/arloliu/bi5/format"
	"github.com/ulikunitz/xz"
)

// XZDecompressor decodes LZMA2 streams wrapped in the xz container.
//
// Unlike raw LZMA, the xz container carries block checksums, so corruption
// anywhere in the body is detected.
type XZDecompressor struct{}

var _ Decompressor = (*XZDecompressor)(nil)

// NewXZDecompressor creates a new xz decompressor.
func NewXZDecompressor() XZDecompressor {
	return XZDecompressor{}
}

// Type returns format.CompressionXZ.
func (d XZDecompressor) Type() format.CompressionType {
	return format.CompressionXZ
}

// Decompress decompresses a complete xz stream.
func (d XZDecompressor) Decompress(data []byte) ([]byte, error) {
	return decompressAll(d, data)
}

// DecompressTo streams the decompressed payload into w.
func (d XZDecompressor) DecompressTo(w io.Writer, data []byte) (int64, error) {
	return decompressStream("xz", openXZ, w, data)
}

func openXZ(r io.Reader) (io.Reader, error) {
	return xz.NewReader(r)
}
