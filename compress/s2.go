package compress

import (
	"io"

	"github.com/arloliu/bi5/format"
	"github.com/klauspost/compress/s2"
)

// S2Decompressor decodes S2 framed streams (the s2/snappy stream format with CRCs).
type S2Decompressor struct{}

var _ Decompressor = (*S2Decompressor)(nil)

// NewS2Decompressor creates a new S2 decompressor.
func NewS2Decompressor() S2Decompressor {
	return S2Decompressor{}
}

// Type returns format.CompressionS2.
func (d S2Decompressor) Type() format.CompressionType {
	return format.CompressionS2
}

// Decompress decompresses a complete S2 stream.
func (d S2Decompressor) Decompress(data []byte) ([]byte, error) {
	return decompressAll(d, data)
}

// DecompressTo streams the decompressed payload into w.
func (d S2Decompressor) DecompressTo(w io.Writer, data []byte) (int64, error) {
	return decompressStream("s2", openS2, w, data)
}

func openS2(r io.Reader) (io.Reader, error) {
	return s2.NewReader(r), nil
}
