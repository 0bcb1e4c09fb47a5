package compress

import (
	"io"

	"github.com/arloliu/bi5/format"
	"github.com/ulikunitz/xz/lzma"
)

// LZMADecompressor decodes LZMA "alone" streams, the native bi5 file format.
//
// The stream starts with a 13-byte header (properties, dictionary size,
// uncompressed size). Streams with an unknown size must end with an
// end-of-stream marker; a stream cut short is reported as a decompression error.
type LZMADecompressor struct{}

var _ Decompressor = (*LZMADecompressor)(nil)

// NewLZMADecompressor creates a new LZMA decompressor.
func NewLZMADecompressor() LZMADecompressor {
	return LZMADecompressor{}
}

// Type returns format.CompressionLZMA.
func (d LZMADecompressor) Type() format.CompressionType {
	return format.CompressionLZMA
}

// Decompress decompresses a complete LZMA stream.
func (d LZMADecompressor) Decompress(data []byte) ([]byte, error) {
	return decompressAll(d, data)
}

// DecompressTo streams the decompressed payload into w.
func (d LZMADecompressor) DecompressTo(w io.Writer, data []byte) (int64, error) {
	return decompressStream("lzma", openLZMA, w, data)
}

func openLZMA(r io.Reader) (io.Reader, error) {
	return lzma.NewReader(r)
}
