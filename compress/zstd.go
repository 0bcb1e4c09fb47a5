package compress

import (
	"fmt"
	"io"
	"sync"

	"github.com/arloliu/bi5/errs"
	"github.com/arloliu/bi5/format"
	"github.com/klauspost/compress/zstd"
)

// zstdDecoderPool pools zstd decoders for reuse to eliminate allocation overhead.
// The klauspost/compress/zstd library is explicitly designed for decoder reuse:
// "The decoder has been designed to operate without allocations after a warmup.
// This means that you should store the decoder for best performance."
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			// This should never happen with valid options
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

// ZstdDecompressor decodes Zstandard frames.
//
// It serves archives where hour files were re-compressed with zstd for faster
// bulk reads; the decompressed payload is the same 20-byte record stream.
type ZstdDecompressor struct{}

var _ Decompressor = (*ZstdDecompressor)(nil)

// NewZstdDecompressor creates a new Zstd decompressor.
//
// Returns:
//   - ZstdDecompressor: New Zstd decompressor instance
func NewZstdDecompressor() ZstdDecompressor {
	return ZstdDecompressor{}
}

// Type returns format.CompressionZstd.
func (d ZstdDecompressor) Type() format.CompressionType {
	return format.CompressionZstd
}

// Decompress decompresses Zstd-compressed data.
// Uses a pooled decoder for better performance (eliminates allocation overhead).
func (d ZstdDecompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}

	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	// DecodeAll is stateless; the decoder stays reusable even after a failure
	decompressed, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, &errs.DecompressionError{Codec: "zstd", Cause: err}
	}

	return decompressed, nil
}

// DecompressTo writes the decompressed payload into w.
func (d ZstdDecompressor) DecompressTo(w io.Writer, data []byte) (int64, error) {
	decompressed, err := d.Decompress(data)
	if err != nil {
		return 0, err
	}

	n, err := w.Write(decompressed)

	return int64(n), err
}
