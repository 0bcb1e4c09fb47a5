// Package compress provides the decompression adapters for bi5 tick files.
//
// A bi5 file is a compressed stream whose decompressed payload is a flat
// sequence of 20-byte tick records. The data provider publishes files as LZMA
// "alone" streams; archives that re-compress the same payload with other
// algorithms are served by the remaining codecs.
//
// # Architecture
//
// Every codec implements the Decompressor interface:
//
//	type Decompressor interface {
//	    Type() format.CompressionType
//	    Decompress(data []byte) ([]byte, error)
//	    DecompressTo(w io.Writer, data []byte) (int64, error)
//	}
//
// DecompressTo streams into any io.Writer, which lets callers decompress into
// pooled buffers without knowing the output size in advance.
//
// # Supported Algorithms
//
//   - format.CompressionLZMA: LZMA alone streams (github.com/ulikunitz/xz/lzma), file suffix ".bi5"
//   - format.CompressionXZ: LZMA2 in xz containers (github.com/ulikunitz/xz), ".bi5.xz"
//   - format.CompressionZstd: Zstandard frames (github.com/klauspost/compress/zstd), ".bi5.zst"
//   - format.CompressionS2: S2 streams (github.com/klauspost/compress/s2), ".bi5.s2"
//   - format.CompressionLZ4: LZ4 frames (github.com/pierrec/lz4/v4), ".bi5.lz4"
//   - format.CompressionNone: pass-through, ".bi5.raw"
//
// Usage:
//
//	d, err := compress.GetDecompressor(format.CompressionLZMA)
//	if err != nil {
//	    return err
//	}
//	payload, err := d.Decompress(raw)
//	if errors.Is(err, errs.ErrDecompression) {
//	    // corrupted or truncated file
//	}
//
// # Error Handling
//
// Decompression errors are never swallowed or retried. They are returned as
// *errs.DecompressionError, which names the codec and wraps the library's
// own error:
//
//	var derr *errs.DecompressionError
//	if errors.As(err, &derr) {
//	    log.Printf("codec %s rejected input: %v", derr.Codec, derr.Cause)
//	}
//
// Raw LZMA carries no checksum. Header damage and truncation are always
// detected; a flipped bit inside the compressed body is detected only when it
// derails the range decoder. The xz, zstd, S2 and LZ4 formats checksum their
// payload.
//
// Empty input is valid for every codec and decompresses to an empty payload.
//
// # Thread Safety
//
// All decompressors are stateless values and can be shared across goroutines.
package compress
