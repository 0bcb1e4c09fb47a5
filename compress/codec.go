package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/arloliu/bi5/errs"
	"github.com/arloliu/bi5/format"
)

// Decompressor turns a complete compressed tick file into its record payload.
//
// Implementations make no assumption about the decompressed size: output is
// produced by streaming into a growing buffer. Empty input always yields empty
// output and a nil error, since zero-length files are valid tick files.
//
// Every failure of the underlying algorithm (bad header, truncated stream,
// checksum mismatch) is returned as *errs.DecompressionError, so callers can
// test it with errors.Is(err, errs.ErrDecompression). Nothing is retried.
//
// Thread Safety: all built-in decompressors are stateless values and safe for
// concurrent use.
type Decompressor interface {
	// Type returns the compression type handled by the decompressor.
	Type() format.CompressionType

	// Decompress decompresses data and returns a newly allocated payload.
	//
	// The input slice is not modified.
	Decompress(data []byte) ([]byte, error)

	// DecompressTo streams the decompressed payload of data into w.
	//
	// Returns the number of bytes written to w. On error, w may hold a
	// partial payload which must be discarded by the caller.
	DecompressTo(w io.Writer, data []byte) (int64, error)
}

// streamOpener opens a decompressing reader over a compressed stream.
type streamOpener func(r io.Reader) (io.Reader, error)

// decompressStream runs a streaming decoder over data and copies its output to w.
//
// Opening errors (bad header) and read errors (corrupt or truncated body) are
// both reported as *errs.DecompressionError tagged with codec.
func decompressStream(codec string, open streamOpener, w io.Writer, data []byte) (int64, error) {
	if len(data) == 0 {
		return 0, nil
	}

	r, err := open(bytes.NewReader(data))
	if err != nil {
		return 0, &errs.DecompressionError{Codec: codec, Cause: err}
	}

	n, err := io.Copy(w, r)
	if err != nil {
		return n, &errs.DecompressionError{Codec: codec, Cause: err}
	}

	return n, nil
}

// decompressAll is the allocating counterpart of DecompressTo shared by the codecs.
func decompressAll(d Decompressor, data []byte) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}

	var buf bytes.Buffer
	buf.Grow(len(data) * 4)

	if _, err := d.DecompressTo(&buf, data); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

var builtinDecompressors = map[format.CompressionType]Decompressor{
	format.CompressionLZMA: NewLZMADecompressor(),
	format.CompressionXZ:   NewXZDecompressor(),
	format.CompressionZstd: NewZstdDecompressor(),
	format.CompressionS2:   NewS2Decompressor(),
	format.CompressionLZ4:  NewLZ4Decompressor(),
	format.CompressionNone: NewNoOpDecompressor(),
}

// GetDecompressor retrieves the built-in Decompressor for the specified compression type.
//
// Returns:
//   - Decompressor: Shared, stateless decompressor instance
//   - error: errs.ErrUnsupportedCompression for unknown types
func GetDecompressor(compressionType format.CompressionType) (Decompressor, error) {
	if d, ok := builtinDecompressors[compressionType]; ok {
		return d, nil
	}

	return nil, fmt.Errorf("%w: %s (0x%x)", errs.ErrUnsupportedCompression, compressionType, uint8(compressionType))
}

// Decompress decompresses data with the built-in decompressor for compressionType.
func Decompress(compressionType format.CompressionType, data []byte) ([]byte, error) {
	d, err := GetDecompressor(compressionType)
	if err != nil {
		return nil, err
	}

	return d.Decompress(data)
}
