// Package errs defines the error taxonomy shared by the bi5 packages.
//
// Every failure surfaced by the decode and iteration APIs belongs to one of
// three kinds, each with a sentinel usable with errors.Is:
//
//   - ErrIO: a file or directory is missing or unreadable
//   - ErrDecompression: the compressed stream is malformed or truncated
//   - ErrInvalidLength: the decompressed payload is not a whole number of records
//
// The typed errors (IOError, DecompressionError, LengthError) carry the
// diagnostics for each kind and unwrap to both the sentinel and, where one
// exists, the underlying cause.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrIO reports that a file or directory could not be accessed or read.
	ErrIO = errors.New("bi5: i/o error")

	// ErrDecompression reports a malformed, truncated or corrupted compressed stream.
	ErrDecompression = errors.New("bi5: decompression failed")

	// ErrInvalidLength reports a decompressed payload whose length is not a multiple of the record size.
	ErrInvalidLength = errors.New("bi5: invalid record stream length")

	// ErrUnsupportedCompression reports an unknown compression type.
	ErrUnsupportedCompression = errors.New("bi5: unsupported compression type")

	// ErrNotFileOrDir reports a path that exists but is neither a regular file nor a directory.
	ErrNotFileOrDir = errors.New("bi5: path must be a file or a directory")
)

// IOError is returned when a file or directory cannot be opened, listed or read.
type IOError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrIO, e.Path, e.Err)
}

// Unwrap exposes both ErrIO and the underlying cause (e.g. fs.ErrNotExist).
func (e *IOError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}

// DecompressionError is returned when a codec rejects its input stream.
type DecompressionError struct {
	Codec string
	Cause error
}

// Error implements the error interface.
func (e *DecompressionError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrDecompression, e.Codec, e.Cause)
}

// Unwrap exposes both ErrDecompression and the codec's own error.
func (e *DecompressionError) Unwrap() []error {
	return []error{ErrDecompression, e.Cause}
}

// LengthError is returned when a decompressed payload cannot be split into whole records.
type LengthError struct {
	// Length is the offending payload length in bytes.
	Length int
	// RecordSize is the fixed record size the length was checked against.
	RecordSize int
}

// Error implements the error interface.
func (e *LengthError) Error() string {
	return fmt.Sprintf("%s: %d bytes is not a multiple of %d", ErrInvalidLength, e.Length, e.RecordSize)
}

// Unwrap returns ErrInvalidLength.
func (e *LengthError) Unwrap() error {
	return ErrInvalidLength
}

// Kind classifies an error into the bi5 taxonomy.
type Kind uint8

const (
	KindOther Kind = iota
	KindIO
	KindDecompression
	KindInvalidLength
)

// String returns the lower-case name of the kind, suitable for metric labels.
func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindDecompression:
		return "decompression"
	case KindInvalidLength:
		return "invalid_length"
	default:
		return "other"
	}
}

// KindOf returns the taxonomy kind of err. A nil error is KindOther.
//
// Decode errors are checked before I/O errors so that a decompression failure
// wrapping an underlying io.ErrUnexpectedEOF is still reported as decompression.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindOther
	case errors.Is(err, ErrDecompression):
		return KindDecompression
	case errors.Is(err, ErrInvalidLength):
		return KindInvalidLength
	case errors.Is(err, ErrIO):
		return KindIO
	default:
		return KindOther
	}
}
