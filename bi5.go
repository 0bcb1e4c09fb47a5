// Package bi5 decodes bi5 tick-data files into timestamped quote ticks.
//
// A bi5 file is an LZMA-compressed stream of fixed 20-byte big-endian
// records, conventionally one file per instrument per trading hour. Each
// record stores its time as milliseconds since the file's base hour, so a
// tick only becomes a calendar timestamp once combined with a base time.
//
// # Core Features
//
//   - Whole-file decoding with typed errors (I/O, decompression, record length)
//   - Lazy iteration over a single file or a directory tree of files
//   - Per-file base times derived from the provider's YYYY/MM/DD/HHh_ticks.bi5 layout
//   - Optional mirrors of bi5 archives re-compressed with xz, Zstd, S2 or LZ4
//   - Tick count and per-file manifest modes
//   - Optional zap logging and Prometheus metrics
//
// # Basic Usage
//
// Decoding a single file:
//
//	ticks, err := bi5.ReadTicks("EURUSD/2022/11/16/14h_ticks.bi5",
//	    timebase.At(time.Date(2022, 12, 16, 14, 0, 0, 0, time.UTC)))
//
// Iterating over a directory:
//
//	b, _ := bi5.New("EURUSD/2022", timebase.None())
//	it, err := b.Iter()
//	if err != nil {
//	    return err
//	}
//	for ts, tick := range it.All() {
//	    fmt.Println(ts, tick.Bid, tick.Ask)
//	}
//	if err := it.Err(); err != nil {
//	    return err
//	}
//
// # Package Structure
//
// This package ties together the lower-level packages: record (the 20-byte
// codec), compress (decompressors), timebase (base time resolution) and
// source (directory discovery). Use them directly for finer control.
package bi5

import (
	"errors"
	"os"

	"github.com/arloliu/bi5/errs"
	"github.com/arloliu/bi5/source"
	"github.com/arloliu/bi5/timebase"
	"go.uber.org/zap"
)

// Bi5 is a tick source rooted at a file or a directory.
//
// A Bi5 holds only its path and configuration; every call to Iter, Count or
// Manifest rescans the path, so a Bi5 can be iterated any number of times.
type Bi5 struct {
	path string
	base timebase.Base
	cfg  *Config
}

// New creates a Bi5 for path.
//
// The path is not accessed until iteration starts. For a single file, base
// is the base of its ticks. For a directory, base applies to the first file
// when its path does not carry a date; see package source for the full rule.
//
// Parameters:
//   - path: A tick file or a directory of tick files
//   - base: Base time of the first file, or timebase.None()
//   - opts: Optional configuration
//
// Returns:
//   - *Bi5: The tick source
//   - error: Invalid path or option
func New(path string, base timebase.Base, opts ...Option) (*Bi5, error) {
	if path == "" {
		return nil, errors.New("path must not be empty")
	}

	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &Bi5{path: path, base: base, cfg: cfg}, nil
}

// Path returns the root path.
func (b *Bi5) Path() string {
	return b.path
}

// Base returns the caller-supplied base time.
func (b *Bi5) Base() timebase.Base {
	return b.base
}

// Config returns the effective configuration.
func (b *Bi5) Config() *Config {
	return b.cfg
}

// Sources lists the files behind the path in iteration order with their base times.
//
// Returns:
//   - []source.Source: One entry for a file path, the eligible files for a directory
//   - error: *errs.IOError if the path is missing, unreadable, or neither a file nor a directory
func (b *Bi5) Sources() ([]source.Source, error) {
	info, err := os.Stat(b.path)
	if err != nil {
		return nil, &errs.IOError{Path: b.path, Err: err}
	}

	switch {
	case info.Mode().IsRegular():
		return []source.Source{source.Single(b.path, b.base)}, nil
	case info.IsDir():
		sources, err := source.Discover(b.path, b.cfg.extension, b.base, b.cfg.period)
		if err != nil {
			return nil, err
		}
		b.cfg.logger.Debug("discovered tick files",
			zap.String("root", b.path),
			zap.String("extension", b.cfg.extension),
			zap.Int("files", len(sources)),
		)

		return sources, nil
	default:
		return nil, &errs.IOError{Path: b.path, Err: errs.ErrNotFileOrDir}
	}
}

// Iter returns a fresh iterator over all ticks behind the path.
//
// Directory listing happens here; files are decoded lazily by the iterator.
func (b *Bi5) Iter() (*Iterator, error) {
	sources, err := b.Sources()
	if err != nil {
		return nil, err
	}

	return newIterator(b.cfg, sources), nil
}

// Count returns the total number of ticks behind the path.
//
// Records are counted from each file's payload length without being decoded.
// The first file error aborts the count.
func (b *Bi5) Count() (int, error) {
	sources, err := b.Sources()
	if err != nil {
		return 0, err
	}

	total := 0
	for _, src := range sources {
		stats, err := b.cfg.decodeFile(src.Path, false)
		if err != nil {
			return 0, err
		}
		total += stats.count
	}

	return total, nil
}
