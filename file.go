package bi5

import (
	"fmt"
	"os"
	"time"

	"github.com/arloliu/bi5/errs"
	"github.com/arloliu/bi5/internal/hash"
	"github.com/arloliu/bi5/internal/pool"
	"github.com/arloliu/bi5/metrics"
	"github.com/arloliu/bi5/record"
	"github.com/arloliu/bi5/timebase"
	"go.uber.org/zap"
)

// TimestampedTick is a tick paired with its resolved absolute time.
type TimestampedTick struct {
	Time time.Time
	Tick record.Tick
}

// fileStats describes one decoded file.
type fileStats struct {
	ticks             []record.Tick // nil when only counting
	count             int
	rawBytes          int
	decompressedBytes int
	checksum          uint64
}

// Decode decompresses raw file contents and decodes every record.
//
// Empty input is a valid file with no ticks.
//
// Returns:
//   - []record.Tick: Ticks in file order
//   - error: *errs.DecompressionError or *errs.LengthError
func Decode(raw []byte, opts ...Option) ([]record.Tick, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	payload := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(payload)

	if _, err := cfg.decompressor.DecompressTo(payload, raw); err != nil {
		return nil, err
	}

	return record.DecodeAll(payload.Bytes())
}

// ReadFile reads a whole tick file, decompresses it and decodes every record.
//
// Returns:
//   - []record.Tick: Ticks in file order, with offsets relative to the file's base
//   - error: *errs.IOError, *errs.DecompressionError or *errs.LengthError
func ReadFile(path string, opts ...Option) ([]record.Tick, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	stats, err := cfg.decodeFile(path, true)
	if err != nil {
		return nil, err
	}

	return stats.ticks, nil
}

// ReadTicks reads a tick file and resolves each tick against base.
//
// An unset base resolves against timebase.Epoch.
func ReadTicks(path string, base timebase.Base, opts ...Option) ([]TimestampedTick, error) {
	ticks, err := ReadFile(path, opts...)
	if err != nil {
		return nil, err
	}

	out := make([]TimestampedTick, len(ticks))
	for i, tick := range ticks {
		out[i] = TimestampedTick{Time: timebase.Resolve(base, tick.Millisecs), Tick: tick}
	}

	return out, nil
}

// decodeFile runs the read, decompress and decode pipeline for one file.
//
// Both intermediate buffers are pooled and released before returning; when
// materialize is false only the record count is computed.
func (c *Config) decodeFile(path string, materialize bool) (fileStats, error) {
	timer := metrics.NewTimer()

	stats, err := c.decodeFileStats(path, materialize)
	if err != nil {
		c.metrics.ObserveError(err)
		return fileStats{}, err
	}

	c.metrics.ObserveFile(stats.rawBytes, stats.decompressedBytes, stats.count, timer.Elapsed())
	c.logger.Debug("decoded tick file",
		zap.String("path", path),
		zap.Int("ticks", stats.count),
		zap.Int("raw_bytes", stats.rawBytes),
		zap.Int("decompressed_bytes", stats.decompressedBytes),
		zap.String("xxhash", fmt.Sprintf("%016x", stats.checksum)),
	)

	return stats, nil
}

func (c *Config) decodeFileStats(path string, materialize bool) (fileStats, error) {
	raw := pool.GetFileBuffer()
	defer pool.PutFileBuffer(raw)

	if err := readInto(raw, path); err != nil {
		return fileStats{}, err
	}

	payload := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(payload)

	if _, err := c.decompressor.DecompressTo(payload, raw.Bytes()); err != nil {
		return fileStats{}, fmt.Errorf("%s: %w", path, err)
	}

	stats := fileStats{
		rawBytes:          raw.Len(),
		decompressedBytes: payload.Len(),
		checksum:          hash.Checksum(raw.Bytes()),
	}

	var err error
	if materialize {
		stats.ticks, err = record.DecodeAll(payload.Bytes())
		stats.count = len(stats.ticks)
	} else {
		stats.count, err = record.Count(payload.Bytes())
	}
	if err != nil {
		return fileStats{}, fmt.Errorf("%s: %w", path, err)
	}

	return stats, nil
}

// readInto appends the whole content of the file at path to buf.
func readInto(buf *pool.ByteBuffer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &errs.IOError{Path: path, Err: err}
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.Size() > 0 {
		buf.Grow(int(info.Size()))
	}

	if _, err := buf.ReadFrom(f); err != nil {
		return &errs.IOError{Path: path, Err: err}
	}

	return nil
}
