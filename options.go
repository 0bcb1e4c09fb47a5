package bi5

import (
	"errors"
	"fmt"
	"time"

	"github.com/arloliu/bi5/compress"
	"github.com/arloliu/bi5/format"
	"github.com/arloliu/bi5/internal/options"
	"github.com/arloliu/bi5/metrics"
	"github.com/arloliu/bi5/source"
	"go.uber.org/zap"
)

// Config holds the decoding configuration shared by the file decoder and the iterator.
//
// The zero value is not usable; configurations are built by applying Options
// on top of the defaults: LZMA compression, the ".bi5" extension, a one-hour
// file period, a no-op logger and no metrics.
type Config struct {
	compression  format.CompressionType
	decompressor compress.Decompressor
	extension    string
	period       time.Duration
	logger       *zap.Logger
	metrics      *metrics.Collector
}

// Option represents a functional option for configuring decoding.
// This is a type alias for the generic Option interface specialized for Config.
type Option = options.Option[*Config]

func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		compression: format.CompressionLZMA,
		period:      source.DefaultPeriod,
		logger:      zap.NewNop(),
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if cfg.decompressor == nil {
		d, err := compress.GetDecompressor(cfg.compression)
		if err != nil {
			return nil, err
		}
		cfg.decompressor = d
	}

	if cfg.extension == "" {
		cfg.extension = cfg.compression.Extension()
	}

	return cfg, nil
}

// Compression returns the configured compression type.
func (c *Config) Compression() format.CompressionType {
	return c.compression
}

// Extension returns the file name suffix used to select files in directory walks.
func (c *Config) Extension() string {
	return c.extension
}

// FilePeriod returns the base advancement between consecutive non-dated files.
func (c *Config) FilePeriod() time.Duration {
	return c.period
}

// WithCompression sets the compression of the tick files.
//
// Unless WithExtension is also given, directory walks select files with the
// compression's conventional suffix (".bi5" for LZMA, ".bi5.zst" for Zstd, ...).
func WithCompression(ct format.CompressionType) Option {
	return options.New(func(c *Config) error {
		d, err := compress.GetDecompressor(ct)
		if err != nil {
			return err
		}
		c.compression = ct
		c.decompressor = d

		return nil
	})
}

// WithExtension sets the file name suffix of eligible files in directory walks.
func WithExtension(ext string) Option {
	return options.New(func(c *Config) error {
		if ext == "" {
			return errors.New("extension must not be empty")
		}
		c.extension = ext

		return nil
	})
}

// WithFilePeriod sets the time span covered by one file.
//
// It is the amount by which the base time advances between consecutive files
// whose paths do not carry a date. The default is one hour.
func WithFilePeriod(d time.Duration) Option {
	return options.New(func(c *Config) error {
		if d <= 0 {
			return fmt.Errorf("file period must be positive, got %s", d)
		}
		c.period = d

		return nil
	})
}

// WithLogger sets the logger used for debug output. A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return options.NoError(func(c *Config) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.logger = logger
	})
}

// WithMetrics sets the collector that records per-file decode metrics.
func WithMetrics(m *metrics.Collector) Option {
	return options.NoError(func(c *Config) {
		c.metrics = m
	})
}
