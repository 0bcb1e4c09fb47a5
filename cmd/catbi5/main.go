// Command catbi5 dumps bi5 tick files to stdout.
//
// Usage:
//
//	catbi5 [flags] PATH
//
// PATH is a single tick file or a directory of tick files. Rows are written as
// "t, bid, ask, bidsize, asksize" joined by the separator. The t column holds
// the resolved timestamp when -d is given or PATH is a directory, and the raw
// millisecond offset otherwise.
//
// Defaults for most flags can be set through CATBI5_* environment variables or
// a .env file in the working directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/bi5"
	"github.com/arloliu/bi5/errs"
	"github.com/arloliu/bi5/format"
	"github.com/arloliu/bi5/internal/config"
	"github.com/arloliu/bi5/internal/logger"
	"github.com/arloliu/bi5/metrics"
	"github.com/arloliu/bi5/timebase"
	"go.uber.org/zap"
)

// Exit codes.
const (
	exitOK            = 0
	exitUsage         = 1
	exitIO            = 2
	exitDecompression = 3
	exitInvalidLength = 4
)

type cliArgs struct {
	path        string
	date        string
	sep         string
	count       bool
	manifest    bool
	compression string
	scale       int
	period      string
	metricsFile string
	logLevel    string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "catbi5: %v\n", err)
		return exitUsage
	}

	args, err := parseArgs(argv, cfg, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "catbi5: %v\n", err)
		return exitUsage
	}

	level, err := logger.ParseLevel(args.logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "catbi5: %v\n", err)
		return exitUsage
	}
	log, err := logger.New(logger.WithLoggingLevel(level), logger.WithWriter(stderr))
	if err != nil {
		fmt.Fprintf(stderr, "catbi5: %v\n", err)
		return exitUsage
	}
	defer func() { _ = log.Sync() }()

	b, collector, err := newSource(args, log)
	if err != nil {
		fmt.Fprintf(stderr, "catbi5: %v\n", err)
		return exitUsage
	}

	err = dump(b, args, stdout)

	if args.metricsFile != "" {
		if werr := collector.WriteTextfile(args.metricsFile); werr != nil {
			log.Warn("failed to write metrics textfile", zap.String("path", args.metricsFile), zap.Error(werr))
		}
	}

	if err != nil {
		log.Debug("catbi5 failed", zap.String("kind", errs.KindOf(err).String()), zap.Error(err))
		fmt.Fprintf(stderr, "catbi5: %v\n", err)

		return exitCode(err)
	}

	return exitOK
}

func parseArgs(argv []string, cfg *config.Config, stderr io.Writer) (cliArgs, error) {
	var args cliArgs

	fs := flag.NewFlagSet("catbi5", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Dump a bi5 tick file or directory to stdout.")
		fmt.Fprintln(fs.Output(), "\nUsage: catbi5 [flags] PATH")
		fs.PrintDefaults()
	}

	fs.StringVar(&args.date, "d", "", "base date in `YYYY-MM-DDTHH:MM:SS` format")
	fs.StringVar(&args.sep, "s", cfg.Separator, "column `separator`")
	fs.BoolVar(&args.count, "count", false, "print the number of ticks only")
	fs.BoolVar(&args.manifest, "manifest", false, "print one line per file instead of ticks")
	fs.StringVar(&args.compression, "compression", cfg.Compression, "file compression: lzma, xz, zstd, s2, lz4 or none")
	fs.IntVar(&args.scale, "scale", cfg.PriceScale, "render prices with `N` decimal places")
	fs.StringVar(&args.period, "period", cfg.FilePeriod.String(), "time span of one non-dated file in a directory")
	fs.StringVar(&args.metricsFile, "metrics-file", cfg.MetricsFile, "write Prometheus metrics to this textfile")
	fs.StringVar(&args.logLevel, "log-level", cfg.LogLevel, "log `level`: debug, info, warn or error")

	if err := fs.Parse(argv); err != nil {
		return args, err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return args, fmt.Errorf("expected exactly one PATH argument, got %d", fs.NArg())
	}
	args.path = fs.Arg(0)

	if args.count && args.manifest {
		return args, errors.New("-count and -manifest are mutually exclusive")
	}
	if args.scale < 0 {
		return args, fmt.Errorf("invalid -scale %d: must not be negative", args.scale)
	}

	return args, nil
}

func newSource(args cliArgs, log *zap.Logger) (*bi5.Bi5, *metrics.Collector, error) {
	base := timebase.None()
	if args.date != "" {
		var err error
		if base, err = timebase.Parse(args.date); err != nil {
			return nil, nil, fmt.Errorf("invalid -d %q: %w", args.date, err)
		}
	}

	ct, err := format.ParseCompressionType(args.compression)
	if err != nil {
		return nil, nil, err
	}

	period, err := parsePeriod(args.period)
	if err != nil {
		return nil, nil, err
	}

	var collector *metrics.Collector
	if args.metricsFile != "" {
		collector = metrics.NewCollector()
	}

	b, err := bi5.New(args.path, base,
		bi5.WithCompression(ct),
		bi5.WithFilePeriod(period),
		bi5.WithLogger(log),
		bi5.WithMetrics(collector),
	)
	if err != nil {
		return nil, nil, err
	}

	return b, collector, nil
}

func exitCode(err error) int {
	switch errs.KindOf(err) {
	case errs.KindIO:
		return exitIO
	case errs.KindDecompression:
		return exitDecompression
	case errs.KindInvalidLength:
		return exitInvalidLength
	default:
		return exitUsage
	}
}
