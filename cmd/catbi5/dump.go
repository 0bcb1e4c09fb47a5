package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/arloliu/bi5"
	"github.com/arloliu/bi5/errs"
	"github.com/arloliu/bi5/internal/render"
)

var manifestHeader = []string{"path", "base", "dated", "ticks", "raw_bytes", "decompressed_bytes", "xxhash"}

func dump(b *bi5.Bi5, args cliArgs, stdout io.Writer) error {
	switch {
	case args.count:
		n, err := b.Count()
		if err != nil {
			return err
		}

		return writeOut(stdout, strconv.Itoa(n)+"\n")
	case args.manifest:
		return dumpManifest(b, args.sep, stdout)
	default:
		return dumpTicks(b, args, stdout)
	}
}

func dumpTicks(b *bi5.Bi5, args cliArgs, stdout io.Writer) error {
	it, err := b.Iter()
	if err != nil {
		return err
	}

	w := render.NewWriter(stdout, render.Options{
		Separator:  args.sep,
		Scale:      args.scale,
		Timestamps: b.Base().IsSet() || isDir(b.Path()),
	})

	if err := w.WriteHeader(); err != nil {
		return &errs.IOError{Path: "stdout", Err: err}
	}
	for ts, tick := range it.All() {
		if err := w.WriteTick(ts, tick); err != nil {
			return &errs.IOError{Path: "stdout", Err: err}
		}
	}
	if err := w.Flush(); err != nil {
		return &errs.IOError{Path: "stdout", Err: err}
	}

	return it.Err()
}

func dumpManifest(b *bi5.Bi5, sep string, stdout io.Writer) error {
	entries, err := b.Manifest()
	if err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(manifestHeader, sep))
	sb.WriteByte('\n')
	for _, e := range entries {
		sb.WriteString(strings.Join([]string{
			e.Path,
			e.Base.String(),
			strconv.FormatBool(e.Dated),
			strconv.Itoa(e.Ticks),
			strconv.Itoa(e.RawBytes),
			strconv.Itoa(e.DecompressedBytes),
			fmt.Sprintf("%016x", e.Checksum),
		}, sep))
		sb.WriteByte('\n')
	}

	return writeOut(stdout, sb.String())
}

func writeOut(stdout io.Writer, s string) error {
	if _, err := io.WriteString(stdout, s); err != nil {
		return &errs.IOError{Path: "stdout", Err: err}
	}

	return nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func parsePeriod(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid -period %q: %w", s, err)
	}

	return d, nil
}
