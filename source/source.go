// Package source enumerates the tick files behind a bi5 path and assigns each
// file its base time.
//
// A directory walk selects regular files ending with the configured
// extension, orders them lexically by path components and folds a base time
// over the ordered list:
//
//   - a file whose path follows the provider layout (YYYY/MM/DD/HHh_ticks.bi5)
//     gets the hour encoded in its path;
//   - any other file gets the caller's base if it is the first file, or the
//     previous file's base advanced by one file period.
//
// With zero-padded layout names the lexical order is chronological, so the
// concatenated tick streams are time-ordered across file boundaries.
package source

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/arloliu/bi5/errs"
	"github.com/arloliu/bi5/timebase"
)

// DefaultPeriod is the time span covered by one provider file.
const DefaultPeriod = time.Hour

// Source is one tick file and the base time its offsets are relative to.
type Source struct {
	// Path is the file path as found by the walk.
	Path string
	// Base is the effective base time of the file's tick offsets.
	Base timebase.Base
	// Dated reports whether Base was derived from the file's path.
	Dated bool
}

// Single returns the source for an explicitly named file.
//
// The caller's base always applies to a single file; the path layout is only
// consulted during directory walks.
func Single(path string, base timebase.Base) Source {
	return Source{Path: path, Base: base}
}

// Discover walks root and returns its eligible files in iteration order with
// their base times.
//
// Parameters:
//   - root: Directory to walk recursively
//   - ext: File name suffix of eligible files (e.g. ".bi5")
//   - first: Base for the first file when its path is not date-bearing
//   - period: Base advancement between consecutive non-dated files
//
// Returns:
//   - []Source: Eligible files in lexical path order (empty if none)
//   - error: *errs.IOError if the tree cannot be listed
func Discover(root string, ext string, first timebase.Base, period time.Duration) ([]Source, error) {
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return &errs.IOError{Path: path, Err: err}
		}
		if !d.Type().IsRegular() || !strings.HasSuffix(d.Name(), ext) {
			return nil
		}
		paths = append(paths, path)

		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(paths, comparePaths)

	return Fold(paths, first, period), nil
}

// Fold assigns base times to an already ordered list of paths.
//
// It is a pure function of its arguments: the current base is an accumulator
// threaded through the list.
func Fold(paths []string, first timebase.Base, period time.Duration) []Source {
	sources := make([]Source, 0, len(paths))

	current := first
	for i, path := range paths {
		src := Source{Path: path}

		switch t, ok := timebase.FromPath(path); {
		case ok:
			src.Base = timebase.At(t)
			src.Dated = true
		case i == 0:
			src.Base = first
		default:
			src.Base = current.Advance(period)
		}

		current = src.Base
		sources = append(sources, src)
	}

	return sources
}

// comparePaths orders paths component by component so that "a/b" sorts
// before "a.b/c" regardless of separator byte values.
func comparePaths(a, b string) int {
	return slices.Compare(
		strings.Split(filepath.ToSlash(a), "/"),
		strings.Split(filepath.ToSlash(b), "/"),
	)
}
