package bi5

import "github.com/arloliu/bi5/timebase"

// ManifestEntry describes one file of a walk.
type ManifestEntry struct {
	Path string
	// Base is the effective base time of the file's ticks.
	Base timebase.Base
	// Dated reports whether Base was derived from the file's path.
	Dated             bool
	Ticks             int
	RawBytes          int
	DecompressedBytes int
	// Checksum is the xxHash64 of the raw file bytes.
	Checksum uint64
}

// Manifest decodes every file behind the path and reports one entry per file,
// in iteration order.
//
// Like iteration, the first file error aborts the manifest and no partial
// result is returned.
func (b *Bi5) Manifest() ([]ManifestEntry, error) {
	sources, err := b.Sources()
	if err != nil {
		return nil, err
	}

	entries := make([]ManifestEntry, 0, len(sources))
	for _, src := range sources {
		stats, err := b.cfg.decodeFile(src.Path, false)
		if err != nil {
			return nil, err
		}

		entries = append(entries, ManifestEntry{
			Path:              src.Path,
			Base:              src.Base,
			Dated:             src.Dated,
			Ticks:             stats.count,
			RawBytes:          stats.rawBytes,
			DecompressedBytes: stats.decompressedBytes,
			Checksum:          stats.checksum,
		})
	}

	return entries, nil
}
