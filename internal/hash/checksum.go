package hash

import "github.com/cespare/xxhash/v2"

// Checksum computes the xxHash64 of the given bytes.
//
// It fingerprints raw tick files so that a decoded file can be matched to the
// exact bytes it came from.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
