// Package record implements the fixed-width bi5 tick record codec.
//
// A bi5 payload is a flat concatenation of 20-byte records with no header,
// footer or count. Each record holds five big-endian fields in fixed order:
//
//	offset  size  field
//	0       4     millisecs  uint32  milliseconds since the file's base time
//	4       4     ask        uint32  ask price in instrument points
//	8       4     bid        uint32  bid price in instrument points
//	12      4     askvol     float32 ask volume
//	16      4     bidvol     float32 bid volume
//
// The record count is implicit: len(payload) / Size. A payload whose length
// is not a multiple of Size is rejected as a whole, since record boundaries
// cannot be re-synchronised once misaligned.
//
// Prices are returned as stored; no point scaling is applied by this package.
package record
