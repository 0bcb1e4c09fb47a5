// Package endian provides byte order utilities for the fixed-width record codec.
//
// The package combines the ByteOrder and AppendByteOrder interfaces of the
// standard encoding/binary package into a single EndianEngine, and adds
// IEEE 754 float32 helpers on top of it.
//
// bi5 records are always big-endian regardless of the host:
//
//	engine := endian.GetBigEndianEngine()
//	ms := engine.Uint32(rec[0:4])
//	vol := endian.Float32(engine, rec[12:16])
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"math"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// Float32 decodes an IEEE 754 single-precision value from the first 4 bytes of b.
//
// Every bit pattern is accepted, including NaN payloads and infinities.
func Float32(engine EndianEngine, b []byte) float32 {
	return math.Float32frombits(engine.Uint32(b))
}

// AppendFloat32 appends the IEEE 754 bits of v to dst.
func AppendFloat32(engine EndianEngine, dst []byte, v float32) []byte {
	return engine.AppendUint32(dst, math.Float32bits(v))
}
