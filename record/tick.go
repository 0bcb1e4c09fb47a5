package record

import (
	"fmt"
	"iter"

	"github.com/arloliu/bi5/endian"
	"github.com/arloliu/bi5/errs"
)

// Size is the encoded size of one record in bytes.
const Size = 20

const (
	offMillisecs = 0
	offAsk       = 4
	offBid       = 8
	offAskVolume = 12
	offBidVolume = 16
)

var engine = endian.GetBigEndianEngine()

// Tick is one quote observation decoded from a record.
type Tick struct {
	// Millisecs is the offset from the file's base time, not from the Unix epoch.
	Millisecs uint32
	Ask       uint32
	Bid       uint32
	AskVolume float32
	BidVolume float32
}

// String renders the tick as "millisecs,bid,ask,bidvol,askvol".
func (t Tick) String() string {
	return fmt.Sprintf("%d,%d,%d,%g,%g", t.Millisecs, t.Bid, t.Ask, t.BidVolume, t.AskVolume)
}

// Decode decodes the record in the first Size bytes of b.
//
// Every bit pattern is a legal record, so Decode cannot fail once b holds a
// full record. It panics if len(b) < Size.
func Decode(b []byte) Tick {
	_ = b[Size-1] // bounds check hint

	return Tick{
		Millisecs: engine.Uint32(b[offMillisecs:]),
		Ask:       engine.Uint32(b[offAsk:]),
		Bid:       engine.Uint32(b[offBid:]),
		AskVolume: endian.Float32(engine, b[offAskVolume:]),
		BidVolume: endian.Float32(engine, b[offBidVolume:]),
	}
}

// Append appends the record encoding of t to dst and returns the extended slice.
func Append(dst []byte, t Tick) []byte {
	dst = engine.AppendUint32(dst, t.Millisecs)
	dst = engine.AppendUint32(dst, t.Ask)
	dst = engine.AppendUint32(dst, t.Bid)
	dst = endian.AppendFloat32(engine, dst, t.AskVolume)
	dst = endian.AppendFloat32(engine, dst, t.BidVolume)

	return dst
}

// Count returns the number of records in data.
//
// Returns:
//   - int: len(data) / Size
//   - error: *errs.LengthError if len(data) is not a multiple of Size
func Count(data []byte) (int, error) {
	if len(data)%Size != 0 {
		return 0, &errs.LengthError{Length: len(data), RecordSize: Size}
	}

	return len(data) / Size, nil
}

// DecodeAll decodes every record in data, in order.
//
// Record i occupies bytes [i*Size, (i+1)*Size). An empty payload yields an
// empty, non-nil slice. A payload with trailing partial bytes yields a nil
// slice and a *errs.LengthError; no partial result is ever returned.
//
// Parameters:
//   - data: Decompressed payload
//
// Returns:
//   - []Tick: Decoded ticks in payload order
//   - error: *errs.LengthError (errors.Is(err, errs.ErrInvalidLength)) on misaligned input
func DecodeAll(data []byte) ([]Tick, error) {
	n, err := Count(data)
	if err != nil {
		return nil, err
	}

	ticks := make([]Tick, n)
	for i := range ticks {
		ticks[i] = Decode(data[i*Size:])
	}

	return ticks, nil
}

// All returns a lazy sequence of (index, tick) pairs over data.
//
// The payload must already be validated with Count; trailing partial bytes
// are not visited.
func All(data []byte) iter.Seq2[int, Tick] {
	return func(yield func(int, Tick) bool) {
		n := len(data) / Size
		for i := range n {
			if !yield(i, Decode(data[i*Size:])) {
				return
			}
		}
	}
}
