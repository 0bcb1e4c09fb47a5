package bi5

import (
	"iter"
	"time"

	"github.com/arloliu/bi5/record"
	"github.com/arloliu/bi5/source"
	"github.com/arloliu/bi5/timebase"
)

// Iterator is a pull-based, single-pass sequence of timestamped ticks.
//
// Files are decoded one at a time when the previous file's ticks are
// exhausted; each file is opened, read and closed inside a single Next call,
// so abandoning an iterator never leaks a file handle.
//
// The first file error stops the iteration: Next returns false and Err
// reports the error. Remaining files are not visited. An exhausted or failed
// iterator cannot be restarted; obtain a new one from Bi5.Iter.
//
// Thread Safety: an Iterator must not be used from multiple goroutines.
//
// Example:
//
//	it, err := b.Iter()
//	if err != nil {
//	    return err
//	}
//	for it.Next() {
//	    tt := it.Value()
//	    fmt.Println(tt.Time, tt.Tick.Bid, tt.Tick.Ask)
//	}
//	if err := it.Err(); err != nil {
//	    return err
//	}
type Iterator struct {
	cfg     *Config
	sources []source.Source

	next  int // index of the next source to decode
	cur   source.Source
	ticks []record.Tick
	pos   int

	value TimestampedTick
	err   error
	done  bool
}

func newIterator(cfg *Config, sources []source.Source) *Iterator {
	return &Iterator{cfg: cfg, sources: sources}
}

// Next advances to the next tick. It returns false when the sequence is
// exhausted or a file failed to decode.
func (it *Iterator) Next() bool {
	if it.done {
		return false
	}

	for it.pos >= len(it.ticks) {
		if it.next >= len(it.sources) {
			it.stop(nil)
			return false
		}

		src := it.sources[it.next]
		it.next++

		stats, err := it.cfg.decodeFile(src.Path, true)
		if err != nil {
			it.stop(err)
			return false
		}

		it.cur = src
		it.ticks = stats.ticks
		it.pos = 0
	}

	tick := it.ticks[it.pos]
	it.pos++
	it.value = TimestampedTick{Time: timebase.Resolve(it.cur.Base, tick.Millisecs), Tick: tick}

	return true
}

func (it *Iterator) stop(err error) {
	it.err = err
	it.done = true
	it.ticks = nil
	it.value = TimestampedTick{}
}

// Value returns the current tick. It is only valid after Next returned true.
func (it *Iterator) Value() TimestampedTick {
	return it.value
}

// Source returns the file the current tick was decoded from.
func (it *Iterator) Source() source.Source {
	return it.cur
}

// Err returns the error that stopped the iteration, or nil after normal exhaustion.
func (it *Iterator) Err() error {
	return it.err
}

// All returns the remaining ticks as a range-over-func sequence.
//
// The sequence shares the iterator's position; check Err after the loop.
func (it *Iterator) All() iter.Seq2[time.Time, record.Tick] {
	return func(yield func(time.Time, record.Tick) bool) {
		for it.Next() {
			v := it.Value()
			if !yield(v.Time, v.Tick) {
				return
			}
		}
	}
}
