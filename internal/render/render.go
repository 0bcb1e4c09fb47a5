// Package render formats decoded ticks as separator-delimited text rows.
package render

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/arloliu/bi5/record"
	"github.com/shopspring/decimal"
)

const (
	timeLayout       = "2006-01-02 15:04:05"
	timeLayoutMillis = "2006-01-02 15:04:05.000"
)

// Header is the column list of every table written by Writer.
var Header = []string{"t", "bid", "ask", "bidsize", "asksize"}

// Options controls the row format.
type Options struct {
	// Separator is placed between columns.
	Separator string
	// Scale renders prices as decimals with Scale fractional digits.
	// Zero prints the raw integer points.
	Scale int
	// Timestamps prints resolved times in the first column instead of the
	// raw millisecond offsets.
	Timestamps bool
}

// Writer writes tick rows to a buffered output.
type Writer struct {
	w    *bufio.Writer
	opts Options
	buf  []byte
}

// NewWriter creates a Writer on top of w.
func NewWriter(w io.Writer, opts Options) *Writer {
	return &Writer{w: bufio.NewWriter(w), opts: opts, buf: make([]byte, 0, 128)}
}

// WriteHeader writes the column names.
func (w *Writer) WriteHeader() error {
	_, err := w.w.WriteString(strings.Join(Header, w.opts.Separator) + "\n")
	return err
}

// WriteTick writes one row. ts is only used when Options.Timestamps is set.
func (w *Writer) WriteTick(ts time.Time, tick record.Tick) error {
	b := w.buf[:0]
	if w.opts.Timestamps {
		b = AppendTime(b, ts)
	} else {
		b = strconv.AppendUint(b, uint64(tick.Millisecs), 10)
	}
	b = append(b, w.opts.Separator...)
	b = AppendPrice(b, tick.Bid, w.opts.Scale)
	b = append(b, w.opts.Separator...)
	b = AppendPrice(b, tick.Ask, w.opts.Scale)
	b = append(b, w.opts.Separator...)
	b = AppendVolume(b, tick.BidVolume)
	b = append(b, w.opts.Separator...)
	b = AppendVolume(b, tick.AskVolume)
	b = append(b, '\n')
	w.buf = b

	_, err := w.w.Write(b)

	return err
}

// Flush writes any buffered rows to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// AppendTime appends t as "YYYY-MM-DD HH:MM:SS", followed by milliseconds
// only when the sub-second part is non-zero.
func AppendTime(dst []byte, t time.Time) []byte {
	if t.Nanosecond() == 0 {
		return t.AppendFormat(dst, timeLayout)
	}

	return t.AppendFormat(dst, timeLayoutMillis)
}

// AppendPrice appends a price in points, shifted by scale decimal places.
func AppendPrice(dst []byte, points uint32, scale int) []byte {
	if scale <= 0 {
		return strconv.AppendUint(dst, uint64(points), 10)
	}

	return append(dst, decimal.New(int64(points), -int32(scale)).StringFixed(int32(scale))...)
}

// AppendVolume appends a volume in its shortest float32 representation.
func AppendVolume(dst []byte, v float32) []byte {
	return strconv.AppendFloat(dst, float64(v), 'g', -1, 32)
}
