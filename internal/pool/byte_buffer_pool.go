package pool

import (
	"io"
	"sync"
)

const (
	// FileBufferDefaultSize is the default capacity of raw file buffers.
	// Compressed hour files are typically a few KiB to a few hundred KiB.
	FileBufferDefaultSize  = 1024 * 64       // 64KiB
	FileBufferMaxThreshold = 1024 * 1024 * 2 // 2MiB

	// PayloadBufferDefaultSize is the default capacity of decompressed payload buffers.
	PayloadBufferDefaultSize  = 1024 * 256       // 256KiB
	PayloadBufferMaxThreshold = 1024 * 1024 * 16 // 16MiB

	minRead = 512
)

type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

var (
	_ io.Writer     = (*ByteBuffer)(nil)
	_ io.ReaderFrom = (*ByteBuffer)(nil)
)

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Grow grows the buffer to ensure it can hold requiredBytes more bytes without reallocating.
// If the buffer has sufficient capacity, Grow does nothing.
//
// The growth strategy is as follows:
//   - For small buffers (<256KiB), grow by FileBufferDefaultSize to minimize reallocations.
//   - For larger buffers, grow by 25% of current capacity to balance memory usage and reallocation cost.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := FileBufferDefaultSize
	if cap(bb.B) > 4*FileBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends the contents of data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// ReadFrom appends everything read from r until io.EOF.
//
// It makes no assumption about the total size; the buffer grows as data arrives.
// A non-EOF error from r is returned together with the number of bytes read so far.
func (bb *ByteBuffer) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for {
		bb.Grow(minRead)

		start := len(bb.B)
		n, err := r.Read(bb.B[start:cap(bb.B)])
		if n < 0 {
			panic("ByteBuffer.ReadFrom: reader returned negative count")
		}

		bb.B = bb.B[:start+n]
		total += int64(n)

		if err == io.EOF { //nolint: errorlint
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// It uses sync.Pool internally to manage the buffers.
// The pool can be configured with a maximum size threshold to avoid retaining
// overly large buffers that could lead to memory bloat.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		// Discard overly large buffers to prevent memory bloat
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	fileDefaultPool    = NewByteBufferPool(FileBufferDefaultSize, FileBufferMaxThreshold)
	payloadDefaultPool = NewByteBufferPool(PayloadBufferDefaultSize, PayloadBufferMaxThreshold)
)

// GetFileBuffer retrieves a ByteBuffer for raw (compressed) file contents.
func GetFileBuffer() *ByteBuffer {
	return fileDefaultPool.Get()
}

// PutFileBuffer returns a raw file buffer to its pool.
func PutFileBuffer(bb *ByteBuffer) {
	fileDefaultPool.Put(bb)
}

// GetPayloadBuffer retrieves a ByteBuffer for decompressed record payloads.
func GetPayloadBuffer() *ByteBuffer {
	return payloadDefaultPool.Get()
}

// PutPayloadBuffer returns a payload buffer to its pool.
func PutPayloadBuffer(bb *ByteBuffer) {
	payloadDefaultPool.Put(bb)
}
