package secure

import (
	"io"
	"runtime"
)

// destroyHook, when set, observes the backing storage after it has been
// wiped and before it is released. Tests use it to check the wipe.
var destroyHook func([]byte)

// noCopy makes go vet's copylocks check flag Buffer values that are copied.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Buffer is an owned, fixed-length byte buffer that is zeroed on Destroy.
type Buffer struct {
	_      noCopy
	data   []byte
	sealed bool
}

// NewBuffer allocates a buffer of exactly n bytes
func NewBuffer(n int) *Buffer {
	return &Buffer{data: make([]byte, n)}
}

// Len returns the buffer length, or 0 once destroyed
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Set stores c at position i. It panics once the buffer is sealed.
func (b *Buffer) Set(i int, c byte) {
	b.mustBeOpen()
	b.data[i] = c
}

// Swap exchanges the bytes at positions i and j. It panics once the buffer
// is sealed.
func (b *Buffer) Swap(i, j int) {
	b.mustBeOpen()
	b.data[i], b.data[j] = b.data[j], b.data[i]
}

// Seal marks construction as finished. The content is read-only afterwards.
func (b *Buffer) Seal() {
	b.sealed = true
}

// Sealed reports whether Seal has been called
func (b *Buffer) Sealed() bool {
	return b.sealed
}

// Bytes returns the backing slice. The slice aliases the buffer and is
// wiped by Destroy; callers must not keep it.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.data
}

// WriteTo writes the buffer content to w without building a string copy
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.Bytes())
	return int64(n), err
}

// Clone returns a new sealed buffer holding a copy of the content
func (b *Buffer) Clone() *Buffer {
	c := NewBuffer(b.Len())
	copy(c.data, b.Bytes())
	c.Seal()
	return c
}

// Destroy overwrites the content with zeros and releases the storage.
// It is safe to call more than once and on a nil buffer.
func (b *Buffer) Destroy() {
	if b == nil || b.data == nil {
		return
	}
	ClearBytes(b.data)
	if destroyHook != nil {
		destroyHook(b.data)
	}
	b.data = nil
	b.sealed = true
}

func (b *Buffer) mustBeOpen() {
	if b.sealed {
		panic("secure: write to sealed buffer")
	}
}

// Join concatenates the buffers into a new sealed buffer, placing sep
// between consecutive parts. There is no trailing separator.
func Join(bufs []*Buffer, sep byte) *Buffer {
	if len(bufs) == 0 {
		out := NewBuffer(0)
		out.Seal()
		return out
	}

	size := len(bufs) - 1
	for _, b := range bufs {
		size += b.Len()
	}

	out := NewBuffer(size)
	pos := 0
	for i, b := range bufs {
		if i > 0 {
			out.data[pos] = sep
			pos++
		}
		pos += copy(out.data[pos:], b.Bytes())
	}
	out.Seal()
	return out
}

// ClearBytes securely clears a byte slice
func ClearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	// Keep b reachable until after the stores so they are not elided
	runtime.KeepAlive(b)
}
