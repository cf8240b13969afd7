package sharedbuf

import (
	"bytes"
	"io"
)

// MutableBuffer is a growable, reference-counted byte buffer handle. It
// is the fill-side half of the pair: serialize a message into it
// incrementally, then hand it to Freeze or Snapshot to publish the bytes
// as an ImmutableBuffer.
//
// Clone returns a second handle to the SAME storage: mutation through
// either handle is visible through the other. This aliasing is the
// documented sharing semantic of the type, not an accident; callers who
// need an independent buffer copy the bytes explicitly with
// MutableFrom(m.Data()).
//
// The slice returned by Data is invalidated by any mutating call
// (Resize, Append, Clear, Swap), the same discipline as any contiguous
// growable sequence.
//
// The zero MutableBuffer is empty and ready to use.
type MutableBuffer struct {
	s *store
}

// NewMutable returns an empty mutable buffer.
func NewMutable() *MutableBuffer {
	return &MutableBuffer{s: newStore(0)}
}

// MutableFrom returns a mutable buffer holding a copy of p.
func MutableFrom(p []byte) *MutableBuffer {
	return &MutableBuffer{s: newStoreFrom(p)}
}

// MutableFromString returns a mutable buffer holding a copy of str.
func MutableFromString(str string) *MutableBuffer {
	return &MutableBuffer{s: newStoreFrom([]byte(str))}
}

// MutableOfSize returns a mutable buffer of n zero bytes, for callers
// that fill it in place through Data.
func MutableOfSize(n int) *MutableBuffer {
	return &MutableBuffer{s: newStore(n)}
}

// AdoptMutable takes ownership of p without copying. The caller must not
// read or write p afterward; the buffer owns it now.
func AdoptMutable(p []byte) *MutableBuffer {
	return &MutableBuffer{s: adoptStore(p)}
}

func (m *MutableBuffer) lazyInit() {
	if m.s == nil {
		m.s = newStore(0)
	}
}

// Clone returns a new handle aliasing the same storage. See the type
// comment for the aliasing contract.
func (m *MutableBuffer) Clone() *MutableBuffer {
	m.lazyInit()
	return &MutableBuffer{s: m.s}
}

// Data returns the live byte contents. Writes through the returned slice
// are visible through every aliasing handle. The slice is invalidated by
// any subsequent mutating call on any alias.
func (m *MutableBuffer) Data() []byte {
	m.lazyInit()
	return m.s.buf
}

// Len returns the number of bytes in the buffer.
func (m *MutableBuffer) Len() int {
	if m.s == nil {
		return 0
	}
	return len(m.s.buf)
}

// Empty reports whether the buffer holds no bytes.
func (m *MutableBuffer) Empty() bool {
	return m.Len() == 0
}

// Clear resets the length to zero. Capacity is retained.
func (m *MutableBuffer) Clear() {
	m.lazyInit()
	m.s.clearAll()
}

// Resize grows or shrinks the buffer to exactly n bytes. Grown bytes are
// zero. Shrinking truncates without clearing the bytes beyond the new
// length.
func (m *MutableBuffer) Resize(n int) {
	m.lazyInit()
	m.s.resize(n)
}

// Swap exchanges the storage of two buffers in O(1). No bytes move.
func (m *MutableBuffer) Swap(o *MutableBuffer) {
	m.lazyInit()
	o.lazyInit()
	m.s, o.s = o.s, m.s
}

// Append grows the buffer by len(p) and copies p to the end. It returns
// the receiver so appends can be chained.
func (m *MutableBuffer) Append(p []byte) *MutableBuffer {
	m.lazyInit()
	m.s.appendBytes(p)
	return m
}

// AppendByte appends a single byte.
func (m *MutableBuffer) AppendByte(b byte) *MutableBuffer {
	return m.Append([]byte{b})
}

// AppendString appends the bytes of str.
func (m *MutableBuffer) AppendString(str string) *MutableBuffer {
	m.lazyInit()
	if len(m.s.buf) > maxLen-len(str) {
		panic(ErrTooLarge)
	}
	m.s.buf = append(m.s.buf, str...)
	return m
}

// AppendBuffer appends the contents of another mutable buffer.
func (m *MutableBuffer) AppendBuffer(o *MutableBuffer) *MutableBuffer {
	return m.Append(o.Data())
}

// Write implements io.Writer over Append, so a MutableBuffer can sit
// behind fmt.Fprintf, io.Copy and friends while a message is built. The
// only reportable failure is ErrTooLarge.
func (m *MutableBuffer) Write(p []byte) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			if r == ErrTooLarge {
				n, err = 0, ErrTooLarge
				return
			}
			panic(r)
		}
	}()
	m.Append(p)
	return len(p), nil
}

// ReadFrom implements io.ReaderFrom: it appends bytes from r until EOF.
// This is how a buffer is filled from a streaming source.
func (m *MutableBuffer) ReadFrom(r io.Reader) (n int64, err error) {
	m.lazyInit()
	const chunk = 512
	for {
		old := len(m.s.buf)
		m.s.resize(old + chunk)
		read, rerr := r.Read(m.s.buf[old : old+chunk])
		m.s.buf = m.s.buf[:old+read]
		n += int64(read)
		if rerr == io.EOF {
			return n, nil
		}
		if rerr != nil {
			return n, rerr
		}
	}
}

// Equal reports byte-for-byte equality with another mutable buffer.
func (m *MutableBuffer) Equal(o *MutableBuffer) bool {
	return bytes.Equal(m.Data(), o.Data())
}

// EqualImmutable reports byte-for-byte equality with an immutable
// buffer. Equality is defined on content only, irrespective of type.
func (m *MutableBuffer) EqualImmutable(b ImmutableBuffer) bool {
	return bytes.Equal(m.Data(), b.Bytes())
}

// Compare orders two buffers lexicographically, byte by byte. A buffer
// that is a proper prefix of another orders before it. The result is -1,
// 0 or +1, as in bytes.Compare.
func (m *MutableBuffer) Compare(o *MutableBuffer) int {
	return bytes.Compare(m.Data(), o.Data())
}

// String returns a copy of the contents as a string, for diagnostics.
func (m *MutableBuffer) String() string {
	return string(m.Data())
}
