package sharedbuf

import (
	"bytes"
	"io"
)

// ImmutableBuffer is a frozen, read-only byte buffer handle. Once
// constructed it exposes no operation that mutates or rebinds it, so a
// value can be copied and read from any number of goroutines without
// coordination. Copies share the underlying storage; that is safe
// precisely because nothing can write through this type.
//
// ImmutableBuffer is a value type on purpose: assignment is the sharing
// copy, and with no exported fields and no setters there is no way to
// point an existing value at different bytes.
//
// The zero ImmutableBuffer is empty.
type ImmutableBuffer struct {
	s *store
}

// ImmutableFrom returns an immutable buffer holding a copy of p.
func ImmutableFrom(p []byte) ImmutableBuffer {
	return ImmutableBuffer{s: newStoreFrom(p)}
}

// ImmutableFromString returns an immutable buffer holding a copy of str.
func ImmutableFromString(str string) ImmutableBuffer {
	return ImmutableBuffer{s: newStoreFrom([]byte(str))}
}

// AdoptImmutable takes ownership of p without copying. The caller must
// not touch p afterward; any later write through it would break the
// immutability contract.
func AdoptImmutable(p []byte) ImmutableBuffer {
	return ImmutableBuffer{s: adoptStore(p)}
}

// Snapshot is the copy path of the transfer protocol: it allocates fresh
// storage and copies m's current bytes into it, in O(n). The result is
// decoupled from m immediately, so m can keep being mutated while the
// snapshot circulates.
func Snapshot(m *MutableBuffer) ImmutableBuffer {
	return ImmutableBuffer{s: newStoreFrom(m.Data())}
}

// Freeze is the move path of the transfer protocol: it transfers m's
// storage to the result in O(1), with no byte copy, and resets m to a
// brand-new empty store. The reset is what keeps the frozen bytes
// immutable; without it m would still alias them. After Freeze, m is
// empty and independently usable.
func Freeze(m *MutableBuffer) ImmutableBuffer {
	m.lazyInit()
	s := m.s
	m.s = newStore(0)
	return ImmutableBuffer{s: s}
}

// Bytes returns the live contents without copying. The returned slice
// must be treated as read-only; writing through it defeats the whole
// point of the type. Unlike MutableBuffer.Data, the slice stays valid
// for the life of the buffer, since nothing can resize the storage.
func (b ImmutableBuffer) Bytes() []byte {
	if b.s == nil {
		return nil
	}
	return b.s.buf
}

// ByteSlice returns a copy of the contents, for callers that need to
// hand the bytes to code outside their control.
func (b ImmutableBuffer) ByteSlice() []byte {
	src := b.Bytes()
	c := make([]byte, len(src))
	copy(c, src)
	return c
}

// Len returns the number of bytes in the buffer.
func (b ImmutableBuffer) Len() int {
	if b.s == nil {
		return 0
	}
	return len(b.s.buf)
}

// Empty reports whether the buffer holds no bytes.
func (b ImmutableBuffer) Empty() bool {
	return b.Len() == 0
}

// String returns a copy of the contents as a string.
func (b ImmutableBuffer) String() string {
	return string(b.Bytes())
}

// Equal reports byte-for-byte equality with another immutable buffer.
func (b ImmutableBuffer) Equal(o ImmutableBuffer) bool {
	return bytes.Equal(b.Bytes(), o.Bytes())
}

// EqualMutable reports byte-for-byte equality with a mutable buffer.
func (b ImmutableBuffer) EqualMutable(m *MutableBuffer) bool {
	return bytes.Equal(b.Bytes(), m.Data())
}

// Compare orders two buffers lexicographically, as in bytes.Compare.
func (b ImmutableBuffer) Compare(o ImmutableBuffer) int {
	return bytes.Compare(b.Bytes(), o.Bytes())
}

// Reader returns a bytes.Reader over the contents, for handing the
// frozen bytes to APIs that consume an io.Reader.
func (b ImmutableBuffer) Reader() *bytes.Reader {
	return bytes.NewReader(b.Bytes())
}

// WriteTo writes the full contents to w, implementing io.WriterTo. This
// is the usual exit point when the frozen buffer backs an outbound I/O
// operation.
func (b ImmutableBuffer) WriteTo(w io.Writer) (int64, error) {
	p := b.Bytes()
	if len(p) == 0 {
		return 0, nil
	}
	n, err := w.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return int64(n), err
}
