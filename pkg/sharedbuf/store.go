package sharedbuf

// store is the shared byte storage behind every buffer handle. Handles
// alias a store through a plain pointer, so copying a handle is a pointer
// assignment and the runtime reclaims the storage when the last handle
// drops it. That makes handle copy and release safe from any goroutine.
// Mutation of the bytes themselves is not synchronized; callers serialize
// access to a given store.
type store struct {
	buf []byte
}

// newStore returns a store of n zero bytes.
func newStore(n int) *store {
	if n < 0 {
		panic(ErrNegativeSize)
	}
	return &store{buf: makeSlice(n)}
}

// newStoreFrom returns a store holding a copy of p.
func newStoreFrom(p []byte) *store {
	s := &store{buf: makeSlice(len(p))}
	copy(s.buf, p)
	return s
}

// adoptStore takes ownership of p without copying.
func adoptStore(p []byte) *store {
	return &store{buf: p}
}

// resize grows or shrinks the store to exactly n bytes. Grown bytes are
// always zero, even when the growth fits in recycled capacity. Shrinking
// truncates; the bytes beyond the new length stay in memory until the
// next growth overwrites them.
func (s *store) resize(n int) {
	if n < 0 {
		panic(ErrNegativeSize)
	}
	if n <= len(s.buf) {
		s.buf = s.buf[:n]
		return
	}
	if n <= cap(s.buf) {
		old := len(s.buf)
		s.buf = s.buf[:n]
		clear(s.buf[old:]) // recycled capacity may hold stale bytes
		return
	}
	grown := makeSlice(n)
	copy(grown, s.buf)
	s.buf = grown
}

// appendBytes grows the store by len(p) and copies p to the end.
func (s *store) appendBytes(p []byte) {
	if len(s.buf) > maxLen-len(p) {
		panic(ErrTooLarge)
	}
	s.buf = append(s.buf, p...)
}

// clearAll resets the length to zero, keeping capacity.
func (s *store) clearAll() {
	s.buf = s.buf[:0]
}

// maxLen is the largest length a store can reach.
const maxLen = int(^uint(0) >> 1)

// makeSlice allocates n zero bytes, converting a failed allocation into
// an ErrTooLarge panic.
func makeSlice(n int) []byte {
	defer func() {
		if recover() != nil {
			panic(ErrTooLarge)
		}
	}()
	return make([]byte, n)
}
