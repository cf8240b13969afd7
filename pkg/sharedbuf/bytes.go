package sharedbuf

import "unsafe"

// Scalar constrains element types whose slices may be reinterpreted as
// raw bytes: fixed-size integers and floats with no pointers inside.
type Scalar interface {
	~uint8 | ~int8 | ~uint16 | ~int16 | ~uint32 | ~int32 |
		~uint64 | ~int64 | ~float32 | ~float64
}

// AsBytes reinterprets a slice of scalar elements as the raw bytes
// backing it, without copying. The view uses the host's native byte
// order and shares memory with s: it is valid only while s is, and
// writes through either alias the other. This is the explicit
// reinterpretation boundary for filling or draining buffers from typed
// data; everything else in the package traffics in plain []byte.
func AsBytes[T Scalar](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(s[0])))
}

// StringToBytes converts a string to []byte without allocating. The
// returned slice shares memory with the string and must not be
// modified.
func StringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// BytesToString converts a []byte to a string without allocating. The
// slice must not be modified afterward.
func BytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
