package sharedbuf

import (
	"bytes"
	"sync"
	"testing"
)

func TestImmutableRoundTrip(t *testing.T) {
	b := ImmutableFrom(testData)
	if b.Empty() {
		t.Fatal("expected non-empty buffer")
	}
	if b.Len() != len(testData) {
		t.Errorf("expected length %d, got %d", len(testData), b.Len())
	}
	if !bytes.Equal(b.Bytes(), testData) {
		t.Errorf("expected %v, got %v", testData, b.Bytes())
	}

	// The buffer holds a copy, not the source slice.
	src := []byte{1, 2, 3}
	b2 := ImmutableFrom(src)
	src[0] = 99
	if b2.Bytes()[0] != 1 {
		t.Error("construction must copy the source bytes")
	}
}

func TestImmutableZeroValue(t *testing.T) {
	var b ImmutableBuffer
	if !b.Empty() || b.Len() != 0 {
		t.Fatal("zero buffer must be empty")
	}
	if b.Bytes() != nil {
		t.Error("zero buffer must have no bytes")
	}
}

func TestImmutableValueCopyShares(t *testing.T) {
	b := ImmutableFromString("frozen")
	c := b
	if !c.Equal(b) {
		t.Fatal("copies must compare equal")
	}
	if &b.s.buf[0] != &c.s.buf[0] {
		t.Error("value copy must share storage, not duplicate it")
	}
}

func TestImmutableByteSlice(t *testing.T) {
	b := ImmutableFrom(testData)
	c := b.ByteSlice()
	c[0] = 0xee
	if b.Bytes()[0] == 0xee {
		t.Error("ByteSlice must return an independent copy")
	}
}

func TestFreezeMovesStorage(t *testing.T) {
	m := MutableFrom([]byte{0xaa, 0xbb, 0xcc})
	pre := append([]byte(nil), m.Data()...)
	addr := &m.Data()[0]

	frozen := Freeze(m)

	if !bytes.Equal(frozen.Bytes(), pre) {
		t.Errorf("expected %v, got %v", pre, frozen.Bytes())
	}
	if &frozen.Bytes()[0] != addr {
		t.Error("move path must transfer storage, not copy it")
	}

	// The source is reset to a fresh empty store, not left aliasing.
	if !m.Empty() {
		t.Fatalf("expected empty source after freeze, got %d bytes", m.Len())
	}
	m.Append([]byte{0x01, 0x02, 0x03, 0x04, 0x05})
	if !bytes.Equal(frozen.Bytes(), pre) {
		t.Error("mutating the source after freeze must not alter frozen bytes")
	}
	if m.EqualImmutable(frozen) {
		t.Error("source and frozen buffer should differ after refill")
	}
}

func TestSnapshotCopiesStorage(t *testing.T) {
	m := MutableFrom([]byte{0xaa, 0xbb, 0xcc})
	snap := Snapshot(m)

	if !snap.EqualMutable(m) {
		t.Fatal("snapshot must equal the source at call time")
	}
	if &snap.Bytes()[0] == &m.Data()[0] {
		t.Error("copy path must allocate independent storage")
	}

	// Source stays usable and independent.
	m.Data()[0] = 0x00
	if snap.Bytes()[0] != 0xaa {
		t.Error("mutating the source must not alter the snapshot")
	}
}

func TestCrossTypeEquality(t *testing.T) {
	m := MutableFrom([]byte{0xaa, 0xbb, 0xcc})
	b := ImmutableFrom([]byte{0xaa, 0xbb, 0xcc})

	if !m.EqualImmutable(b) {
		t.Error("mutable == immutable expected")
	}
	if !b.EqualMutable(m) {
		t.Error("immutable == mutable expected")
	}

	m.AppendByte(0x01)
	if m.EqualImmutable(b) || b.EqualMutable(m) {
		t.Error("buffers with different contents must not compare equal")
	}
}

func TestImmutableComparison(t *testing.T) {
	b1 := ImmutableFrom([]byte{0x00, 0x00, 0x00})
	b2 := ImmutableFrom([]byte{0x00, 0x22, 0x33})

	if b1.Equal(b2) {
		t.Error("distinct contents must not compare equal")
	}
	if b1.Compare(b2) >= 0 {
		t.Error("expected {0x00,0x00,0x00} < {0x00,0x22,0x33}")
	}
	pre := ImmutableFrom([]byte{0x61})
	ext := ImmutableFrom([]byte{0x61, 0x00})
	if pre.Compare(ext) >= 0 {
		t.Error("proper prefix must order before its extension")
	}
}

func TestImmutableReaderAndWriteTo(t *testing.T) {
	b := ImmutableFromString("read me")

	r := b.Reader()
	got := make([]byte, b.Len())
	if _, err := r.Read(got); err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if string(got) != "read me" {
		t.Errorf("expected %q, got %q", "read me", got)
	}

	var sink bytes.Buffer
	n, err := b.WriteTo(&sink)
	if err != nil {
		t.Fatalf("WriteTo error: %v", err)
	}
	if n != int64(b.Len()) || sink.String() != "read me" {
		t.Errorf("WriteTo wrote %d bytes, sink %q", n, sink.String())
	}
}

func TestImmutableConcurrentReaders(t *testing.T) {
	const goroutines = 100

	m := NewMutable()
	for i := 0; i < 1024; i++ {
		m.AppendByte(byte(i % 256))
	}
	want := append([]byte(nil), m.Data()...)
	frozen := Freeze(m)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			local := frozen // handle copy, shares storage
			if !bytes.Equal(local.Bytes(), want) {
				t.Error("concurrent reader observed wrong bytes")
			}
		}()
	}
	wg.Wait()

	// The producer may keep going with the reset source meanwhile.
	m.AppendString("next message")
	if !bytes.Equal(frozen.Bytes(), want) {
		t.Error("frozen bytes changed under concurrent reads")
	}
}

func BenchmarkFreeze(b *testing.B) {
	p := bytes.Repeat([]byte{0xab}, 1<<16)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m := AdoptMutable(p)
		_ = Freeze(m)
	}
}

func BenchmarkSnapshot(b *testing.B) {
	m := MutableFrom(bytes.Repeat([]byte{0xab}, 1<<16))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Snapshot(m)
	}
}
