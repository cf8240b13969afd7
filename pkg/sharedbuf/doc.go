// Package sharedbuf provides reference-counted byte buffers for managing
// the lifetime of data handed to asynchronous I/O operations.
//
// The package offers two cooperating handle types over shared storage:
//
//   - MutableBuffer: a growable, in-place-writable buffer. Cloning a
//     handle shares the storage, so mutation through one handle is
//     visible through the other.
//
//   - ImmutableBuffer: a frozen, read-only buffer. Copies share storage
//     and are safe to read from any number of goroutines concurrently,
//     because nothing in the API can mutate the bytes.
//
// The two are connected by the transfer protocol:
//
//   - Snapshot(m) copies m's bytes into fresh storage (O(n)); use it
//     when m will keep being mutated after publishing.
//
//   - Freeze(m) transfers m's storage without copying (O(1)) and resets
//     m to a fresh empty store; use it when m's job is done.
//
// The intended flow: serialize a message into a MutableBuffer, convert
// it to an ImmutableBuffer, then share that value freely across however
// many in-flight writes need to observe the same bytes until completion.
//
// Handle copy and release are safe from any goroutine; mutating the
// bytes of a given storage is not synchronized, and callers must keep a
// single-writer discipline until the content is frozen.
//
// Example usage:
//
//	m := sharedbuf.NewMutable()
//	m.AppendString("PING").AppendByte(0x00)
//
//	frozen := sharedbuf.Freeze(m) // m is empty and reusable now
//	for _, conn := range conns {
//		go frozen.WriteTo(conn)
//	}
package sharedbuf
