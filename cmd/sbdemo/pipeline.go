package main

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/ssungk/sharedbuf/pkg/sharedbuf"
)

// run publishes messages through a single reused MutableBuffer. Freeze
// resets the buffer after every publication, so one producer buffer
// serves the whole run while each frozen message stays alive until its
// last writer finishes.
func run(writers, messages, payloadSize int) error {
	slog.Info("Demo started", "writers", writers, "messages", messages, "payload", payloadSize)

	msg := sharedbuf.NewMutable()

	for seq := 1; seq <= messages; seq++ {
		fillMessage(msg, seq, payloadSize)
		want := checksum(msg.Data())

		frozen := sharedbuf.Freeze(msg) // msg is empty again for the next round

		var wg sync.WaitGroup
		for id := 0; id < writers; id++ {
			wg.Add(1)
			go func(id int) {
				defer wg.Done()
				if err := mockWrite(frozen, want); err != nil {
					slog.Error("Write failed", "writer", id, "seq", seq, "error", err)
				}
			}(id)
		}
		wg.Wait()

		slog.Info("Message delivered", "seq", seq, "bytes", frozen.Len(), "checksum", fmt.Sprintf("%#02x", want))
	}

	slog.Info("Demo finished", "messages", messages)
	return nil
}

// fillMessage serializes a header through the io.Writer face of the
// buffer, then fills the payload in place through Data.
func fillMessage(m *sharedbuf.MutableBuffer, seq, payloadSize int) {
	fmt.Fprintf(m, "seq=%04d ", seq)

	header := m.Len()
	m.Resize(header + payloadSize)
	body := m.Data()[header:]
	for i := range body {
		body[i] = byte(seq + i)
	}
}

// mockWrite stands in for an asynchronous network write: it drains the
// frozen buffer and verifies the bytes it observed match what the
// producer published.
func mockWrite(frozen sharedbuf.ImmutableBuffer, want byte) error {
	if _, err := frozen.WriteTo(io.Discard); err != nil {
		return err
	}
	if got := checksum(frozen.Bytes()); got != want {
		return fmt.Errorf("checksum mismatch: got %#02x, want %#02x", got, want)
	}
	return nil
}

// checksum is a xor fold, enough to tell two payloads apart in a demo.
func checksum(p []byte) byte {
	var c byte
	for _, b := range p {
		c ^= b
	}
	return c
}
