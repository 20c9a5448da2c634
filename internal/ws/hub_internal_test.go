package ws

import (
	"sync"
	"testing"
	"time"

	"github.com/orbitalos/orbitalos/internal/catalog"
	"github.com/orbitalos/orbitalos/internal/orbit"
	"github.com/orbitalos/orbitalos/internal/store"
)

// TestHub_BroadcastSafeDuringDisconnects churns client registration against a
// tight broadcast loop. A broadcast may snapshot a client just before its
// disconnect closes the send channel; the delivery path must never send on
// that closed channel and panic the hub goroutine.
func TestHub_BroadcastSafeDuringDisconnects(t *testing.T) {
	st := store.New([]catalog.Entry{
		{ID: "iss", Name: "ISS", Elements: orbit.Elements{AltitudeKm: 420, InclinationDeg: 51.6}},
	})
	h := New(st, time.Hour)

	stop := make(chan struct{})
	var broadcasters sync.WaitGroup
	for i := 0; i < 2; i++ {
		broadcasters.Add(1)
		go func() {
			defer broadcasters.Done()
			for {
				select {
				case <-stop:
					return
				default:
					h.broadcast()
				}
			}
		}()
	}

	// Churn: tiny send buffers make broadcasts race the close in unregister.
	for i := 0; i < 2000; i++ {
		c := &client{send: make(chan []byte, 1)}
		h.register(c)
		h.unregister(c)
	}

	close(stop)
	broadcasters.Wait()

	if n := h.Count(); n != 0 {
		t.Errorf("Count after churn: got %d, want 0", n)
	}
}

// TestHub_UnregisterTwice verifies a client already removed by a full-buffer
// disconnect can be unregistered again by its connection teardown without
// closing the channel twice.
func TestHub_UnregisterTwice(t *testing.T) {
	h := New(store.New(nil), time.Hour)

	c := &client{send: make(chan []byte, 1)}
	h.register(c)
	h.unregister(c)
	h.unregister(c) // must be a no-op

	if n := h.Count(); n != 0 {
		t.Errorf("Count: got %d, want 0", n)
	}
}
