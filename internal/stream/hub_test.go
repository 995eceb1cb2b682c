// v1
// internal/stream/hub_test.go
package stream

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func testHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	h := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	srv := httptest.NewServer(http.HandlerFunc(h.ServeWS))
	t.Cleanup(srv.Close)
	t.Cleanup(h.Close)
	return h, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	return conn
}

func TestBroadcastReachesClient(t *testing.T) {
	h, srv := testHub(t)
	conn := dial(t, srv)
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for h.Clients() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	h.Broadcast(map[string]any{"step": 7})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg struct {
		Step int `json:"step"`
	}
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read broadcast: %v", err)
	}
	if msg.Step != 7 {
		t.Fatalf("broadcast payload = %+v", msg)
	}
}

func TestClosedClientIsDropped(t *testing.T) {
	h, srv := testHub(t)
	conn := dial(t, srv)

	deadline := time.Now().Add(2 * time.Second)
	for h.Clients() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	_ = conn.Close()

	// The reader goroutine notices the close; a broadcast flushes stragglers.
	deadline = time.Now().Add(2 * time.Second)
	for h.Clients() != 0 {
		h.Broadcast(map[string]any{"ping": true})
		if time.Now().After(deadline) {
			t.Fatalf("client not dropped, %d still registered", h.Clients())
		}
		time.Sleep(10 * time.Millisecond)
	}
}
