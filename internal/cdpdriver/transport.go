package cdpdriver

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/bmcps/browsermcp/internal/bmcpslog"
)

// inboundSink is the narrow interface the transport depends on instead of
// reaching back into the correlator directly. The transport only ever calls
// HandleInbound with one fully reassembled text-frame payload at a time; it
// never needs to know what happens to that payload afterward. The correlator
// implements this interface, which breaks the cyclic relationship spec.md §9
// calls out between the transport callback and the correlator (no back
// pointer from transport to correlator is needed).
type inboundSink interface {
	HandleInbound(data []byte)
}

// transport is a single-connection, client-mode WebSocket to Chrome's
// DevTools endpoint. It never interprets payloads beyond detecting
// end-of-message (spec.md §4.B).
type transport struct {
	log *logrus.Entry

	mu        sync.Mutex
	conn      *websocket.Conn
	connected bool
	sendCh    chan []byte
	closeCh   chan struct{}
	closeOnce sync.Once

	sink inboundSink
}

func newTransport(sink inboundSink) *transport {
	return &transport{
		log:     bmcpslog.For("transport"),
		sink:    sink,
		sendCh:  make(chan []byte, 64),
		closeCh: make(chan struct{}),
	}
}

// connect performs the WebSocket handshake against wsURL, blocking until the
// connection is established, fails, or connectTimeout elapses (spec.md §4.B).
func (t *transport) connect(ctx context.Context, wsURL string, connectTimeout time.Duration) error {
	if _, err := url.Parse(wsURL); err != nil {
		return fmt.Errorf("%w: invalid websocket url: %v", ErrLaunchFailed, err)
	}

	dialCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	conn, _, err := websocket.DefaultDialer.DialContext(dialCtx, wsURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotConnected, err)
	}

	t.mu.Lock()
	t.conn = conn
	t.connected = true
	// A previous close() has closed closeCh for good; give this connection's
	// write loop a fresh one so the transport can be reopened.
	t.closeCh = make(chan struct{})
	t.closeOnce = sync.Once{}
	t.mu.Unlock()

	t.log.WithField("url", wsURL).Debug("connected to CDP endpoint")

	go t.readLoop()
	go t.writeLoop()
	return nil
}

func (t *transport) readLoop() {
	for {
		t.mu.Lock()
		conn := t.conn
		t.mu.Unlock()
		if conn == nil {
			return
		}

		_, data, err := conn.ReadMessage()
		if err != nil {
			t.log.WithError(err).Debug("read loop ended")
			t.markDisconnected()
			return
		}
		// Each ReadMessage call already returns one fully reassembled
		// message (gorilla/websocket buffers continuation frames
		// internally), matching the source's manual receive_buffer
		// accumulation against lws_is_final_fragment.
		t.sink.HandleInbound(data)
	}
}

func (t *transport) writeLoop() {
	for {
		select {
		case data := <-t.sendCh:
			t.mu.Lock()
			conn := t.conn
			t.mu.Unlock()
			if conn == nil {
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				t.log.WithError(err).Debug("write failed")
				t.markDisconnected()
			}
		case <-t.closeCh:
			return
		}
	}
}

func (t *transport) markDisconnected() {
	t.mu.Lock()
	t.connected = false
	t.mu.Unlock()
}

// send enqueues data for delivery as a single text frame. It returns
// ErrNotConnected immediately if the socket is already known-closed, and
// ErrSendFailed if the queue is saturated (the peer is not draining).
func (t *transport) send(data []byte) error {
	t.mu.Lock()
	connected := t.connected
	t.mu.Unlock()
	if !connected {
		return ErrNotConnected
	}

	select {
	case t.sendCh <- data:
		return nil
	default:
		return fmt.Errorf("%w: outbound queue full", ErrSendFailed)
	}
}

func (t *transport) isConnected() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.connected
}

// close tears down the socket and stops the write loop. Safe to call more
// than once.
func (t *transport) close() {
	t.closeOnce.Do(func() {
		close(t.closeCh)
	})
	t.mu.Lock()
	conn := t.conn
	t.connected = false
	t.conn = nil
	t.mu.Unlock()
	if conn != nil {
		_ = conn.Close()
	}
}

// probeVersionEndpoint issues a short-lived HTTP GET against the browser's
// /json/version endpoint, used as the sharper alternative to a fixed settling
// delay that spec.md §9 flags as an open question.
func probeVersionEndpoint(ctx context.Context, host string, port int) bool {
	u := fmt.Sprintf("http://%s:%d/json/version", host, port)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == 200
}
