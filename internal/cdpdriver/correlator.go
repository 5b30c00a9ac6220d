package cdpdriver

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bmcps/browsermcp/internal/bmcpslog"
)

// inboundMessage is the shape every inbound CDP frame is first decoded into,
// before branching on whether ID is present (spec.md §6/§9: "Event/response
// disambiguation keyed purely on presence of a non-null id").
type inboundMessage struct {
	ID        *int64          `json:"id"`
	Method    string          `json:"method"`
	Params    json.RawMessage `json:"params"`
	Result    json.RawMessage `json:"result"`
	Error     json.RawMessage `json:"error"`
	SessionID string          `json:"sessionId"`
}

// cdpError is the shape of a reply's top-level error object.
type cdpError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// replySlot is a single-shot container for one outstanding command's reply.
type replySlot struct {
	done   chan struct{}
	once   sync.Once
	result json.RawMessage
	errObj *cdpError
}

func newReplySlot() *replySlot {
	return &replySlot{done: make(chan struct{})}
}

func (s *replySlot) fill(result json.RawMessage, errObj *cdpError) {
	s.once.Do(func() {
		s.result = result
		s.errObj = errObj
		close(s.done)
	})
}

// eventSink receives every inbound message that is not a reply. The event
// demux (state caches) implements this.
type eventSink interface {
	HandleEvent(msg inboundMessage)
}

// correlator assigns monotonic message ids, writes commands through the
// transport, and resolves replies against the pending map (spec.md §4.C).
// It implements inboundSink so the transport never needs a pointer back into
// it — spec.md §9's narrow-inbox design note.
type correlator struct {
	log *logrus.Entry

	t *transport

	mu         sync.Mutex
	nextID     int64
	pending    map[int64]*replySlot

	events eventSink
}

func newCorrelator(events eventSink) *correlator {
	c := &correlator{
		log:     bmcpslog.For("correlator"),
		nextID:  1,
		pending: make(map[int64]*replySlot),
		events:  events,
	}
	c.t = newTransport(c)
	return c
}

// HandleInbound implements inboundSink. It parses exactly one complete JSON
// message and routes it to a waiter (if id is present) or the event sink.
func (c *correlator) HandleInbound(data []byte) {
	var msg inboundMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		preview := string(data)
		if len(preview) > 200 {
			preview = preview[:200]
		}
		c.log.WithError(err).WithField("preview", preview).Warn("discarding unparsable inbound frame")
		return
	}

	if msg.ID != nil {
		c.resolve(*msg.ID, msg)
		return
	}

	c.events.HandleEvent(msg)
}

func (c *correlator) resolve(id int64, msg inboundMessage) {
	c.mu.Lock()
	slot, ok := c.pending[id]
	if ok {
		delete(c.pending, id)
	}
	c.mu.Unlock()

	if !ok {
		c.log.WithField("id", id).Warn("reply for unknown message id, dropping")
		return
	}

	var errObj *cdpError
	if len(msg.Error) > 0 && string(msg.Error) != "null" {
		var e cdpError
		if err := json.Unmarshal(msg.Error, &e); err == nil {
			errObj = &e
		}
	}
	slot.fill(msg.Result, errObj)
}

// outboundCommand is the shape spec.md §6 defines for a CDP request.
type outboundCommand struct {
	ID        int64       `json:"id"`
	Method    string      `json:"method"`
	Params    interface{} `json:"params,omitempty"`
	SessionID string      `json:"sessionId,omitempty"`
}

// reply is the decoded successful payload of a sendAndWait call.
type reply struct {
	ID     int64
	Result json.RawMessage
}

// sendAndWait implements spec.md §4.C's send_and_wait: assign an id, write
// the command, block until the reply slot fills or timeout elapses.
func (c *correlator) sendAndWait(method string, params interface{}, sessionID string, timeout time.Duration) (*reply, error) {
	if !c.t.isConnected() {
		return nil, ErrNotConnected
	}

	c.mu.Lock()
	id := c.nextID
	c.nextID++
	slot := newReplySlot()
	c.pending[id] = slot
	c.mu.Unlock()

	cmd := outboundCommand{ID: id, Method: method, Params: params, SessionID: sessionID}
	data, err := json.Marshal(cmd)
	if err != nil {
		c.dropPending(id)
		return nil, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	if err := c.t.send(data); err != nil {
		c.dropPending(id)
		return nil, err
	}

	select {
	case <-slot.done:
		if slot.errObj != nil {
			return nil, NewProtocolError(slot.errObj.Code, slot.errObj.Message, "")
		}
		return &reply{ID: id, Result: slot.result}, nil
	case <-time.After(timeout):
		// Timeout does not cancel the in-flight command on the peer; a late
		// reply, if it ever arrives, finds no pending entry and is dropped
		// by resolve() above (spec.md §4.C).
		c.dropPending(id)
		return nil, fmt.Errorf("%w: message_id %d", ErrTimeout, id)
	}
}

func (c *correlator) dropPending(id int64) {
	c.mu.Lock()
	delete(c.pending, id)
	c.mu.Unlock()
}

func (c *correlator) pendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}
