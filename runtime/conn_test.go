package runtime

import (
	"chat-broker/domain/chat"
	"chat-broker/observability"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/mama165/sdk-go/logs"
)

var fixedNow = time.Date(2024, 3, 9, 14, 5, 7, 0, time.FixedZone("CET", 3600))

const fixedTimestamp = "2024-03-09T14:05:07+01:00"

type event struct {
	topic   string
	payload []any
}

type callReply struct {
	id      string
	payload any
	failed  bool
}

// recordingConn keeps everything the dispatcher sends to it.
type recordingConn struct {
	mu     sync.Mutex
	sid    string
	rid    int64
	hint   string
	events []event
	calls  []callReply
	closed bool
}

func newConn(rid int64, hint string) *recordingConn {
	return &recordingConn{sid: "sess-" + strconv.FormatInt(rid, 10), rid: rid, hint: hint}
}

func (c *recordingConn) SessionID() string { return c.sid }
func (c *recordingConn) ResourceID() int64 { return c.rid }
func (c *recordingConn) NameHint() string  { return c.hint }

func (c *recordingConn) Event(topic string, payload any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event{topic: topic, payload: payload.([]any)})
}

func (c *recordingConn) CallResult(callID string, payload any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, callReply{id: callID, payload: payload})
}

func (c *recordingConn) CallError(callID string, payload any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, callReply{id: callID, payload: payload, failed: true})
}

func (c *recordingConn) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

func (c *recordingConn) eventsOn(topic chat.RoomID) [][]any {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out [][]any
	for _, e := range c.events {
		if e.topic == string(topic) {
			out = append(out, e.payload)
		}
	}
	return out
}

func (c *recordingConn) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = nil
	c.calls = nil
}

func (c *recordingConn) lastCall() callReply {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[len(c.calls)-1]
}

func newTestDispatcher() (*Dispatcher, *observability.MonitoringManager) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	monitoring := observability.NewMonitoringManager(log)
	d := NewDispatcher(log, nil, monitoring)
	d.now = func() time.Time { return fixedNow }
	return d, monitoring
}

// roomByName looks a live room up by its display name.
func roomByName(d *Dispatcher, display string) (chat.RoomID, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, ref := range d.registry.ListNonControlRooms() {
		if ref.Display == display {
			return ref.ID, true
		}
	}
	return "", false
}

func members(d *Dispatcher, id chat.RoomID) []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	room, ok := d.registry.Get(id)
	if !ok {
		return nil
	}
	var out []string
	for _, conn := range room.Subscribers() {
		out = append(out, conn.SessionID())
	}
	return out
}
