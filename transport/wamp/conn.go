package wamp

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const closeGracePeriod = time.Second

// Conn is a remote WAMP peer. Outgoing frames go through a bounded queue
// drained by writePump, so Event, CallResult and CallError never block.
type Conn struct {
	ws           *websocket.Conn
	sessionID    string
	resourceID   int64
	nameHint     string
	send         chan []byte
	done         chan struct{}
	closeOnce    sync.Once
	writeTimeout time.Duration
	pingPeriod   time.Duration
	log          *slog.Logger

	// prefixes is only touched by the read loop.
	prefixes map[string]string
}

func newConn(ws *websocket.Conn, sessionID string, resourceID int64, nameHint string, cfg Config, log *slog.Logger) *Conn {
	return &Conn{
		ws:           ws,
		sessionID:    sessionID,
		resourceID:   resourceID,
		nameHint:     nameHint,
		send:         make(chan []byte, cfg.ConnectionBufferSize),
		done:         make(chan struct{}),
		writeTimeout: cfg.WriteTimeout,
		pingPeriod:   cfg.ReadTimeout * 9 / 10,
		log:          log.With("session_id", sessionID),
		prefixes:     make(map[string]string),
	}
}

func (c *Conn) SessionID() string { return c.sessionID }

func (c *Conn) ResourceID() int64 { return c.resourceID }

func (c *Conn) NameHint() string { return c.nameHint }

func (c *Conn) Event(topic string, payload any) {
	data, err := EncodeEvent(topic, payload)
	if err != nil {
		c.log.Error("Failed to encode event", "topic", topic, "error", err)
		return
	}
	c.enqueue(data)
}

func (c *Conn) CallResult(callID string, payload any) {
	data, err := EncodeCallResult(callID, payload)
	if err != nil {
		c.log.Error("Failed to encode call result", "call_id", callID, "error", err)
		return
	}
	c.enqueue(data)
}

func (c *Conn) CallError(callID string, payload any) {
	data, err := EncodeCallError(callID, payload)
	if err != nil {
		c.log.Error("Failed to encode call error", "call_id", callID, "error", err)
		return
	}
	c.enqueue(data)
}

// Close sends a normal closure and releases the socket. Safe to call many times.
// The read loop notices the closed socket and reports the close to the dispatcher.
func (c *Conn) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(closeGracePeriod))
		_ = c.ws.Close()
		c.log.Debug("Connection closed")
	})
}

// Done is closed once Close has run.
func (c *Conn) Done() <-chan struct{} {
	return c.done
}

func (c *Conn) enqueue(data []byte) {
	select {
	case <-c.done:
		return
	default:
	}
	select {
	case c.send <- data:
	default:
		c.log.Warn("Send queue full, dropping frame", "size", len(data))
	}
}

// writePump drains the send queue and keeps the peer alive with pings.
func (c *Conn) writePump() {
	var ticks <-chan time.Time
	if c.pingPeriod > 0 {
		ticker := time.NewTicker(c.pingPeriod)
		defer ticker.Stop()
		ticks = ticker.C
	}

	for {
		select {
		case <-c.done:
			return
		case data := <-c.send:
			c.setWriteDeadline()
			if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
				c.log.Debug("Write failed", "error", err)
				c.Close()
				return
			}
		case <-ticks:
			if err := c.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(c.writeTimeoutOrGrace())); err != nil {
				c.log.Debug("Ping failed", "error", err)
				c.Close()
				return
			}
		}
	}
}

func (c *Conn) setWriteDeadline() {
	if c.writeTimeout > 0 {
		_ = c.ws.SetWriteDeadline(time.Now().Add(c.writeTimeout))
	}
}

func (c *Conn) writeTimeoutOrGrace() time.Duration {
	if c.writeTimeout > 0 {
		return c.writeTimeout
	}
	return closeGracePeriod
}

// expand resolves a CURIE registered with PREFIX, other URIs pass through.
func (c *Conn) expand(uri string) string {
	i := strings.Index(uri, ":")
	if i <= 0 {
		return uri
	}
	if base, ok := c.prefixes[uri[:i]]; ok {
		return base + uri[i+1:]
	}
	return uri
}
