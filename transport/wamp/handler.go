package wamp

import (
	"chat-broker/contract"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const nameCookie = "name"

type Config struct {
	ServerIdent          string
	ConnectionBufferSize int
	// ReadTimeout enables ping/pong keepalive when positive.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Handler upgrades HTTP requests to WAMP sessions and feeds the dispatcher.
type Handler struct {
	log          *slog.Logger
	dispatcher   contract.IDispatcher
	cfg          Config
	upgrader     websocket.Upgrader
	nextResource atomic.Int64

	mu      sync.Mutex
	conns   map[string]*Conn
	closing bool
	wg      sync.WaitGroup
}

func NewHandler(log *slog.Logger, dispatcher contract.IDispatcher, cfg Config) *Handler {
	if cfg.ConnectionBufferSize <= 0 {
		cfg.ConnectionBufferSize = 256
	}
	return &Handler{
		log:        log.With("component", "wamp"),
		dispatcher: dispatcher,
		cfg:        cfg,
		upgrader: websocket.Upgrader{
			Subprotocols: []string{Subprotocol},
			CheckOrigin:  func(*http.Request) bool { return true },
		},
		conns: make(map[string]*Conn),
	}
}

// ServeHTTP blocks for the lifetime of the session. OnClose always runs
// before the connection resources are released.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("Failed to upgrade connection", "remote_addr", r.RemoteAddr, "error", err)
		return
	}

	var nameHint string
	if cookie, err := r.Cookie(nameCookie); err == nil {
		nameHint = cookie.Value
	}
	conn := newConn(ws, uuid.NewString(), h.nextResource.Add(1), nameHint, h.cfg, h.log)

	if !h.track(conn) {
		h.log.Info("Session refused, shutting down", "remote_addr", r.RemoteAddr)
		conn.Close()
		return
	}
	defer h.untrack(conn)

	go conn.writePump()

	welcome, err := EncodeWelcome(conn.SessionID(), h.cfg.ServerIdent)
	if err != nil {
		h.log.Error("Failed to encode welcome", "error", err)
		conn.Close()
		return
	}
	conn.enqueue(welcome)

	h.dispatcher.OnOpen(conn)
	h.log.Info("Session established", "session_id", conn.SessionID(), "remote_addr", r.RemoteAddr)

	h.readLoop(conn)

	h.dispatcher.OnClose(conn)
	conn.Close()
	h.log.Info("Session ended", "session_id", conn.SessionID())
}

func (h *Handler) readLoop(conn *Conn) {
	if h.cfg.ReadTimeout > 0 {
		_ = conn.ws.SetReadDeadline(time.Now().Add(h.cfg.ReadTimeout))
		conn.ws.SetPongHandler(func(string) error {
			return conn.ws.SetReadDeadline(time.Now().Add(h.cfg.ReadTimeout))
		})
	}

	for {
		_, data, err := conn.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.Debug("Unexpected close", "session_id", conn.SessionID(), "error", err)
			}
			return
		}
		if h.cfg.ReadTimeout > 0 {
			_ = conn.ws.SetReadDeadline(time.Now().Add(h.cfg.ReadTimeout))
		}

		frame, err := Decode(data)
		if err != nil {
			h.dispatcher.OnError(conn, err)
			return
		}
		h.route(conn, frame)
	}
}

func (h *Handler) route(conn *Conn, frame Frame) {
	switch frame.Type {
	case TypePrefix:
		conn.prefixes[frame.Prefix] = frame.URI
	case TypeCall:
		h.dispatcher.OnCall(conn, frame.CallID, conn.expand(frame.URI), frame.Args)
	case TypeSubscribe:
		h.dispatcher.OnSubscribe(conn, conn.expand(frame.URI))
	case TypeUnsubscribe:
		h.dispatcher.OnUnsubscribe(conn, conn.expand(frame.URI))
	case TypePublish:
		h.dispatcher.OnPublish(conn, conn.expand(frame.URI), frame.Event, frame.Exclude, frame.Eligible)
	}
}

// track registers a live session. It refuses it once Shutdown has started.
func (h *Handler) track(conn *Conn) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closing {
		return false
	}
	h.wg.Add(1)
	h.conns[conn.SessionID()] = conn
	return true
}

func (h *Handler) untrack(conn *Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn.SessionID())
	h.wg.Done()
}

// Shutdown closes every live session and waits for their OnClose to finish.
// Sessions upgraded afterwards are closed right away.
func (h *Handler) Shutdown() {
	h.mu.Lock()
	h.closing = true
	conns := make([]*Conn, 0, len(h.conns))
	for _, conn := range h.conns {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	h.log.Info("Closing all active sessions", "count", len(conns))
	for _, conn := range conns {
		conn.Close()
	}
	h.wg.Wait()
}
