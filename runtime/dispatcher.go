package runtime

import (
	"chat-broker/contract"
	"chat-broker/domain/chat"
	"chat-broker/moderation"
	"chat-broker/observability"
	"log/slog"
	"sync"
	"time"

	"github.com/samber/lo"
)

// Dispatcher routes the lifecycle and protocol events of every connection to
// the room registry and fans the resulting events out synchronously.
// A single mutex serializes all operations, so create, destroy, subscribe,
// unsubscribe and publish are totally ordered.
type Dispatcher struct {
	mu         sync.Mutex
	log        *slog.Logger
	registry   *RoomRegistry
	sessions   map[string]*chat.Session
	bot        *Bot
	homeRoom   chat.RoomID
	moderator  *moderation.Moderator
	monitoring *observability.MonitoringManager
	now        func() time.Time
}

var _ contract.IDispatcher = (*Dispatcher)(nil)

// NewDispatcher builds the broker state: the bot session, the control channel
// and the bot's home room. Both rooms always hold the bot and are never destroyed.
// moderator and monitoring may be nil.
func NewDispatcher(log *slog.Logger, moderator *moderation.Moderator, monitoring *observability.MonitoringManager) *Dispatcher {
	d := &Dispatcher{
		log:        log,
		registry:   NewRoomRegistry(log),
		sessions:   make(map[string]*chat.Session),
		moderator:  moderator,
		monitoring: monitoring,
		now:        time.Now,
	}
	d.bootstrap()
	return d
}

func (d *Dispatcher) bootstrap() {
	d.bot = NewBot(d.log)
	d.OnOpen(d.bot)

	d.mu.Lock()
	ctrl := d.registry.RegisterControl(chat.ControlRooms)
	ctrl.Attach(d.bot)
	d.sessions[BotSessionID].Join(chat.ControlRooms)
	ref, _ := d.createRoom(HomeRoomName)
	d.mu.Unlock()

	d.OnSubscribe(d.bot, string(ref.ID))

	d.mu.Lock()
	d.homeRoom = ref.ID
	d.mu.Unlock()
	d.log.Info("Broker ready", "home_room", ref.ID, "control_room", chat.ControlRooms)
}

// HomeRoom is the id of the room seeded and moderated by the bot.
func (d *Dispatcher) HomeRoom() chat.RoomID {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.homeRoom
}

// OnOpen creates the session of a new connection.
func (d *Dispatcher) OnOpen(conn contract.Connection) {
	d.mu.Lock()
	defer d.mu.Unlock()

	session := chat.NewSession(conn.SessionID(), conn.ResourceID(), conn.NameHint())
	d.sessions[conn.SessionID()] = session
	d.log.Debug("Session opened", "session_id", conn.SessionID(), "name", session.Name)
}

// OnClose unsubscribes the connection from every topic it joined, then drops
// its session.
func (d *Dispatcher) OnClose(conn contract.Connection) {
	d.mu.Lock()
	defer d.mu.Unlock()

	session, ok := d.sessions[conn.SessionID()]
	if !ok {
		return
	}
	for _, topic := range session.SubscribedTopics() {
		d.unsubscribe(conn, session, topic)
	}
	delete(d.sessions, conn.SessionID())
	d.log.Debug("Session closed", "session_id", conn.SessionID())
}

// OnError closes the connection, there is no recovery at this layer.
func (d *Dispatcher) OnError(conn contract.Connection, err error) {
	d.log.Warn("Connection error, closing", "session_id", conn.SessionID(), "error", err)
	conn.Close()
}

func (d *Dispatcher) OnSubscribe(conn contract.Connection, topic string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	session, ok := d.sessions[conn.SessionID()]
	if !ok {
		d.log.Debug("Subscribe from unknown session dropped", "session_id", conn.SessionID())
		return
	}
	d.subscribe(conn, session, chat.RoomID(topic))
}

func (d *Dispatcher) OnUnsubscribe(conn contract.Connection, topic string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	session, ok := d.sessions[conn.SessionID()]
	if !ok {
		return
	}
	d.unsubscribe(conn, session, chat.RoomID(topic))
}

// State is a point-in-time view of the broker for monitoring.
// Sessions counts remote peers only, the bot session always exists.
func (d *Dispatcher) State() observability.BrokerState {
	d.mu.Lock()
	defer d.mu.Unlock()

	rooms := lo.Map(d.registry.ListNonControlRooms(), func(ref chat.RoomRef, _ int) observability.RoomStat {
		room, _ := d.registry.Get(ref.ID)
		return observability.RoomStat{ID: string(ref.ID), Display: ref.Display, Members: room.Len()}
	})
	return observability.BrokerState{
		Rooms:    rooms,
		Sessions: len(lo.OmitByKeys(d.sessions, []string{BotSessionID})),
		HomeRoom: string(d.homeRoom),
	}
}

func (d *Dispatcher) nameOf(conn contract.Connection) string {
	if session, ok := d.sessions[conn.SessionID()]; ok {
		return session.Name
	}
	return ""
}

func (d *Dispatcher) timestamp() string {
	return chat.Timestamp(d.now())
}
