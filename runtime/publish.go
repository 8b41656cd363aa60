package runtime

import (
	"chat-broker/contract"
	"chat-broker/domain/chat"
	"strings"
)

// OnPublish broadcasts a chat message to a room the connection is subscribed to.
// The protocol has no publish error, so every rejected publish is dropped silently.
// exclude and eligible are accepted for protocol compatibility and ignored.
func (d *Dispatcher) OnPublish(conn contract.Connection, topic, event string, _, _ []string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := chat.RoomID(topic)
	session, ok := d.sessions[conn.SessionID()]
	if !ok || strings.TrimSpace(event) == "" {
		d.drop(conn, id, "empty or sessionless publish")
		return
	}
	room, live := d.registry.Get(id)
	if !live || id.IsControl() || !session.IsSubscribed(id) {
		d.drop(conn, id, "publish outside of a subscribed room")
		return
	}

	verdict := d.moderator.Review(event)
	text := chat.EscapeRaw(verdict.Content)
	ts := d.timestamp()

	d.monitoring.IncrPublished()
	d.monitoring.IncrDelivered(room.Broadcast(chat.Message(session.SessionID, text, ts), ""))

	if id != d.homeRoom {
		return
	}
	d.botReply(conn, session, room, text, ts)
}

// botReply answers the canned commands, first match wins.
func (d *Dispatcher) botReply(conn contract.Connection, session *chat.Session, room *chat.Room, text, ts string) {
	topic := string(room.ID)
	switch {
	case text == "test":
		conn.Event(topic, chat.Message(BotSessionID, "pass", ts))
	case text == "help" || text == "!help":
		conn.Event(topic, chat.Message(BotSessionID, helpText, ts))
	case session.Alone && room.Len() == 2:
		// Echoed on the topic, the only other subscriber is the bot.
		d.monitoring.IncrDelivered(room.Broadcast(chat.Message(BotSessionID, text, ts), BotSessionID))
		return
	default:
		return
	}
	d.monitoring.IncrDelivered(1)
}

func (d *Dispatcher) drop(conn contract.Connection, topic chat.RoomID, reason string) {
	d.monitoring.IncrDropped()
	d.log.Debug("Publish dropped", "session_id", conn.SessionID(), "topic", topic, "reason", reason)
}
