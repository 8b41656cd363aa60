package runtime

import (
	"chat-broker/contract"
	"chat-broker/domain/chat"
)

const (
	welcomeIntro = "! This is an IRC-like chatroom powered by chat-broker."
	aloneNote    = " Looks like it's just you and I at the moment...I'll play copycat until someone else joins."
)

// subscribe attaches conn to topic. Callers hold d.mu.
func (d *Dispatcher) subscribe(conn contract.Connection, session *chat.Session, topic chat.RoomID) {
	if topic == chat.ControlRooms {
		for _, ref := range d.registry.ListNonControlRooms() {
			conn.Event(string(chat.ControlRooms), chat.RoomCreated(ref.ID, ref.Display))
		}
	}

	room, ok := d.registry.Get(topic)
	if !ok {
		d.log.Debug("Subscribe to unknown topic dropped", "session_id", session.SessionID, "topic", topic)
		return
	}
	if room.Has(conn) {
		return
	}

	members := room.Subscribers()
	d.monitoring.IncrDelivered(room.Broadcast(chat.JoinRoom(session.SessionID, session.Name), session.SessionID))
	for _, member := range members {
		conn.Event(string(topic), chat.JoinRoom(member.SessionID(), d.nameOf(member)))
	}

	room.Attach(conn)
	session.Join(topic)

	if topic == d.homeRoom && !session.Welcomed && conn.SessionID() != BotSessionID {
		d.welcome(conn, session, room)
	}
}

func (d *Dispatcher) welcome(conn contract.Connection, session *chat.Session, room *chat.Room) {
	session.Welcomed = true

	intro := "Hi " + session.Name
	if session.IsAnonymous() {
		intro = "Greetings"
	}
	text := intro + welcomeIntro
	if room.Len() == 2 {
		session.Alone = true
		text += aloneNote
	}
	conn.Event(string(room.ID), chat.Message(BotSessionID, text, d.timestamp()))
}

// unsubscribe detaches conn from topic, destroying the room when it empties.
// Callers hold d.mu.
func (d *Dispatcher) unsubscribe(conn contract.Connection, session *chat.Session, topic chat.RoomID) {
	session.Leave(topic)

	room, ok := d.registry.Get(topic)
	if !ok || !room.Detach(conn) {
		return
	}
	if topic.IsControl() {
		return
	}
	if room.Len() == 0 {
		d.registry.DestroyIfEmpty(topic)
		return
	}
	d.monitoring.IncrDelivered(room.Broadcast(chat.LeftRoom(session.SessionID), ""))
}
