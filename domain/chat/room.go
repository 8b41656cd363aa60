// Package chat contains the core concepts of the chat broker: rooms, sessions,
// the payloads exchanged on topics and the text rules applied to them.
// No runtime, network, or transport logic should be added here.
package chat

import (
	"strings"

	"chat-broker/contract"

	"github.com/google/uuid"
)

type RoomID string

const (
	// ControlPrefix marks broker internal topics.
	ControlPrefix = "ctrl:"
	// ControlRooms announces room creation and removal.
	ControlRooms RoomID = ControlPrefix + "rooms"

	roomIDPrefix = "room-"
)

// NewRoomID returns a fresh identifier, never carrying the control prefix.
func NewRoomID() RoomID {
	return RoomID(roomIDPrefix + uuid.NewString())
}

// IsControl reports whether the id belongs to a control room.
func (id RoomID) IsControl() bool {
	return strings.HasPrefix(string(id), ControlPrefix)
}

// Room is a topic and the connections subscribed to it, kept in attach order.
type Room struct {
	ID          RoomID
	Display     string
	subscribers []contract.Connection
	index       map[string]int
}

func NewRoom(id RoomID, display string) *Room {
	return &Room{
		ID:      id,
		Display: display,
		index:   make(map[string]int),
	}
}

// Attach is idempotent on the connection session id.
func (r *Room) Attach(conn contract.Connection) {
	if _, ok := r.index[conn.SessionID()]; ok {
		return
	}
	r.index[conn.SessionID()] = len(r.subscribers)
	r.subscribers = append(r.subscribers, conn)
}

func (r *Room) Detach(conn contract.Connection) bool {
	i, ok := r.index[conn.SessionID()]
	if !ok {
		return false
	}
	r.subscribers = append(r.subscribers[:i], r.subscribers[i+1:]...)
	delete(r.index, conn.SessionID())
	for j := i; j < len(r.subscribers); j++ {
		r.index[r.subscribers[j].SessionID()] = j
	}
	return true
}

func (r *Room) Has(conn contract.Connection) bool {
	_, ok := r.index[conn.SessionID()]
	return ok
}

func (r *Room) Len() int {
	return len(r.subscribers)
}

// Subscribers returns a copy, safe to range over while the room changes.
func (r *Room) Subscribers() []contract.Connection {
	out := make([]contract.Connection, len(r.subscribers))
	copy(out, r.subscribers)
	return out
}

// Broadcast delivers the payload to every subscriber except the excluded session.
func (r *Room) Broadcast(payload any, excludeSessionID string) int {
	delivered := 0
	for _, conn := range r.Subscribers() {
		if conn.SessionID() == excludeSessionID {
			continue
		}
		conn.Event(string(r.ID), payload)
		delivered++
	}
	return delivered
}
