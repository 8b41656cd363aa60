package runtime

import (
	"chat-broker/domain/chat"
	"log/slog"

	"github.com/samber/lo"
)

// RoomRegistry owns every room of the broker.
// It keeps the id -> room and display -> id maps bijective over non-control
// rooms and announces each creation or removal on the control channel.
// It is not safe for concurrent use, the Dispatcher serializes access.
type RoomRegistry struct {
	log    *slog.Logger
	rooms  map[chat.RoomID]*chat.Room
	lookup map[string]chat.RoomID
	order  []chat.RoomID
	newID  func() chat.RoomID
}

func NewRoomRegistry(log *slog.Logger) *RoomRegistry {
	return &RoomRegistry{
		log:    log,
		rooms:  make(map[chat.RoomID]*chat.Room),
		lookup: make(map[string]chat.RoomID),
		newID:  chat.NewRoomID,
	}
}

// RegisterControl installs a control room. Control rooms bypass the display
// lookup and are never destroyed.
func (r *RoomRegistry) RegisterControl(id chat.RoomID) *chat.Room {
	if room, ok := r.rooms[id]; ok {
		return room
	}
	room := chat.NewRoom(id, string(id))
	r.rooms[id] = room
	return room
}

// FindOrCreate returns the room registered under the display name, creating
// an empty one when none exists. A creation is broadcast on the control channel.
func (r *RoomRegistry) FindOrCreate(display string) (chat.RoomID, bool) {
	if id, ok := r.lookup[display]; ok {
		return id, false
	}
	id := r.newID()
	r.rooms[id] = chat.NewRoom(id, display)
	r.lookup[display] = id
	r.order = append(r.order, id)

	r.log.Info("Room created", "room_id", id, "display", display)
	r.broadcastControl(chat.RoomCreated(id, display))
	return id, true
}

// DestroyIfEmpty drops a non-control room without subscribers and broadcasts
// its removal.
func (r *RoomRegistry) DestroyIfEmpty(id chat.RoomID) bool {
	room, ok := r.rooms[id]
	if !ok || id.IsControl() || room.Len() > 0 {
		return false
	}
	delete(r.rooms, id)
	delete(r.lookup, room.Display)
	r.order = lo.Without(r.order, id)

	r.log.Info("Room destroyed", "room_id", id, "display", room.Display)
	r.broadcastControl(chat.RoomRemoved(id))
	return true
}

func (r *RoomRegistry) Get(id chat.RoomID) (*chat.Room, bool) {
	room, ok := r.rooms[id]
	return room, ok
}

// ListNonControlRooms returns the live rooms in creation order.
func (r *RoomRegistry) ListNonControlRooms() []chat.RoomRef {
	return lo.FilterMap(r.order, func(id chat.RoomID, _ int) (chat.RoomRef, bool) {
		room, ok := r.rooms[id]
		if !ok {
			return chat.RoomRef{}, false
		}
		return chat.RoomRef{ID: id, Display: room.Display}, true
	})
}

// Len counts non-control rooms.
func (r *RoomRegistry) Len() int {
	return len(r.order)
}

func (r *RoomRegistry) broadcastControl(payload []any) {
	ctrl, ok := r.rooms[chat.ControlRooms]
	if !ok {
		return
	}
	ctrl.Broadcast(payload, "")
}
