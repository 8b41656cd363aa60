package chat

// Payloads are ordered sequences on the wire.

const (
	KindJoinRoom = "joinRoom"
	KindLeftRoom = "leftRoom"
	KindMessage  = "message"
)

type RoomRef struct {
	ID      RoomID `json:"id"`
	Display string `json:"display"`
}

func RoomCreated(id RoomID, display string) []any {
	return []any{string(id), display, 1}
}

func RoomRemoved(id RoomID) []any {
	return []any{string(id), 0}
}

func JoinRoom(sessionID, name string) []any {
	return []any{KindJoinRoom, sessionID, name}
}

func LeftRoom(sessionID string) []any {
	return []any{KindLeftRoom, sessionID}
}

func Message(sessionID, text, timestamp string) []any {
	return []any{KindMessage, sessionID, text, timestamp}
}
