package chat

import (
	"strconv"

	"github.com/samber/lo"
)

const anonymousPrefix = "Anonymous "

// Session is the broker-side state of one connection.
type Session struct {
	SessionID string
	Name      string
	Topics    map[RoomID]struct{}
	// topicOrder keeps unsubscribe-on-close deterministic.
	topicOrder []RoomID
	Welcomed   bool
	Alone      bool
}

// NewSession derives the display name from the hint, falling back to an
// anonymous name built on the resource id.
func NewSession(sessionID string, resourceID int64, nameHint string) *Session {
	name := Escape(nameHint)
	if name == "" {
		name = anonymousPrefix + strconv.FormatInt(resourceID, 10)
	}
	return &Session{
		SessionID: sessionID,
		Name:      name,
		Topics:    make(map[RoomID]struct{}),
	}
}

func (s *Session) Join(topic RoomID) {
	if _, ok := s.Topics[topic]; ok {
		return
	}
	s.Topics[topic] = struct{}{}
	s.topicOrder = append(s.topicOrder, topic)
}

func (s *Session) Leave(topic RoomID) {
	delete(s.Topics, topic)
	s.topicOrder = lo.Without(s.topicOrder, topic)
}

func (s *Session) IsSubscribed(topic RoomID) bool {
	_, ok := s.Topics[topic]
	return ok
}

// SubscribedTopics is a snapshot in subscription order.
func (s *Session) SubscribedTopics() []RoomID {
	return append([]RoomID(nil), s.topicOrder...)
}

func (s *Session) IsAnonymous() bool {
	return containsAnonymous(s.Name)
}
