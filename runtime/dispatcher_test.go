package runtime

import (
	"chat-broker/domain/chat"
	"chat-broker/mocks"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const greetingAlone = "Greetings! This is an IRC-like chatroom powered by chat-broker." +
	" Looks like it's just you and I at the moment...I'll play copycat until someone else joins."

func TestDispatcher_Bootstrap(t *testing.T) {
	req := require.New(t)

	// Given a fresh broker
	d, _ := newTestDispatcher()

	// Then the control channel holds the bot
	req.Equal([]string{BotSessionID}, members(d, chat.ControlRooms))

	// And General is the only other room, also holding the bot
	rooms := d.registry.ListNonControlRooms()
	req.Len(rooms, 1)
	req.Equal(HomeRoomName, rooms[0].Display)
	req.Equal(d.HomeRoom(), rooms[0].ID)
	req.Equal([]string{BotSessionID}, members(d, d.HomeRoom()))

	// And an idle broker reports no session
	req.Zero(d.State().Sessions)

	// And the bot never welcomed itself
	req.False(d.sessions[BotSessionID].Welcomed)
	req.Equal(BotName, d.sessions[BotSessionID].Name)
}

func TestDispatcher_FirstJoinIsGreetedAndAlone(t *testing.T) {
	req := require.New(t)
	d, _ := newTestDispatcher()
	home := d.HomeRoom()
	a := newConn(7, "")

	// When an anonymous connection joins General
	d.OnOpen(a)
	d.OnSubscribe(a, string(home))

	// Then it learns the bot is there and gets greeted
	req.Equal([][]any{
		{chat.KindJoinRoom, BotSessionID, BotName},
		{chat.KindMessage, BotSessionID, greetingAlone, fixedTimestamp},
	}, a.eventsOn(home))

	// And it is flagged alone with the bot
	session := d.sessions[a.SessionID()]
	req.Equal("Anonymous 7", session.Name)
	req.True(session.Welcomed)
	req.True(session.Alone)
	req.True(session.IsSubscribed(home))
	req.ElementsMatch([]string{BotSessionID, a.SessionID()}, members(d, home))
}

func TestDispatcher_SecondJoinIsNotAlone(t *testing.T) {
	req := require.New(t)
	d, _ := newTestDispatcher()
	home := d.HomeRoom()
	a := newConn(7, "")
	b := newConn(8, "bob")
	d.OnOpen(a)
	d.OnSubscribe(a, string(home))
	a.reset()

	// When a named connection joins afterwards
	d.OnOpen(b)
	d.OnSubscribe(b, string(home))

	// Then the room holds three members
	req.Len(members(d, home), 3)

	// And the newcomer is greeted by name, without the alone note
	events := b.eventsOn(home)
	req.Equal([]any{chat.KindJoinRoom, BotSessionID, BotName}, events[0])
	req.Equal([]any{chat.KindJoinRoom, a.SessionID(), "Anonymous 7"}, events[1])
	req.Equal([]any{chat.KindMessage, BotSessionID,
		"Hi bob! This is an IRC-like chatroom powered by chat-broker.", fixedTimestamp}, events[2])
	req.False(d.sessions[b.SessionID()].Alone)

	// And the first member is told, its alone flag untouched
	req.Equal([][]any{{chat.KindJoinRoom, b.SessionID(), "bob"}}, a.eventsOn(home))
	req.True(d.sessions[a.SessionID()].Alone)
}

func TestDispatcher_BotAnswersTestOnlyToSender(t *testing.T) {
	req := require.New(t)
	d, monitoring := newTestDispatcher()
	home := d.HomeRoom()
	a := newConn(7, "")
	b := newConn(8, "bob")
	for _, c := range []*recordingConn{a, b} {
		d.OnOpen(c)
		d.OnSubscribe(c, string(home))
	}
	a.reset()
	b.reset()

	// When A publishes test
	d.OnPublish(a, string(home), "test", nil, nil)

	// Then both see the message and only A gets the answer
	message := []any{chat.KindMessage, a.SessionID(), "test", fixedTimestamp}
	req.Equal([][]any{message, {chat.KindMessage, BotSessionID, "pass", fixedTimestamp}}, a.eventsOn(home))
	req.Equal([][]any{message}, b.eventsOn(home))
	req.Equal(uint64(1), monitoring.GetLatest().Published)
}

func TestDispatcher_BotHelp(t *testing.T) {
	req := require.New(t)
	d, _ := newTestDispatcher()
	home := d.HomeRoom()
	a := newConn(7, "alice")
	d.OnOpen(a)
	d.OnSubscribe(a, string(home))

	for _, text := range []string{"help", "!help"} {
		a.reset()

		// When asking for help
		d.OnPublish(a, string(home), text, nil, nil)

		// Then the help text comes back instead of the alone echo
		events := a.eventsOn(home)
		req.Len(events, 2)
		req.Equal([]any{chat.KindMessage, BotSessionID, helpText, fixedTimestamp}, events[1])
	}
}

func TestDispatcher_BotEchoesWhileAlone(t *testing.T) {
	req := require.New(t)
	d, _ := newTestDispatcher()
	home := d.HomeRoom()
	a := newConn(7, "alice")
	d.OnOpen(a)
	d.OnSubscribe(a, string(home))
	a.reset()

	// When alone with the bot
	d.OnPublish(a, string(home), "anyone here?", nil, nil)

	// Then the bot plays copycat
	req.Equal([][]any{
		{chat.KindMessage, a.SessionID(), "anyone here?", fixedTimestamp},
		{chat.KindMessage, BotSessionID, "anyone here?", fixedTimestamp},
	}, a.eventsOn(home))

	// When someone else joins
	b := newConn(8, "bob")
	d.OnOpen(b)
	d.OnSubscribe(b, string(home))
	a.reset()
	d.OnPublish(a, string(home), "hi bob", nil, nil)

	// Then the echo stops
	req.Equal([][]any{{chat.KindMessage, a.SessionID(), "hi bob", fixedTimestamp}}, a.eventsOn(home))
}

func TestDispatcher_LastLeaveDestroysRoom(t *testing.T) {
	req := require.New(t)
	d, _ := newTestDispatcher()
	watcher := newConn(3, "watcher")
	a := newConn(7, "alice")
	d.OnOpen(watcher)
	d.OnSubscribe(watcher, string(chat.ControlRooms))
	d.OnOpen(a)

	// Given a room only A occupies
	d.OnCall(a, "c1", chat.ProcCreateRoom, []string{"Chess"})
	id, ok := roomByName(d, "Chess")
	req.True(ok)
	d.OnSubscribe(a, string(id))
	req.Equal([]string{a.SessionID()}, members(d, id))

	// When A leaves it
	d.OnUnsubscribe(a, string(id))

	// Then the room is gone and the control channel says so
	_, ok = roomByName(d, "Chess")
	req.False(ok)
	_, ok = d.registry.Get(id)
	req.False(ok)
	req.False(d.sessions[a.SessionID()].IsSubscribed(id))
	ctrlEvents := watcher.eventsOn(chat.ControlRooms)
	req.Equal([]any{string(id), "Chess", 1}, ctrlEvents[len(ctrlEvents)-2])
	req.Equal([]any{string(id), 0}, ctrlEvents[len(ctrlEvents)-1])
}

func TestDispatcher_LeaveNotifiesRemaining(t *testing.T) {
	req := require.New(t)
	d, _ := newTestDispatcher()
	home := d.HomeRoom()
	a := newConn(7, "alice")
	b := newConn(8, "bob")
	for _, c := range []*recordingConn{a, b} {
		d.OnOpen(c)
		d.OnSubscribe(c, string(home))
	}
	a.reset()

	// When B leaves General
	d.OnUnsubscribe(b, string(home))

	// Then A is told and General survives
	req.Equal([][]any{{chat.KindLeftRoom, b.SessionID()}}, a.eventsOn(home))
	req.ElementsMatch([]string{BotSessionID, a.SessionID()}, members(d, home))
}

func TestDispatcher_ControlSnapshot(t *testing.T) {
	req := require.New(t)
	d, _ := newTestDispatcher()
	a := newConn(7, "alice")
	d.OnOpen(a)
	d.OnCall(a, "c1", chat.ProcCreateRoom, []string{"Sports"})
	sports, _ := roomByName(d, "Sports")

	// When a listener subscribes to the control channel
	w := newConn(9, "watcher")
	d.OnOpen(w)
	d.OnSubscribe(w, string(chat.ControlRooms))

	// Then it first gets one created event per room, in creation order
	events := w.eventsOn(chat.ControlRooms)
	req.Equal([]any{string(d.HomeRoom()), HomeRoomName, 1}, events[0])
	req.Equal([]any{string(sports), "Sports", 1}, events[1])
	req.Equal([]any{chat.KindJoinRoom, BotSessionID, BotName}, events[2])
	req.True(d.sessions[w.SessionID()].IsSubscribed(chat.ControlRooms))
}

func TestDispatcher_CreateRoom(t *testing.T) {
	req := require.New(t)
	d, _ := newTestDispatcher()
	a := newConn(7, "alice")
	d.OnOpen(a)

	// When the name is blank
	d.OnCall(a, "c1", chat.ProcCreateRoom, []string{"   "})

	// Then the call fails
	req.Equal(callReply{id: "c1", payload: "Room name can not be empty", failed: true}, a.lastCall())

	// When the room is new
	d.OnCall(a, "c2", chat.ProcCreateRoom, []string{"Sports"})
	first := a.lastCall()
	req.False(first.failed)
	ref := first.payload.(chat.RoomRef)
	req.Equal("Sports", ref.Display)
	req.True(strings.HasPrefix(string(ref.ID), "room-"))

	// When the same name is asked again
	d.OnCall(a, "c3", chat.ProcCreateRoom, []string{"Sports"})

	// Then the existing room comes back as an error
	req.Equal(callReply{id: "c3", payload: ref, failed: true}, a.lastCall())
	req.Equal(2, d.registry.Len())
}

func TestDispatcher_CreateRoomWithoutArgument(t *testing.T) {
	req := require.New(t)
	d, _ := newTestDispatcher()
	a := newConn(7, "")
	d.OnOpen(a)

	d.OnCall(a, "c1", chat.ProcCreateRoom, nil)

	req.Equal(callReply{id: "c1", payload: "Room name can not be empty", failed: true}, a.lastCall())
}

func TestDispatcher_UnknownCall(t *testing.T) {
	req := require.New(t)
	d, _ := newTestDispatcher()
	a := newConn(7, "")
	d.OnOpen(a)

	d.OnCall(a, "c1", "dropTables", []string{"x"})

	req.Equal(callReply{id: "c1", payload: "Unknown call", failed: true}, a.lastCall())
}

func TestDispatcher_SetName(t *testing.T) {
	req := require.New(t)
	d, _ := newTestDispatcher()
	a := newConn(7, "")
	d.OnOpen(a)

	// When renaming to a blank name
	d.OnCall(a, "c1", chat.ProcSetName, []string{""})
	req.Equal(callReply{id: "c1", payload: "Name can not be empty", failed: true}, a.lastCall())

	// When renaming with markup
	d.OnCall(a, "c2", chat.ProcSetName, []string{" <i>alice</i> "})

	// Then the escaped name is stored and returned
	req.Equal(callReply{id: "c2", payload: map[string]string{"name": "&lt;i&gt;alice&lt;/i&gt;"}}, a.lastCall())
	req.Equal("&lt;i&gt;alice&lt;/i&gt;", d.sessions[a.SessionID()].Name)
	req.False(d.sessions[a.SessionID()].IsAnonymous())
}

func TestDispatcher_PublishIsSanitized(t *testing.T) {
	req := require.New(t)
	d, _ := newTestDispatcher()
	home := d.HomeRoom()
	a := newConn(7, "alice")
	b := newConn(8, "bob")
	for _, c := range []*recordingConn{a, b} {
		d.OnOpen(c)
		d.OnSubscribe(c, string(home))
	}
	b.reset()

	d.OnPublish(a, string(home), "<b>hi</b>", nil, nil)

	events := b.eventsOn(home)
	req.Len(events, 1)
	text := events[0][2].(string)
	req.NotContains(text, "<")
	req.NotContains(text, ">")
	req.Equal("&lt;b&gt;hi&lt;/b&gt;", text)
}

func TestDispatcher_PublishDrops(t *testing.T) {
	req := require.New(t)
	d, monitoring := newTestDispatcher()
	home := d.HomeRoom()
	a := newConn(7, "alice")
	outsider := newConn(8, "bob")
	d.OnOpen(a)
	d.OnSubscribe(a, string(home))
	d.OnOpen(outsider)
	d.OnSubscribe(outsider, string(chat.ControlRooms))
	a.reset()
	outsider.reset()

	tests := []struct {
		name  string
		conn  *recordingConn
		topic string
		text  string
	}{
		{name: "blank text", conn: a, topic: string(home), text: "   "},
		{name: "not subscribed", conn: outsider, topic: string(home), text: "hello"},
		{name: "unknown room", conn: a, topic: "room-missing", text: "hello"},
		{name: "control room", conn: outsider, topic: string(chat.ControlRooms), text: "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d.OnPublish(tt.conn, tt.topic, tt.text, nil, nil)
		})
	}

	// Then nothing was delivered to anybody
	req.Empty(a.events)
	req.Empty(outsider.events)
	req.Equal(uint64(len(tests)), monitoring.GetLatest().Dropped)
	req.Zero(monitoring.GetLatest().Published)
}

func TestDispatcher_SubscribeUnknownTopicAndTwice(t *testing.T) {
	req := require.New(t)
	d, _ := newTestDispatcher()
	home := d.HomeRoom()
	a := newConn(7, "alice")
	d.OnOpen(a)

	// When subscribing an unknown topic
	d.OnSubscribe(a, "room-nowhere")

	// Then nothing happens
	req.Empty(a.events)
	req.Empty(d.sessions[a.SessionID()].SubscribedTopics())

	// When subscribing General twice
	d.OnSubscribe(a, string(home))
	a.reset()
	d.OnSubscribe(a, string(home))

	// Then the second time is ignored
	req.Empty(a.events)
	req.Len(members(d, home), 2)
}

func TestDispatcher_CloseLeavesEveryRoom(t *testing.T) {
	req := require.New(t)
	d, _ := newTestDispatcher()
	home := d.HomeRoom()
	watcher := newConn(3, "watcher")
	a := newConn(7, "alice")
	d.OnOpen(watcher)
	d.OnSubscribe(watcher, string(home))
	d.OnOpen(a)
	d.OnSubscribe(a, string(home))
	d.OnSubscribe(a, string(chat.ControlRooms))
	d.OnCall(a, "c1", chat.ProcCreateRoom, []string{"Solo"})
	solo, _ := roomByName(d, "Solo")
	d.OnSubscribe(a, string(solo))
	watcher.reset()

	// When A disconnects
	d.OnClose(a)

	// Then it left every room and its session is gone
	_, ok := d.sessions[a.SessionID()]
	req.False(ok)
	req.NotContains(members(d, home), a.SessionID())
	req.NotContains(members(d, chat.ControlRooms), a.SessionID())
	_, ok = roomByName(d, "Solo")
	req.False(ok)
	req.Equal([][]any{{chat.KindLeftRoom, a.SessionID()}}, watcher.eventsOn(home))

	// And General and the control channel survive with the bot
	req.Contains(members(d, home), BotSessionID)
	req.Contains(members(d, chat.ControlRooms), BotSessionID)
}

func TestDispatcher_EmptyRoomsAreNeverKept(t *testing.T) {
	req := require.New(t)
	d, _ := newTestDispatcher()
	conns := make([]*recordingConn, 5)
	for i := range conns {
		conns[i] = newConn(int64(10+i), fmt.Sprintf("user%d", i))
		d.OnOpen(conns[i])
	}

	// When peers create, join and leave rooms in turn
	for i, c := range conns {
		name := fmt.Sprintf("room%d", i%2)
		d.OnCall(c, "c", chat.ProcCreateRoom, []string{name})
		id, ok := roomByName(d, name)
		req.True(ok)
		d.OnSubscribe(c, string(id))
		if i%3 == 0 {
			d.OnUnsubscribe(c, string(id))
		}
	}
	d.OnClose(conns[1])

	// Then every non-control room has members and both maps agree
	d.mu.Lock()
	defer d.mu.Unlock()
	req.Equal(len(d.registry.lookup), len(d.registry.rooms)-1)
	for display, id := range d.registry.lookup {
		room, ok := d.registry.rooms[id]
		req.True(ok)
		req.Equal(display, room.Display)
		req.Positive(room.Len())
	}
}

func TestDispatcher_OnErrorClosesConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d, _ := newTestDispatcher()
	conn := mocks.NewMockConnection(ctrl)

	// Given a connection failing at the transport level
	conn.EXPECT().SessionID().Return("sess-broken").AnyTimes()

	// Then it is closed exactly once
	conn.EXPECT().Close().Times(1)

	d.OnError(conn, fmt.Errorf("malformed frame"))
}

func TestDispatcher_State(t *testing.T) {
	req := require.New(t)
	d, _ := newTestDispatcher()
	a := newConn(7, "alice")
	d.OnOpen(a)
	d.OnSubscribe(a, string(d.HomeRoom()))

	state := d.State()

	req.Equal(1, state.Sessions)
	req.Equal(string(d.HomeRoom()), state.HomeRoom)
	req.Len(state.Rooms, 1)
	req.Equal(HomeRoomName, state.Rooms[0].Display)
	req.Equal(2, state.Rooms[0].Members)
}
