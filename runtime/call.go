package runtime

import (
	"chat-broker/contract"
	"chat-broker/domain/chat"
	"chat-broker/errors"
	stderrors "errors"
	"log/slog"
)

// OnCall runs a remote procedure and answers with exactly one result or error.
func (d *Dispatcher) OnCall(conn contract.Connection, callID, procedure string, params []string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	result, err := d.call(conn, procedure, params)
	if err != nil {
		d.log.Debug("Call failed", "session_id", conn.SessionID(), "procedure", procedure, slog.Any("error", err))
		conn.CallError(callID, callErrorPayload(err, result))
		return
	}
	conn.CallResult(callID, result)
}

func (d *Dispatcher) call(conn contract.Connection, procedure string, params []string) (any, error) {
	cmd, err := chat.ParseCommand(procedure, params)
	if err != nil {
		return nil, err
	}

	switch c := cmd.(type) {
	case chat.CreateRoomCommand:
		return d.createRoom(c.Name)
	case chat.SetNameCommand:
		return d.setName(conn, c.Name)
	default:
		return nil, errors.ErrUnknownCall
	}
}

// createRoom returns the room registered under name. An existing room comes
// back together with ErrRoomExists, created rooms are announced on the control
// channel by the registry.
func (d *Dispatcher) createRoom(name string) (chat.RoomRef, error) {
	display := chat.Escape(name)
	if display == "" {
		return chat.RoomRef{}, errors.ErrRoomNameEmpty
	}
	id, created := d.registry.FindOrCreate(display)
	ref := chat.RoomRef{ID: id, Display: display}
	if !created {
		return ref, errors.ErrRoomExists
	}
	return ref, nil
}

func (d *Dispatcher) setName(conn contract.Connection, name string) (map[string]string, error) {
	display := chat.Escape(name)
	if display == "" {
		return nil, errors.ErrNameEmpty
	}
	session, ok := d.sessions[conn.SessionID()]
	if !ok {
		return nil, errors.ErrUnknownCall
	}
	session.Name = display
	return map[string]string{"name": display}, nil
}

// callErrorPayload maps a call failure to what goes on the wire.
// An existing room is reported with its identity, like a success would be.
func callErrorPayload(err error, result any) any {
	switch {
	case stderrors.Is(err, errors.ErrRoomExists):
		return result
	case stderrors.Is(err, errors.ErrRoomNameEmpty):
		return errors.ErrRoomNameEmpty.Error()
	case stderrors.Is(err, errors.ErrNameEmpty):
		return errors.ErrNameEmpty.Error()
	default:
		return errors.ErrUnknownCall.Error()
	}
}
