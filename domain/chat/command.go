package chat

import (
	"chat-broker/errors"
	"fmt"
)

const (
	ProcCreateRoom = "createRoom"
	ProcSetName    = "setName"
)

// Command is a parsed RPC call.
type Command interface {
	Procedure() string
}

type CreateRoomCommand struct {
	Name string
}

func (CreateRoomCommand) Procedure() string { return ProcCreateRoom }

type SetNameCommand struct {
	Name string
}

func (SetNameCommand) Procedure() string { return ProcSetName }

// ParseCommand maps a procedure and its positional arguments to a Command.
// Missing arguments are treated as empty strings.
func ParseCommand(procedure string, params []string) (Command, error) {
	first := ""
	if len(params) > 0 {
		first = params[0]
	}
	switch procedure {
	case ProcCreateRoom:
		return CreateRoomCommand{Name: first}, nil
	case ProcSetName:
		return SetNameCommand{Name: first}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownCall, procedure)
	}
}
