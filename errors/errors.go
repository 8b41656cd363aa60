package errors

import "fmt"

var (
	ErrWorkerPanic       = fmt.Errorf("worker panic")
	ErrOnlyCensoredFiles = fmt.Errorf("censored directory contains directories")
	ErrEmptyWords        = fmt.Errorf("no words have been found")

	ErrRoomNameEmpty = fmt.Errorf("Room name can not be empty")
	ErrNameEmpty     = fmt.Errorf("Name can not be empty")
	ErrUnknownCall   = fmt.Errorf("Unknown call")
	ErrRoomExists    = fmt.Errorf("room already exists")

	ErrInvalidFrame       = fmt.Errorf("invalid wamp frame")
	ErrUnknownMessageType = fmt.Errorf("unknown wamp message type")
)
