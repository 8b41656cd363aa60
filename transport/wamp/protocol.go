// Package wamp adapts WAMP v1 over WebSocket to the broker dispatcher.
package wamp

import (
	"chat-broker/errors"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

const (
	Subprotocol     = "wamp"
	ProtocolVersion = 1
)

type MessageType int

const (
	TypeWelcome MessageType = iota
	TypePrefix
	TypeCall
	TypeCallResult
	TypeCallError
	TypeSubscribe
	TypeUnsubscribe
	TypePublish
	TypeEvent
)

// Frame is a decoded client message. Only the fields of its Type are set.
type Frame struct {
	Type     MessageType
	CallID   string
	URI      string
	Prefix   string
	Args     []string
	Event    string
	Exclude  []string
	Eligible []string
}

// Decode parses one client frame. Server-only types are rejected.
func Decode(data []byte) (Frame, error) {
	if !gjson.ValidBytes(data) {
		return Frame{}, fmt.Errorf("%w: not json", errors.ErrInvalidFrame)
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return Frame{}, fmt.Errorf("%w: not an array", errors.ErrInvalidFrame)
	}
	parts := root.Array()
	if len(parts) == 0 || parts[0].Type != gjson.Number {
		return Frame{}, fmt.Errorf("%w: missing message type", errors.ErrInvalidFrame)
	}

	frame := Frame{Type: MessageType(parts[0].Int())}
	switch frame.Type {
	case TypePrefix:
		if len(parts) < 3 {
			return Frame{}, fmt.Errorf("%w: prefix needs 3 elements", errors.ErrInvalidFrame)
		}
		frame.Prefix = parts[1].String()
		frame.URI = parts[2].String()
	case TypeCall:
		if len(parts) < 3 {
			return Frame{}, fmt.Errorf("%w: call needs at least 3 elements", errors.ErrInvalidFrame)
		}
		frame.CallID = parts[1].String()
		frame.URI = parts[2].String()
		for _, arg := range parts[3:] {
			frame.Args = append(frame.Args, textOf(arg))
		}
	case TypeSubscribe, TypeUnsubscribe:
		if len(parts) < 2 {
			return Frame{}, fmt.Errorf("%w: subscription needs a topic", errors.ErrInvalidFrame)
		}
		frame.URI = parts[1].String()
	case TypePublish:
		if len(parts) < 3 {
			return Frame{}, fmt.Errorf("%w: publish needs at least 3 elements", errors.ErrInvalidFrame)
		}
		frame.URI = parts[1].String()
		frame.Event = textOf(parts[2])
		if len(parts) > 3 {
			frame.Exclude = stringsOf(parts[3])
		}
		if len(parts) > 4 {
			frame.Eligible = stringsOf(parts[4])
		}
	default:
		return Frame{}, fmt.Errorf("%w: %d", errors.ErrUnknownMessageType, frame.Type)
	}
	return frame, nil
}

// textOf keeps strings as they are and any other JSON value as its raw text.
func textOf(r gjson.Result) string {
	switch r.Type {
	case gjson.String:
		return r.Str
	case gjson.Null:
		return ""
	default:
		return r.Raw
	}
}

// stringsOf reads a list of session ids. The excludeMe boolean form yields nil.
func stringsOf(r gjson.Result) []string {
	if !r.IsArray() {
		return nil
	}
	var out []string
	for _, item := range r.Array() {
		out = append(out, item.String())
	}
	return out
}

func EncodeWelcome(sessionID, serverIdent string) ([]byte, error) {
	return json.Marshal([]any{TypeWelcome, sessionID, ProtocolVersion, serverIdent})
}

func EncodeCallResult(callID string, result any) ([]byte, error) {
	return json.Marshal([]any{TypeCallResult, callID, result})
}

// EncodeCallError places the payload in the error URI slot and leaves the
// description empty.
func EncodeCallError(callID string, payload any) ([]byte, error) {
	return json.Marshal([]any{TypeCallError, callID, payload, ""})
}

func EncodeEvent(topic string, payload any) ([]byte, error) {
	return json.Marshal([]any{TypeEvent, topic, payload})
}
