package wamp

import (
	"chat-broker/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Frame
	}{
		{
			name:     "Prefix",
			input:    `[1, "chat", "http://example.com/chat#"]`,
			expected: Frame{Type: TypePrefix, Prefix: "chat", URI: "http://example.com/chat#"},
		},
		{
			name:     "Call with mixed arguments",
			input:    `[2, "c-1", "createRoom", "Sports", 42, null]`,
			expected: Frame{Type: TypeCall, CallID: "c-1", URI: "createRoom", Args: []string{"Sports", "42", ""}},
		},
		{
			name:     "Call without arguments",
			input:    `[2, "c-2", "createRoom"]`,
			expected: Frame{Type: TypeCall, CallID: "c-2", URI: "createRoom"},
		},
		{
			name:     "Subscribe",
			input:    `[5, "ctrl:rooms"]`,
			expected: Frame{Type: TypeSubscribe, URI: "ctrl:rooms"},
		},
		{
			name:     "Unsubscribe",
			input:    `[6, "room-1"]`,
			expected: Frame{Type: TypeUnsubscribe, URI: "room-1"},
		},
		{
			name:     "Publish with excludeMe flag",
			input:    `[7, "room-1", "hello", true]`,
			expected: Frame{Type: TypePublish, URI: "room-1", Event: "hello"},
		},
		{
			name:  "Publish with exclude and eligible lists",
			input: `[7, "room-1", "hello", ["a"], ["b", "c"]]`,
			expected: Frame{Type: TypePublish, URI: "room-1", Event: "hello",
				Exclude: []string{"a"}, Eligible: []string{"b", "c"}},
		},
		{
			name:     "Publish of a non string event",
			input:    `[7, "room-1", {"text": "hi"}]`,
			expected: Frame{Type: TypePublish, URI: "room-1", Event: `{"text": "hi"}`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			frame, err := Decode([]byte(tt.input))
			req.NoError(err)
			req.Equal(tt.expected, frame)
		})
	}
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   error
	}{
		{name: "Not json", input: `[5, "room`, err: errors.ErrInvalidFrame},
		{name: "Object", input: `{"type": 5}`, err: errors.ErrInvalidFrame},
		{name: "Empty array", input: `[]`, err: errors.ErrInvalidFrame},
		{name: "Type is a string", input: `["5", "room-1"]`, err: errors.ErrInvalidFrame},
		{name: "Subscribe without topic", input: `[5]`, err: errors.ErrInvalidFrame},
		{name: "Short call", input: `[2, "c-1"]`, err: errors.ErrInvalidFrame},
		{name: "Server side type", input: `[8, "room-1", "x"]`, err: errors.ErrUnknownMessageType},
		{name: "Unknown type", input: `[42]`, err: errors.ErrUnknownMessageType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			_, err := Decode([]byte(tt.input))
			req.ErrorIs(err, tt.err)
		})
	}
}

func TestEncode(t *testing.T) {
	req := require.New(t)

	data, err := EncodeWelcome("sess-1", "chat-broker/1.0")
	req.NoError(err)
	req.JSONEq(`[0, "sess-1", 1, "chat-broker/1.0"]`, string(data))

	data, err = EncodeCallResult("c-1", map[string]string{"id": "room-1", "display": "Sports"})
	req.NoError(err)
	req.JSONEq(`[3, "c-1", {"id": "room-1", "display": "Sports"}]`, string(data))

	data, err = EncodeCallError("c-2", "Unknown call")
	req.NoError(err)
	req.JSONEq(`[4, "c-2", "Unknown call", ""]`, string(data))

	data, err = EncodeEvent("room-1", []any{"message", "sess-1", "hi", "2024-01-02T03:04:05+00:00"})
	req.NoError(err)
	req.JSONEq(`[8, "room-1", ["message", "sess-1", "hi", "2024-01-02T03:04:05+00:00"]]`, string(data))
}
