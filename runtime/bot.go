package runtime

import (
	"log/slog"
)

const (
	BotSessionID  = "1"
	BotResourceID = -1
	BotName       = "Lonely Bot"

	HomeRoomName = "General"

	helpText = "No one can hear you scream in /dev/null"
)

// Bot is the automated participant. It satisfies the same Connection contract
// as a remote peer, but everything it receives stays in process.
type Bot struct {
	log *slog.Logger
}

func NewBot(log *slog.Logger) *Bot {
	return &Bot{log: log.With("session_id", BotSessionID)}
}

func (b *Bot) SessionID() string { return BotSessionID }

func (b *Bot) ResourceID() int64 { return BotResourceID }

func (b *Bot) NameHint() string { return BotName }

func (b *Bot) Event(topic string, payload any) {
	b.log.Debug("Bot received event", "topic", topic, "payload", payload)
}

func (b *Bot) CallResult(callID string, payload any) {
	b.log.Debug("Bot received call result", "call_id", callID, "payload", payload)
}

func (b *Bot) CallError(callID string, payload any) {
	b.log.Warn("Bot received call error", "call_id", callID, "payload", payload)
}

// Close is a no-op, the bot lives as long as the dispatcher.
func (b *Bot) Close() {}
