package chat

import (
	"html"
	"strings"
	"time"
)

// TimestampLayout is ISO-8601 at second precision with the zone offset.
const TimestampLayout = "2006-01-02T15:04:05-07:00"

// Escape trims the input and escapes the characters significant to HTML
// (& < > " ').
func Escape(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}

// EscapeRaw escapes without trimming, published text keeps its spacing.
func EscapeRaw(s string) string {
	return html.EscapeString(s)
}

func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

func containsAnonymous(name string) bool {
	return strings.Contains(name, strings.TrimSpace(anonymousPrefix))
}
