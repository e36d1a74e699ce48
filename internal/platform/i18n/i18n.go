package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message is a translatable text with its format arguments. Key is the
// English format string and doubles as the catalog key.
type Message struct {
	Key  string
	Args []any
}

func New(key string, args ...any) Message {
	return Message{Key: key, Args: args}
}

// String renders the message in the fallback language.
func (m Message) String() string {
	return fmt.Sprintf(m.Key, m.Args...)
}

// Localize renders the message with printer, falling back to English.
func (m Message) Localize(p *message.Printer) string {
	if p == nil {
		return m.String()
	}
	return p.Sprintf(m.Key, m.Args...)
}

var supported = []language.Tag{
	language.English,
	language.Indonesian,
	language.Polish,
}

var matcher = language.NewMatcher(supported)

// PrinterFor picks the best supported language for an Accept-Language header.
func PrinterFor(acceptLanguage string) *message.Printer {
	tags, _, err := language.ParseAcceptLanguage(strings.TrimSpace(acceptLanguage))
	if err != nil || len(tags) == 0 {
		return message.NewPrinter(language.English)
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return message.NewPrinter(language.English)
	}
	return message.NewPrinter(supported[idx])
}
