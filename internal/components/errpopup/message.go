package errpopup

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Message is an error as the popup shows it: the outermost context as a
// heading and the wrapped causes below.
type Message struct {
	Summary string
	Detail  string
}

// NewMessage splits err at its first wrapping boundary.
func NewMessage(err error) Message {
	text := err.Error()

	var msg Message
	if i := strings.Index(text, ": "); i != -1 {
		msg = Message{Summary: text[:i], Detail: text[i+2:]}
	} else {
		msg = Message{Summary: text}
	}

	msg.Summary = upperFirst(msg.Summary)
	return msg
}

func upperFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}

// queue holds the messages of an open popup. Errors reported while it is
// open go to the back.
type queue struct {
	messages []Message
	shown    int
}

func (q *queue) push(errs []error) {
	for _, err := range errs {
		if err != nil {
			q.messages = append(q.messages, NewMessage(err))
		}
	}
}

// next returns the first message not yet shown.
func (q *queue) next() (Message, bool) {
	if q.shown == len(q.messages) {
		return Message{}, false
	}
	msg := q.messages[q.shown]
	q.shown++
	return msg, true
}

func (q *queue) remaining() int {
	return len(q.messages) - q.shown
}
