package codec

import (
	"errors"
	"strconv"
)

var (
	// ErrIncomplete is returned by Parse when the data ends before the message does. The
	// framer never returns it, reporting no message instead.
	ErrIncomplete = errors.New("codec: incomplete message")
	// ErrMessageTooLarge is returned by the framer once the buffered data exceeds the
	// configured limit without forming a complete message.
	ErrMessageTooLarge = errors.New("codec: message too large")
	// ErrUnsupportedMessage is returned when asked to encode something that is neither
	// a request nor a response.
	ErrUnsupportedMessage = errors.New("codec: unsupported message")
)

// SyntaxError is a grammar violation at a certain offset of the input. Fatal errors are
// those which no amount of further data can fix.
type SyntaxError struct {
	Offset int
	Reason string
	Fatal  bool
}

func (s *SyntaxError) Error() string {
	return "codec: malformed message at offset " + strconv.Itoa(s.Offset) + ": " + s.Reason
}

func mismatch(offset int, reason string) error {
	return &SyntaxError{Offset: offset, Reason: reason}
}

func fatal(offset int, reason string) error {
	return &SyntaxError{Offset: offset, Reason: reason, Fatal: true}
}
