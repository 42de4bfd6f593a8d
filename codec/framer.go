package codec

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/indigo-web/sip/config"
	"github.com/indigo-web/sip/sip"
)

// Framer extracts requests out of a connection buffer, which grows as the data arrives.
// Every call parses the buffer from its very beginning, so no parsing state is carried
// between calls. A single Framer must serve a single connection.
type Framer struct {
	maxSize int
	strict  bool
}

func NewFramer(cfg config.Framer) *Framer {
	return &Framer{
		maxSize: cfg.MaxMessageSize,
		strict:  cfg.StrictSyntax,
	}
}

// Decode tries to extract exactly one request out of the buffer. If there's not enough
// data yet, it returns nil request and nil error, leaving the buffer untouched. On success,
// the request's bytes are dropped from the buffer, leaving whatever follows them (e.g. a
// pipelined request) for further calls.
//
// Any returned error is fatal: the connection must not be used anymore.
func (f *Framer) Decode(buff *bytes.Buffer) (*sip.Request, error) {
	data := buff.Bytes()

	request, n, want, err := parse(data)
	if err == nil {
		buff.Next(n)
		return request, nil
	}

	if !f.recoverable(err) {
		return nil, err
	}

	if f.maxSize > 0 {
		if len(data) > f.maxSize {
			return nil, fmt.Errorf("%w: %d bytes buffered, limit is %d", ErrMessageTooLarge, len(data), f.maxSize)
		}

		if want > f.maxSize {
			return nil, fmt.Errorf("%w: declared %d bytes, limit is %d", ErrMessageTooLarge, want, f.maxSize)
		}
	}

	return nil, nil
}

// recoverable reports whether waiting for more data is the answer to the error.
func (f *Framer) recoverable(err error) bool {
	if errors.Is(err, ErrIncomplete) {
		return true
	}

	var syntaxErr *SyntaxError
	if errors.As(err, &syntaxErr) {
		return !syntaxErr.Fatal && !f.strict
	}

	return false
}
