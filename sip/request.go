package sip

import (
	"slices"

	"github.com/indigo-web/sip/sip/headers"
)

// Request is a single parsed request. Target is kept as is, without decomposing it into
// its user, host and port parts.
type Request struct {
	Method  string
	Target  string
	Version Version
	Headers *headers.Headers
	Body    []byte
}

func NewRequest(method, target string) *Request {
	return &Request{
		Method:  method,
		Target:  target,
		Version: DefaultVersion(),
		Headers: headers.New(),
	}
}

// Header adds values to the header.
func (r *Request) Header(name string, values ...string) *Request {
	for _, value := range values {
		r.Headers.Add(name, value)
	}

	return r
}

// Clone returns a deep copy, independent of the original one.
func (r *Request) Clone() *Request {
	return &Request{
		Method:  r.Method,
		Target:  r.Target,
		Version: r.Version,
		Headers: r.Headers.Clone(),
		Body:    slices.Clone(r.Body),
	}
}

func (*Request) message() {}
