package sip

import (
	"github.com/indigo-web/sip/sip/headers"
	"github.com/indigo-web/sip/sip/status"
)

// Response is mutated directly by the caller and rendered at once. The content-length
// header is always recomputed from the body upon rendering, so there's no need to set it.
type Response struct {
	Version Version
	Code    status.Code
	Headers *headers.Headers
	Body    []byte
}

// NewResponse returns a SIP/2.0 response with no headers and an empty body.
func NewResponse(code status.Code) *Response {
	return &Response{
		Version: DefaultVersion(),
		Code:    code,
		Headers: headers.New(),
	}
}

// Header adds values to the header.
func (r *Response) Header(name string, values ...string) *Response {
	for _, value := range values {
		r.Headers.Add(name, value)
	}

	return r
}

// String sets the body to the string.
func (r *Response) String(body string) *Response {
	r.Body = []byte(body)
	return r
}

// Bytes sets the body.
func (r *Response) Bytes(body []byte) *Response {
	r.Body = body
	return r
}

func (*Response) message() {}
