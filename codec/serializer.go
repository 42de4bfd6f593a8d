package codec

import (
	"io"
	"strconv"

	"github.com/indigo-web/sip/sip"
	"github.com/indigo-web/sip/sip/headers"
	"github.com/indigo-web/sip/sip/status"
	"github.com/indigo-web/utils/strcomp"
)

const (
	crlf          = "\r\n"
	colonsp       = ": "
	contentLength = "content-length: "
)

// Serializer renders messages into its own buffer and writes each of them out at once.
type Serializer struct {
	buff           []byte
	defaultHeaders []headers.Pair
}

// NewSerializer returns a serializer rendering into the buffer. Default headers are included
// into every message, unless the message has its own values of them.
func NewSerializer(buff []byte, defaultHeaders map[string]string) *Serializer {
	return &Serializer{
		buff:           buff[:0],
		defaultHeaders: processDefaultHeaders(defaultHeaders),
	}
}

// Write renders the message and writes it into the writer. Errors of the writer are returned
// as is.
func (s *Serializer) Write(msg sip.Message, w io.Writer) (err error) {
	defer s.clear()

	switch m := msg.(type) {
	case *sip.Response:
		if m == nil {
			return ErrUnsupportedMessage
		}

		s.buff = appendStatusLine(s.buff, m)
		s.buff = appendEntity(s.buff, m.Headers, m.Body, s.defaultHeaders)
	case *sip.Request:
		if m == nil {
			return ErrUnsupportedMessage
		}

		s.buff = appendRequestLine(s.buff, m)
		s.buff = appendEntity(s.buff, m.Headers, m.Body, s.defaultHeaders)
	default:
		return ErrUnsupportedMessage
	}

	n, err := w.Write(s.buff)
	if err == nil && n < len(s.buff) {
		err = io.ErrShortWrite
	}

	return err
}

// AppendResponse renders the response into the buffer.
func AppendResponse(buff []byte, response *sip.Response) []byte {
	buff = appendStatusLine(buff, response)
	return appendEntity(buff, response.Headers, response.Body, nil)
}

// AppendRequest renders the request into the buffer.
func AppendRequest(buff []byte, request *sip.Request) []byte {
	buff = appendRequestLine(buff, request)
	return appendEntity(buff, request.Headers, request.Body, nil)
}

// appendStatusLine renders the status line. The reason phrase is included only if the code
// is known, otherwise the line ends right after the code.
func appendStatusLine(buff []byte, response *sip.Response) []byte {
	buff = response.Version.Append(buff)
	buff = append(buff, ' ')
	buff = strconv.AppendUint(buff, uint64(response.Code), 10)
	if text := status.Text(response.Code); len(text) > 0 {
		buff = append(buff, ' ')
		buff = append(buff, text...)
	}

	return append(buff, crlf...)
}

func appendRequestLine(buff []byte, request *sip.Request) []byte {
	buff = append(buff, request.Method...)
	buff = append(buff, ' ')
	buff = append(buff, request.Target...)
	buff = append(buff, ' ')
	buff = request.Version.Append(buff)
	return append(buff, crlf...)
}

// appendEntity renders headers, default headers the message doesn't have, the content-length
// computed out of the body, the separating empty line and the body itself. Content-length
// from the headers is never passed through, whichever of its names it's stored under.
func appendEntity(buff []byte, hdrs *headers.Headers, body []byte, defaults []headers.Pair) []byte {
	for name, value := range hdrs.Iter() {
		if headers.ContentLength.Is(name) {
			continue
		}

		buff = appendHeader(buff, name, value)
	}

	for _, header := range defaults {
		if !hdrs.Has(header.Name) {
			buff = appendHeader(buff, header.Name, header.Value)
		}
	}

	buff = strconv.AppendInt(append(buff, contentLength...), int64(len(body)), 10)
	buff = append(buff, crlf...)
	buff = append(buff, crlf...)

	return append(buff, body...)
}

func appendHeader(buff []byte, name, value string) []byte {
	buff = append(buff, name...)
	buff = append(buff, colonsp...)
	buff = append(buff, value...)
	return append(buff, crlf...)
}

func (s *Serializer) clear() {
	s.buff = s.buff[:0]
}

func processDefaultHeaders(hdrs map[string]string) []headers.Pair {
	processed := make([]headers.Pair, 0, len(hdrs))

	for name, value := range hdrs {
		if headers.ContentLength.Is(name) || containsName(processed, name) {
			continue
		}

		processed = append(processed, headers.Pair{
			Name:  headers.Canonical(name),
			Value: value,
		})
	}

	return processed
}

func containsName(pairs []headers.Pair, name string) bool {
	for _, pair := range pairs {
		if strcomp.EqualFold(pair.Name, name) {
			return true
		}
	}

	return false
}
