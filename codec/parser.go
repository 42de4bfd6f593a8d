package codec

import (
	"bytes"
	"math"
	"unicode/utf8"

	"github.com/indigo-web/sip/sip"
	"github.com/indigo-web/sip/sip/headers"
)

var versionPrefix = []byte("SIP/")

// Parse parses a single request from the beginning of data. Upon success, it returns the
// request and the rest of data, which isn't consumed. Otherwise, the error is either
// ErrIncomplete, in case data ends before the request does, or a *SyntaxError.
//
// The request never references data, so the caller is free to reuse it right away.
func Parse(data []byte) (request *sip.Request, rest []byte, err error) {
	request, n, _, err := parse(data)
	if err != nil {
		return nil, nil, err
	}

	return request, data[n:], nil
}

// parse does the actual parsing. On success n is the number of consumed bytes. On
// ErrIncomplete, want is the full length of the message if it's already known (that is,
// the content-length is parsed), and 0 otherwise.
func parse(data []byte) (request *sip.Request, n, want int, err error) {
	var (
		offset  int
		method  string
		target  string
		version sip.Version
	)

	// any number of empty lines may precede the request line
	for {
		term, err := lineTerminator(data[offset:])
		if err != nil {
			return nil, 0, 0, err
		}

		if term == 0 {
			break
		}

		offset += term
	}

	// method
	{
		sp := indexSpace(data[offset:])
		switch sp {
		case -1:
			return nil, 0, 0, ErrIncomplete
		case 0:
			return nil, 0, 0, mismatch(offset, "empty method")
		}

		token := data[offset : offset+sp]
		if !utf8.Valid(token) {
			return nil, 0, 0, fatal(offset, "method is not valid UTF-8")
		}

		method = string(token)
		offset += sp
	}

	if offset, err = skipSpaces(data, offset); err != nil {
		return nil, 0, 0, err
	}

	// target
	{
		sp := indexSpace(data[offset:])
		if sp == -1 {
			return nil, 0, 0, ErrIncomplete
		}

		token := data[offset : offset+sp]
		if !utf8.Valid(token) {
			return nil, 0, 0, fatal(offset, "request target is not valid UTF-8")
		}

		target = string(token)
		offset += sp
	}

	if offset, err = skipSpaces(data, offset); err != nil {
		return nil, 0, 0, err
	}

	// version
	{
		available := data[offset:]
		if len(available) < len(versionPrefix) {
			if !bytes.HasPrefix(versionPrefix, available) {
				return nil, 0, 0, mismatch(offset, "bad protocol")
			}

			return nil, 0, 0, ErrIncomplete
		}

		if !bytes.Equal(available[:len(versionPrefix)], versionPrefix) {
			return nil, 0, 0, mismatch(offset, "bad protocol")
		}

		offset += len(versionPrefix)

		if version.Major, offset, err = versionNumber(data, offset); err != nil {
			return nil, 0, 0, err
		}

		if offset == len(data) {
			return nil, 0, 0, ErrIncomplete
		}

		if data[offset] != '.' {
			return nil, 0, 0, mismatch(offset, "bad protocol version separator")
		}

		offset++

		if version.Minor, offset, err = versionNumber(data, offset); err != nil {
			return nil, 0, 0, err
		}

		term, err := lineTerminator(data[offset:])
		if err != nil {
			return nil, 0, 0, err
		}

		if term == 0 {
			return nil, 0, 0, mismatch(offset, "request line must end right after the version")
		}

		offset += term
	}

	hdrs := headers.New()

headerName:
	{
		term, err := lineTerminator(data[offset:])
		if err != nil {
			return nil, 0, 0, err
		}

		if term > 0 {
			offset += term
			goto body
		}

		end := indexNameEnd(data[offset:])
		if end == -1 {
			return nil, 0, 0, ErrIncomplete
		}

		name := data[offset : offset+end]
		switch {
		case len(name) == 0:
			return nil, 0, 0, mismatch(offset, "empty header name")
		case !isToken(name):
			return nil, 0, 0, mismatch(offset, "bad header name")
		}

		offset += end
		for offset < len(data) && isSpace(data[offset]) {
			offset++
		}

		if offset == len(data) {
			return nil, 0, 0, ErrIncomplete
		}

		if data[offset] != ':' {
			return nil, 0, 0, mismatch(offset, "header name must be followed by a colon")
		}

		offset++
		for offset < len(data) && isSpace(data[offset]) {
			offset++
		}

		lf := indexNewline(data[offset:])
		if lf == -1 {
			return nil, 0, 0, ErrIncomplete
		}

		value := data[offset : offset+lf]
		if !isFieldValue(value) {
			return nil, 0, 0, mismatch(offset, "control character in header value")
		}

		offset += lf
		term, err = lineTerminator(data[offset:])
		if err != nil {
			return nil, 0, 0, err
		}

		offset += term
		hdrs.Set(string(name), string(value))
		goto headerName
	}

body:
	length := len(data) - offset

	if contentLength, ok := headers.ContentLength.Get(hdrs); ok {
		if contentLength > uint64(length) {
			want = math.MaxInt
			if contentLength <= uint64(math.MaxInt-offset) {
				want = offset + int(contentLength)
			}

			return nil, 0, want, ErrIncomplete
		}

		length = int(contentLength)
	}

	body := make([]byte, length)
	copy(body, data[offset:offset+length])

	return &sip.Request{
		Method:  method,
		Target:  target,
		Version: version,
		Headers: hdrs,
		Body:    body,
	}, offset + length, 0, nil
}

// lineTerminator returns the length of the line terminator at the beginning of data, which
// is either CRLF, CR or LF. 0 means there's no terminator. A lone CR at the end of data is
// reported as incomplete, as it might be the first half of CRLF.
func lineTerminator(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, ErrIncomplete
	}

	switch data[0] {
	case '\n':
		return 1, nil
	case '\r':
		if len(data) == 1 {
			return 0, ErrIncomplete
		}

		if data[1] == '\n' {
			return 2, nil
		}

		return 1, nil
	default:
		return 0, nil
	}
}

// versionNumber parses a run of at least one decimal digit fitting into 8 bits.
func versionNumber(data []byte, offset int) (uint8, int, error) {
	var (
		value  int
		digits int
	)

	for ; offset < len(data); offset++ {
		char := data[offset]
		if char < '0' || char > '9' {
			break
		}

		if value = value*10 + int(char-'0'); value > math.MaxUint8 {
			return 0, 0, fatal(offset, "protocol version number overflows")
		}

		digits++
	}

	if offset == len(data) {
		// the run of digits may continue
		return 0, 0, ErrIncomplete
	}

	if digits == 0 {
		return 0, 0, mismatch(offset, "protocol version number expected")
	}

	return uint8(value), offset, nil
}

func skipSpaces(data []byte, offset int) (int, error) {
	for ; offset < len(data); offset++ {
		if !isSpace(data[offset]) {
			return offset, nil
		}
	}

	return offset, ErrIncomplete
}

func indexSpace(data []byte) int {
	for i, char := range data {
		if isSpace(char) {
			return i
		}
	}

	return -1
}

func indexNewline(data []byte) int {
	for i, char := range data {
		if char == '\r' || char == '\n' {
			return i
		}
	}

	return -1
}

// indexNameEnd returns the position of the first byte which cannot continue a header name
// line before the colon.
func indexNameEnd(data []byte) int {
	for i, char := range data {
		switch char {
		case ':', ' ', '\t', '\r', '\n':
			return i
		}
	}

	return -1
}

func isSpace(char byte) bool {
	return char == ' ' || char == '\t'
}

// isToken reports whether the name consists of token characters only.
func isToken(name []byte) bool {
	for _, char := range name {
		if char >= 0x80 || !tokenChars[char] {
			return false
		}
	}

	return true
}

func isFieldValue(value []byte) bool {
	for _, char := range value {
		if (char < 0x20 && char != '\t') || char == 0x7f {
			return false
		}
	}

	return true
}

var tokenChars = func() (table [128]bool) {
	for c := 'a'; c <= 'z'; c++ {
		table[c] = true
		table[c-0x20] = true
	}

	for c := '0'; c <= '9'; c++ {
		table[c] = true
	}

	for _, c := range "-.!%*_+`'~" {
		table[c] = true
	}

	return table
}()
