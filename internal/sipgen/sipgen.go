// Package sipgen generates raw requests for tests and benchmarks.
package sipgen

import (
	"strconv"
	"strings"

	"github.com/indigo-web/sip/sip/headers"
)

func Headers(n int) *headers.Headers {
	hdrs := headers.NewPrealloc(n)

	for i := 0; i < n-1; i++ {
		hdrs.Add("some-random-header-name-nobody-cares-about"+strconv.Itoa(i), strings.Repeat("b", 100))
	}

	return hdrs.Add("call-id", "a84b4c76e66710@pc33.atlanta.example.com")
}

func HeadersBlock(hdrs *headers.Headers) (buff []byte) {
	for name, value := range hdrs.Iter() {
		buff = append(buff, name+": "+value+"\r\n"...)
	}

	return buff
}

// Generate renders a request. Content-length is always appended after the headers, so the
// request may be followed by more data.
func Generate(method, target string, hdrs *headers.Headers, body []byte) (request []byte) {
	request = append(request, method+" "+target+" SIP/2.0\r\n"...)
	request = append(request, HeadersBlock(hdrs)...)
	request = append(request, "content-length: "+strconv.Itoa(len(body))+"\r\n\r\n"...)
	return append(request, body...)
}
