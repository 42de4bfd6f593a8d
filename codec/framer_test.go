package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/indigo-web/sip/config"
	"github.com/indigo-web/sip/internal/sipgen"
	"github.com/indigo-web/sip/sip"
	"github.com/indigo-web/sip/sip/headers"
)

func getFramer(mutate ...func(*config.Framer)) *Framer {
	cfg := config.Default().Framer
	for _, m := range mutate {
		m(&cfg)
	}

	return NewFramer(cfg)
}

func splitIntoParts(raw []byte, n int) (parts [][]byte) {
	for i := 0; i < len(raw); i += n {
		end := min(i+n, len(raw))
		parts = append(parts, raw[i:end])
	}

	return parts
}

// feedPartially writes the data into the buffer by chunks of n bytes, decoding after every
// chunk, and returns all the decoded requests.
func feedPartially(t *testing.T, framer *Framer, raw []byte, n int) (requests []*sip.Request) {
	var buff bytes.Buffer

	for _, chunk := range splitIntoParts(raw, n) {
		buff.Write(chunk)

		for {
			request, err := framer.Decode(&buff)
			require.NoError(t, err)
			if request == nil {
				break
			}

			requests = append(requests, request)
		}
	}

	require.Zero(t, buff.Len())
	return requests
}

func TestFramer(t *testing.T) {
	t.Run("body arrives later", func(t *testing.T) {
		framer := getFramer()
		buff := bytes.NewBufferString("GET sip:user@server:port SIP/2.0\r\na:b\r\nContent-length: 7\r\n\r\nabcdef")

		request, err := framer.Decode(buff)
		require.NoError(t, err)
		require.Nil(t, request)

		buff.WriteString("g")
		request, err = framer.Decode(buff)
		require.NoError(t, err)
		compareRequests(t, wantedRequest{
			Method:  "GET",
			Target:  "sip:user@server:port",
			Version: sip.DefaultVersion(),
			Headers: headers.New().Add("a", "b").Add("content-length", "7"),
			Body:    "abcdefg",
		}, request)
		require.Zero(t, buff.Len())
	})

	t.Run("split inside content-length", func(t *testing.T) {
		framer := getFramer()
		buff := bytes.NewBufferString("GET sip:a@b SIP/2.0\r\ncontent-le")

		request, err := framer.Decode(buff)
		require.NoError(t, err)
		require.Nil(t, request)

		buff.WriteString("ngth: 3\r\n\r\nabc")
		request, err = framer.Decode(buff)
		require.NoError(t, err)
		require.NotNil(t, request)
		require.Equal(t, "abc", string(request.Body))
		require.Zero(t, buff.Len())
	})

	t.Run("incomplete leaves buffer untouched", func(t *testing.T) {
		framer := getFramer()
		raw := "INVITE sip:bob@biloxi.com SIP/2.0\r\nl: 10\r\n\r\nabc"
		buff := bytes.NewBufferString(raw)

		for range 3 {
			request, err := framer.Decode(buff)
			require.NoError(t, err)
			require.Nil(t, request)
			require.Equal(t, raw, buff.String())
		}
	})

	t.Run("every split point", func(t *testing.T) {
		raw := []byte("REGISTER sip:registrar.biloxi.com SIP/2.0\r\n" +
			"Via: SIP/2.0/UDP bobspc.biloxi.com:5060\r\n" +
			"Max-Forwards: 70\r\n" +
			"i: 843817637684230@998sdasdh09\r\n" +
			"CSeq: 1826 REGISTER\r\n" +
			"Content-Length: 4\r\n\r\nbody")

		whole, _, err := Parse(raw)
		require.NoError(t, err)

		for i := 0; i <= len(raw); i++ {
			framer := getFramer(func(f *config.Framer) {
				f.StrictSyntax = true
			})
			buff := bytes.NewBuffer(append([]byte(nil), raw[:i]...))

			request, err := framer.Decode(buff)
			require.NoError(t, err)
			if i < len(raw) {
				require.Nil(t, request, "split at %d", i)
				buff.Write(raw[i:])
				request, err = framer.Decode(buff)
				require.NoError(t, err)
			}

			require.NotNil(t, request, "split at %d", i)
			require.Equal(t, whole, request)
			require.Zero(t, buff.Len())
		}
	})

	t.Run("fed by chunks", func(t *testing.T) {
		var stream []byte
		for _, method := range []string{"INVITE", "ACK", "BYE"} {
			stream = append(stream, sipgen.Generate(method, "sip:bob@biloxi.com", sipgen.Headers(5), []byte(method))...)
		}

		for n := 1; n <= len(stream); n++ {
			requests := feedPartially(t, getFramer(), stream, n)
			require.Len(t, requests, 3, "chunk size %d", n)

			for i, method := range []string{"INVITE", "ACK", "BYE"} {
				require.Equal(t, method, requests[i].Method)
				require.Equal(t, method, string(requests[i].Body))
			}
		}
	})

	t.Run("pipelined", func(t *testing.T) {
		framer := getFramer()
		buff := bytes.NewBufferString(
			"OPTIONS sip:a@b SIP/2.0\r\nl: 0\r\n\r\n" +
				"OPTIONS sip:c@d SIP/2.0\r\nl: 1\r\n\r\nx" +
				"OPTIONS sip:e@f",
		)

		first, err := framer.Decode(buff)
		require.NoError(t, err)
		require.Equal(t, "sip:a@b", first.Target)

		second, err := framer.Decode(buff)
		require.NoError(t, err)
		require.Equal(t, "sip:c@d", second.Target)
		require.Equal(t, "x", string(second.Body))

		third, err := framer.Decode(buff)
		require.NoError(t, err)
		require.Nil(t, third)
		require.Equal(t, "OPTIONS sip:e@f", buff.String())
	})

	t.Run("empty buffer", func(t *testing.T) {
		request, err := getFramer().Decode(new(bytes.Buffer))
		require.NoError(t, err)
		require.Nil(t, request)
	})
}

func TestFramerSyntax(t *testing.T) {
	const malformed = "GET / HTTP/1.1\r\n\r\n"

	t.Run("lenient", func(t *testing.T) {
		buff := bytes.NewBufferString(malformed)
		request, err := getFramer().Decode(buff)
		require.NoError(t, err)
		require.Nil(t, request)
		require.Equal(t, malformed, buff.String())
	})

	t.Run("strict", func(t *testing.T) {
		framer := getFramer(func(f *config.Framer) {
			f.StrictSyntax = true
		})

		_, err := framer.Decode(bytes.NewBufferString(malformed))
		requireSyntaxError(t, err, false)
	})

	t.Run("fatal regardless of strictness", func(t *testing.T) {
		for _, strict := range []bool{false, true} {
			framer := getFramer(func(f *config.Framer) {
				f.StrictSyntax = strict
			})

			_, err := framer.Decode(bytes.NewBufferString("GET / SIP/300.0\r\n\r\n"))
			requireSyntaxError(t, err, true)
		}
	})
}

func TestFramerLimits(t *testing.T) {
	limited := func(size int) *Framer {
		return getFramer(func(f *config.Framer) {
			f.MaxMessageSize = size
		})
	}

	t.Run("buffered beyond the limit", func(t *testing.T) {
		_, err := limited(32).Decode(bytes.NewBufferString("INVITE sip:" + strings.Repeat("a", 40)))
		require.ErrorIs(t, err, ErrMessageTooLarge)
	})

	t.Run("exactly at the limit", func(t *testing.T) {
		raw := "INVITE sip:" + strings.Repeat("a", 21)
		request, err := limited(len(raw)).Decode(bytes.NewBufferString(raw))
		require.NoError(t, err)
		require.Nil(t, request)
	})

	t.Run("declared content-length beyond the limit", func(t *testing.T) {
		_, err := limited(100).Decode(bytes.NewBufferString("MESSAGE sip:a@b SIP/2.0\r\nl: 1000\r\n\r\n"))
		require.ErrorIs(t, err, ErrMessageTooLarge)
	})

	t.Run("huge content-length", func(t *testing.T) {
		_, err := limited(100).Decode(bytes.NewBufferString("MESSAGE sip:a@b SIP/2.0\r\nl: 18446744073709551615\r\n\r\n"))
		require.ErrorIs(t, err, ErrMessageTooLarge)
	})

	t.Run("malformed beyond the limit", func(t *testing.T) {
		_, err := limited(16).Decode(bytes.NewBufferString("GET / HTTP/1.1\r\nHost: example.com\r\n\r\n"))
		require.ErrorIs(t, err, ErrMessageTooLarge)
	})

	t.Run("unbounded", func(t *testing.T) {
		request, err := limited(0).Decode(bytes.NewBufferString("INVITE sip:" + strings.Repeat("a", 1<<16)))
		require.NoError(t, err)
		require.Nil(t, request)
	})
}

func BenchmarkFramer(b *testing.B) {
	raw := sipgen.Generate("INVITE", "sip:bob@biloxi.com", sipgen.Headers(10), []byte("v=0\r\n"))
	framer := getFramer()
	var buff bytes.Buffer

	b.SetBytes(int64(len(raw)))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		buff.Write(raw)
		_, _ = framer.Decode(&buff)
	}
}
