package sip

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/indigo-web/sip/sip/status"
)

func TestVersion(t *testing.T) {
	require.Equal(t, "SIP/2.0", DefaultVersion().String())
	require.Equal(t, "SIP/255.17", Version{Major: 255, Minor: 17}.String())
	require.Equal(t, "v=SIP/1.0", string(Version{Major: 1}.Append([]byte("v="))))
}

func TestRequest(t *testing.T) {
	t.Run("clone", func(t *testing.T) {
		request := NewRequest("INVITE", "sip:bob@biloxi.com").Header("Via", "a", "b")
		request.Body = []byte("v=0")

		cloned := request.Clone()
		require.Equal(t, request, cloned)

		cloned.Headers.Set("via", "c")
		cloned.Body[0] = 'x'
		require.Equal(t, "a", request.Headers.Value("via"))
		require.Equal(t, 2, request.Headers.Len())
		require.Equal(t, "v=0", string(request.Body))
	})

	t.Run("defaults", func(t *testing.T) {
		request := NewRequest("ACK", "sip:bob@biloxi.com")
		require.Equal(t, DefaultVersion(), request.Version)
		require.True(t, request.Headers.Empty())
		require.Empty(t, request.Body)
	})
}

func TestResponse(t *testing.T) {
	response := NewResponse(status.Ringing).
		Header("To", "Bob <sip:bob@biloxi.com>;tag=a6c85cf").
		String("ringing")

	require.Equal(t, DefaultVersion(), response.Version)
	require.Equal(t, status.Ringing, response.Code)
	require.Equal(t, "Bob <sip:bob@biloxi.com>;tag=a6c85cf", response.Headers.Value("to"))
	require.Equal(t, "ringing", string(response.Body))

	response.Bytes(nil)
	require.Nil(t, response.Body)
}

func TestIsKnown(t *testing.T) {
	for _, method := range Methods {
		require.True(t, IsKnown(method), method)
	}

	for _, method := range []string{"", "GET", "invite", "INVITES", "FOO"} {
		require.False(t, IsKnown(method), method)
	}
}
