package sipgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	hdrs := Headers(3)
	require.Equal(t, 3, hdrs.Len())
	require.True(t, hdrs.Has("call-id"))

	request := string(Generate("BYE", "sip:bob@biloxi.com", hdrs, []byte("x")))
	require.True(t, strings.HasPrefix(request, "BYE sip:bob@biloxi.com SIP/2.0\r\n"))
	require.True(t, strings.HasSuffix(request, "content-length: 1\r\n\r\nx"))
	require.Equal(t, 4, strings.Count(request, ": "))
}
