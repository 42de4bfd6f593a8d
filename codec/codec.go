package codec

import (
	"bytes"

	"github.com/indigo-web/sip/config"
	"github.com/indigo-web/sip/sip"
)

// Codec pairs the framer and the serializer of a single connection.
type Codec struct {
	*Framer
	*Serializer
}

func New(cfg *config.Config) *Codec {
	return &Codec{
		Framer: NewFramer(cfg.Framer),
		Serializer: NewSerializer(
			make([]byte, 0, cfg.Serializer.BufferPrealloc),
			cfg.Serializer.DefaultHeaders,
		),
	}
}

// Encode renders the message and appends it to the buffer.
func (c *Codec) Encode(msg sip.Message, dst *bytes.Buffer) error {
	return c.Serializer.Write(msg, dst)
}
