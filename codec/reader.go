package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/indigo-web/sip/config"
	"github.com/indigo-web/sip/sip"
)

// Reader pulls requests out of a stream, feeding the framer chunk by chunk.
type Reader struct {
	r      io.Reader
	framer *Framer
	buff   bytes.Buffer
	chunk  []byte
	err    error
}

// NewReader returns a reader pulling at most chunkSize bytes per read. Non-positive sizes
// fall back to the default one.
func NewReader(r io.Reader, framer *Framer, chunkSize int) *Reader {
	if chunkSize <= 0 {
		chunkSize = config.Default().Reader.ChunkSize
	}

	return &Reader{
		r:      r,
		framer: framer,
		chunk:  make([]byte, chunkSize),
	}
}

// Read returns the next request of the stream. When the stream ends exactly at a message
// boundary, io.EOF is returned. If it ends in the middle of a message, the error wraps
// io.ErrUnexpectedEOF. Errors of the framer and the underlying reader are final, every
// following call returns them again.
func (r *Reader) Read() (*sip.Request, error) {
	if r.err != nil {
		return nil, r.err
	}

	for {
		request, err := r.framer.Decode(&r.buff)
		if err != nil {
			r.err = err
			return nil, err
		}

		if request != nil {
			return request, nil
		}

		n, err := r.r.Read(r.chunk)
		r.buff.Write(r.chunk[:n])

		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			if n > 0 {
				// the last chunk may complete a message
				continue
			}

			r.err = r.eof()
			return nil, r.err
		default:
			r.err = err
			return nil, err
		}
	}
}

// Buffered returns the number of bytes read from the stream but not consumed yet.
func (r *Reader) Buffered() int {
	return r.buff.Len()
}

func (r *Reader) eof() error {
	if r.buff.Len() == 0 {
		return io.EOF
	}

	return fmt.Errorf("%d bytes left: %w", r.buff.Len(), io.ErrUnexpectedEOF)
}
