package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type (
	Framer struct {
		// MaxMessageSize bounds the number of bytes buffered while no complete message could
		// be extracted. Exceeding it is fatal for the connection. 0 disables the limit.
		MaxMessageSize int `toml:"max_message_size"`
		// StrictSyntax makes every grammar violation fatal. Otherwise, only violations which
		// can never be fixed by more data are reported, and the rest are waited out until
		// either the message completes or MaxMessageSize is exceeded.
		StrictSyntax bool `toml:"strict_syntax" test:"nullable"`
	}

	Serializer struct {
		// BufferPrealloc is the initial capacity of the buffer every message is rendered into
		// before being written out.
		BufferPrealloc int `toml:"buffer_prealloc"`
		// DefaultHeaders are included into every serialized message, unless the message
		// carries its own value of the header. Content-length is ignored here, as it's always
		// computed out of the body.
		DefaultHeaders map[string]string `toml:"default_headers" test:"nullable"`
	}

	Reader struct {
		// ChunkSize is how many bytes are read from the stream at most per single read.
		ChunkSize int `toml:"chunk_size"`
	}
)

// Config holds limits and pre-allocations of the codec.
//
// Always start from Default() and modify it rather than initializing the config manually,
// as zero values are mostly meaningless.
type Config struct {
	Framer     Framer     `toml:"framer"`
	Serializer Serializer `toml:"serializer"`
	Reader     Reader     `toml:"reader"`
}

// Default returns default config.
func Default() *Config {
	return &Config{
		Framer: Framer{
			MaxMessageSize: 2_000_000,
			StrictSyntax:   false,
		},
		Serializer: Serializer{
			BufferPrealloc: 1024,
			DefaultHeaders: map[string]string{},
		},
		Reader: Reader{
			ChunkSize: 4 * 1024,
		},
	}
}

// LoadFile reads a TOML file on top of the defaults. Keys missing in the file keep their
// default values, unknown keys are rejected.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("load config (%s): %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}

		return nil, fmt.Errorf("load config (%s): unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config (%s): %w", path, err)
	}

	return cfg, nil
}

// Validate reports values which cannot possibly work.
func (c *Config) Validate() error {
	var errs []error

	if c.Framer.MaxMessageSize < 0 {
		errs = append(errs, errors.New("framer.max_message_size must not be negative"))
	}

	if c.Serializer.BufferPrealloc < 0 {
		errs = append(errs, errors.New("serializer.buffer_prealloc must not be negative"))
	}

	if c.Reader.ChunkSize <= 0 {
		errs = append(errs, errors.New("reader.chunk_size must be positive"))
	}

	return errors.Join(errs...)
}
