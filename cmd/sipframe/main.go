// Command sipframe reads a stream of SIP requests from a file or stdin and prints every
// framed request either as JSON or re-encoded, or answers each of them with a response.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"

	"github.com/indigo-web/sip/codec"
	"github.com/indigo-web/sip/config"
	"github.com/indigo-web/sip/internal/logging"
	"github.com/indigo-web/sip/sip"
	"github.com/indigo-web/sip/sip/headers"
	"github.com/indigo-web/sip/sip/status"
)

func main() {
	logger := logging.New("sipframe", os.Stderr)

	if err := run(os.Args[1:], os.Stdin, os.Stdout, logger); err != nil {
		logger.Error().Err(err).Msg("sipframe failed")
		os.Exit(1)
	}
}

type options struct {
	Config  string
	Chunk   int
	Format  string
	Respond int
	Input   string
}

func parseFlags(args []string) (options, error) {
	var opts options

	fs := flag.NewFlagSet("sipframe", flag.ContinueOnError)
	fs.StringVar(&opts.Config, "config", "", "path to a TOML config (defaults are used if empty)")
	fs.IntVar(&opts.Chunk, "chunk", 0, "read chunk size, overrides the config if positive")
	fs.StringVar(&opts.Format, "format", "json", "output format: json|sip")
	fs.IntVar(&opts.Respond, "respond", 0, "answer every request by a response with the status code instead")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	switch opts.Format {
	case "json", "sip":
	default:
		return opts, fmt.Errorf("unknown format: %s", opts.Format)
	}

	if opts.Respond < 0 || opts.Respond > 999 {
		return opts, fmt.Errorf("status code out of range: %d", opts.Respond)
	}

	if fs.NArg() > 1 {
		return opts, errors.New("at most one input file is expected")
	}

	opts.Input = fs.Arg(0)
	return opts, nil
}

func run(args []string, stdin io.Reader, stdout io.Writer, logger zerolog.Logger) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg := config.Default()
	if len(opts.Config) > 0 {
		if cfg, err = config.LoadFile(opts.Config); err != nil {
			return err
		}
	}

	if opts.Chunk > 0 {
		cfg.Reader.ChunkSize = opts.Chunk
	}

	input := stdin
	if len(opts.Input) > 0 {
		file, err := os.Open(opts.Input)
		if err != nil {
			return err
		}

		defer file.Close()
		input = file
	}

	c := codec.New(cfg)
	reader := codec.NewReader(input, c.Framer, cfg.Reader.ChunkSize)
	var out bytes.Buffer

	for count := 0; ; count++ {
		request, err := reader.Read()
		switch {
		case errors.Is(err, io.EOF):
			logger.Info().Int("requests", count).Msg("input exhausted")
			return nil
		case err != nil:
			return fmt.Errorf("request #%d: %w", count+1, err)
		}

		if !sip.IsKnown(request.Method) {
			logger.Warn().Str("method", request.Method).Msg("unknown method")
		}

		logger.Debug().
			Str("method", request.Method).
			Str("target", request.Target).
			Int("headers", request.Headers.Len()).
			Int("body", len(request.Body)).
			Msg("framed request")

		out.Reset()
		if err = render(c, &out, request, opts); err != nil {
			return err
		}

		if _, err = stdout.Write(out.Bytes()); err != nil {
			return err
		}
	}
}

func render(c *codec.Codec, out *bytes.Buffer, request *sip.Request, opts options) error {
	if opts.Respond > 0 {
		return c.Encode(respond(request, status.Code(opts.Respond)), out)
	}

	if opts.Format == "sip" {
		return c.Encode(request, out)
	}

	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(newView(request))
	if err != nil {
		return err
	}

	out.Write(data)
	out.WriteByte('\n')
	return nil
}

// respond builds a response to the request, echoing the headers identifying the transaction.
func respond(request *sip.Request, code status.Code) *sip.Response {
	response := sip.NewResponse(code)
	response.Version = request.Version

	for _, name := range []string{"via", "from", "to", "cseq"} {
		for value := range request.Headers.Values(name) {
			response.Headers.Add(name, value)
		}
	}

	if callID, ok := headers.CallID.Get(request.Headers); ok {
		headers.CallID.Set(response.Headers, callID)
	}

	return response
}

type view struct {
	Method  string           `json:"method"`
	Target  string           `json:"target"`
	Version string           `json:"version"`
	Headers *headers.Headers `json:"headers"`
	Body    string           `json:"body"`
}

func newView(request *sip.Request) view {
	return view{
		Method:  request.Method,
		Target:  request.Target,
		Version: request.Version.String(),
		Headers: request.Headers,
		Body:    string(request.Body),
	}
}
