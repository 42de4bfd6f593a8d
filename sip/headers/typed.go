package headers

import (
	"iter"
	"strconv"
	"strings"
)

// Typed is a header with a fixed set of names and a decoder projecting its textual value
// into T. The first name is the canonical one, the rest are aliases (mostly compact forms).
//
// Decoding is lossy on purpose: a value which cannot be decoded is reported exactly as an
// absent header.
type Typed[T any] struct {
	names  []string
	decode func(values iter.Seq[string]) (T, bool)
	encode func(T) string
}

// NewTyped defines a new typed header. Names must contain at least one entry, otherwise it
// panics.
func NewTyped[T any](
	names []string, decode func(values iter.Seq[string]) (T, bool), encode func(T) string,
) Typed[T] {
	if len(names) == 0 {
		panic("headers: typed header must have at least one name")
	}

	lowered := make([]string, len(names))
	for i, name := range names {
		lowered[i] = lower(name)
	}

	return Typed[T]{
		names:  lowered,
		decode: decode,
		encode: encode,
	}
}

// Name returns the canonical name.
func (t Typed[T]) Name() string {
	return t.names[0]
}

// Names returns all the recognized names, the canonical one being the first.
func (t Typed[T]) Names() []string {
	return clone(t.names)
}

// Is reports whether the name refers to the header under any of its names.
func (t Typed[T]) Is(name string) bool {
	return containsFold(t.names, name)
}

// Decode projects raw values into T.
func (t Typed[T]) Decode(values iter.Seq[string]) (T, bool) {
	return t.decode(values)
}

// Get decodes the header from the storage, looking under every name it's known by.
func (t Typed[T]) Get(h *Headers) (T, bool) {
	return t.decode(h.ValuesOf(t.names...))
}

// Set replaces every occurrence of the header under any of its names by a single value under
// the canonical name.
func (t Typed[T]) Set(h *Headers, value T) *Headers {
	for _, alias := range t.names[1:] {
		h.Delete(alias)
	}

	return h.Set(t.Name(), t.encode(value))
}

var (
	Allow         = NewTyped([]string{"allow"}, decodeList, encodeList)
	ContentLength = NewTyped([]string{"content-length", "l"}, decodeUint[uint64](64), encodeUint[uint64])
	MaxForwards   = NewTyped([]string{"max-forwards"}, decodeUint[uint32](32), encodeUint[uint32])
	UserAgent     = NewTyped([]string{"user-agent"}, decodeRaw, encodeRaw)
	CallID        = NewTyped([]string{"call-id", "i"}, decodeRaw, encodeRaw)
	ContentType   = NewTyped([]string{"content-type", "c"}, decodeRaw, encodeRaw)
	Supported     = NewTyped([]string{"supported", "k"}, decodeList, encodeList)
	Expires       = NewTyped([]string{"expires"}, decodeUint[uint32](32), encodeUint[uint32])
)

// canonical maps every known alias to its canonical name.
var canonical = func() map[string]string {
	m := make(map[string]string)
	for _, names := range [][]string{
		Allow.names, ContentLength.names, MaxForwards.names, UserAgent.names,
		CallID.names, ContentType.names, Supported.names, Expires.names,
	} {
		for _, name := range names {
			m[name] = names[0]
		}
	}

	return m
}()

// Canonical resolves a header name of a known typed header into its canonical form,
// e.g. "L" into "content-length". Unknown names are returned lower-cased.
func Canonical(name string) string {
	name = lower(name)
	if c, ok := canonical[name]; ok {
		return c
	}

	return name
}

// First returns the first value of the sequence.
func First(values iter.Seq[string]) (string, bool) {
	for value := range values {
		return value, true
	}

	return "", false
}

func decodeRaw(values iter.Seq[string]) (string, bool) {
	return First(values)
}

func encodeRaw(value string) string {
	return value
}

func decodeList(values iter.Seq[string]) ([]string, bool) {
	value, found := First(values)
	if !found || len(value) == 0 {
		return nil, false
	}

	tokens := strings.Split(value, ",")
	for i, token := range tokens {
		tokens[i] = strings.TrimSpace(token)
	}

	return tokens, true
}

func encodeList(tokens []string) string {
	return strings.Join(tokens, ", ")
}

func decodeUint[U ~uint32 | ~uint64](bitSize int) func(iter.Seq[string]) (U, bool) {
	return func(values iter.Seq[string]) (U, bool) {
		value, found := First(values)
		if !found {
			return 0, false
		}

		n, err := strconv.ParseUint(value, 10, bitSize)
		if err != nil {
			return 0, false
		}

		return U(n), true
	}
}

func encodeUint[U ~uint32 | ~uint64](value U) string {
	return strconv.FormatUint(uint64(value), 10)
}
