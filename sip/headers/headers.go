package headers

import (
	"iter"

	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
	jsoniter "github.com/json-iterator/go"
)

type Pair struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Headers is an ordered storage of header fields. Names are stored lower-cased and compared
// case-insensitively. Insertion order is preserved, and a single name may carry any number
// of values. It uses linear search, which is faster than a map on the usual amount of
// headers a message carries.
type Headers struct {
	pairs []Pair
}

func New() *Headers {
	return new(Headers)
}

// NewPrealloc returns an instance with pre-allocated underlying storage.
func NewPrealloc(n int) *Headers {
	return &Headers{
		pairs: make([]Pair, 0, n),
	}
}

// NewFromMap returns a new instance filled with the map entries. As maps are unordered, the
// resulting order of pairs is unspecified.
func NewFromMap(m map[string][]string) *Headers {
	h := NewPrealloc(len(m))

	for name, values := range m {
		for _, value := range values {
			h.Add(name, value)
		}
	}

	return h
}

// Add appends a new value, keeping all the already existing values of the same name.
func (h *Headers) Add(name, value string) *Headers {
	h.pairs = append(h.pairs, Pair{
		Name:  lower(name),
		Value: value,
	})
	return h
}

// Set replaces the first value of the name in place and drops all the remaining ones. If
// the name isn't presented yet, the pair is appended.
func (h *Headers) Set(name, value string) *Headers {
	index := h.index(name)
	if index == -1 {
		return h.Add(name, value)
	}

	h.pairs[index].Value = value
	rest := h.pairs[:index+1]

	for _, pair := range h.pairs[index+1:] {
		if !strcomp.EqualFold(pair.Name, name) {
			rest = append(rest, pair)
		}
	}

	h.pairs = rest
	return h
}

// Get returns the first value of the name and whether it was found at all.
func (h *Headers) Get(name string) (value string, found bool) {
	if index := h.index(name); index != -1 {
		return h.pairs[index].Value, true
	}

	return "", false
}

// Value returns the first value of the name or an empty string.
func (h *Headers) Value(name string) string {
	return h.ValueOr(name, "")
}

// ValueOr returns either the first value of the name or the fallback.
func (h *Headers) ValueOr(name, or string) string {
	value, found := h.Get(name)
	if !found {
		return or
	}

	return value
}

// Values iterates over all the values of the name.
func (h *Headers) Values(name string) iter.Seq[string] {
	return h.ValuesOf(name)
}

// ValuesOf iterates over the values stored under any of the names. Values are yielded in
// the storage order, not in the order of names.
func (h *Headers) ValuesOf(names ...string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if h == nil {
			return
		}

		for _, pair := range h.pairs {
			if containsFold(names, pair.Name) && !yield(pair.Value) {
				return
			}
		}
	}
}

// Has indicates whether there's at least one value of the name.
func (h *Headers) Has(name string) bool {
	return h.index(name) != -1
}

// Delete removes all the values of the name.
func (h *Headers) Delete(name string) *Headers {
	rest := h.pairs[:0]

	for _, pair := range h.pairs {
		if !strcomp.EqualFold(pair.Name, name) {
			rest = append(rest, pair)
		}
	}

	clear(h.pairs[len(rest):])
	h.pairs = rest
	return h
}

// Names returns unique names in the order of their first appearance.
func (h *Headers) Names() []string {
	var names []string

	for _, pair := range h.Expose() {
		if !containsFold(names, pair.Name) {
			names = append(names, pair.Name)
		}
	}

	return names
}

// Iter iterates over all the pairs in storage order.
func (h *Headers) Iter() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if h == nil {
			return
		}

		for _, pair := range h.pairs {
			if !yield(pair.Name, pair.Value) {
				return
			}
		}
	}
}

// Len returns the number of stored pairs.
func (h *Headers) Len() int {
	if h == nil {
		return 0
	}

	return len(h.pairs)
}

func (h *Headers) Empty() bool {
	return h.Len() == 0
}

// Clone creates a deep copy.
func (h *Headers) Clone() *Headers {
	if h == nil {
		return New()
	}

	return &Headers{pairs: clone(h.pairs)}
}

// Expose exposes the underlying pairs slice.
func (h *Headers) Expose() []Pair {
	if h == nil {
		return nil
	}

	return h.pairs
}

// Clear drops all the entries, keeping the allocated space.
func (h *Headers) Clear() *Headers {
	h.pairs = h.pairs[:0]
	return h
}

// Equal reports whether both storages hold the same pairs in the same order.
func (h *Headers) Equal(other *Headers) bool {
	if h.Len() != other.Len() {
		return false
	}

	for i, pair := range h.Expose() {
		if pair != other.Expose()[i] {
			return false
		}
	}

	return true
}

func (h *Headers) MarshalJSON() ([]byte, error) {
	pairs := h.Expose()
	if pairs == nil {
		pairs = []Pair{}
	}

	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(pairs)
}

func (h *Headers) index(name string) int {
	if h == nil {
		return -1
	}

	for i, pair := range h.pairs {
		if strcomp.EqualFold(pair.Name, name) {
			return i
		}
	}

	return -1
}

func containsFold(collection []string, key string) bool {
	for _, element := range collection {
		if strcomp.EqualFold(element, key) {
			return true
		}
	}

	return false
}

// lower returns an ASCII lower-cased copy of the name. Already lower-cased names are
// returned as is without allocating, otherwise the only allocation is the copy itself.
func lower(name string) string {
	for i := 0; i < len(name); i++ {
		if c := name[i]; c >= 'A' && c <= 'Z' {
			b := []byte(name)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] |= 0x20
				}
			}

			// b is never touched again, so the string may share its memory
			return uf.B2S(b)
		}
	}

	return name
}

func clone[T any](source []T) []T {
	if len(source) == 0 {
		return nil
	}

	newSlice := make([]T, len(source))
	copy(newSlice, source)

	return newSlice
}
