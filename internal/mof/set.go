package mof

import (
	"encoding/json"
	"iter"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/text/cases"
)

// Keyed is implemented by every named member stored in a Set.
type Keyed interface {
	Key() string
}

// Set is an insertion-ordered collection keyed by case-folded name.
// Adding a name that is already present keeps the first entry.
// The zero value is an empty set ready to use.
type Set[T Keyed] struct {
	items []T
	index map[string]int
}

// FoldKey returns the comparison key for a MOF name.
func FoldKey(name string) string {
	// Casers carry state and are not shared.
	return cases.Fold().String(name)
}

func NewSet[T Keyed](items ...T) Set[T] {
	var s Set[T]
	for _, it := range items {
		s.Add(it)
	}
	return s
}

// Add inserts v unless a member with the same folded key exists.
func (s *Set[T]) Add(v T) bool {
	key := FoldKey(v.Key())
	if _, ok := s.index[key]; ok {
		return false
	}
	if s.index == nil {
		s.index = make(map[string]int)
	}
	s.index[key] = len(s.items)
	s.items = append(s.items, v)
	return true
}

func (s Set[T]) Get(name string) (T, bool) {
	if i, ok := s.index[FoldKey(name)]; ok {
		return s.items[i], true
	}
	var zero T
	return zero, false
}

func (s Set[T]) Has(name string) bool {
	_, ok := s.index[FoldKey(name)]
	return ok
}

func (s Set[T]) Len() int { return len(s.items) }

// All yields members in insertion order.
func (s Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, it := range s.items {
			if !yield(it) {
				return
			}
		}
	}
}

// Items returns a copy of the members in insertion order.
func (s Set[T]) Items() []T {
	if len(s.items) == 0 {
		return nil
	}
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s Set[T]) MarshalJSON() ([]byte, error) {
	if s.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.items)
}

func (s *Set[T]) UnmarshalJSON(b []byte) error {
	var items []T
	if err := json.Unmarshal(b, &items); err != nil {
		return err
	}
	*s = NewSet(items...)
	return nil
}

var (
	_ msgpack.CustomEncoder = Set[*Qualifier]{}
	_ msgpack.CustomDecoder = (*Set[*Qualifier])(nil)
)

func (s Set[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(s.items)
}

func (s *Set[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	var items []T
	if err := dec.Decode(&items); err != nil {
		return err
	}
	*s = NewSet(items...)
	return nil
}
