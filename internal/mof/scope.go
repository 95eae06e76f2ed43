package mof

import (
	"encoding/json"
	"strings"
)

// Scope names a schema element a qualifier may be applied to.
type Scope uint8

const (
	ScopeSchema Scope = iota
	ScopeClass
	ScopeAssociation
	ScopeIndication
	ScopeProperty
	ScopeReference
	ScopeMethod
	ScopeParameter
	ScopeAny
	scopeCount
)

var scopeNames = [...]string{
	ScopeSchema:      "schema",
	ScopeClass:       "class",
	ScopeAssociation: "association",
	ScopeIndication:  "indication",
	ScopeProperty:    "property",
	ScopeReference:   "reference",
	ScopeMethod:      "method",
	ScopeParameter:   "parameter",
	ScopeAny:         "any",
}

func (s Scope) String() string {
	if s < scopeCount {
		return scopeNames[s]
	}
	return "Scope(?)"
}

func ParseScope(name string) (Scope, bool) {
	for i, n := range scopeNames {
		if strings.EqualFold(n, name) {
			return Scope(i), true // #nosec G115 -- bounded by table size
		}
	}
	return 0, false
}

type ScopeSet uint16

func (s ScopeSet) Has(sc Scope) bool { return s&(1<<sc) != 0 }

func (s *ScopeSet) Add(sc Scope) { *s |= 1 << sc }

func (s ScopeSet) List() []Scope {
	var out []Scope
	for sc := range scopeCount {
		if s.Has(sc) {
			out = append(out, sc)
		}
	}
	return out
}

// ParseScopes folds tokens into a set. Unknown tokens are dropped.
func ParseScopes(tokens ...string) ScopeSet {
	var s ScopeSet
	for _, t := range tokens {
		if sc, ok := ParseScope(t); ok {
			s.Add(sc)
		}
	}
	return s
}

func (s ScopeSet) String() string {
	list := s.List()
	names := make([]string, len(list))
	for i, sc := range list {
		names[i] = sc.String()
	}
	return strings.Join(names, ", ")
}

func (s ScopeSet) MarshalJSON() ([]byte, error) {
	list := s.List()
	names := make([]string, len(list))
	for i, sc := range list {
		names[i] = sc.String()
	}
	return json.Marshal(names)
}

func (s *ScopeSet) UnmarshalJSON(b []byte) error {
	var names []string
	if err := json.Unmarshal(b, &names); err != nil {
		return err
	}
	*s = ParseScopes(names...)
	return nil
}
