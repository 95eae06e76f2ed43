package mof

import (
	"encoding/json"
	"strings"
)

// Flavor controls how a qualifier propagates.
type Flavor uint8

const (
	EnableOverride Flavor = iota
	DisableOverride
	Restricted
	ToSubclass
	Translate
	flavorCount
)

var flavorNames = [...]string{
	EnableOverride:  "EnableOverride",
	DisableOverride: "DisableOverride",
	Restricted:      "Restricted",
	ToSubclass:      "ToSubclass",
	Translate:       "Translatable",
}

func (f Flavor) String() string {
	if f < flavorCount {
		return flavorNames[f]
	}
	return "Flavor(?)"
}

// ParseFlavor matches a flavor keyword ignoring case. Both the enumeration
// spelling TRANSLATE and the MOF keyword Translatable map to Translate.
func ParseFlavor(name string) (Flavor, bool) {
	if strings.EqualFold(name, "translate") {
		return Translate, true
	}
	for i, n := range flavorNames {
		if strings.EqualFold(n, name) {
			return Flavor(i), true // #nosec G115 -- bounded by table size
		}
	}
	return 0, false
}

// FlavorSet is an unordered set of flavors. Iteration follows declaration order of the constants.
type FlavorSet uint8

func (s FlavorSet) Has(f Flavor) bool { return s&(1<<f) != 0 }

func (s *FlavorSet) Add(f Flavor) { *s |= 1 << f }

func (s FlavorSet) Len() int {
	n := 0
	for f := range flavorCount {
		if s.Has(f) {
			n++
		}
	}
	return n
}

func (s FlavorSet) List() []Flavor {
	var out []Flavor
	for f := range flavorCount {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// ParseFlavors folds tokens into a set. Unknown tokens are dropped.
func ParseFlavors(tokens ...string) FlavorSet {
	var s FlavorSet
	for _, t := range tokens {
		if f, ok := ParseFlavor(t); ok {
			s.Add(f)
		}
	}
	return s
}

func (s FlavorSet) String() string {
	names := make([]string, 0, s.Len())
	for _, f := range s.List() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}

func (s FlavorSet) MarshalJSON() ([]byte, error) {
	names := make([]string, 0, s.Len())
	for _, f := range s.List() {
		names = append(names, f.String())
	}
	return json.Marshal(names)
}

func (s *FlavorSet) UnmarshalJSON(b []byte) error {
	var names []string
	if err := json.Unmarshal(b, &names); err != nil {
		return err
	}
	*s = ParseFlavors(names...)
	return nil
}
