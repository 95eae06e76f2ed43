package mof

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Production is the kind of a top-level MOF production.
type Production uint8

const (
	ProductionClass Production = iota
	ProductionCompilerDirective
	ProductionInstance
	ProductionQualifier
)

func (p Production) String() string {
	switch p {
	case ProductionClass:
		return "classDeclaration"
	case ProductionCompilerDirective:
		return "compilerDirective"
	case ProductionInstance:
		return "instanceDeclaration"
	case ProductionQualifier:
		return "qualifierDeclaration"
	}
	return fmt.Sprintf("Production(%d)", uint8(p))
}

// Directive is a supported #pragma name.
type Directive uint8

const (
	DirectiveInclude Directive = iota
	DirectiveInstanceLocale
	DirectiveLocale
	DirectiveNamespace
	DirectiveNonLocal
	DirectiveNonLocalType
	DirectiveSource
	DirectiveSourceType
)

var directiveNames = [...]string{
	DirectiveInclude:        "include",
	DirectiveInstanceLocale: "instancelocale",
	DirectiveLocale:         "locale",
	DirectiveNamespace:      "namespace",
	DirectiveNonLocal:       "nonlocal",
	DirectiveNonLocalType:   "nonlocaltype",
	DirectiveSource:         "source",
	DirectiveSourceType:     "sourcetype",
}

func (d Directive) String() string {
	if int(d) < len(directiveNames) {
		return directiveNames[d]
	}
	return fmt.Sprintf("Directive(%d)", uint8(d))
}

// ParseDirective matches name against the supported pragmas ignoring case.
func ParseDirective(name string) (Directive, bool) {
	for i, n := range directiveNames {
		if strings.EqualFold(n, name) {
			return Directive(i), true // #nosec G115 -- bounded by table size
		}
	}
	return 0, false
}

func (d Directive) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Directive) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, ok := ParseDirective(s)
	if !ok {
		return fmt.Errorf("unknown directive %q", s)
	}
	*d = v
	return nil
}

// DataType is a CIM primitive type or a reference.
type DataType uint8

const (
	Uint8 DataType = iota
	Sint8
	Uint16
	Sint16
	Uint32
	Sint32
	Uint64
	Sint64
	Real32
	Real64
	Char16
	String
	Boolean
	Datetime
	Reference
)

var dataTypeNames = [...]string{
	Uint8:     "uint8",
	Sint8:     "sint8",
	Uint16:    "uint16",
	Sint16:    "sint16",
	Uint32:    "uint32",
	Sint32:    "sint32",
	Uint64:    "uint64",
	Sint64:    "sint64",
	Real32:    "real32",
	Real64:    "real64",
	Char16:    "char16",
	String:    "string",
	Boolean:   "boolean",
	Datetime:  "datetime",
	Reference: "reference",
}

func (t DataType) String() string {
	if int(t) < len(dataTypeNames) {
		return dataTypeNames[t]
	}
	return fmt.Sprintf("DataType(%d)", uint8(t))
}

// ParseDataType matches name against the CIM types ignoring case.
func ParseDataType(name string) (DataType, bool) {
	for i, n := range dataTypeNames {
		if strings.EqualFold(n, name) {
			return DataType(i), true // #nosec G115 -- bounded by table size
		}
	}
	return 0, false
}

// IsNumeric reports whether values of t are written without quotes.
func (t DataType) IsNumeric() bool {
	return t <= Real64
}
