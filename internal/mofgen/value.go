package mofgen

import (
	"regexp"
	"strings"

	"mofkit/internal/mof"
)

// Null is rendered for an absent or empty value list.
const Null = "null"

var (
	escaper = strings.NewReplacer(`"`, `\"`, `'`, `\'`, "\n", `\n`)

	aliasRef   = regexp.MustCompile(`^\$[A-Za-z_][A-Za-z0-9_]*$`)
	numericLit = regexp.MustCompile(`^[+-]?(?:0[xX][0-9a-fA-F]+|[01]+[bB]|[0-9]+(?:\.[0-9]+)?(?:[eE][+-]?[0-9]+)?)$`)
)

// Escape re-escapes double quotes, apostrophes and newlines.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Quote escapes s and wraps it in double quotes.
func Quote(s string) string {
	return `"` + Escape(s) + `"`
}

// QuoteChar escapes s and wraps it in single quotes, the char16 literal form.
func QuoteChar(s string) string {
	return "'" + Escape(s) + "'"
}

// Value renders a value list for typ.
//
// An empty list is null. A reference type renders as its class name. An
// array type renders as {v1, v2}. Strings and datetimes are double-quoted,
// char16 is single-quoted, numbers and booleans are bare. Alias references ($Name) are never quoted.
// Without a type, a single value is bare when it reads as a number or a
// boolean and quoted otherwise, and several values form an array.
func Value(values []string, typ *mof.TypeDecl) string {
	if len(values) == 0 {
		return Null
	}
	if typ == nil {
		if len(values) == 1 {
			return untyped(values[0])
		}
		return array(values, untyped)
	}
	if typ.IsRef {
		return typ.RefClass
	}
	elem := typedElem(*typ)
	if typ.IsArray {
		return array(values, elem)
	}
	return elem(values[0])
}

func array(values []string, elem func(string) string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = elem(v)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func untyped(v string) string {
	if isBare(v) {
		return v
	}
	return Quote(v)
}

func typedElem(typ mof.TypeDecl) func(string) string {
	dt, known := typ.DataType()
	quoted := !known || typ.IsString()
	quote := Quote
	if known && dt == mof.Char16 {
		quote = QuoteChar
	}
	return func(v string) string {
		if aliasRef.MatchString(v) || (!quoted && isBare(v)) {
			return v
		}
		return quote(v)
	}
}

// isBare reports whether v survives a round trip without quotes.
func isBare(v string) bool {
	return aliasRef.MatchString(v) ||
		numericLit.MatchString(v) ||
		strings.EqualFold(v, "true") || strings.EqualFold(v, "false")
}
