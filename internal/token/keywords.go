package token

import "strings"

// keywords lists the reserved words of MOF (DSP0004 v2.3), lower case.
var keywords = map[string]struct{}{
	"any": {}, "as": {}, "association": {}, "boolean": {}, "char16": {},
	"class": {}, "datetime": {}, "disableoverride": {}, "enableoverride": {},
	"false": {}, "flavor": {}, "indication": {}, "instance": {}, "method": {},
	"null": {}, "of": {}, "parameter": {}, "pragma": {}, "property": {},
	"qualifier": {}, "real32": {}, "real64": {}, "ref": {}, "reference": {},
	"restricted": {}, "schema": {}, "scope": {}, "sint16": {}, "sint32": {},
	"sint64": {}, "sint8": {}, "string": {}, "tosubclass": {}, "translatable": {},
	"true": {}, "uint16": {}, "uint32": {}, "uint64": {}, "uint8": {},
}

// IsKeyword reports whether word equals kw ignoring ASCII case.
func IsKeyword(word, kw string) bool {
	return strings.EqualFold(word, kw)
}

// LookupKeyword reports whether ident is a MOF reserved word in any casing.
func LookupKeyword(ident string) bool {
	_, ok := keywords[strings.ToLower(ident)]
	return ok
}
