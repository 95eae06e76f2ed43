// Package mof is the typed model of MOF declarations: pragmas, qualifier
// declarations, classes and instances, plus the enumerations they use.
//
// Named members (qualifiers, properties, methods, parameters) live in a Set,
// an insertion-ordered collection keyed by case-folded name.
package mof
