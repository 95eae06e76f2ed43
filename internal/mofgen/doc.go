// Package mofgen renders typed declarations back to MOF text.
//
// Each declaration kind fills a slot record (header, name, type, qualifiers,
// properties, values and a few kind-specific extras) which the template for
// that kind lays out through an indenting writer. Re-parsing the output
// yields declarations equal to the input; byte-identical text is not a goal.
package mofgen
