// Package cst holds the generic labeled tree produced by the grammar engine.
//
// A node is a label, an ordered child list and a source span. Leaves carry the
// kind of the token they were cut from. Structural nodes use the fixed labels
// below; leaves use the token text (names, data types, literal values).
// Labels are compared case-insensitively.
//
// Nodes are allocated from a per-parse Arena and must not be shared between
// parses.
package cst
