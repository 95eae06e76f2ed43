// Package diag defines the diagnostic model shared by the lexer, the grammar
// engine and the declaration extractors.
//
//   - Code ranges: 1000 lexical, 2000 syntax, 3000 extraction, 4000 I/O.
//   - Reporter decouples producers from storage; Bag is the usual sink.
//   - Diagnostics carry a primary span and optional notes; rendering lives in
//     diagfmt.
package diag
