// Package grammar recognises MOF text and builds the labeled tree consumed by
// the declaration extractors.
//
// The engine is a hand-written recursive-descent recogniser over the lexer's
// token stream. Keywords are matched case-insensitively in context. The first
// lexical or syntax error aborts recognition; there is no recovery, so a
// failed run returns a *SyntaxError and no tree.
package grammar
