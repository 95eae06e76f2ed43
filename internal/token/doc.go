// Package token defines lexical token kinds and trivia for MOF documents.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly.
//   - Every word lexes as Ident. MOF keywords are case-insensitive and
//     context dependent (Association is both a scope and a qualifier name),
//     so the grammar recognises them with IsKeyword/Keyword rather than
//     dedicated token kinds.
//   - Aliases lex as a single Alias token including the leading '$'.
package token
