// Package fuzztests houses Go fuzz harnesses for the MOF front end
// (source -> lexer -> grammar -> extraction -> generator). They guard
// against panics and hangs on arbitrary input.
package fuzztests
