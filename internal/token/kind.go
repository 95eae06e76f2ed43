package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier or contextual keyword.
	Ident
	// Alias represents an alias reference such as $Disk.
	Alias
	// Pragma represents the '#pragma' directive introducer.
	Pragma

	// IntLit is a decimal, hex (0x), octal (leading 0) or binary (suffix b) integer.
	IntLit
	// RealLit is a real number literal.
	RealLit
	// StringLit is a double-quoted string literal, quotes included.
	StringLit
	// CharLit is a single-quoted char16 literal, quotes included.
	CharLit

	LBrace   // {
	RBrace   // }
	LBracket // [
	RBracket // ]
	LParen   // (
	RParen   // )
	Comma    // ,
	Semicolon
	Colon
	Assign // =
	Dot
)

var kindNames = [...]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Ident:     "Ident",
	Alias:     "Alias",
	Pragma:    "Pragma",
	IntLit:    "IntLit",
	RealLit:   "RealLit",
	StringLit: "StringLit",
	CharLit:   "CharLit",
	LBrace:    "LBrace",
	RBrace:    "RBrace",
	LBracket:  "LBracket",
	RBracket:  "RBracket",
	LParen:    "LParen",
	RParen:    "RParen",
	Comma:     "Comma",
	Semicolon: "Semicolon",
	Colon:     "Colon",
	Assign:    "Assign",
	Dot:       "Dot",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

var punctText = map[Kind]string{
	LBrace:    "{",
	RBrace:    "}",
	LBracket:  "[",
	RBracket:  "]",
	LParen:    "(",
	RParen:    ")",
	Comma:     ",",
	Semicolon: ";",
	Colon:     ":",
	Assign:    "=",
	Dot:       ".",
}

// Describe returns a human readable form used in diagnostics ("';'", "identifier").
func (k Kind) Describe() string {
	if s, ok := punctText[k]; ok {
		return "'" + s + "'"
	}
	switch k {
	case Ident:
		return "identifier"
	case Alias:
		return "alias"
	case Pragma:
		return "#pragma"
	case IntLit, RealLit:
		return "number"
	case StringLit:
		return "string"
	case CharLit:
		return "char"
	case EOF:
		return "end of file"
	default:
		return k.String()
	}
}
