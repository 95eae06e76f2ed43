package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedChar         Code = 1005
	LexBadAlias                 Code = 1006
	LexBadPragma                Code = 1007

	// syntax
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynExpectSemicolon    Code = 2002
	SynExpectIdentifier   Code = 2003
	SynExpectValue        Code = 2004
	SynUnclosedBrace      Code = 2005
	SynUnclosedBracket    Code = 2006
	SynUnclosedParen      Code = 2007
	SynUnexpectedTopLevel Code = 2008
	SynExpectDataType     Code = 2009
	SynExpectScope        Code = 2010

	// declaration extraction
	ExtInfo                          Code = 3000
	ExtUnknownProductionKind         Code = 3001
	ExtInvalidDirective              Code = 3002
	ExtInvalidDirectiveArgumentCount Code = 3003
	ExtInvalidClassDeclArgumentCount Code = 3004
	ExtInvalidClassName              Code = 3005
	ExtInvalidQualifierDeclArgCount  Code = 3006
	ExtInvalidQualifierName          Code = 3007
	ExtInvalidPropertyName           Code = 3008
	ExtInvalidMethodName             Code = 3009
	ExtInvalidTypeTree               Code = 3010
	ExtInvalidDataType               Code = 3011
	ExtInvalidClassReference         Code = 3012
	ExtInvalidArraySize              Code = 3013
	ExtInvalidInstanceDecl           Code = 3014
	ExtAborted                       Code = 3015

	// i/o
	IOInfo        Code = 4000
	IOLoadFailed  Code = 4001
	IOCacheFailed Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:                      "Unknown error",
	LexInfo:                          "Lexical information",
	LexUnknownChar:                   "Unknown character",
	LexUnterminatedString:            "Unterminated string literal",
	LexUnterminatedBlockComment:      "Unterminated block comment",
	LexBadNumber:                     "Malformed number literal",
	LexUnterminatedChar:              "Unterminated char literal",
	LexBadAlias:                      "Alias must be followed by an identifier",
	LexBadPragma:                     "Malformed #pragma",
	SynInfo:                          "Syntax information",
	SynUnexpectedToken:               "Unexpected token",
	SynExpectSemicolon:               "Missing semicolon",
	SynExpectIdentifier:              "Expected identifier",
	SynExpectValue:                   "Expected value",
	SynUnclosedBrace:                 "Unclosed brace",
	SynUnclosedBracket:               "Unclosed bracket",
	SynUnclosedParen:                 "Unclosed parenthesis",
	SynUnexpectedTopLevel:            "Unexpected top-level production",
	SynExpectDataType:                "Expected data type",
	SynExpectScope:                   "Expected scope list",
	ExtInfo:                          "Extraction information",
	ExtUnknownProductionKind:         "Unknown production kind",
	ExtInvalidDirective:              "Invalid compiler directive",
	ExtInvalidDirectiveArgumentCount: "Invalid compiler directive argument count",
	ExtInvalidClassDeclArgumentCount: "Invalid class declaration argument count",
	ExtInvalidClassName:              "Invalid class name",
	ExtInvalidQualifierDeclArgCount:  "Invalid qualifier declaration argument count",
	ExtInvalidQualifierName:          "Invalid qualifier name",
	ExtInvalidPropertyName:           "Invalid property name",
	ExtInvalidMethodName:             "Invalid method name",
	ExtInvalidTypeTree:               "Invalid type tree",
	ExtInvalidDataType:               "Invalid data type",
	ExtInvalidClassReference:         "Invalid class reference",
	ExtInvalidArraySize:              "Invalid array size",
	ExtInvalidInstanceDecl:           "Invalid instance declaration",
	ExtAborted:                       "Extraction aborted",
	IOInfo:                           "I/O information",
	IOLoadFailed:                     "Failed to load source",
	IOCacheFailed:                    "Result cache failure",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("EXT%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// HasLocation reports whether diagnostics with this code point into a
// source file. I/O diagnostics carry a zero span.
func (c Code) HasLocation() bool {
	return c != UnknownCode && c < IOInfo
}
