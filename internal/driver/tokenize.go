package driver

import (
	"mofkit/internal/diag"
	"mofkit/internal/lexer"
	"mofkit/internal/source"
	"mofkit/internal/token"
)

// TokenizeResult is the token stream of one file. Tokens ends with EOF,
// which carries any trailing trivia.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize lexes the file at path. Lexical errors land in Bag as Invalid
// tokens do in Tokens; only a file that cannot be read returns an error.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	res := &TokenizeResult{FileSet: fs, File: fs.Get(id), Bag: diag.NewBag(diagnosticLimit(maxDiagnostics))}
	lx := lexer.New(res.File, lexer.Options{Reporter: diag.BagReporter{Bag: res.Bag}})
	for {
		tok := lx.Next()
		res.Tokens = append(res.Tokens, tok)
		if tok.Kind == token.EOF {
			return res, nil
		}
	}
}

func diagnosticLimit(n int) int {
	if n <= 0 {
		return defaultMaxDiagnostics
	}
	return n
}
