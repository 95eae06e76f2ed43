package lexer

import (
	"mofkit/internal/diag"
	"mofkit/internal/source"
)

type Options struct {
	Reporter diag.Reporter // may be nil; lexing continues either way
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
