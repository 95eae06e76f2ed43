package grammar

import (
	"fmt"

	"mofkit/internal/cst"
	"mofkit/internal/diag"
	"mofkit/internal/lexer"
	"mofkit/internal/source"
	"mofkit/internal/token"
)

type Options struct {
	// Reporter receives lexical diagnostics as they are found. May be nil.
	Reporter diag.Reporter
}

// engine is the state of one grammar run.
type engine struct {
	lx       *lexer.Lexer
	file     *source.File
	arena    *cst.Arena
	lastSpan source.Span
	lexErrs  diag.FirstError
}

// Parse recognises file and returns its tree. A document holding exactly one
// production is rooted at that production; anything else is rooted at a
// wrapper node labeled cst.LabelWrapper.
func Parse(file *source.File, opts Options) (tree *cst.Tree, err error) {
	e := &engine{
		file:  file,
		arena: cst.NewArena(),
	}
	e.lexErrs.Next = opts.Reporter
	e.lx = lexer.New(file, lexer.Options{Reporter: &e.lexErrs})

	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			tree, err = nil, b.err
		}
	}()

	root := e.parseDocument()
	return cst.NewTree(root, file.ID, e.arena), nil
}

func (e *engine) parseDocument() *cst.Node {
	var prods []*cst.Node
	for !e.at(token.EOF) {
		prods = append(prods, e.parseProduction())
	}
	if len(prods) == 1 {
		return prods[0]
	}
	start := source.Span{File: e.file.ID}
	if len(prods) > 0 {
		start = prods[0].Span
	}
	return e.arena.Branch(cst.LabelWrapper, start, prods...)
}

func (e *engine) parseProduction() *cst.Node {
	if e.at(token.Pragma) {
		return e.parseDirective()
	}
	var quals *cst.Node
	if e.at(token.LBracket) {
		quals = e.parseQualifierList()
	}
	tok := e.peek()
	switch {
	case tok.Is("class"):
		return e.parseClass(quals)
	case tok.Is("instance"):
		return e.parseInstance(quals)
	case tok.Is("qualifier") && quals == nil:
		return e.parseQualifierDecl()
	}
	e.fail(diag.SynUnexpectedTopLevel, e.diagSpan(), fmt.Sprintf("expected #pragma, class, instance or qualifier, got %s", describe(tok)))
	return nil
}

// ---- token helpers ----

func (e *engine) peek() token.Token {
	tok := e.lx.Peek()
	e.checkLex(tok)
	return tok
}

func (e *engine) at(k token.Kind) bool {
	return e.peek().Kind == k
}

func (e *engine) atKeyword(kw string) bool {
	return e.peek().Is(kw)
}

func (e *engine) advance() token.Token {
	tok := e.lx.Next()
	e.checkLex(tok)
	if tok.Kind != token.EOF {
		e.lastSpan = tok.Span
	}
	return tok
}

func (e *engine) expect(k token.Kind, code diag.Code) token.Token {
	if e.at(k) {
		return e.advance()
	}
	e.fail(code, e.diagSpan(), fmt.Sprintf("expected %s, got %s", k.Describe(), describe(e.peek())))
	return token.Token{}
}

func (e *engine) expectKeyword(kw string) token.Token {
	if e.atKeyword(kw) {
		return e.advance()
	}
	e.fail(diag.SynUnexpectedToken, e.diagSpan(), fmt.Sprintf("expected '%s', got %s", kw, describe(e.peek())))
	return token.Token{}
}

func (e *engine) expectIdent() token.Token {
	return e.expect(token.Ident, diag.SynExpectIdentifier)
}

// leaf consumes an identifier and turns it into a leaf node.
func (e *engine) identLeaf() *cst.Node {
	tok := e.expectIdent()
	return e.arena.Leaf(tok.Text, tok.Kind, tok.Span)
}

// diagSpan points at the offending token, or just past the last good one at EOF.
func (e *engine) diagSpan() source.Span {
	tok := e.lx.Peek()
	if tok.Kind == token.EOF && e.lastSpan.End > 0 {
		return source.Span{File: e.lastSpan.File, Start: e.lastSpan.End, End: e.lastSpan.End}
	}
	return tok.Span
}

func (e *engine) fail(code diag.Code, sp source.Span, msg string) {
	panic(bailout{err: &SyntaxError{Code: code, Span: sp, Msg: msg}})
}

// checkLex aborts on the first lexical error, including ones raised while
// skipping trivia (an unterminated comment never yields an Invalid token).
func (e *engine) checkLex(tok token.Token) {
	if d, ok := e.lexErrs.First(); ok {
		e.fail(d.Code, d.Primary, d.Message)
	}
	if tok.Kind == token.Invalid {
		e.fail(diag.LexUnknownChar, tok.Span, fmt.Sprintf("invalid token %q", tok.Text))
	}
}

func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of file"
	case token.Ident, token.StringLit, token.CharLit, token.IntLit, token.RealLit, token.Alias:
		return fmt.Sprintf("%s %q", tok.Kind.Describe(), tok.Text)
	default:
		return tok.Kind.Describe()
	}
}
