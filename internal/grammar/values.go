package grammar

import (
	"strings"

	"mofkit/internal/cst"
	"mofkit/internal/diag"
	"mofkit/internal/token"
)

// [ qualifier, qualifier ]
func (e *engine) parseQualifierList() *cst.Node {
	open := e.advance()
	list := e.arena.Branch(cst.LabelQualifiers, open.Span)
	list.Add(e.parseQualifier())
	for e.at(token.Comma) {
		e.advance()
		list.Add(e.parseQualifier())
	}
	end := e.expect(token.RBracket, diag.SynUnclosedBracket)
	list.Span = list.Span.Cover(end.Span)
	return list
}

// Name [ (value) | {values} ] [ : flavor flavor ]
func (e *engine) parseQualifier() *cst.Node {
	q := e.identLeaf()
	switch {
	case e.at(token.LParen):
		e.advance()
		q.Add(e.parseConstant())
		e.expect(token.RParen, diag.SynUnclosedParen)
	case e.at(token.LBrace):
		e.parseArrayInitializer(q)
	}
	if e.at(token.Colon) {
		colon := e.advance()
		flavors := e.arena.Branch(cst.LabelFlavor, colon.Span)
		for e.at(token.Ident) {
			flavors.Add(e.identLeaf())
		}
		if flavors.ChildCount() == 0 {
			e.fail(diag.SynExpectIdentifier, e.diagSpan(), "expected flavor after ':'")
		}
		q.Add(flavors)
	}
	return q
}

// parseInitializer appends the value leaves of a scalar or array initializer to parent.
func (e *engine) parseInitializer(parent *cst.Node) {
	if e.at(token.LBrace) {
		e.parseArrayInitializer(parent)
		return
	}
	parent.Add(e.parseConstant())
}

// { v, v, ... }
func (e *engine) parseArrayInitializer(parent *cst.Node) {
	e.advance()
	if !e.at(token.RBrace) {
		parent.Add(e.parseConstant())
		for e.at(token.Comma) {
			e.advance()
			parent.Add(e.parseConstant())
		}
	}
	e.expect(token.RBrace, diag.SynUnclosedBrace)
}

func (e *engine) parseConstant() *cst.Node {
	tok := e.peek()
	switch {
	case tok.Kind == token.StringLit:
		return e.parseString()
	case tok.Kind == token.IntLit, tok.Kind == token.RealLit, tok.Kind == token.CharLit, tok.Kind == token.Alias:
		e.advance()
		return e.arena.Leaf(tok.Text, tok.Kind, tok.Span)
	case tok.Is("true"), tok.Is("false"), tok.Is("null"):
		e.advance()
		return e.arena.Leaf(tok.Text, tok.Kind, tok.Span)
	}
	e.fail(diag.SynExpectValue, e.diagSpan(), "expected constant value, got "+describe(tok))
	return nil
}

// parseString merges adjacent string literals into one quoted leaf.
func (e *engine) parseString() *cst.Node {
	first := e.advance()
	if !e.at(token.StringLit) {
		return e.arena.Leaf(first.Text, first.Kind, first.Span)
	}
	var sb strings.Builder
	sb.WriteByte('"')
	sb.WriteString(unquote(first.Text))
	span := first.Span
	for e.at(token.StringLit) {
		next := e.advance()
		sb.WriteString(unquote(next.Text))
		span = span.Cover(next.Span)
	}
	sb.WriteByte('"')
	return e.arena.Leaf(sb.String(), token.StringLit, span)
}

func unquote(raw string) string {
	if len(raw) >= 2 {
		return raw[1 : len(raw)-1]
	}
	return raw
}
