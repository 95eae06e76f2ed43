package grammar

import (
	"mofkit/internal/cst"
	"mofkit/internal/diag"
	"mofkit/internal/token"
)

// #pragma name ("parameter")
func (e *engine) parseDirective() *cst.Node {
	kw := e.advance()
	node := e.arena.Branch(cst.LabelDirective, kw.Span, e.identLeaf())
	if e.at(token.LParen) {
		e.advance()
		if e.at(token.StringLit) {
			node.Add(e.parseString())
		}
		e.expect(token.RParen, diag.SynUnclosedParen)
	}
	if e.at(token.Semicolon) {
		e.advance()
	}
	return node
}

// [quals] class Name [as $Alias] [: Parent] { features };
func (e *engine) parseClass(quals *cst.Node) *cst.Node {
	kw := e.advance()
	name := e.identLeaf()
	node := e.arena.Branch(cst.LabelClass, kw.Span, name)
	name.Add(quals)
	e.parseAlias(name)
	if e.at(token.Colon) {
		colon := e.advance()
		name.Add(e.arena.Branch(cst.LabelSuperClass, colon.Span, e.identLeaf()))
	}
	e.expect(token.LBrace, diag.SynUnexpectedToken)
	for !e.at(token.RBrace) {
		if e.at(token.EOF) {
			e.fail(diag.SynUnclosedBrace, e.diagSpan(), "unclosed class body")
		}
		name.Add(e.parseFeature())
	}
	e.advance()
	end := e.expect(token.Semicolon, diag.SynExpectSemicolon)
	node.Span = node.Span.Cover(end.Span)
	return node
}

// [quals] instance of Class [as $Alias] { name = value; ... };
func (e *engine) parseInstance(quals *cst.Node) *cst.Node {
	kw := e.advance()
	e.expectKeyword("of")
	name := e.identLeaf()
	node := e.arena.Branch(cst.LabelInstance, kw.Span, name)
	name.Add(quals)
	e.parseAlias(name)
	e.expect(token.LBrace, diag.SynUnexpectedToken)
	for !e.at(token.RBrace) {
		if e.at(token.EOF) {
			e.fail(diag.SynUnclosedBrace, e.diagSpan(), "unclosed instance body")
		}
		name.Add(e.parseValueInitializer())
	}
	e.advance()
	end := e.expect(token.Semicolon, diag.SynExpectSemicolon)
	node.Span = node.Span.Cover(end.Span)
	return node
}

// as $Alias, hung off the declaration's name node. The leaf drops the '$'.
func (e *engine) parseAlias(name *cst.Node) {
	if !e.atKeyword("as") {
		return
	}
	as := e.advance()
	alias := e.expect(token.Alias, diag.SynUnexpectedToken)
	name.Add(e.arena.Branch(cst.LabelAlias, as.Span, e.arena.Leaf(alias.Text[1:], token.Alias, alias.Span)))
}

// [quals] name = initializer;
func (e *engine) parseValueInitializer() *cst.Node {
	var quals *cst.Node
	if e.at(token.LBracket) {
		quals = e.parseQualifierList()
	}
	name := e.identLeaf()
	prop := e.arena.Branch(cst.LabelProperty, name.Span, name)
	eq := e.expect(token.Assign, diag.SynUnexpectedToken)
	value := e.arena.Branch(cst.LabelValue, eq.Span)
	e.parseInitializer(value)
	prop.Add(value, quals)
	e.expect(token.Semicolon, diag.SynExpectSemicolon)
	return prop
}

// qualifier Name : type [array] [= default], scope(...) [, flavor(...)];
func (e *engine) parseQualifierDecl() *cst.Node {
	kw := e.advance()
	node := e.arena.Branch(cst.LabelQualifier, kw.Span, e.identLeaf())

	e.expect(token.Colon, diag.SynUnexpectedToken)
	dataType := e.identLeaf()
	typ := e.arena.Branch(cst.LabelType, dataType.Span, dataType)
	if e.at(token.LBracket) {
		dataType.Add(e.parseArray())
	}
	if e.at(token.Assign) {
		eq := e.advance()
		def := e.arena.Branch(cst.LabelDefault, eq.Span)
		e.parseInitializer(def)
		typ.Add(def)
	}
	node.Add(typ)

	e.expect(token.Comma, diag.SynExpectScope)
	scopeKw := e.expectKeyword("scope")
	node.Add(e.parseIdentList(cst.LabelScope, scopeKw))

	if e.at(token.Comma) {
		e.advance()
		flavorKw := e.expectKeyword("flavor")
		node.Add(e.parseIdentList(cst.LabelFlavor, flavorKw))
	}
	end := e.expect(token.Semicolon, diag.SynExpectSemicolon)
	node.Span = node.Span.Cover(end.Span)
	return node
}

// ( ident, ident, ... ). An empty list is accepted so that a declaration
// whose every scope was unknown still regenerates to parseable text.
func (e *engine) parseIdentList(label string, kw token.Token) *cst.Node {
	node := e.arena.Branch(label, kw.Span)
	e.expect(token.LParen, diag.SynUnexpectedToken)
	if !e.at(token.RParen) {
		node.Add(e.identLeaf())
		for e.at(token.Comma) {
			e.advance()
			node.Add(e.identLeaf())
		}
	}
	end := e.expect(token.RParen, diag.SynUnclosedParen)
	node.Span = node.Span.Cover(end.Span)
	return node
}

// [ size ]
func (e *engine) parseArray() *cst.Node {
	open := e.advance()
	node := e.arena.Branch(cst.LabelArray, open.Span)
	if e.at(token.IntLit) {
		size := e.advance()
		node.Add(e.arena.Leaf(size.Text, size.Kind, size.Span))
	}
	end := e.expect(token.RBracket, diag.SynUnclosedBracket)
	node.Span = node.Span.Cover(end.Span)
	return node
}
