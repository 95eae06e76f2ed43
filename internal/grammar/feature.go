package grammar

import (
	"mofkit/internal/cst"
	"mofkit/internal/diag"
	"mofkit/internal/token"
)

// parseFeature reads one class member: a property, a reference or a method.
//
//	[quals] type name [array] [= default];
//	[quals] Class REF name [= default];
//	[quals] type name ( params );
func (e *engine) parseFeature() *cst.Node {
	var quals *cst.Node
	if e.at(token.LBracket) {
		quals = e.parseQualifierList()
	}
	typ := e.parseTypeRef()
	name := e.identLeaf()

	if e.at(token.LParen) {
		method := e.arena.Branch(cst.LabelMethod, name.Span, name, typ, quals)
		e.advance()
		if !e.at(token.RParen) {
			method.Add(e.parseParameter())
			for e.at(token.Comma) {
				e.advance()
				method.Add(e.parseParameter())
			}
		}
		e.expect(token.RParen, diag.SynUnclosedParen)
		end := e.expect(token.Semicolon, diag.SynExpectSemicolon)
		method.Span = method.Span.Cover(end.Span)
		return method
	}

	prop := e.arena.Branch(cst.LabelProperty, name.Span, name, typ)
	if e.at(token.LBracket) {
		typ.Child(0).Add(e.parseArray())
	}
	if e.at(token.Assign) {
		eq := e.advance()
		def := e.arena.Branch(cst.LabelDefault, eq.Span)
		e.parseInitializer(def)
		prop.Add(def)
	}
	prop.Add(quals)
	end := e.expect(token.Semicolon, diag.SynExpectSemicolon)
	prop.Span = prop.Span.Cover(end.Span)
	return prop
}

// [quals] type name [array]
func (e *engine) parseParameter() *cst.Node {
	var quals *cst.Node
	if e.at(token.LBracket) {
		quals = e.parseQualifierList()
	}
	typ := e.parseTypeRef()
	name := e.identLeaf()
	if e.at(token.LBracket) {
		typ.Child(0).Add(e.parseArray())
	}
	return e.arena.Branch(cst.LabelParameter, name.Span, name, typ, quals)
}

// parseTypeRef builds a Type node. "Class REF" becomes a reference leaf whose
// only child names the class.
func (e *engine) parseTypeRef() *cst.Node {
	first := e.identLeaf()
	if e.atKeyword("ref") {
		ref := e.advance()
		leaf := e.arena.Leaf(cst.LabelReference, ref.Kind, ref.Span)
		leaf.Add(first)
		return e.arena.Branch(cst.LabelType, first.Span, leaf)
	}
	return e.arena.Branch(cst.LabelType, first.Span, first)
}
