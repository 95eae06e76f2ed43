// Package parser turns MOF documents into typed declarations.
//
// A Parser runs the grammar over one document and walks the resulting tree
// production by production. Each production is handed to one of four
// extractors (compiler directive, qualifier declaration, class, instance),
// and the declaration it builds is pushed to a Handler:
//
//	StartDocument
//	  StartProduction(kind)
//	    Start<Kind>  <Kind>(decl)  End<Kind>
//	  EndProduction
//	  ...
//	EndDocument
//
// Failures are routed through Handler.Error. Returning nil from Error skips
// the offending production and carries on with the next one; returning the
// error (what Base does) aborts the parse and Parse returns it.
//
// Events exposes the same traversal as a range-over-func sequence.
package parser
