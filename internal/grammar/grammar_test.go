package grammar_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mofkit/internal/cst"
	"mofkit/internal/diag"
	"mofkit/internal/grammar"
	"mofkit/internal/source"
)

func parse(t *testing.T, input string) (*cst.Tree, error) {
	t.Helper()
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("test.mof", []byte(input)))
	return grammar.Parse(f, grammar.Options{})
}

func mustParse(t *testing.T, input string) *cst.Tree {
	t.Helper()
	tree, err := parse(t, input)
	require.NoError(t, err)
	require.NotNil(t, tree)
	return tree
}

func syntaxErr(t *testing.T, input string) *grammar.SyntaxError {
	t.Helper()
	tree, err := parse(t, input)
	require.Error(t, err)
	assert.Nil(t, tree)
	var se *grammar.SyntaxError
	require.True(t, errors.As(err, &se))
	return se
}

func TestSingleProductionIsRoot(t *testing.T) {
	tree := mustParse(t, `#pragma include ("qualifiers.mof")`)
	assert.False(t, tree.Wrapped())
	assert.Equal(t, `(CompilerDirective include "qualifiers.mof")`, tree.Root.String())
}

func TestSeveralProductionsAreWrapped(t *testing.T) {
	tree := mustParse(t, "#pragma locale (\"en_US\")\n#pragma namespace(\"//./root/CIMV2\")")
	require.True(t, tree.Wrapped())
	assert.Equal(t, `(nil (CompilerDirective locale "en_US") (CompilerDirective namespace "//./root/CIMV2"))`, tree.Root.String())
	assert.Len(t, tree.Productions(), 2)
}

func TestEmptyDocument(t *testing.T) {
	tree := mustParse(t, "// nothing here\n")
	assert.True(t, tree.Wrapped())
	assert.Empty(t, tree.Productions())
}

func TestClassTree(t *testing.T) {
	tree := mustParse(t, `
[Abstract, Description ("a" "b")]
class CIM_X : CIM_Base {
	[Key, MaxLen (256)] string Name;
	uint16 Codes[4] = {1, 2};
	CIM_Y REF Target;
	uint32 Do([IN] string Arg, sint8 Vals[]);
};`)
	want := `(class (CIM_X (Qualifiers Abstract (Description "ab")) (SuperClass CIM_Base)` +
		` (Property Name (Type string) (Qualifiers Key (MaxLen 256)))` +
		` (Property Codes (Type (uint16 (Array 4))) (Default 1 2))` +
		` (Property Target (Type (reference CIM_Y)))` +
		` (Method Do (Type uint32) (Parameter Arg (Type string) (Qualifiers IN)) (Parameter Vals (Type (sint8 Array))))))`
	assert.Equal(t, want, tree.Root.String())
}

func TestClassAliasTree(t *testing.T) {
	tree := mustParse(t, "[Abstract] class CIM_X as $X : CIM_Base { string Name; };")
	assert.Equal(t, `(class (CIM_X (Qualifiers Abstract) (Alias X) (SuperClass CIM_Base) (Property Name (Type string))))`, tree.Root.String())

	assert.Equal(t, diag.SynUnexpectedToken, syntaxErr(t, "class CIM_X as X {};").Code)
}

func TestQualifierFlavors(t *testing.T) {
	tree := mustParse(t, `[Description ("x") : ToSubclass Translatable, Values {"a", "b"}] class A {};`)
	assert.Equal(t, `(class (A (Qualifiers (Description "x" (Flavor ToSubclass Translatable)) (Values "a" "b"))))`, tree.Root.String())
}

func TestInstanceTree(t *testing.T) {
	tree := mustParse(t, `instance of Acme_LogicalDisk as $Disk
{
	DriveLetter = "C";
	ip_addresses = { "1.2.3.4", "1.2.3.5" };
	obref1 = $Alias1;
};`)
	want := `(Instance (Acme_LogicalDisk (Alias Disk) (Property DriveLetter (Value "C"))` +
		` (Property ip_addresses (Value "1.2.3.4" "1.2.3.5")) (Property obref1 (Value $Alias1))))`
	assert.Equal(t, want, tree.Root.String())
}

func TestQualifierDeclarationTree(t *testing.T) {
	tree := mustParse(t, `Qualifier Association : boolean = false, Scope(association), Flavor(DisableOverride, ToSubclass);`)
	assert.Equal(t, `(qualifier Association (Type boolean (Default false)) (Scope association) (Flavor DisableOverride ToSubclass))`, tree.Root.String())

	tree = mustParse(t, `Qualifier Values : string[] = null, Scope(property, method);`)
	assert.Equal(t, `(qualifier Values (Type (string Array) (Default null)) (Scope property method))`, tree.Root.String())

	tree = mustParse(t, `Qualifier Empty : boolean, Scope();`)
	assert.Equal(t, `(qualifier Empty (Type boolean) Scope)`, tree.Root.String())
}

func TestKeywordsAnyCase(t *testing.T) {
	tree := mustParse(t, "CLASS A {};\nINSTANCE OF A AS $a { x = TRUE; };")
	require.Len(t, tree.Productions(), 2)
	assert.True(t, tree.Productions()[0].Is(cst.LabelClass))
	assert.True(t, tree.Productions()[1].Is(cst.LabelInstance))
}

func TestSyntaxErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		code diag.Code
	}{
		{"missing semicolon", "class A { string x };", diag.SynExpectSemicolon},
		{"missing of", "instance A {};", diag.SynUnexpectedToken},
		{"unknown top level", "foo bar;", diag.SynUnexpectedTopLevel},
		{"unclosed body", "class A {", diag.SynUnclosedBrace},
		{"qualified qualifier", "[Key] qualifier X : boolean, Scope(any);", diag.SynUnexpectedTopLevel},
		{"missing scope", "qualifier X : boolean;", diag.SynExpectScope},
		{"bad value", "instance of A { x = ; };", diag.SynExpectValue},
		{"unterminated string", `#pragma include ("abc`, diag.LexUnterminatedString},
		{"unterminated comment", "class A {}; /* open", diag.LexUnterminatedBlockComment},
		{"unknown char", "class A { @ };", diag.LexUnknownChar},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			se := syntaxErr(t, tc.in)
			assert.Equal(t, tc.code, se.Code, se.Msg)
			assert.Equal(t, tc.code, se.Diagnostic().Code)
		})
	}
}

func TestLexErrorsReachReporter(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("bad.mof", []byte(`instance of A { x = "open; };`)))
	bag := diag.NewBag(8)
	_, err := grammar.Parse(f, grammar.Options{Reporter: diag.BagReporter{Bag: bag}})
	require.Error(t, err)
	require.Equal(t, 1, bag.Len())
	assert.Equal(t, diag.LexUnterminatedString, bag.Items()[0].Code)
}

func TestErrorSpanAtEOF(t *testing.T) {
	se := syntaxErr(t, "class A {}")
	assert.Equal(t, diag.SynExpectSemicolon, se.Code)
	assert.Equal(t, uint32(10), se.Span.Start)
}
