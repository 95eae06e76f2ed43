package mofgen_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mofkit/internal/handler"
	"mofkit/internal/mof"
	"mofkit/internal/mofgen"
	"mofkit/internal/parser"
)

func bare() *mofgen.Generator {
	return mofgen.New(mofgen.Options{NoHeader: true})
}

func TestPragma(t *testing.T) {
	g := bare()
	assert.Equal(t, "#pragma include (\"qualifiers.mof\")\n",
		g.Pragma(&mof.PragmaDecl{Directive: mof.DirectiveInclude, Parameter: "qualifiers.mof"}))
	assert.Equal(t, "#pragma nonlocal\n", g.Pragma(&mof.PragmaDecl{Directive: mof.DirectiveNonLocal}))
}

func TestQualifierDecl(t *testing.T) {
	g := bare()

	assoc := &mof.QualifierDecl{
		Name:         "Association",
		Type:         mof.NewType(mof.Boolean),
		DefaultValue: []string{"false"},
		Scopes:       mof.ParseScopes("any", "association"),
		Flavors:      mof.ParseFlavors("DisableOverride"),
	}
	assert.Equal(t, "Qualifier Association : boolean = false, Scope(association, any), Flavor(DisableOverride);\n", g.QualifierDecl(assoc))

	values := &mof.QualifierDecl{
		Name:    "Values",
		Type:    mof.NewArrayType(mof.String, -1),
		Scopes:  mof.ParseScopes("property"),
		Flavors: mof.ParseFlavors("Translatable", "ToSubclass"),
	}
	assert.Equal(t, "Qualifier Values : string[], Scope(property), Flavor(ToSubclass, Translatable);\n", g.QualifierDecl(values))

	size := &mof.QualifierDecl{Name: "Octets", Type: mof.NewArrayType(mof.Uint8, 2), DefaultValue: []string{"1", "2"}}
	assert.Equal(t, "Qualifier Octets : uint8[2] = {1, 2}, Scope();\n", g.QualifierDecl(size))
}

func sampleClass() *mof.ClassDecl {
	return &mof.ClassDecl{
		Name:   "CIM_Sub",
		Parent: "CIM_Base",
		Qualifiers: mof.NewSet(
			&mof.Qualifier{Name: "Abstract"},
			&mof.Qualifier{Name: "Version", Value: []string{"2.10.0"}},
		),
		Properties: mof.NewSet(
			&mof.PropertyDecl{
				Name:       "Caption",
				Type:       mof.NewType(mof.String),
				Qualifiers: mof.NewSet(&mof.Qualifier{Name: "MaxLen", Value: []string{"64"}}),
			},
			&mof.PropertyDecl{Name: "Codes", Type: mof.NewArrayType(mof.Uint16, -1), Value: []string{"1", "2"}},
			&mof.PropertyDecl{
				Name:       "Antecedent",
				Type:       mof.NewRefType("CIM_ManagedElement"),
				Qualifiers: mof.NewSet(&mof.Qualifier{Name: "Key"}),
			},
		),
		Methods: mof.NewSet(&mof.MethodDecl{
			Name:       "Reset",
			ReturnType: mof.NewType(mof.Uint32),
			Parameters: mof.NewSet(
				&mof.ParameterDecl{
					Name:       "Reason",
					Type:       mof.NewType(mof.String),
					Qualifiers: mof.NewSet(&mof.Qualifier{Name: "IN"}),
				},
				&mof.ParameterDecl{Name: "Flags", Type: mof.NewArrayType(mof.Uint8, 4)},
			),
		}),
	}
}

func TestClass(t *testing.T) {
	want := `[Abstract, Version("2.10.0")]
class CIM_Sub : CIM_Base {
    [MaxLen(64)]
    string Caption;
    uint16 Codes[] = {1, 2};
    [Key]
    CIM_ManagedElement REF Antecedent;
    uint32 Reset([IN] string Reason, uint8 Flags[4]);
};
`
	assert.Equal(t, want, bare().Class(sampleClass()))
}

func TestClassWithTabs(t *testing.T) {
	g := mofgen.New(mofgen.Options{NoHeader: true, UseTabs: true})
	class := &mof.ClassDecl{
		Name:       "A",
		Properties: mof.NewSet(&mof.PropertyDecl{Name: "S", Type: mof.NewType(mof.String)}),
	}
	assert.Equal(t, "class A {\n\tstring S;\n};\n", g.Class(class))
}

func TestClassAlias(t *testing.T) {
	class := &mof.ClassDecl{Name: "Foo", Alias: "F", Parent: "Bar"}
	out := bare().Class(class)
	assert.Equal(t, "class Foo as $F : Bar {\n};\n", out)

	got := extract(t, "alias.mof", out)
	require.Len(t, got, 1)
	assert.Equal(t, class, got[0])
}

func TestReferenceDefaultIsQuoted(t *testing.T) {
	class := &mof.ClassDecl{
		Name: "A",
		Properties: mof.NewSet(&mof.PropertyDecl{
			Name:  "Owner",
			Type:  mof.NewRefType("CIM_System"),
			Value: []string{`CIM_System.Name="x"`},
		}),
	}
	assert.Equal(t, "class A {\n    CIM_System REF Owner = \"CIM_System.Name=\\\"x\\\"\";\n};\n", bare().Class(class))
}

func TestInstance(t *testing.T) {
	inst := &mof.InstanceDecl{
		ClassName: "Acme_LogicalDisk",
		Alias:     "Disk",
		Properties: mof.NewSet(
			&mof.InstancePropertyDecl{
				Name:       "DriveLetter",
				Type:       mof.TypeDecl{Name: "string", ArraySize: 1},
				Value:      []string{"C"},
				Qualifiers: mof.NewSet(&mof.Qualifier{Name: "Key"}),
			},
			&mof.InstancePropertyDecl{
				Name:  "Ips",
				Type:  mof.TypeDecl{Name: "string", IsArray: true, ArraySize: 2},
				Value: []string{"1.2.3.4", "1.2.3.5"},
			},
			&mof.InstancePropertyDecl{Name: "Peer", Type: mof.TypeDecl{Name: "string", ArraySize: 1}, Value: []string{"$Other"}},
			&mof.InstancePropertyDecl{Name: "Empty", Type: mof.TypeDecl{Name: "string"}},
		),
	}
	want := `instance of Acme_LogicalDisk as $Disk {
    [Key] DriveLetter = "C";
    Ips = {"1.2.3.4", "1.2.3.5"};
    Peer = $Other;
    Empty = null;
};
`
	assert.Equal(t, want, bare().Instance(inst))

	inst.Alias = ""
	inst.Qualifiers = mof.NewSet(&mof.Qualifier{Name: "Description", Value: []string{"disk"}})
	out := bare().Instance(inst)
	assert.True(t, strings.HasPrefix(out, "[Description(\"disk\")]\ninstance of Acme_LogicalDisk {\n"), out)
}

func TestHeader(t *testing.T) {
	fixed := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	g := mofgen.New(mofgen.Options{Version: "1.0.0", Now: func() time.Time { return fixed }})

	assert.Equal(t, "// Generated by mofkit 1.0.0 on 2026-10-19T12:00:00Z", g.Header())
	assert.Equal(t, "// Generated by mofkit 1.0.0 on 2026-10-19T12:00:00Z\n#pragma nonlocal\n",
		g.Pragma(&mof.PragmaDecl{Directive: mof.DirectiveNonLocal}))

	assert.Empty(t, bare().Header())
	assert.Contains(t, mofgen.New(mofgen.Options{}).Header(), "mofkit dev on ")
}

type bogusDecl struct{}

func (bogusDecl) Production() mof.Production { return mof.ProductionClass }
func (bogusDecl) DeclName() string           { return "bogus" }

func TestGenerateDispatch(t *testing.T) {
	g := bare()

	out, err := g.Generate(sampleClass())
	require.NoError(t, err)
	assert.Equal(t, g.Class(sampleClass()), out)

	_, err = g.Generate(bogusDecl{})
	assert.Error(t, err)
}

const roundTripSource = `
#pragma locale ("en_US")
Qualifier Association : boolean = false, Scope(association), Flavor(DisableOverride);
Qualifier Values : string[], Scope(property, method, parameter),
    Flavor(EnableOverride, ToSubclass, Translatable);
Qualifier MaxLen : uint32 = null, Scope(property, method, parameter);

[Abstract, Version ( "2.10.0" ),
 Description ("ManagedElement is an abstract class "
              "that provides a common superclass.")]
class CIM_ManagedElement {
      [Description ("It's a short \"textual\" description.") ]
   string Caption;
      [Description ("User friendly name."), MaxLen(256) : ToSubclass Translatable]
   string ElementName;
};

class CIM_Dependency as $Dep : CIM_ManagedElement {
  [Key] CIM_ManagedElement REF Antecedent;
  uint16 Codes[] = {1, 2};
  string Names[4];
  boolean Enabled = true;
  char16 Separator = ',';
  char16 Apostrophe = '\'';
  string Type;
  [Static] uint32 Reset([IN] string Reason, [IN, OUT] uint8 Flags[]);
};

instance of Acme_LogicalDisk as $Disk {
    DriveLetter = "C";
    ip_addresses = {"1.2.3.4","1.2.3.5","1.2.3.7"};
};

[Description("dep")]
instance of CIM_Dependency {
    Dependent = "CIM_Service.Name = \"mail\"";
    obref1 = $Disk;
    Empty = NULL;
    [Key] Value = 3;
};
`

func extract(t *testing.T, name, text string) []mof.Declaration {
	t.Helper()
	h := handler.NewDefault(false)
	require.NoError(t, parser.New(parser.Options{}).ParseString(name, text, h))
	require.Empty(t, h.Errors)
	return h.Declarations()
}

func TestRoundTrip(t *testing.T) {
	first := extract(t, "first.mof", roundTripSource)
	require.Len(t, first, 8)

	for _, opt := range []mofgen.Options{{}, {NoHeader: true, UseTabs: true}} {
		g := mofgen.New(opt)
		var sb strings.Builder
		for _, d := range first {
			out, err := g.Generate(d)
			require.NoError(t, err)
			sb.WriteString(out)
			sb.WriteString("\n")
		}

		second := extract(t, "second.mof", sb.String())
		assert.Equal(t, first, second, sb.String())
	}
}

func TestRoundTripQualifierDecl(t *testing.T) {
	decl := &mof.QualifierDecl{
		Name:         "Association",
		Type:         mof.NewType(mof.Boolean),
		DefaultValue: []string{"false"},
		Scopes:       mof.ParseScopes("any", "association"),
	}
	got := extract(t, "q.mof", bare().QualifierDecl(decl))
	require.Len(t, got, 1)
	assert.Equal(t, decl, got[0])
}
