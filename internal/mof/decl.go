package mof

// Declaration is implemented by the four top-level declaration kinds.
type Declaration interface {
	Production() Production
	DeclName() string
}

// PragmaDecl is a compiler directive. Parameter is empty when none was given.
type PragmaDecl struct {
	Directive Directive `json:"directive" msgpack:"directive"`
	Parameter string    `json:"parameter,omitempty" msgpack:"parameter"`
}

// TypeDecl describes the type of a property, parameter or qualifier.
// ArraySize is -1 for an unbounded array.
type TypeDecl struct {
	Name      string `json:"name" msgpack:"name"`
	RefClass  string `json:"refClass,omitempty" msgpack:"ref_class"`
	IsArray   bool   `json:"isArray,omitempty" msgpack:"is_array"`
	ArraySize int    `json:"arraySize,omitempty" msgpack:"array_size"`
	IsRef     bool   `json:"isRef,omitempty" msgpack:"is_ref"`
}

// NewType returns a scalar type of the given CIM data type.
func NewType(dt DataType) TypeDecl {
	return TypeDecl{Name: dt.String()}
}

// NewArrayType returns an array type; size -1 means unbounded.
func NewArrayType(dt DataType, size int) TypeDecl {
	return TypeDecl{Name: dt.String(), IsArray: true, ArraySize: size}
}

// NewRefType returns a reference to class.
func NewRefType(class string) TypeDecl {
	return TypeDecl{Name: Reference.String(), RefClass: class, IsRef: true}
}

// DataType resolves Name. Unknown names report false.
func (t TypeDecl) DataType() (DataType, bool) {
	return ParseDataType(t.Name)
}

// IsString reports whether values of t render quoted.
func (t TypeDecl) IsString() bool {
	dt, ok := t.DataType()
	return ok && (dt == String || dt == Datetime || dt == Char16)
}

// Qualifier is an applied qualifier. Type stays nil: the applied form does
// not carry one, and nothing resolves it against the declaration yet.
type Qualifier struct {
	Name    string    `json:"name" msgpack:"name"`
	Type    *TypeDecl `json:"type,omitempty" msgpack:"type"`
	Value   []string  `json:"value,omitempty" msgpack:"value"`
	Flavors FlavorSet `json:"flavors,omitempty" msgpack:"flavors"`
}

func (q *Qualifier) Key() string { return q.Name }

type PropertyDecl struct {
	Name       string          `json:"name" msgpack:"name"`
	Type       TypeDecl        `json:"type" msgpack:"type"`
	Value      []string        `json:"defaultValue,omitempty" msgpack:"value"`
	Qualifiers Set[*Qualifier] `json:"qualifiers" msgpack:"qualifiers"`
}

func (p *PropertyDecl) Key() string { return p.Name }

type ParameterDecl struct {
	Name       string          `json:"name" msgpack:"name"`
	Type       TypeDecl        `json:"type" msgpack:"type"`
	Qualifiers Set[*Qualifier] `json:"qualifiers" msgpack:"qualifiers"`
}

func (p *ParameterDecl) Key() string { return p.Name }

type MethodDecl struct {
	Name       string              `json:"name" msgpack:"name"`
	ReturnType TypeDecl            `json:"returnType" msgpack:"return_type"`
	Qualifiers Set[*Qualifier]     `json:"qualifiers" msgpack:"qualifiers"`
	Parameters Set[*ParameterDecl] `json:"parameters" msgpack:"parameters"`
}

func (m *MethodDecl) Key() string { return m.Name }

// ClassDecl is a class declaration. Alias and Parent are empty when absent.
type ClassDecl struct {
	Name       string             `json:"name" msgpack:"name"`
	Alias      string             `json:"alias,omitempty" msgpack:"alias"`
	Parent     string             `json:"parent,omitempty" msgpack:"parent"`
	Qualifiers Set[*Qualifier]    `json:"qualifiers" msgpack:"qualifiers"`
	Properties Set[*PropertyDecl] `json:"properties" msgpack:"properties"`
	Methods    Set[*MethodDecl]   `json:"methods" msgpack:"methods"`
}

func (c *ClassDecl) Production() Production { return ProductionClass }
func (c *ClassDecl) DeclName() string       { return c.Name }

type QualifierDecl struct {
	Name         string    `json:"name" msgpack:"name"`
	Type         TypeDecl  `json:"type" msgpack:"type"`
	DefaultValue []string  `json:"defaultValue,omitempty" msgpack:"default_value"`
	Scopes       ScopeSet  `json:"scopes" msgpack:"scopes"`
	Flavors      FlavorSet `json:"flavors,omitempty" msgpack:"flavors"`
}

func (q *QualifierDecl) Production() Production { return ProductionQualifier }
func (q *QualifierDecl) DeclName() string       { return q.Name }

// InstancePropertyDecl is one value assignment inside an instance. Type is
// inferred: string, and an array when more than one value was given.
type InstancePropertyDecl struct {
	Name       string          `json:"name" msgpack:"name"`
	Type       TypeDecl        `json:"type" msgpack:"type"`
	Value      []string        `json:"value,omitempty" msgpack:"value"`
	Qualifiers Set[*Qualifier] `json:"qualifiers" msgpack:"qualifiers"`
}

func (p *InstancePropertyDecl) Key() string { return p.Name }

// InstanceDecl is an instance of a class. Alias is empty when none was declared.
type InstanceDecl struct {
	ClassName  string                     `json:"className" msgpack:"class_name"`
	Alias      string                     `json:"alias,omitempty" msgpack:"alias"`
	Qualifiers Set[*Qualifier]            `json:"qualifiers" msgpack:"qualifiers"`
	Properties Set[*InstancePropertyDecl] `json:"properties" msgpack:"properties"`
}

func (i *InstanceDecl) Production() Production { return ProductionInstance }
func (i *InstanceDecl) DeclName() string       { return i.ClassName }

func (p *PragmaDecl) Production() Production { return ProductionCompilerDirective }
func (p *PragmaDecl) DeclName() string       { return p.Directive.String() }
