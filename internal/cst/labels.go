package cst

// Structural labels.
const (
	LabelWrapper    = "nil"
	LabelDirective  = "CompilerDirective"
	LabelClass      = "class"
	LabelInstance   = "Instance"
	LabelQualifier  = "qualifier"
	LabelType       = "Type"
	LabelArray      = "Array"
	LabelScope      = "Scope"
	LabelFlavor     = "Flavor"
	LabelDefault    = "Default"
	LabelQualifiers = "Qualifiers"
	LabelSuperClass = "SuperClass"
	LabelProperty   = "Property"
	LabelMethod     = "Method"
	LabelParameter  = "Parameter"
	LabelAlias      = "Alias"
	LabelValue      = "Value"
	LabelReference  = "reference"
)
