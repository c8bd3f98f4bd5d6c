package ast

import "fmt"

// Kind classifies a declaration.
type Kind int

const (
	// Var is a stored value binding.
	Var Kind = iota
	// Func is a function or method.
	Func
	// Subscript is an indexed accessor member.
	Subscript
	// Element is an enum case element.
	Element
	// TypeAlias is a named alias for another type.
	TypeAlias
	// GenericParam is a generic type parameter.
	GenericParam
	// Struct, Class and Enum are the nominal type declarations.
	Struct
	Class
	Enum
	// Protocol is a protocol declaration.
	Protocol
)

var kindNames = map[Kind]string{
	Var:          "var",
	Func:         "func",
	Subscript:    "subscript",
	Element:      "element",
	TypeAlias:    "typealias",
	GenericParam: "genericparam",
	Struct:       "struct",
	Class:        "class",
	Enum:         "enum",
	Protocol:     "protocol",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Decl is a named declaration produced by the AST layer.  Declarations are
// immutable once constructed; the lookup engine only reads and classifies
// them.
type Decl struct {
	// Name is the declared identifier.
	Name string
	// Kind is the declaration kind tag.
	Kind Kind
	// Context is the lexical context the declaration was made in.
	Context Context
	// Type is the type of a reference to the entity (a function type for
	// functions).  A nil Type means the declaration has no computable
	// signature and never collides during shadowing.
	Type Type
	// Declared is the type a type declaration declares, nil for value
	// declarations.
	Declared Type
	// Overridden is the base-class declaration this one overrides, if any.
	Overridden *Decl
	// Static marks a function as a type member rather than an instance
	// member.
	Static bool
	// Nominal carries the extra structure of struct, class and enum
	// declarations.
	Nominal *NominalInfo
	// Protocol carries the extra structure of protocol declarations.
	Protocol *ProtocolInfo
}

// NominalInfo is the member structure of a struct, class or enum declaration.
type NominalInfo struct {
	// Members are the declarations in the primary type body.
	Members []*Decl
	// Extensions is the program-global list of extensions attached to the
	// nominal, regardless of which module declared them.
	Extensions []*ExtensionContext
	// GenericParams are the generic parameter declarations, visible to
	// member lookup as pseudo-members.
	GenericParams []*Decl
	// Base is the single base class of a class declaration, nil otherwise.
	Base Type
}

// ProtocolInfo is the member structure of a protocol declaration.
type ProtocolInfo struct {
	// Inherited are the protocols this protocol inherits from.
	Inherited []Type
	// Members are the protocol's own requirement declarations.
	Members []*Decl
}

// IsType reports whether the declaration declares a type.
func (d *Decl) IsType() bool {
	switch d.Kind {
	case TypeAlias, GenericParam, Struct, Class, Enum, Protocol:
		return true
	}
	return false
}

// IsInstanceMember reports whether the declaration is accessed through an
// instance of its enclosing type.
func (d *Decl) IsInstanceMember() bool {
	switch d.Kind {
	case Var, Subscript:
		return inTypeContext(d.Context)
	case Func:
		return !d.Static && inTypeContext(d.Context)
	}
	return false
}

func inTypeContext(c Context) bool {
	switch c.(type) {
	case *NominalContext, *ExtensionContext:
		return true
	}
	return false
}

// Module returns the module the declaration ultimately belongs to.
func (d *Decl) Module() Module {
	return ModuleOf(d.Context)
}

// Signature returns the canonical structural signature used for shadowing
// decisions, or "" when no signature is computable.  For type lookups the
// signature of a type declaration is the type it declares; otherwise it is
// the type of a reference to the entity.
//
// The canonical type is a deliberately approximate signature: default
// arguments are not canonicalized away and generic types canonicalize by
// parameter name.  Downstream disambiguation depends on this policy, so
// changes to it must be made here and nowhere else.
func (d *Decl) Signature(typeLookup bool) string {
	if typeLookup && d.IsType() {
		if d.Declared == nil {
			return ""
		}
		return d.Declared.Canonical()
	}
	if d.Type == nil {
		return ""
	}
	return d.Type.Canonical()
}

// String implements fmt.Stringer.
func (d *Decl) String() string {
	return fmt.Sprintf("%s %s", d.Kind, d.Name)
}
