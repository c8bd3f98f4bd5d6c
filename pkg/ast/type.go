package ast

import (
	"fmt"
	"strings"
)

// Type is the closed set of type shapes the lookup engine dispatches on.
// Type-shape dispatch is done by exhaustive type switches over the variants
// below; the unexported marker method keeps the set closed to this package.
type Type interface {
	fmt.Stringer

	// Canonical returns the normalized structural spelling of the type used
	// as a shadowing signature, or "" when no canonical form is computable.
	Canonical() string

	typeNode()
}

// Metatype is the type of a reference to a type, as in "T.member".
type Metatype struct {
	Instance Type
}

func (t *Metatype) typeNode() {}

func (t *Metatype) Canonical() string {
	inner := t.Instance.Canonical()
	if inner == "" {
		return ""
	}
	return "metatype<" + inner + ">"
}

func (t *Metatype) String() string { return t.Instance.String() + ".metatype" }

// ModuleType is the type of a reference to a module, as in "mod.member".
type ModuleType struct {
	Module Module
}

func (t *ModuleType) typeNode() {}

func (t *ModuleType) Canonical() string { return "module<" + t.Module.ModuleName() + ">" }

func (t *ModuleType) String() string { return "module " + t.Module.ModuleName() }

// ProtocolType is a reference to a protocol declaration.
type ProtocolType struct {
	Decl *Decl
}

func (t *ProtocolType) typeNode() {}

func (t *ProtocolType) Canonical() string { return t.Decl.Name }

func (t *ProtocolType) String() string { return t.Decl.Name }

// CompositionType is a protocol composition.  The constituents are assumed
// non-overlapping by the type system.
type CompositionType struct {
	Protocols []Type
}

func (t *CompositionType) typeNode() {}

func (t *CompositionType) Canonical() string {
	parts := make([]string, len(t.Protocols))
	for i, p := range t.Protocols {
		parts[i] = p.Canonical()
		if parts[i] == "" {
			return ""
		}
	}
	return strings.Join(parts, "&")
}

func (t *CompositionType) String() string { return t.Canonical() }

// ArchetypeType is a generic type variable known only by its constraint set.
type ArchetypeType struct {
	Name string
	// ConformsTo are the protocols the archetype is constrained to.
	ConformsTo []*ProtocolType
	// Superclass is the optional superclass bound.
	Superclass Type
}

func (t *ArchetypeType) typeNode() {}

// Canonical for an archetype is its name; two archetypes with the same name
// in one generic signature are the same variable.
func (t *ArchetypeType) Canonical() string { return t.Name }

func (t *ArchetypeType) String() string { return t.Name }

// NominalType is a reference to a struct, class or enum declaration,
// possibly with bound generic arguments, possibly generic-unbound.
type NominalType struct {
	Decl *Decl
	// Args are bound generic arguments; empty for plain references.
	Args []Type
	// Unbound marks a reference to a generic type without arguments.
	Unbound bool
}

func (t *NominalType) typeNode() {}

func (t *NominalType) Canonical() string {
	if len(t.Args) == 0 {
		return t.Decl.Name
	}
	args := make([]string, len(t.Args))
	for i, a := range t.Args {
		args[i] = a.Canonical()
		if args[i] == "" {
			return ""
		}
	}
	return t.Decl.Name + "<" + strings.Join(args, ",") + ">"
}

func (t *NominalType) String() string { return t.Canonical() }

// FuncType is a function type.
type FuncType struct {
	Params Type
	Result Type
}

func (t *FuncType) typeNode() {}

func (t *FuncType) Canonical() string {
	p, r := t.Params.Canonical(), t.Result.Canonical()
	if p == "" || r == "" {
		return ""
	}
	return p + "->" + r
}

func (t *FuncType) String() string { return t.Params.String() + " -> " + t.Result.String() }

// TupleType is a tuple of element types.
type TupleType struct {
	Elems []Type
}

func (t *TupleType) typeNode() {}

func (t *TupleType) Canonical() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.Canonical()
		if parts[i] == "" {
			return ""
		}
	}
	return "(" + strings.Join(parts, ",") + ")"
}

func (t *TupleType) String() string { return t.Canonical() }

// LValueType is a reference-qualified type.  Qualifiers do not affect name
// lookup and are peeled before dispatch.
type LValueType struct {
	Object Type
}

func (t *LValueType) typeNode() {}

func (t *LValueType) Canonical() string { return t.Object.Canonical() }

func (t *LValueType) String() string { return "&" + t.Object.String() }

// BuiltinType is a concrete type with no nominal structure.  Member lookup
// on a builtin yields an empty result set.
type BuiltinType struct {
	Name string
}

func (t *BuiltinType) typeNode() {}

func (t *BuiltinType) Canonical() string { return t.Name }

func (t *BuiltinType) String() string { return t.Name }
