package lookup

import (
	"github.com/reef-lang/reef/pkg/ast"
)

// ConstructorName is the reserved member name initializer declarations are
// declared under.
const ConstructorName = "init"

// ConstructorLookup collects the initializer-like members of a nominal type:
// declarations named init, plus enum case elements, which are directly
// usable as constructors.  Anything other than a struct, enum or class base
// yields an empty result set.
type ConstructorLookup struct {
	Results []*ast.Decl
}

// NewConstructorLookup runs a constructor lookup on base and returns the
// finished lookup.
func NewConstructorLookup(base ast.Type, m ast.Module) *ConstructorLookup {
	l := &ConstructorLookup{}

	nt, ok := base.(*ast.NominalType)
	if !ok || nt.Decl == nil || nt.Decl.Nominal == nil {
		return l
	}
	d := nt.Decl

	var baseMembers []*ast.Decl
	switch d.Kind {
	case ast.Struct, ast.Class:
		baseMembers = append(baseMembers, d.Nominal.Members...)
	case ast.Enum:
		for _, vd := range d.Nominal.Members {
			if vd.Kind == ast.Element {
				l.Results = append(l.Results, vd)
			} else {
				baseMembers = append(baseMembers, vd)
			}
		}
	default:
		return l
	}

	if _, ok := d.Context.(ast.Module); !ok {
		// Nested-type constructors are not subject to cross-module
		// extension visibility; only members declared directly on the type
		// apply.
		for _, vd := range baseMembers {
			if vd.Name == ConstructorName {
				l.Results = append(l.Results, vd)
			}
		}
		return l
	}

	l.Results = append(l.Results,
		globalExtensionLookup(d, ConstructorName, baseMembers, m, false)...)
	return l
}
