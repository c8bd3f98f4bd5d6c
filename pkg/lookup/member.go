package lookup

import (
	"github.com/rs/zerolog"

	"github.com/reef-lang/reef/pkg/ast"
	"github.com/reef-lang/reef/pkg/collections"
)

// MemberLookup resolves a name against a base type within the context of a
// module.  It corresponds to a dot lookup like "a.b" where the base is the
// type of "a".  The result set never contains a declaration that is shadowed
// by signature or overridden by inheritance relative to another declaration
// in the same set.  Results are frozen once the lookup is constructed.
type MemberLookup struct {
	// Name is the member name searched for.
	Name string
	// TypeLookup restricts module-export matches to type declarations and
	// lifts the instance-member filter.
	TypeLookup bool
	// Results is the classified result set.
	Results []MemberResult

	module ast.Module
	logger zerolog.Logger
}

// NewMemberLookup runs a member lookup of name on base and returns the
// finished lookup.
func NewMemberLookup(base ast.Type, name string, m ast.Module, typeLookup bool, opts ...Option) *MemberLookup {
	o := newOptions(opts)
	l := &MemberLookup{
		Name:       name,
		TypeLookup: typeLookup,
		module:     m,
		logger:     o.logger,
	}
	visited := collections.NewSet[*ast.Decl]()
	l.Results = removeOverridden(l.lookup(base, !typeLookup, visited))
	return l
}

// IsSuccess reports whether the lookup found anything.
func (l *MemberLookup) IsSuccess() bool { return len(l.Results) > 0 }

// lookup dispatches on the shape of base and returns a fresh result slice.
// The protocol visited set is threaded through every recursive call so that
// cyclic protocol inheritance terminates within one top-level invocation.
func (l *MemberLookup) lookup(base ast.Type, onlyInstance bool, visited collections.Set[*ast.Decl]) []MemberResult {
	// Reference qualifiers do not affect name lookup.
	for {
		lv, ok := base.(*ast.LValueType)
		if !ok {
			break
		}
		base = lv.Object
	}

	switch t := base.(type) {
	case *ast.Metatype:
		// A type name surfaces static members and, for member-address use,
		// instance members as well.
		return l.lookup(t.Instance, false, visited)

	case *ast.ModuleType:
		// Modules cannot have extensions; delegate entirely to the
		// module's qualified export lookup.
		var results []MemberResult
		for _, vd := range t.Module.LookupExport(nil, l.Name, ast.QualifiedLookup) {
			results = append(results, MemberResult{MetatypeMember, vd})
		}
		return results

	case *ast.ProtocolType:
		return l.lookupProtocol(t, onlyInstance, visited)

	case *ast.CompositionType:
		var results []MemberResult
		for _, p := range t.Protocols {
			results = append(results, l.lookup(p, onlyInstance, visited)...)
		}
		return results

	case *ast.ArchetypeType:
		return l.lookupArchetype(t, onlyInstance, visited)

	case *ast.NominalType:
		return l.lookupNominal(t, onlyInstance)
	}

	// Builtins, tuples, function types and other non-nominal bases have no
	// members; absence is an empty set, not an error.
	return nil
}

func (l *MemberLookup) lookupProtocol(t *ast.ProtocolType, onlyInstance bool, visited collections.Set[*ast.Decl]) []MemberResult {
	if !visited.Add(t.Decl) {
		return nil
	}

	// Search inherited protocols first so inherited requirements are
	// visible.
	var results []MemberResult
	for _, inherited := range t.Decl.Protocol.Inherited {
		results = append(results, l.lookup(inherited, onlyInstance, visited)...)
	}

	for _, vd := range t.Decl.Protocol.Members {
		if vd.Name != l.Name {
			continue
		}
		switch vd.Kind {
		case ast.Var, ast.Subscript, ast.Func:
			if onlyInstance && !vd.IsInstanceMember() {
				continue
			}
			results = append(results, MemberResult{ExistentialMember, vd})
		default:
			if !vd.IsType() {
				l.logger.Error().
					Stringer("member", vd).
					Stringer("protocol", t.Decl).
					Msg("unhandled protocol member kind; dropping result")
				continue
			}
			results = append(results, MemberResult{MetatypeMember, vd})
		}
	}
	return results
}

func (l *MemberLookup) lookupArchetype(t *ast.ArchetypeType, onlyInstance bool, visited collections.Set[*ast.Decl]) []MemberResult {
	var found []MemberResult
	for _, proto := range t.ConformsTo {
		found = append(found, l.lookup(proto, onlyInstance, visited)...)
	}
	if t.Superclass != nil {
		found = append(found, l.lookup(t.Superclass, onlyInstance, visited)...)
	}

	// An archetype is not yet known to be any single concrete type, so its
	// members are members of a type variable, not of a concrete existential
	// or metatype.
	results := make([]MemberResult, 0, len(found))
	for _, r := range found {
		switch r.Kind {
		case ExistentialMember:
			r.Kind = ArchetypeMember
		case MetatypeMember:
			r.Kind = MetaArchetypeMember
		case MemberProperty, MemberFunction, GenericParameter:
		default:
			l.logger.Error().
				Stringer("kind", r.Kind).
				Stringer("member", r.Decl).
				Str("archetype", t.Name).
				Msg("unexpected member classification under archetype; dropping result")
			continue
		}
		results = append(results, r)
	}
	return results
}

// lookupNominal walks a concrete nominal type and, for classes, its base
// chain most-derived first.
func (l *MemberLookup) lookupNominal(t *ast.NominalType, onlyInstance bool) []MemberResult {
	var results []MemberResult
	for base := t; base != nil; base = baseClassOf(base) {
		for _, vd := range l.nominalMembers(base) {
			if vd.IsType() {
				if vd.Kind == ast.GenericParam {
					results = append(results, MemberResult{GenericParameter, vd})
				} else {
					results = append(results, MemberResult{MetatypeMember, vd})
				}
				continue
			}

			if onlyInstance && !vd.IsInstanceMember() {
				continue
			}

			switch vd.Kind {
			case ast.Func:
				if vd.Static {
					results = append(results, MemberResult{MetatypeMember, vd})
				} else {
					results = append(results, MemberResult{MemberFunction, vd})
				}
			case ast.Element:
				results = append(results, MemberResult{MetatypeMember, vd})
			case ast.Var, ast.Subscript:
				results = append(results, MemberResult{MemberProperty, vd})
			default:
				l.logger.Error().
					Stringer("member", vd).
					Msg("unexpected nominal member kind; dropping result")
			}
		}
	}
	return results
}

// nominalMembers collects the name matches on one nominal type: its declared
// members, its generic parameters as pseudo-members, and every extension
// attached to it anywhere in the program, with shadowed declarations already
// removed.
func (l *MemberLookup) nominalMembers(t *ast.NominalType) []*ast.Decl {
	d := t.Decl
	if d == nil || d.Nominal == nil {
		return nil
	}
	base := make([]*ast.Decl, 0, len(d.Nominal.Members)+len(d.Nominal.GenericParams))
	base = append(base, d.Nominal.Members...)
	base = append(base, d.Nominal.GenericParams...)
	return globalExtensionLookup(d, l.Name, base, l.module, l.TypeLookup)
}

// globalExtensionLookup matches name against a base member list and against
// the members of every extension of nominal, then strips shadowed
// declarations.  Shared by member and constructor lookup.
func globalExtensionLookup(nominal *ast.Decl, name string, baseMembers []*ast.Decl, cur ast.Module, typeLookup bool) []*ast.Decl {
	var results []*ast.Decl
	for _, vd := range baseMembers {
		if vd.Name == name {
			results = append(results, vd)
		}
	}
	for _, ext := range nominal.Nominal.Extensions {
		for _, vd := range ext.Members {
			if vd.Name == name {
				results = append(results, vd)
			}
		}
	}
	return RemoveShadowed(results, typeLookup, cur)
}

func baseClassOf(t *ast.NominalType) *ast.NominalType {
	if t.Decl == nil || t.Decl.Kind != ast.Class || t.Decl.Nominal == nil {
		return nil
	}
	base, _ := t.Decl.Nominal.Base.(*ast.NominalType)
	return base
}

// removeOverridden drops every declaration that another result in the set
// declares as its overridden parent, so only the most-derived override is
// visible even though the inheritance walk visits base classes.
func removeOverridden(results []MemberResult) []MemberResult {
	overridden := collections.NewSet[*ast.Decl]()
	for _, r := range results {
		switch r.Decl.Kind {
		case ast.Func, ast.Var, ast.Subscript:
			if r.Decl.Overridden != nil {
				overridden.Add(r.Decl.Overridden)
			}
		}
	}
	if overridden.Len() == 0 {
		return results
	}

	kept := make([]MemberResult, 0, len(results)-overridden.Len())
	for _, r := range results {
		if !overridden.Contains(r.Decl) {
			kept = append(kept, r)
		}
	}
	return kept
}
