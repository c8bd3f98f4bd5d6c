package lookup

import (
	"fmt"

	"github.com/reef-lang/reef/pkg/ast"
)

// UnqualifiedResultKind classifies one candidate of an unqualified lookup.
type UnqualifiedResultKind int

const (
	// LocalResult is a binding from the enclosing lexical scopes.  An
	// unqualified lookup produces at most one local result, and a local
	// result is always the only result.
	LocalResult UnqualifiedResultKind = iota
	// ModuleMemberResult is an export of the current module or an import.
	ModuleMemberResult
	// ModuleNameResult is the name of a module itself.
	ModuleNameResult
	// The member kinds mirror MemberResultKind and additionally carry the
	// concrete base declaration of the implicit receiver.
	MemberPropertyResult
	MemberFunctionResult
	MetatypeMemberResult
	ExistentialMemberResult
	ArchetypeMemberResult
	MetaArchetypeMemberResult
)

var unqualifiedResultKindNames = map[UnqualifiedResultKind]string{
	LocalResult:               "local",
	ModuleMemberResult:        "module-member",
	ModuleNameResult:          "module-name",
	MemberPropertyResult:      "member-property",
	MemberFunctionResult:      "member-function",
	MetatypeMemberResult:      "metatype-member",
	ExistentialMemberResult:   "existential-member",
	ArchetypeMemberResult:     "archetype-member",
	MetaArchetypeMemberResult: "meta-archetype-member",
}

// String implements fmt.Stringer.
func (k UnqualifiedResultKind) String() string {
	if name, ok := unqualifiedResultKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("unqualified-result(%d)", int(k))
}

// UnqualifiedResult is one candidate produced by an UnqualifiedLookup.
type UnqualifiedResult struct {
	// Kind determines how the candidate must be re-materialized.
	Kind UnqualifiedResultKind
	// Decl is the resolved declaration, nil for ModuleNameResult.
	Decl *ast.Decl
	// Base is the implicit receiver declaration for member kinds, nil
	// otherwise.
	Base *ast.Decl
	// Module is the named module for ModuleNameResult, nil otherwise.
	Module ast.Module
}

// String implements fmt.Stringer.
func (r UnqualifiedResult) String() string {
	if r.Kind == ModuleNameResult {
		return fmt.Sprintf("(%s %s)", r.Kind, r.Module.ModuleName())
	}
	if r.Base != nil {
		return fmt.Sprintf("(%s %s via %s)", r.Kind, r.Decl, r.Base)
	}
	return fmt.Sprintf("(%s %s)", r.Kind, r.Decl)
}
