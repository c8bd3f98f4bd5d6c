package lookup

import (
	"fmt"

	"github.com/reef-lang/reef/pkg/ast"
)

// MemberResultKind says how a member is reached from its base type.  The
// kind determines the access syntax a caller must re-materialize (via the
// metatype, via an instance, via a type variable); callers must dispatch on
// it rather than guess.
type MemberResultKind int

const (
	// MetatypeMember is reached through the type itself: nested types,
	// static functions, enum elements, module exports.
	MetatypeMember MemberResultKind = iota
	// ExistentialMember is reached through a value of protocol type.
	ExistentialMember
	// ArchetypeMember is reached through a value of a generic type
	// variable.
	ArchetypeMember
	// MetaArchetypeMember is reached through the metatype of a generic
	// type variable.
	MetaArchetypeMember
	// MemberFunction is an instance method.
	MemberFunction
	// MemberProperty is a stored property or subscript.
	MemberProperty
	// GenericParameter is a generic parameter of the base type.
	GenericParameter
)

var memberResultKindNames = map[MemberResultKind]string{
	MetatypeMember:      "metatype-member",
	ExistentialMember:   "existential-member",
	ArchetypeMember:     "archetype-member",
	MetaArchetypeMember: "meta-archetype-member",
	MemberFunction:      "member-function",
	MemberProperty:      "member-property",
	GenericParameter:    "generic-parameter",
}

// String implements fmt.Stringer.
func (k MemberResultKind) String() string {
	if name, ok := memberResultKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("member-result(%d)", int(k))
}

// MemberResult pairs a resolved declaration with its access classification.
type MemberResult struct {
	Kind MemberResultKind
	Decl *ast.Decl
}

// String implements fmt.Stringer.
func (r MemberResult) String() string {
	return fmt.Sprintf("(%s %s)", r.Kind, r.Decl)
}
