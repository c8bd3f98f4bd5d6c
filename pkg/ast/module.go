package ast

// AccessPath optionally restricts an import to a named declaration within
// the imported module.  An empty path imposes no restriction.
type AccessPath []string

// LookupKind distinguishes how a module export query arose.  The kind is
// recorded for visibility diagnostics by module implementations; it does not
// change how this package consumes the results.
type LookupKind int

const (
	// UnqualifiedLookup is a query arising from plain identifier
	// resolution in some scope.
	UnqualifiedLookup LookupKind = iota
	// QualifiedLookup is a query arising from dot notation on a module or
	// type reference.
	QualifiedLookup
)

// ImportedModule is one import edge of a source unit.
type ImportedModule struct {
	// Path is the optional access-path restriction on the import.
	Path AccessPath
	// Module is the imported module.
	Module Module
}

// Module is the export surface of one module, supplied by the embedder's
// loading layer.  Implementations must be synchronous and idempotent:
// repeated identical queries return equal result sets.  A Module terminates
// a context chain, so Parent always returns nil.
type Module interface {
	Context

	// ModuleName returns the module's name.
	ModuleName() string

	// LookupExport searches the module's exported declarations for name.
	// An access path restricts the search to the named declaration.
	LookupExport(path AccessPath, name string, kind LookupKind) []*Decl

	// Imports returns the ordered import edges of a source unit; empty for
	// modules with no import surface.
	Imports() []ImportedModule

	// Foreign reports whether the module belongs to an interop-bridged
	// module family.  A bridged family is consulted at most once per
	// unqualified lookup regardless of how many import edges reach it.
	Foreign() bool

	// TopLevel returns the top-level code bodies of a source unit, nil for
	// index-only modules.  Position-sensitive lookups scan these for local
	// bindings before falling back to exports.
	TopLevel() []*BraceStmt
}
