package lookup

import (
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/reef-lang/reef/pkg/ast"
	"github.com/reef-lang/reef/pkg/collections"
	"github.com/reef-lang/reef/pkg/source"
)

// UnqualifiedLookup resolves a plain identifier from a lexical context,
// walking the scope chain outward: local bindings, implicit receivers,
// generic parameters, then the current module's exports, then imports with
// cross-module shadowing, and finally module names.  A local binding shadows
// everything else and short-circuits the search, so at most one local result
// is ever produced.  Results are frozen once the lookup is constructed.
type UnqualifiedLookup struct {
	// Name is the identifier being resolved.
	Name string
	// TypeLookup restricts module results to type declarations.
	TypeLookup bool
	// Results is the classified result set.
	Results []UnqualifiedResult

	logger zerolog.Logger
}

// NewUnqualifiedLookup runs an unqualified lookup of name starting at dc and
// returns the finished lookup.  Pass WithPosition to enable
// position-sensitive local scanning.
func NewUnqualifiedLookup(name string, dc ast.Context, typeLookup bool, opts ...Option) *UnqualifiedLookup {
	o := newOptions(opts)
	l := &UnqualifiedLookup{
		Name:       name,
		TypeLookup: typeLookup,
		logger:     o.logger,
	}
	l.run(dc, o.pos)
	return l
}

// SingleTypeResult returns the resolved type declaration if the lookup found
// exactly one type-kind result, nil otherwise.
func (l *UnqualifiedLookup) SingleTypeResult() *ast.Decl {
	if len(l.Results) != 1 {
		return nil
	}
	r := l.Results[0]
	if r.Decl == nil || !r.Decl.IsType() {
		return nil
	}
	return r.Decl
}

func (l *UnqualifiedLookup) run(dc ast.Context, pos source.Pos) {
	m := ast.ModuleOf(dc)
	if m == nil {
		l.logger.Error().Str("name", l.Name).Msg("context chain does not terminate at a module")
		return
	}

	// Operators are never found via local or member lookup.
	if isOperatorName(l.Name) {
		dc = m
	}

	for {
		if _, done := dc.(ast.Module); done {
			break
		}
		if l.visitScope(&dc, pos, m) {
			return
		}
		dc = dc.Parent()
	}

	if pos.IsValid() {
		// Top-level code can declare locals too; the scope chain does not
		// reach into it, so scan the unit's top-level bodies directly.
		if bodies := m.TopLevel(); len(bodies) > 0 {
			f := localFinder{pos: pos, name: l.Name}
			f.checkTopLevel(bodies)
			if f.match != nil {
				l.Results = append(l.Results, UnqualifiedResult{Kind: LocalResult, Decl: f.match})
				return
			}
		}
	}

	l.moduleScope(m)
}

// visitScope processes one non-module context and reports whether the whole
// lookup is finished.  dc is advanced past the receiver-owning parent for
// method-like contexts, mirroring that their members were already searched.
func (l *UnqualifiedLookup) visitScope(dc *ast.Context, pos source.Pos, m ast.Module) bool {
	var baseDecl, metaBaseDecl *ast.Decl
	var genericParams []*ast.Decl
	var receiverType ast.Type

	switch ctx := (*dc).(type) {
	case *ast.FuncContext:
		// Body locals win before parameters.
		if pos.IsValid() {
			f := localFinder{pos: pos, name: l.Name}
			if ctx.Body != nil {
				f.visit(ctx.Body)
			}
			if f.match == nil {
				for _, p := range ctx.Params {
					f.checkPattern(p)
				}
			}
			if f.match != nil {
				l.Results = append(l.Results, UnqualifiedResult{Kind: LocalResult, Decl: f.match})
				return true
			}
		}

		if ctx.ReceiverType != nil {
			receiverType = ctx.ReceiverType
			baseDecl = ctx.SelfDecl
			metaBaseDecl = nominalDeclOf(ctx.ReceiverType)
			*dc = ctx.Parent()
			if ctx.Static {
				receiverType = &ast.Metatype{Instance: receiverType}
			}
		}

		// Generic parameters are checked after the local declarations.
		genericParams = ctx.GenericParams

	case *ast.ClosureContext:
		if pos.IsValid() {
			f := localFinder{pos: pos, name: l.Name}
			if ctx.Body != nil {
				f.visit(ctx.Body)
			}
			if f.match == nil && ctx.Params != nil {
				f.checkPattern(ctx.Params)
			}
			if f.match != nil {
				l.Results = append(l.Results, UnqualifiedResult{Kind: LocalResult, Decl: f.match})
				return true
			}
		}

	case *ast.ExtensionContext:
		receiverType = ctx.Extended
		baseDecl = nominalDeclOf(ctx.Extended)
		metaBaseDecl = baseDecl

	case *ast.NominalContext:
		receiverType = ctx.Decl.Declared
		baseDecl = ctx.Decl
		metaBaseDecl = ctx.Decl

	case *ast.ConstructorContext:
		if pos.IsValid() {
			f := localFinder{pos: pos, name: l.Name}
			if ctx.Body != nil {
				f.visit(ctx.Body)
			}
			if f.match == nil && ctx.Args != nil {
				f.checkPattern(ctx.Args)
			}
			if f.match != nil {
				l.Results = append(l.Results, UnqualifiedResult{Kind: LocalResult, Decl: f.match})
				return true
			}
		}

		baseDecl = ctx.SelfDecl
		receiverType = declaredTypeOfContext(ctx.Parent())
		metaBaseDecl = nominalDeclOf(receiverType)
		*dc = ctx.Parent()

	case *ast.DestructorContext:
		if pos.IsValid() {
			f := localFinder{pos: pos, name: l.Name}
			if ctx.Body != nil {
				f.visit(ctx.Body)
			}
			if f.match == nil && ctx.Args != nil {
				f.checkPattern(ctx.Args)
			}
			if f.match != nil {
				l.Results = append(l.Results, UnqualifiedResult{Kind: LocalResult, Decl: f.match})
				return true
			}
		}

		baseDecl = ctx.SelfDecl
		receiverType = declaredTypeOfContext(ctx.Parent())
		metaBaseDecl = nominalDeclOf(receiverType)
		*dc = ctx.Parent()
	}

	if baseDecl != nil && receiverType != nil {
		member := NewMemberLookup(receiverType, l.Name, m, l.TypeLookup, WithLogger(l.logger))
		for _, r := range member.Results {
			l.Results = append(l.Results, l.reroot(r, baseDecl, metaBaseDecl))
		}
		if member.IsSuccess() {
			return true
		}
	}

	if len(genericParams) > 0 {
		f := localFinder{pos: pos, name: l.Name}
		f.checkGenericParams(genericParams)
		if f.match != nil {
			l.Results = append(l.Results, UnqualifiedResult{Kind: LocalResult, Decl: f.match})
			return true
		}
	}

	return false
}

// reroot re-materializes a qualified member result onto the implicit
// receiver.  Results reachable only via the metatype use the type's own
// declaration as the base instead of the receiver value.
func (l *UnqualifiedLookup) reroot(r MemberResult, baseDecl, metaBaseDecl *ast.Decl) UnqualifiedResult {
	switch r.Kind {
	case MemberProperty:
		return UnqualifiedResult{Kind: MemberPropertyResult, Decl: r.Decl, Base: baseDecl}
	case MemberFunction:
		return UnqualifiedResult{Kind: MemberFunctionResult, Decl: r.Decl, Base: baseDecl}
	case MetatypeMember:
		base := metaBaseDecl
		if r.Decl.Kind == ast.Func {
			base = baseDecl
		}
		return UnqualifiedResult{Kind: MetatypeMemberResult, Decl: r.Decl, Base: base}
	case ExistentialMember:
		return UnqualifiedResult{Kind: ExistentialMemberResult, Decl: r.Decl, Base: baseDecl}
	case ArchetypeMember:
		return UnqualifiedResult{Kind: ArchetypeMemberResult, Decl: r.Decl, Base: baseDecl}
	case MetaArchetypeMember:
		base := metaBaseDecl
		if r.Decl.Kind == ast.Func {
			base = baseDecl
		}
		return UnqualifiedResult{Kind: MetaArchetypeMemberResult, Decl: r.Decl, Base: base}
	}
	// GenericParameter: all generic parameters are local.
	return UnqualifiedResult{Kind: LocalResult, Decl: r.Decl}
}

// moduleScope is the tail of the state machine: current-module exports,
// imported-module exports with cross-module shadowing, then module names.
func (l *UnqualifiedLookup) moduleScope(m ast.Module) {
	curResults := m.LookupExport(nil, l.Name, ast.UnqualifiedLookup)
	searchedForeign := m.Foreign()
	for _, vd := range curResults {
		if !l.TypeLookup || vd.IsType() {
			l.Results = append(l.Results, UnqualifiedResult{Kind: ModuleMemberResult, Decl: vd})
		}
	}

	curSignatures := collections.NewSet[string]()
	for _, vd := range curResults {
		// A type found in the current module always shadows imports.
		if vd.IsType() {
			return
		}
		if !l.TypeLookup {
			if sig := vd.Signature(false); sig != "" {
				curSignatures.Add(sig)
			}
		}
	}

	// Breadth-first over the transitive import graph.  The visited set
	// makes cyclic and diamond graphs terminate without double-counting;
	// the current module is pre-seeded so a cycle back to it adds nothing.
	visited := collections.NewSet[ast.Module](m)
	queue := append([]ast.ImportedModule{}, m.Imports()...)
	for len(queue) > 0 {
		imp := queue[0]
		queue = queue[1:]
		if !visited.Add(imp.Module) {
			continue
		}

		if imp.Module.Foreign() {
			// A bridged module family is consulted only once per lookup.
			if searchedForeign {
				continue
			}
			searchedForeign = true
		}

		for _, vd := range imp.Module.LookupExport(imp.Path, l.Name, ast.UnqualifiedLookup) {
			if l.TypeLookup && !vd.IsType() {
				continue
			}
			// Skip imported values whose signature was already found on a
			// current-module value; imported types are deliberately not
			// filtered against current-module types (the early return
			// above covers those).
			if sig := vd.Signature(false); sig != "" && curSignatures.Contains(sig) {
				continue
			}
			l.Results = append(l.Results, UnqualifiedResult{Kind: ModuleMemberResult, Decl: vd})
		}

		queue = append(queue, imp.Module.Imports()...)
	}

	if len(l.Results) > 0 {
		return
	}

	// Last resort: the identifier may name a module.
	if l.Name == m.ModuleName() {
		l.Results = append(l.Results, UnqualifiedResult{Kind: ModuleNameResult, Module: m})
		return
	}
	for _, imp := range m.Imports() {
		if imp.Module.ModuleName() == l.Name {
			l.Results = append(l.Results, UnqualifiedResult{Kind: ModuleNameResult, Module: imp.Module})
			break
		}
	}
}

func nominalDeclOf(t ast.Type) *ast.Decl {
	if nt, ok := t.(*ast.NominalType); ok {
		return nt.Decl
	}
	return nil
}

func declaredTypeOfContext(c ast.Context) ast.Type {
	switch ctx := c.(type) {
	case *ast.NominalContext:
		return ctx.Decl.Declared
	case *ast.ExtensionContext:
		return ctx.Extended
	}
	return nil
}

// isOperatorName reports whether name is an operator-like token rather than
// an identifier.
func isOperatorName(name string) bool {
	if name == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(name)
	return !unicode.IsLetter(r) && r != '_'
}
