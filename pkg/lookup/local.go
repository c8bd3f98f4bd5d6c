package lookup

import (
	"github.com/reef-lang/reef/pkg/ast"
	"github.com/reef-lang/reef/pkg/source"
)

// FindLocalDecl returns the innermost local binding of name visible at pos
// within body, or nil.  A statement whose source range does not contain pos
// is skipped entirely, together with every binding nested inside it.
func FindLocalDecl(pos source.Pos, name string, body ast.Stmt) *ast.Decl {
	f := localFinder{pos: pos, name: name}
	f.visit(body)
	return f.match
}

// localFinder is a structural traversal over statement and pattern trees
// that records the first binding of name it reaches.  Nested bodies are
// visited before a construct's own bindings so that inner shadowing bindings
// win, and the first assignment is never overwritten by a later, shallower
// one.
type localFinder struct {
	pos   source.Pos
	name  string
	match *ast.Decl
}

func (f *localFinder) intersects(r source.Range) bool {
	return r.Contains(f.pos)
}

func (f *localFinder) checkDecl(d *ast.Decl) {
	if f.match == nil && d.Name == f.name {
		f.match = d
	}
}

func (f *localFinder) checkPattern(p ast.Pattern) {
	switch pat := p.(type) {
	case *ast.TuplePattern:
		for _, field := range pat.Fields {
			f.checkPattern(field)
		}
	case *ast.ParenPattern:
		f.checkPattern(pat.Sub)
	case *ast.TypedPattern:
		f.checkPattern(pat.Sub)
	case *ast.NamedPattern:
		f.checkDecl(pat.Decl)
	case *ast.AnyPattern:
		// wildcard: no binding
	}
}

// checkGenericParams checks a generic parameter list.  Generic parameters
// are always visible within their owning construct, so there is no range
// test.
func (f *localFinder) checkGenericParams(params []*ast.Decl) {
	for _, p := range params {
		f.checkDecl(p)
	}
}

func (f *localFinder) checkTopLevel(bodies []*ast.BraceStmt) {
	for _, b := range bodies {
		f.visit(b)
	}
}

func (f *localFinder) visit(s ast.Stmt) {
	switch stmt := s.(type) {
	case *ast.BraceStmt:
		if !f.intersects(stmt.Rng) {
			return
		}
		for _, entry := range stmt.Entries {
			if entry.Stmt != nil {
				f.visit(entry.Stmt)
			}
		}
		if f.match != nil {
			return
		}
		for _, entry := range stmt.Entries {
			if entry.Decl != nil {
				f.checkDecl(entry.Decl)
			}
		}

	case *ast.IfStmt:
		f.visit(stmt.Then)
		if stmt.Else != nil {
			f.visit(stmt.Else)
		}

	case *ast.WhileStmt:
		f.visit(stmt.Body)

	case *ast.RepeatStmt:
		f.visit(stmt.Body)

	case *ast.ForStmt:
		if !f.intersects(stmt.Rng) {
			return
		}
		f.visit(stmt.Body)
		if f.match != nil {
			return
		}
		for _, d := range stmt.Init {
			f.checkDecl(d)
		}

	case *ast.ForEachStmt:
		if !f.intersects(stmt.Rng) {
			return
		}
		f.visit(stmt.Body)
		if f.match != nil {
			return
		}
		f.checkPattern(stmt.Pattern)

	case *ast.SwitchStmt:
		if !f.intersects(stmt.Rng) {
			return
		}
		for _, c := range stmt.Cases {
			f.visit(c)
		}

	case *ast.CaseStmt:
		if !f.intersects(stmt.Rng) {
			return
		}
		f.visit(stmt.Body)

	default:
		// break, continue, return, fallthrough: no bindings
	}
}
