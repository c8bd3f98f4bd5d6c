package modindex

import (
	"sort"
	"strings"

	"github.com/dghubble/trie"

	"github.com/reef-lang/reef/pkg/ast"
)

// Index is an in-memory module export surface backed by a trie.  It
// implements ast.Module and is the default collaborator used by tests and by
// embedders that do not bring their own loader.  Exports are keyed by their
// (possibly dotted) path; multiple declarations under one path form an
// overload set.
type Index struct {
	name     string
	exports  *trie.PathTrie
	imports  []ast.ImportedModule
	topLevel []*ast.BraceStmt
	foreign  bool
}

// Option configures an Index.
type Option func(*Index)

// Foreign marks the module as part of an interop-bridged module family.
func Foreign() Option {
	return func(ix *Index) {
		ix.foreign = true
	}
}

// NewIndex constructs an empty index for a module with the given name.
func NewIndex(name string, opts ...Option) *Index {
	ix := &Index{
		name: name,
		exports: trie.NewPathTrieWithConfig(&trie.PathTrieConfig{
			Segmenter: exportSegmenter,
		}),
	}
	for _, opt := range opts {
		opt(ix)
	}
	return ix
}

// Put registers a declaration under the given export path.
func (ix *Index) Put(path string, d *ast.Decl) {
	existing, _ := ix.exports.Get(path).([]*ast.Decl)
	ix.exports.Put(path, append(existing, d))
}

// AddImport declares an import edge, optionally restricted to an access
// path.
func (ix *Index) AddImport(path ast.AccessPath, m ast.Module) {
	ix.imports = append(ix.imports, ast.ImportedModule{Path: path, Module: m})
}

// AddTopLevel appends a top-level code body.
func (ix *Index) AddTopLevel(body *ast.BraceStmt) {
	ix.topLevel = append(ix.topLevel, body)
}

// Parent implements part of the ast.Context interface.  A module terminates
// the context chain.
func (ix *Index) Parent() ast.Context { return nil }

// ModuleName implements part of the ast.Module interface.
func (ix *Index) ModuleName() string { return ix.name }

// LookupExport implements part of the ast.Module interface.  An access path
// restricts the search to the declaration it names.
func (ix *Index) LookupExport(path ast.AccessPath, name string, kind ast.LookupKind) []*ast.Decl {
	if len(path) > 0 && path[0] != name {
		return nil
	}
	decls, _ := ix.exports.Get(name).([]*ast.Decl)
	if len(decls) == 0 {
		return nil
	}
	return append([]*ast.Decl(nil), decls...)
}

// Imports implements part of the ast.Module interface.
func (ix *Index) Imports() []ast.ImportedModule { return ix.imports }

// Foreign implements part of the ast.Module interface.
func (ix *Index) Foreign() bool { return ix.foreign }

// TopLevel implements part of the ast.Module interface.
func (ix *Index) TopLevel() []*ast.BraceStmt { return ix.topLevel }

// String implements the fmt.Stringer interface.
func (ix *Index) String() string {
	var lines []string
	ix.exports.Walk(func(key string, value interface{}) error {
		for _, d := range value.([]*ast.Decl) {
			lines = append(lines, key+" ("+d.String()+")")
		}
		return nil
	})
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}

// exportSegmenter segments string key paths by dot separators. For example,
// ".a.b.c" -> (".a", 2), (".b", 4), (".c", -1) in successive calls. It does
// not allocate any heap memory.
func exportSegmenter(path string, start int) (segment string, next int) {
	if len(path) == 0 || start < 0 || start > len(path)-1 {
		return "", -1
	}
	end := strings.IndexRune(path[start+1:], '.') // next '.' after 0th rune
	if end == -1 {
		return path[start:], -1
	}
	return path[start : start+end+1], start + end + 1
}
