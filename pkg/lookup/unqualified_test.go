package lookup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reef-lang/reef/pkg/ast"
	"github.com/reef-lang/reef/pkg/lookup"
	"github.com/reef-lang/reef/pkg/modindex"
	"github.com/reef-lang/reef/pkg/testutil"
)

func TestUnqualifiedLookupCurrentModuleShadowsImport(t *testing.T) {
	lib := newModule("lib")
	imported := funcDecl("g", fnType(intType, boolType), lib)
	lib.Put("g", imported)

	app := newModule("app")
	app.AddImport(nil, lib)
	local := funcDecl("g", fnType(intType, boolType), app)
	app.Put("g", local)

	got := lookup.NewUnqualifiedLookup("g", app, false, lookup.WithLogger(testutil.NewTestLogger(t)))

	require.Len(t, got.Results, 1)
	assert.Equal(t, lookup.ModuleMemberResult, got.Results[0].Kind)
	assert.Same(t, local, got.Results[0].Decl, "a same-signature import is filtered out")
}

func TestUnqualifiedLookupDistinctSignaturesBothSurvive(t *testing.T) {
	lib := newModule("lib")
	imported := funcDecl("g", fnType(boolType, boolType), lib)
	lib.Put("g", imported)

	app := newModule("app")
	app.AddImport(nil, lib)
	local := funcDecl("g", fnType(intType, boolType), app)
	app.Put("g", local)

	got := lookup.NewUnqualifiedLookup("g", app, false)

	require.Len(t, got.Results, 2)
	assert.Same(t, local, got.Results[0].Decl)
	assert.Same(t, imported, got.Results[1].Decl)
}

func TestUnqualifiedLookupTypeShadowsAllImports(t *testing.T) {
	lib := newModule("lib")
	importedType := defineNominal(ast.Struct, "T", lib)
	lib.Put("T", importedType.Decl)
	importedValue := varDecl("T", intType, lib)
	lib.Put("T", importedValue)

	app := newModule("app")
	app.AddImport(nil, lib)
	localType := defineNominal(ast.Struct, "T", app)
	app.Put("T", localType.Decl)

	got := lookup.NewUnqualifiedLookup("T", app, false)

	require.Len(t, got.Results, 1)
	assert.Same(t, localType.Decl, got.Results[0].Decl,
		"a type found in the current module stops the search before imports")
}

func TestUnqualifiedLookupImportCycle(t *testing.T) {
	a := newModule("a")
	b := newModule("b")
	a.AddImport(nil, b)
	b.AddImport(nil, a)

	exported := varDecl("answer", intType, b)
	b.Put("answer", exported)

	got := lookup.NewUnqualifiedLookup("answer", a, false)

	require.Len(t, got.Results, 1, "the module visited-set must prevent double-counting")
	assert.Same(t, exported, got.Results[0].Decl)
}

func TestUnqualifiedLookupTransitiveImports(t *testing.T) {
	c := newModule("c")
	exported := varDecl("deep", intType, c)
	c.Put("deep", exported)

	b := newModule("b")
	b.AddImport(nil, c)
	a := newModule("a")
	a.AddImport(nil, b)

	got := lookup.NewUnqualifiedLookup("deep", a, false)

	require.Len(t, got.Results, 1)
	assert.Same(t, exported, got.Results[0].Decl)
}

func TestUnqualifiedLookupForeignFamilyConsultedOnce(t *testing.T) {
	bridged1 := newModule("cstdio", modindex.Foreign())
	bridged2 := newModule("cstdlib", modindex.Foreign())
	first := varDecl("errno", intType, bridged1)
	bridged1.Put("errno", first)
	bridged2.Put("errno", varDecl("errno", boolType, bridged2))

	app := newModule("app")
	app.AddImport(nil, bridged1)
	app.AddImport(nil, bridged2)

	got := lookup.NewUnqualifiedLookup("errno", app, false)

	require.Len(t, got.Results, 1, "a bridged module family is consulted only once")
	assert.Same(t, first, got.Results[0].Decl)
}

func TestUnqualifiedLookupAccessPathRestriction(t *testing.T) {
	lib := newModule("lib")
	lib.Put("x", varDecl("x", intType, lib))
	lib.Put("y", varDecl("y", intType, lib))

	app := newModule("app")
	app.AddImport(ast.AccessPath{"x"}, lib)

	t.Run("restricted name resolves", func(t *testing.T) {
		got := lookup.NewUnqualifiedLookup("x", app, false)
		require.Len(t, got.Results, 1)
	})

	t.Run("other names are hidden", func(t *testing.T) {
		got := lookup.NewUnqualifiedLookup("y", app, false)
		assert.Empty(t, got.Results)
	})
}

func TestUnqualifiedLookupModuleName(t *testing.T) {
	lib := newModule("lib")
	app := newModule("app")
	app.AddImport(nil, lib)

	for name, tc := range map[string]struct {
		query string
		want  ast.Module
	}{
		"own module":      {query: "app", want: app},
		"imported module": {query: "lib", want: lib},
		"unknown name":    {query: "nope", want: nil},
	} {
		t.Run(name, func(t *testing.T) {
			got := lookup.NewUnqualifiedLookup(tc.query, app, false)
			if tc.want == nil {
				assert.Empty(t, got.Results)
				return
			}
			require.Len(t, got.Results, 1)
			assert.Equal(t, lookup.ModuleNameResult, got.Results[0].Kind)
			assert.Equal(t, tc.want, got.Results[0].Module)
		})
	}
}

func TestUnqualifiedLookupLocalShadowsModule(t *testing.T) {
	app := newModule("app")
	app.Put("x", varDecl("x", intType, app))

	local := varDecl("x", boolType, nil)
	fn := &ast.FuncContext{
		Up: app,
		Body: &ast.BraceStmt{
			Rng:     rng(0, 100),
			Entries: []ast.BraceEntry{{Decl: local}},
		},
	}

	got := lookup.NewUnqualifiedLookup("x", fn, false, lookup.WithPosition(50))

	require.Len(t, got.Results, 1, "a local binding short-circuits the search")
	assert.Equal(t, lookup.LocalResult, got.Results[0].Kind)
	assert.Same(t, local, got.Results[0].Decl)
}

func TestUnqualifiedLookupLocalOutOfRangeFallsThrough(t *testing.T) {
	app := newModule("app")
	exported := varDecl("x", intType, app)
	app.Put("x", exported)

	loopLocal := varDecl("x", boolType, nil)
	fn := &ast.FuncContext{
		Up: app,
		Body: &ast.BraceStmt{
			Rng: rng(0, 100),
			Entries: []ast.BraceEntry{
				{Stmt: &ast.ForStmt{
					Rng:  rng(10, 30),
					Init: []*ast.Decl{loopLocal},
					Body: &ast.BraceStmt{Rng: rng(15, 30)},
				}},
			},
		},
	}

	got := lookup.NewUnqualifiedLookup("x", fn, false, lookup.WithPosition(60))

	require.Len(t, got.Results, 1)
	assert.Equal(t, lookup.ModuleMemberResult, got.Results[0].Kind)
	assert.Same(t, exported, got.Results[0].Decl,
		"a loop binding is invisible outside the loop's range")
}

func TestUnqualifiedLookupParameters(t *testing.T) {
	app := newModule("app")
	param := varDecl("n", intType, nil)
	fn := &ast.FuncContext{
		Up:     app,
		Body:   &ast.BraceStmt{Rng: rng(0, 100)},
		Params: []ast.Pattern{&ast.TypedPattern{Sub: &ast.NamedPattern{Decl: param}, Type: intType}},
	}

	got := lookup.NewUnqualifiedLookup("n", fn, false, lookup.WithPosition(50))

	require.Len(t, got.Results, 1)
	assert.Equal(t, lookup.LocalResult, got.Results[0].Kind)
	assert.Same(t, param, got.Results[0].Decl)
}

func TestUnqualifiedLookupImplicitReceiver(t *testing.T) {
	app := newModule("app")
	s := defineNominal(ast.Struct, "T", app)
	stored := s.member(varDecl("count", intType, nil))
	alias := s.member(&ast.Decl{Name: "Inner", Kind: ast.TypeAlias, Declared: intType})
	static := s.member(staticFuncDecl("make", fnType(intType, s.Type), nil))

	self := varDecl("self", s.Type, nil)
	method := &ast.FuncContext{
		Up:           s.Body,
		Body:         &ast.BraceStmt{Rng: rng(0, 100)},
		ReceiverType: s.Type,
		SelfDecl:     self,
	}

	t.Run("member property rerooted on self", func(t *testing.T) {
		got := lookup.NewUnqualifiedLookup("count", method, false, lookup.WithPosition(50))
		require.Len(t, got.Results, 1)
		assert.Equal(t, lookup.MemberPropertyResult, got.Results[0].Kind)
		assert.Same(t, stored, got.Results[0].Decl)
		assert.Same(t, self, got.Results[0].Base)
	})

	t.Run("type member rerooted on the metatype decl", func(t *testing.T) {
		got := lookup.NewUnqualifiedLookup("Inner", method, false, lookup.WithPosition(50))
		require.Len(t, got.Results, 1)
		assert.Equal(t, lookup.MetatypeMemberResult, got.Results[0].Kind)
		assert.Same(t, alias, got.Results[0].Decl)
		assert.Same(t, s.Decl, got.Results[0].Base,
			"non-function metatype members use the type declaration as base")
	})

	t.Run("static function rerooted on self", func(t *testing.T) {
		// Static members are invisible through an instance receiver; a
		// static method context sees them through the metatype.
		staticMethod := &ast.FuncContext{
			Up:           s.Body,
			Body:         &ast.BraceStmt{Rng: rng(0, 100)},
			ReceiverType: s.Type,
			SelfDecl:     self,
			Static:       true,
		}
		got := lookup.NewUnqualifiedLookup("make", staticMethod, false, lookup.WithPosition(50))
		require.Len(t, got.Results, 1)
		assert.Equal(t, lookup.MetatypeMemberResult, got.Results[0].Kind)
		assert.Same(t, static, got.Results[0].Decl)
		assert.Same(t, self, got.Results[0].Base,
			"function metatype members use the receiver value as base")
	})
}

func TestUnqualifiedLookupInsideNominalBody(t *testing.T) {
	app := newModule("app")
	s := defineNominal(ast.Struct, "T", app)
	stored := s.member(varDecl("count", intType, nil))

	got := lookup.NewUnqualifiedLookup("count", s.Body, false)

	require.Len(t, got.Results, 1)
	assert.Equal(t, lookup.MemberPropertyResult, got.Results[0].Kind)
	assert.Same(t, stored, got.Results[0].Decl)
	assert.Same(t, s.Decl, got.Results[0].Base)
}

func TestUnqualifiedLookupGenericParams(t *testing.T) {
	app := newModule("app")
	u := &ast.Decl{Name: "U", Kind: ast.GenericParam}
	fn := &ast.FuncContext{
		Up:            app,
		Body:          &ast.BraceStmt{Rng: rng(0, 100)},
		GenericParams: []*ast.Decl{u},
	}

	got := lookup.NewUnqualifiedLookup("U", fn, false, lookup.WithPosition(50))

	require.Len(t, got.Results, 1)
	assert.Equal(t, lookup.LocalResult, got.Results[0].Kind, "generic parameters are local")
	assert.Same(t, u, got.Results[0].Decl)
}

func TestUnqualifiedLookupConstructorContext(t *testing.T) {
	app := newModule("app")
	s := defineNominal(ast.Struct, "T", app)
	_ = s.member(varDecl("count", intType, nil))

	self := varDecl("self", s.Type, nil)
	arg := varDecl("n", intType, nil)
	ctor := &ast.ConstructorContext{
		Up:       s.Body,
		Body:     &ast.BraceStmt{Rng: rng(0, 100)},
		Args:     &ast.TuplePattern{Fields: []ast.Pattern{&ast.NamedPattern{Decl: arg}}},
		SelfDecl: self,
	}

	t.Run("argument wins locally", func(t *testing.T) {
		got := lookup.NewUnqualifiedLookup("n", ctor, false, lookup.WithPosition(50))
		require.Len(t, got.Results, 1)
		assert.Equal(t, lookup.LocalResult, got.Results[0].Kind)
		assert.Same(t, arg, got.Results[0].Decl)
	})

	t.Run("member rerooted on implicit self", func(t *testing.T) {
		got := lookup.NewUnqualifiedLookup("count", ctor, false, lookup.WithPosition(50))
		require.Len(t, got.Results, 1)
		assert.Equal(t, lookup.MemberPropertyResult, got.Results[0].Kind)
		assert.Same(t, self, got.Results[0].Base)
	})
}

func TestUnqualifiedLookupTopLevelCode(t *testing.T) {
	app := newModule("app")
	topLocal := varDecl("x", intType, nil)
	app.AddTopLevel(&ast.BraceStmt{
		Rng:     rng(0, 100),
		Entries: []ast.BraceEntry{{Decl: topLocal}},
	})
	app.Put("x", varDecl("x", boolType, app))

	t.Run("position inside top-level code", func(t *testing.T) {
		got := lookup.NewUnqualifiedLookup("x", app, false, lookup.WithPosition(50))
		require.Len(t, got.Results, 1)
		assert.Equal(t, lookup.LocalResult, got.Results[0].Kind)
		assert.Same(t, topLocal, got.Results[0].Decl)
	})

	t.Run("no position skips local scanning", func(t *testing.T) {
		got := lookup.NewUnqualifiedLookup("x", app, false)
		require.Len(t, got.Results, 1)
		assert.Equal(t, lookup.ModuleMemberResult, got.Results[0].Kind)
	})
}

func TestUnqualifiedLookupOperatorSkipsLocalScopes(t *testing.T) {
	app := newModule("app")
	plus := funcDecl("+", fnType(&ast.TupleType{Elems: []ast.Type{intType, intType}}, intType), app)
	app.Put("+", plus)

	shadow := varDecl("+", intType, nil)
	fn := &ast.FuncContext{
		Up: app,
		Body: &ast.BraceStmt{
			Rng:     rng(0, 100),
			Entries: []ast.BraceEntry{{Decl: shadow}},
		},
	}

	got := lookup.NewUnqualifiedLookup("+", fn, false, lookup.WithPosition(50))

	require.Len(t, got.Results, 1)
	assert.Equal(t, lookup.ModuleMemberResult, got.Results[0].Kind)
	assert.Same(t, plus, got.Results[0].Decl, "operators resolve at module scope only")
}

func TestUnqualifiedLookupTypeOnly(t *testing.T) {
	app := newModule("app")
	app.Put("T", varDecl("T", intType, app))
	ty := defineNominal(ast.Struct, "T", app)
	app.Put("T", ty.Decl)

	got := lookup.NewUnqualifiedLookup("T", app, true)

	require.Len(t, got.Results, 1)
	assert.Same(t, ty.Decl, got.Results[0].Decl, "type lookups drop value results")
}

func TestUnqualifiedLookupSingleTypeResult(t *testing.T) {
	app := newModule("app")
	ty := defineNominal(ast.Struct, "T", app)
	app.Put("T", ty.Decl)
	app.Put("v", varDecl("v", intType, app))

	t.Run("single type", func(t *testing.T) {
		got := lookup.NewUnqualifiedLookup("T", app, true)
		assert.Same(t, ty.Decl, got.SingleTypeResult())
	})

	t.Run("value result", func(t *testing.T) {
		got := lookup.NewUnqualifiedLookup("v", app, false)
		assert.Nil(t, got.SingleTypeResult())
	})

	t.Run("no result", func(t *testing.T) {
		got := lookup.NewUnqualifiedLookup("missing", app, false)
		assert.Nil(t, got.SingleTypeResult())
	})
}

func TestUnqualifiedLookupMemberStopsChain(t *testing.T) {
	app := newModule("app")
	app.Put("count", varDecl("count", boolType, app))

	s := defineNominal(ast.Struct, "T", app)
	stored := s.member(varDecl("count", intType, nil))

	self := varDecl("self", s.Type, nil)
	method := &ast.FuncContext{
		Up:           s.Body,
		Body:         &ast.BraceStmt{Rng: rng(0, 100)},
		ReceiverType: s.Type,
		SelfDecl:     self,
	}

	got := lookup.NewUnqualifiedLookup("count", method, false, lookup.WithPosition(50))

	require.Len(t, got.Results, 1)
	assert.Same(t, stored, got.Results[0].Decl,
		"a successful member search stops before module scope")
}

func TestUnqualifiedLookupPositionRequiredForLocals(t *testing.T) {
	app := newModule("app")
	exported := varDecl("x", intType, app)
	app.Put("x", exported)

	local := varDecl("x", boolType, nil)
	fn := &ast.FuncContext{
		Up: app,
		Body: &ast.BraceStmt{
			Rng:     rng(0, 100),
			Entries: []ast.BraceEntry{{Decl: local}},
		},
	}

	got := lookup.NewUnqualifiedLookup("x", fn, false)

	require.Len(t, got.Results, 1)
	assert.Same(t, exported, got.Results[0].Decl,
		"without a position the local scanner does not run")
}
