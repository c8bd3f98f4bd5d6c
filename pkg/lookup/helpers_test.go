package lookup_test

import (
	"github.com/reef-lang/reef/pkg/ast"
	"github.com/reef-lang/reef/pkg/modindex"
)

// Builtin value types used to give declarations distinct signatures.
var (
	intType    = &ast.BuiltinType{Name: "Int"}
	boolType   = &ast.BuiltinType{Name: "Bool"}
	stringType = &ast.BuiltinType{Name: "String"}
)

func fnType(param, result ast.Type) *ast.FuncType {
	return &ast.FuncType{Params: param, Result: result}
}

func varDecl(name string, ty ast.Type, ctx ast.Context) *ast.Decl {
	return &ast.Decl{Name: name, Kind: ast.Var, Type: ty, Context: ctx}
}

func funcDecl(name string, ty ast.Type, ctx ast.Context) *ast.Decl {
	return &ast.Decl{Name: name, Kind: ast.Func, Type: ty, Context: ctx}
}

func staticFuncDecl(name string, ty ast.Type, ctx ast.Context) *ast.Decl {
	d := funcDecl(name, ty, ctx)
	d.Static = true
	return d
}

// nominalFixture bundles a nominal declaration with its declared type and
// primary body context.
type nominalFixture struct {
	Decl *ast.Decl
	Type *ast.NominalType
	Body *ast.NominalContext
}

func defineNominal(kind ast.Kind, name string, ctx ast.Context) *nominalFixture {
	d := &ast.Decl{Name: name, Kind: kind, Context: ctx, Nominal: &ast.NominalInfo{}}
	ty := &ast.NominalType{Decl: d}
	d.Declared = ty
	return &nominalFixture{
		Decl: d,
		Type: ty,
		Body: &ast.NominalContext{Up: ctx, Decl: d},
	}
}

// member attaches d to the primary type body.
func (f *nominalFixture) member(d *ast.Decl) *ast.Decl {
	d.Context = f.Body
	f.Decl.Nominal.Members = append(f.Decl.Nominal.Members, d)
	return d
}

// extend attaches an extension declared in module m.
func (f *nominalFixture) extend(m ast.Module, members ...*ast.Decl) *ast.ExtensionContext {
	ext := &ast.ExtensionContext{Up: m, Extended: f.Type}
	for _, d := range members {
		d.Context = ext
	}
	ext.Members = members
	f.Decl.Nominal.Extensions = append(f.Decl.Nominal.Extensions, ext)
	return ext
}

// protocolFixture bundles a protocol declaration with its type and body
// context.
type protocolFixture struct {
	Decl *ast.Decl
	Type *ast.ProtocolType
	Body *ast.NominalContext
}

func defineProtocol(name string, ctx ast.Context) *protocolFixture {
	d := &ast.Decl{Name: name, Kind: ast.Protocol, Context: ctx, Protocol: &ast.ProtocolInfo{}}
	ty := &ast.ProtocolType{Decl: d}
	d.Declared = ty
	return &protocolFixture{
		Decl: d,
		Type: ty,
		Body: &ast.NominalContext{Up: ctx, Decl: d},
	}
}

func (f *protocolFixture) inherit(parents ...*protocolFixture) {
	for _, p := range parents {
		f.Decl.Protocol.Inherited = append(f.Decl.Protocol.Inherited, p.Type)
	}
}

// requirement attaches a requirement declaration to the protocol body.
func (f *protocolFixture) requirement(d *ast.Decl) *ast.Decl {
	d.Context = f.Body
	f.Decl.Protocol.Members = append(f.Decl.Protocol.Members, d)
	return d
}

func newModule(name string, opts ...modindex.Option) *modindex.Index {
	return modindex.NewIndex(name, opts...)
}

func declNames(decls []*ast.Decl) []string {
	names := make([]string, len(decls))
	for i, d := range decls {
		names[i] = d.Name
	}
	return names
}
