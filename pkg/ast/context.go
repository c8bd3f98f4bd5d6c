package ast

// Context is a node in the lexical nesting chain.  The chain is parent-linked
// and terminates at a Module.  Every non-module variant is declared in this
// package; modules are supplied by the embedder (see Module).
type Context interface {
	// Parent returns the enclosing context, nil at a module.
	Parent() Context
}

// ModuleOf walks the context chain outward and returns the terminating
// module, or nil if the chain is detached.
func ModuleOf(c Context) Module {
	for c != nil {
		if m, ok := c.(Module); ok {
			return m
		}
		c = c.Parent()
	}
	return nil
}

// FuncContext is the body context of a named function or method.
type FuncContext struct {
	// Up is the enclosing context.
	Up Context
	// Decl is the function declaration, nil for synthesized functions.
	Decl *Decl
	// Body is the function body.
	Body *BraceStmt
	// Params are the parameter patterns.
	Params []Pattern
	// GenericParams are the function's generic parameter declarations.
	GenericParams []*Decl
	// ReceiverType is non-nil for methods: the type whose member the
	// function is (the extended type when declared in an extension).
	ReceiverType Type
	// SelfDecl is the implicit receiver declaration of a method.
	SelfDecl *Decl
	// Static marks a type-level method; its implicit receiver is the
	// metatype.
	Static bool
}

func (c *FuncContext) Parent() Context { return c.Up }

// ClosureContext is the body context of a closure expression.
type ClosureContext struct {
	Up     Context
	Body   *BraceStmt
	Params Pattern
}

func (c *ClosureContext) Parent() Context { return c.Up }

// ConstructorContext is the body context of an initializer declaration.
type ConstructorContext struct {
	Up       Context
	Body     *BraceStmt
	Args     Pattern
	SelfDecl *Decl
}

func (c *ConstructorContext) Parent() Context { return c.Up }

// DestructorContext is the body context of a destructor declaration.
type DestructorContext struct {
	Up       Context
	Body     *BraceStmt
	Args     Pattern
	SelfDecl *Decl
}

func (c *DestructorContext) Parent() Context { return c.Up }

// NominalContext is the primary body of a type declaration.
type NominalContext struct {
	Up Context
	// Decl is the struct, class, enum or protocol being declared.
	Decl *Decl
}

func (c *NominalContext) Parent() Context { return c.Up }

// ExtensionContext is an extension body attaching members to an existing
// nominal type.  Extensions are visible program-wide but owned by the module
// that declared them.
type ExtensionContext struct {
	Up Context
	// Extended is the nominal type being extended.
	Extended Type
	// Members are the declarations the extension attaches.
	Members []*Decl
}

func (c *ExtensionContext) Parent() Context { return c.Up }
