package ast

// Pattern is the closed set of binding pattern shapes.
type Pattern interface {
	patternNode()
}

// NamedPattern binds a single declaration.
type NamedPattern struct {
	Decl *Decl
}

func (p *NamedPattern) patternNode() {}

// TuplePattern destructures a tuple into field sub-patterns.
type TuplePattern struct {
	Fields []Pattern
}

func (p *TuplePattern) patternNode() {}

// ParenPattern wraps a sub-pattern in parentheses.
type ParenPattern struct {
	Sub Pattern
}

func (p *ParenPattern) patternNode() {}

// TypedPattern annotates a sub-pattern with a type.
type TypedPattern struct {
	Sub  Pattern
	Type Type
}

func (p *TypedPattern) patternNode() {}

// AnyPattern is the wildcard pattern; it contributes no binding.
type AnyPattern struct{}

func (p *AnyPattern) patternNode() {}
