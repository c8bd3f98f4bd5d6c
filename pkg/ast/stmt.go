package ast

import "github.com/reef-lang/reef/pkg/source"

// Stmt is the closed set of statement shapes the local-scope scanner walks.
type Stmt interface {
	// Range is the full textual extent of the statement.
	Range() source.Range

	stmtNode()
}

// BraceEntry is one element of a brace statement: either a nested statement
// or a declaration.  Exactly one field is set.
type BraceEntry struct {
	Stmt Stmt
	Decl *Decl
}

// BraceStmt is a braced statement block.
type BraceStmt struct {
	Rng     source.Range
	Entries []BraceEntry
}

func (s *BraceStmt) stmtNode() {}
func (s *BraceStmt) Range() source.Range { return s.Rng }

// IfStmt is a conditional with an optional else branch.
type IfStmt struct {
	Rng  source.Range
	Then Stmt
	Else Stmt
}

func (s *IfStmt) stmtNode() {}
func (s *IfStmt) Range() source.Range { return s.Rng }

// WhileStmt is a pre-test loop.
type WhileStmt struct {
	Rng  source.Range
	Body Stmt
}

func (s *WhileStmt) stmtNode() {}
func (s *WhileStmt) Range() source.Range { return s.Rng }

// RepeatStmt is a post-test loop.
type RepeatStmt struct {
	Rng  source.Range
	Body Stmt
}

func (s *RepeatStmt) stmtNode() {}
func (s *RepeatStmt) Range() source.Range { return s.Rng }

// ForStmt is a C-style loop whose initializer introduces bindings.
type ForStmt struct {
	Rng  source.Range
	Init []*Decl
	Body Stmt
}

func (s *ForStmt) stmtNode() {}
func (s *ForStmt) Range() source.Range { return s.Rng }

// ForEachStmt is an iteration loop binding a pattern per element.
type ForEachStmt struct {
	Rng     source.Range
	Pattern Pattern
	Body    Stmt
}

func (s *ForEachStmt) stmtNode() {}
func (s *ForEachStmt) Range() source.Range { return s.Rng }

// SwitchStmt is a multi-way branch over cases.
type SwitchStmt struct {
	Rng   source.Range
	Cases []*CaseStmt
}

func (s *SwitchStmt) stmtNode() {}
func (s *SwitchStmt) Range() source.Range { return s.Rng }

// CaseStmt is a single switch case.
type CaseStmt struct {
	Rng  source.Range
	Body Stmt
}

func (s *CaseStmt) stmtNode() {}
func (s *CaseStmt) Range() source.Range { return s.Rng }

// ReturnStmt, BreakStmt, ContinueStmt and FallthroughStmt are leaf
// statements that introduce no bindings.
type ReturnStmt struct{ Rng source.Range }

func (s *ReturnStmt) stmtNode() {}
func (s *ReturnStmt) Range() source.Range { return s.Rng }

type BreakStmt struct{ Rng source.Range }

func (s *BreakStmt) stmtNode() {}
func (s *BreakStmt) Range() source.Range { return s.Rng }

type ContinueStmt struct{ Rng source.Range }

func (s *ContinueStmt) stmtNode() {}
func (s *ContinueStmt) Range() source.Range { return s.Rng }

type FallthroughStmt struct{ Rng source.Range }

func (s *FallthroughStmt) stmtNode() {}
func (s *FallthroughStmt) Range() source.Range { return s.Rng }
