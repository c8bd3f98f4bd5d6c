package source

// Pos is a byte offset into a source buffer.  Positions from the same buffer
// are totally ordered by their offset.
type Pos int

// NoPos is the zero-information position.  Lookups constructed without a
// position skip all position-sensitive local scanning.
const NoPos Pos = -1

// IsValid reports whether p refers to an actual source location.
func (p Pos) IsValid() bool { return p >= 0 }

// Range is a closed interval over source positions.
type Range struct {
	Start Pos
	End   Pos
}

// NewRange constructs the closed interval [start, end].
func NewRange(start, end Pos) Range {
	return Range{Start: start, End: end}
}

// Contains reports whether p falls within the range.  Containment is
// reflexive at both endpoints.
func (r Range) Contains(p Pos) bool {
	return r.Start <= p && p <= r.End
}
