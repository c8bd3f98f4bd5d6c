package lookup

import (
	"github.com/reef-lang/reef/pkg/ast"
	"github.com/reef-lang/reef/pkg/collections"
)

// RemoveShadowed strips declarations from decls that are shadowed by another
// declaration in the list with an identical structural signature.  Within one
// module a primary-body declaration shadows an extension declaration; across
// modules a declaration owned by cur shadows one owned by any other module.
// Ties neither rule decides are left ambiguous and both declarations survive.
// Survivors keep their input order, and the result is a fixed point: running
// the function on its own output changes nothing.
func RemoveShadowed(decls []*ast.Decl, typeLookup bool, cur ast.Module) []*ast.Decl {
	// Bucket declarations by signature.  Declarations with no computable
	// signature never collide with anything.
	bySignature := make(map[string][]*ast.Decl)
	anyCollisions := false
	for _, d := range decls {
		sig := d.Signature(typeLookup)
		if sig == "" {
			continue
		}
		group := append(bySignature[sig], d)
		if len(group) > 1 {
			anyCollisions = true
		}
		bySignature[sig] = group
	}
	if !anyCollisions {
		return decls
	}

	shadowed := collections.NewSet[*ast.Decl]()
	for _, group := range bySignature {
		if len(group) == 1 {
			continue
		}

		// Compare each declaration against every later one.  Quadratic in
		// the group size, but same-signature groups stay small.
		for i := 0; i < len(group); i++ {
			first := group[i]
			firstExt := inExtension(first)
			firstModule := first.Module()
			for j := i + 1; j < len(group); j++ {
				second := group[j]
				secondModule := second.Module()

				if firstModule == secondModule {
					// Same module: the primary type body wins over an
					// extension.  If both or neither are extensions this
					// rule decides nothing.
					secondExt := inExtension(second)
					if firstExt == secondExt {
						continue
					}
					if secondExt {
						shadowed.Add(second)
						continue
					}
					// first lost to second; it cannot win against anything
					// later either.
					shadowed.Add(first)
					break
				}

				// Across modules: the current module wins.  Two foreign
				// modules do not decide.
				if (firstModule == cur) == (secondModule == cur) {
					continue
				}
				if firstModule == cur {
					shadowed.Add(second)
					continue
				}
				shadowed.Add(first)
				break
			}
		}
	}
	if shadowed.Len() == 0 {
		return decls
	}

	kept := make([]*ast.Decl, 0, len(decls)-shadowed.Len())
	for _, d := range decls {
		if !shadowed.Contains(d) {
			kept = append(kept, d)
		}
	}
	return kept
}

func inExtension(d *ast.Decl) bool {
	_, ok := d.Context.(*ast.ExtensionContext)
	return ok
}
