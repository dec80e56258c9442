// Package simplify implements the 8 ordered passes (§4.1) that reduce an
// arbitrary in-spec Relax NG grammar to its simple form. Pass order is
// fixed and load-bearing (§9): Run composes the passes as a literal
// sequence rather than a registry, mirroring the teacher's
// internal/pipeline.Prepare wiring its stages in a fixed chain.
package simplify

import "github.com/go-relaxng/relaxng/internal/ast"

// Run reduces root to simple form, running all 8 passes in order. The
// result still needs to pass internal/checker before a caller may rely
// on the simple-form invariants (§3); Run itself does not verify them.
func Run(root *ast.Root) (*ast.Root, error) {
	root = liftName(root)
	root = arityNormalize(root)
	root = removeMixedOptionalZeroOrMore(root)

	root, err := eliminateCombine(root)
	if err != nil {
		return nil, err
	}

	root, err = singleGrammar(root)
	if err != nil {
		return nil, err
	}

	root = canonicalDefineElement(root)
	root = limitNotAllowed(root)
	root = avoidEmpty(root)

	return root, nil
}
