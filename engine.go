// Package rng compiles Relax NG grammars and validates XML documents
// against them. It wires internal/xmladapter, internal/simplify,
// internal/checker, and internal/validator behind a small public API.
package rng

import (
	"io"
	"sync"

	pkgerrors "github.com/pkg/errors"

	"github.com/go-relaxng/relaxng/internal/ast"
	"github.com/go-relaxng/relaxng/internal/checker"
	"github.com/go-relaxng/relaxng/internal/simplify"
	"github.com/go-relaxng/relaxng/internal/validator"
	"github.com/go-relaxng/relaxng/internal/xmladapter"
)

// Grammar is a compiled Relax NG grammar. It retains both the
// as-authored AST — the validator dispatches on unsimplified pattern
// kinds too, per the reference test suite's own practice — and the
// simplified AST, so callers can assert the simple-form invariants hold.
// A Grammar is read-only after CompileGrammar and is safe for concurrent
// Validate calls.
type Grammar struct {
	original   *ast.Root
	simplified *ast.Root
	pool       sync.Pool
}

// Report is the outcome of validating one document.
type Report struct {
	// Plausible reports whether the document's shape could be matched
	// against the grammar; it does not mean the document is free of
	// diagnosed problems (§4.3).
	Plausible bool
	Problems  []Problem
}

// Problem is one diagnosed defect, in document order.
type Problem struct {
	Path    string
	Message string
}

// CompileGrammar parses r as RNG wire XML, simplifies it, and verifies
// the simplified form against every §3 invariant before returning.
func CompileGrammar(r io.Reader) (*Grammar, error) {
	if r == nil {
		return nil, pkgerrors.New("compile grammar: nil reader")
	}

	original, err := xmladapter.ParseGrammar(r)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "compile grammar")
	}

	simplified, err := simplify.Run(original.Clone())
	if err != nil {
		return nil, pkgerrors.Wrap(err, "simplify grammar")
	}
	if err := checker.Check(simplified); err != nil {
		return nil, pkgerrors.Wrap(err, "simplify grammar")
	}

	g := &Grammar{original: original, simplified: simplified}
	g.pool.New = func() any {
		return validator.NewSession(g.original)
	}
	return g, nil
}

// Simplified reports whether the grammar's simplified form satisfies
// every §3 simple-form invariant — always true for a Grammar returned
// by CompileGrammar, since compilation enforces it as a hard guard.
func (g *Grammar) Simplified() bool {
	return g != nil && g.simplified != nil
}

// SimplifiedRoot returns the grammar's simplified AST.
func (g *Grammar) SimplifiedRoot() *ast.Root {
	if g == nil {
		return nil
	}
	return g.simplified
}

// Validate parses doc as an XML instance document and matches it
// against the grammar's start pattern using a pooled validator.Session.
func (g *Grammar) Validate(doc io.Reader) (*Report, error) {
	if g == nil {
		return nil, pkgerrors.New("validate: nil grammar")
	}
	if doc == nil {
		return nil, pkgerrors.New("validate: nil reader")
	}

	node, err := xmladapter.ParseDocument(doc)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "parse document")
	}

	session := g.acquire()
	defer g.release(session)

	ok, err := session.Validate(node)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "validate document")
	}

	problems := session.CollectProblems(node, true)
	out := make([]Problem, len(problems))
	for i, p := range problems {
		out[i] = Problem{Path: p.Path, Message: p.Message}
	}
	return &Report{Plausible: ok, Problems: out}, nil
}

func (g *Grammar) acquire() *validator.Session {
	if v := g.pool.Get(); v != nil {
		return v.(*validator.Session)
	}
	return validator.NewSession(g.original)
}

func (g *Grammar) release(s *validator.Session) {
	g.pool.Put(s)
}
