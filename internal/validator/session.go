// Package validator matches an XML document tree against a Relax NG
// pattern and annotates problematic nodes (§4.3). A Session caches one
// grammar's define table and start pattern and is reused across
// documents, mirroring the teacher's Engine/Session pairing in
// engine.go: cheap to construct, unsafe to share across goroutines.
package validator

import (
	"github.com/go-relaxng/relaxng/internal/ast"

	rngerrors "github.com/go-relaxng/relaxng/errors"
)

// NodeKind discriminates the XMLNode family (§4.3 Inputs).
type NodeKind uint8

const (
	NodeElement NodeKind = iota
	NodeText
	NodeOther
)

// XMLNode is a document node handed to the validator: an element, a text
// node, or "other" (comments, processing instructions — not element, not
// text). Problems accumulates diagnostics annotated during matching, in
// the order they were committed.
type XMLNode struct {
	Kind     NodeKind
	Name     string
	Attrs    map[string]string
	Children []*XMLNode
	Value    string
	Problems []string
}

// Problem is one entry of a CollectProblems walk: the offending node, its
// element-name path from the walk root, and the diagnostic message.
type Problem struct {
	Node    *XMLNode
	Path    string
	Message string
}

// Session wraps one grammar's define table and start pattern for repeated
// validation against many documents.
type Session struct {
	root   *ast.Root
	start  []*ast.Pattern
	byName map[string][]*ast.Pattern
}

// NewSession builds a Session over root, indexing every define by name.
// root need not be in simple form — the matcher dispatches on both the
// as-authored and the simplified pattern kinds (see SPEC_FULL.md §4.3).
// A root whose pattern is not a grammar uses that pattern as the start.
func NewSession(root *ast.Root) *Session {
	s := &Session{root: root, byName: map[string][]*ast.Pattern{}}
	if root == nil || root.Pattern == nil {
		return s
	}
	top := root.Pattern
	if top.Kind != ast.GrammarPattern {
		s.start = []*ast.Pattern{top}
		return s
	}
	for _, gc := range top.Content {
		if gc.Kind == ast.StartContent {
			if s.start == nil {
				s.start = gc.Patterns
			}
			continue
		}
		s.byName[gc.Name] = gc.Patterns
	}
	return s
}

// unknownRefPanic signals a ref/parentRef naming a define the grammar
// does not declare — spec.md §4.3 calls this "a fatal implementation
// error"; run recovers it and converts it to a tier-1 structural error.
type unknownRefPanic struct{ name string }

// interleaveUnsupportedPanic signals the single largest open item in
// §4.1: interleave matching is not implemented.
type interleaveUnsupportedPanic struct{}

// Validate matches doc against the grammar's start pattern. The returned
// bool is "plausible" (§4.3): the shape could be matched, not that the
// document is defect-free — defects surface as annotations collectible
// via CollectProblems. err is non-nil only for the two implementation-
// level failures the core matcher cannot recover from on its own:
// an unknown ref/parentRef, or an interleave pattern.
func (s *Session) Validate(doc *XMLNode) (bool, error) {
	return s.run(doc, s.start)
}

// ValidateNode matches target against a single pattern, annotating the
// tree exactly as Validate does.
func (s *Session) ValidateNode(target *XMLNode, pattern *ast.Pattern) (bool, error) {
	return s.run(target, []*ast.Pattern{pattern})
}

func (s *Session) run(node *XMLNode, patterns []*ast.Pattern) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			switch v := r.(type) {
			case unknownRefPanic:
				ok, err = false, rngerrors.UnknownDefinition(v.name)
			case interleaveUnsupportedPanic:
				ok, err = false, rngerrors.UnsupportedConstruct("interleave")
			default:
				panic(r)
			}
		}
	}()

	ctx := context{node: node, children: []*XMLNode{node}, attrs: nil}
	matched, _, diags := s.match(ctx, patterns)
	if !matched && node.Kind == NodeElement {
		// The public entry point matched the document's own root against
		// the top pattern: a name mismatch here means the whole document
		// was the wrong shape, not just one child among siblings, so it
		// additionally gets flagged as unexpected in its own right (§8
		// element-name-agreement law).
		diags = append(diags, diagnostic{node, rngerrors.UnexpectedElem(node.Name)})
	}
	s.commit(diags)
	return matched, nil
}

// commit writes accumulated diagnostics onto their owning nodes. Called
// once the outcome for a match call is decided, never mid-backtrack —
// see the backtracking discipline note in match.go.
func (s *Session) commit(diags []diagnostic) {
	for _, d := range diags {
		d.node.Problems = append(d.node.Problems, d.message)
	}
}

// CollectProblems gathers a node's own annotations and, when recursive,
// its descendants', in document order, each tagged with a slash-
// separated element-name path from node.
func (s *Session) CollectProblems(node *XMLNode, recursive bool) []Problem {
	if node == nil {
		return nil
	}
	return collectProblems(node, node.Name, recursive)
}

func collectProblems(node *XMLNode, path string, recursive bool) []Problem {
	var out []Problem
	for _, m := range node.Problems {
		out = append(out, Problem{Node: node, Path: path, Message: m})
	}
	if recursive {
		for _, c := range node.Children {
			childPath := path
			if c.Kind == NodeElement {
				if childPath != "" {
					childPath += "/"
				}
				childPath += c.Name
			}
			out = append(out, collectProblems(c, childPath, true)...)
		}
	}
	return out
}
