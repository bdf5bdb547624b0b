// Package binder resolves identifier references to the patterns that bind
// them.
//
// Results are keyed by red node identity, which the red tree guarantees is
// stable: asking the tree for the same node twice yields the same pointer,
// so a reference looked up here and a node found by a later tree query
// agree.
package binder

import (
	"sort"

	"github.com/agnivade/levenshtein"

	"larch/internal/cst/red"
	"larch/internal/diag"
	"larch/internal/source"
)

// maxSuggestionDistance bounds the edit distance for did-you-mean notes.
const maxSuggestionDistance = 2

// Scope maps names to the patterns binding them. A name mapped to an
// empty slice is a builtin with no source location.
type Scope map[string][]*red.VariablePattern

// GlobalScope returns the names bound in every file.
func GlobalScope() Scope {
	return Scope{
		"map":    nil,
		"filter": nil,
		"print":  nil,
		"True":   nil,
		"False":  nil,
		"None":   nil,
	}
}

func (s Scope) extend(names map[string][]*red.VariablePattern) Scope {
	if len(names) == 0 {
		return s
	}
	next := make(Scope, len(s)+len(names))
	for k, v := range s {
		next[k] = v
	}
	for k, v := range names {
		next[k] = v
	}
	return next
}

// Bindings is the result of name resolution.
type Bindings struct {
	refs map[*red.IdentifierExpr][]*red.VariablePattern
}

// Get returns the patterns an identifier reference resolves to, nil when
// the name was unbound or a builtin.
func (b *Bindings) Get(ref *red.IdentifierExpr) []*red.VariablePattern {
	return b.refs[ref]
}

// Len returns the number of resolved references.
func (b *Bindings) Len() int {
	return len(b.refs)
}

// Bind resolves every identifier reference in the tree against the given
// global scope. Unbound names are reported with nearby-name suggestions.
func Bind(file *source.File, tree *red.SyntaxTree, global Scope, reporter diag.Reporter) *Bindings {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	b := &binder{
		file:     file,
		reporter: reporter,
		bindings: &Bindings{refs: make(map[*red.IdentifierExpr][]*red.VariablePattern)},
	}
	b.bindNode(tree, global)
	return b.bindings
}

type binder struct {
	file     *source.File
	reporter diag.Reporter
	bindings *Bindings
}

func (b *binder) bindNode(n red.Node, scope Scope) {
	switch n := n.(type) {
	case *red.IdentifierExpr:
		b.bindIdentifier(n, scope)

	case *red.LetExpr:
		// Parameters are visible in the value, the bound name only in the
		// body. (Recursive bindings would change this.)
		if value := n.NValue(); value != nil {
			b.bindNode(value, scope.extend(valueScopeNames(n)))
		}
		if body := n.NBody(); body != nil {
			b.bindNode(body, scope.extend(bodyScopeNames(n)))
		}

	default:
		for _, c := range n.Children() {
			b.bindNode(c, scope)
		}
	}
}

func (b *binder) bindIdentifier(ref *red.IdentifierExpr, scope Scope) {
	t := ref.TIdentifier()
	if t == nil {
		return
	}
	name := t.Text

	if patterns, ok := scope[name]; ok {
		if patterns != nil {
			b.bindings.refs[ref] = patterns
		}
		return
	}

	r := ref.OffsetRange()
	d := diag.NewError(diag.SemaUnboundName,
		source.Span{File: b.file.ID, Start: uint32(r.Start), End: uint32(r.End)},
		"I couldn't find a binding in the current scope with the name '"+name+"'.")
	for _, note := range b.suggestionNotes(name, scope) {
		d = d.WithNote(note.Span, note.Msg)
	}
	b.reporter.Report(d.Code, d.Severity, d.Primary, d.Message, d.Notes)
}

// suggestionNotes builds did-you-mean notes for scope names within editing
// distance, sorted so output is deterministic.
func (b *binder) suggestionNotes(name string, scope Scope) []diag.Note {
	var candidates []string
	for candidate := range scope {
		if levenshtein.ComputeDistance(name, candidate) <= maxSuggestionDistance {
			candidates = append(candidates, candidate)
		}
	}
	sort.Strings(candidates)

	notes := make([]diag.Note, 0, len(candidates))
	for _, candidate := range candidates {
		patterns := scope[candidate]
		if len(patterns) > 0 {
			r := patterns[0].OffsetRange()
			notes = append(notes, diag.Note{
				Span: source.Span{File: b.file.ID, Start: uint32(r.Start), End: uint32(r.End)},
				Msg:  "Did you mean '" + candidate + "', defined here?",
			})
		} else {
			notes = append(notes, diag.Note{
				Msg: "Did you mean '" + candidate + "' (a builtin)?",
			})
		}
	}
	return notes
}

// valueScopeNames returns the names a let-binding's value can see beyond
// the enclosing scope: its parameters, for function bindings.
func valueScopeNames(n *red.LetExpr) map[string][]*red.VariablePattern {
	params := n.NParameterList()
	if params == nil {
		return nil
	}
	names := make(map[string][]*red.VariablePattern)
	for _, param := range params.Parameters() {
		addPatternNames(names, param.NPattern())
	}
	return names
}

func bodyScopeNames(n *red.LetExpr) map[string][]*red.VariablePattern {
	pattern := n.NPattern()
	if pattern == nil {
		return nil
	}
	names := make(map[string][]*red.VariablePattern)
	addPatternNames(names, pattern)
	return names
}

func addPatternNames(names map[string][]*red.VariablePattern, pattern red.Pattern) {
	switch pattern := pattern.(type) {
	case nil:
	case *red.VariablePattern:
		if t := pattern.TIdentifier(); t != nil {
			names[t.Text] = []*red.VariablePattern{pattern}
		}
	}
}
