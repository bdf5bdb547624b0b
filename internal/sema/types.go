// Package sema typechecks bound syntax trees.
//
// The type language is deliberately small: 'int', 'none', and function
// types over them. Unannotated parameters get the unknown type, which is
// compatible with everything, so partial programs check without cascading
// errors.
package sema

import "strings"

// Ty is a type in the checker's type language.
type Ty interface {
	String() string
	isTy()
}

// BaseTy is a named primitive type.
type BaseTy string

const (
	IntTy  BaseTy = "int"
	NoneTy BaseTy = "none"
)

func (t BaseTy) String() string { return string(t) }
func (BaseTy) isTy()            {}

// UnknownTy is the type of expressions the checker cannot pin down:
// unannotated parameters, unresolved names, and subexpressions that
// already failed. It is compatible with every type.
type UnknownTy struct{}

func (UnknownTy) String() string { return "unknown" }
func (UnknownTy) isTy()          {}

// FnTy is a function type.
type FnTy struct {
	Params []Ty
	Result Ty
}

func (t FnTy) String() string {
	params := make([]string, len(t.Params))
	for i, p := range t.Params {
		params[i] = p.String()
	}
	return "(" + strings.Join(params, ", ") + ") -> " + t.Result.String()
}

func (FnTy) isTy() {}

// compatible reports whether a value of type 'have' can be used where
// 'want' is expected. Unknown is compatible in both directions.
func compatible(have, want Ty) bool {
	if _, ok := have.(UnknownTy); ok {
		return true
	}
	if _, ok := want.(UnknownTy); ok {
		return true
	}
	switch want := want.(type) {
	case BaseTy:
		have, ok := have.(BaseTy)
		return ok && have == want
	case FnTy:
		have, ok := have.(FnTy)
		if !ok || len(have.Params) != len(want.Params) {
			return false
		}
		for i := range want.Params {
			if !compatible(want.Params[i], have.Params[i]) {
				return false
			}
		}
		return compatible(have.Result, want.Result)
	}
	return false
}
