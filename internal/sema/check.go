package sema

import (
	"fmt"

	"larch/internal/binder"
	"larch/internal/cst/red"
	"larch/internal/diag"
	"larch/internal/source"
)

// Result holds the types assigned during checking, keyed by red node
// identity.
type Result struct {
	ExprTypes    map[red.Expr]Ty
	PatternTypes map[*red.VariablePattern]Ty
}

// TyOf returns the type assigned to an expression, unknown if the
// expression was absent or never visited.
func (r *Result) TyOf(expr red.Expr) Ty {
	if t, ok := r.ExprTypes[expr]; ok {
		return t
	}
	return UnknownTy{}
}

// Check typechecks the tree. Name resolution must already have run; the
// checker reads bindings rather than re-resolving scopes.
func Check(file *source.File, tree *red.SyntaxTree, bindings *binder.Bindings, reporter diag.Reporter) *Result {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	c := &checker{
		file:     file,
		bindings: bindings,
		reporter: reporter,
		result: &Result{
			ExprTypes:    make(map[red.Expr]Ty),
			PatternTypes: make(map[*red.VariablePattern]Ty),
		},
	}
	if expr := tree.NExpr(); expr != nil {
		c.infer(expr)
	}
	return c.result
}

type checker struct {
	file     *source.File
	bindings *binder.Bindings
	reporter diag.Reporter
	result   *Result
}

func builtinTy(name string) (Ty, bool) {
	switch name {
	case "print":
		return FnTy{Params: []Ty{IntTy}, Result: NoneTy}, true
	case "True", "False":
		return IntTy, true
	case "None":
		return NoneTy, true
	case "map", "filter":
		// Polymorphic builtins; the type language can't express them.
		return UnknownTy{}, true
	}
	return nil, false
}

func (c *checker) spanOf(n red.Node) source.Span {
	r := n.OffsetRange()
	return source.Span{File: c.file.ID, Start: uint32(r.Start), End: uint32(r.End)}
}

func (c *checker) errorAt(code diag.Code, n red.Node, msg string) {
	c.reporter.Report(code, diag.SevError, c.spanOf(n), msg, nil)
}

// infer computes an expression's type bottom-up, recording it in the
// result. A nil expression (an absent slot) is unknown and reports
// nothing; the parser already complained about it.
func (c *checker) infer(expr red.Expr) Ty {
	if expr == nil {
		return UnknownTy{}
	}
	ty := c.inferUncached(expr)
	c.result.ExprTypes[expr] = ty
	return ty
}

func (c *checker) inferUncached(expr red.Expr) Ty {
	switch expr := expr.(type) {
	case *red.IntLiteralExpr:
		return IntTy

	case *red.IdentifierExpr:
		return c.inferIdentifier(expr)

	case *red.LetExpr:
		return c.inferLet(expr)

	case *red.BinaryExpr:
		c.checkAgainst(expr.NLhs(), IntTy)
		c.checkAgainst(expr.NRhs(), IntTy)
		return IntTy

	case *red.IfExpr:
		return c.inferIf(expr)

	case *red.FunctionCallExpr:
		return c.inferCall(expr)
	}
	panic(fmt.Sprintf("sema: unknown expression kind %T", expr))
}

func (c *checker) inferIdentifier(expr *red.IdentifierExpr) Ty {
	if patterns := c.bindings.Get(expr); len(patterns) > 0 {
		if ty, ok := c.result.PatternTypes[patterns[0]]; ok {
			return ty
		}
		return UnknownTy{}
	}
	t := expr.TIdentifier()
	if t == nil {
		return UnknownTy{}
	}
	if ty, ok := builtinTy(t.Text); ok {
		return ty
	}
	// Unbound; the binder already reported it.
	return UnknownTy{}
}

func (c *checker) inferLet(expr *red.LetExpr) Ty {
	var valueTy Ty = UnknownTy{}
	if params := expr.NParameterList(); params != nil {
		// Function binding: parameters are unannotated, so each gets the
		// unknown type, and the value is the function's result.
		paramTys := make([]Ty, 0, len(params.Parameters()))
		for _, param := range params.Parameters() {
			if p, ok := param.NPattern().(*red.VariablePattern); ok && p != nil {
				c.result.PatternTypes[p] = UnknownTy{}
			}
			paramTys = append(paramTys, UnknownTy{})
		}
		valueTy = FnTy{Params: paramTys, Result: c.infer(expr.NValue())}
	} else if expr.NValue() != nil {
		valueTy = c.infer(expr.NValue())
	}

	if p, ok := expr.NPattern().(*red.VariablePattern); ok && p != nil {
		c.result.PatternTypes[p] = valueTy
	}

	if body := expr.NBody(); body != nil {
		return c.infer(body)
	}
	// A naked let evaluates to nothing.
	return NoneTy
}

func (c *checker) inferIf(expr *red.IfExpr) Ty {
	if cond := expr.NCondition(); cond != nil {
		condTy := c.infer(cond)
		if !compatible(condTy, IntTy) {
			c.errorAt(diag.SemaConditionNotInt, cond, fmt.Sprintf(
				"I was expecting this condition to have type 'int', "+
					"but it has type '%s'.", condTy))
		}
	}

	thenTy := c.infer(expr.NThen())
	if expr.NElse() == nil {
		// An if without an else evaluates to none when the condition
		// fails, so the branches cannot have a useful common type.
		return NoneTy
	}
	elseTy := c.infer(expr.NElse())
	if !compatible(elseTy, thenTy) {
		c.errorAt(diag.SemaIncompatibleTypes, expr.NElse(), fmt.Sprintf(
			"I was expecting this else branch to have type '%s' to match "+
				"the then branch, but it has type '%s'.", thenTy, elseTy))
		return UnknownTy{}
	}
	return thenTy
}

func (c *checker) inferCall(expr *red.FunctionCallExpr) Ty {
	calleeTy := c.infer(expr.NReceiver())

	var args []*red.Argument
	if list := expr.NArgumentList(); list != nil {
		args = list.Arguments()
	}

	switch calleeTy := calleeTy.(type) {
	case UnknownTy:
		for _, arg := range args {
			c.infer(arg.NExpr())
		}
		return UnknownTy{}

	case FnTy:
		if len(args) != len(calleeTy.Params) {
			c.errorAt(diag.SemaWrongArgumentCount, expr, fmt.Sprintf(
				"I was expecting %d argument(s) for this call, but got %d.",
				len(calleeTy.Params), len(args)))
			// Still check as many arguments as line up.
		}
		for i, arg := range args {
			if i < len(calleeTy.Params) {
				c.checkAgainst(arg.NExpr(), calleeTy.Params[i])
			} else {
				c.infer(arg.NExpr())
			}
		}
		return calleeTy.Result

	default:
		if recv := expr.NReceiver(); recv != nil {
			c.errorAt(diag.SemaNotAFunction, recv, fmt.Sprintf(
				"This expression has type '%s', which is not a function "+
					"type, so I can't call it.", calleeTy))
		}
		for _, arg := range args {
			c.infer(arg.NExpr())
		}
		return UnknownTy{}
	}
}

// checkAgainst infers the expression's type and reports if it is not
// usable where 'want' is expected.
func (c *checker) checkAgainst(expr red.Expr, want Ty) {
	if expr == nil {
		return
	}
	have := c.infer(expr)
	if !compatible(have, want) {
		c.errorAt(diag.SemaIncompatibleTypes, expr, fmt.Sprintf(
			"I was expecting this expression to have type '%s', "+
				"but it has type '%s'.", want, have))
	}
}
