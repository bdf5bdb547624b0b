package diag

import (
	"fmt"
)

// Code identifies a diagnostic kind. Codes are grouped in bands by phase:
// 1000s lexical, 2000s syntactic, 3000s semantic.
type Code uint16

const (
	// UnknownCode is the zero value; real diagnostics never use it.
	UnknownCode Code = 0

	// Lexical.
	LexInvalidToken   Code = 1000
	LexLengthMismatch Code = 1001

	// Syntactic.
	SynUnexpectedToken       Code = 2001
	SynLengthMismatch        Code = 2002
	SynExpectedExpression    Code = 2010
	SynExpectedLParen        Code = 2011
	SynExpectedRParen        Code = 2012
	SynExpectedPattern       Code = 2013
	SynExpectedEquals        Code = 2014
	SynExpectedDummyIn       Code = 2015
	SynExpectedLetExpression Code = 2016
	SynExpectedComma         Code = 2017
	SynExpectedThen          Code = 2018
	SynExpectedEndif         Code = 2019

	// Semantic.
	SemaUnboundName        Code = 3000
	SemaIncompatibleTypes  Code = 3010
	SemaNotAFunction       Code = 3011
	SemaWrongArgumentCount Code = 3012
	SemaConditionNotInt    Code = 3013
)

var codeDescription = map[Code]string{
	UnknownCode:              "unknown diagnostic",
	LexInvalidToken:          "invalid token",
	LexLengthMismatch:        "token stream does not cover the source",
	SynUnexpectedToken:       "unexpected token",
	SynLengthMismatch:        "parse tree does not cover the source",
	SynExpectedExpression:    "expected an expression",
	SynExpectedLParen:        "expected a '('",
	SynExpectedRParen:        "expected a ')'",
	SynExpectedPattern:       "expected a pattern",
	SynExpectedEquals:        "expected an '='",
	SynExpectedDummyIn:       "expected the end of a let-binding",
	SynExpectedLetExpression: "expected an expression after a let-binding",
	SynExpectedComma:         "expected a ','",
	SynExpectedThen:          "expected a 'then'",
	SynExpectedEndif:         "expected the end of an if-expression",
	SemaUnboundName:          "unbound name",
	SemaIncompatibleTypes:    "incompatible types",
	SemaNotAFunction:         "called value is not a function",
	SemaWrongArgumentCount:   "wrong number of arguments",
	SemaConditionNotInt:      "condition is not an int",
}

// ID returns the phase-prefixed identifier, e.g. "SYN2010".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	}
	return "E0000"
}

// Title returns the short description of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
