package parser

import (
	"fmt"
	"strconv"

	"github.com/ha1tch/rdbparser/token"
)

// ErrorKind classifies a parse error.
type ErrorKind int

const (
	// NotStatement: the token at a statement start is not a statement keyword.
	NotStatement ErrorKind = iota
	// SyntaxError: a required token type was not found.
	SyntaxError
	// VarSyntaxError: an operand or value position holds an unusable token.
	VarSyntaxError
	// TypeSyntaxError: a column definition's type slot is not INT, REAL or TEXT.
	TypeSyntaxError
	// IncorrectVarType: a numeric literal failed conversion.
	IncorrectVarType
	// VarOutOfRange: a numeric literal exceeds the target range.
	VarOutOfRange
	// WrongListDefinition: a bracketed list entry has the wrong shape.
	WrongListDefinition
	// UnexpectedEndOfInput: the input ended where a token was required.
	// It is the only fatal kind.
	UnexpectedEndOfInput
)

var errorKindNames = map[ErrorKind]string{
	NotStatement:         "NotStatement",
	SyntaxError:          "SyntaxError",
	VarSyntaxError:       "VarSyntaxError",
	TypeSyntaxError:      "TypeSyntaxError",
	IncorrectVarType:     "IncorrectVarType",
	VarOutOfRange:        "VarOutOfRange",
	WrongListDefinition:  "WrongListDefinition",
	UnexpectedEndOfInput: "UnexpectedEndOfInput",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
}

// Error is a parse error at an offending token. Expected is token.ILLEGAL
// when the error does not name an expected token type.
type Error struct {
	Token    token.Token
	Kind     ErrorKind
	Expected token.Type
}

func newError(tok token.Token, kind ErrorKind) *Error {
	return &Error{Token: tok, Kind: kind}
}

func newExpectError(tok token.Token, kind ErrorKind, expected token.Type) *Error {
	return &Error{Token: tok, Kind: kind, Expected: expected}
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("line %d, col %d: %s at (%s, %q)",
		e.Token.Line, e.Token.Column, e.Kind, e.Token.Type, e.Token.Literal)
	if e.HasExpected() {
		msg += fmt.Sprintf(" (expected %s)", e.Expected)
	}
	return msg
}

// HasExpected reports whether the error names an expected token type.
func (e *Error) HasExpected() bool {
	return e.Expected != token.ILLEGAL
}

// Fatal reports whether the error stops parsing altogether.
func (e *Error) Fatal() bool {
	return e.Kind == UnexpectedEndOfInput
}
