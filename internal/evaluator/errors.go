package evaluator

import "fmt"

// ErrorKind classifies runtime failures. Every kind halts the run; none are
// retried internally.
type ErrorKind string

const (
	UnboundVariable      ErrorKind = "UnboundVariable"
	InvalidBranchArity   ErrorKind = "InvalidBranchArity"
	UnknownPotential     ErrorKind = "UnknownPotential"
	IncompletePotentials ErrorKind = "IncompletePotentials"
	BranchAlreadyClosed  ErrorKind = "BranchAlreadyClosed"
	BranchAlreadyOpen    ErrorKind = "BranchAlreadyOpen"
	UnknownBranch        ErrorKind = "UnknownBranch"
	InputExhausted       ErrorKind = "InputExhausted"
	TypeMismatch         ErrorKind = "TypeMismatch"
	NumericOverflow      ErrorKind = "NumericOverflow"
)

// Error is the runtime error value. It flows through the evaluator as an
// Object so a failure inside a potential can stop just that potential, and
// is converted to a diagnostic at the pipeline boundary.
type Error struct {
	Kind    ErrorKind
	Message string
	Line    int
	Column  int
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }
func (e *Error) Inspect() string {
	if e.Line > 0 {
		return fmt.Sprintf("ERROR at %d:%d: %s: %s", e.Line, e.Column, e.Kind, e.Message)
	}
	return fmt.Sprintf("ERROR: %s: %s", e.Kind, e.Message)
}
func (e *Error) Hash() uint32 { return hashString(string(e.Kind) + e.Message) }

func (e *Error) Error() string { return e.Inspect() }

func newError(kind ErrorKind, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, a...)}
}

// at stamps a source location onto an error if it has none yet.
func (e *Error) at(line, column int) *Error {
	if e.Line == 0 {
		e.Line = line
		e.Column = column
	}
	return e
}
