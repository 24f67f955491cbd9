package diagnostics

import (
	"fmt"

	"github.com/manyfold-lang/manyfold/internal/token"
)

// Error codes. L = lexer, P = parser, R = runtime.
const (
	ErrL001 = "L001" // illegal character
	ErrL002 = "L002" // malformed number literal
	ErrL003 = "L003" // unterminated string

	ErrP000 = "P000" // internal: missing token stream
	ErrP001 = "P001" // unexpected token
	ErrP002 = "P002" // expected token
	ErrP003 = "P003" // invalid potential block
	ErrP004 = "P004" // invalid merge selector
	ErrP006 = "P006" // general syntax error

	ErrR001 = "R001" // runtime error surfaced from the evaluator
)

// DiagnosticError is a located error produced by any pipeline stage.
type DiagnosticError struct {
	Code    string
	Message string
	File    string
	Line    int
	Column  int
}

func NewError(code string, tok token.Token, message string) *DiagnosticError {
	return &DiagnosticError{
		Code:    code,
		Message: message,
		Line:    tok.Line,
		Column:  tok.Column,
	}
}

func (e *DiagnosticError) Error() string {
	file := e.File
	if file == "" {
		file = "<input>"
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: [%s] %s", file, e.Line, e.Column, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: [%s] %s", file, e.Code, e.Message)
}
