package pipeline

import (
	"github.com/manyfold-lang/manyfold/internal/config"
	"github.com/manyfold-lang/manyfold/internal/diagnostics"
	"github.com/manyfold-lang/manyfold/internal/token"
)

// Processor is a single pipeline stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext carries the artifacts of a run between stages.
type PipelineContext struct {
	SourceCode  string
	FilePath    string
	TokenStream *TokenStream
	AstRoot     interface{} // *ast.Program; interface{} avoids an import cycle
	Errors      []*diagnostics.DiagnosticError

	// Execution wiring. Input/Output/Store are evaluator types held as
	// interface{} here (the evaluator imports pipeline for its processor).
	Policy   config.FloatPolicy
	Input    interface{}
	Output   interface{}
	Store    interface{}       // populated by the evaluator stage for inspection
	Observer func(name string, tick int, rendered string)
}

func NewPipelineContext(source string) *PipelineContext {
	return &PipelineContext{
		SourceCode: source,
		Policy:     config.DefaultFloatPolicy,
	}
}

// TokenStream is a fully lexed token sequence with lookahead.
type TokenStream struct {
	tokens []token.Token
	pos    int
}

func NewTokenStream(tokens []token.Token) *TokenStream {
	return &TokenStream{tokens: tokens}
}

// Next returns the next token, or EOF forever once drained.
func (s *TokenStream) Next() token.Token {
	if s.pos >= len(s.tokens) {
		if len(s.tokens) > 0 {
			last := s.tokens[len(s.tokens)-1]
			return token.Token{Type: token.EOF, Line: last.Line, Column: last.Column}
		}
		return token.Token{Type: token.EOF}
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok
}

// Peek returns up to n upcoming tokens without consuming them.
func (s *TokenStream) Peek(n int) []token.Token {
	end := s.pos + n
	if end > len(s.tokens) {
		end = len(s.tokens)
	}
	return s.tokens[s.pos:end]
}
