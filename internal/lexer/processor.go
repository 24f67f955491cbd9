package lexer

import (
	"fmt"

	"github.com/manyfold-lang/manyfold/internal/diagnostics"
	"github.com/manyfold-lang/manyfold/internal/pipeline"
	"github.com/manyfold-lang/manyfold/internal/token"
)

type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	l := New(ctx.SourceCode)

	var tokens []token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.ILLEGAL {
			ctx.Errors = append(ctx.Errors, illegalTokenError(tok))
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}

	ctx.TokenStream = pipeline.NewTokenStream(tokens)

	for _, err := range ctx.Errors {
		if err.File == "" {
			err.File = ctx.FilePath
		}
	}
	return ctx
}

// illegalTokenError classifies an ILLEGAL token by its lexeme: unterminated
// strings keep their opening quote, malformed numbers start with a digit.
func illegalTokenError(tok token.Token) *diagnostics.DiagnosticError {
	switch {
	case len(tok.Lexeme) > 0 && tok.Lexeme[0] == '"':
		return diagnostics.NewError(diagnostics.ErrL003, tok, "unterminated string literal")
	case len(tok.Lexeme) > 0 && tok.Lexeme[0] >= '0' && tok.Lexeme[0] <= '9':
		return diagnostics.NewError(diagnostics.ErrL002, tok,
			fmt.Sprintf("malformed number literal %s", tok.Lexeme))
	default:
		return diagnostics.NewError(diagnostics.ErrL001, tok,
			fmt.Sprintf("illegal token %q", tok.Lexeme))
	}
}
