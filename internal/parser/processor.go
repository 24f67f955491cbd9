package parser

import (
	"github.com/manyfold-lang/manyfold/internal/ast"
	"github.com/manyfold-lang/manyfold/internal/diagnostics"
	"github.com/manyfold-lang/manyfold/internal/pipeline"
	"github.com/manyfold-lang/manyfold/internal/token"
)

type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.TokenStream == nil {
		// Should not happen when the lexer stage runs first, but as a safeguard:
		err := diagnostics.NewError(diagnostics.ErrP000, token.Token{}, "parser: token stream is nil")
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}

	parser := New(ctx.TokenStream, ctx)
	program := parser.ParseProgram()
	program.File = ctx.FilePath
	ctx.AstRoot = program

	for _, err := range ctx.Errors {
		if err.File == "" {
			err.File = ctx.FilePath
		}
	}
	return ctx
}

// Parse is a convenience for callers outside the pipeline (tests, tools).
func Parse(ctx *pipeline.PipelineContext) *ast.Program {
	ctx = (&ParserProcessor{}).Process(ctx)
	prog, _ := ctx.AstRoot.(*ast.Program)
	return prog
}
