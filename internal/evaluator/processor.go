package evaluator

import (
	"fmt"
	"io"

	"github.com/manyfold-lang/manyfold/internal/ast"
	"github.com/manyfold-lang/manyfold/internal/diagnostics"
	"github.com/manyfold-lang/manyfold/internal/pipeline"
	"github.com/manyfold-lang/manyfold/internal/token"
)

type EvaluatorProcessor struct {
	// PromptOut receives input prompts; nil suppresses them.
	PromptOut io.Writer
}

func (ep *EvaluatorProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil || len(ctx.Errors) > 0 {
		return ctx
	}
	program, ok := ctx.AstRoot.(*ast.Program)
	if !ok {
		ctx.Errors = append(ctx.Errors, diagnostics.NewError(
			diagnostics.ErrR001, token.Token{}, "evaluator: AST root is not a program"))
		return ctx
	}

	eval := New()
	eval.Policy = ctx.Policy
	eval.PromptOut = ep.PromptOut
	if input, ok := ctx.Input.(InputSource); ok {
		eval.Input = input
	}
	if output, ok := ctx.Output.(OutputSink); ok {
		eval.Output = output
	}
	if ctx.Observer != nil {
		observer := ctx.Observer
		eval.Store.SetObserver(func(name string, tick int, value Object) {
			observer(name, tick, value.Inspect())
		})
	}

	// Expose the store even on failed runs; the timeline holds every write
	// committed before the error and is safe to inspect.
	ctx.Store = eval.Store

	if err := eval.Run(program); err != nil {
		tok := token.Token{Line: err.Line, Column: err.Column}
		ctx.Errors = append(ctx.Errors, diagnostics.NewError(
			diagnostics.ErrR001,
			tok,
			fmt.Sprintf("%s: %s", err.Kind, err.Message),
		))
	}

	for _, err := range ctx.Errors {
		if err.File == "" {
			err.File = ctx.FilePath
		}
	}
	return ctx
}
