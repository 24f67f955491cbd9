// Package cli implements the manyfold command: it loads a script, runs the
// lex → parse → evaluate pipeline, and handles the inspection flags.
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/manyfold-lang/manyfold/internal/config"
	"github.com/manyfold-lang/manyfold/internal/evaluator"
	"github.com/manyfold-lang/manyfold/internal/lexer"
	"github.com/manyfold-lang/manyfold/internal/parser"
	"github.com/manyfold-lang/manyfold/internal/pipeline"
	"github.com/manyfold-lang/manyfold/internal/trace"
)

// isSourceFile checks if a file has a recognized source extension
func isSourceFile(path string) bool {
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// Entry runs the CLI and returns the process exit code.
func Entry(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("manyfold", flag.ContinueOnError)
	flags.SetOutput(stderr)
	policyName := flags.String("float-policy", config.DefaultFloatPolicy.String(),
		"numeric overflow policy: saturate, wrap or flag")
	dumpTimeline := flags.Bool("dump-timeline", false,
		"print the full timeline history as YAML after the run")
	traceDB := flags.String("trace", "",
		"record every timeline write to a SQLite database at this path")

	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: manyfold [flags] script"+config.SourceFileExt)
		return 2
	}

	policy, ok := config.LookupFloatPolicy(*policyName)
	if !ok {
		fmt.Fprintf(stderr, "manyfold: unknown float policy %q\n", *policyName)
		return 2
	}

	path := flags.Arg(0)
	if !isSourceFile(path) {
		fmt.Fprintf(stderr, "manyfold: %s is not a source file (expected %s)\n",
			path, strings.Join(config.SourceFileExtensions, ", "))
		return 2
	}
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "manyfold: %v\n", err)
		return 1
	}

	ctx := pipeline.NewPipelineContext(string(source))
	ctx.FilePath = path
	ctx.Policy = policy
	ctx.Input = evaluator.NewReaderInput(stdin)

	output := &evaluator.WriterOutput{W: stdout}
	ctx.Output = output

	var recorder *trace.Recorder
	if *traceDB != "" {
		recorder, err = trace.OpenRecorder(*traceDB)
		if err != nil {
			fmt.Fprintf(stderr, "manyfold: %v\n", err)
			return 1
		}
		defer recorder.Close()
		ctx.Observer = func(name string, tick int, rendered string) {
			if err := recorder.Record(name, tick, rendered); err != nil {
				fmt.Fprintf(stderr, "manyfold: %v\n", err)
			}
		}
	}

	p := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&RuntimeProcessor{Stdin: stdin, Stdout: stdout},
	)
	ctx = p.Run(ctx)

	if *dumpTimeline {
		if store, ok := ctx.Store.(*evaluator.Store); ok && store != nil {
			if err := trace.WriteYAML(stderr, trace.Take(store)); err != nil {
				fmt.Fprintf(stderr, "manyfold: %v\n", err)
			}
		}
	}

	if len(ctx.Errors) > 0 {
		for _, diag := range ctx.Errors {
			fmt.Fprintln(stderr, diag.Error())
		}
		return 1
	}
	return 0
}

// RuntimeProcessor wraps the evaluator stage with terminal awareness:
// input prompts are shown only when both stdin and stdout are terminals.
type RuntimeProcessor struct {
	Stdin  io.Reader
	Stdout io.Writer
}

func (rp *RuntimeProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	inner := &evaluator.EvaluatorProcessor{}
	if rp.interactive() {
		inner.PromptOut = rp.Stdout
	}
	return inner.Process(ctx)
}

func (rp *RuntimeProcessor) interactive() bool {
	in, inOK := rp.Stdin.(*os.File)
	out, outOK := rp.Stdout.(*os.File)
	return inOK && outOK &&
		isatty.IsTerminal(in.Fd()) &&
		isatty.IsTerminal(out.Fd())
}
