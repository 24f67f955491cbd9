package evaluator

import (
	"io"
	"os"

	"github.com/manyfold-lang/manyfold/internal/ast"
	"github.com/manyfold-lang/manyfold/internal/config"
)

// Evaluator is the interpreter loop. It sequences statements against an
// Environment, delegating variable history to the Store and branch
// lifecycle to the BranchManager and MergeResolver. Execution is
// single-threaded; potentials run sequentially in ordinal order.
type Evaluator struct {
	Store    *Store
	Branches *BranchManager
	Merger   *MergeResolver
	Policy   config.FloatPolicy

	Input  InputSource
	Output OutputSink

	// PromptOut receives input prompts; nil suppresses them (non-interactive
	// runs keep their output streams clean).
	PromptOut io.Writer
}

func New() *Evaluator {
	store := NewStore()
	branches := NewBranchManager(store)
	return &Evaluator{
		Store:    store,
		Branches: branches,
		Merger:   NewMergeResolver(store, branches),
		Policy:   config.DefaultFloatPolicy,
		Input:    NewReaderInput(os.Stdin),
		Output:   &WriterOutput{W: os.Stdout},
	}
}

// Run executes a whole program. The first error is the run's terminal
// outcome; the timeline keeps every write committed before it.
func (e *Evaluator) Run(program *ast.Program) *Error {
	env := NewEnvironment(e.Store)
	for _, stmt := range program.Statements {
		if err := e.evalStatement(stmt, env); err != nil {
			return err
		}
	}
	return nil
}
