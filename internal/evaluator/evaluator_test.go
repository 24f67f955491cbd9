package evaluator_test

import (
	"testing"

	"github.com/manyfold-lang/manyfold/internal/ast"
	"github.com/manyfold-lang/manyfold/internal/config"
	"github.com/manyfold-lang/manyfold/internal/evaluator"
	"github.com/manyfold-lang/manyfold/internal/lexer"
	"github.com/manyfold-lang/manyfold/internal/parser"
	"github.com/manyfold-lang/manyfold/internal/pipeline"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	ctx := pipeline.NewPipelineContext(src)
	ctx = (&lexer.LexerProcessor{}).Process(ctx)
	ctx = (&parser.ParserProcessor{}).Process(ctx)
	if len(ctx.Errors) > 0 {
		t.Fatalf("parse error: %v", ctx.Errors[0])
	}
	return ctx.AstRoot.(*ast.Program)
}

func run(t *testing.T, src string, input ...evaluator.Object) (*evaluator.Evaluator, *evaluator.CaptureOutput, *evaluator.Error) {
	t.Helper()
	program := parse(t, src)
	eval := evaluator.New()
	eval.Input = evaluator.NewSliceInput(input...)
	capture := &evaluator.CaptureOutput{}
	eval.Output = capture
	return eval, capture, eval.Run(program)
}

func mustRun(t *testing.T, src string, input ...evaluator.Object) (*evaluator.Evaluator, *evaluator.CaptureOutput) {
	t.Helper()
	eval, capture, err := run(t, src, input...)
	if err != nil {
		t.Fatalf("runtime error: %v", err)
	}
	return eval, capture
}

func intAt(t *testing.T, eval *evaluator.Evaluator, name string, tick int) int64 {
	t.Helper()
	value, err := eval.Store.ReadAt(name, tick)
	if err != nil {
		t.Fatalf("ReadAt(%s, %d): %v", name, tick, err)
	}
	i, ok := value.(*evaluator.Integer)
	if !ok {
		t.Fatalf("ReadAt(%s, %d): expected integer, got %s", name, tick, value.Inspect())
	}
	return i.Value
}

func TestBranchMergeScenario(t *testing.T) {
	src := `
let x = 0
branch x {
  pot { let x = 1 }
  pot { let x = 2 }
  pot { let x = 3 }
}
merge x select 2
print x
`
	eval, capture := mustRun(t, src)

	history := eval.Store.History("x")
	if len(history) != 2 {
		t.Fatalf("expected exactly 2 timeline entries for x, got %d", len(history))
	}
	if got := intAt(t, eval, "x", 1); got != 2 {
		t.Errorf("x at tick 1 should be 2, got %d", got)
	}
	if got := intAt(t, eval, "x", 0); got != 0 {
		t.Errorf("x at tick 0 should still be 0, got %d", got)
	}
	if len(capture.Values) != 1 || capture.Values[0].Inspect() != "2" {
		t.Errorf("expected print output 2, got %v", capture.Values)
	}
}

func TestPotentialsForkIndependently(t *testing.T) {
	// Every potential starts from the fork value, not from the previous
	// potential's writes.
	src := `
let x = 10
branch x {
  pot { let x = x + 1 }
  pot { let x = x + 1 }
}
merge x select 2
`
	eval, _ := mustRun(t, src)
	if got := intAt(t, eval, "x", 1); got != 11 {
		t.Fatalf("second potential should fork from 10, got %d", got)
	}
}

func TestTargetReadsForkValueWhileBranchOpen(t *testing.T) {
	src := `
let x = 5
branch x {
  pot { let x = 50 }
}
print x
merge x
print x
`
	_, capture := mustRun(t, src)
	if capture.Values[0].Inspect() != "5" {
		t.Errorf("open branch must not expose potential values, got %s", capture.Values[0].Inspect())
	}
	if capture.Values[1].Inspect() != "50" {
		t.Errorf("merge shorthand should select the first potential, got %s", capture.Values[1].Inspect())
	}
}

func TestNonTargetWritesAreImmediate(t *testing.T) {
	// Only the branch target is speculative; other variables written inside
	// a losing potential are visible right away and survive the merge.
	src := `
let x = 0
let seen = []
branch x {
  pot { let x = 1
        listpush seen 1 }
  pot { let x = 2
        listpush seen 2 }
}
merge x select 1
print seen
`
	_, capture := mustRun(t, src)
	if got := capture.Values[0].Inspect(); got != "[1, 2]" {
		t.Fatalf("expected non-target writes from both potentials, got %s", got)
	}
}

func TestNestedBranchOnOtherVariable(t *testing.T) {
	src := `
let x = 0
let y = 0
branch x {
  pot {
    let x = 1
    branch y {
      pot { let y = 7
            let x = 99 }
    }
    merge y
  }
}
merge x
`
	eval, _ := mustRun(t, src)
	if got := intAt(t, eval, "y", 1); got != 7 {
		t.Fatalf("nested branch on y should have merged to 7, got %d", got)
	}
	// The write to x inside the inner potential stays private to the outer
	// potential; the merge commits it as x's single new entry.
	if got := len(eval.Store.History("x")); got != 2 {
		t.Fatalf("expected 2 entries for x, got %d", got)
	}
	if got := intAt(t, eval, "x", 1); got != 99 {
		t.Fatalf("outer branch should have merged to 99, got %d", got)
	}
}

func TestFailedPotentialDoesNotStopSiblings(t *testing.T) {
	src := `
let x = 0
branch x {
  pot { let x = ghost }
  pot { let x = 2 }
}
merge x select 2
`
	_, _, err := run(t, src)
	// The failed first potential never resolved, so the merge reports the
	// branch as incomplete rather than the run dying inside the potential.
	if err == nil || err.Kind != evaluator.IncompletePotentials {
		t.Fatalf("expected IncompletePotentials at merge, got %v", err)
	}
}

func TestAbortAfterFailedPotentials(t *testing.T) {
	src := `
let x = 0
branch x {
  pot { let x = ghost }
}
abort x
print x
`
	eval, capture := mustRun(t, src)
	if len(eval.Store.History("x")) != 1 {
		t.Fatal("abort must leave the timeline untouched")
	}
	if capture.Values[0].Inspect() != "0" {
		t.Fatalf("x should still read its fork value, got %s", capture.Values[0].Inspect())
	}
}

func TestUnboundAfterAbortedBranch(t *testing.T) {
	src := `
let x = 0
branch x {
  pot { let x = 1 }
}
abort x
print ghost
`
	_, _, err := run(t, src)
	if err == nil || err.Kind != evaluator.UnboundVariable {
		t.Fatalf("expected UnboundVariable, got %v", err)
	}
}

func TestMergeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind evaluator.ErrorKind
	}{
		{"never_branched", "let x = 0\nmerge x", evaluator.UnknownBranch},
		{"unbound_target", "branch x { pot { let x = 1 } }", evaluator.UnboundVariable},
		{"merge_twice", "let x = 0\nbranch x { pot { let x = 1 } }\nmerge x\nmerge x", evaluator.BranchAlreadyClosed},
		{"bad_ordinal", "let x = 0\nbranch x { pot { let x = 1 } }\nmerge x select 9", evaluator.UnknownPotential},
		{"reopen_open_branch", "let x = 0\nbranch x { pot { branch x { pot { let x = 2 } } } }\nmerge x", evaluator.IncompletePotentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.src)
			if err == nil || err.Kind != tt.kind {
				t.Fatalf("expected %s, got %v", tt.kind, err)
			}
		})
	}
}

func TestInputStatement(t *testing.T) {
	src := `
input "n? " n
let m = n + 1
print m
`
	_, capture := mustRun(t, src, &evaluator.Integer{Value: 41})
	if capture.Values[0].Inspect() != "42" {
		t.Fatalf("expected 42, got %s", capture.Values[0].Inspect())
	}
}

func TestInputExhausted(t *testing.T) {
	_, _, err := run(t, "input n")
	if err == nil || err.Kind != evaluator.InputExhausted {
		t.Fatalf("expected InputExhausted, got %v", err)
	}
}

func TestCollectionStatementsAdvanceTicks(t *testing.T) {
	src := `
let xs = []
listpush xs 1
listpush xs 2
let s = {}
setinsert s 1
setinsert s 1
print xs
print s
`
	eval, capture := mustRun(t, src)

	if got := len(eval.Store.History("xs")); got != 3 {
		t.Errorf("expected 3 entries for xs, got %d", got)
	}
	// Duplicate insert keeps membership but still advances the tick.
	if got := len(eval.Store.History("s")); got != 3 {
		t.Errorf("expected 3 entries for s, got %d", got)
	}
	if capture.Values[0].Inspect() != "[1, 2]" {
		t.Errorf("expected [1, 2], got %s", capture.Values[0].Inspect())
	}
	if capture.Values[1].Inspect() != "{1}" {
		t.Errorf("expected {1}, got %s", capture.Values[1].Inspect())
	}
}

func TestSetInsertMixedNumericKinds(t *testing.T) {
	// 1 and 1.0 are distinct set members; == agrees.
	src := `
let s = {}
setinsert s 1
setinsert s 1.0
print s
print {1} == {1.0}
`
	eval, capture := mustRun(t, src)
	value, err := eval.Store.Read("s")
	if err != nil {
		t.Fatalf("Read(s): %v", err)
	}
	set, ok := value.(*evaluator.Set)
	if !ok {
		t.Fatalf("expected a set, got %s", value.Type())
	}
	if len(set.Elements) != 2 {
		t.Fatalf("expected 2 members, got %d (%s)", len(set.Elements), set.Inspect())
	}
	if capture.Values[1].Inspect() != "false" {
		t.Errorf("{1} and {1.0} hold different values, got %s", capture.Values[1].Inspect())
	}
}

func TestCollectionTypeMismatch(t *testing.T) {
	_, _, err := run(t, "let s = {}\nlistpush s 1")
	if err == nil || err.Kind != evaluator.TypeMismatch {
		t.Fatalf("expected TypeMismatch, got %v", err)
	}
	_, _, err = run(t, "let xs = []\nsetinsert xs 1")
	if err == nil || err.Kind != evaluator.TypeMismatch {
		t.Fatalf("expected TypeMismatch, got %v", err)
	}
}

func TestCollectionOpsInsidePotentialAreIsolated(t *testing.T) {
	src := `
let xs = []
branch xs {
  pot { listpush xs 1 }
  pot { listpush xs 2
        listpush xs 3 }
}
merge xs select 2
print xs
`
	eval, capture := mustRun(t, src)
	if capture.Values[0].Inspect() != "[2, 3]" {
		t.Fatalf("expected [2, 3], got %s", capture.Values[0].Inspect())
	}
	// Fork entry plus one merge write; private pushes carry no ticks.
	if got := len(eval.Store.History("xs")); got != 2 {
		t.Fatalf("expected 2 entries for xs, got %d", got)
	}
}

func TestExpressions(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"precedence", "print 1 + 2 * 3", "7"},
		{"grouping", "print (1 + 2) * 3", "9"},
		{"negation", "let x = 5\nprint -x", "-5"},
		{"float_math", "print 1.5 + 2.25", "3.75"},
		{"mixed_promotes", "print 1 + 0.5", "1.5"},
		{"string_concat", `print "fo" + "ld"`, "fold"},
		{"equality", "print 1 == 1", "true"},
		{"kind_strict_equality", "print 1 == 1.0", "false"},
		{"inequality", "print [1] != [2]", "true"},
		{"not", "print !false", "true"},
		{"int_division", "print 7 / 2", "3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, capture := mustRun(t, tt.src)
			if got := capture.Values[0].Inspect(); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestArithmeticTypeMismatch(t *testing.T) {
	_, _, err := run(t, `print 1 + "a"`)
	if err == nil || err.Kind != evaluator.TypeMismatch {
		t.Fatalf("expected TypeMismatch, got %v", err)
	}
}

func TestFlagPolicyHaltsRun(t *testing.T) {
	program := parse(t, "let x = 9223372036854775807\nlet y = x + 1")
	eval := evaluator.New()
	eval.Policy = config.PolicyFlag
	eval.Output = &evaluator.CaptureOutput{}
	err := eval.Run(program)
	if err == nil || err.Kind != evaluator.NumericOverflow {
		t.Fatalf("expected NumericOverflow, got %v", err)
	}
	// The overflowing write never happened.
	if len(eval.Store.History("y")) != 0 {
		t.Error("failed let must not write to the timeline")
	}
}
