package evaluator

import (
	"fmt"

	"github.com/manyfold-lang/manyfold/internal/ast"
)

func (e *Evaluator) evalStatement(stmt ast.Statement, env *Environment) *Error {
	switch s := stmt.(type) {
	case *ast.LetStatement:
		return e.evalLet(s, env)
	case *ast.BranchStatement:
		return e.evalBranch(s, env)
	case *ast.MergeStatement:
		return e.evalMerge(s, env)
	case *ast.AbortStatement:
		return e.evalAbort(s, env)
	case *ast.PrintStatement:
		return e.evalPrint(s, env)
	case *ast.InputStatement:
		return e.evalInput(s, env)
	case *ast.ListPushStatement:
		return e.evalListPush(s, env)
	case *ast.SetInsertStatement:
		return e.evalSetInsert(s, env)
	case *ast.ExpressionStatement:
		_, err := e.evalExpression(s.Expression, env)
		return err
	default:
		tok := stmt.GetToken()
		return newError(TypeMismatch, "unknown statement %T", stmt).at(tok.Line, tok.Column)
	}
}

func (e *Evaluator) evalLet(s *ast.LetStatement, env *Environment) *Error {
	value, err := e.evalExpression(s.Value, env)
	if err != nil {
		return err
	}
	env.Set(s.Name.Value, value)
	return nil
}

// evalBranch opens a branch on the target variable, then runs each
// potential's sub-sequence in ordinal order against that potential's
// private value. A failing sub-sequence marks only its own potential as
// failed; the remaining potentials still run, and the failure resurfaces if
// a later merge finds the branch incomplete.
func (e *Evaluator) evalBranch(s *ast.BranchStatement, env *Environment) *Error {
	branch, err := e.Branches.Open(s.Target.Value, len(s.Potentials))
	if err != nil {
		return err.at(s.Token.Line, s.Token.Column)
	}

	for i, block := range s.Potentials {
		ordinal := i + 1
		pot := branch.Potential(ordinal)
		penv := env.EnterPotential(branch, pot)

		var bodyErr *Error
		for _, stmt := range block.Body {
			if bodyErr = e.evalStatement(stmt, penv); bodyErr != nil {
				break
			}
		}
		if bodyErr != nil {
			e.Branches.FailPotential(branch, ordinal, bodyErr)
			continue
		}
		if err := e.Branches.ResolvePotential(branch, ordinal, pot.Value); err != nil {
			return err.at(block.Token.Line, block.Token.Column)
		}
	}
	return nil
}

func (e *Evaluator) evalMerge(s *ast.MergeStatement, env *Environment) *Error {
	branch, err := e.Branches.Lookup(s.Target.Value)
	if err != nil {
		return err.at(s.Token.Line, s.Token.Column)
	}
	if _, err := e.Merger.Merge(branch, s.Ordinal); err != nil {
		return err.at(s.Token.Line, s.Token.Column)
	}
	return nil
}

func (e *Evaluator) evalAbort(s *ast.AbortStatement, env *Environment) *Error {
	branch, err := e.Branches.Lookup(s.Target.Value)
	if err != nil {
		return err.at(s.Token.Line, s.Token.Column)
	}
	if err := e.Merger.Abort(branch); err != nil {
		return err.at(s.Token.Line, s.Token.Column)
	}
	return nil
}

func (e *Evaluator) evalPrint(s *ast.PrintStatement, env *Environment) *Error {
	value, err := e.evalExpression(s.Value, env)
	if err != nil {
		return err
	}
	e.Output.Emit(value)
	return nil
}

func (e *Evaluator) evalInput(s *ast.InputStatement, env *Environment) *Error {
	if s.Prompt != "" && e.PromptOut != nil {
		fmt.Fprint(e.PromptOut, s.Prompt)
	}
	value, err := e.Input.Next()
	if err != nil {
		return err.at(s.Token.Line, s.Token.Column)
	}
	env.Set(s.Name.Value, value)
	return nil
}

func (e *Evaluator) evalListPush(s *ast.ListPushStatement, env *Environment) *Error {
	current, err := env.Get(s.Name.Value)
	if err != nil {
		return err.at(s.Token.Line, s.Token.Column)
	}
	list, ok := current.(*List)
	if !ok {
		return newError(TypeMismatch, "listpush on %s requires a list, got %s",
			s.Name.Value, current.Type()).at(s.Token.Line, s.Token.Column)
	}

	el, err := e.evalExpression(s.Value, env)
	if err != nil {
		return err
	}
	env.Set(s.Name.Value, list.Push(el))
	return nil
}

func (e *Evaluator) evalSetInsert(s *ast.SetInsertStatement, env *Environment) *Error {
	current, err := env.Get(s.Name.Value)
	if err != nil {
		return err.at(s.Token.Line, s.Token.Column)
	}
	set, ok := current.(*Set)
	if !ok {
		return newError(TypeMismatch, "setinsert on %s requires a set, got %s",
			s.Name.Value, current.Type()).at(s.Token.Line, s.Token.Column)
	}

	el, err := e.evalExpression(s.Value, env)
	if err != nil {
		return err
	}
	env.Set(s.Name.Value, set.Insert(el))
	return nil
}
