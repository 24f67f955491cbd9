package evaluator

import (
	"github.com/manyfold-lang/manyfold/internal/ast"
)

func (e *Evaluator) evalExpression(expr ast.Expression, env *Environment) (Object, *Error) {
	switch x := expr.(type) {
	case *ast.IntegerLiteral:
		return &Integer{Value: x.Value}, nil
	case *ast.FloatLiteral:
		return &Float{Value: x.Value}, nil
	case *ast.BooleanLiteral:
		return nativeBoolToBooleanObject(x.Value), nil
	case *ast.StringLiteral:
		return &String{Value: x.Value}, nil
	case *ast.Identifier:
		value, err := env.Get(x.Value)
		if err != nil {
			return nil, err.at(x.Token.Line, x.Token.Column)
		}
		return value, nil
	case *ast.ListLiteral:
		return e.evalListLiteral(x, env)
	case *ast.SetLiteral:
		return e.evalSetLiteral(x, env)
	case *ast.PrefixExpression:
		return e.evalPrefixExpression(x, env)
	case *ast.InfixExpression:
		return e.evalInfixExpression(x, env)
	default:
		tok := expr.GetToken()
		return nil, newError(TypeMismatch, "unknown expression %T", expr).at(tok.Line, tok.Column)
	}
}

func (e *Evaluator) evalListLiteral(lit *ast.ListLiteral, env *Environment) (Object, *Error) {
	list := &List{}
	for _, el := range lit.Elements {
		value, err := e.evalExpression(el, env)
		if err != nil {
			return nil, err
		}
		list.Elements = append(list.Elements, value)
	}
	return list, nil
}

func (e *Evaluator) evalSetLiteral(lit *ast.SetLiteral, env *Environment) (Object, *Error) {
	set := &Set{}
	for _, el := range lit.Elements {
		value, err := e.evalExpression(el, env)
		if err != nil {
			return nil, err
		}
		set = set.Insert(value)
	}
	return set, nil
}

func (e *Evaluator) evalPrefixExpression(expr *ast.PrefixExpression, env *Environment) (Object, *Error) {
	right, err := e.evalExpression(expr.Right, env)
	if err != nil {
		return nil, err
	}

	switch expr.Operator {
	case "-":
		switch v := right.(type) {
		case *Integer:
			return subInt(0, v.Value, e.Policy)
		case *Float:
			return &Float{Value: -v.Value}, nil
		}
		return nil, newError(TypeMismatch, "operator - requires a number, got %s",
			right.Type()).at(expr.Token.Line, expr.Token.Column)
	case "!":
		if b, ok := right.(*Boolean); ok {
			return nativeBoolToBooleanObject(!b.Value), nil
		}
		return nil, newError(TypeMismatch, "operator ! requires a boolean, got %s",
			right.Type()).at(expr.Token.Line, expr.Token.Column)
	}
	return nil, newError(TypeMismatch, "unknown prefix operator %s",
		expr.Operator).at(expr.Token.Line, expr.Token.Column)
}

func (e *Evaluator) evalInfixExpression(expr *ast.InfixExpression, env *Environment) (Object, *Error) {
	left, err := e.evalExpression(expr.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpression(expr.Right, env)
	if err != nil {
		return nil, err
	}

	switch expr.Operator {
	case "==":
		return nativeBoolToBooleanObject(objectsEqual(left, right)), nil
	case "!=":
		return nativeBoolToBooleanObject(!objectsEqual(left, right)), nil
	}

	result, aerr := e.evalArithmetic(expr.Operator, left, right)
	if aerr != nil {
		return nil, aerr.at(expr.Token.Line, expr.Token.Column)
	}
	return result, nil
}

func (e *Evaluator) evalArithmetic(op string, left, right Object) (Object, *Error) {
	// String concatenation rides on +.
	if ls, ok := left.(*String); ok {
		if rs, ok := right.(*String); ok && op == "+" {
			return &String{Value: ls.Value + rs.Value}, nil
		}
	}

	li, lInt := left.(*Integer)
	lf, lFloat := left.(*Float)
	ri, rInt := right.(*Integer)
	rf, rFloat := right.(*Float)

	if !(lInt || lFloat) || !(rInt || rFloat) {
		return nil, newError(TypeMismatch, "operator %s requires numbers, got %s and %s",
			op, left.Type(), right.Type())
	}

	// Mixed operands promote to float.
	if lFloat || rFloat {
		var a, b float64
		if lFloat {
			a = lf.Value
		} else {
			a = float64(li.Value)
		}
		if rFloat {
			b = rf.Value
		} else {
			b = float64(ri.Value)
		}
		return floatArith(op, a, b, e.Policy)
	}

	switch op {
	case "+":
		return addInt(li.Value, ri.Value, e.Policy)
	case "-":
		return subInt(li.Value, ri.Value, e.Policy)
	case "*":
		return mulInt(li.Value, ri.Value, e.Policy)
	case "/":
		return divInt(li.Value, ri.Value, e.Policy)
	}
	return nil, newError(TypeMismatch, "unknown operator %s", op)
}
