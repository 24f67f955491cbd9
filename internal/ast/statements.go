package ast

import (
	"github.com/manyfold-lang/manyfold/internal/token"
)

// LetStatement binds the result of an expression to a variable.
// let x = 1 + 2
type LetStatement struct {
	Token token.Token // the 'let' token
	Name  *Identifier
	Value Expression
}

func (ls *LetStatement) statementNode()       {}
func (ls *LetStatement) TokenLiteral() string { return ls.Token.Lexeme }
func (ls *LetStatement) GetToken() token.Token {
	if ls == nil {
		return token.Token{}
	}
	return ls.Token
}

// PotentialBlock is one hypothetical continuation inside a branch.
// pot { ... }
type PotentialBlock struct {
	Token token.Token // the 'pot' token
	Body  []Statement
}

func (pb *PotentialBlock) GetToken() token.Token {
	if pb == nil {
		return token.Token{}
	}
	return pb.Token
}

// BranchStatement forks a variable into N potentials.
// branch x { pot { ... } pot { ... } }
type BranchStatement struct {
	Token      token.Token // the 'branch' token
	Target     *Identifier
	Potentials []*PotentialBlock
}

func (bs *BranchStatement) statementNode()       {}
func (bs *BranchStatement) TokenLiteral() string { return bs.Token.Lexeme }
func (bs *BranchStatement) GetToken() token.Token {
	if bs == nil {
		return token.Token{}
	}
	return bs.Token
}

// MergeStatement collapses an open branch onto one potential's value:
// `merge x select 2`, or the shorthand `merge x` which selects ordinal 1.
type MergeStatement struct {
	Token   token.Token // the 'merge' token
	Target  *Identifier
	Ordinal int // 1-based; 1 when the select clause is omitted
}

func (ms *MergeStatement) statementNode()       {}
func (ms *MergeStatement) TokenLiteral() string { return ms.Token.Lexeme }
func (ms *MergeStatement) GetToken() token.Token {
	if ms == nil {
		return token.Token{}
	}
	return ms.Token
}

// AbortStatement discards an open branch without writing any value.
// abort x
type AbortStatement struct {
	Token  token.Token // the 'abort' token
	Target *Identifier
}

func (as *AbortStatement) statementNode()       {}
func (as *AbortStatement) TokenLiteral() string { return as.Token.Lexeme }
func (as *AbortStatement) GetToken() token.Token {
	if as == nil {
		return token.Token{}
	}
	return as.Token
}

// PrintStatement hands a value to the output collaborator.
// print x  |  print "hello"
type PrintStatement struct {
	Token token.Token // the 'print' token
	Value Expression
}

func (ps *PrintStatement) statementNode()       {}
func (ps *PrintStatement) TokenLiteral() string { return ps.Token.Lexeme }
func (ps *PrintStatement) GetToken() token.Token {
	if ps == nil {
		return token.Token{}
	}
	return ps.Token
}

// InputStatement reads one value from the input collaborator into a variable.
// input "prompt? " name  |  input name
type InputStatement struct {
	Token  token.Token // the 'input' token
	Prompt string      // empty when no prompt literal was given
	Name   *Identifier
}

func (is *InputStatement) statementNode()       {}
func (is *InputStatement) TokenLiteral() string { return is.Token.Lexeme }
func (is *InputStatement) GetToken() token.Token {
	if is == nil {
		return token.Token{}
	}
	return is.Token
}

// ListPushStatement appends an element to a list variable, producing a new
// list value at the variable's next tick.
// listpush xs 42
type ListPushStatement struct {
	Token token.Token // the 'listpush' token
	Name  *Identifier
	Value Expression
}

func (lp *ListPushStatement) statementNode()       {}
func (lp *ListPushStatement) TokenLiteral() string { return lp.Token.Lexeme }
func (lp *ListPushStatement) GetToken() token.Token {
	if lp == nil {
		return token.Token{}
	}
	return lp.Token
}

// SetInsertStatement inserts an element into a set variable. Inserting a
// duplicate changes no membership but still advances the variable's tick.
// setinsert s 42
type SetInsertStatement struct {
	Token token.Token // the 'setinsert' token
	Name  *Identifier
	Value Expression
}

func (si *SetInsertStatement) statementNode()       {}
func (si *SetInsertStatement) TokenLiteral() string { return si.Token.Lexeme }
func (si *SetInsertStatement) GetToken() token.Token {
	if si == nil {
		return token.Token{}
	}
	return si.Token
}

// ExpressionStatement wraps a bare expression in statement position.
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Lexeme }
func (es *ExpressionStatement) GetToken() token.Token {
	if es == nil {
		return token.Token{}
	}
	return es.Token
}
