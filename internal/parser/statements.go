package parser

import (
	"fmt"

	"github.com/manyfold-lang/manyfold/internal/ast"
	"github.com/manyfold-lang/manyfold/internal/diagnostics"
	"github.com/manyfold-lang/manyfold/internal/token"
)

func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	p.skipTerminators()
	for !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		} else {
			p.skipToStatementBoundary()
		}
		p.nextToken()
		p.skipTerminators()
	}
	return program
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.LET:
		return p.parseLetStatement()
	case token.BRANCH:
		return p.parseBranchStatement()
	case token.MERGE:
		return p.parseMergeStatement()
	case token.ABORT:
		return p.parseAbortStatement()
	case token.PRINT:
		return p.parsePrintStatement()
	case token.INPUT:
		return p.parseInputStatement()
	case token.LISTPUSH:
		return p.parseListPushStatement()
	case token.SETINSERT:
		return p.parseSetInsertStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// let x = expr
func (p *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()

	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}
	return stmt
}

// branch x { pot { ... } pot { ... } }
func (p *Parser) parseBranchStatement() ast.Statement {
	stmt := &ast.BranchStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Target = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	p.nextToken()
	p.skipTerminators()

	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if !p.curTokenIs(token.POT) {
			p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
				diagnostics.ErrP003,
				p.curToken,
				fmt.Sprintf("branch body may only contain pot blocks, got %s", p.curToken.Type),
			))
			return nil
		}
		pot := p.parsePotentialBlock()
		if pot == nil {
			return nil
		}
		stmt.Potentials = append(stmt.Potentials, pot)
		p.nextToken()
		p.skipTerminators()
	}

	if !p.curTokenIs(token.RBRACE) {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP002,
			p.curToken,
			"expected } to close branch body",
		))
		return nil
	}

	if len(stmt.Potentials) == 0 {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP003,
			stmt.Token,
			fmt.Sprintf("branch %s has no potentials", stmt.Target.Value),
		))
		return nil
	}
	return stmt
}

// pot { statements }
func (p *Parser) parsePotentialBlock() *ast.PotentialBlock {
	pot := &ast.PotentialBlock{Token: p.curToken}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	p.nextToken()
	p.skipTerminators()

	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt == nil {
			return nil
		}
		pot.Body = append(pot.Body, stmt)
		p.nextToken()
		p.skipTerminators()
	}

	if !p.curTokenIs(token.RBRACE) {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP002,
			p.curToken,
			"expected } to close pot block",
		))
		return nil
	}
	return pot
}

// merge x select 2  |  merge x
func (p *Parser) parseMergeStatement() ast.Statement {
	stmt := &ast.MergeStatement{Token: p.curToken, Ordinal: 1}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Target = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}

	if p.peekTokenIs(token.SELECT) {
		p.nextToken()
		if !p.expectPeek(token.INT) {
			return nil
		}
		ordinal, ok := p.curToken.Literal.(int64)
		if !ok || ordinal < 1 {
			p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
				diagnostics.ErrP004,
				p.curToken,
				fmt.Sprintf("merge selector must be a positive ordinal, got %s", p.curToken.Lexeme),
			))
			return nil
		}
		stmt.Ordinal = int(ordinal)
	}
	return stmt
}

// abort x
func (p *Parser) parseAbortStatement() ast.Statement {
	stmt := &ast.AbortStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Target = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
	return stmt
}

// print expr
func (p *Parser) parsePrintStatement() ast.Statement {
	stmt := &ast.PrintStatement{Token: p.curToken}
	p.nextToken()

	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}
	return stmt
}

// input "prompt? " name  |  input name
func (p *Parser) parseInputStatement() ast.Statement {
	stmt := &ast.InputStatement{Token: p.curToken}

	if p.peekTokenIs(token.STRING) {
		p.nextToken()
		stmt.Prompt, _ = p.curToken.Literal.(string)
	}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
	return stmt
}

// listpush xs expr
func (p *Parser) parseListPushStatement() ast.Statement {
	stmt := &ast.ListPushStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}

	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}
	return stmt
}

// setinsert s expr
func (p *Parser) parseSetInsertStatement() ast.Statement {
	stmt := &ast.SetInsertStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}

	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}
	stmt.Expression = p.parseExpression(LOWEST)
	if stmt.Expression == nil {
		return nil
	}
	return stmt
}
