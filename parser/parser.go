/*
File    : wisk/parser/parser.go

Package parser implements a recursive-descent parser for Wisk, turning a
token stream from lexer into an ast.Program. It keeps the teacher's
two-token lookahead (CurrToken/NextToken, advance()) but uses one function
per precedence level (the four binary levels share parseBinaryLevel)
rather than go-mix's UnaryFuncs/BinaryFuncs dispatch tables, covers the
grammar spec.md §4.2 defines, and fails fast on the first error rather
than collecting a list.
*/
package parser

import (
	"fmt"

	"github.com/wisklang/wisk/ast"
	"github.com/wisklang/wisk/lexer"
	"github.com/wisklang/wisk/reporter"
	"github.com/wisklang/wisk/token"
)

const maxArguments = 255

// Parser converts a token stream into an AST. It is single-use: build one
// per parse, call Parse once.
type Parser struct {
	lex *lexer.Lexer

	curr token.Token
	peek token.Token

	// lexErr, if non-nil, is an error surfaced by the lexer while filling
	// curr/peek; it is returned as soon as the parser reaches that token.
	lexErr error
}

// New creates a Parser reading from lx.
func New(lx *lexer.Lexer) *Parser {
	p := &Parser{lex: lx}
	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.curr = p.peek
	tok, err := p.lex.NextToken()
	if err != nil {
		p.lexErr = err
		p.peek = token.Token{Type: token.EOF, Pos: tok.Pos}
		return
	}
	p.peek = tok
}

func (p *Parser) currIs(typ token.Type) bool { return p.curr.Type == typ }

// currKeyword reports whether curr is the KEYWORD token spelled kw.
func (p *Parser) currKeyword(kw string) bool {
	return p.curr.Type == token.KEYWORD && p.curr.Literal == kw
}

// expect advances past curr if it matches (typ, literal); otherwise it
// raises a syntax error with msg anchored to curr's position.
func (p *Parser) expect(typ token.Type, literal, msg string) error {
	if p.curr.Is(typ, literal) {
		p.advance()
		return nil
	}
	return p.syntaxErrorAt(p.curr.Pos, msg)
}

func (p *Parser) syntaxErrorAt(pos token.Position, msg string) error {
	end := pos
	end.Column++
	end.Offset++
	return reporter.NewSyntaxError(pos, end, msg)
}

func (p *Parser) syntaxError(tok token.Token, msg string) error {
	return reporter.NewSyntaxError(tok.Pos, tok.End(), msg)
}

// Parse consumes the entire token stream and returns the resulting
// program, or the first error encountered.
func Parse(lx *lexer.Lexer) (*ast.Program, error) {
	p := New(lx)
	prog := &ast.Program{}
	for !p.currIs(token.EOF) {
		if p.lexErr != nil {
			return nil, p.lexErr
		}
		stmt, err := p.parseDeclaration()
		if err != nil {
			if p.lexErr != nil {
				return nil, p.lexErr
			}
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	if p.lexErr != nil {
		return nil, p.lexErr
	}
	return prog, nil
}

// ---- declarations & statements -----------------------------------------

func (p *Parser) parseDeclaration() (ast.Stmt, error) {
	switch {
	case p.currKeyword("var"):
		return p.parseVarDecl()
	case p.currKeyword("fun"):
		return p.parseFunctionDecl()
	default:
		return p.parseStatement()
	}
}

func (p *Parser) parseVarDecl() (ast.Stmt, error) {
	p.advance() // consume 'var'
	if !p.currIs(token.IDENTIFIER) {
		return nil, p.syntaxError(p.curr, "Expected variable name")
	}
	name := p.curr
	p.advance()

	var initializer ast.Expr
	if p.currIs(token.EQ) {
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		initializer = expr
	}

	if err := p.expect(token.SEMI, ";", "Expected ';'"); err != nil {
		return nil, err
	}
	return &ast.VarStmt{Name: name, Initializer: initializer}, nil
}

func (p *Parser) parseFunctionDecl() (ast.Stmt, error) {
	p.advance() // consume 'fun'
	if !p.currIs(token.IDENTIFIER) {
		return nil, p.syntaxError(p.curr, "Expected function name")
	}
	name := p.curr
	p.advance()

	if err := p.expect(token.LPAREN, "(", "Expected '('"); err != nil {
		return nil, err
	}

	var params []token.Token
	if !p.currIs(token.RPAREN) {
		for {
			if !p.currIs(token.IDENTIFIER) {
				return nil, p.syntaxError(p.curr, "Expected parameter name")
			}
			params = append(params, p.curr)
			p.advance()
			if !p.currIs(token.COMMA) {
				break
			}
			p.advance()
		}
	}
	if err := p.expect(token.RPAREN, ")", "Expected ')'"); err != nil {
		return nil, err
	}
	if !p.currIs(token.LBRACE) {
		return nil, p.syntaxError(p.curr, "Expected '}'")
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionStmt{Name: name, Params: params, Body: body.Statements}, nil
}

func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch {
	case p.currKeyword("print"):
		return p.parsePrintStmt()
	case p.currKeyword("if"):
		return p.parseIfStmt()
	case p.currKeyword("while"):
		return p.parseWhileStmt()
	case p.currKeyword("for"):
		return p.parseForStmt()
	case p.currKeyword("return"):
		return p.parseReturnStmt()
	case p.currIs(token.LBRACE):
		return p.parseBlock()
	default:
		return p.parseExpressionStmt()
	}
}

func (p *Parser) parsePrintStmt() (ast.Stmt, error) {
	kw := p.curr
	p.advance()
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.SEMI, ";", "Expected ';' after expression"); err != nil {
		return nil, err
	}
	return &ast.PrintStmt{Keyword: kw, Expr: expr}, nil
}

func (p *Parser) parseIfStmt() (ast.Stmt, error) {
	kw := p.curr
	p.advance()
	if err := p.expect(token.LPAREN, "(", "Expected '('"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN, ")", "Expected ')'"); err != nil {
		return nil, err
	}
	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	var elseBranch ast.Stmt
	if p.currKeyword("else") {
		p.advance()
		elseBranch, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfStmt{Keyword: kw, Condition: cond, Then: then, Else: elseBranch}, nil
}

func (p *Parser) parseWhileStmt() (ast.Stmt, error) {
	kw := p.curr
	p.advance()
	if err := p.expect(token.LPAREN, "(", "Expected '('"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN, ")", "Expected ')'"); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Keyword: kw, Condition: cond, Body: body}, nil
}

// parseForStmt desugars `for (init; cond; incr) body` into
// Block([init, While(cond, Block([body, incr]))]), per spec.md §4.2. A
// missing cond becomes the literal true; the outer Block is built only
// when init is present and the inner one only when incr is present, so
// `for (;;) body` yields a bare While.
func (p *Parser) parseForStmt() (ast.Stmt, error) {
	kw := p.curr
	p.advance()
	if err := p.expect(token.LPAREN, "(", "Expected '('"); err != nil {
		return nil, err
	}

	var init ast.Stmt
	switch {
	case p.currIs(token.SEMI):
		p.advance()
	case p.currKeyword("var"):
		decl, err := p.parseVarDecl()
		if err != nil {
			return nil, err
		}
		init = decl
	default:
		stmt, err := p.parseExpressionStmt()
		if err != nil {
			return nil, err
		}
		init = stmt
	}

	var cond ast.Expr
	if !p.currIs(token.SEMI) {
		c, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		cond = c
	}
	if err := p.expect(token.SEMI, ";", "Expected ';'"); err != nil {
		return nil, err
	}

	var incr ast.Expr
	if !p.currIs(token.RPAREN) {
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		incr = e
	}
	if err := p.expect(token.RPAREN, ")", "Expected ')'"); err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	if incr != nil {
		body = &ast.BlockStmt{LBrace: kw, Statements: []ast.Stmt{body, &ast.ExpressionStmt{Expr: incr}}}
	}
	if cond == nil {
		cond = &ast.BooleanLiteral{Token: kw, Value: true}
	}
	loop := ast.Stmt(&ast.WhileStmt{Keyword: kw, Condition: cond, Body: body})
	if init != nil {
		loop = &ast.BlockStmt{LBrace: kw, Statements: []ast.Stmt{init, loop}}
	}
	return loop, nil
}

func (p *Parser) parseReturnStmt() (ast.Stmt, error) {
	kw := p.curr
	p.advance()
	var value ast.Expr
	if !p.currIs(token.SEMI) {
		v, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		value = v
	}
	if err := p.expect(token.SEMI, ";", "Expected ';'"); err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Keyword: kw, Value: value}, nil
}

func (p *Parser) parseBlock() (*ast.BlockStmt, error) {
	lbrace := p.curr
	p.advance() // consume '{'
	var stmts []ast.Stmt
	for !p.currIs(token.RBRACE) && !p.currIs(token.EOF) {
		stmt, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if err := p.expect(token.RBRACE, "}", "Expected '}'"); err != nil {
		return nil, err
	}
	return &ast.BlockStmt{LBrace: lbrace, Statements: stmts}, nil
}

func (p *Parser) parseExpressionStmt() (ast.Stmt, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.SEMI, ";", "Expected ';' after expression"); err != nil {
		return nil, err
	}
	return &ast.ExpressionStmt{Expr: expr}, nil
}

// ---- expressions --------------------------------------------------------

func (p *Parser) parseExpression() (ast.Expr, error) {
	return p.parseAssignment()
}

// parseAssignment handles `IDENT "=" assignment | logic_or`. The left side
// is parsed as an ordinary logic_or expression first; only after seeing
// '=' do we check that it was a bare identifier, per spec.md §4.2's
// "assignment validation" rule.
func (p *Parser) parseAssignment() (ast.Expr, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if !p.currIs(token.EQ) {
		return left, nil
	}
	eq := p.curr
	p.advance()
	value, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	ident, ok := left.(*ast.Identifier)
	if !ok {
		return nil, p.syntaxError(eq, "Invalid assignment target")
	}
	return &ast.AssignExpr{Name: ident, Op: eq, Value: value}, nil
}

func (p *Parser) parseOr() (ast.Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.currKeyword("or") {
		op := p.curr
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.LogicalExpr{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (ast.Expr, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.currKeyword("and") {
		op := p.curr
		p.advance()
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = &ast.LogicalExpr{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) parseEquality() (ast.Expr, error) {
	return p.parseBinaryLevel(p.parseComparison, token.EQUAL_EQUAL, token.BANG_EQUAL)
}

func (p *Parser) parseComparison() (ast.Expr, error) {
	return p.parseBinaryLevel(p.parseTerm, token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL)
}

func (p *Parser) parseTerm() (ast.Expr, error) {
	return p.parseBinaryLevel(p.parseFactor, token.PLUS, token.MINUS)
}

func (p *Parser) parseFactor() (ast.Expr, error) {
	return p.parseBinaryLevel(p.parseUnary, token.MUL, token.DIV)
}

// parseBinaryLevel implements one left-associative precedence level:
// next() parses an operand, then any run of operators in ops each pulls
// in another operand via next(). Shared by equality/comparison/term/
// factor, which differ only in their operand parser and operator set.
func (p *Parser) parseBinaryLevel(next func() (ast.Expr, error), ops ...token.Type) (ast.Expr, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for p.matchesAny(ops) {
		op := p.curr
		p.advance()
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) matchesAny(ops []token.Type) bool {
	for _, t := range ops {
		if p.curr.Type == t {
			return true
		}
	}
	return false
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	if p.currIs(token.MINUS) || p.currIs(token.BANG) {
		op := p.curr
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: op, Operand: operand}, nil
	}
	return p.parseCall()
}

func (p *Parser) parseCall() (ast.Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.currIs(token.LPAREN) {
		expr, err = p.finishCall(expr)
		if err != nil {
			return nil, err
		}
	}
	return expr, nil
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, error) {
	paren := p.curr
	p.advance() // consume '('

	var args []ast.Expr
	if !p.currIs(token.RPAREN) {
		for {
			if len(args) >= maxArguments {
				return nil, p.syntaxError(p.curr, "Can't have more than 255 arguments")
			}
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.currIs(token.COMMA) {
				break
			}
			p.advance()
		}
	}
	if err := p.expect(token.RPAREN, ")", "Expected ')'"); err != nil {
		return nil, err
	}
	return &ast.CallExpr{Callee: callee, Paren: paren, Args: args}, nil
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.curr
	switch {
	case tok.Type == token.NUMBER:
		p.advance()
		value, err := parseFloat(tok.Literal)
		if err != nil {
			return nil, p.syntaxError(tok, "Expected number")
		}
		return &ast.NumberLiteral{Token: tok, Value: value}, nil

	case tok.Type == token.STRING:
		p.advance()
		return &ast.StringLiteral{Token: tok, Value: tok.Literal}, nil

	case tok.Type == token.IDENTIFIER:
		p.advance()
		return &ast.Identifier{Token: tok, Name: tok.Literal}, nil

	case tok.Is(token.KEYWORD, "true"):
		p.advance()
		return &ast.BooleanLiteral{Token: tok, Value: true}, nil

	case tok.Is(token.KEYWORD, "false"):
		p.advance()
		return &ast.BooleanLiteral{Token: tok, Value: false}, nil

	case tok.Is(token.KEYWORD, "nil"):
		p.advance()
		return &ast.NilLiteral{Token: tok}, nil

	case tok.Type == token.LPAREN:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN, ")", "Expected ')'"); err != nil {
			return nil, err
		}
		return expr, nil

	default:
		if p.lexErr != nil {
			return nil, p.lexErr
		}
		return nil, p.syntaxError(tok, "Unexpected token")
	}
}

func parseFloat(lit string) (float64, error) {
	var f float64
	_, err := fmt.Sscanf(lit, "%g", &f)
	return f, err
}
