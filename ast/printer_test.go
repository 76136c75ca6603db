package ast

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisklang/wisk/token"
)

func ident(name string) *Identifier {
	return &Identifier{Token: token.Token{Type: token.IDENTIFIER, Literal: name}, Name: name}
}

func TestPrint_NumberLiteral(t *testing.T) {
	prog := &Program{Statements: []Stmt{
		&ExpressionStmt{Expr: &NumberLiteral{Token: token.Token{Literal: "42"}, Value: 42}},
	}}
	out := Print(prog)
	assert.Contains(t, out, "ExpressionStmt")
	assert.Contains(t, out, "Number (42 => 42)")
}

func TestPrint_NestsChildrenWithIncreasingIndent(t *testing.T) {
	prog := &Program{Statements: []Stmt{
		&PrintStmt{Expr: &BinaryExpr{
			Left:  &NumberLiteral{Value: 1},
			Op:    token.Token{Literal: "+"},
			Right: &NumberLiteral{Value: 2},
		}},
	}}
	out := Print(prog)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4, "expected 4 lines: Print, Binary, Number, Number")
	assert.Equal(t, "Print", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "  Binary"))
	assert.True(t, strings.HasPrefix(lines[2], "    Number"))
	assert.True(t, strings.HasPrefix(lines[3], "    Number"))
}

func TestPrint_FunctionAndCall(t *testing.T) {
	prog := &Program{Statements: []Stmt{
		&FunctionStmt{
			Name:   token.Token{Literal: "add"},
			Params: []token.Token{{Literal: "a"}, {Literal: "b"}},
			Body: []Stmt{
				&ReturnStmt{Value: &CallExpr{Callee: ident("add"), Args: []Expr{&NumberLiteral{Value: 1}}}},
			},
		},
	}}
	out := Print(prog)
	assert.Contains(t, out, "Function (add, 2 params)")
	assert.Contains(t, out, "Return")
	assert.Contains(t, out, "Call (1 args)")
}
