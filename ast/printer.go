package ast

import (
	"bytes"
	"fmt"
)

const indentSize = 2

// Printer renders a tree of indented "<Kind> (...)" lines (e.g.
// "Binary (+)"), one per node, children indented two spaces deeper than
// their parent, in the style of go-mix's PrintingVisitor. It backs the
// --dump-ast debug flag.
type Printer struct {
	indent int
	buf    bytes.Buffer
}

func (p *Printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString(" ")
	}
}

func (p *Printer) line(format string, args ...any) {
	p.writeIndent()
	p.buf.WriteString(fmt.Sprintf(format, args...))
	p.buf.WriteString("\n")
}

func (p *Printer) walk(n Node) {
	p.indent += indentSize
	n.(interface{ Accept(Visitor) any }).Accept(p)
	p.indent -= indentSize
}

// String returns everything printed so far.
func (p *Printer) String() string { return p.buf.String() }

// Print renders program and returns the resulting text.
func Print(program *Program) string {
	p := &Printer{}
	for _, stmt := range program.Statements {
		stmt.(interface{ Accept(Visitor) any }).Accept(p)
	}
	return p.String()
}

func (p *Printer) VisitNumberLiteral(n *NumberLiteral) any {
	p.line("Number (%s => %v)", n.Token.Literal, n.Value)
	return nil
}

func (p *Printer) VisitStringLiteral(n *StringLiteral) any {
	p.line("String (%q)", n.Value)
	return nil
}

func (p *Printer) VisitBooleanLiteral(n *BooleanLiteral) any {
	p.line("Boolean (%t)", n.Value)
	return nil
}

func (p *Printer) VisitNilLiteral(n *NilLiteral) any {
	p.line("Nil")
	return nil
}

func (p *Printer) VisitIdentifier(n *Identifier) any {
	p.line("Identifier (%s)", n.Name)
	return nil
}

func (p *Printer) VisitUnaryExpr(n *UnaryExpr) any {
	p.line("Unary (%s)", n.Op.Literal)
	p.walk(n.Operand)
	return nil
}

func (p *Printer) VisitBinaryExpr(n *BinaryExpr) any {
	p.line("Binary (%s)", n.Op.Literal)
	p.walk(n.Left)
	p.walk(n.Right)
	return nil
}

func (p *Printer) VisitLogicalExpr(n *LogicalExpr) any {
	p.line("Logical (%s)", n.Op.Literal)
	p.walk(n.Left)
	p.walk(n.Right)
	return nil
}

func (p *Printer) VisitAssignExpr(n *AssignExpr) any {
	p.line("Assign (%s)", n.Name.Name)
	p.walk(n.Value)
	return nil
}

func (p *Printer) VisitCallExpr(n *CallExpr) any {
	p.line("Call (%d args)", len(n.Args))
	p.walk(n.Callee)
	for _, a := range n.Args {
		p.walk(a)
	}
	return nil
}

func (p *Printer) VisitPrintStmt(n *PrintStmt) any {
	p.line("Print")
	p.walk(n.Expr)
	return nil
}

func (p *Printer) VisitExpressionStmt(n *ExpressionStmt) any {
	p.line("ExpressionStmt")
	p.walk(n.Expr)
	return nil
}

func (p *Printer) VisitVarStmt(n *VarStmt) any {
	p.line("Var (%s)", n.Name.Literal)
	if n.Initializer != nil {
		p.walk(n.Initializer)
	}
	return nil
}

func (p *Printer) VisitBlockStmt(n *BlockStmt) any {
	p.line("Block (%d stmts)", len(n.Statements))
	for _, s := range n.Statements {
		p.walk(s)
	}
	return nil
}

func (p *Printer) VisitIfStmt(n *IfStmt) any {
	p.line("If")
	p.walk(n.Condition)
	p.walk(n.Then)
	if n.Else != nil {
		p.walk(n.Else)
	}
	return nil
}

func (p *Printer) VisitWhileStmt(n *WhileStmt) any {
	p.line("While")
	p.walk(n.Condition)
	p.walk(n.Body)
	return nil
}

func (p *Printer) VisitFunctionStmt(n *FunctionStmt) any {
	p.line("Function (%s, %d params)", n.Name.Literal, len(n.Params))
	for _, s := range n.Body {
		p.walk(s)
	}
	return nil
}

func (p *Printer) VisitReturnStmt(n *ReturnStmt) any {
	p.line("Return")
	if n.Value != nil {
		p.walk(n.Value)
	}
	return nil
}
