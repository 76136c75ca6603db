/*
File    : wisk/ast/ast.go

Package ast defines the abstract syntax tree produced by the parser and
walked by the evaluator. Every node retains at least one token so runtime
errors can be anchored to a source position, per spec.md §3. Nodes are
immutable once built: the parser owns them for the life of a Program, the
evaluator only reads them.

The node set mirrors the teacher's visitor-dispatched AST (parser/node.go
in go-mix), narrowed to the eighteen node kinds spec.md §3 names and with
NodeVisitor renamed Visitor.
*/
package ast

import "github.com/wisklang/wisk/token"

// Node is the base of every AST node: something with a source position,
// usable for error reporting.
type Node interface {
	Pos() token.Position
}

// Expr is any node that evaluates to a value.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any node that is executed for effect. Per spec.md's grammar,
// every expression doubles as an expression-statement, but that wrapping
// is explicit here (ExpressionStmt) rather than Expr itself satisfying
// Stmt, which keeps the two interfaces from collapsing into one.
type Stmt interface {
	Node
	stmtNode()
}

// Visitor dispatches over every concrete node type, in the style of the
// teacher's NodeVisitor. Used by ast.Printer (the --dump-ast debug tool)
// and available to any future tooling that wants to walk the tree without
// modifying ast itself.
type Visitor interface {
	VisitNumberLiteral(*NumberLiteral) any
	VisitStringLiteral(*StringLiteral) any
	VisitBooleanLiteral(*BooleanLiteral) any
	VisitNilLiteral(*NilLiteral) any
	VisitIdentifier(*Identifier) any
	VisitUnaryExpr(*UnaryExpr) any
	VisitBinaryExpr(*BinaryExpr) any
	VisitLogicalExpr(*LogicalExpr) any
	VisitAssignExpr(*AssignExpr) any
	VisitCallExpr(*CallExpr) any

	VisitPrintStmt(*PrintStmt) any
	VisitExpressionStmt(*ExpressionStmt) any
	VisitVarStmt(*VarStmt) any
	VisitBlockStmt(*BlockStmt) any
	VisitIfStmt(*IfStmt) any
	VisitWhileStmt(*WhileStmt) any
	VisitFunctionStmt(*FunctionStmt) any
	VisitReturnStmt(*ReturnStmt) any
}

// Program is the root of a parsed source: an ordered list of top-level
// declarations/statements.
type Program struct {
	Statements []Stmt
}

// ---- Expressions -----------------------------------------------------

// NumberLiteral is a numeric literal, e.g. 42 or 3.14.
type NumberLiteral struct {
	Token token.Token
	Value float64
}

func (n *NumberLiteral) Pos() token.Position { return n.Token.Pos }
func (n *NumberLiteral) exprNode()           {}
func (n *NumberLiteral) Accept(v Visitor) any { return v.VisitNumberLiteral(n) }

// StringLiteral is a string literal, e.g. "hello".
type StringLiteral struct {
	Token token.Token
	Value string
}

func (n *StringLiteral) Pos() token.Position { return n.Token.Pos }
func (n *StringLiteral) exprNode()           {}
func (n *StringLiteral) Accept(v Visitor) any { return v.VisitStringLiteral(n) }

// BooleanLiteral is the true/false literal.
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (n *BooleanLiteral) Pos() token.Position { return n.Token.Pos }
func (n *BooleanLiteral) exprNode()           {}
func (n *BooleanLiteral) Accept(v Visitor) any { return v.VisitBooleanLiteral(n) }

// NilLiteral is the nil literal.
type NilLiteral struct {
	Token token.Token
}

func (n *NilLiteral) Pos() token.Position { return n.Token.Pos }
func (n *NilLiteral) exprNode()           {}
func (n *NilLiteral) Accept(v Visitor) any { return v.VisitNilLiteral(n) }

// Identifier is a bare name reference, e.g. x.
type Identifier struct {
	Token token.Token
	Name  string
}

func (n *Identifier) Pos() token.Position { return n.Token.Pos }
func (n *Identifier) exprNode()           {}
func (n *Identifier) Accept(v Visitor) any { return v.VisitIdentifier(n) }

// UnaryExpr is a prefix operator applied to one operand: -x or !x.
type UnaryExpr struct {
	Op      token.Token
	Operand Expr
}

func (n *UnaryExpr) Pos() token.Position { return n.Op.Pos }
func (n *UnaryExpr) exprNode()           {}
func (n *UnaryExpr) Accept(v Visitor) any { return v.VisitUnaryExpr(n) }

// BinaryExpr is a binary arithmetic, comparison, or equality expression.
type BinaryExpr struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (n *BinaryExpr) Pos() token.Position { return n.Op.Pos }
func (n *BinaryExpr) exprNode()           {}
func (n *BinaryExpr) Accept(v Visitor) any { return v.VisitBinaryExpr(n) }

// LogicalExpr is a short-circuiting and/or expression.
type LogicalExpr struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (n *LogicalExpr) Pos() token.Position { return n.Op.Pos }
func (n *LogicalExpr) exprNode()           {}
func (n *LogicalExpr) Accept(v Visitor) any { return v.VisitLogicalExpr(n) }

// AssignExpr assigns Value to an already-declared identifier and
// evaluates to the assigned value.
type AssignExpr struct {
	Name  *Identifier
	Op    token.Token
	Value Expr
}

func (n *AssignExpr) Pos() token.Position { return n.Op.Pos }
func (n *AssignExpr) exprNode()           {}
func (n *AssignExpr) Accept(v Visitor) any { return v.VisitAssignExpr(n) }

// CallExpr invokes Callee with Args. Paren is the opening '(' token,
// retained so arity errors can be anchored to the call site.
type CallExpr struct {
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func (n *CallExpr) Pos() token.Position { return n.Paren.Pos }
func (n *CallExpr) exprNode()           {}
func (n *CallExpr) Accept(v Visitor) any { return v.VisitCallExpr(n) }

// ---- Statements --------------------------------------------------------

// PrintStmt evaluates Expr and writes its formatted form plus a newline.
type PrintStmt struct {
	Keyword token.Token
	Expr    Expr
}

func (n *PrintStmt) Pos() token.Position { return n.Keyword.Pos }
func (n *PrintStmt) stmtNode()           {}
func (n *PrintStmt) Accept(v Visitor) any { return v.VisitPrintStmt(n) }

// ExpressionStmt evaluates Expr for its side effects (or, for the final
// top-level statement of a program, its value).
type ExpressionStmt struct {
	Expr Expr
}

func (n *ExpressionStmt) Pos() token.Position { return n.Expr.Pos() }
func (n *ExpressionStmt) stmtNode()           {}
func (n *ExpressionStmt) Accept(v Visitor) any { return v.VisitExpressionStmt(n) }

// VarStmt declares Name in the current scope, bound to Initializer's
// value, or nil if Initializer is absent.
type VarStmt struct {
	Name        token.Token
	Initializer Expr
}

func (n *VarStmt) Pos() token.Position { return n.Name.Pos }
func (n *VarStmt) stmtNode()           {}
func (n *VarStmt) Accept(v Visitor) any { return v.VisitVarStmt(n) }

// BlockStmt executes Statements in a fresh child scope.
type BlockStmt struct {
	LBrace     token.Token
	Statements []Stmt
}

func (n *BlockStmt) Pos() token.Position { return n.LBrace.Pos }
func (n *BlockStmt) stmtNode()           {}
func (n *BlockStmt) Accept(v Visitor) any { return v.VisitBlockStmt(n) }

// IfStmt is a conditional; Else is nil when there is no else branch.
type IfStmt struct {
	Keyword   token.Token
	Condition Expr
	Then      Stmt
	Else      Stmt
}

func (n *IfStmt) Pos() token.Position { return n.Keyword.Pos }
func (n *IfStmt) stmtNode()           {}
func (n *IfStmt) Accept(v Visitor) any { return v.VisitIfStmt(n) }

// WhileStmt is a condition-checked loop. The parser desugars `for` into
// this plus a Block, per spec.md §4.2.
type WhileStmt struct {
	Keyword   token.Token
	Condition Expr
	Body      Stmt
}

func (n *WhileStmt) Pos() token.Position { return n.Keyword.Pos }
func (n *WhileStmt) stmtNode()           {}
func (n *WhileStmt) Accept(v Visitor) any { return v.VisitWhileStmt(n) }

// FunctionStmt declares a named function with its parameter list and body.
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (n *FunctionStmt) Pos() token.Position { return n.Name.Pos }
func (n *FunctionStmt) stmtNode()           {}
func (n *FunctionStmt) Accept(v Visitor) any { return v.VisitFunctionStmt(n) }

// ReturnStmt unwinds to the nearest enclosing call, carrying Value (or nil
// if Value is absent).
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr
}

func (n *ReturnStmt) Pos() token.Position { return n.Keyword.Pos }
func (n *ReturnStmt) stmtNode()           {}
func (n *ReturnStmt) Accept(v Visitor) any { return v.VisitReturnStmt(n) }
