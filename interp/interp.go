/*
File    : wisk/interp/interp.go

Package interp walks a Wisk ast.Program and executes it: resolving names
through env.Environment scope chains, applying Wisk's runtime type rules,
and invoking object.Callable values. It is grounded on go-mix's
eval.Evaluator (Writer for builtin output, a Builtins table pre-seeded
into the global scope, CreateError for consistently-shaped runtime
errors) adapted to a direct type-switch walk over ast nodes rather than
the teacher's node-parses-its-own-value approach, since Wisk's values
depend on variables and control flow the parser cannot see.
*/
package interp

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/wisklang/wisk/ast"
	"github.com/wisklang/wisk/env"
	"github.com/wisklang/wisk/object"
	"github.com/wisklang/wisk/reporter"
	"github.com/wisklang/wisk/token"
)

// Error detail strings, kept verbatim per spec.md §7 so diagnostics match
// across implementations byte-for-byte.
const (
	errDivisionByZero    = "Division by zero"
	errArithmeticTypes   = "Can apply arithmetic operations only to numbers"
	errBinaryOpTypes     = "Can apply binary operations only to numbers, strings or booleans.\nThe operands must be of the same type."
	errNotCallable       = "Can only call functions and classes"
	errUndefinedVarBase  = "Undefined variable"
	errTopLevelReturn    = "Can't return from top-level code"
	errAlreadyDefinedFmt = "Variable '%s' already defined"
)

// returnSignal is thrown (via Go panic/recover, see callFunction and
// Interpret) to unwind from a `return` statement up to the enclosing
// Function.Call frame. It
// deliberately does not implement error: spec.md §4.3 requires Return to
// be a distinct control-flow channel, never mistaken for a propagating
// diagnostic.
type returnSignal struct {
	value object.Object
	pos   token.Position
}

// Interpreter executes a parsed program. It holds the global scope,
// the current scope pointer (mutated as blocks/calls push and pop),
// and the writer `print` sends output to.
type Interpreter struct {
	Globals *env.Environment
	env     *env.Environment
	Out     io.Writer
}

// New creates an Interpreter with a fresh global scope pre-bound with
// Wisk's native functions (currently just clock, per spec.md §9).
func New() *Interpreter {
	globals := env.New(nil)
	it := &Interpreter{Globals: globals, env: globals, Out: os.Stdout}
	it.defineBuiltins()
	return it
}

func (it *Interpreter) defineBuiltins() {
	it.Globals.Define("clock", &object.Builtin{
		Name: "clock",
		Args: 0,
		Fn: func(_ any, _ []object.Object) (object.Object, error) {
			return &object.Number{Value: float64(time.Now().UnixNano()) / 1e9}, nil
		},
	})
}

// Interpret executes every statement in program in order. Per spec.md
// §4.3, if the program's last statement is a bare expression statement,
// its value is returned; otherwise the return is nil and callers should
// rely on Out for observable effects.
func (it *Interpreter) Interpret(program *ast.Program) (result object.Object, err error) {
	defer func() {
		if r := recover(); r != nil {
			if sig, ok := r.(returnSignal); ok {
				err = reporter.NewRuntimeError(sig.pos, sig.pos, errTopLevelReturn)
				return
			}
			panic(r)
		}
	}()

	for i, stmt := range program.Statements {
		if i == len(program.Statements)-1 {
			if exprStmt, ok := stmt.(*ast.ExpressionStmt); ok {
				result, err = it.eval(exprStmt.Expr)
				return result, err
			}
		}
		if err := it.exec(stmt); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

// exec executes one statement for effect.
func (it *Interpreter) exec(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := it.eval(s.Expr)
		return err

	case *ast.PrintStmt:
		v, err := it.eval(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(it.Out, v.String())
		return nil

	case *ast.VarStmt:
		var value object.Object = object.Null
		if s.Initializer != nil {
			v, err := it.eval(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		if err := it.env.Define(s.Name.Literal, value); err != nil {
			return it.runtimeErr(s.Name, fmt.Sprintf(errAlreadyDefinedFmt, s.Name.Literal))
		}
		return nil

	case *ast.BlockStmt:
		return it.execBlock(s.Statements, env.New(it.env))

	case *ast.IfStmt:
		cond, err := it.eval(s.Condition)
		if err != nil {
			return err
		}
		if isTruthy(cond) {
			return it.exec(s.Then)
		}
		if s.Else != nil {
			return it.exec(s.Else)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := it.eval(s.Condition)
			if err != nil {
				return err
			}
			if !isTruthy(cond) {
				return nil
			}
			if err := it.exec(s.Body); err != nil {
				return err
			}
		}

	case *ast.FunctionStmt:
		if err := it.env.Define(s.Name.Literal, &Function{Declaration: s}); err != nil {
			return it.runtimeErr(s.Name, fmt.Sprintf(errAlreadyDefinedFmt, s.Name.Literal))
		}
		return nil

	case *ast.ReturnStmt:
		var value object.Object = object.Null
		if s.Value != nil {
			v, err := it.eval(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		panic(returnSignal{value: value, pos: s.Keyword.Pos})

	default:
		return fmt.Errorf("interp: unhandled statement type %T", stmt)
	}
}

// execBlock runs stmts inside scope, restoring the interpreter's previous
// scope on the way out regardless of how execution ends — normal
// completion, an error, or an in-flight returnSignal panic — per
// spec.md §8's scope-restoration invariant.
func (it *Interpreter) execBlock(stmts []ast.Stmt, scope *env.Environment) error {
	previous := it.env
	it.env = scope
	defer func() { it.env = previous }()

	for _, stmt := range stmts {
		if err := it.exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// callFunction binds fn's parameters to args in a scope parented to
// globals (not the caller's scope — spec.md §9's closure-free call
// semantics) and runs its body, recovering the returnSignal panic that
// carries its result back out.
func (it *Interpreter) callFunction(fn *Function, args []object.Object) (result object.Object, err error) {
	call := env.New(it.Globals)
	for i, param := range fn.Declaration.Params {
		call.Define(param.Literal, args[i])
	}

	defer func() {
		if r := recover(); r != nil {
			if sig, ok := r.(returnSignal); ok {
				result, err = sig.value, nil
				return
			}
			panic(r)
		}
	}()

	if execErr := it.execBlock(fn.Declaration.Body, call); execErr != nil {
		return nil, execErr
	}
	return object.Null, nil
}

// eval evaluates an expression to a value.
func (it *Interpreter) eval(expr ast.Expr) (object.Object, error) {
	switch e := expr.(type) {
	case *ast.NumberLiteral:
		return &object.Number{Value: e.Value}, nil

	case *ast.StringLiteral:
		return &object.String{Value: e.Value}, nil

	case *ast.BooleanLiteral:
		return object.NativeBool(e.Value), nil

	case *ast.NilLiteral:
		return object.Null, nil

	case *ast.Identifier:
		v, ok := it.env.Get(e.Name)
		if !ok {
			return nil, it.runtimeErr(e.Token, fmt.Sprintf("%s '%s'", errUndefinedVarBase, e.Name))
		}
		return v, nil

	case *ast.UnaryExpr:
		return it.evalUnary(e)

	case *ast.BinaryExpr:
		return it.evalBinary(e)

	case *ast.LogicalExpr:
		return it.evalLogical(e)

	case *ast.AssignExpr:
		v, err := it.eval(e.Value)
		if err != nil {
			return nil, err
		}
		if err := it.env.Assign(e.Name.Name, v); err != nil {
			return nil, it.runtimeErr(e.Name.Token, fmt.Sprintf("%s '%s'", errUndefinedVarBase, e.Name.Name))
		}
		return v, nil

	case *ast.CallExpr:
		return it.evalCall(e)

	default:
		return nil, fmt.Errorf("interp: unhandled expression type %T", expr)
	}
}

func (it *Interpreter) evalUnary(e *ast.UnaryExpr) (object.Object, error) {
	operand, err := it.eval(e.Operand)
	if err != nil {
		return nil, err
	}
	switch e.Op.Type {
	case token.MINUS:
		n, ok := operand.(*object.Number)
		if !ok {
			return nil, it.runtimeErr(e.Op, errArithmeticTypes)
		}
		return &object.Number{Value: -n.Value}, nil
	case token.BANG:
		return object.NativeBool(!isTruthy(operand)), nil
	default:
		return nil, fmt.Errorf("interp: unknown unary operator %s", e.Op.Literal)
	}
}

func (it *Interpreter) evalLogical(e *ast.LogicalExpr) (object.Object, error) {
	left, err := it.eval(e.Left)
	if err != nil {
		return nil, err
	}
	switch e.Op.Literal {
	case "or":
		if isTruthy(left) {
			return left, nil
		}
	case "and":
		if !isTruthy(left) {
			return left, nil
		}
	}
	return it.eval(e.Right)
}

func (it *Interpreter) evalBinary(e *ast.BinaryExpr) (object.Object, error) {
	left, err := it.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Type {
	case token.PLUS:
		if ln, ok := left.(*object.Number); ok {
			if rn, ok := right.(*object.Number); ok {
				return &object.Number{Value: ln.Value + rn.Value}, nil
			}
		}
		if ls, ok := left.(*object.String); ok {
			if rs, ok := right.(*object.String); ok {
				return &object.String{Value: ls.Value + rs.Value}, nil
			}
		}
		return nil, it.runtimeErr(e.Op, errBinaryOpTypes)

	case token.MINUS, token.MUL, token.DIV, token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL:
		ln, lok := left.(*object.Number)
		rn, rok := right.(*object.Number)
		if !lok || !rok {
			return nil, it.runtimeErr(e.Op, errArithmeticTypes)
		}
		switch e.Op.Type {
		case token.MINUS:
			return &object.Number{Value: ln.Value - rn.Value}, nil
		case token.MUL:
			return &object.Number{Value: ln.Value * rn.Value}, nil
		case token.DIV:
			if rn.Value == 0 {
				return nil, it.runtimeErr(e.Op, errDivisionByZero)
			}
			return &object.Number{Value: ln.Value / rn.Value}, nil
		case token.LESS:
			return object.NativeBool(ln.Value < rn.Value), nil
		case token.LESS_EQUAL:
			return object.NativeBool(ln.Value <= rn.Value), nil
		case token.GREATER:
			return object.NativeBool(ln.Value > rn.Value), nil
		case token.GREATER_EQUAL:
			return object.NativeBool(ln.Value >= rn.Value), nil
		}

	case token.EQUAL_EQUAL:
		return object.NativeBool(valuesEqual(left, right)), nil
	case token.BANG_EQUAL:
		return object.NativeBool(!valuesEqual(left, right)), nil
	}

	return nil, fmt.Errorf("interp: unknown binary operator %s", e.Op.Literal)
}

// valuesEqual implements spec.md §9's resolved cross-kind equality rule:
// same-kind operands compare by value; any other combination of
// {number, string, boolean, nil} is simply unequal rather than an error.
func valuesEqual(a, b object.Object) bool {
	switch av := a.(type) {
	case *object.Number:
		bv, ok := b.(*object.Number)
		return ok && av.Value == bv.Value
	case *object.String:
		bv, ok := b.(*object.String)
		return ok && av.Value == bv.Value
	case *object.Boolean:
		bv, ok := b.(*object.Boolean)
		return ok && av.Value == bv.Value
	case *object.Nil:
		_, ok := b.(*object.Nil)
		return ok
	default:
		return false
	}
}

func (it *Interpreter) evalCall(e *ast.CallExpr) (object.Object, error) {
	callee, err := it.eval(e.Callee)
	if err != nil {
		return nil, err
	}
	callable, ok := callee.(object.Callable)
	if !ok {
		return nil, it.runtimeErr(e.Paren, errNotCallable)
	}

	args := make([]object.Object, 0, len(e.Args))
	for _, a := range e.Args {
		v, err := it.eval(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	if len(args) != callable.Arity() {
		return nil, it.runtimeErr(e.Paren, fmt.Sprintf("Expected %d arguments, but got %d.", callable.Arity(), len(args)))
	}
	return callable.Call(it, args)
}

// isTruthy implements spec.md §4.3's truthiness rule: only nil and the
// boolean false are falsy, with no conflation of Boolean and strings.
func isTruthy(o object.Object) bool {
	switch v := o.(type) {
	case *object.Nil:
		return false
	case *object.Boolean:
		return v.Value
	default:
		return true
	}
}

func (it *Interpreter) runtimeErr(tok token.Token, detail string) error {
	return reporter.NewRuntimeError(tok.Pos, tok.End(), detail)
}
