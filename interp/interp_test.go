package interp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisklang/wisk/lexer"
	"github.com/wisklang/wisk/object"
	"github.com/wisklang/wisk/parser"
	"github.com/wisklang/wisk/reporter"
)

func run(t *testing.T, src string) (object.Object, string, error) {
	t.Helper()
	prog, err := parser.Parse(lexer.New("test", src))
	require.NoError(t, err)

	var out bytes.Buffer
	it := New()
	it.Out = &out
	result, err := it.Interpret(prog)
	return result, out.String(), err
}

func runErr(t *testing.T, src string) *reporter.Diagnostic {
	t.Helper()
	_, _, err := run(t, src)
	require.Error(t, err)
	diag, ok := err.(*reporter.Diagnostic)
	require.True(t, ok, "expected *reporter.Diagnostic, got %T", err)
	return diag
}

func TestInterpret_LastExpressionIsResult(t *testing.T) {
	result, _, err := run(t, "1 + 2;")
	require.NoError(t, err)
	num, ok := result.(*object.Number)
	require.True(t, ok)
	assert.Equal(t, 3.0, num.Value)
}

func TestInterpret_PrintWritesToOut(t *testing.T) {
	_, out, err := run(t, `print "hello";`)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
}

func TestInterpret_NumberFormatting(t *testing.T) {
	_, out, err := run(t, "print 3; print 3.5;")
	require.NoError(t, err)
	assert.Equal(t, "3.0\n3.5\n", out)
}

func TestInterpret_StringConcatenation(t *testing.T) {
	result, _, err := run(t, `"foo" + "bar";`)
	require.NoError(t, err)
	assert.Equal(t, "foobar", result.(*object.String).Value)
}

func TestInterpret_DivisionByZero(t *testing.T) {
	diag := runErr(t, "1 / 0;")
	assert.Equal(t, reporter.RuntimeErr, diag.Kind)
	assert.Equal(t, "Division by zero", diag.Detail)
}

func TestInterpret_ArithmeticTypeError(t *testing.T) {
	diag := runErr(t, `1 - "a";`)
	assert.Equal(t, "Can apply arithmetic operations only to numbers", diag.Detail)
}

func TestInterpret_PlusTypeMismatch(t *testing.T) {
	diag := runErr(t, `1 + "a";`)
	assert.Contains(t, diag.Detail, "Can apply binary operations only to numbers, strings or booleans")
}

func TestInterpret_UndefinedVariable(t *testing.T) {
	diag := runErr(t, "print x;")
	assert.Equal(t, "Undefined variable 'x'", diag.Detail)
}

func TestInterpret_AssignToUndefined(t *testing.T) {
	diag := runErr(t, "x = 1;")
	assert.Equal(t, "Undefined variable 'x'", diag.Detail)
}

func TestInterpret_NotCallable(t *testing.T) {
	diag := runErr(t, `var x = 1; x();`)
	assert.Equal(t, "Can only call functions and classes", diag.Detail)
}

func TestInterpret_Equality(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{"1 == 1;", true},
		{"1 == 2;", false},
		{`"a" == "a";`, true},
		{"1 == \"1\";", false},
		{"nil == nil;", true},
		{"nil == false;", false},
		{"true == true;", true},
	}
	for _, c := range cases {
		result, _, err := run(t, c.src)
		require.NoError(t, err)
		assert.Equal(t, c.want, result.(*object.Boolean).Value, c.src)
	}
}

func TestInterpret_LogicalShortCircuitReturnsOperandValue(t *testing.T) {
	result, _, err := run(t, `"a" or "b";`)
	require.NoError(t, err)
	assert.Equal(t, "a", result.(*object.String).Value)

	result, _, err = run(t, `nil or "b";`)
	require.NoError(t, err)
	assert.Equal(t, "b", result.(*object.String).Value)

	result, _, err = run(t, `nil and "b";`)
	require.NoError(t, err)
	_, isNil := result.(*object.Nil)
	assert.True(t, isNil)
}

func TestInterpret_VarDefineAndScope(t *testing.T) {
	_, out, err := run(t, `
var x = 1;
{
	var x = 2;
	print x;
}
print x;
`)
	require.NoError(t, err)
	assert.Equal(t, "2.0\n1.0\n", out)
}

func TestInterpret_RedeclaringVarInSameScopeIsRuntimeError(t *testing.T) {
	diag := runErr(t, `var x = 1; var x = 2;`)
	assert.Equal(t, "Variable 'x' already defined", diag.Detail)
}

func TestInterpret_RedeclaringFunctionInSameScopeIsRuntimeError(t *testing.T) {
	diag := runErr(t, `fun f() { return 1; } fun f() { return 2; }`)
	assert.Equal(t, "Variable 'f' already defined", diag.Detail)
}

func TestInterpret_BlockScopeRestoredOnError(t *testing.T) {
	it := New()
	it.Out = &bytes.Buffer{}
	prog, err := parser.Parse(lexer.New("test", `var x = "outer"; { var x = 1 / 0; }`))
	require.NoError(t, err)

	before := it.env
	_, ierr := it.Interpret(prog)
	require.Error(t, ierr)
	assert.Same(t, before, it.env)
}

func TestInterpret_IfElse(t *testing.T) {
	_, out, err := run(t, `if (true) print "yes"; else print "no";`)
	require.NoError(t, err)
	assert.Equal(t, "yes\n", out)

	_, out, err = run(t, `if (false) print "yes"; else print "no";`)
	require.NoError(t, err)
	assert.Equal(t, "no\n", out)
}

func TestInterpret_WhileLoop(t *testing.T) {
	_, out, err := run(t, `
var i = 0;
while (i < 3) {
	print i;
	i = i + 1;
}
`)
	require.NoError(t, err)
	assert.Equal(t, "0.0\n1.0\n2.0\n", out)
}

func TestInterpret_ForLoop(t *testing.T) {
	_, out, err := run(t, `
for (var i = 0; i < 3; i = i + 1) print i;
`)
	require.NoError(t, err)
	assert.Equal(t, "0.0\n1.0\n2.0\n", out)
}

func TestInterpret_FunctionCallAndReturn(t *testing.T) {
	result, _, err := run(t, `
fun add(a, b) {
	return a + b;
}
add(2, 3);
`)
	require.NoError(t, err)
	assert.Equal(t, 5.0, result.(*object.Number).Value)
}

func TestInterpret_FunctionImplicitReturnIsNil(t *testing.T) {
	result, _, err := run(t, `
fun noop() {}
noop();
`)
	require.NoError(t, err)
	_, isNil := result.(*object.Nil)
	assert.True(t, isNil)
}

func TestInterpret_FunctionArityMismatch(t *testing.T) {
	diag := runErr(t, `
fun add(a, b) { return a + b; }
add(1);
`)
	assert.Contains(t, diag.Detail, "Expected 2 arguments, but got 1")
}

func TestInterpret_NonClosureCallSemantics(t *testing.T) {
	// A function sees the global scope as its parent, not its lexically
	// enclosing call's scope: a local variable in the outer function is not
	// visible inside the nested one.
	diag := runErr(t, `
fun outer() {
	var secret = 1;
	fun inner() {
		return secret;
	}
	return inner();
}
outer();
`)
	assert.Equal(t, "Undefined variable 'secret'", diag.Detail)
}

func TestInterpret_NestedFunctionCallableInsideEnclosingCall(t *testing.T) {
	// fun declarations execute into whatever scope is current at the time,
	// so one declared inside a function body is bound in that call's scope
	// and can be called from the rest of the body. It still cannot see the
	// enclosing call's locals, so n is passed in explicitly.
	result, _, err := run(t, `
fun makeAdder(n) {
	fun add(x, m) {
		return x + m;
	}
	return add(10, n);
}
makeAdder(5);
`)
	require.NoError(t, err)
	assert.Equal(t, 15.0, result.(*object.Number).Value)
}

func TestInterpret_ReturnAtTopLevelIsRuntimeError(t *testing.T) {
	diag := runErr(t, "return 1;")
	assert.Equal(t, reporter.RuntimeErr, diag.Kind)
	assert.Equal(t, "Can't return from top-level code", diag.Detail)
}

func TestInterpret_Truthiness(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{"!nil;", true},
		{"!false;", true},
		{"!true;", false},
		{"!0;", false},
		{`!"";`, false},
	}
	for _, c := range cases {
		result, _, err := run(t, c.src)
		require.NoError(t, err)
		assert.Equal(t, c.want, result.(*object.Boolean).Value, c.src)
	}
}
