package interp

import (
	"fmt"

	"github.com/wisklang/wisk/ast"
	"github.com/wisklang/wisk/object"
)

// Function is a user-defined callable: it holds its declaration node and
// nothing else, per spec.md §9's closure-free semantics — a call's
// environment parents directly to globals rather than to a captured
// defining scope, so there is no Scp field to carry here, unlike the
// teacher's function.Function.
type Function struct {
	Declaration *ast.FunctionStmt
}

func (f *Function) Type() object.Type { return object.FunctionType }
func (f *Function) String() string    { return fmt.Sprintf("<fn %s>", f.Declaration.Name.Literal) }
func (f *Function) Arity() int        { return len(f.Declaration.Params) }

// Call binds Params to args in a fresh environment parented to globals,
// executes the body, and returns whatever the body's Return produced (nil
// if it fell off the end). interp must be *Interpreter; the object.Callable
// interface takes `any` only to avoid an import cycle.
func (f *Function) Call(interp any, args []object.Object) (object.Object, error) {
	it := interp.(*Interpreter)
	return it.callFunction(f, args)
}
