package checkers

import (
	"github.com/risor-io/risor/ast"

	"github.com/deepnoodle-ai/rislint"
	"github.com/deepnoodle-ai/rislint/astwalk"
)

func init() {
	var info rislint.CheckerInfo
	info.Name = "errorNil"
	info.Tags = []string{"diagnostic"}
	info.Summary = "Detects error(nil) calls"
	info.Details = "Raising nil gives try handlers nothing useful to inspect."
	info.Before = `error(nil)`
	info.After = `error("something meaningful")`

	collection.AddChecker(&info, func(ctx *rislint.CheckerContext) (astwalk.ProgramWalker, error) {
		return astwalk.WalkerForExpr(&errorNilChecker{ctx: ctx}), nil
	})
}

type errorNilChecker struct {
	ctx *rislint.CheckerContext
}

func (c *errorNilChecker) VisitExpr(x ast.Expression) {
	call, ok := x.(*ast.Call)
	if !ok {
		return
	}
	fn, ok := call.Function().(*ast.Ident)
	if !ok || fn.Literal() != "error" {
		return
	}
	args := call.Arguments()
	if len(args) != 1 {
		return
	}
	if _, ok := args[0].(*ast.Nil); ok {
		c.ctx.Warn(call, "error(nil) calls are discouraged")
	}
}
