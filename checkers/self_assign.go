package checkers

import (
	"github.com/risor-io/risor/ast"

	"github.com/deepnoodle-ai/rislint"
	"github.com/deepnoodle-ai/rislint/astwalk"
)

func init() {
	var info rislint.CheckerInfo
	info.Name = "selfAssign"
	info.Tags = []string{"diagnostic"}
	info.Summary = "Detects assignments of a variable to itself"
	info.Details = "Such assignments do nothing and usually hide a typo."
	info.Before = `x = x`
	info.After = `x = y`

	collection.AddChecker(&info, func(ctx *rislint.CheckerContext) (astwalk.ProgramWalker, error) {
		return astwalk.WalkerForStmt(&selfAssignChecker{ctx: ctx}), nil
	})
}

type selfAssignChecker struct {
	ctx *rislint.CheckerContext
}

func (c *selfAssignChecker) VisitStmt(stmt ast.Statement) {
	a, ok := stmt.(*ast.Assign)
	// Name panics for indexed assignments, so the Index check comes
	// first.
	if !ok || a.Index() != nil || a.Operator() != "=" {
		return
	}
	v, ok := a.Value().(*ast.Ident)
	if !ok {
		return
	}
	if a.Name() == v.Literal() {
		c.ctx.Warn(a, "suspicious self-assignment of %q", a.Name())
	}
}
