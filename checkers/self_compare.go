package checkers

import (
	"github.com/risor-io/risor/ast"

	"github.com/deepnoodle-ai/rislint"
	"github.com/deepnoodle-ai/rislint/astwalk"
)

func init() {
	var info rislint.CheckerInfo
	info.Name = "selfCompare"
	info.Tags = []string{"diagnostic"}
	info.Summary = "Detects comparisons of a variable with itself"
	info.Details = "Such comparisons are always constant and usually hide a typo."
	info.Before = `if x == x { ... }`
	info.After = `if x == y { ... }`

	collection.AddChecker(&info, func(ctx *rislint.CheckerContext) (astwalk.ProgramWalker, error) {
		return astwalk.WalkerForExpr(&selfCompareChecker{ctx: ctx}), nil
	})
}

type selfCompareChecker struct {
	ctx *rislint.CheckerContext
}

var comparisonOps = map[string]bool{
	"==": true,
	"!=": true,
	"<":  true,
	"<=": true,
	">":  true,
	">=": true,
}

func (c *selfCompareChecker) VisitExpr(x ast.Expression) {
	infix, ok := x.(*ast.Infix)
	if !ok || !comparisonOps[infix.Operator()] {
		return
	}
	lhs, ok := infix.Left().(*ast.Ident)
	if !ok {
		return
	}
	rhs, ok := infix.Right().(*ast.Ident)
	if !ok {
		return
	}
	if lhs.Literal() == rhs.Literal() {
		c.ctx.Warn(infix, "comparing %q to itself", lhs.Literal())
	}
}
