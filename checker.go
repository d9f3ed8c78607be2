package rislint

import (
	"fmt"

	"github.com/risor-io/risor/ast"

	"github.com/deepnoodle-ai/rislint/astwalk"
)

// Checker is an instantiated checker that is ready to check programs.
type Checker struct {
	Info *CheckerInfo

	ctx CheckerContext

	walker astwalk.ProgramWalker
}

// NewChecker returns a checker instance for the given info.
//
// The info argument must be one of the objects returned by
// GetCheckersInfo; its params may be modified before this call to
// configure the checker. Construction fails if the checker params are
// malformed, so a checker that was constructed successfully never
// reports configuration errors during Check.
func NewChecker(ctx *Context, info *CheckerInfo) (*Checker, error) {
	proto, ok := checkerRegistry[info.Name]
	if !ok {
		return nil, fmt.Errorf("checker with name %q is not registered", info.Name)
	}

	c := &Checker{Info: info}
	c.ctx = CheckerContext{Context: ctx}
	walker, err := proto.constructor(&c.ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", info.Name, err)
	}
	c.walker = walker
	return c, nil
}

// Check runs the checker over program p.
//
// A checker whose constructor returned a nil walker performs no
// traversal at all and always returns no warnings.
func (c *Checker) Check(p *ast.Program) []Warning {
	c.ctx.warnings = c.ctx.warnings[:0]
	if c.walker != nil {
		c.walker.WalkProgram(p)
	}
	return c.ctx.warnings
}
