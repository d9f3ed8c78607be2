package astwalk

import (
	"github.com/risor-io/risor/ast"
)

// ProgramWalker is the interface every checker walker implements.
// WalkProgram visits the parts of the program the wrapped visitor
// cares about, in source order.
type ProgramWalker interface {
	WalkProgram(p *ast.Program)
}

// Visitor interfaces.
type (
	// ProgramVisitor visits the whole program once.
	// Useful for checkers that maintain their own traversal state.
	ProgramVisitor interface {
		VisitProgram(p *ast.Program)
	}

	// NodeVisitor visits every node of the program.
	NodeVisitor interface {
		VisitNode(n ast.Node)
	}

	// ExprVisitor visits every expression node of the program.
	ExprVisitor interface {
		VisitExpr(x ast.Expression)
	}

	// StmtVisitor visits every statement node of the program.
	StmtVisitor interface {
		VisitStmt(s ast.Statement)
	}
)
