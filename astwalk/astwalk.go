// Package astwalk provides walking utilities that feed checker
// visitors with risor AST nodes.
package astwalk

import (
	"github.com/risor-io/risor/ast"
)

// WalkerForProgram returns a walker that passes the whole program to v.
func WalkerForProgram(v ProgramVisitor) ProgramWalker {
	return &programWalker{visitor: v}
}

// WalkerForNode returns a walker that visits every node in preorder.
func WalkerForNode(v NodeVisitor) ProgramWalker {
	return &nodeWalker{visitor: v}
}

// WalkerForExpr returns a walker that visits every expression node.
func WalkerForExpr(v ExprVisitor) ProgramWalker {
	return &exprWalker{visitor: v}
}

// WalkerForStmt returns a walker that visits every statement node.
func WalkerForStmt(v StmtVisitor) ProgramWalker {
	return &stmtWalker{visitor: v}
}

type programWalker struct {
	visitor ProgramVisitor
}

func (w *programWalker) WalkProgram(p *ast.Program) {
	w.visitor.VisitProgram(p)
}

type nodeWalker struct {
	visitor NodeVisitor
}

func (w *nodeWalker) WalkProgram(p *ast.Program) {
	walk(p, w.visitor.VisitNode)
}

type exprWalker struct {
	visitor ExprVisitor
}

func (w *exprWalker) WalkProgram(p *ast.Program) {
	walk(p, func(n ast.Node) {
		if x, ok := n.(ast.Expression); ok {
			w.visitor.VisitExpr(x)
		}
	})
}

type stmtWalker struct {
	visitor StmtVisitor
}

func (w *stmtWalker) WalkProgram(p *ast.Program) {
	walk(p, func(n ast.Node) {
		if s, ok := n.(ast.Statement); ok {
			w.visitor.VisitStmt(s)
		}
	})
}

// walk calls visit for node, then for each of its children, depth
// first in source order. The risor ast package exposes no traversal
// helper of its own, so the node inventory is enumerated here; node
// kinds without children fall through the switch.
func walk(node ast.Node, visit func(ast.Node)) {
	if node == nil {
		return
	}
	visit(node)

	switch n := node.(type) {
	case *ast.Program:
		for _, s := range n.Statements() {
			walk(s, visit)
		}
	case *ast.Block:
		for _, s := range n.Statements() {
			walk(s, visit)
		}
	case *ast.Var:
		_, value := n.Value()
		walk(value, visit)
	case *ast.MultiVar:
		_, value := n.Value()
		walk(value, visit)
	case *ast.Const:
		_, value := n.Value()
		walk(value, visit)
	case *ast.Assign:
		// Index is set for indexed assignments like obj["k"] = v and
		// nil for plain name assignments.
		if idx := n.Index(); idx != nil {
			walk(idx, visit)
		}
		walk(n.Value(), visit)
	case *ast.SetAttr:
		walk(n.Object(), visit)
		walk(n.Value(), visit)
	case *ast.GetAttr:
		walk(n.Object(), visit)
	case *ast.ObjectCall:
		walk(n.Object(), visit)
		walk(n.Call(), visit)
	case *ast.Call:
		walk(n.Function(), visit)
		for _, arg := range n.Arguments() {
			walk(arg, visit)
		}
	case *ast.Index:
		walk(n.Left(), visit)
		walk(n.Index(), visit)
	case *ast.Slice:
		walk(n.Left(), visit)
		walk(n.FromIndex(), visit)
		walk(n.ToIndex(), visit)
	case *ast.Prefix:
		walk(n.Right(), visit)
	case *ast.Infix:
		walk(n.Left(), visit)
		walk(n.Right(), visit)
	case *ast.In:
		walk(n.Left(), visit)
		walk(n.Right(), visit)
	case *ast.Pipe:
		for _, x := range n.Expressions() {
			walk(x, visit)
		}
	case *ast.If:
		walk(n.Condition(), visit)
		if b := n.Consequence(); b != nil {
			walk(b, visit)
		}
		if b := n.Alternative(); b != nil {
			walk(b, visit)
		}
	case *ast.Ternary:
		walk(n.Condition(), visit)
		walk(n.IfTrue(), visit)
		walk(n.IfFalse(), visit)
	case *ast.For:
		walk(n.Init(), visit)
		walk(n.Condition(), visit)
		walk(n.Post(), visit)
		if b := n.Consequence(); b != nil {
			walk(b, visit)
		}
	case *ast.Switch:
		walk(n.Value(), visit)
		for _, c := range n.Choices() {
			walk(c, visit)
		}
	case *ast.Case:
		for _, x := range n.Expressions() {
			walk(x, visit)
		}
		if b := n.Block(); b != nil {
			walk(b, visit)
		}
	case *ast.Range:
		walk(n.Container(), visit)
	case *ast.Control:
		walk(n.Value(), visit)
	case *ast.Return:
		walk(n.Value(), visit)
	case *ast.Func:
		for _, d := range n.Defaults() {
			walk(d, visit)
		}
		if b := n.Body(); b != nil {
			walk(b, visit)
		}
	case *ast.Go:
		walk(n.Call(), visit)
	case *ast.Defer:
		walk(n.Call(), visit)
	case *ast.Send:
		walk(n.Channel(), visit)
		walk(n.Value(), visit)
	case *ast.Receive:
		walk(n.Channel(), visit)
	case *ast.List:
		for _, item := range n.Items() {
			walk(item, visit)
		}
	case *ast.Set:
		for _, item := range n.Items() {
			walk(item, visit)
		}
	case *ast.Map:
		for k, v := range n.Items() {
			walk(k, visit)
			walk(v, visit)
		}
	case *ast.String:
		for _, x := range n.TemplateExpressions() {
			walk(x, visit)
		}
	}
}
