package rislint

import (
	"context"
	"testing"

	"github.com/risor-io/risor/ast"
	"github.com/risor-io/risor/parser"

	"github.com/deepnoodle-ai/rislint/astwalk"
)

var testCollection = &CheckerCollection{URL: "https://example.com/rislint-test"}

type identReporter struct {
	ctx *CheckerContext
}

func (r *identReporter) VisitNode(n ast.Node) {
	if id, ok := n.(*ast.Ident); ok {
		r.ctx.Warn(id, "found ident %s", id.Literal())
	}
}

func parseTestProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	program, err := parser.Parse(context.Background(), src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return program
}

func TestCheckerWarnings(t *testing.T) {
	info := &CheckerInfo{
		Name:    "testIdentReporter",
		Summary: "  Reports every identifier \n",
	}
	testCollection.AddChecker(info, func(ctx *CheckerContext) (astwalk.ProgramWalker, error) {
		return astwalk.WalkerForNode(&identReporter{ctx: ctx}), nil
	})

	if info.Collection != testCollection {
		t.Error("AddChecker must bind the info to its collection")
	}
	if info.Summary != "Reports every identifier" {
		t.Errorf("documentation not trimmed: %q", info.Summary)
	}

	c, err := NewChecker(&Context{}, info)
	if err != nil {
		t.Fatalf("init checker: %v", err)
	}

	warns := c.Check(parseTestProgram(t, `a := b + c`))
	if len(warns) != 2 {
		t.Fatalf("want 2 warnings, got %d", len(warns))
	}
	if warns[0].Text != "found ident b" {
		t.Errorf("unexpected warning text: %q", warns[0].Text)
	}
	if warns[0].Node == nil {
		t.Error("warning must carry the node that triggered it")
	}

	// A second Check must not accumulate warnings from the first run.
	warns = c.Check(parseTestProgram(t, `x := y`))
	if len(warns) != 1 {
		t.Fatalf("want 1 warning, got %d", len(warns))
	}
}

func TestNilWalkerChecker(t *testing.T) {
	info := &CheckerInfo{Name: "testInert", Summary: "Does nothing"}
	testCollection.AddChecker(info, func(ctx *CheckerContext) (astwalk.ProgramWalker, error) {
		return nil, nil
	})

	c, err := NewChecker(&Context{}, info)
	if err != nil {
		t.Fatalf("init checker: %v", err)
	}
	if warns := c.Check(parseTestProgram(t, `x := y`)); len(warns) != 0 {
		t.Errorf("inert checker produced warnings: %v", warns)
	}
}

func TestNewCheckerUnknownName(t *testing.T) {
	if _, err := NewChecker(&Context{}, &CheckerInfo{Name: "neverRegistered"}); err == nil {
		t.Error("expected error for unregistered checker name")
	}
}

func TestGetCheckersInfoSorted(t *testing.T) {
	infos := GetCheckersInfo()
	for i := 1; i < len(infos); i++ {
		if infos[i-1].Name >= infos[i].Name {
			t.Fatalf("infos not sorted: %q before %q", infos[i-1].Name, infos[i].Name)
		}
	}
}

func TestCheckerParams(t *testing.T) {
	params := CheckerParams{
		"count":   {Value: 2},
		"label":   {Value: "x"},
		"enabled": {Value: true},
		"items":   {Value: []interface{}{"a"}},
	}
	if params.Int("count") != 2 {
		t.Error("Int accessor")
	}
	if params.String("label") != "x" {
		t.Error("String accessor")
	}
	if !params.Bool("enabled") {
		t.Error("Bool accessor")
	}
	if items := params.Value("items").([]interface{}); len(items) != 1 {
		t.Error("Value accessor")
	}
}
