package restrict

import (
	"context"
	"testing"

	"github.com/risor-io/risor/ast"
	"github.com/risor-io/risor/parser"
	"github.com/risor-io/risor/token"
	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/rislint/astwalk"
)

// accessData is Access with the node stripped, for comparisons.
type accessData struct {
	Object     string
	Properties []string
}

type accessCollector struct {
	t        *testing.T
	accesses []accessData
}

func (c *accessCollector) VisitNode(n ast.Node) {
	a, ok := AccessFromNode(n)
	if !ok {
		return
	}
	require.NotNil(c.t, a.Node)
	require.NotEmpty(c.t, a.Properties)
	c.accesses = append(c.accesses, accessData{
		Object:     a.Object,
		Properties: a.Properties,
	})
}

func collectAccesses(t *testing.T, src string) []accessData {
	t.Helper()
	program, err := parser.Parse(context.Background(), src)
	require.NoError(t, err, "parse %q", src)

	c := &accessCollector{t: t}
	astwalk.WalkerForNode(c).WalkProgram(program)
	return c.accesses
}

func TestAccessFromNode(t *testing.T) {
	tests := []struct {
		src  string
		want []accessData
	}{
		// Member access in read, write and call positions.
		{`foo.bar`, []accessData{{"foo", []string{"bar"}}}},
		{`foo.bar = 1`, []accessData{{"foo", []string{"bar"}}}},
		{`foo.bar()`, []accessData{{"foo", []string{"bar"}}}},

		// Index access resolves only for literal keys. The indexed
		// write reaches the index node through the assignment
		// statement and reports once.
		{`foo["bar"]`, []accessData{{"foo", []string{"bar"}}}},
		{`foo['bar']`, []accessData{{"foo", []string{"bar"}}}},
		{`foo[0]`, []accessData{{"foo", []string{"0"}}}},
		{`foo["bar"] = 1`, []accessData{{"foo", []string{"bar"}}}},
		{`foo[key]`, nil},
		{`foo['k{x}']`, nil},

		// From-imports bind the imported names, not the aliases.
		{`from proc import pid`, []accessData{{"proc", []string{"pid"}}}},
		{`from proc import pid as id, name`, []accessData{{"proc", []string{"pid", "name"}}}},
		{`from a.b import c`, nil},

		// Only bare identifier objects resolve; the inner access of a
		// chain still does.
		{`a.b.c`, []accessData{{"a", []string{"b"}}}},
		{`foo().bar`, nil},
		{`(1 + 2).size`, nil},
	}

	for _, test := range tests {
		t.Run(test.src, func(t *testing.T) {
			require.Equal(t, test.want, collectAccesses(t, test.src))
		})
	}
}

func TestStaticKey(t *testing.T) {
	key, ok := staticKey(ast.NewString(token.Token{Literal: "pid"}))
	require.True(t, ok)
	require.Equal(t, "pid", key)

	key, ok = staticKey(ast.NewInt(token.Token{Literal: "10"}, 10))
	require.True(t, ok)
	require.Equal(t, "10", key)

	_, ok = staticKey(ast.NewIdent(token.Token{Literal: "pid"}))
	require.False(t, ok)
}
