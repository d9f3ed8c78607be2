package restrict

import (
	"strconv"

	"github.com/risor-io/risor/ast"
)

// Access is one syntactic occurrence of property access, extracted as
// pure data. A from-import statement binds several properties of one
// object in a single access, so Properties is a sequence; a plain
// member access is the one-element case of the same shape.
type Access struct {
	// Node anchors warnings to the source location of the access.
	Node ast.Node

	// Object is the accessed object's identifier name.
	Object string

	// Properties holds the statically known property names being
	// accessed, in source order. Never empty.
	Properties []string
}

// AccessFromNode extracts an Access from a node, if the node is one of
// the property-accessing shapes and the access is statically
// resolvable. Restrictions key off object identifier names, so any
// access whose object is not a bare identifier resolves to nothing.
// Likewise a computed key that is not a plain literal yields no
// property name rather than a sentinel, so it can never collide with a
// configured name.
func AccessFromNode(node ast.Node) (Access, bool) {
	switch n := node.(type) {
	case *ast.GetAttr:
		// obj.attr
		return accessForAttr(n, n.Object(), n.Name())

	case *ast.SetAttr:
		// obj.attr = value
		return accessForAttr(n, n.Object(), n.Name())

	case *ast.ObjectCall:
		// obj.method(...): the method name is a property access.
		call, ok := n.Call().(*ast.Call)
		if !ok {
			return Access{}, false
		}
		fn, ok := call.Function().(*ast.Ident)
		if !ok {
			return Access{}, false
		}
		return accessForAttr(n, n.Object(), fn.Literal())

	case *ast.Index:
		// obj[key]: only statically known keys resolve. Indexed writes
		// (obj[key] = v) reach this case through the Assign statement's
		// index child.
		obj, ok := n.Left().(*ast.Ident)
		if !ok {
			return Access{}, false
		}
		key, ok := staticKey(n.Index())
		if !ok {
			return Access{}, false
		}
		return Access{Node: n, Object: obj.Literal(), Properties: []string{key}}, true

	case *ast.FromImport:
		// from obj import a, b as c: every import binds a property of
		// obj. The accessed property is the imported name, not the
		// alias. A dotted module path is not a bare identifier and
		// resolves to nothing.
		parents := n.Parents()
		imports := n.Imports()
		if len(parents) != 1 || len(imports) == 0 {
			return Access{}, false
		}
		props := make([]string, len(imports))
		for i, im := range imports {
			props[i] = im.Path().Value()
		}
		return Access{Node: n, Object: parents[0].Literal(), Properties: props}, true
	}

	return Access{}, false
}

func accessForAttr(node ast.Node, object ast.Expression, attr string) (Access, bool) {
	obj, ok := object.(*ast.Ident)
	if !ok {
		return Access{}, false
	}
	return Access{Node: node, Object: obj.Literal(), Properties: []string{attr}}, true
}

// staticKey resolves an index expression to a property name known from
// the source text alone. Template strings may interpolate arbitrary
// values and are treated as dynamic.
func staticKey(x ast.Expression) (string, bool) {
	switch k := x.(type) {
	case *ast.String:
		if k.Template() != nil {
			return "", false
		}
		return k.Value(), true
	case *ast.Int:
		return strconv.FormatInt(k.Value(), 10), true
	}
	return "", false
}
