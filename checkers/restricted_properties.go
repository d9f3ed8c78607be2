package checkers

import (
	"github.com/risor-io/risor/ast"

	"github.com/deepnoodle-ai/rislint"
	"github.com/deepnoodle-ai/rislint/astwalk"
	"github.com/deepnoodle-ai/rislint/checkers/internal/restrict"
)

func init() {
	var info rislint.CheckerInfo
	info.Name = "restrictedProperties"
	info.Tags = []string{"style"}
	info.Params = rislint.CheckerParams{
		"restrictions": {
			Value: []interface{}{},
			Usage: "list of forbidden {object, property, message} access patterns",
		},
	}
	info.Summary = "Detects usages of explicitly forbidden object properties"
	info.Details = `Restrictions are configured per project. An entry that names both
object and property forbids that exact pair; an entry with only an
object forbids every property access on it; an entry with only a
property forbids it on any object. Names bound with from-import
statements count as property accesses.`
	info.Before = `pid := proc.pid`
	info.After = `pid := currentPid()`

	collection.AddChecker(&info, func(ctx *rislint.CheckerContext) (astwalk.ProgramWalker, error) {
		entries, err := restrict.DecodeEntries(info.Params.Value("restrictions"))
		if err != nil {
			return nil, err
		}
		if err := restrict.ValidateEntries(entries); err != nil {
			return nil, err
		}
		if len(entries) == 0 {
			// Nothing is restricted, so there is nothing to walk.
			return nil, nil
		}
		c := &restrictedPropertiesChecker{
			ctx:   ctx,
			model: restrict.NewModel(entries),
		}
		return astwalk.WalkerForNode(c), nil
	})
}

// Message IDs distinguish the two diagnostic templates this checker
// emits. Reporters that render structured output include them.
const (
	restrictedObjectPropertyID = "restrictedObjectProperty"
	restrictedPropertyID       = "restrictedProperty"
)

type restrictedPropertiesChecker struct {
	ctx   *rislint.CheckerContext
	model *restrict.Model
}

func (c *restrictedPropertiesChecker) VisitNode(node ast.Node) {
	access, ok := restrict.AccessFromNode(node)
	if !ok {
		return
	}
	for _, m := range c.model.Query(access.Object, access.Properties) {
		c.warn(access, m)
	}
}

func (c *restrictedPropertiesChecker) warn(access restrict.Access, m restrict.Match) {
	suffix := ""
	if m.Message != "" {
		suffix = " " + m.Message
	}
	if m.Kind == restrict.GlobalProperty {
		c.ctx.WarnWithID(access.Node, restrictedPropertyID,
			"'%s' is restricted from being used.%s", m.Property, suffix)
		return
	}
	c.ctx.WarnWithID(access.Node, restrictedObjectPropertyID,
		"'%s.%s' is restricted from being used.%s", access.Object, m.Property, suffix)
}
