package rislint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/risor-io/risor/ast"

	"github.com/deepnoodle-ai/rislint/astwalk"
)

// CheckerCollection provides additional information for a group of checkers.
type CheckerCollection struct {
	// URL is a link for the main source of information on the collection.
	URL string
}

// AddChecker registers a new checker into the checkers pool.
// The constructor is called to create a checker instance for every
// activation; it receives the context used to report warnings and
// returns the walker that drives the checker over a program.
//
// A nil walker (with a nil error) means the checker has nothing to do
// for this activation and will not be invoked at all.
//
// Checker name (defined in CheckerInfo.Name) must be unique.
func (coll *CheckerCollection) AddChecker(info *CheckerInfo, constructor func(*CheckerContext) (astwalk.ProgramWalker, error)) {
	if coll == nil {
		panic("adding checker to a nil collection")
	}
	if info.Name == "" {
		panic("added checker with empty name")
	}
	if _, ok := checkerRegistry[info.Name]; ok {
		panic(fmt.Sprintf("checker with name %q is already registered", info.Name))
	}

	trimDocumentation(info)

	info.Collection = coll
	checkerRegistry[info.Name] = checkerProto{
		info:        info,
		constructor: constructor,
	}
}

// CheckerParam describes a single checker configurable parameter.
type CheckerParam struct {
	// Value holds parameter bound value.
	// It might be overwritten by the linter config.
	//
	// Permitted types include:
	//	- int
	//	- bool
	//	- string
	//	- decoded YAML values for structured params
	Value interface{}

	// Usage gives an overview about what parameter does.
	Usage string
}

// CheckerParams holds all checker-specific parameters.
//
// Provides convenient access to the loosely typed underlying map.
type CheckerParams map[string]*CheckerParam

// Int lookups parameter value and type-asserts it to int.
func (params CheckerParams) Int(key string) int { return params[key].Value.(int) }

// String lookups parameter value and type-asserts it to string.
func (params CheckerParams) String(key string) string { return params[key].Value.(string) }

// Bool lookups parameter value and type-asserts it to bool.
func (params CheckerParams) Bool(key string) bool { return params[key].Value.(bool) }

// Value lookups parameter value without any type assertions.
func (params CheckerParams) Value(key string) interface{} { return params[key].Value }

// CheckerInfo holds checker metadata and structured documentation.
type CheckerInfo struct {
	// Name is a checker name.
	Name string

	// Tags is a list of labels that can be used to enable or disable checker.
	Tags []string

	// Params declares checker-specific parameters.
	Params CheckerParams

	// Summary is a short one sentence description.
	// Should not end with a period.
	Summary string

	// Details extends summary with additional info. Optional.
	Details string

	// Before is a code snippet of code that will violate rule.
	Before string

	// After is a code snippet of fixed code that complies to the rule.
	After string

	// Note is an optional caution message or advice.
	Note string

	// Collection establishes a checker-to-collection relationship.
	Collection *CheckerCollection
}

// GetCheckersInfo returns a checkers info list for all registered checkers.
// The slice is sorted by the checker name.
func GetCheckersInfo() []*CheckerInfo {
	infoList := make([]*CheckerInfo, 0, len(checkerRegistry))
	for _, proto := range checkerRegistry {
		infoList = append(infoList, proto.info)
	}
	sort.Slice(infoList, func(i, j int) bool {
		return infoList[i].Name < infoList[j].Name
	})
	return infoList
}

// Warning represents an issue that is found by a checker.
type Warning struct {
	// Node is an AST node that caused warning to trigger.
	// Can be used to obtain proper warning location.
	Node ast.Node

	// MessageID distinguishes diagnostic kinds within one checker.
	// Empty for checkers that emit a single kind of warning.
	MessageID string

	// Text is warning message without source location info.
	Text string
}

// Context is shared between all checkers within one analysis activation.
// Checkers must treat it as read-only.
type Context struct {
	// Filename is the name of the file being checked.
	Filename string
}

// SetFilename sets the name of the file that is about to be checked.
func (c *Context) SetFilename(filename string) {
	c.Filename = filename
}

// CheckerContext is checker-local context that is used to
// accumulate warnings emitted during a single program check.
type CheckerContext struct {
	*Context

	warnings []Warning
}

// Warn adds a Warning to the checker output.
func (ctx *CheckerContext) Warn(node ast.Node, format string, args ...interface{}) {
	ctx.warnings = append(ctx.warnings, Warning{
		Node: node,
		Text: fmt.Sprintf(format, args...),
	})
}

// WarnWithID adds a Warning with an explicit message ID to the checker output.
func (ctx *CheckerContext) WarnWithID(node ast.Node, messageID, format string, args ...interface{}) {
	ctx.warnings = append(ctx.warnings, Warning{
		Node:      node,
		MessageID: messageID,
		Text:      fmt.Sprintf(format, args...),
	})
}

type checkerProto struct {
	info        *CheckerInfo
	constructor func(*CheckerContext) (astwalk.ProgramWalker, error)
}

// checkerRegistry is a set of all registered checkers, keyed by checker name.
var checkerRegistry = map[string]checkerProto{}

func trimDocumentation(info *CheckerInfo) {
	fields := []*string{
		&info.Summary,
		&info.Details,
		&info.Before,
		&info.After,
		&info.Note,
	}
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}
