// Package checkers implements the checkers that ship with rislint.
package checkers

import (
	"github.com/deepnoodle-ai/rislint"
)

var collection = &rislint.CheckerCollection{
	URL: "https://github.com/deepnoodle-ai/rislint",
}
