package checkers_test

import (
	"testing"

	"github.com/deepnoodle-ai/rislint/linttest"

	_ "github.com/deepnoodle-ai/rislint/checkers"
)

func TestCheckers(t *testing.T) {
	linttest.TestCheckers(t)
}
