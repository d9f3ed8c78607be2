// Package linttest provides the end2end test harness for rislint checkers.
package linttest

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/risor-io/risor/parser"
	"gopkg.in/yaml.v3"

	"github.com/deepnoodle-ai/rislint"
)

var (
	warningDirectiveRE = regexp.MustCompile(`^\s*/// (.*)`)
	commentRE          = regexp.MustCompile(`^\s*//`)
)

// TestCheckers runs end2end tests over all registered checkers.
//
// Every checker is run over the scripts in testdata/<name>/*.risor.
// Expected warnings are declared inside the scripts with "/// <text>"
// directives on the line(s) directly above the offending line. If the
// testdata dir contains a config.yaml file, its values override the
// checker params for the run.
func TestCheckers(t *testing.T) {
	for _, info := range rislint.GetCheckersInfo() {
		info := info
		t.Run(info.Name, func(t *testing.T) {
			testdataDir := filepath.Join("testdata", info.Name)
			applyTestConfig(t, testdataDir, info)

			files, err := filepath.Glob(filepath.Join(testdataDir, "*.risor"))
			if err != nil {
				t.Fatalf("list checker tests: %v", err)
			}
			if len(files) == 0 {
				t.Fatalf("no checker tests found under %s", testdataDir)
			}
			for _, filename := range files {
				checkFile(t, info, filename)
			}
		})
	}
}

func checkFile(t *testing.T, info *rislint.CheckerInfo, filename string) {
	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("can't find checker tests: %v", err)
	}
	src := string(data)
	goldenWarns := newGoldenFile(src)

	ctx := &rislint.Context{}
	ctx.SetFilename(filepath.Base(filename))
	checker, err := rislint.NewChecker(ctx, info)
	if err != nil {
		t.Fatalf("init checker: %v", err)
	}

	program, err := parser.Parse(context.Background(), src, parser.WithFilename(filename))
	if err != nil {
		t.Fatalf("parse %s: %v", filename, err)
	}

	for _, warn := range checker.Check(program) {
		line := warn.Node.Token().StartPosition.LineNumber()

		if w := goldenWarns.find(line, warn.Text); w != nil {
			if w.matched {
				t.Errorf("%s:%d: multiple matches for %s",
					filename, line, w)
			}
			w.matched = true
		} else {
			t.Errorf("%s:%d: unexpected warn: %s",
				filename, line, warn.Text)
		}
	}

	goldenWarns.checkUnmatched(t, filename)
}

// applyTestConfig overrides checker params from testdata config.yaml,
// so checkers that are inert by default can be tested with a
// meaningful configuration.
func applyTestConfig(t *testing.T, dir string, info *rislint.CheckerInfo) {
	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return
		}
		t.Fatalf("read checker test config: %v", err)
	}
	params := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &params); err != nil {
		t.Fatalf("parse checker test config: %v", err)
	}
	for key, value := range params {
		p, ok := info.Params[key]
		if !ok {
			t.Fatalf("config.yaml sets unknown param %q", key)
		}
		p.Value = value
	}
}
