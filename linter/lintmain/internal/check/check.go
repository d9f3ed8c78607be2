// Package check implements the "check" sub-command.
package check

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/logrusorgru/aurora"
	"github.com/risor-io/risor/parser"
	"gopkg.in/yaml.v3"

	"github.com/deepnoodle-ai/rislint"
)

// Main implements sub-command entry point.
func Main() {
	var l linter

	steps := []struct {
		name string
		fn   func() error
	}{
		{"parse args", l.parseArgs},
		{"load config", l.loadConfig},
		{"init checkers", l.initCheckers},
		{"run checkers", l.runCheckers},
		{"exit if found issues", l.exit},
	}

	for _, step := range steps {
		if err := step.fn(); err != nil {
			log.Fatalf("%s: %v", step.name, err)
		}
	}
}

// config is the YAML linter config file layout.
//
// Example:
//
//	checkers:
//	  restrictedProperties:
//	    restrictions:
//	      - object: proc
//	        property: pid
//	        message: Use currentPid() instead.
type config struct {
	Checkers map[string]map[string]interface{} `yaml:"checkers"`
}

type linter struct {
	ctx *rislint.Context

	infos    []*rislint.CheckerInfo
	checkers []*rislint.Checker

	targets []string

	out *json.Encoder

	foundIssues bool

	exitCode      int
	configPath    string
	coloredOutput bool
	jsonOutput    bool
}

func (l *linter) exit() error {
	if l.foundIssues {
		os.Exit(l.exitCode)
	}
	return nil
}

func (l *linter) runCheckers() error {
	files, err := l.resolveTargets()
	if err != nil {
		return err
	}

	var errs *multierror.Error
	for _, filename := range files {
		data, err := os.ReadFile(filename)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		l.checkFile(filename, string(data))
	}
	return errs.ErrorOrNil()
}

func (l *linter) checkFile(filename, src string) {
	program, err := parser.Parse(context.Background(), src, parser.WithFilename(filename))
	if err != nil {
		// A file that does not parse is reported as a finding for that
		// file; the remaining targets are still checked.
		l.foundIssues = true
		l.report(filename, 1, 1, "syntax", "", err.Error())
		return
	}

	l.ctx.SetFilename(filename)
	for _, c := range l.checkers {
		for _, warn := range c.Check(program) {
			l.foundIssues = true
			pos := warn.Node.Token().StartPosition
			l.report(filename, pos.LineNumber(), pos.ColumnNumber(),
				c.Info.Name, warn.MessageID, warn.Text)
		}
	}
}

func (l *linter) initCheckers() error {
	l.ctx = &rislint.Context{}
	for _, info := range l.infos {
		c, err := rislint.NewChecker(l.ctx, info)
		if err != nil {
			return err
		}
		l.checkers = append(l.checkers, c)
	}
	if len(l.checkers) == 0 {
		return errors.New("empty checkers set selected")
	}
	return nil
}

func (l *linter) loadConfig() error {
	data, err := os.ReadFile(l.configPath)
	if err != nil {
		// The config file is optional; without it every checker runs
		// with its default params.
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("%s: %v", l.configPath, err)
	}

	for name, params := range cfg.Checkers {
		info := findCheckerInfo(name)
		if info == nil {
			return fmt.Errorf("%s: unknown checker %q", l.configPath, name)
		}
		for key, value := range params {
			p, ok := info.Params[key]
			if !ok {
				return fmt.Errorf("%s: checker %s has no param %q", l.configPath, name, key)
			}
			p.Value = value
		}
	}
	return nil
}

func (l *linter) parseArgs() error {
	disableTags := flag.String("disableTags", `^experimental$`,
		`regexp that excludes checkers that have matching tag`)
	disable := flag.String("disable", `<none>`,
		`regexp that disables unwanted checks`)
	enable := flag.String("enable", `.*`,
		`regexp that selects what checkers are being run. Applied after all other filters`)
	flag.IntVar(&l.exitCode, "exitCode", 1,
		`exit code to be used when lint issues are found`)
	flag.StringVar(&l.configPath, "config", ".rislint.yml",
		`path to the linter YAML config file`)
	flag.BoolVar(&l.coloredOutput, "coloredOutput", true,
		`whether to use colored output`)
	flag.BoolVar(&l.jsonOutput, "json", false,
		`whether to print findings as JSON records, one per line`)

	flag.Parse()

	l.targets = flag.Args()
	if len(l.targets) == 0 {
		return errors.New("no check targets provided")
	}
	if l.jsonOutput {
		l.out = json.NewEncoder(os.Stdout)
	}

	disableTagsRE, err := regexp.Compile(*disableTags)
	if err != nil {
		return fmt.Errorf("-disableTags: %v", err)
	}
	disableRE, err := regexp.Compile(*disable)
	if err != nil {
		return fmt.Errorf("-disable: %v", err)
	}
	enableRE, err := regexp.Compile(*enable)
	if err != nil {
		return fmt.Errorf("-enable: %v", err)
	}

	disabledByTags := func(info *rislint.CheckerInfo) bool {
		for _, tag := range info.Tags {
			if disableTagsRE.MatchString(tag) {
				return true
			}
		}
		return false
	}
	for _, info := range rislint.GetCheckersInfo() {
		if disabledByTags(info) || disableRE.MatchString(info.Name) {
			continue
		}
		if enableRE.MatchString(info.Name) {
			l.infos = append(l.infos, info)
		}
	}

	return nil
}

// resolveTargets expands the positional arguments into the list of
// script files to check. Directories are scanned recursively for
// *.risor files; plain files are taken as-is.
func (l *linter) resolveTargets() ([]string, error) {
	var files []string
	for _, target := range l.targets {
		fi, err := os.Stat(target)
		if err != nil {
			return nil, err
		}
		if !fi.IsDir() {
			files = append(files, target)
			continue
		}
		err = filepath.WalkDir(target, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(path, ".risor") {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	if len(files) == 0 {
		return nil, errors.New("no .risor files found in targets")
	}
	return files, nil
}

func (l *linter) report(filename string, line, col int, rule, messageID, text string) {
	if l.jsonOutput {
		err := l.out.Encode(jsonIssue{
			File:      filename,
			Line:      line,
			Column:    col,
			Checker:   rule,
			MessageID: messageID,
			Message:   text,
		})
		if err != nil {
			log.Fatalf("write JSON record: %v", err)
		}
		return
	}

	loc := fmt.Sprintf("%s:%d:%d", filename, line, col)
	if l.coloredOutput {
		log.Printf("%v: %v: %v\n",
			aurora.Magenta(aurora.Bold(loc)),
			aurora.Red(rule),
			text)
	} else {
		log.Printf("%s: %s: %s\n", loc, rule, text)
	}
}

type jsonIssue struct {
	File      string `json:"file"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	Checker   string `json:"checker"`
	MessageID string `json:"messageId,omitempty"`
	Message   string `json:"message"`
}

func findCheckerInfo(name string) *rislint.CheckerInfo {
	for _, info := range rislint.GetCheckersInfo() {
		if info.Name == name {
			return info
		}
	}
	return nil
}
