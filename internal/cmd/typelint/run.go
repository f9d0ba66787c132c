// Package typelint implements the typelint command.
package typelint

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/term"

	"github.com/typelint/typelint/internal/cli"
	"github.com/typelint/typelint/internal/lint"
	"github.com/typelint/typelint/internal/lint/rules"
	"github.com/typelint/typelint/internal/version"
)

// Run executes typelint with the given arguments and returns an exit code.
func Run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return RunWithIO(ctx, args, os.Stdout, os.Stderr)
}

// RunWithIO allows custom IO for embedding/testing.
func RunWithIO(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var (
		enableFlag         string
		disableFlag        string
		formatFlag         string
		configFlag         string
		listRulesFlag      bool
		listCategoriesFlag bool
		explainFlag        string
		watchFlag          bool
		noColorFlag        bool
		versionFlag        bool
	)

	fs := flag.NewFlagSet("typelint", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&enableFlag, "enable", "", "enable rules (comma-separated, supports 'all' and categories)")
	fs.StringVar(&disableFlag, "disable", "", "disable rules (comma-separated, supports patterns like 'no-*')")
	fs.StringVar(&formatFlag, "format", "text", "output format: text, compact, json, github")
	fs.StringVar(&configFlag, "config", "", "path to config file (default: discover .typelint.json or typelint.toml)")
	fs.BoolVar(&listRulesFlag, "list-rules", false, "list all available rules")
	fs.BoolVar(&listCategoriesFlag, "list-categories", false, "list all rule categories")
	fs.StringVar(&explainFlag, "explain", "", "show detailed explanation for a rule")
	fs.BoolVar(&watchFlag, "watch", false, "watch AST files and re-lint on change")
	fs.BoolVar(&noColorFlag, "no-color", false, "disable colored output")
	fs.BoolVar(&versionFlag, "version", false, "print version and exit")

	fs.Usage = func() {
		cli.Writeln(stderr, "Usage: typelint [flags] [path ...]")
		cli.Writeln(stderr)
		cli.Writeln(stderr, "Lints pre-parsed TypeScript syntax trees (ESTree AST envelopes).")
		cli.Writeln(stderr, "Paths name envelope files (*.ast.json) or directories to walk.")
		cli.Writeln(stderr)
		cli.Writeln(stderr, "Flags:")
		fs.PrintDefaults()
		cli.Writeln(stderr)
		cli.Writeln(stderr, "Examples:")
		cli.Writeln(stderr, "  typelint build/ast/                  # Lint all envelopes in a tree")
		cli.Writeln(stderr, "  typelint app.ast.json                # Lint a single file")
		cli.Writeln(stderr, "  typelint --disable=no-* build/ast/   # Disable no-* rules")
		cli.Writeln(stderr, "  typelint --list-rules                # List all available rules")
		cli.Writeln(stderr, "  typelint --explain=max-params        # Explain the 'max-params' rule")
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return cli.ExitOK
		}
		return cli.ExitError
	}

	if versionFlag {
		cli.Writef(stdout, "typelint %s\n", version.String())
		return cli.ExitOK
	}

	registry := lint.NewRegistry()
	if err := registry.Register(rules.All()...); err != nil {
		cli.Writef(stderr, "typelint: failed to register rules: %v\n", err)
		return cli.ExitError
	}

	if listRulesFlag {
		return listRules(stdout, registry)
	}

	if listCategoriesFlag {
		return listCategories(stdout, registry)
	}

	if explainFlag != "" {
		return explainRule(stdout, stderr, registry, explainFlag)
	}

	// Config first, then flags, so the command line wins.
	config, err := lint.LoadConfig(configFlag)
	if err != nil {
		cli.Writef(stderr, "typelint: %v\n", err)
		return cli.ExitError
	}
	if err := config.ApplyToRegistry(registry); err != nil {
		cli.Writef(stderr, "typelint: configuration error: %v\n", err)
		return cli.ExitError
	}

	if enableFlag != "" {
		registry.Enable(parseCommaSeparated(enableFlag)...)
	}
	if disableFlag != "" {
		registry.Disable(parseCommaSeparated(disableFlag)...)
	}

	reporter, err := newReporter(formatFlag, colorEnabled(stdout, noColorFlag))
	if err != nil {
		cli.Writef(stderr, "typelint: %v\n", err)
		return cli.ExitError
	}

	paths := fs.Args()
	if len(paths) == 0 {
		cli.Writeln(stderr, "typelint: no files specified")
		fs.Usage()
		return cli.ExitError
	}

	driver := lint.NewDriver(registry)

	lintOnce := func() int {
		result, err := driver.Run(ctx, paths)
		if err != nil {
			cli.Writef(stderr, "typelint: %v\n", err)
			return cli.ExitError
		}

		if err := reporter.Report(stdout, result); err != nil {
			cli.Writef(stderr, "typelint: failed to report results: %v\n", err)
			return cli.ExitError
		}

		return exitCode(result, config.WarningsAsErrors)
	}

	code := lintOnce()
	if !watchFlag {
		return code
	}

	return watch(ctx, paths, stderr, lintOnce)
}

// watch re-lints whenever a watched envelope file changes, until the
// context is cancelled. The exit code reflects the last run.
func watch(ctx context.Context, paths []string, stderr io.Writer, lintOnce func() int) int {
	watcher, err := lint.NewWatcher()
	if err != nil {
		cli.Writef(stderr, "typelint: %v\n", err)
		return cli.ExitError
	}
	defer watcher.Close()

	for _, path := range paths {
		if err := watcher.Add(path); err != nil {
			cli.Writef(stderr, "typelint: %v\n", err)
			return cli.ExitError
		}
	}

	code := cli.ExitOK
	for {
		select {
		case <-ctx.Done():
			return code
		case event := <-watcher.Events:
			cli.Writef(stderr, "typelint: %s changed, re-linting\n", event.Path)
			code = lintOnce()
		case err := <-watcher.Errors:
			cli.Writef(stderr, "typelint: watch error: %v\n", err)
		}
	}
}

// newReporter selects the reporter for an output format.
func newReporter(format string, color bool) (lint.Reporter, error) {
	switch format {
	case "text":
		r := lint.NewTextReporter()
		r.ColorOutput = color
		return r, nil
	case "compact":
		r := lint.NewCompactReporter()
		r.ColorOutput = color
		return r, nil
	case "json":
		return lint.NewJSONReporter(), nil
	case "github":
		return lint.NewGitHubReporter(), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// colorEnabled reports whether output should use ANSI colors: only when
// writing to a terminal and not explicitly disabled.
func colorEnabled(stdout io.Writer, noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := stdout.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// exitCode maps a lint result to a process exit code.
func exitCode(result *lint.Result, warningsAsErrors bool) int {
	if result.HasErrors() || len(result.Errors) > 0 {
		return cli.ExitError
	}
	if result.HasWarnings() {
		if warningsAsErrors {
			return cli.ExitError
		}
		return cli.ExitWarning
	}
	return cli.ExitOK
}

// listRules outputs all available rules grouped by category.
func listRules(w io.Writer, registry *lint.Registry) int {
	rules := registry.AllRules()
	if len(rules) == 0 {
		cli.Writeln(w, "No rules registered")
		return cli.ExitOK
	}

	cli.Writef(w, "Available rules (%d total):\n\n", len(rules))

	for _, cat := range registry.Categories() {
		catRules := registry.RulesByCategory(cat)
		if len(catRules) == 0 {
			continue
		}

		cli.Writef(w, "%s (%d rules):\n", cat, len(catRules))
		for _, rule := range catRules {
			cli.Writef(w, "  %-30s  %s\n", rule.Name, rule.Doc)
		}
		cli.Writeln(w)
	}

	return cli.ExitOK
}

// listCategories outputs all rule categories.
func listCategories(w io.Writer, registry *lint.Registry) int {
	categories := registry.Categories()
	if len(categories) == 0 {
		cli.Writeln(w, "No categories found")
		return cli.ExitOK
	}

	cli.Writef(w, "Available categories (%d total):\n\n", len(categories))
	for _, cat := range categories {
		cli.Writef(w, "  %-20s  %d rules\n", cat, len(registry.RulesByCategory(cat)))
	}

	return cli.ExitOK
}

// explainRule outputs detailed information about a single rule.
func explainRule(stdout, stderr io.Writer, registry *lint.Registry, name string) int {
	rule, exists := registry.Rule(name)
	if !exists {
		cli.Writef(stderr, "typelint: unknown rule: %s\n", name)
		return cli.ExitError
	}

	cli.Writef(stdout, "%s\n", rule.Name)
	cli.Writef(stdout, "  %s\n", rule.Doc)
	if rule.Category != "" {
		cli.Writef(stdout, "  Category: %s\n", rule.Category)
	}
	cli.Writef(stdout, "  Severity: %s\n", rule.Severity)
	if rule.URL != "" {
		cli.Writef(stdout, "  Docs: %s\n", rule.URL)
	}

	return cli.ExitOK
}

// parseCommaSeparated splits a comma-separated flag value.
func parseCommaSeparated(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
