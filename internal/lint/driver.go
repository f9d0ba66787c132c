package lint

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/typelint/typelint/internal/estree"
)

// Driver executes lint rules on AST envelope files.
type Driver struct {
	registry *Registry
}

// NewDriver creates a new driver with the given registry.
func NewDriver(registry *Registry) *Driver {
	return &Driver{registry: registry}
}

// Run executes all enabled rules on the specified files and returns the
// results. The files parameter can include individual envelope files or
// directories (which will be walked).
func (d *Driver) Run(ctx context.Context, paths []string) (*Result, error) {
	files, err := d.expandPaths(paths)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files:    len(files),
		Findings: []Finding{},
		Errors:   []FileError{},
	}

	for _, path := range files {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		findings, err := d.RunFile(path)
		if err != nil {
			result.Errors = append(result.Errors, FileError{
				Path: path,
				Err:  err,
			})
			continue
		}

		result.Findings = append(result.Findings, findings...)
	}

	return result, nil
}

// RunFile executes all enabled rules on a single AST envelope file.
// Findings are collected in rule order, then visit order within a rule,
// which callers may assume is source order.
func (d *Driver) RunFile(path string) ([]Finding, error) {
	file, err := estree.DecodeFile(path)
	if err != nil {
		return nil, err
	}

	suppressions := NewSuppressionParser(file.Source)

	var findings []Finding
	for _, rule := range d.registry.EnabledRules() {
		config := d.registry.GetConfig(rule.Name)

		pass := &Pass{
			File:     file,
			FilePath: file.Path,
			Config:   config,
			Report: func(f Finding) {
				f.FilePath = file.Path
				if f.Rule == "" {
					f.Rule = rule.Name
				}
				if f.Category == "" {
					f.Category = rule.Category
				}
				if f.Severity == severityUnset {
					f.Severity = rule.Severity
				}
				// Config severity override wins over everything.
				if config.Severity != severityUnset {
					f.Severity = config.Severity
				}
				findings = append(findings, f)
			},
		}

		if err := rule.Run(pass); err != nil {
			return nil, fmt.Errorf("rule %s: %w", rule.Name, err)
		}
	}

	return FilterSuppressed(findings, suppressions), nil
}

// expandPaths expands a list of paths into individual envelope files.
// Directories are walked recursively.
func (d *Driver) expandPaths(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	for _, path := range paths {
		expanded, err := d.expandPath(path)
		if err != nil {
			return nil, err
		}

		for _, f := range expanded {
			absPath, err := filepath.Abs(f)
			if err != nil {
				absPath = f
			}
			if !seen[absPath] {
				seen[absPath] = true
				files = append(files, f)
			}
		}
	}

	return files, nil
}

// expandPath expands a single path into files.
func (d *Driver) expandPath(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Skip hidden directories
		if entry.IsDir() && strings.HasPrefix(entry.Name(), ".") && entry.Name() != "." {
			return filepath.SkipDir
		}

		if entry.IsDir() {
			return nil
		}

		if IsEnvelopeFile(entry.Name()) {
			files = append(files, p)
		}

		return nil
	})

	return files, err
}

// IsEnvelopeFile reports whether a filename looks like an AST envelope.
// Parsers emitting envelopes conventionally use the .ast.json suffix, but
// any .json file under a linted directory is accepted.
func IsEnvelopeFile(name string) bool {
	return filepath.Ext(name) == ".json"
}
