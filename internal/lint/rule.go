// Package lint provides a configurable linter for pre-parsed TypeScript
// syntax trees, with extensible rules.
package lint

import (
	"github.com/typelint/typelint/internal/estree"
)

// Severity represents the severity level of a lint finding.
type Severity int

const (
	// severityUnset is the zero value; configs and findings use it to
	// mean "use the rule's default".
	severityUnset Severity = iota

	// SeverityError indicates a blocking issue.
	SeverityError

	// SeverityWarning indicates a non-blocking issue that should be
	// addressed.
	SeverityWarning

	// SeverityInfo indicates informational findings.
	SeverityInfo

	// SeverityHint indicates suggestions for improvement.
	SeverityHint
)

// String returns the string representation of the Severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	case SeverityHint:
		return "hint"
	default:
		return "unknown"
	}
}

// Rule defines a single lint rule.
// Inspired by Go's analysis.Analyzer interface.
type Rule struct {
	// Name is the unique kebab-case identifier (e.g., "max-params").
	Name string

	// Doc is a one-line description of what this rule checks.
	Doc string

	// URL is an optional link to detailed documentation.
	URL string

	// Category groups related rules (e.g., "correctness", "complexity").
	Category string

	// Severity is the default severity for findings from this rule.
	Severity Severity

	// ValidateOptions checks a raw per-rule options value before any pass
	// runs. A nil ValidateOptions accepts anything. Rules may assume Run
	// only ever sees options that ValidateOptions accepted.
	ValidateOptions func(options any) error

	// Run is the function that executes this rule against one file.
	// It receives a Pass with context and reports findings via Pass.Report.
	Run func(*Pass) error
}

// Pass provides context to a rule running over a single file.
type Pass struct {
	// File is the decoded syntax tree of the file being linted.
	File *estree.File

	// FilePath is the path of the source file the tree was parsed from.
	FilePath string

	// Config holds per-rule configuration options.
	Config RuleConfig

	// Report is called to report a finding. Findings are handed off and
	// must not be retained or mutated by the rule afterwards.
	Report func(Finding)
}

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	// Severity overrides the rule's default severity.
	// Zero value means use the rule's default.
	Severity Severity

	// Options is the raw, schema-validated options value for the rule:
	// absent (nil), a bare value, or an object decoded as map[string]any.
	// Resolved once when the configuration is applied and immutable for
	// the lifetime of a run.
	Options any
}

// Finding represents a lint diagnostic.
type Finding struct {
	// FilePath is the path of the source file containing this finding.
	FilePath string

	// Severity is the severity of this finding.
	Severity Severity

	// Message is a human-readable description of the issue.
	Message string

	// MessageID is the stable message key for this finding (e.g.,
	// "exceed"). Consumers key on it instead of the message text.
	MessageID string

	// Data holds the structured values interpolated into Message.
	Data map[string]any

	// Line is the 1-based line number where the issue starts.
	Line int

	// Column is the 1-based column number where the issue starts.
	Column int

	// EndLine is the 1-based line number where the issue ends.
	EndLine int

	// EndColumn is the 1-based column number where the issue ends.
	EndColumn int

	// Rule is the name of the rule that produced this finding.
	Rule string

	// Category is the category of the rule.
	Category string
}

// Result represents the outcome of linting one or more files.
type Result struct {
	// Files is the number of files that were linted.
	Files int

	// Findings is the list of all findings.
	Findings []Finding

	// Errors is the list of files that could not be linted.
	Errors []FileError
}

// FileError represents an error that occurred while linting a file.
type FileError struct {
	// Path is the path to the file.
	Path string

	// Err is the error that occurred.
	Err error
}

// HasErrors returns true if any finding has error severity.
func (r *Result) HasErrors() bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// HasWarnings returns true if any finding has warning or error severity.
func (r *Result) HasWarnings() bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityError || f.Severity == SeverityWarning {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of findings with error severity.
func (r *Result) ErrorCount() int {
	count := 0
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			count++
		}
	}
	return count
}

// WarningCount returns the number of findings with warning severity.
func (r *Result) WarningCount() int {
	count := 0
	for _, f := range r.Findings {
		if f.Severity == SeverityWarning {
			count++
		}
	}
	return count
}
