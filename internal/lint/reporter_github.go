package lint

import (
	"fmt"
	"io"
	"strings"
)

// GitHubReporter outputs findings in GitHub Actions annotation format.
// Format: ::warning file={file},line={line},col={col}::{message}
// See: https://docs.github.com/en/actions/using-workflows/workflow-commands-for-github-actions
type GitHubReporter struct{}

// NewGitHubReporter creates a new GitHub Actions reporter.
func NewGitHubReporter() *GitHubReporter {
	return &GitHubReporter{}
}

// Report implements the Reporter interface for GitHub Actions output.
func (r *GitHubReporter) Report(w io.Writer, result *Result) error {
	for _, finding := range sortedFindings(result) {
		if err := r.reportFinding(w, finding); err != nil {
			return err
		}
	}

	for _, fileErr := range result.Errors {
		if _, err := fmt.Fprintf(w, "::error file=%s::Failed to process file: %v\n",
			fileErr.Path, fileErr.Err); err != nil {
			return err
		}
	}

	return nil
}

// reportFinding outputs a single finding as a workflow command.
func (r *GitHubReporter) reportFinding(w io.Writer, f Finding) error {
	level := severityToLevel(f.Severity)

	title := f.Rule
	if title == "" {
		title = "lint"
	}

	location := fmt.Sprintf("file=%s,line=%d", f.FilePath, f.Line)
	if f.Column > 0 {
		location += fmt.Sprintf(",col=%d", f.Column)
	}
	if f.EndLine > 0 && f.EndLine != f.Line {
		location += fmt.Sprintf(",endLine=%d", f.EndLine)
	}
	if f.EndColumn > 0 && f.EndColumn != f.Column {
		location += fmt.Sprintf(",endColumn=%d", f.EndColumn)
	}

	_, err := fmt.Fprintf(w, "::%s %s,title=%s::%s\n", level, location, title, escapeWorkflowData(f.Message))
	return err
}

// severityToLevel maps a severity to a workflow-command annotation level.
func severityToLevel(s Severity) string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "notice"
	}
}

// escapeWorkflowData escapes message data per the workflow command spec.
func escapeWorkflowData(s string) string {
	replacer := strings.NewReplacer(
		"%", "%25",
		"\r", "%0D",
		"\n", "%0A",
	)
	return replacer.Replace(s)
}
