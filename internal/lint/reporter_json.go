package lint

import (
	"encoding/json"
	"io"
)

// JSONReporter outputs findings in JSON format for CI integration.
type JSONReporter struct{}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter() *JSONReporter {
	return &JSONReporter{}
}

// jsonOutput represents the root JSON structure.
type jsonOutput struct {
	Files   []jsonFile  `json:"files"`
	Summary jsonSummary `json:"summary"`
}

// jsonFile represents a file and its findings.
type jsonFile struct {
	Path     string        `json:"path"`
	Findings []jsonFinding `json:"findings"`
}

// jsonFinding represents a single lint finding. MessageID and Data expose
// the stable message key and the structured values the message was built
// from, so consumers never have to parse the message text.
type jsonFinding struct {
	Rule      string         `json:"rule"`
	Category  string         `json:"category"`
	Severity  string         `json:"severity"`
	Message   string         `json:"message"`
	MessageID string         `json:"message_id,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	Line      int            `json:"line"`
	Column    int            `json:"column"`
	EndLine   int            `json:"end_line,omitempty"`
	EndColumn int            `json:"end_column,omitempty"`
}

// jsonSummary represents summary statistics.
type jsonSummary struct {
	TotalFiles    int             `json:"total_files"`
	TotalFindings int             `json:"total_findings"`
	Errors        int             `json:"errors"`
	Warnings      int             `json:"warnings"`
	FileErrors    []jsonFileError `json:"file_errors,omitempty"`
	ByRule        map[string]int  `json:"by_rule"`
}

// jsonFileError represents an error that occurred while processing a file.
type jsonFileError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Report implements the Reporter interface for JSON output.
func (r *JSONReporter) Report(w io.Writer, result *Result) error {
	output := r.buildOutput(result)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildOutput constructs the JSON output structure from the result.
func (r *JSONReporter) buildOutput(result *Result) jsonOutput {
	findings := sortedFindings(result)

	byRule := make(map[string]int)

	files := []jsonFile{}
	var current *jsonFile
	for _, f := range findings {
		byRule[f.Rule]++

		if current == nil || current.Path != f.FilePath {
			files = append(files, jsonFile{Path: f.FilePath, Findings: []jsonFinding{}})
			current = &files[len(files)-1]
		}

		current.Findings = append(current.Findings, jsonFinding{
			Rule:      f.Rule,
			Category:  f.Category,
			Severity:  f.Severity.String(),
			Message:   f.Message,
			MessageID: f.MessageID,
			Data:      f.Data,
			Line:      f.Line,
			Column:    f.Column,
			EndLine:   f.EndLine,
			EndColumn: f.EndColumn,
		})
	}

	summary := jsonSummary{
		TotalFiles:    result.Files,
		TotalFindings: len(findings),
		Errors:        result.ErrorCount(),
		Warnings:      result.WarningCount(),
		ByRule:        byRule,
	}

	for _, fileErr := range result.Errors {
		summary.FileErrors = append(summary.FileErrors, jsonFileError{
			Path:    fileErr.Path,
			Message: fileErr.Err.Error(),
		})
	}

	return jsonOutput{Files: files, Summary: summary}
}
