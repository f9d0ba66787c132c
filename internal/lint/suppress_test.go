package lint

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseLineForSuppressions(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []Suppression
	}{
		{
			name: "no comment",
			line: "const x = 1;",
			want: nil,
		},
		{
			name: "comment without directive",
			line: "// nothing to see",
			want: nil,
		},
		{
			name: "line disable one rule",
			line: "// typelint: disable=max-params",
			want: []Suppression{{Type: SuppressionLine, Rules: []string{"max-params"}, Line: 1}},
		},
		{
			name: "line disable several rules",
			line: "// typelint: disable=max-params,no-debugger",
			want: []Suppression{{Type: SuppressionLine, Rules: []string{"max-params", "no-debugger"}, Line: 1}},
		},
		{
			name: "bare disable suppresses all",
			line: "// typelint: disable",
			want: []Suppression{{Type: SuppressionLine, Rules: nil, Line: 1}},
		},
		{
			name: "disable all keyword",
			line: "// typelint: disable=all",
			want: []Suppression{{Type: SuppressionLine, Rules: []string{}, Line: 1}},
		},
		{
			name: "next line",
			line: "// typelint: disable-next-line=max-params",
			want: []Suppression{{Type: SuppressionNextLine, Rules: []string{"max-params"}, Line: 1}},
		},
		{
			name: "inline after code",
			line: "debugger; // typelint: disable=no-debugger",
			want: []Suppression{{Type: SuppressionInline, Rules: []string{"no-debugger"}, Line: 1}},
		},
		{
			name: "no space after colon",
			line: "// typelint:disable=max-params",
			want: []Suppression{{Type: SuppressionLine, Rules: []string{"max-params"}, Line: 1}},
		},
		{
			name: "trailing prose ignored",
			line: "// typelint: disable=max-params legacy handler",
			want: []Suppression{{Type: SuppressionLine, Rules: []string{"max-params"}, Line: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseLineForSuppressions(tt.line, 1)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("suppressions (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIsSuppressed(t *testing.T) {
	source := []byte(`function a(p, q, r, s) {} // typelint: disable=max-params
// typelint: disable-next-line=max-params
function b(p, q, r, s) {}
function c(p, q, r, s) {}
debugger; // typelint: disable
`)
	parser := NewSuppressionParser(source)

	tests := []struct {
		name    string
		finding Finding
		want    bool
	}{
		{"inline same line", Finding{Rule: "max-params", Line: 1}, true},
		{"next-line target", Finding{Rule: "max-params", Line: 3}, true},
		{"unrelated line", Finding{Rule: "max-params", Line: 4}, false},
		{"wrong rule", Finding{Rule: "no-debugger", Line: 1}, false},
		{"bare disable covers any rule", Finding{Rule: "no-debugger", Line: 5}, true},
		{"next-line does not cover its own line", Finding{Rule: "max-params", Line: 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parser.IsSuppressed(tt.finding); got != tt.want {
				t.Errorf("IsSuppressed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterSuppressed(t *testing.T) {
	parser := NewSuppressionParser([]byte("x(); // typelint: disable=max-params\ny();\n"))

	findings := []Finding{
		{Rule: "max-params", Line: 1},
		{Rule: "max-params", Line: 2},
	}
	got := FilterSuppressed(findings, parser)
	if len(got) != 1 || got[0].Line != 2 {
		t.Errorf("FilterSuppressed = %+v, want only the line 2 finding", got)
	}
}
