package lint

import (
	"strings"
)

// SuppressionType represents the type of suppression comment.
type SuppressionType int

const (
	// SuppressionNone indicates no suppression.
	SuppressionNone SuppressionType = iota

	// SuppressionLine suppresses rules on the current line.
	// Format: // typelint: disable=rule-name
	SuppressionLine

	// SuppressionNextLine suppresses rules on the next line.
	// Format: // typelint: disable-next-line=rule-name
	SuppressionNextLine

	// SuppressionInline suppresses rules on the same line as code.
	// Format: code_here()  // typelint: disable=rule-name
	SuppressionInline
)

// Suppression represents a suppression directive parsed from a comment.
type Suppression struct {
	// Type is the type of suppression (line, next-line, inline).
	Type SuppressionType

	// Rules is the list of rule names to suppress.
	// An empty list means suppress all rules.
	Rules []string

	// Line is the 1-based line number where the suppression appears.
	Line int
}

// SuppressionParser parses suppression comments from source code.
//
// Directives are scanned textually. A "//" inside a string literal on the
// same line can shadow a real comment, which at worst suppresses a finding
// the author did not ask to suppress; tokenizing the source just for this
// is not worth it.
type SuppressionParser struct {
	// suppressions maps line numbers to their suppressions
	suppressions map[int][]Suppression
}

// NewSuppressionParser creates a new parser for the given source content.
func NewSuppressionParser(content []byte) *SuppressionParser {
	parser := &SuppressionParser{
		suppressions: make(map[int][]Suppression),
	}

	for lineNum, line := range strings.Split(string(content), "\n") {
		// Line numbers are 1-based
		currentLine := lineNum + 1

		suppressions := parseLineForSuppressions(line, currentLine)
		if len(suppressions) > 0 {
			parser.suppressions[currentLine] = suppressions
		}
	}

	return parser
}

// parseLineForSuppressions extracts all suppression directives from a line.
func parseLineForSuppressions(line string, lineNum int) []Suppression {
	commentIdx := strings.Index(line, "//")
	if commentIdx == -1 {
		return nil
	}

	comment := line[commentIdx:]
	if !strings.Contains(comment, "typelint:") {
		return nil
	}

	hasCode := strings.TrimSpace(line[:commentIdx]) != ""

	var suppressions []Suppression

	// disable-next-line must be probed first; a plain "disable=" search
	// would match its tail.
	if rules, ok := parseDirective(comment, "disable-next-line"); ok {
		suppressions = append(suppressions, Suppression{
			Type:  SuppressionNextLine,
			Rules: rules,
			Line:  lineNum,
		})
	} else if rules, ok := parseDirective(comment, "disable"); ok {
		suppressionType := SuppressionLine
		if hasCode {
			suppressionType = SuppressionInline
		}
		suppressions = append(suppressions, Suppression{
			Type:  suppressionType,
			Rules: rules,
			Line:  lineNum,
		})
	}

	return suppressions
}

// parseDirective parses a "typelint: <verb>=rule-a,rule-b" directive and
// returns the listed rules. The "=" and rule list may be omitted to mean
// all rules.
func parseDirective(comment, verb string) ([]string, bool) {
	for _, prefix := range []string{"typelint: " + verb, "typelint:" + verb} {
		idx := strings.Index(comment, prefix)
		if idx == -1 {
			continue
		}

		rest := comment[idx+len(prefix):]
		if !strings.HasPrefix(rest, "=") {
			// Bare directive with no rule list.
			if rest == "" || rest[0] == ' ' || rest[0] == '\t' {
				return nil, true
			}
			continue
		}

		rulesStr := strings.TrimSpace(rest[1:])
		if spaceIdx := strings.IndexAny(rulesStr, " \t"); spaceIdx != -1 {
			rulesStr = rulesStr[:spaceIdx]
		}

		return parseRuleList(rulesStr), true
	}

	return nil, false
}

// parseRuleList parses a comma-separated list of rule names.
// An empty string or "all" means suppress all rules.
func parseRuleList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" || s == "all" {
		return []string{} // Empty list means all rules
	}

	parts := strings.Split(s, ",")
	var rules []string
	for _, part := range parts {
		rule := strings.TrimSpace(part)
		if rule != "" {
			rules = append(rules, rule)
		}
	}
	return rules
}

// IsSuppressed checks if a finding should be suppressed based on
// suppression directives.
func (p *SuppressionParser) IsSuppressed(finding Finding) bool {
	line := finding.Line

	// Check for suppression on the same line
	for _, supp := range p.suppressions[line] {
		if supp.Type == SuppressionInline || supp.Type == SuppressionLine {
			if matchesSuppressionRules(finding, supp.Rules) {
				return true
			}
		}
	}

	// Check for next-line suppression on the previous line
	if line > 1 {
		for _, supp := range p.suppressions[line-1] {
			if supp.Type == SuppressionNextLine {
				if matchesSuppressionRules(finding, supp.Rules) {
					return true
				}
			}
		}
	}

	return false
}

// matchesSuppressionRules checks if a finding matches the suppression rules.
// An empty rules list means suppress all rules.
func matchesSuppressionRules(finding Finding, rules []string) bool {
	if len(rules) == 0 {
		return true
	}

	for _, rule := range rules {
		if rule == finding.Rule {
			return true
		}
	}

	return false
}

// FilterSuppressed removes suppressed findings from a list.
func FilterSuppressed(findings []Finding, parser *SuppressionParser) []Finding {
	var filtered []Finding
	for _, finding := range findings {
		if !parser.IsSuppressed(finding) {
			filtered = append(filtered, finding)
		}
	}
	return filtered
}
