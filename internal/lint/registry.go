package lint

import (
	"fmt"
	"strings"

	"github.com/typelint/typelint/internal/sortutil"
)

// Registry manages a collection of lint rules with enable/disable controls.
type Registry struct {
	// rules maps rule names to their definitions
	rules map[string]*Rule

	// enabled tracks which rules are currently enabled
	enabled map[string]bool

	// configs holds per-rule configuration
	configs map[string]RuleConfig

	// categories maps category names to rule names
	categories map[string][]string
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		rules:      make(map[string]*Rule),
		enabled:    make(map[string]bool),
		configs:    make(map[string]RuleConfig),
		categories: make(map[string][]string),
	}
}

// Register adds rules to the registry and validates them.
// Returns an error if any rule has an invalid name or duplicates an existing rule.
func (r *Registry) Register(rules ...*Rule) error {
	for _, rule := range rules {
		if rule.Name == "" {
			return fmt.Errorf("rule has empty name")
		}

		if _, exists := r.rules[rule.Name]; exists {
			return fmt.Errorf("duplicate rule name: %s", rule.Name)
		}

		if !isValidRuleName(rule.Name) {
			return fmt.Errorf("invalid rule name %q: must be kebab-case (lowercase with hyphens)", rule.Name)
		}

		if rule.Run == nil {
			return fmt.Errorf("rule %s has no Run function", rule.Name)
		}

		r.rules[rule.Name] = rule

		// Enabled by default
		r.enabled[rule.Name] = true

		if rule.Category != "" {
			r.categories[rule.Category] = append(r.categories[rule.Category], rule.Name)
		}
	}

	return nil
}

// Rule returns the rule with the given name.
func (r *Registry) Rule(name string) (*Rule, bool) {
	rule, exists := r.rules[name]
	return rule, exists
}

// Enable enables the specified rules by name or category.
// Names can be exact rule names, category names, "all", or glob patterns.
// If a name matches both a rule and a category, the rule takes precedence.
func (r *Registry) Enable(names ...string) {
	r.setEnabled(true, names)
}

// Disable disables the specified rules by name or category.
// Names can be exact rule names, category names, "all", or glob patterns.
// If a name matches both a rule and a category, the rule takes precedence.
func (r *Registry) Disable(names ...string) {
	r.setEnabled(false, names)
}

func (r *Registry) setEnabled(enabled bool, names []string) {
	for _, name := range names {
		if name == "all" {
			for ruleName := range r.rules {
				r.enabled[ruleName] = enabled
			}
			continue
		}

		if _, exists := r.rules[name]; exists {
			r.enabled[name] = enabled
			continue
		}

		if ruleNames, exists := r.categories[name]; exists {
			for _, ruleName := range ruleNames {
				r.enabled[ruleName] = enabled
			}
			continue
		}

		if strings.Contains(name, "*") {
			for ruleName := range r.rules {
				if matchGlob(name, ruleName) {
					r.enabled[ruleName] = enabled
				}
			}
		}
	}
}

// SetConfig sets the configuration for a specific rule. Options are
// validated against the rule's schema here, before any pass runs, so
// rules never observe malformed options.
func (r *Registry) SetConfig(ruleName string, config RuleConfig) error {
	rule, exists := r.rules[ruleName]
	if !exists {
		return fmt.Errorf("unknown rule: %s", ruleName)
	}

	if config.Options != nil && rule.ValidateOptions != nil {
		if err := rule.ValidateOptions(config.Options); err != nil {
			return fmt.Errorf("invalid options for rule %s: %w", ruleName, err)
		}
	}

	r.configs[ruleName] = config
	return nil
}

// GetConfig returns the configuration for a specific rule.
// Returns an empty config if none is set.
func (r *Registry) GetConfig(ruleName string) RuleConfig {
	if config, exists := r.configs[ruleName]; exists {
		return config
	}
	return RuleConfig{}
}

// EnabledRules returns all currently enabled rules, sorted by name so
// every run visits rules in the same order.
func (r *Registry) EnabledRules() []*Rule {
	var enabled []*Rule
	for name, rule := range r.rules {
		if r.enabled[name] {
			enabled = append(enabled, rule)
		}
	}

	sortutil.ByName(enabled, func(rule *Rule) string { return rule.Name })
	return enabled
}

// AllRules returns all registered rules, sorted by name.
func (r *Registry) AllRules() []*Rule {
	rules := make([]*Rule, 0, len(r.rules))
	for _, rule := range r.rules {
		rules = append(rules, rule)
	}

	sortutil.ByName(rules, func(rule *Rule) string { return rule.Name })
	return rules
}

// Categories returns all known categories, sorted.
func (r *Registry) Categories() []string {
	cats := make([]string, 0, len(r.categories))
	for cat := range r.categories {
		cats = append(cats, cat)
	}
	sortutil.ByName(cats, func(c string) string { return c })
	return cats
}

// RulesByCategory returns all rules in a specific category.
func (r *Registry) RulesByCategory(category string) []*Rule {
	names, exists := r.categories[category]
	if !exists {
		return nil
	}

	rules := make([]*Rule, 0, len(names))
	for _, name := range names {
		if rule, exists := r.rules[name]; exists {
			rules = append(rules, rule)
		}
	}

	sortutil.ByName(rules, func(rule *Rule) string { return rule.Name })
	return rules
}

// isValidRuleName checks if a rule name follows kebab-case convention.
// Allows lowercase letters, digits, hyphens, and underscores.
func isValidRuleName(name string) bool {
	if name == "" {
		return false
	}

	for i, ch := range name {
		if ch >= 'a' && ch <= 'z' {
			continue
		}
		if ch >= '0' && ch <= '9' && i > 0 {
			continue
		}
		if (ch == '-' || ch == '_') && i > 0 && i < len(name)-1 {
			continue
		}
		return false
	}

	return true
}

// matchGlob is a simple glob pattern matcher supporting only '*' wildcard.
func matchGlob(pattern, str string) bool {
	if !strings.Contains(pattern, "*") {
		return pattern == str
	}

	parts := strings.Split(pattern, "*")
	if len(parts) == 2 {
		prefix, suffix := parts[0], parts[1]
		return strings.HasPrefix(str, prefix) && strings.HasSuffix(str, suffix) &&
			len(str) >= len(prefix)+len(suffix)
	}

	if strings.HasPrefix(pattern, "*") {
		return strings.HasSuffix(str, strings.TrimPrefix(pattern, "*"))
	}
	if strings.HasSuffix(pattern, "*") {
		return strings.HasPrefix(str, strings.TrimSuffix(pattern, "*"))
	}

	return false
}
