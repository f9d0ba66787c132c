package lint

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testRule(name, category string) *Rule {
	return &Rule{
		Name:     name,
		Doc:      "test rule " + name,
		Category: category,
		Severity: SeverityWarning,
		Run:      func(*Pass) error { return nil },
	}
}

func testRegistry(t *testing.T, rules ...*Rule) *Registry {
	t.Helper()
	r := NewRegistry()
	if err := r.Register(rules...); err != nil {
		t.Fatalf("Register: %v", err)
	}
	return r
}

func enabledNames(r *Registry) []string {
	var names []string
	for _, rule := range r.EnabledRules() {
		names = append(names, rule.Name)
	}
	return names
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name    string
		rule    *Rule
		wantErr string
	}{
		{"empty name", &Rule{Run: func(*Pass) error { return nil }}, "empty name"},
		{"uppercase", &Rule{Name: "MaxParams", Run: func(*Pass) error { return nil }}, "kebab-case"},
		{"leading hyphen", &Rule{Name: "-max", Run: func(*Pass) error { return nil }}, "kebab-case"},
		{"trailing hyphen", &Rule{Name: "max-", Run: func(*Pass) error { return nil }}, "kebab-case"},
		{"no run", &Rule{Name: "max-params"}, "no Run function"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRegistry().Register(tt.rule)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Register error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestRegisterDuplicate(t *testing.T) {
	r := testRegistry(t, testRule("max-params", "complexity"))
	err := r.Register(testRule("max-params", "complexity"))
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("Register error = %v, want duplicate error", err)
	}
}

func TestEnableDisable(t *testing.T) {
	newReg := func(t *testing.T) *Registry {
		return testRegistry(t,
			testRule("max-params", "complexity"),
			testRule("max-depth", "complexity"),
			testRule("no-debugger", "correctness"),
		)
	}

	t.Run("enabled by default", func(t *testing.T) {
		r := newReg(t)
		want := []string{"max-depth", "max-params", "no-debugger"}
		if diff := cmp.Diff(want, enabledNames(r)); diff != "" {
			t.Errorf("enabled rules (-want +got):\n%s", diff)
		}
	})

	t.Run("disable by name", func(t *testing.T) {
		r := newReg(t)
		r.Disable("max-params")
		want := []string{"max-depth", "no-debugger"}
		if diff := cmp.Diff(want, enabledNames(r)); diff != "" {
			t.Errorf("enabled rules (-want +got):\n%s", diff)
		}
	})

	t.Run("disable by category", func(t *testing.T) {
		r := newReg(t)
		r.Disable("complexity")
		want := []string{"no-debugger"}
		if diff := cmp.Diff(want, enabledNames(r)); diff != "" {
			t.Errorf("enabled rules (-want +got):\n%s", diff)
		}
	})

	t.Run("disable all then enable one", func(t *testing.T) {
		r := newReg(t)
		r.Disable("all")
		r.Enable("no-debugger")
		want := []string{"no-debugger"}
		if diff := cmp.Diff(want, enabledNames(r)); diff != "" {
			t.Errorf("enabled rules (-want +got):\n%s", diff)
		}
	})

	t.Run("glob", func(t *testing.T) {
		r := newReg(t)
		r.Disable("max-*")
		want := []string{"no-debugger"}
		if diff := cmp.Diff(want, enabledNames(r)); diff != "" {
			t.Errorf("enabled rules (-want +got):\n%s", diff)
		}
	})
}

func TestSetConfigValidatesOptions(t *testing.T) {
	rule := testRule("max-params", "complexity")
	rule.ValidateOptions = func(options any) error {
		if _, ok := options.(float64); !ok {
			return errors.New("want a number")
		}
		return nil
	}
	r := testRegistry(t, rule)

	if err := r.SetConfig("max-params", RuleConfig{Options: float64(2)}); err != nil {
		t.Errorf("valid options rejected: %v", err)
	}

	err := r.SetConfig("max-params", RuleConfig{Options: "two"})
	if err == nil || !strings.Contains(err.Error(), "invalid options for rule max-params") {
		t.Errorf("SetConfig error = %v, want invalid options error", err)
	}

	// Absent options skip validation.
	if err := r.SetConfig("max-params", RuleConfig{Severity: SeverityError}); err != nil {
		t.Errorf("nil options rejected: %v", err)
	}
}

func TestSetConfigUnknownRule(t *testing.T) {
	r := testRegistry(t, testRule("max-params", "complexity"))
	if err := r.SetConfig("nope", RuleConfig{}); err == nil {
		t.Error("expected error for unknown rule")
	}
}

func TestCategories(t *testing.T) {
	r := testRegistry(t,
		testRule("max-params", "complexity"),
		testRule("no-debugger", "correctness"),
		testRule("max-depth", "complexity"),
	)

	want := []string{"complexity", "correctness"}
	if diff := cmp.Diff(want, r.Categories()); diff != "" {
		t.Errorf("Categories (-want +got):\n%s", diff)
	}

	var names []string
	for _, rule := range r.RulesByCategory("complexity") {
		names = append(names, rule.Name)
	}
	if diff := cmp.Diff([]string{"max-depth", "max-params"}, names); diff != "" {
		t.Errorf("RulesByCategory (-want +got):\n%s", diff)
	}

	if got := r.RulesByCategory("nope"); got != nil {
		t.Errorf("unknown category = %v, want nil", got)
	}
}

func TestMatchGlob(t *testing.T) {
	tests := []struct {
		pattern, str string
		want         bool
	}{
		{"max-*", "max-params", true},
		{"max-*", "no-debugger", false},
		{"*-params", "max-params", true},
		{"no-*", "no-debugger", true},
		{"max-*-check", "max-params-check", true},
		{"max-*-check", "max-params", false},
		{"exact", "exact", true},
		{"exact", "other", false},
	}
	for _, tt := range tests {
		if got := matchGlob(tt.pattern, tt.str); got != tt.want {
			t.Errorf("matchGlob(%q, %q) = %v, want %v", tt.pattern, tt.str, got, tt.want)
		}
	}
}
