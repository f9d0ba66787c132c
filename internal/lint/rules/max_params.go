package rules

import (
	"fmt"
	"math"
	"unicode"
	"unicode/utf8"

	"github.com/typelint/typelint/internal/estree"
	"github.com/typelint/typelint/internal/lint"
)

// defaultMaxParams is the parameter limit applied when none is configured.
const defaultMaxParams = 3

// maxParamsMessage is the finding template. The wording and the
// name/count/max data fields are stable; CI consumers match on them.
const maxParamsMessage = "%s has too many parameters (%d). Maximum allowed is %d."

// MaxParams flags function definitions whose parameter list exceeds a
// configured maximum. It visits function declarations and expressions,
// arrow functions, ambient function declarations, and type-only function
// signatures.
//
// Options are either a bare non-negative integer, or an object with
// "maximum" (alias "max") and "countVoidThis". A leading `this: void`
// parameter declares that the function takes no usable receiver; it binds
// no runtime argument, so it is excluded from the count unless
// countVoidThis is true.
var MaxParams = &lint.Rule{
	Name:            "max-params",
	Doc:             "Enforce a maximum number of parameters in function definitions",
	URL:             "https://eslint.org/docs/latest/rules/max-params",
	Category:        "complexity",
	Severity:        lint.SeverityWarning,
	ValidateOptions: validateMaxParamsOptions,
	Run:             runMaxParams,
}

// maxParamsOptions is the configuration resolved once per pass.
type maxParamsOptions struct {
	maximum       int
	countVoidThis bool
}

func runMaxParams(pass *lint.Pass) error {
	opts := resolveMaxParamsOptions(pass.Config.Options)

	estree.Walk(pass.File.Program, func(n *estree.Node, stack []*estree.Node) {
		if !n.IsFunctionLike() {
			return
		}

		params := n.Params
		if !opts.countVoidThis {
			params = elideVoidThis(params)
		}

		count := len(params)
		if count <= opts.maximum {
			return
		}

		name := upperFirst(estree.FunctionDescription(n, stack))
		start, end := estree.HeadSpan(pass.File, n)
		startPos := pass.File.PositionFor(start)
		endPos := pass.File.PositionFor(end)

		pass.Report(lint.Finding{
			Message:   fmt.Sprintf(maxParamsMessage, name, count, opts.maximum),
			MessageID: "exceed",
			Data: map[string]any{
				"name":  name,
				"count": count,
				"max":   opts.maximum,
			},
			Line:      startPos.Line,
			Column:    startPos.Column,
			EndLine:   endPos.Line,
			EndColumn: endPos.Column,
		})
	})

	return nil
}

// elideVoidThis drops a leading receiver parameter (`this: void`) from
// the counted list. Only the first parameter can be a receiver, so a
// void-typed `this` anywhere else is left alone. The result is a view
// over the original slice; the node is never mutated.
func elideVoidThis(params []*estree.Node) []*estree.Node {
	if len(params) == 0 {
		return params
	}

	first := params[0]
	if first.Type != estree.TypeIdentifier || first.Name != "this" {
		return params
	}
	annotated := first.AnnotatedType()
	if annotated == nil || annotated.Type != estree.TypeTSVoidKeyword {
		return params
	}

	return params[1:]
}

// resolveMaxParamsOptions normalizes the raw options value: absent means
// defaults, a bare integer sets the maximum, and an object may set the
// maximum (under "maximum" or its alias "max") and countVoidThis. The
// value has already passed validateMaxParamsOptions.
func resolveMaxParamsOptions(raw any) maxParamsOptions {
	opts := maxParamsOptions{maximum: defaultMaxParams}

	switch v := raw.(type) {
	case nil:
	case map[string]any:
		// An explicit "maximum" wins over the "max" alias even when it is
		// zero: zero is a valid limit, so precedence goes by presence,
		// not truthiness.
		if m, ok := v["maximum"]; ok {
			if i, ok := asInt(m); ok {
				opts.maximum = i
			}
		} else if m, ok := v["max"]; ok {
			if i, ok := asInt(m); ok {
				opts.maximum = i
			}
		}
		if b, ok := v["countVoidThis"].(bool); ok {
			opts.countVoidThis = b
		}
	default:
		if i, ok := asInt(raw); ok {
			opts.maximum = i
		}
	}

	return opts
}

// validateMaxParamsOptions is the schema for the rule's options: a
// non-negative integer, or an object with only "maximum"/"max"
// (non-negative integers) and "countVoidThis" (boolean).
func validateMaxParamsOptions(raw any) error {
	switch v := raw.(type) {
	case map[string]any:
		for key, val := range v {
			switch key {
			case "maximum", "max":
				i, ok := asInt(val)
				if !ok {
					return fmt.Errorf("%q must be an integer, got %T", key, val)
				}
				if i < 0 {
					return fmt.Errorf("%q must be non-negative, got %d", key, i)
				}
			case "countVoidThis":
				if _, ok := val.(bool); !ok {
					return fmt.Errorf(`"countVoidThis" must be a boolean, got %T`, val)
				}
			default:
				return fmt.Errorf("unknown option %q", key)
			}
		}
		return nil
	default:
		i, ok := asInt(raw)
		if !ok {
			return fmt.Errorf("options must be an integer or an object, got %T", raw)
		}
		if i < 0 {
			return fmt.Errorf("maximum must be non-negative, got %d", i)
		}
		return nil
	}
}

// asInt converts the numeric representations JSON and TOML decoding
// produce. Floats qualify only when integral.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

// upperFirst capitalizes the first letter of a description.
func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
