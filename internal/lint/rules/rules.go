// Package rules provides typelint's built-in lint rules.
package rules

import (
	"github.com/typelint/typelint/internal/lint"
)

// All returns all built-in rules.
func All() []*lint.Rule {
	return []*lint.Rule{
		MaxParams,
		NoDebugger,
	}
}
