package rules

import (
	"github.com/typelint/typelint/internal/estree"
	"github.com/typelint/typelint/internal/lint"
)

// NoDebugger flags debugger statements left in source.
var NoDebugger = &lint.Rule{
	Name:     "no-debugger",
	Doc:      "Disallow debugger statements",
	URL:      "https://eslint.org/docs/latest/rules/no-debugger",
	Category: "correctness",
	Severity: lint.SeverityError,
	Run:      runNoDebugger,
}

func runNoDebugger(pass *lint.Pass) error {
	estree.Walk(pass.File.Program, func(n *estree.Node, _ []*estree.Node) {
		if n.Type != estree.TypeDebuggerStatement {
			return
		}

		startPos := pass.File.PositionFor(n.Range[0])
		endPos := pass.File.PositionFor(n.Range[1])

		pass.Report(lint.Finding{
			Message:   "Unexpected 'debugger' statement.",
			MessageID: "unexpected",
			Line:      startPos.Line,
			Column:    startPos.Column,
			EndLine:   endPos.Line,
			EndColumn: endPos.Column,
		})
	})

	return nil
}
