// Package cmdtest provides a testscript-based test harness for the
// typelint CLI.
//
// It uses txtar format test files to specify input files and expected
// outputs, making it easy to write comprehensive CLI tests.
//
// Example test file (testdata/typelint/max_params.txtar):
//
//	! exec typelint app.ast.json
//	stdout 'has too many parameters'
//
//	-- app.ast.json --
//	{"path": "app.ts", "source": "...", "ast": {...}}
package cmdtest

import (
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/typelint/typelint/internal/cmd/typelint"
)

// Run executes the testscript tests in the given directory.
func Run(t *testing.T, dir string) {
	testscript.Run(t, testscript.Params{
		Dir: dir,
	})
}

// Main is the TestMain function that should be called from test files.
// It sets up the CLI as a testscript command.
func Main(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"typelint": wrapRun(typelint.Run),
	}))
}

// wrapRun adapts a Run(args) entrypoint to testscript's func() int.
func wrapRun(run func(args []string) int) func() int {
	return func() int {
		return run(os.Args[1:])
	}
}
