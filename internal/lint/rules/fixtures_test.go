package rules

import (
	"testing"

	"github.com/typelint/typelint/internal/estree"
	"github.com/typelint/typelint/internal/lint"
)

// AST envelope fixtures, as a parser producing byte ranges would emit
// them. Ranges are [start, end) byte offsets into the source.

// function update(a, b, c, d) {}
const fixtureFourParams = `{
  "path": "app.ts",
  "source": "function update(a, b, c, d) {}\n",
  "ast": {
    "type": "Program", "range": [0, 31], "sourceType": "module",
    "body": [
      {
        "type": "FunctionDeclaration", "range": [0, 30],
        "id": {"type": "Identifier", "range": [9, 15], "name": "update"},
        "generator": false, "async": false, "expression": false,
        "params": [
          {"type": "Identifier", "range": [16, 17], "name": "a"},
          {"type": "Identifier", "range": [19, 20], "name": "b"},
          {"type": "Identifier", "range": [22, 23], "name": "c"},
          {"type": "Identifier", "range": [25, 26], "name": "d"}
        ],
        "body": {"type": "BlockStatement", "range": [28, 30], "body": []}
      }
    ]
  }
}`

// function ok(a, b, c) {}
const fixtureThreeParams = `{
  "path": "ok.ts",
  "source": "function ok(a, b, c) {}\n",
  "ast": {
    "type": "Program", "range": [0, 24], "sourceType": "module",
    "body": [
      {
        "type": "FunctionDeclaration", "range": [0, 23],
        "id": {"type": "Identifier", "range": [9, 11], "name": "ok"},
        "generator": false, "async": false,
        "params": [
          {"type": "Identifier", "range": [12, 13], "name": "a"},
          {"type": "Identifier", "range": [15, 16], "name": "b"},
          {"type": "Identifier", "range": [18, 19], "name": "c"}
        ],
        "body": {"type": "BlockStatement", "range": [21, 23], "body": []}
      }
    ]
  }
}`

// const f = (this: void, x, y, z, w) => x;
const fixtureVoidThisArrow = `{
  "path": "arrow.ts",
  "source": "const f = (this: void, x, y, z, w) => x;\n",
  "ast": {
    "type": "Program", "range": [0, 41], "sourceType": "module",
    "body": [
      {
        "type": "VariableDeclaration", "range": [0, 40], "kind": "const",
        "declarations": [
          {
            "type": "VariableDeclarator", "range": [6, 39],
            "id": {"type": "Identifier", "range": [6, 7], "name": "f"},
            "init": {
              "type": "ArrowFunctionExpression", "range": [10, 39],
              "generator": false, "async": false, "expression": true,
              "params": [
                {
                  "type": "Identifier", "range": [11, 21], "name": "this",
                  "typeAnnotation": {
                    "type": "TSTypeAnnotation", "range": [15, 21],
                    "typeAnnotation": {"type": "TSVoidKeyword", "range": [17, 21]}
                  }
                },
                {"type": "Identifier", "range": [23, 24], "name": "x"},
                {"type": "Identifier", "range": [26, 27], "name": "y"},
                {"type": "Identifier", "range": [29, 30], "name": "z"},
                {"type": "Identifier", "range": [32, 33], "name": "w"}
              ],
              "body": {"type": "Identifier", "range": [38, 39], "name": "x"}
            }
          }
        ]
      }
    ]
  }
}`

// function g(x, this: void) {}  -- receiver-shaped parameter in second
// position; TypeScript itself rejects this, but the checker must still
// never elide it.
const fixtureVoidThisNotFirst = `{
  "path": "notfirst.ts",
  "source": "function g(x, this: void) {}\n",
  "ast": {
    "type": "Program", "range": [0, 29], "sourceType": "module",
    "body": [
      {
        "type": "FunctionDeclaration", "range": [0, 28],
        "id": {"type": "Identifier", "range": [9, 10], "name": "g"},
        "generator": false, "async": false,
        "params": [
          {"type": "Identifier", "range": [11, 12], "name": "x"},
          {
            "type": "Identifier", "range": [14, 24], "name": "this",
            "typeAnnotation": {
              "type": "TSTypeAnnotation", "range": [18, 24],
              "typeAnnotation": {"type": "TSVoidKeyword", "range": [20, 24]}
            }
          }
        ],
        "body": {"type": "BlockStatement", "range": [26, 28], "body": []}
      }
    ]
  }
}`

// class A { update(a, b, c, d) {} }
const fixtureClassMethod = `{
  "path": "class.ts",
  "source": "class A { update(a, b, c, d) {} }\n",
  "ast": {
    "type": "Program", "range": [0, 34], "sourceType": "module",
    "body": [
      {
        "type": "ClassDeclaration", "range": [0, 33],
        "id": {"type": "Identifier", "range": [6, 7], "name": "A"},
        "body": {
          "type": "ClassBody", "range": [8, 33],
          "body": [
            {
              "type": "MethodDefinition", "range": [10, 31],
              "kind": "method", "computed": false, "static": false,
              "key": {"type": "Identifier", "range": [10, 16], "name": "update"},
              "value": {
                "type": "FunctionExpression", "range": [16, 31],
                "generator": false, "async": false,
                "params": [
                  {"type": "Identifier", "range": [17, 18], "name": "a"},
                  {"type": "Identifier", "range": [20, 21], "name": "b"},
                  {"type": "Identifier", "range": [23, 24], "name": "c"},
                  {"type": "Identifier", "range": [26, 27], "name": "d"}
                ],
                "body": {"type": "BlockStatement", "range": [29, 31], "body": []}
              }
            }
          ]
        }
      }
    ]
  }
}`

// declare function init(a: number, b: string, c: boolean, d: object): void;
const fixtureDeclareFunction = `{
  "path": "ambient.d.ts",
  "source": "declare function init(a: number, b: string, c: boolean, d: object): void;\n",
  "ast": {
    "type": "Program", "range": [0, 74], "sourceType": "module",
    "body": [
      {
        "type": "TSDeclareFunction", "range": [0, 73], "declare": true,
        "id": {"type": "Identifier", "range": [17, 21], "name": "init"},
        "generator": false, "async": false,
        "params": [
          {
            "type": "Identifier", "range": [22, 31], "name": "a",
            "typeAnnotation": {
              "type": "TSTypeAnnotation", "range": [23, 31],
              "typeAnnotation": {"type": "TSNumberKeyword", "range": [25, 31]}
            }
          },
          {
            "type": "Identifier", "range": [33, 42], "name": "b",
            "typeAnnotation": {
              "type": "TSTypeAnnotation", "range": [34, 42],
              "typeAnnotation": {"type": "TSStringKeyword", "range": [36, 42]}
            }
          },
          {
            "type": "Identifier", "range": [44, 54], "name": "c",
            "typeAnnotation": {
              "type": "TSTypeAnnotation", "range": [45, 54],
              "typeAnnotation": {"type": "TSBooleanKeyword", "range": [47, 54]}
            }
          },
          {
            "type": "Identifier", "range": [56, 65], "name": "d",
            "typeAnnotation": {
              "type": "TSTypeAnnotation", "range": [57, 65],
              "typeAnnotation": {"type": "TSObjectKeyword", "range": [59, 65]}
            }
          }
        ],
        "returnType": {
          "type": "TSTypeAnnotation", "range": [66, 72],
          "typeAnnotation": {"type": "TSVoidKeyword", "range": [68, 72]}
        }
      }
    ]
  }
}`

// const h = async (a, b, c, d) => a;
const fixtureAsyncArrow = `{
  "path": "async.ts",
  "source": "const h = async (a, b, c, d) => a;\n",
  "ast": {
    "type": "Program", "range": [0, 35], "sourceType": "module",
    "body": [
      {
        "type": "VariableDeclaration", "range": [0, 34], "kind": "const",
        "declarations": [
          {
            "type": "VariableDeclarator", "range": [6, 33],
            "id": {"type": "Identifier", "range": [6, 7], "name": "h"},
            "init": {
              "type": "ArrowFunctionExpression", "range": [10, 33],
              "generator": false, "async": true, "expression": true,
              "params": [
                {"type": "Identifier", "range": [17, 18], "name": "a"},
                {"type": "Identifier", "range": [20, 21], "name": "b"},
                {"type": "Identifier", "range": [23, 24], "name": "c"},
                {"type": "Identifier", "range": [26, 27], "name": "d"}
              ],
              "body": {"type": "Identifier", "range": [32, 33], "name": "a"}
            }
          }
        ]
      }
    ]
  }
}`

// debugger;
const fixtureDebugger = `{
  "path": "debug.ts",
  "source": "debugger;\n",
  "ast": {
    "type": "Program", "range": [0, 10], "sourceType": "script",
    "body": [
      {"type": "DebuggerStatement", "range": [0, 9]}
    ]
  }
}`

// lintFixture runs a single rule over a decoded envelope and returns its
// findings. Options are checked against the rule's schema first, the same
// guarantee the driver gives rules.
func lintFixture(t *testing.T, rule *lint.Rule, fixture string, options any) []lint.Finding {
	t.Helper()

	file, err := estree.Decode([]byte(fixture))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if options != nil && rule.ValidateOptions != nil {
		if err := rule.ValidateOptions(options); err != nil {
			t.Fatalf("options rejected by schema: %v", err)
		}
	}

	var findings []lint.Finding
	pass := &lint.Pass{
		File:     file,
		FilePath: file.Path,
		Config:   lint.RuleConfig{Options: options},
		Report: func(f lint.Finding) {
			findings = append(findings, f)
		},
	}

	if err := rule.Run(pass); err != nil {
		t.Fatalf("%s.Run: %v", rule.Name, err)
	}

	return findings
}
