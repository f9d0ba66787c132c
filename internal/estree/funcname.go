package estree

import (
	"fmt"
	"strings"
)

// FunctionDescription returns a human-readable description of a
// function-like node's kind and name, e.g. "function 'update'",
// "async arrow function", "static method 'init'" or "constructor".
// The stack must hold the node's ancestors, outermost first, as provided
// by Walk; it is used to name functions through the construct that binds
// them (variable declarators, properties, class members).
func FunctionDescription(n *Node, stack []*Node) string {
	kind := "function"
	name := ""

	if n.Type == TypeArrowFunctionExpression {
		kind = "arrow function"
	}

	var parent *Node
	if len(stack) > 0 {
		parent = stack[len(stack)-1]
	}

	if parent != nil {
		switch parent.Type {
		case TypeMethodDefinition:
			switch parent.Kind {
			case "constructor":
				kind = "constructor"
			case "get":
				kind = "getter"
			case "set":
				kind = "setter"
			default:
				kind = "method"
			}
			if parent.Static {
				kind = "static " + kind
			}
			name = keyName(parent)
		case TypeProperty:
			if n.Type != TypeArrowFunctionExpression {
				kind = "method"
			}
			name = keyName(parent)
		case TypePropertyDefinition:
			name = keyName(parent)
		case TypeVariableDeclarator:
			if parent.ID != nil {
				name = parent.ID.Name
			}
		}
	}

	// An explicit name on the function itself wins over the binding name.
	if n.ID != nil && n.ID.Name != "" {
		name = n.ID.Name
	}

	var parts []string
	if n.Async {
		parts = append(parts, "async")
	}
	if n.Generator {
		parts = append(parts, "generator")
	}
	parts = append(parts, kind)

	desc := strings.Join(parts, " ")
	if name != "" && kind != "constructor" {
		desc = fmt.Sprintf("%s '%s'", desc, name)
	}
	return desc
}

// keyName returns the member name of a property-like node, or "" for
// computed keys, whose name is not statically known.
func keyName(n *Node) string {
	if n.Computed || n.Key == nil {
		return ""
	}
	return n.Key.Name
}
