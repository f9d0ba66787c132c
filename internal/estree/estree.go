// Package estree models pre-parsed ESTree syntax trees.
//
// typelint does not parse TypeScript or JavaScript itself. An external
// parser (for example @typescript-eslint/typescript-estree) produces the
// AST and serializes it together with the source text into a JSON
// envelope:
//
//	{
//	  "path": "src/api.ts",
//	  "source": "export function get(url: string) {}",
//	  "ast": {"type": "Program", "range": [0, 35], "body": [...]}
//	}
//
// Nodes carry [start, end) byte offsets in "range". All positions reported
// to users are derived from those offsets via a line index, so "loc"
// objects in the input are ignored.
package estree

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
)

// NodeType identifies an ESTree node kind, e.g. "FunctionDeclaration".
type NodeType string

// Node types the linter inspects by name. The decoder preserves every
// type it encounters; rules that only traverse never need a constant.
const (
	TypeProgram            NodeType = "Program"
	TypeIdentifier         NodeType = "Identifier"
	TypeVariableDeclarator NodeType = "VariableDeclarator"
	TypeMethodDefinition   NodeType = "MethodDefinition"
	TypeProperty           NodeType = "Property"
	TypePropertyDefinition NodeType = "PropertyDefinition"
	TypeDebuggerStatement  NodeType = "DebuggerStatement"

	TypeFunctionDeclaration           NodeType = "FunctionDeclaration"
	TypeFunctionExpression            NodeType = "FunctionExpression"
	TypeArrowFunctionExpression       NodeType = "ArrowFunctionExpression"
	TypeTSDeclareFunction             NodeType = "TSDeclareFunction"
	TypeTSEmptyBodyFunctionExpression NodeType = "TSEmptyBodyFunctionExpression"

	TypeTSTypeAnnotation NodeType = "TSTypeAnnotation"
	TypeTSVoidKeyword    NodeType = "TSVoidKeyword"
)

// Node is a single ESTree node.
//
// ESTree is a large, open-ended grammar, so Node is deliberately generic:
// the fields the linter consumes are decoded into typed form, and every
// other child node is still discovered and kept in a document-ordered
// child list so traversal reaches functions nested under node kinds the
// decoder has never heard of.
type Node struct {
	// Type is the ESTree node kind.
	Type NodeType

	// Range is the [start, end) byte span of the node in the source.
	Range [2]int

	// Name is the identifier text (Identifier nodes only).
	Name string

	// Kind is the declaration flavor for nodes that carry one, e.g.
	// "constructor", "get" or "set" on MethodDefinition.
	Kind string

	// Async and Generator are set on function-like nodes.
	Async     bool
	Generator bool

	// Computed marks computed member/property keys ([expr]: ...).
	Computed bool

	// Static marks static class members.
	Static bool

	// ID is the declared name node, when present.
	ID *Node

	// Key is the property or member name node, when present.
	Key *Node

	// Value is the property value node, when present.
	Value *Node

	// Body is the body node. Only set when the grammar puts a single node
	// there (function and class bodies); statement lists stay in children.
	Body *Node

	// Params is the ordered parameter list of a function-like node.
	Params []*Node

	// TypeAnnotation is the TSTypeAnnotation wrapper on an annotated
	// binding, or the inner type node on the wrapper itself.
	TypeAnnotation *Node

	// children holds every child node, sorted by start offset.
	children []*Node
}

// keys that never contain child syntax nodes.
var nonChildKeys = map[string]bool{
	"loc":              true,
	"parent":           true,
	"tokens":           true,
	"comments":         true,
	"leadingComments":  true,
	"trailingComments": true,
}

// UnmarshalJSON decodes an ESTree node. Fields the linter consumes are
// assigned to typed fields; all object- or array-valued fields are probed
// for child nodes, which keeps traversal complete for unknown node kinds.
func (n *Node) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	for key, raw := range fields {
		raw = bytes.TrimSpace(raw)
		if len(raw) == 0 || nonChildKeys[key] {
			continue
		}

		switch key {
		case "type":
			if err := json.Unmarshal(raw, &n.Type); err != nil {
				return fmt.Errorf("node type: %w", err)
			}
			continue
		case "range":
			if err := json.Unmarshal(raw, &n.Range); err != nil {
				return fmt.Errorf("node range: %w", err)
			}
			continue
		case "name":
			// Usually a string; a node on JSX namespaced names.
			if raw[0] == '"' {
				_ = json.Unmarshal(raw, &n.Name)
				continue
			}
		case "kind":
			if raw[0] == '"' {
				_ = json.Unmarshal(raw, &n.Kind)
			}
			continue
		case "async":
			_ = json.Unmarshal(raw, &n.Async)
			continue
		case "generator":
			_ = json.Unmarshal(raw, &n.Generator)
			continue
		case "computed":
			_ = json.Unmarshal(raw, &n.Computed)
			continue
		case "static":
			_ = json.Unmarshal(raw, &n.Static)
			continue
		}

		nodes := childNodes(raw)
		if len(nodes) == 0 {
			continue
		}

		switch key {
		case "id":
			n.ID = nodes[0]
		case "key":
			n.Key = nodes[0]
		case "value":
			n.Value = nodes[0]
		case "body":
			// A single body node for functions and classes; Program and
			// block bodies are arrays and live only in children.
			if raw[0] == '{' {
				n.Body = nodes[0]
			}
		case "params":
			n.Params = nodes
		case "typeAnnotation":
			n.TypeAnnotation = nodes[0]
		}

		n.children = append(n.children, nodes...)
	}

	slices.SortStableFunc(n.children, func(a, b *Node) int {
		return cmp.Compare(a.Range[0], b.Range[0])
	})

	return nil
}

// childNodes extracts the syntax nodes contained in a raw JSON value: a
// single node for an object with a "type" tag, each such element for an
// array. Scalars and non-node objects yield nothing.
func childNodes(raw json.RawMessage) []*Node {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}

	switch raw[0] {
	case '{':
		var node Node
		if err := json.Unmarshal(raw, &node); err != nil || node.Type == "" {
			return nil
		}
		return []*Node{&node}
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			return nil
		}
		var nodes []*Node
		for _, elem := range elems {
			nodes = append(nodes, childNodes(elem)...)
		}
		return nodes
	}

	return nil
}

// IsFunctionLike reports whether n defines a callable with a parameter
// list: function declarations and expressions, arrow functions, ambient
// (declare) functions, and type-only function signatures.
func (n *Node) IsFunctionLike() bool {
	switch n.Type {
	case TypeFunctionDeclaration, TypeFunctionExpression,
		TypeArrowFunctionExpression, TypeTSDeclareFunction,
		TypeTSEmptyBodyFunctionExpression:
		return true
	}
	return false
}

// AnnotatedType returns the type node a binding is annotated with,
// unwrapping the TSTypeAnnotation wrapper, or nil when unannotated.
func (n *Node) AnnotatedType() *Node {
	ta := n.TypeAnnotation
	if ta == nil {
		return nil
	}
	if ta.Type == TypeTSTypeAnnotation {
		return ta.TypeAnnotation
	}
	return ta
}

// Walk traverses the tree rooted at node in document order, calling fn
// for every node. The stack holds the ancestors of the current node,
// outermost first, and is only valid for the duration of the call.
func Walk(node *Node, fn func(n *Node, stack []*Node)) {
	walk(node, nil, fn)
}

func walk(n *Node, stack []*Node, fn func(n *Node, stack []*Node)) {
	if n == nil {
		return
	}
	fn(n, stack)
	stack = append(stack, n)
	for _, child := range n.children {
		walk(child, stack, fn)
	}
}
