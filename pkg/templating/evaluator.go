// Copyright 2025 Leon Aquitaine
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package templating

import (
	"strings"
)

// maxEvalDepth bounds recursion during evaluation. Combined with the
// parser's nesting cap this guarantees termination on any input.
const maxEvalDepth = 64

// Render evaluates a parsed template against the given root scope and
// returns the rendered text.
//
// Evaluation runs in two phases: first every Each block in the tree is
// collapsed into literal text (iterating its list with a per-item
// scope), then the remaining If and Interpolation nodes are evaluated
// against the root scope. Rendering never mutates the scope, so the same AST and root
// always produce identical output.
func Render(nodes []Node, root Value) (string, error) {
	expanded, err := expandEach(nodes, root, 0)
	if err != nil {
		return "", err
	}
	return evalNodes(expanded, root, 0)
}

// expandEach returns a copy of nodes in which every Each block has been
// fully rendered into a literal. If bodies are descended into so that
// iteration blocks inside conditionals are expanded as well.
func expandEach(nodes []Node, scope Value, depth int) ([]Node, error) {
	if depth > maxEvalDepth {
		return nil, NewDepthError(maxEvalDepth)
	}

	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		switch n.Kind {
		case NodeEach:
			text, err := renderEach(n, scope, depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, Node{Kind: NodeLiteral, Text: text})
		case NodeIf:
			children, err := expandEach(n.Children, scope, depth+1)
			if err != nil {
				return nil, err
			}
			n.Children = children
			out = append(out, n)
		default:
			out = append(out, n)
		}
	}
	return out, nil
}

// renderEach iterates an Each block. The operand must resolve to a list
// in the enclosing scope; an absent, empty, or non-list operand renders
// as the empty string. Every element becomes the entire scope for one
// evaluation of the block body (no fallback to the outer scope), a
// single trailing newline is trimmed from each row, and rows are joined
// with a newline in list order.
func renderEach(n Node, scope Value, depth int) (string, error) {
	items := scope.ResolvePath(n.Path).Items()
	if len(items) == 0 {
		return "", nil
	}

	rows := make([]string, 0, len(items))
	for _, item := range items {
		row, err := evalNodes(n.Children, item, depth)
		if err != nil {
			return "", err
		}
		rows = append(rows, strings.TrimSuffix(row, "\n"))
	}
	return strings.Join(rows, "\n"), nil
}

// evalNodes renders a node sequence against a single scope. The parser
// permits no iteration inside an iteration row, so Each nodes reaching
// this point only occur in trees built programmatically; they render
// via renderEach like any other.
func evalNodes(nodes []Node, scope Value, depth int) (string, error) {
	if depth > maxEvalDepth {
		return "", NewDepthError(maxEvalDepth)
	}

	var b strings.Builder
	for _, n := range nodes {
		switch n.Kind {
		case NodeLiteral:
			b.WriteString(n.Text)

		case NodeInterpolation:
			b.WriteString(evalInterpolation(n, scope))

		case NodeIf:
			if evalPredicate(n.Pred, scope) {
				body, err := evalNodes(n.Children, scope, depth+1)
				if err != nil {
					return "", err
				}
				b.WriteString(body)
			}

		case NodeEach:
			text, err := renderEach(n, scope, depth+1)
			if err != nil {
				return "", err
			}
			b.WriteString(text)
		}
	}
	return b.String(), nil
}

// evalInterpolation resolves one interpolation directive. Path lookups
// that fail at any step emit the empty string, never an error. A
// predicate-form directive emits "true" when it holds and nothing
// otherwise.
func evalInterpolation(n Node, scope Value) string {
	if n.Path != "" {
		return scope.ResolvePath(n.Path).String()
	}
	if n.Pred.Op == PredEq || n.Pred.Op == PredNe {
		if evalPredicate(n.Pred, scope) {
			return "true"
		}
	}
	return ""
}

// evalPredicate decides an If condition against the current scope.
// Comparisons resolve their field with a single-level lookup; an absent
// field makes either comparison false, so an invalid or unresolvable
// condition suppresses the block rather than erroring.
func evalPredicate(p Predicate, scope Value) bool {
	switch p.Op {
	case PredTruthy:
		if p.Path == "" {
			return false
		}
		return scope.ResolvePath(p.Path).Truthy()
	case PredEq:
		f := scope.Field(p.Field)
		return !f.IsAbsent() && f.String() == p.Literal
	case PredNe:
		f := scope.Field(p.Field)
		return !f.IsAbsent() && f.String() != p.Literal
	default:
		return false
	}
}
