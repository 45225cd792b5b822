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
	"fmt"
	"regexp"
	"strings"
)

// NodeKind identifies the variant of an AST node.
type NodeKind int

const (
	// NodeLiteral is a span of template text emitted unchanged.
	NodeLiteral NodeKind = iota

	// NodeInterpolation is a {{ path }} directive.
	NodeInterpolation

	// NodeEach is a {{#each path}}...{{/each}} block.
	NodeEach

	// NodeIf is a {{#if predicate}}...{{/if}} block.
	NodeIf
)

// Node is one element of the parsed template tree. Each and If nodes
// carry their body as child nodes, so block nesting is resolved at parse
// time rather than by repeated text rewriting during evaluation.
type Node struct {
	Kind NodeKind

	// Text is the literal content for NodeLiteral nodes.
	Text string

	// Path is the dot-path operand for NodeInterpolation and NodeEach.
	Path string

	// Pred is the condition for NodeIf, and for NodeInterpolation when
	// the directive body is a predicate expression.
	Pred Predicate

	// Children holds the block body for NodeEach and NodeIf.
	Children []Node

	// Line and Col locate the directive's opening tag in the template.
	Line int
	Col  int
}

// PredicateOp identifies the form of an If condition.
type PredicateOp int

const (
	// PredTruthy tests a resolved path for truthiness.
	PredTruthy PredicateOp = iota

	// PredEq compares a single-level field against a string literal.
	PredEq

	// PredNe is the negated form of PredEq.
	PredNe

	// PredInvalid marks a condition that did not match any supported
	// form. Invalid predicates always evaluate to false.
	PredInvalid
)

// Predicate is a parsed If condition: either a bare dot-path tested for
// truthiness, or an (eq field "literal") / (ne field "literal")
// comparison against the current scope.
type Predicate struct {
	Op      PredicateOp
	Path    string // PredTruthy
	Field   string // PredEq, PredNe
	Literal string // PredEq, PredNe
}

const (
	openDelim  = "{{"
	closeDelim = "}}"

	eachPrefix = "#each"
	ifPrefix   = "#if"
	endEachTag = "/each"
	endIfTag   = "/if"
)

// maxNestingDepth bounds block nesting accepted by the parser. The
// grammar only ever produces shallow trees in practice; the cap exists
// so pathological input cannot drive unbounded recursion.
const maxNestingDepth = 64

var (
	pathRe      = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*(?:\.[A-Za-z_][A-Za-z0-9_-]*)*$`)
	predicateRe = regexp.MustCompile(`^\((eq|ne)\s+([A-Za-z_][A-Za-z0-9_-]*)\s+"([^"]*)"\)$`)
)

// Parse scans template text into a sequence of AST nodes. Block
// structure is validated during the scan: unterminated blocks,
// mismatched closing tags, and iteration blocks nested inside iteration
// blocks are all reported as a *ParseError carrying the offending tag's
// line and column.
func Parse(template string) ([]Node, error) {
	p := &parser{input: template}
	nodes, err := p.parseNodes("", false, 0)
	if err != nil {
		return nil, err
	}
	return nodes, nil
}

// parser holds scan state. Positions are byte offsets into input;
// line/column are derived on demand for error reporting.
type parser struct {
	input string
	pos   int
}

// parseNodes consumes nodes until the closing tag named by terminator is
// found (or end of input when terminator is empty). inEach tracks
// whether any enclosing block is an Each, which makes a further #each a
// parse error.
func (p *parser) parseNodes(terminator string, inEach bool, depth int) ([]Node, error) {
	if depth > maxNestingDepth {
		return nil, p.errorAt(p.pos, fmt.Sprintf("block nesting exceeds %d levels", maxNestingDepth))
	}

	var nodes []Node
	for {
		rel := strings.Index(p.input[p.pos:], openDelim)
		if rel < 0 {
			if terminator != "" {
				return nil, p.errorAt(p.pos, fmt.Sprintf("unterminated block: missing {{%s}}", terminator))
			}
			if p.pos < len(p.input) {
				nodes = append(nodes, Node{Kind: NodeLiteral, Text: p.input[p.pos:]})
				p.pos = len(p.input)
			}
			return nodes, nil
		}

		start := p.pos + rel
		if start > p.pos {
			nodes = append(nodes, Node{Kind: NodeLiteral, Text: p.input[p.pos:start]})
		}

		endRel := strings.Index(p.input[start+len(openDelim):], closeDelim)
		if endRel < 0 {
			return nil, p.errorAt(start, "directive opened with {{ but never closed")
		}
		content := strings.TrimSpace(p.input[start+len(openDelim) : start+len(openDelim)+endRel])
		p.pos = start + len(openDelim) + endRel + len(closeDelim)
		line, col := p.lineCol(start)

		switch {
		case content == endEachTag:
			if terminator != endEachTag {
				return nil, p.errorAt(start, "unexpected {{/each}} without matching {{#each}}")
			}
			return nodes, nil

		case content == endIfTag:
			if terminator != endIfTag {
				return nil, p.errorAt(start, "unexpected {{/if}} without matching {{#if}}")
			}
			return nodes, nil

		case content == eachPrefix || strings.HasPrefix(content, eachPrefix+" "):
			arg := strings.TrimSpace(strings.TrimPrefix(content, eachPrefix))
			if arg == "" || !pathRe.MatchString(arg) {
				return nil, p.errorAt(start, fmt.Sprintf("invalid #each operand %q", arg))
			}
			if inEach {
				return nil, p.errorAt(start, "iteration blocks cannot be nested inside iteration blocks")
			}
			children, err := p.parseNodes(endEachTag, true, depth+1)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, Node{Kind: NodeEach, Path: arg, Children: children, Line: line, Col: col})

		case content == ifPrefix || strings.HasPrefix(content, ifPrefix+" "):
			arg := strings.TrimSpace(strings.TrimPrefix(content, ifPrefix))
			if arg == "" {
				return nil, p.errorAt(start, "empty #if condition")
			}
			children, err := p.parseNodes(endIfTag, inEach, depth+1)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, Node{Kind: NodeIf, Pred: parsePredicate(arg), Children: children, Line: line, Col: col})

		default:
			nodes = append(nodes, makeInterpolation(content, line, col))
		}
	}
}

// makeInterpolation builds an interpolation node from directive content.
// A parenthesized body is treated as a predicate expression; anything
// else is a dot-path lookup. Content that matches neither form still
// produces a node, which resolves to the empty string at evaluation.
func makeInterpolation(content string, line, col int) Node {
	if strings.HasPrefix(content, "(") {
		return Node{Kind: NodeInterpolation, Pred: parsePredicate(content), Line: line, Col: col}
	}
	n := Node{Kind: NodeInterpolation, Path: content, Line: line, Col: col}
	if !pathRe.MatchString(content) {
		// Malformed paths keep the node but can never resolve.
		n.Path = ""
	}
	n.Pred = Predicate{Op: PredTruthy, Path: n.Path}
	return n
}

// parsePredicate interprets an If condition. Unsupported forms yield
// PredInvalid rather than a parse error, so a bad condition suppresses
// its block instead of failing the whole document.
func parsePredicate(expr string) Predicate {
	if m := predicateRe.FindStringSubmatch(expr); m != nil {
		op := PredEq
		if m[1] == "ne" {
			op = PredNe
		}
		return Predicate{Op: op, Field: m[2], Literal: m[3]}
	}
	if pathRe.MatchString(expr) {
		return Predicate{Op: PredTruthy, Path: expr}
	}
	return Predicate{Op: PredInvalid}
}

// lineCol converts a byte offset into a 1-based line and column.
func (p *parser) lineCol(offset int) (int, int) {
	if offset > len(p.input) {
		offset = len(p.input)
	}
	prefix := p.input[:offset]
	line := strings.Count(prefix, "\n") + 1
	col := offset - strings.LastIndex(prefix, "\n")
	return line, col
}

// errorAt builds a located ParseError for the directive at offset.
func (p *parser) errorAt(offset int, reason string) error {
	line, col := p.lineCol(offset)
	return NewParseError(line, col, reason, p.input)
}
