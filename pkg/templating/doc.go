// Package templating implements the catalog document rendering engine:
// a minimal directive language compiled to an explicit AST and evaluated
// against an immutable scope.
//
// The grammar knows four constructs:
//
//	{{ path }}                  property interpolation
//	{{#each path}} ... {{/each}}  iteration over a list
//	{{#if predicate}} ... {{/if}} conditional inclusion
//	(eq field "lit") / (ne field "lit")  comparison predicates
//
// Templates are parsed once into Literal/Interpolation/Each/If nodes, so
// nesting is resolved structurally: conditionals nest freely and may
// appear inside iteration, while iteration inside iteration is rejected
// at parse time. Evaluation is a pure function of the AST and the root
// Value, which makes concurrent rendering of many documents over one
// shared context safe.
package templating
