package templating

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, template string) []Node {
	t.Helper()
	nodes, err := Parse(template)
	require.NoError(t, err)
	return nodes
}

func entry(fields map[string]Value) Value {
	return Record(fields)
}

func TestRender_InterpolationOnly(t *testing.T) {
	root := Record(map[string]Value{
		"name":  Str("Vortex"),
		"count": Num(3),
	})

	out, err := Render(mustParse(t, "{{name}} has {{count}} presets, {{missing}} end"), root)
	require.NoError(t, err)
	assert.Equal(t, "Vortex has 3 presets,  end", out)
	assert.NotContains(t, out, "{{")
	assert.NotContains(t, out, "}}")
}

func TestRender_EachOverEmptyList(t *testing.T) {
	root := Record(map[string]Value{"flattened": List()})

	out, err := Render(mustParse(t, "{{#each flattened}}row{{/each}}"), root)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestRender_EachOverAbsentPath(t *testing.T) {
	out, err := Render(mustParse(t, "{{#each nothing.here}}row{{/each}}"), Record(nil))
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestRender_EachOverNonList(t *testing.T) {
	root := Record(map[string]Value{"flattened": Str("not a list")})

	out, err := Render(mustParse(t, "{{#each flattened}}row{{/each}}"), root)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestRender_EachJoinsRowsInOrder(t *testing.T) {
	root := Record(map[string]Value{
		"flattened": List(
			entry(map[string]Value{"name": Str("first")}),
			entry(map[string]Value{"name": Str("second")}),
			entry(map[string]Value{"name": Str("third")}),
		),
	})

	out, err := Render(mustParse(t, "{{#each flattened}}{{name}}{{/each}}"), root)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\nthird", out)
}

func TestRender_EachItemScopeIsSealed(t *testing.T) {
	// Inside an iteration row only the item's own fields are visible;
	// lookups never fall back to the enclosing scope.
	root := Record(map[string]Value{
		"title":     Str("catalog"),
		"flattened": List(entry(map[string]Value{"name": Str("x")})),
	})

	out, err := Render(mustParse(t, "{{#each flattened}}{{name}}:{{title}}{{/each}}"), root)
	require.NoError(t, err)
	assert.Equal(t, "x:", out)
}

func TestRender_SuppressionExample(t *testing.T) {
	// Mirrors the licence-suppression scenario: both entries had the
	// default licence cleared before rendering, one carries credits.
	root := Record(map[string]Value{
		"grouped": Record(map[string]Value{
			"BGX": List(
				entry(map[string]Value{"name": Str("Vortex")}),
				entry(map[string]Value{
					"name": Str("BlueCorona"),
					"credits": Record(map[string]Value{
						"originalAuthor": Str("Foo"),
					}),
				}),
			),
		}),
	})

	template := "{{#each grouped.BGX}}{{name}}{{#if credits.originalAuthor}} (by {{credits.originalAuthor}}){{/if}}\n{{/each}}"
	out, err := Render(mustParse(t, template), root)
	require.NoError(t, err)
	assert.Equal(t, "Vortex\nBlueCorona (by Foo)", out)
}

func TestRender_IfTruthiness(t *testing.T) {
	tests := []struct {
		name  string
		scope Value
		want  string
	}{
		{"present string", Record(map[string]Value{"licence": Str("MIT")}), "yes"},
		{"empty string", Record(map[string]Value{"licence": Str("")}), ""},
		{"absent", Record(nil), ""},
		{"false", Record(map[string]Value{"licence": Bool(false)}), ""},
		{"zero is truthy", Record(map[string]Value{"licence": Num(0)}), "yes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Render(mustParse(t, "{{#if licence}}yes{{/if}}"), tt.scope)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRender_EqPredicate(t *testing.T) {
	template := `{{#if (eq type "BGX")}}X{{/if}}`

	out, err := Render(mustParse(t, template), Record(map[string]Value{"type": Str("VFX")}))
	require.NoError(t, err)
	assert.Equal(t, "", out)

	out, err = Render(mustParse(t, template), Record(map[string]Value{"type": Str("BGX")}))
	require.NoError(t, err)
	assert.Equal(t, "X", out)
}

func TestRender_NePredicate(t *testing.T) {
	template := `{{#if (ne type "BGX")}}X{{/if}}`

	out, err := Render(mustParse(t, template), Record(map[string]Value{"type": Str("VFX")}))
	require.NoError(t, err)
	assert.Equal(t, "X", out)

	out, err = Render(mustParse(t, template), Record(map[string]Value{"type": Str("BGX")}))
	require.NoError(t, err)
	assert.Equal(t, "", out)

	// An unresolvable field makes either comparison falsy.
	out, err = Render(mustParse(t, template), Record(nil))
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestRender_InvalidPredicateIsFalsy(t *testing.T) {
	out, err := Render(mustParse(t, `{{#if (gt count "3")}}X{{/if}}`), Record(map[string]Value{"count": Num(5)}))
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestRender_EachInsideFalseIf(t *testing.T) {
	// Iteration blocks expand in the first phase even when a later
	// conditional suppresses them; the suppressed text must not leak.
	root := Record(map[string]Value{
		"flattened": List(entry(map[string]Value{"name": Str("x")})),
	})

	out, err := Render(mustParse(t, "{{#if missing}}{{#each flattened}}{{name}}{{/each}}{{/if}}"), root)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestRender_IsDeterministic(t *testing.T) {
	root := Record(map[string]Value{
		"statistics": Record(map[string]Value{"total": Num(2)}),
		"flattened": List(
			entry(map[string]Value{"name": Str("a"), "type": Str("BGX")}),
			entry(map[string]Value{"name": Str("b"), "type": Str("VFX")}),
		),
	})
	nodes := mustParse(t, "total={{statistics.total}}\n{{#each flattened}}{{name}} ({{type}}){{/each}}")

	first, err := Render(nodes, root)
	require.NoError(t, err)
	second, err := Render(nodes, root)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRender_DepthCap(t *testing.T) {
	// Build a node chain deeper than the evaluator allows. The parser
	// rejects deep nesting on its own, so construct the tree directly.
	inner := []Node{{Kind: NodeLiteral, Text: "x"}}
	for i := 0; i < maxEvalDepth+2; i++ {
		inner = []Node{{Kind: NodeIf, Pred: Predicate{Op: PredTruthy, Path: "a"}, Children: inner}}
	}

	_, err := Render(inner, Record(map[string]Value{"a": Str("y")}))
	require.Error(t, err)

	var depthErr *DepthError
	require.ErrorAs(t, err, &depthErr)
	assert.Equal(t, maxEvalDepth, depthErr.Limit)
}

func TestRender_PredicateInterpolation(t *testing.T) {
	out, err := Render(mustParse(t, `{{(eq type "BGX")}}`), Record(map[string]Value{"type": Str("BGX")}))
	require.NoError(t, err)
	assert.Equal(t, "true", out)

	out, err = Render(mustParse(t, `{{(eq type "BGX")}}`), Record(map[string]Value{"type": Str("VFX")}))
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestRender_TrailingNewlineRowsAreNotDoubled(t *testing.T) {
	root := Record(map[string]Value{
		"flattened": List(
			entry(map[string]Value{"name": Str("a")}),
			entry(map[string]Value{"name": Str("b")}),
		),
	})

	out, err := Render(mustParse(t, "{{#each flattened}}{{name}}\n{{/each}}"), root)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", out)
	assert.False(t, strings.Contains(out, "\n\n"))
}
