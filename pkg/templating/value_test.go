package templating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_ZeroValueIsAbsent(t *testing.T) {
	var v Value
	assert.Equal(t, KindAbsent, v.Kind())
	assert.True(t, v.IsAbsent())
}

func TestValue_Truthy(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"absent", Absent(), false},
		{"false", Bool(false), false},
		{"true", Bool(true), true},
		{"empty string", Str(""), false},
		{"string", Str("x"), true},
		{"zero is truthy", Num(0), true},
		{"number", Num(42), true},
		{"empty list", List(), true},
		{"empty record", Record(nil), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Truthy())
		})
	}
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"string passes through", Str("hello"), "hello"},
		{"integral number", Num(12), "12"},
		{"zero", Num(0), "0"},
		{"negative integral", Num(-3), "-3"},
		{"fractional number", Num(1.5), "1.5"},
		{"bool true", Bool(true), "true"},
		{"bool false", Bool(false), "false"},
		{"absent", Absent(), ""},
		{"list has no scalar form", List(Str("a")), ""},
		{"record has no scalar form", Record(map[string]Value{"a": Str("b")}), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.String())
		})
	}
}

func TestValue_Field(t *testing.T) {
	rec := Record(map[string]Value{"name": Str("Vortex")})

	assert.Equal(t, "Vortex", rec.Field("name").String())
	assert.True(t, rec.Field("missing").IsAbsent())
	assert.True(t, Str("not a record").Field("name").IsAbsent())
	assert.True(t, Absent().Field("name").IsAbsent())
}

func TestValue_ResolvePath(t *testing.T) {
	root := Record(map[string]Value{
		"credits": Record(map[string]Value{
			"originalAuthor": Str("Foo"),
		}),
		"name": Str("BlueCorona"),
	})

	assert.Equal(t, "Foo", root.ResolvePath("credits.originalAuthor").String())
	assert.Equal(t, "BlueCorona", root.ResolvePath("name").String())

	// Resolution failure at any step yields Absent, never an error.
	assert.True(t, root.ResolvePath("credits.missing").IsAbsent())
	assert.True(t, root.ResolvePath("missing.originalAuthor").IsAbsent())
	assert.True(t, root.ResolvePath("name.originalAuthor").IsAbsent())
	assert.True(t, root.ResolvePath("").IsAbsent())
}

func TestValue_ListAccessors(t *testing.T) {
	list := List(Str("a"), Str("b"))

	require.Len(t, list.Items(), 2)
	assert.Equal(t, 2, list.Len())
	assert.Nil(t, Str("x").Items())
	assert.Equal(t, 0, Str("x").Len())
}

func TestFromAny(t *testing.T) {
	v := FromAny(map[string]any{
		"name":  "Vortex",
		"count": 3,
		"ratio": 0.5,
		"flag":  true,
		"items": []any{"a", 1},
		"sub":   map[string]any{"k": "v"},
		"none":  nil,
	})

	require.Equal(t, KindRecord, v.Kind())
	assert.Equal(t, "Vortex", v.Field("name").String())
	assert.Equal(t, "3", v.Field("count").String())
	assert.Equal(t, "0.5", v.Field("ratio").String())
	assert.Equal(t, "true", v.Field("flag").String())
	assert.Equal(t, 2, v.Field("items").Len())
	assert.Equal(t, "v", v.ResolvePath("sub.k").String())
	assert.True(t, v.Field("none").IsAbsent())
}

func TestFromAny_UnsupportedType(t *testing.T) {
	assert.True(t, FromAny(struct{}{}).IsAbsent())
	assert.True(t, FromAny(nil).IsAbsent())
}
