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
	"math"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	// KindAbsent represents a missing or suppressed value.
	KindAbsent Kind = iota

	// KindBool represents a boolean value.
	KindBool

	// KindStr represents a string value.
	KindStr

	// KindNum represents a numeric value (stored as float64).
	KindNum

	// KindList represents an ordered sequence of values.
	KindList

	// KindRecord represents a mapping from field names to values.
	KindRecord
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindBool:
		return "bool"
	case KindStr:
		return "string"
	case KindNum:
		return "number"
	case KindList:
		return "list"
	case KindRecord:
		return "record"
	default:
		return "unknown"
	}
}

// Value is the single tagged type carried through context building and
// evaluation. All field lookups, truthiness checks, and interpolation
// stringification go through Value, so the evaluator never branches on
// raw Go types.
//
// The zero Value is Absent.
type Value struct {
	kind Kind
	b    bool
	s    string
	n    float64
	list []Value
	rec  map[string]Value
}

// Absent returns the absent value.
func Absent() Value {
	return Value{kind: KindAbsent}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Str returns a string value.
func Str(s string) Value {
	return Value{kind: KindStr, s: s}
}

// Num returns a numeric value.
func Num(n float64) Value {
	return Value{kind: KindNum, n: n}
}

// List returns a list value holding the given items.
func List(items ...Value) Value {
	return Value{kind: KindList, list: items}
}

// Record returns a record value holding the given fields.
// A nil map produces an empty record, not an absent value.
func Record(fields map[string]Value) Value {
	if fields == nil {
		fields = map[string]Value{}
	}
	return Value{kind: KindRecord, rec: fields}
}

// Kind returns the variant tag of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsAbsent reports whether the value is absent.
func (v Value) IsAbsent() bool {
	return v.kind == KindAbsent
}

// Truthy reports whether the value counts as true in a conditional.
// Absent, false, and the empty string are falsy; everything else is
// truthy, numeric zero included: a count of zero is still a value, and
// conditionals on counts test presence rather than magnitude.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindAbsent:
		return false
	case KindBool:
		return v.b
	case KindStr:
		return v.s != ""
	default:
		return true
	}
}

// Field looks up a single field on a record value. Non-record values and
// missing fields resolve to Absent; lookups never fail.
func (v Value) Field(name string) Value {
	if v.kind != KindRecord {
		return Absent()
	}
	fv, ok := v.rec[name]
	if !ok {
		return Absent()
	}
	return fv
}

// Items returns the elements of a list value, or nil for any other kind.
func (v Value) Items() []Value {
	if v.kind != KindList {
		return nil
	}
	return v.list
}

// Len returns the number of elements in a list value, or zero for any
// other kind.
func (v Value) Len() int {
	if v.kind != KindList {
		return 0
	}
	return len(v.list)
}

// String renders the value as interpolation output. Strings pass through
// unchanged, numbers print without a decimal point when integral, and
// booleans print as "true"/"false". Absent values and aggregates render
// as the empty string since they have no scalar representation.
func (v Value) String() string {
	switch v.kind {
	case KindStr:
		return v.s
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNum:
		if v.n == math.Trunc(v.n) && !math.IsInf(v.n, 0) &&
			v.n >= math.MinInt64 && v.n <= math.MaxInt64 {
			return strconv.FormatInt(int64(v.n), 10)
		}
		return strconv.FormatFloat(v.n, 'g', -1, 64)
	default:
		return ""
	}
}

// ResolvePath resolves a dot-separated path against the value using
// successive field lookups. Resolution that fails at any step yields
// Absent; a path never falls back to an outer scope.
func (v Value) ResolvePath(path string) Value {
	cur := v
	for _, part := range strings.Split(path, ".") {
		if part == "" {
			return Absent()
		}
		cur = cur.Field(part)
		if cur.IsAbsent() {
			return Absent()
		}
	}
	return cur
}

// FromAny converts plain Go data (as produced by catalog building or
// yaml decoding) into a Value. Supported inputs are nil, bool, string,
// the common numeric types, []any, map[string]any, and nested Values.
// Unsupported types convert to Absent.
func FromAny(in any) Value {
	switch t := in.(type) {
	case nil:
		return Absent()
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return Str(t)
	case int:
		return Num(float64(t))
	case int32:
		return Num(float64(t))
	case int64:
		return Num(float64(t))
	case float32:
		return Num(float64(t))
	case float64:
		return Num(t)
	case []any:
		items := make([]Value, 0, len(t))
		for _, item := range t {
			items = append(items, FromAny(item))
		}
		return List(items...)
	case map[string]any:
		fields := make(map[string]Value, len(t))
		for k, val := range t {
			fields[k] = FromAny(val)
		}
		return Record(fields)
	default:
		return Absent()
	}
}
