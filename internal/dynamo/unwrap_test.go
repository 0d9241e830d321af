package dynamo

import (
	"reflect"
	"testing"
)

func TestUnwrapScalarVariants(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want any
	}{
		{"string", map[string]any{"S": "a"}, "a"},
		{"number carried as text", map[string]any{"N": "5"}, "5"},
		{"bool", map[string]any{"BOOL": true}, true},
		{"null", map[string]any{"NULL": true}, nil},
		{"empty string is still the string variant", map[string]any{"S": ""}, ""},
	}

	for _, tc := range cases {
		if got := Unwrap(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestUnwrapSetsJoin(t *testing.T) {
	if got := Unwrap(map[string]any{"SS": []any{"a", "b"}}); got != "a, b" {
		t.Fatalf("expected joined string set, got %v", got)
	}
	if got := Unwrap(map[string]any{"NS": []any{"1", "2", "3"}}); got != "1, 2, 3" {
		t.Fatalf("expected joined number set, got %v", got)
	}
}

func TestUnwrapListPreservesOrder(t *testing.T) {
	in := map[string]any{"L": []any{
		map[string]any{"S": "x"},
		map[string]any{"N": "1"},
	}}

	got := Unwrap(in)
	want := []any{"x", "1"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestUnwrapMapUnwrapsValues(t *testing.T) {
	in := map[string]any{"M": map[string]any{"k": map[string]any{"S": "v"}}}

	got := Unwrap(in)
	want := map[string]any{"k": "v"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestUnwrapNestedContainers(t *testing.T) {
	in := map[string]any{"M": map[string]any{
		"inner": map[string]any{"L": []any{
			map[string]any{"M": map[string]any{"deep": map[string]any{"N": "7"}}},
		}},
	}}

	got := Unwrap(in)
	want := map[string]any{"inner": []any{map[string]any{"deep": "7"}}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestUnwrapVariantPriorityOrder(t *testing.T) {
	// Both keys present: the earlier variant in the fixed order wins.
	in := map[string]any{"S": "text", "N": "5"}
	if got := Unwrap(in); got != "text" {
		t.Fatalf("expected string variant to outrank number, got %v", got)
	}
}

func TestUnwrapPlainValuesPassThrough(t *testing.T) {
	plain := []any{"text", true, nil, 4.5, []any{"a"}}
	for _, v := range plain {
		if got := Unwrap(v); !reflect.DeepEqual(got, v) {
			t.Fatalf("plain value %v changed to %v", v, got)
		}
	}

	obj := map[string]any{"Title": "Snake"}
	if got := Unwrap(obj); !reflect.DeepEqual(got, obj) {
		t.Fatalf("plain object changed: %v", got)
	}
}

func TestUnwrapIdempotentOnPlainValues(t *testing.T) {
	inputs := []any{
		map[string]any{"S": "a"},
		map[string]any{"L": []any{map[string]any{"N": "1"}}},
		map[string]any{"M": map[string]any{"k": map[string]any{"S": "v"}}},
		"already plain",
	}

	for _, in := range inputs {
		once := Unwrap(in)
		twice := Unwrap(once)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("unwrap not idempotent: %v vs %v", once, twice)
		}
	}
}

func TestUnwrapRecord(t *testing.T) {
	raw := map[string]any{
		"Title": map[string]any{"S": "Snake"},
		"Year":  map[string]any{"N": "1997"},
		"Tags":  map[string]any{"SS": []any{"puzzle", "classic"}},
		"Plain": "kept",
	}

	got := UnwrapRecord(raw)
	want := map[string]any{
		"Title": "Snake",
		"Year":  "1997",
		"Tags":  "puzzle, classic",
		"Plain": "kept",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
