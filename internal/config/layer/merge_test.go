package layer

import (
	"reflect"
	"testing"
)

func TestDeepMergeNestedMaps(t *testing.T) {
	base := map[string]any{
		"a": map[string]any{"x": 1, "y": 2},
	}
	override := map[string]any{
		"a": map[string]any{"y": 3, "z": 4},
	}

	got := DeepMerge(base, override)

	want := map[string]any{
		"a": map[string]any{"x": 1, "y": 3, "z": 4},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DeepMerge() = %v, want %v", got, want)
	}
}

func TestDeepMergeReplacesLists(t *testing.T) {
	base := map[string]any{
		"patterns": []any{"a", "b", "c"},
	}
	override := map[string]any{
		"patterns": []any{"d"},
	}

	got := DeepMerge(base, override)

	want := map[string]any{"patterns": []any{"d"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("lists must be replaced, not concatenated: got %v, want %v", got, want)
	}
}

func TestDeepMergeScalarOverMap(t *testing.T) {
	base := map[string]any{
		"ui": map[string]any{"theme": "dark"},
	}
	override := map[string]any{
		"ui": "disabled",
	}

	got := DeepMerge(base, override)

	if got["ui"] != "disabled" {
		t.Errorf("scalar must replace mapping wholesale, got %v", got["ui"])
	}
}

func TestDeepMergeCopiesSourceValues(t *testing.T) {
	src := map[string]any{
		"nested": map[string]any{"key": "original"},
		"list":   []any{"one"},
	}

	got := DeepMerge(map[string]any{}, src)

	src["nested"].(map[string]any)["key"] = "mutated"
	src["list"].([]any)[0] = "mutated"

	if got["nested"].(map[string]any)["key"] != "original" {
		t.Error("merged map shares nested map with source")
	}
	if got["list"].([]any)[0] != "one" {
		t.Error("merged map shares list with source")
	}
}

func TestDeepMergeNilArguments(t *testing.T) {
	if got := DeepMerge(nil, map[string]any{"k": 1}); got["k"] != 1 {
		t.Errorf("nil dst: got %v", got)
	}

	dst := map[string]any{"k": 1}
	if got := DeepMerge(dst, nil); !reflect.DeepEqual(got, dst) {
		t.Errorf("nil src: got %v", got)
	}
}

func TestDeepMergeDeterministic(t *testing.T) {
	build := func() map[string]any {
		base := map[string]any{
			"a": map[string]any{"x": 1, "y": 2},
			"b": []any{1, 2},
		}
		override := map[string]any{
			"a": map[string]any{"y": 3},
			"b": []any{3},
			"c": "new",
		}
		return DeepMerge(base, override)
	}

	first := build()
	for i := 0; i < 10; i++ {
		if got := build(); !reflect.DeepEqual(got, first) {
			t.Fatalf("merge is not deterministic: %v vs %v", got, first)
		}
	}
}

func TestCloneIsolation(t *testing.T) {
	src := map[string]any{
		"section": map[string]any{"key": "value"},
		"list":    []any{map[string]any{"inner": 1}},
	}

	clone := Clone(src)

	clone["section"].(map[string]any)["key"] = "changed"
	clone["list"].([]any)[0].(map[string]any)["inner"] = 2

	if src["section"].(map[string]any)["key"] != "value" {
		t.Error("clone shares nested map with source")
	}
	if src["list"].([]any)[0].(map[string]any)["inner"] != 1 {
		t.Error("clone shares nested list element with source")
	}
}

func TestGetByPath(t *testing.T) {
	data := map[string]any{
		"ui": map[string]any{
			"theme": "dark",
			"window_geometry": map[string]any{
				"width": 1200,
			},
		},
		"version": "1.0.0",
	}

	tests := []struct {
		name   string
		path   string
		want   any
		wantOK bool
	}{
		{"top level", "version", "1.0.0", true},
		{"nested", "ui.theme", "dark", true},
		{"deeply nested", "ui.window_geometry.width", 1200, true},
		{"missing key", "ui.missing", nil, false},
		{"missing section", "missing.key", nil, false},
		{"traverse through scalar", "version.minor", nil, false},
		{"whole section", "ui.window_geometry", map[string]any{"width": 1200}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetByPath(data, tt.path)
			if ok != tt.wantOK {
				t.Fatalf("GetByPath(%q) ok = %v, want %v", tt.path, ok, tt.wantOK)
			}
			if ok && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GetByPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestSetByPath(t *testing.T) {
	data := map[string]any{}

	SetByPath(data, "ui.theme", "dark")
	if v, _ := GetByPath(data, "ui.theme"); v != "dark" {
		t.Errorf("set created path: got %v", v)
	}

	SetByPath(data, "ui.theme", "light")
	if v, _ := GetByPath(data, "ui.theme"); v != "light" {
		t.Errorf("set overwrote value: got %v", v)
	}

	// A scalar intermediate is replaced by a mapping.
	SetByPath(data, "ui.theme.variant", "high-contrast")
	if v, _ := GetByPath(data, "ui.theme.variant"); v != "high-contrast" {
		t.Errorf("set through scalar: got %v", v)
	}
}

func TestDeleteByPath(t *testing.T) {
	data := map[string]any{
		"ui": map[string]any{"theme": "dark", "size": 128},
	}

	if !DeleteByPath(data, "ui.theme") {
		t.Error("delete of existing key reported false")
	}
	if _, ok := GetByPath(data, "ui.theme"); ok {
		t.Error("key still present after delete")
	}
	if _, ok := GetByPath(data, "ui.size"); !ok {
		t.Error("sibling key removed by delete")
	}

	if DeleteByPath(data, "ui.missing") {
		t.Error("delete of missing key reported true")
	}
	if DeleteByPath(data, "missing.key") {
		t.Error("delete through missing section reported true")
	}
}
