// SPDX-License-Identifier: MPL-2.0

package maputil

import (
	"reflect"
	"testing"
)

func TestSortedKeysValues(t *testing.T) {
	t.Parallel()

	m := map[string]int{"b": 2, "a": 1, "c": 3}
	if got := SortedKeys(m); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("SortedKeys = %v, want [a b c]", got)
	}
	if got := Keys(m); len(got) != 3 {
		t.Errorf("Keys returned %d keys, want 3", len(got))
	}
	if got := Values(m); len(got) != 3 {
		t.Errorf("Values returned %d values, want 3", len(got))
	}
}

func TestInvert(t *testing.T) {
	t.Parallel()

	got := Invert(map[string]int{"a": 1, "b": 2})
	want := map[int]string{1: "a", 2: "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Invert = %v, want %v", got, want)
	}
}

func TestPickOmit(t *testing.T) {
	t.Parallel()

	m := map[string]int{"a": 1, "b": 2, "c": 3}

	if got := Pick(m, "a", "c", "zz"); !reflect.DeepEqual(got, map[string]int{"a": 1, "c": 3}) {
		t.Errorf("Pick = %v, want map[a:1 c:3]", got)
	}
	if got := Omit(m, "b"); !reflect.DeepEqual(got, map[string]int{"a": 1, "c": 3}) {
		t.Errorf("Omit = %v, want map[a:1 c:3]", got)
	}
	if len(m) != 3 {
		t.Error("Omit must not mutate its input")
	}
}

func TestMapValues(t *testing.T) {
	t.Parallel()

	got := MapValues(map[string]int{"a": 1, "b": 2}, func(v int) int { return v * 10 })
	if !reflect.DeepEqual(got, map[string]int{"a": 10, "b": 20}) {
		t.Errorf("MapValues = %v, want map[a:10 b:20]", got)
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	a := map[string]int{"x": 1, "y": 1}
	b := map[string]int{"y": 2, "z": 2}
	got := Merge(a, b)
	want := map[string]int{"x": 1, "y": 2, "z": 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge = %v, want %v", got, want)
	}
	if a["y"] != 1 {
		t.Error("Merge must not mutate its inputs")
	}
}

func TestDeepMerge(t *testing.T) {
	t.Parallel()

	base := map[string]any{
		"ui":   map[string]any{"color": "auto", "verbose": false},
		"name": "base",
	}
	overlay := map[string]any{
		"ui":   map[string]any{"verbose": true},
		"misc": 1,
	}

	got, err := DeepMerge(base, overlay)
	if err != nil {
		t.Fatalf("DeepMerge returned error: %v", err)
	}

	ui, ok := got["ui"].(map[string]any)
	if !ok {
		t.Fatalf("merged ui has type %T, want map[string]any", got["ui"])
	}
	if ui["color"] != "auto" {
		t.Errorf("nested key from base lost: ui[color] = %v", ui["color"])
	}
	if ui["verbose"] != true {
		t.Errorf("overlay should win: ui[verbose] = %v", ui["verbose"])
	}
	if got["name"] != "base" || got["misc"] != 1 {
		t.Errorf("top-level merge wrong: %v", got)
	}

	if baseUI := base["ui"].(map[string]any); baseUI["verbose"] != false {
		t.Error("DeepMerge must not mutate base")
	}
}
