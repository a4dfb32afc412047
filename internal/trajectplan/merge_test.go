package trajectplan

import (
	"reflect"
	"testing"
)

func TestMergeFirstFilledWins(t *testing.T) {
	high := map[string]any{"naam": "Jan", "functie": ""}
	low := map[string]any{"naam": "Piet", "functie": "Lasser", "werkgever": "Bouw BV"}

	got := Merge(high, low)
	want := map[string]any{"naam": "Jan", "functie": "Lasser", "werkgever": "Bouw BV"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("merge mismatch: got %v, want %v", got, want)
	}
}

func TestMergeTrimEmptyCountsAsAbsent(t *testing.T) {
	high := map[string]any{"naam": "   "}
	low := map[string]any{"naam": "Piet"}

	got := Merge(high, low)
	if got["naam"] != "Piet" {
		t.Fatalf("whitespace value should not win: got %v", got)
	}
}

func TestMergeIdempotent(t *testing.T) {
	a := map[string]any{"naam": "Jan", "uren": 24}
	b := map[string]any{"naam": "Piet", "functie": "Lasser"}

	once := Merge(a, b)
	twice := Merge(a, b, b)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("merge not idempotent: %v vs %v", once, twice)
	}
}

func TestMergeSingleSourceReturnsFilledOnly(t *testing.T) {
	a := map[string]any{"naam": "Jan", "leeg": "", "nihil": nil, "akkoord": false}

	got := Merge(a)
	want := map[string]any{"naam": "Jan", "akkoord": false}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestMergeOmitsAbsentFields(t *testing.T) {
	got := Merge(map[string]any{"leeg": ""}, map[string]any{"leeg": "  "})
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
	if _, present := got["leeg"]; present {
		t.Fatal("absent field must be omitted, not nil")
	}
}

func TestFilledNamesSorted(t *testing.T) {
	names := FilledNames(map[string]any{"werkgever": "x", "functie": "y", "naam": "z"})
	want := []string{"functie", "naam", "werkgever"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("got %v, want %v", names, want)
	}
}
