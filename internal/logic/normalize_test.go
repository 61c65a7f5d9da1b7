package logic

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Sorted Join", "카구라, 에반", "에반, 카구라"},
		{"Unsorted Input", "에반,카구라", "에반, 카구라"},
		{"Extra Whitespace", "  카구라 ,   에반  ", "에반, 카구라"},
		{"Space Separated", "카구라 에반", "에반, 카구라"},
		{"Mixed Separators", "오공, 여포 카구라", "여포, 오공, 카구라"},
		{"Single Hero", "오공", "오공"},
		{"Empty", "", ""},
		{"Whitespace Only", "   ", ""},
		{"Commas Only", ",,,", ""},
		{"Duplicate Heroes Kept", "오공, 오공", "오공, 오공"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"카구라, 에반",
		"여포,오공,카구라",
		"  에반  ",
		"",
		"오공 여포",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalizePermutationInvariance(t *testing.T) {
	variants := []string{
		"카구라, 에반, 오공",
		"오공,카구라,에반",
		"에반 , 오공 , 카구라",
		"오공 에반 카구라",
	}
	want := Normalize(variants[0])
	for _, v := range variants[1:] {
		if got := Normalize(v); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", v, got, want)
		}
	}
}

func TestTokens(t *testing.T) {
	tests := []struct {
		name     string
		identity string
		want     []string
	}{
		{"Two Heroes", "에반, 카구라", []string{"에반", "카구라"}},
		{"Single", "오공", []string{"오공"}},
		{"Empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tokens(tt.identity); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokens(%q) = %v, want %v", tt.identity, got, tt.want)
			}
		})
	}
}
