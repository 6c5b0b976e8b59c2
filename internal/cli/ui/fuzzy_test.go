package ui

import (
	"reflect"
	"testing"
)

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		s1, s2   string
		expected int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"json", "json", 0},
		{"jsn", "json", 1},
		{"yml", "yaml", 1},
		{"kitten", "sitting", 3},
	}

	for _, tt := range tests {
		if got := LevenshteinDistance(tt.s1, tt.s2); got != tt.expected {
			t.Errorf("LevenshteinDistance(%q, %q) = %d, want %d", tt.s1, tt.s2, got, tt.expected)
		}
	}
}

func TestFindSimilar(t *testing.T) {
	got := FindSimilar("jsn", []string{"json", "yaml"}, nil)
	if !reflect.DeepEqual(got, []string{"json"}) {
		t.Errorf("expected [json], got %v", got)
	}
}

func TestFindSimilarOrdersByDistance(t *testing.T) {
	got := FindSimilar("jso", []string{"yaml", "json", "jso"}, nil)
	if len(got) == 0 || got[0] != "jso" {
		t.Errorf("expected exact match first, got %v", got)
	}
}

func TestFindSimilarCaseInsensitive(t *testing.T) {
	got := FindSimilar("JSON", []string{"json"}, nil)
	if !reflect.DeepEqual(got, []string{"json"}) {
		t.Errorf("expected case-insensitive match, got %v", got)
	}
}

func TestFindSimilarRespectsMaxDistance(t *testing.T) {
	got := FindSimilar("completely-different", []string{"json", "yaml"}, nil)
	if len(got) != 0 {
		t.Errorf("expected no matches, got %v", got)
	}
}

func TestFindSimilarRespectsMaxSuggestions(t *testing.T) {
	got := FindSimilar("aa", []string{"ab", "ac", "ad", "ae"}, &FuzzyMatchOptions{MaxSuggestions: 2})
	if len(got) != 2 {
		t.Errorf("expected 2 suggestions, got %v", got)
	}
}
