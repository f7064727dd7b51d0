// internal/config/lists_test.go
//
// Unit-tests for list-field normalization.
//
// Context
// -------
// Covers both flavors: the plain comma splitter used by the extension and
// directory lists, and the JSON-or-comma parser used by CORS_ORIGINS,
// including the deliberate degradation of malformed bracketed literals.
//
// Notes
// -----
// • Oxford commas, two spaces after periods.

package config

import (
	"reflect"
	"testing"
)

func TestParseCommaList(t *testing.T) {
	got := parseCommaList(" .py, .md ,,.go")
	want := []string{".py", ".md", ".go"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("parseCommaList = %v, want %v", got, want)
	}
}

func TestParseCommaList_Empty(t *testing.T) {
	if got := parseCommaList(""); len(got) != 0 {
		t.Fatalf("empty input should normalize to an empty sequence, got %v", got)
	}
	if got := parseCommaList("   "); len(got) != 0 {
		t.Fatalf("whitespace input should normalize to an empty sequence, got %v", got)
	}
}

func TestParseOriginList_JSONArray(t *testing.T) {
	got := parseOriginList(`["https://a.com", "https://b.com"]`)
	want := []string{"https://a.com", "https://b.com"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("JSON flavor = %v, want %v", got, want)
	}
}

func TestParseOriginList_QuotedJSONArray(t *testing.T) {
	// One layer of surrounding quotes is stripped before parsing.
	got := parseOriginList(`'["https://a.com", "https://b.com"]'`)
	want := []string{"https://a.com", "https://b.com"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("quoted JSON flavor = %v, want %v", got, want)
	}
}

func TestParseOriginList_CommaSeparated(t *testing.T) {
	got := parseOriginList("https://a.com, https://b.com")
	want := []string{"https://a.com", "https://b.com"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("comma flavor = %v, want %v", got, want)
	}
}

func TestParseOriginList_MalformedBracketFallsBack(t *testing.T) {
	// A malformed JSON-looking value degrades to comma splitting; here the
	// whole text survives as a single token.
	got := parseOriginList("[not json")
	want := []string{"[not json"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("malformed literal = %v, want %v", got, want)
	}
}

func TestParseOriginList_BracketedNonStringsFallBack(t *testing.T) {
	// An array of non-strings is not "a JSON array of strings", so it takes
	// the comma path too.
	got := parseOriginList("[1,2]")
	want := []string{"[1", "2]"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("non-string array = %v, want %v", got, want)
	}
}

func TestParseOriginList_Empty(t *testing.T) {
	if got := parseOriginList(""); len(got) != 0 {
		t.Fatalf("empty input should normalize to an empty sequence, got %v", got)
	}
}
