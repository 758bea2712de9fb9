// Package testutil provides small test-only helpers, used by the parser
// test suite, for parsing a snippet and asserting on the resulting
// sentences.
package testutil

import (
	"reflect"
	"testing"

	"github.com/lukeod/conllu/parser"
	"github.com/lukeod/conllu/types"
	"github.com/stretchr/testify/require"
)

// MustParseSnippet parses text and fails the test immediately if parsing
// errors, so callers that only care about the parsed shape don't have to
// repeat the NoError/NotNil boilerplate.
func MustParseSnippet(t *testing.T, text string) []types.Sentence {
	t.Helper()
	sentences, err := parser.Parse(text)
	require.NoError(t, err, "MustParseSnippet failed unexpectedly for input:\n%s", text)
	require.NotEmpty(t, sentences, "MustParseSnippet returned no sentences for input:\n%s", text)
	return sentences
}

// AssertSentenceEqual compares two sentences field by field via
// reflect.DeepEqual, reporting a comments mismatch and every diverging
// element (a differing element count stops the test at once). Pointer
// fields are compared by pointee value, not by address.
func AssertSentenceEqual(t *testing.T, want, got types.Sentence) {
	t.Helper()
	if !reflect.DeepEqual(want.Comments, got.Comments) {
		t.Errorf("comments mismatch: want %#v, got %#v", want.Comments, got.Comments)
	}
	if len(want.Elements) != len(got.Elements) {
		t.Fatalf("element count mismatch: want %d, got %d", len(want.Elements), len(got.Elements))
	}
	for i := range want.Elements {
		if !reflect.DeepEqual(want.Elements[i], got.Elements[i]) {
			t.Errorf("element %d mismatch: want %#v, got %#v", i, want.Elements[i], got.Elements[i])
		}
	}
}
