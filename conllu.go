// Package conllu parses, validates and serializes the CoNLL-U
// dependency-annotation format: a lexer with per-field micro-grammars, a
// grammar-driven parser producing typed sentence elements, a structural
// validator enforcing cross-element invariants, and a canonical serializer.
package conllu

import (
	"github.com/alecthomas/repr"

	"github.com/lukeod/conllu/parser"
	"github.com/lukeod/conllu/types"
)

// Sentence, Element and its three variants, and the FEATS/DEPS value types
// are re-exported from the leaf types package so callers never need to
// import it directly.
type (
	Sentence             = types.Sentence
	Element              = types.Element
	Word                 = types.Word
	Multiword            = types.Multiword
	EmptyNode            = types.EmptyNode
	Feats                = types.Feats
	FeatsEntry           = types.FeatsEntry
	Deps                 = types.Deps
	DepsPair             = types.DepsPair
	UnsupportedRendering = types.UnsupportedRendering
)

// RawFeats, StructuredFeats, RawDeps and StructuredDeps construct the
// corresponding tagged-union values for building sentences programmatically
// rather than through Parse.
var (
	RawFeats        = types.RawFeats
	StructuredFeats = types.StructuredFeats
	RawDeps         = types.RawDeps
	StructuredDeps  = types.StructuredDeps
)

// Parse lexes and parses a CoNLL-U document into its ordered sentences. It
// fails fast on the first lexical or grammatical error encountered: one of
// *lexer.IllegalCharacter, *parser.IllegalToken, *parser.IllegalEof,
// *parser.IllegalMultiword or *parser.IllegalEmptyNode.
func Parse(text string) ([]Sentence, error) {
	return parser.Parse(text)
}

// ToConllu renders sentences back to their canonical tab-delimited text. It
// fails with *types.UnsupportedRendering if a structured FEATS or DEPS value
// carries a shape the format cannot express (no entries or pairs, an empty
// key, a key with no values, an empty value or relation, or a negative
// head).
func ToConllu(sentences []Sentence) (string, error) {
	return types.ToConllu(sentences)
}

// Dump pretty-prints a sentence's structure for debugging with
// alecthomas/repr rather than %+v.
func Dump(s Sentence) string {
	return repr.String(s)
}
