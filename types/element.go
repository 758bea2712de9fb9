// Package types defines the CoNLL-U sentence element model shared by the
// lexer, parser and serializer: Word/Multiword/EmptyNode elements, the
// FEATS/DEPS tagged-union values, and the Sentence container with its
// structural validator.
package types

import "github.com/lukeod/conllu/upos"

// FeatsEntry is one key/values pair of a structured FEATS field, e.g. the
// "Case=Nom,Acc" part of "Case=Nom,Acc|Number=Sing". Values preserve input
// order; Values is always non-empty when Entries are returned by the lexer.
type FeatsEntry struct {
	Key    string
	Values []string
}

// Feats is the FEATS field value: either the original raw field text, or a
// lazily-structured ordered sequence of key/values entries. Exactly one of
// Raw/Entries is meaningful, selected by Structured.
type Feats struct {
	Structured bool
	Raw        string
	Entries    []FeatsEntry
}

// RawFeats wraps a verbatim FEATS field string.
func RawFeats(raw string) *Feats {
	return &Feats{Raw: raw}
}

// StructuredFeats wraps an ordered list of FEATS entries.
func StructuredFeats(entries []FeatsEntry) *Feats {
	return &Feats{Structured: true, Entries: entries}
}

// DepsPair is one head/relation pair of a structured DEPS field.
type DepsPair struct {
	Head     int
	Relation string
}

// Deps is the DEPS field value: either raw field text or an ordered sequence
// of head/relation pairs, selected by Structured.
type Deps struct {
	Structured bool
	Raw        string
	Pairs      []DepsPair
}

// RawDeps wraps a verbatim DEPS field string.
func RawDeps(raw string) *Deps {
	return &Deps{Raw: raw}
}

// StructuredDeps wraps an ordered list of DEPS pairs.
func StructuredDeps(pairs []DepsPair) *Deps {
	return &Deps{Structured: true, Pairs: pairs}
}

// Element is one line of a sentence: a Word, a Multiword token, or an
// EmptyNode. There is no shared base type beyond this interface; each
// variant carries its own fields inline (see spec design note on
// replacing single-root inheritance with a tagged sum).
type Element interface {
	// IsValid reports whether the element is valid in isolation, without
	// considering the sentence it may belong to.
	IsValid() bool

	element()
}

// Word is a single syntactic word or punctuation, addressed by its 1-based
// index within the sentence.
type Word struct {
	Index  int
	Form   *string
	Lemma  *string
	Upos   *upos.Tag
	Xpos   *string
	Feats  *Feats
	Head   *int
	Deprel *string
	Deps   *Deps
	Misc   *string
}

func (Word) element() {}

// IsValid reports index >= 1; see spec §4.3 per-element validity.
func (w Word) IsValid() bool {
	return w.Index >= 1
}

// Multiword is a surface token spanning multiple word indices. Per the
// CoNLL-U format it carries only Form and Misc: no lemma, upos, xpos,
// feats, head, deprel or deps.
type Multiword struct {
	FirstIndex int
	LastIndex  int
	Form       *string
	Misc       *string
}

func (Multiword) element() {}

// IsValid reports first_index >= 1 and last_index > first_index.
func (m Multiword) IsValid() bool {
	return m.FirstIndex >= 1 && m.LastIndex > m.FirstIndex
}

// EmptyNode is a syntactic null element inserted into the enhanced
// dependency graph, addressed by a decimal (main.sub) id. It carries no
// head/deprel, since those are properties of basic (non-enhanced)
// dependency edges.
type EmptyNode struct {
	MainIndex int
	SubIndex  int
	Form      *string
	Lemma     *string
	Upos      *upos.Tag
	Xpos      *string
	Feats     *Feats
	Deps      *Deps
	Misc      *string
}

func (EmptyNode) element() {}

// IsValid reports main_index >= 0 and sub_index >= 1.
func (e EmptyNode) IsValid() bool {
	return e.MainIndex >= 0 && e.SubIndex >= 1
}
