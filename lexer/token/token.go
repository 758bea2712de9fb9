// Package token defines the token kinds and value shapes produced by the
// CoNLL-U lexer.
package token

import "fmt"

// Kind identifies the syntactic category of a token.
type Kind int

const (
	EOF Kind = iota
	COMMENT
	INTEGER_ID
	RANGE_ID
	DECIMAL_ID
	FORM
	LEMMA
	UPOS
	XPOS
	FEATS
	HEAD
	DEPREL
	DEPS
	MISC
	TAB
	NEWLINE
)

var names = [...]string{
	EOF:        "EOF",
	COMMENT:    "COMMENT",
	INTEGER_ID: "INTEGER_ID",
	RANGE_ID:   "RANGE_ID",
	DECIMAL_ID: "DECIMAL_ID",
	FORM:       "FORM",
	LEMMA:      "LEMMA",
	UPOS:       "UPOS",
	XPOS:       "XPOS",
	FEATS:      "FEATS",
	HEAD:       "HEAD",
	DEPREL:     "DEPREL",
	DEPS:       "DEPS",
	MISC:       "MISC",
	TAB:        "TAB",
	NEWLINE:    "NEWLINE",
}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(names) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return names[k]
}

// IntPair holds the two components of a RANGE_ID ("first-last") or a
// DECIMAL_ID ("main.sub") token.
type IntPair struct {
	A int
	B int
}

// Token is one lexical unit. Line and Column are 1-based and mark the first
// character of the token. Value carries the kind-specific payload:
//
//	COMMENT              string
//	INTEGER_ID           int
//	RANGE_ID, DECIMAL_ID IntPair
//	FORM, LEMMA          string (the literal "_" is a real value, not absence)
//	XPOS, DEPREL, MISC   string, or nil if the field was "_"
//	UPOS                 upos.Tag, or nil if the field was "_"
//	FEATS                *types.Feats, or nil if the field was "_"
//	HEAD                 int, or nil if the field was "_"
//	DEPS                 *types.Deps, or nil if the field was "_"
//	TAB, NEWLINE, EOF    nil
type Token struct {
	Kind   Kind
	Line   int
	Column int
	Lexeme string
	Value  any
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%d:%d) %q", t.Kind, t.Line, t.Column, t.Lexeme)
}
