package parser

import (
	"fmt"

	"github.com/lukeod/conllu/lexer/token"
)

// IllegalToken is raised when a token appears where the grammar forbids it.
type IllegalToken struct {
	Kind   token.Kind
	Lexeme string
	Line   int
	Column int
}

func (e *IllegalToken) Error() string {
	return fmt.Sprintf("%d:%d: unexpected %s %q", e.Line, e.Column, e.Kind, e.Lexeme)
}

// IllegalEof is raised when input ends while the grammar expects more:
// trailing comments with no following word line, or a sentence missing its
// terminating blank line.
type IllegalEof struct{}

func (e *IllegalEof) Error() string {
	return "unexpected end of input"
}

// IllegalMultiword is raised when a RANGE_ID line carries a non-absent
// value in one of the fields a multiword token must leave blank (lemma,
// upos, xpos, feats, head, deprel, deps).
type IllegalMultiword struct {
	Line int
}

func (e *IllegalMultiword) Error() string {
	return fmt.Sprintf("line %d: multiword token line must leave lemma/upos/xpos/feats/head/deprel/deps absent", e.Line)
}

// IllegalEmptyNode is raised when a DECIMAL_ID line carries a non-absent
// head or deprel.
type IllegalEmptyNode struct {
	Line int
}

func (e *IllegalEmptyNode) Error() string {
	return fmt.Sprintf("line %d: empty node line must leave head/deprel absent", e.Line)
}
