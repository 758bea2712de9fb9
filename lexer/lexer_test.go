package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukeod/conllu/lexer"
	"github.com/lukeod/conllu/lexer/token"
)

func tokenize(t *testing.T, input string) []token.Token {
	t.Helper()
	toks, err := lexer.New(input).All()
	require.NoError(t, err)
	return toks
}

func TestLexWordLine(t *testing.T) {
	toks := tokenize(t, "1\tFoo\t_\t_\t_\t_\t_\t_\t_\t_\n")
	var kinds []token.Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []token.Kind{
		token.INTEGER_ID, token.TAB, token.FORM, token.TAB, token.LEMMA, token.TAB,
		token.UPOS, token.TAB, token.XPOS, token.TAB, token.FEATS, token.TAB,
		token.HEAD, token.TAB, token.DEPREL, token.TAB, token.DEPS, token.TAB,
		token.MISC, token.NEWLINE, token.EOF,
	}, kinds)
	assert.Equal(t, 1, toks[0].Value)
	assert.Equal(t, "Foo", toks[2].Value)
}

func TestLexComment(t *testing.T) {
	toks := tokenize(t, "# sent_id = 1\n")
	require.Len(t, toks, 3) // COMMENT, NEWLINE, EOF
	assert.Equal(t, token.COMMENT, toks[0].Kind)
	assert.Equal(t, "sent_id = 1", toks[0].Value)
}

func TestLexCommentStripsAllLeadingSpaces(t *testing.T) {
	toks := tokenize(t, "#       A   comment       \n")
	require.Len(t, toks, 3) // COMMENT, NEWLINE, EOF
	assert.Equal(t, "A   comment", toks[0].Value)
}

func TestLexRangeID(t *testing.T) {
	toks := tokenize(t, "1-2\tvamonos\t_\t_\t_\t_\t_\t_\t_\t_\n")
	assert.Equal(t, token.RANGE_ID, toks[0].Kind)
	assert.Equal(t, token.IntPair{A: 1, B: 2}, toks[0].Value)
}

func TestLexDecimalID(t *testing.T) {
	toks := tokenize(t, "3.1\t_\t_\t_\t_\t_\t_\t_\t_\t_\n")
	assert.Equal(t, token.DECIMAL_ID, toks[0].Kind)
	assert.Equal(t, token.IntPair{A: 3, B: 1}, toks[0].Value)
}

func TestLexAbsentFieldsAreNilValue(t *testing.T) {
	toks := tokenize(t, "1\tFoo\t_\t_\t_\t_\t_\t_\t_\t_\n")
	// fields: id(0) TAB FORM(2) TAB LEMMA(4) TAB UPOS(6) TAB XPOS(8) ...
	uposTok := toks[6]
	assert.Equal(t, token.UPOS, uposTok.Kind)
	assert.Nil(t, uposTok.Value)
	assert.Equal(t, "_", uposTok.Lexeme)
}

func TestLexFormLemmaUnderscoreIsLiteral(t *testing.T) {
	toks := tokenize(t, "1\t_\t_\t_\t_\t_\t_\t_\t_\t_\n")
	formTok := toks[2]
	assert.Equal(t, "_", formTok.Value)
}

func TestLexIllegalEmptyIDField(t *testing.T) {
	_, err := lexer.New("\t_\t_\t_\t_\t_\t_\t_\t_\t_\n").All()
	require.Error(t, err)
	var ic *lexer.IllegalCharacter
	require.ErrorAs(t, err, &ic)
	assert.Equal(t, 1, ic.Line)
	assert.Equal(t, 1, ic.Column)
}

func TestLexIllegalIntegerIDLeadingZero(t *testing.T) {
	for _, bad := range []string{"0", "01"} {
		_, err := lexer.New(bad + "\t_\t_\t_\t_\t_\t_\t_\t_\t_\n").All()
		require.Error(t, err)
		var ic *lexer.IllegalCharacter
		require.ErrorAs(t, err, &ic)
		assert.Equal(t, 1, ic.Line)
		assert.Equal(t, 1, ic.Column, "bad id %q", bad)
	}
}

func TestLexIllegalRangeIDComponentColumn(t *testing.T) {
	_, err := lexer.New("1-0\t_\t_\t_\t_\t_\t_\t_\t_\t_\n").All()
	require.Error(t, err)
	var ic *lexer.IllegalCharacter
	require.ErrorAs(t, err, &ic)
	assert.Equal(t, 1, ic.Line)
	assert.Equal(t, 2, ic.Column)
}

func TestLexIllegalDecimalIDAlwaysTokenStart(t *testing.T) {
	for _, bad := range []string{"0.0", "01.1", "0.01"} {
		_, err := lexer.New(bad + "\t_\t_\t_\t_\t_\t_\t_\t_\t_\n").All()
		require.Error(t, err)
		var ic *lexer.IllegalCharacter
		require.ErrorAs(t, err, &ic)
		assert.Equal(t, 1, ic.Column, "bad id %q", bad)
	}
}

func TestLexIllegalHeadLeadingZeroAtFieldStart(t *testing.T) {
	_, err := lexer.New("1\t_\t_\t_\t_\t_\t01\t_\t_\t_\n").All()
	require.Error(t, err)
	var ic *lexer.IllegalCharacter
	require.ErrorAs(t, err, &ic)
	assert.Equal(t, 1, ic.Line)
	assert.Equal(t, 13, ic.Column)
}

func TestLexIllegalDepsHeadLeadingZero(t *testing.T) {
	_, err := lexer.New("1\t_\t_\t_\t_\t_\t_\t_\t01:Foo\t_\n").All()
	require.Error(t, err)
	var ic *lexer.IllegalCharacter
	require.ErrorAs(t, err, &ic)
	assert.Equal(t, 1, ic.Line)
	assert.Equal(t, 17, ic.Column)
}

func TestLexIllegalSpaceInXpos(t *testing.T) {
	_, err := lexer.New("# Foo\n# Bar\n1\t_\t_\t_\tfoo bar\t_\t_\t_\t_\t_").All()
	require.Error(t, err)
	var ic *lexer.IllegalCharacter
	require.ErrorAs(t, err, &ic)
	assert.Equal(t, 3, ic.Line)
	assert.Equal(t, 12, ic.Column)
}

func TestLexFeatsStructuredValue(t *testing.T) {
	toks := tokenize(t, "1\t_\t_\t_\t_\tAb=Cd|Ef[01]=G3|Hij=Klm,Nop\t_\t_\t_\t_\n")
	featsTok := toks[10]
	assert.Equal(t, token.FEATS, featsTok.Kind)
	require.NotNil(t, featsTok.Value)
}

func TestLexBlankLineBetweenSentences(t *testing.T) {
	toks := tokenize(t, "1\tFoo\t_\t_\t_\t_\t_\t_\t_\t_\n\n2\tBar\t_\t_\t_\t_\t_\t_\t_\t_\n")
	var newlineCount int
	for _, tok := range toks {
		if tok.Kind == token.NEWLINE {
			newlineCount++
		}
	}
	assert.Equal(t, 3, newlineCount)
}

func TestLexEOFWithoutErrorAtTrueEnd(t *testing.T) {
	toks := tokenize(t, "")
	require.Len(t, toks, 1)
	assert.Equal(t, token.EOF, toks[0].Kind)
}

func TestLexMultibyteColumnCounting(t *testing.T) {
	// "café" has 4 runes but 5 bytes; the column after it must still
	// advance by 4, matching the spec's "character offset" contract.
	toks := tokenize(t, "1\tcafé\t_\t_\t_\t_\t_\t_\t_\t_\n")
	tabTok := toks[3] // TAB right after FORM
	assert.Equal(t, 7, tabTok.Column)
}
