// Package parser assembles the lexer's token stream into a sequence of
// sentences. The grammar is LL(1) once the leading id token of a line has
// been read, so — per the teacher's own note that a table-driven generator
// is one valid technique among several equivalent ones — this is a plain
// hand-written recursive-descent parser over the token stream rather than
// a participle grammar: participle needs its own lexer.Lexer and a
// struct-tag grammar, and here the production to take depends on which of
// three id-token variants was just seen, each feeding a different element
// constructor.
package parser

import (
	"github.com/lukeod/conllu/lexer"
	"github.com/lukeod/conllu/lexer/token"
	"github.com/lukeod/conllu/types"
	"github.com/lukeod/conllu/upos"
)

// Parser consumes a single CoNLL-U document with one token of lookahead.
type Parser struct {
	lex *lexer.Lexer
	tok token.Token
	err error
}

// Parse tokenizes and parses text into its sentences.
func Parse(text string) ([]types.Sentence, error) {
	p := &Parser{lex: lexer.New(text)}
	p.advance()
	if p.err != nil {
		return nil, p.err
	}
	var sentences []types.Sentence
	for p.tok.Kind != token.EOF {
		sent, err := p.parseSentence()
		if err != nil {
			return sentences, err
		}
		sentences = append(sentences, sent)
	}
	return sentences, nil
}

func (p *Parser) advance() {
	if p.err != nil {
		return
	}
	tok, err := p.lex.Next()
	if err != nil {
		p.err = err
		return
	}
	p.tok = tok
}

// expect checks the current token against kind, consumes it, and advances.
func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	if p.err != nil {
		return token.Token{}, p.err
	}
	cur := p.tok
	if cur.Kind != kind {
		if cur.Kind == token.EOF {
			return token.Token{}, &IllegalEof{}
		}
		return token.Token{}, &IllegalToken{Kind: cur.Kind, Lexeme: cur.Lexeme, Line: cur.Line, Column: cur.Column}
	}
	p.advance()
	if p.err != nil {
		return token.Token{}, p.err
	}
	return cur, nil
}

func isIDKind(k token.Kind) bool {
	return k == token.INTEGER_ID || k == token.RANGE_ID || k == token.DECIMAL_ID
}

// parseSentence matches "comment* word_line+ NEWLINE".
func (p *Parser) parseSentence() (types.Sentence, error) {
	var comments []string
	for p.tok.Kind == token.COMMENT {
		comments = append(comments, p.tok.Lexeme)
		p.advance()
		if _, err := p.expect(token.NEWLINE); err != nil {
			return types.Sentence{}, err
		}
	}

	var elements []types.Element
	for isIDKind(p.tok.Kind) {
		el, err := p.parseWordLine()
		if err != nil {
			return types.Sentence{}, err
		}
		elements = append(elements, el)
	}
	if len(elements) == 0 {
		if p.tok.Kind == token.EOF {
			return types.Sentence{}, &IllegalEof{}
		}
		return types.Sentence{}, &IllegalToken{Kind: p.tok.Kind, Lexeme: p.tok.Lexeme, Line: p.tok.Line, Column: p.tok.Column}
	}

	// A bare EOF is acceptable only after a sentence's terminating blank
	// line; reaching EOF directly after the last word line is illegal.
	if _, err := p.expect(token.NEWLINE); err != nil {
		return types.Sentence{}, err
	}
	return types.Sentence{Comments: comments, Elements: elements}, nil
}

// parseWordLine matches "id TAB FORM TAB LEMMA TAB UPOS TAB XPOS TAB FEATS
// TAB HEAD TAB DEPREL TAB DEPS TAB MISC NEWLINE" and constructs the element
// variant selected by the id token's kind.
func (p *Parser) parseWordLine() (types.Element, error) {
	if p.err != nil {
		return nil, p.err
	}
	idTok := p.tok
	p.advance()
	if p.err != nil {
		return nil, p.err
	}

	var fields [9]token.Token
	kinds := [9]token.Kind{
		token.FORM, token.LEMMA, token.UPOS, token.XPOS, token.FEATS,
		token.HEAD, token.DEPREL, token.DEPS, token.MISC,
	}
	for i, kind := range kinds {
		if _, err := p.expect(token.TAB); err != nil {
			return nil, err
		}
		tok, err := p.expect(kind)
		if err != nil {
			return nil, err
		}
		fields[i] = tok
	}
	if _, err := p.expect(token.NEWLINE); err != nil {
		return nil, err
	}

	formTok, lemmaTok, uposTok, xposTok := fields[0], fields[1], fields[2], fields[3]
	featsTok, headTok, deprelTok, depsTok, miscTok := fields[4], fields[5], fields[6], fields[7], fields[8]

	switch idTok.Kind {
	case token.INTEGER_ID:
		return buildWord(idTok, formTok, lemmaTok, uposTok, xposTok, featsTok, headTok, deprelTok, depsTok, miscTok), nil
	case token.RANGE_ID:
		return buildMultiword(idTok, formTok, lemmaTok, uposTok, xposTok, featsTok, headTok, deprelTok, depsTok, miscTok)
	default: // token.DECIMAL_ID
		return buildEmptyNode(idTok, formTok, lemmaTok, uposTok, xposTok, featsTok, headTok, deprelTok, depsTok, miscTok)
	}
}

func buildWord(idTok, formTok, lemmaTok, uposTok, xposTok, featsTok, headTok, deprelTok, depsTok, miscTok token.Token) types.Word {
	return types.Word{
		Index:  idTok.Value.(int),
		Form:   formString(formTok),
		Lemma:  formString(lemmaTok),
		Upos:   optUpos(uposTok),
		Xpos:   optString(xposTok),
		Feats:  optFeats(featsTok),
		Head:   optInt(headTok),
		Deprel: optString(deprelTok),
		Deps:   optDeps(depsTok),
		Misc:   optString(miscTok),
	}
}

// buildMultiword rejects any non-absent value in lemma/upos/xpos/feats/
// head/deprel/deps. LEMMA's lexer shape can't distinguish "absent" from a
// literal "_", so absence is checked against the lexeme directly here, the
// same convention the underscore marker uses everywhere else.
func buildMultiword(idTok, formTok, lemmaTok, uposTok, xposTok, featsTok, headTok, deprelTok, depsTok, miscTok token.Token) (types.Multiword, error) {
	if lemmaTok.Lexeme != "_" || uposTok.Value != nil || xposTok.Value != nil ||
		featsTok.Value != nil || headTok.Value != nil || deprelTok.Value != nil || depsTok.Value != nil {
		return types.Multiword{}, &IllegalMultiword{Line: idTok.Line}
	}
	pair := idTok.Value.(token.IntPair)
	return types.Multiword{
		FirstIndex: pair.A,
		LastIndex:  pair.B,
		Form:       formString(formTok),
		Misc:       optString(miscTok),
	}, nil
}

func buildEmptyNode(idTok, formTok, lemmaTok, uposTok, xposTok, featsTok, headTok, deprelTok, depsTok, miscTok token.Token) (types.EmptyNode, error) {
	if headTok.Value != nil || deprelTok.Value != nil {
		return types.EmptyNode{}, &IllegalEmptyNode{Line: idTok.Line}
	}
	pair := idTok.Value.(token.IntPair)
	return types.EmptyNode{
		MainIndex: pair.A,
		SubIndex:  pair.B,
		Form:      formString(formTok),
		Lemma:     formString(lemmaTok),
		Upos:      optUpos(uposTok),
		Xpos:      optString(xposTok),
		Feats:     optFeats(featsTok),
		Deps:      optDeps(depsTok),
		Misc:      optString(miscTok),
	}, nil
}

// formString reads FORM/LEMMA, which never carry an absent representation:
// the literal "_" is real content.
func formString(tok token.Token) *string {
	s := tok.Lexeme
	return &s
}

func optString(tok token.Token) *string {
	if tok.Value == nil {
		return nil
	}
	s := tok.Value.(string)
	return &s
}

func optUpos(tok token.Token) *upos.Tag {
	if tok.Value == nil {
		return nil
	}
	t := tok.Value.(upos.Tag)
	return &t
}

func optInt(tok token.Token) *int {
	if tok.Value == nil {
		return nil
	}
	n := tok.Value.(int)
	return &n
}

func optFeats(tok token.Token) *types.Feats {
	if tok.Value == nil {
		return nil
	}
	return tok.Value.(*types.Feats)
}

func optDeps(tok token.Token) *types.Deps {
	if tok.Value == nil {
		return nil
	}
	return tok.Value.(*types.Deps)
}
