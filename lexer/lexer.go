// Package lexer turns CoNLL-U source text into a stream of tokens.
//
// Unlike the teacher's own lexer (parser/lexer/lexer.go in the retrieval
// pack, itself dead code since that parser actually drives a participle
// Simple regex lexer), this one is genuinely positional: which micro-grammar
// governs a field depends on which of the ten tab-separated columns it is
// in, and that context resets on every NEWLINE. That is not expressible as a
// context-free token grammar, so it is hand-written in the next/peek/backup
// style the teacher's lexer uses, generalized to track a field counter
// alongside line and column.
package lexer

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/lukeod/conllu/internal/structured"
	"github.com/lukeod/conllu/lexer/token"
	"github.com/lukeod/conllu/types"
	"github.com/lukeod/conllu/upos"
)

const eof = -1

// Lexer scans one CoNLL-U document and yields tokens one at a time via
// Next. It holds no lookahead buffer beyond the single rune backup the
// teacher's lexer also relies on.
type Lexer struct {
	input string
	pos   int // byte offset of the next unread rune
	width int // byte width of the last rune returned by next, for backup

	line   int // 1-based line of the next unread rune
	column int // 1-based column of the next unread rune, counted in runes

	col             int  // 0-based field index of the line being scanned (0=id .. 9=misc)
	expectSeparator bool // true once a field's content has been consumed
}

// New returns a lexer positioned at the start of input.
func New(input string) *Lexer {
	return &Lexer{input: input, line: 1, column: 1}
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = w
	l.pos += w
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

// backup undoes the most recent next call. Backing up over a newline
// restores the previous line and recomputes its column from the start of
// that line; every caller in this file only backs up within a single peek.
func (l *Lexer) backup() {
	if l.width == 0 {
		return
	}
	l.pos -= l.width
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	if r == '\n' {
		l.line--
		lineStart := strings.LastIndexByte(l.input[:l.pos], '\n') + 1
		l.column = utf8.RuneCountInString(l.input[lineStart:l.pos]) + 1
	} else {
		l.column--
	}
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

// Next returns the next token, or an *IllegalCharacter error. At true end of
// input it returns a token.EOF token with a nil error: running out of input
// is not itself illegal, only being grammatically incomplete is, and that
// distinction belongs to the parser.
func (l *Lexer) Next() (token.Token, error) {
	if l.expectSeparator {
		return l.lexSeparator()
	}
	return l.lexField()
}

func (l *Lexer) lexSeparator() (token.Token, error) {
	startLine, startCol := l.line, l.column
	r := l.peek()
	if r == eof {
		return token.Token{Kind: token.EOF, Line: startLine, Column: startCol}, nil
	}
	if l.col < 9 {
		if r == '\t' {
			l.next()
			l.col++
			l.expectSeparator = false
			return token.Token{Kind: token.TAB, Line: startLine, Column: startCol, Lexeme: "\t"}, nil
		}
		return token.Token{}, &IllegalCharacter{Line: startLine, Column: startCol}
	}
	if r == '\n' {
		l.next()
		l.col = 0
		l.expectSeparator = false
		return token.Token{Kind: token.NEWLINE, Line: startLine, Column: startCol, Lexeme: "\n"}, nil
	}
	return token.Token{}, &IllegalCharacter{Line: startLine, Column: startCol}
}

func (l *Lexer) lexField() (token.Token, error) {
	if l.col == 0 {
		return l.lexCol0()
	}
	switch l.col {
	case 1:
		return l.lexFormLike(token.FORM)
	case 2:
		return l.lexFormLike(token.LEMMA)
	case 3:
		return l.lexUpos()
	case 4:
		return l.lexNoSpace(token.XPOS)
	case 5:
		return l.lexFeats()
	case 6:
		return l.lexHead()
	case 7:
		return l.lexNoSpace(token.DEPREL)
	case 8:
		return l.lexDeps()
	default:
		return l.lexNoSpace(token.MISC)
	}
}

// lexCol0 handles the id column: a blank line (bare NEWLINE), a comment
// line starting with '#', or a word/multiword/empty-node id.
func (l *Lexer) lexCol0() (token.Token, error) {
	startLine, startCol := l.line, l.column
	r := l.peek()
	switch {
	case r == eof:
		return token.Token{Kind: token.EOF, Line: startLine, Column: startCol}, nil
	case r == '\n':
		l.next()
		return token.Token{Kind: token.NEWLINE, Line: startLine, Column: startCol, Lexeme: "\n"}, nil
	case r == '#':
		return l.lexComment(startLine, startCol)
	case r >= '0' && r <= '9':
		return l.lexID(startLine, startCol)
	default:
		return token.Token{}, &IllegalCharacter{Line: startLine, Column: startCol}
	}
}

// lexComment consumes a '#'-prefixed line, stripping all leading spaces and
// any trailing horizontal whitespace, up to but not including the
// terminating newline.
func (l *Lexer) lexComment(startLine, startCol int) (token.Token, error) {
	l.next() // '#'
	for l.peek() == ' ' {
		l.next()
	}
	var sb strings.Builder
	for {
		r := l.peek()
		if r == '\n' || r == eof {
			break
		}
		sb.WriteRune(l.next())
	}
	text := strings.TrimRight(sb.String(), " \t")
	return token.Token{Kind: token.COMMENT, Line: startLine, Column: startCol, Lexeme: text, Value: text}, nil
}

// lexID reads the id column: INTEGER_ID ("[1-9][0-9]*"), RANGE_ID
// ("id-id") or DECIMAL_ID ("id.id"). Each numeric run is captured greedily
// first and validated afterward; see DESIGN.md for the column each
// micro-grammar reports on failure (INTEGER_ID, RANGE_ID's first component
// and either DECIMAL_ID component report the token's start column;
// RANGE_ID's second component reports at the hyphen instead).
func (l *Lexer) lexID(startLine, startCol int) (token.Token, error) {
	digits1, _ := l.readDigits()
	switch l.peek() {
	case '-':
		hyphenLine, hyphenCol := l.line, l.column
		l.next()
		run2Line, run2Col := l.line, l.column
		digits2, ok2 := l.readDigits()
		if !ok2 {
			return token.Token{}, &IllegalCharacter{Line: run2Line, Column: run2Col}
		}
		a, errA := validateUnsigned(digits1)
		if errA != nil {
			return token.Token{}, &IllegalCharacter{Line: startLine, Column: startCol}
		}
		b, errB := validateUnsigned(digits2)
		if errB != nil {
			// The offending component is reported at the hyphen, not the
			// digit run: "1-0" errors at column 2 (the "-"), not column 3
			// (the "0"), per spec.md §8's confirmed boundary value.
			return token.Token{}, &IllegalCharacter{Line: hyphenLine, Column: hyphenCol}
		}
		l.expectSeparator = true
		return token.Token{
			Kind: token.RANGE_ID, Line: startLine, Column: startCol,
			Lexeme: digits1 + "-" + digits2, Value: token.IntPair{A: a, B: b},
		}, nil
	case '.':
		l.next()
		subLine, subCol := l.line, l.column
		digits2, ok2 := l.readDigits()
		if !ok2 {
			return token.Token{}, &IllegalCharacter{Line: subLine, Column: subCol}
		}
		main, errMain := validateNonNegative(digits1)
		sub, errSub := validateUnsigned(digits2)
		if errMain != nil || errSub != nil {
			return token.Token{}, &IllegalCharacter{Line: startLine, Column: startCol}
		}
		l.expectSeparator = true
		return token.Token{
			Kind: token.DECIMAL_ID, Line: startLine, Column: startCol,
			Lexeme: digits1 + "." + digits2, Value: token.IntPair{A: main, B: sub},
		}, nil
	default:
		n, err := validateUnsigned(digits1)
		if err != nil {
			return token.Token{}, &IllegalCharacter{Line: startLine, Column: startCol}
		}
		l.expectSeparator = true
		return token.Token{Kind: token.INTEGER_ID, Line: startLine, Column: startCol, Lexeme: digits1, Value: n}, nil
	}
}

// readDigits consumes a maximal run of ASCII digits and reports whether it
// read at least one.
func (l *Lexer) readDigits() (string, bool) {
	var sb strings.Builder
	for {
		r := l.peek()
		if r < '0' || r > '9' {
			break
		}
		sb.WriteRune(l.next())
	}
	s := sb.String()
	return s, len(s) > 0
}

// errInvalidNumber signals that a captured digit run didn't match its
// target shape; callers discard it and report their own *IllegalCharacter*
// at whichever column their own convention calls for (see DESIGN.md).
var errInvalidNumber = errors.New("invalid number")

// validateUnsigned matches "[1-9][0-9]*": no leading zero, never empty.
func validateUnsigned(s string) (int, error) {
	if s == "" || s == "0" || s[0] == '0' {
		return 0, errInvalidNumber
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errInvalidNumber
	}
	return n, nil
}

// validateNonNegative matches "0|[1-9][0-9]*".
func validateNonNegative(s string) (int, error) {
	if s == "" {
		return 0, errInvalidNumber
	}
	if s != "0" && s[0] == '0' {
		return 0, errInvalidNumber
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errInvalidNumber
	}
	return n, nil
}

// lexFormLike reads FORM or LEMMA: any run of characters up to the next TAB
// or NEWLINE, spaces included, never empty.
func (l *Lexer) lexFormLike(kind token.Kind) (token.Token, error) {
	startLine, startCol := l.line, l.column
	if r := l.peek(); r == '\t' || r == '\n' || r == eof {
		return token.Token{}, &IllegalCharacter{Line: startLine, Column: startCol}
	}
	var sb strings.Builder
	for {
		r := l.peek()
		if r == '\t' || r == '\n' || r == eof {
			break
		}
		sb.WriteRune(l.next())
	}
	l.expectSeparator = true
	return token.Token{Kind: kind, Line: startLine, Column: startCol, Lexeme: sb.String(), Value: sb.String()}, nil
}

// readNoSpaceRun reads a run of characters up to the next TAB or NEWLINE,
// rejecting spaces and empty fields. It returns the field's own start
// position alongside the text, since several callers need it to interpret
// or re-report errors relative to the field rather than the lexer's current
// position.
func (l *Lexer) readNoSpaceRun() (string, int, int, error) {
	startLine, startCol := l.line, l.column
	if r := l.peek(); r == '\t' || r == '\n' || r == eof {
		return "", startLine, startCol, &IllegalCharacter{Line: startLine, Column: startCol}
	}
	var sb strings.Builder
	for {
		r := l.peek()
		if r == '\t' || r == '\n' || r == eof {
			break
		}
		if r == ' ' {
			return "", startLine, startCol, &IllegalCharacter{Line: l.line, Column: l.column}
		}
		sb.WriteRune(l.next())
	}
	return sb.String(), startLine, startCol, nil
}

// lexNoSpace handles XPOS, DEPREL and MISC: opaque strings, "_" for absent.
func (l *Lexer) lexNoSpace(kind token.Kind) (token.Token, error) {
	text, startLine, startCol, err := l.readNoSpaceRun()
	if err != nil {
		return token.Token{}, err
	}
	l.expectSeparator = true
	if text == "_" {
		return token.Token{Kind: kind, Line: startLine, Column: startCol, Lexeme: text}, nil
	}
	return token.Token{Kind: kind, Line: startLine, Column: startCol, Lexeme: text, Value: text}, nil
}

// lexUpos handles UPOS: "_" for absent, else one of the 17 closed tags.
func (l *Lexer) lexUpos() (token.Token, error) {
	text, startLine, startCol, err := l.readNoSpaceRun()
	if err != nil {
		return token.Token{}, err
	}
	l.expectSeparator = true
	if text == "_" {
		return token.Token{Kind: token.UPOS, Line: startLine, Column: startCol, Lexeme: text}, nil
	}
	tag, ok := upos.Parse(text)
	if !ok {
		return token.Token{}, &IllegalCharacter{Line: startLine, Column: startCol}
	}
	return token.Token{Kind: token.UPOS, Line: startLine, Column: startCol, Lexeme: text, Value: tag}, nil
}

// lexFeats handles FEATS: "_" for absent, else delegates the isolated
// substring to internal/structured. A substring that fails to parse is
// reported at the field's own start column, like every other structured
// field here.
func (l *Lexer) lexFeats() (token.Token, error) {
	text, startLine, startCol, err := l.readNoSpaceRun()
	if err != nil {
		return token.Token{}, err
	}
	l.expectSeparator = true
	if text == "_" {
		return token.Token{Kind: token.FEATS, Line: startLine, Column: startCol, Lexeme: text}, nil
	}
	entries, perr := structured.ParseFeats(text)
	if perr != nil {
		return token.Token{}, &IllegalCharacter{Line: startLine, Column: startCol}
	}
	feats := types.StructuredFeats(toFeatsEntries(entries))
	return token.Token{Kind: token.FEATS, Line: startLine, Column: startCol, Lexeme: text, Value: feats}, nil
}

func toFeatsEntries(entries []structured.FeatsEntry) []types.FeatsEntry {
	out := make([]types.FeatsEntry, len(entries))
	for i, e := range entries {
		out[i] = types.FeatsEntry{Key: e.Key, Values: e.Values}
	}
	return out
}

// lexDeps handles DEPS: "_" for absent, else delegates to
// internal/structured the same way lexFeats does.
func (l *Lexer) lexDeps() (token.Token, error) {
	text, startLine, startCol, err := l.readNoSpaceRun()
	if err != nil {
		return token.Token{}, err
	}
	l.expectSeparator = true
	if text == "_" {
		return token.Token{Kind: token.DEPS, Line: startLine, Column: startCol, Lexeme: text}, nil
	}
	pairs, perr := structured.ParseDeps(text)
	if perr != nil {
		return token.Token{}, &IllegalCharacter{Line: startLine, Column: startCol}
	}
	deps := types.StructuredDeps(toDepsPairs(pairs))
	return token.Token{Kind: token.DEPS, Line: startLine, Column: startCol, Lexeme: text, Value: deps}, nil
}

func toDepsPairs(pairs []structured.DepsPair) []types.DepsPair {
	out := make([]types.DepsPair, len(pairs))
	for i, p := range pairs {
		out[i] = types.DepsPair{Head: p.Head, Relation: p.Relation}
	}
	return out
}

// lexHead handles HEAD: "_" for absent, else "0|[1-9][0-9]*", reported at
// the field's own start column on any violation (leading zero, trailing
// garbage, or an empty field).
func (l *Lexer) lexHead() (token.Token, error) {
	startLine, startCol := l.line, l.column
	r := l.peek()
	if r == '\t' || r == '\n' || r == eof {
		return token.Token{}, &IllegalCharacter{Line: startLine, Column: startCol}
	}
	if r == '_' {
		l.next()
		if nr := l.peek(); nr != '\t' && nr != '\n' && nr != eof {
			return token.Token{}, &IllegalCharacter{Line: startLine, Column: startCol}
		}
		l.expectSeparator = true
		return token.Token{Kind: token.HEAD, Line: startLine, Column: startCol, Lexeme: "_"}, nil
	}
	if r < '0' || r > '9' {
		return token.Token{}, &IllegalCharacter{Line: startLine, Column: startCol}
	}
	digits, _ := l.readDigits()
	if nr := l.peek(); nr != '\t' && nr != '\n' && nr != eof {
		return token.Token{}, &IllegalCharacter{Line: startLine, Column: startCol}
	}
	n, err := validateNonNegative(digits)
	if err != nil {
		return token.Token{}, &IllegalCharacter{Line: startLine, Column: startCol}
	}
	l.expectSeparator = true
	return token.Token{Kind: token.HEAD, Line: startLine, Column: startCol, Lexeme: digits, Value: n}, nil
}

// All drains the lexer to EOF, for tests that want the whole token stream
// at once rather than pulling it token by token.
func (l *Lexer) All() ([]token.Token, error) {
	var toks []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, nil
		}
	}
}
