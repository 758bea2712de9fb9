// Package structured parses the self-contained FEATS and DEPS micro-grammars
// (the substring already isolated by the document lexer between two TABs)
// into ordered pair lists, using a small participle grammar the way the
// teacher package builds its SMI grammar over a regex-based Simple lexer.
//
// Unlike the outer CoNLL-U document grammar, FEATS/DEPS are not positional:
// "entry ('|' entry)*" and "pair ('|' pair)*" are ordinary context-free
// grammars over a flat token stream, which is exactly what participle is
// good at.
package structured

import (
	"fmt"
	"regexp"

	"github.com/alecthomas/participle/v2"
	plex "github.com/alecthomas/participle/v2/lexer"
)

// FeatsEntry is one "key=value(,value)*" entry.
type FeatsEntry struct {
	Key    string
	Values []string
}

// DepsPair is one "head:relation" pair.
type DepsPair struct {
	Head     int
	Relation string
}

var featsKeyPattern = regexp.MustCompile(`^[A-Za-z0-9\[\]]+$`)

var featsLexer = plex.MustSimple([]plex.SimpleRule{
	{Name: "Pipe", Pattern: `\|`},
	{Name: "Equals", Pattern: `=`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Text", Pattern: `[^|,=]+`},
})

type featsDocument struct {
	Entries []featsEntryNode `parser:"@@ ( \"|\" @@ )*"`
}

type featsEntryNode struct {
	Key    string   `parser:"@Text \"=\""`
	Values []string `parser:"@Text ( \",\" @Text )*"`
}

var featsParser = participle.MustBuild[featsDocument](
	participle.Lexer(featsLexer),
)

// ParseFeats parses a FEATS field substring (already known to be non-empty
// and to contain no spaces) into its ordered key/values entries. It fails if
// the grammar doesn't match, or if a key contains characters outside
// [A-Za-z0-9[\]].
func ParseFeats(s string) ([]FeatsEntry, error) {
	doc, err := featsParser.ParseString("", s)
	if err != nil {
		return nil, err
	}
	entries := make([]FeatsEntry, 0, len(doc.Entries))
	for _, e := range doc.Entries {
		if !featsKeyPattern.MatchString(e.Key) {
			return nil, fmt.Errorf("invalid FEATS key %q", e.Key)
		}
		entries = append(entries, FeatsEntry{Key: e.Key, Values: e.Values})
	}
	return entries, nil
}

var depsLexer = plex.MustSimple([]plex.SimpleRule{
	{Name: "Pipe", Pattern: `\|`},
	{Name: "Int", Pattern: `0|[1-9][0-9]*`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Rel", Pattern: `[^:|]+`},
})

type depsDocument struct {
	Pairs []depsPairNode `parser:"@@ ( \"|\" @@ )*"`
}

type depsPairNode struct {
	Head     int    `parser:"@Int \":\""`
	Relation string `parser:"@Rel"`
}

var depsParser = participle.MustBuild[depsDocument](
	participle.Lexer(depsLexer),
)

// ParseDeps parses a DEPS field substring into its ordered head/relation
// pairs. Head must be "0" or a digit run without a leading zero; Relation
// must be non-empty and free of ':' and '|' (spacing is already guaranteed
// by the caller).
func ParseDeps(s string) ([]DepsPair, error) {
	doc, err := depsParser.ParseString("", s)
	if err != nil {
		return nil, err
	}
	pairs := make([]DepsPair, 0, len(doc.Pairs))
	for _, p := range doc.Pairs {
		pairs = append(pairs, DepsPair{Head: p.Head, Relation: p.Relation})
	}
	return pairs, nil
}
