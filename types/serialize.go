package types

import (
	"errors"
	"strconv"
	"strings"

	"github.com/lukeod/conllu/upos"
)

// UnsupportedRendering is raised by Serialize/ToConllu when a FEATS or DEPS
// value's structured shape cannot be rendered: an empty entry or pair list,
// an empty key, a key with no values, a value list containing an empty
// value, or a DEPS pair with a negative head or an empty relation. The
// in-memory tagged unions (Feats/Deps) admit only "raw string"
// or "structured pairs" shapes, so this is the Go analogue of the source's
// "any other stored shape" catch-all (see spec §4.4 and §9).
type UnsupportedRendering struct {
	Field string
}

func (e *UnsupportedRendering) Error() string {
	return "conllu: unsupported rendering for field " + e.Field
}

// ToConllu renders sentences to their canonical CoNLL-U text, concatenating
// each sentence's rendering. The empty slice renders to the empty string.
func ToConllu(sentences []Sentence) (string, error) {
	var b strings.Builder
	for _, s := range sentences {
		if err := s.serialize(&b); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

func (s Sentence) serialize(b *strings.Builder) error {
	for _, c := range s.Comments {
		b.WriteString("# ")
		b.WriteString(c)
		b.WriteByte('\n')
	}
	for _, e := range s.Elements {
		if err := serializeElement(b, e); err != nil {
			return err
		}
	}
	b.WriteByte('\n')
	return nil
}

func serializeElement(b *strings.Builder, e Element) error {
	switch v := e.(type) {
	case Word:
		return serializeWord(b, v)
	case Multiword:
		return serializeMultiword(b, v)
	case EmptyNode:
		return serializeEmptyNode(b, v)
	default:
		return errors.New("conllu: unknown element type")
	}
}

func serializeWord(b *strings.Builder, w Word) error {
	feats, err := renderFeats(w.Feats)
	if err != nil {
		return err
	}
	deps, err := renderDeps(w.Deps)
	if err != nil {
		return err
	}
	fields := [10]string{
		renderWordIndex(w.Index),
		renderForm(w.Form),
		renderForm(w.Lemma),
		renderUpos(w.Upos),
		renderOptString(w.Xpos),
		feats,
		renderOptInt(w.Head),
		renderOptString(w.Deprel),
		deps,
		renderOptString(w.Misc),
	}
	writeFields(b, fields)
	return nil
}

func serializeMultiword(b *strings.Builder, m Multiword) error {
	fields := [10]string{
		renderWordIndex(m.FirstIndex) + "-" + renderWordIndex(m.LastIndex),
		renderForm(m.Form),
		"_", "_", "_", "_", "_", "_", "_",
		renderOptString(m.Misc),
	}
	writeFields(b, fields)
	return nil
}

func serializeEmptyNode(b *strings.Builder, n EmptyNode) error {
	feats, err := renderFeats(n.Feats)
	if err != nil {
		return err
	}
	deps, err := renderDeps(n.Deps)
	if err != nil {
		return err
	}
	fields := [10]string{
		renderMainIndex(n.MainIndex) + "." + renderSubIndex(n.SubIndex),
		renderForm(n.Form),
		renderForm(n.Lemma),
		renderUpos(n.Upos),
		renderOptString(n.Xpos),
		feats,
		"_", "_",
		deps,
		renderOptString(n.Misc),
	}
	writeFields(b, fields)
	return nil
}

func writeFields(b *strings.Builder, fields [10]string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte('\t')
		}
		b.WriteString(f)
	}
	b.WriteByte('\n')
}

// renderWordIndex, renderMainIndex and renderSubIndex reproduce the source's
// "None" literal for an index the caller never set; see spec §9's Open
// Question. Since the Go data model keeps Index/FirstIndex/LastIndex/
// MainIndex/SubIndex as plain ints rather than pointers (the spec's data
// model lists them without "optional"), the natural stand-in for "absent"
// is a value outside the field's valid range, which the validator already
// treats as invalid: Index/FirstIndex/LastIndex/SubIndex < 1, MainIndex < 0.
func renderWordIndex(n int) string {
	if n < 1 {
		return "None"
	}
	return strconv.Itoa(n)
}

func renderMainIndex(n int) string {
	if n < 0 {
		return "None"
	}
	return strconv.Itoa(n)
}

func renderSubIndex(n int) string {
	if n < 1 {
		return "None"
	}
	return strconv.Itoa(n)
}

// renderForm renders FORM/LEMMA: absent and the literal "_" both render as
// "_", preserving the source's original ambiguity (spec §4.4).
func renderForm(s *string) string {
	if s == nil {
		return "_"
	}
	return *s
}

func renderOptString(s *string) string {
	if s == nil {
		return "_"
	}
	return *s
}

func renderOptInt(n *int) string {
	if n == nil {
		return "_"
	}
	return strconv.Itoa(*n)
}

func renderUpos(t *upos.Tag) string {
	if t == nil {
		return "_"
	}
	return t.String()
}

func renderFeats(f *Feats) (string, error) {
	if f == nil {
		return "_", nil
	}
	if !f.Structured {
		return f.Raw, nil
	}
	if len(f.Entries) == 0 {
		return "", &UnsupportedRendering{Field: "feats"}
	}
	var b strings.Builder
	for i, entry := range f.Entries {
		if entry.Key == "" || len(entry.Values) == 0 {
			return "", &UnsupportedRendering{Field: "feats"}
		}
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(entry.Key)
		b.WriteByte('=')
		for j, v := range entry.Values {
			if v == "" {
				return "", &UnsupportedRendering{Field: "feats"}
			}
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(v)
		}
	}
	return b.String(), nil
}

func renderDeps(d *Deps) (string, error) {
	if d == nil {
		return "_", nil
	}
	if !d.Structured {
		return d.Raw, nil
	}
	if len(d.Pairs) == 0 {
		return "", &UnsupportedRendering{Field: "deps"}
	}
	var b strings.Builder
	for i, p := range d.Pairs {
		if p.Head < 0 || p.Relation == "" {
			return "", &UnsupportedRendering{Field: "deps"}
		}
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(strconv.Itoa(p.Head))
		b.WriteByte(':')
		b.WriteString(p.Relation)
	}
	return b.String(), nil
}
