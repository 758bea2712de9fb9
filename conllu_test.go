package conllu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukeod/conllu"
)

func TestParseAndToConlluRoundTrip(t *testing.T) {
	input := "1\tFoo\t_\t_\t_\t_\t_\t_\t_\t_\n\n"
	sentences, err := conllu.Parse(input)
	require.NoError(t, err)
	require.Len(t, sentences, 1)
	assert.True(t, sentences[0].IsValid())

	out, err := conllu.ToConllu(sentences)
	require.NoError(t, err)
	assert.Equal(t, input, out)
}

func TestParseMultipleSentencesRoundTrip(t *testing.T) {
	input := "# sent_id = 1\n1\tFoo\t_\t_\t_\t_\t_\t_\t_\t_\n\n1\tBar\t_\t_\t_\t_\t_\t_\t_\t_\n\n"
	sentences, err := conllu.Parse(input)
	require.NoError(t, err)
	require.Len(t, sentences, 2)

	out, err := conllu.ToConllu(sentences)
	require.NoError(t, err)
	assert.Equal(t, input, out)
}

func TestParseMultiwordShapeViolationSurfaces(t *testing.T) {
	_, err := conllu.Parse("1-2\tFoobar\tNotAbsent\t_\t_\t_\t_\t_\t_\t_\n\n")
	require.Error(t, err)
}

func TestDumpDoesNotPanic(t *testing.T) {
	sentences, err := conllu.Parse("1\tFoo\t_\t_\t_\t_\t_\t_\t_\t_\n\n")
	require.NoError(t, err)
	assert.NotEmpty(t, conllu.Dump(sentences[0]))
}

func TestBuildSentenceProgrammatically(t *testing.T) {
	form := "run"
	lemma := "run"
	s := conllu.Sentence{
		Elements: []conllu.Element{
			conllu.Word{
				Index: 1, Form: &form, Lemma: &lemma,
				Feats: conllu.StructuredFeats([]conllu.FeatsEntry{{Key: "Tense", Values: []string{"Pres"}}}),
			},
		},
	}
	assert.True(t, s.IsValid())
	text, err := conllu.ToConllu([]conllu.Sentence{s})
	require.NoError(t, err)
	assert.Equal(t, "1\trun\trun\t_\t_\tTense=Pres\t_\t_\t_\t_\n\n", text)
}
