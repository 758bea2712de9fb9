package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lukeod/conllu/types"
)

func intp(n int) *int { return &n }

func TestSentenceIsValidMinimal(t *testing.T) {
	s := types.Sentence{
		Elements: []types.Element{types.Word{Index: 1}},
	}
	assert.True(t, s.IsValid())
}

func TestSentenceIsValidEmpty(t *testing.T) {
	assert.False(t, types.Sentence{}.IsValid())
}

func TestSentenceIsValidRequiresWord(t *testing.T) {
	s := types.Sentence{
		Elements: []types.Element{types.EmptyNode{MainIndex: 0, SubIndex: 1}},
	}
	assert.False(t, s.IsValid())
}

func TestSentenceIsValidWordIndexContinuity(t *testing.T) {
	ok := types.Sentence{Elements: []types.Element{
		types.Word{Index: 1}, types.Word{Index: 2}, types.Word{Index: 3},
	}}
	assert.True(t, ok.IsValid())

	gap := types.Sentence{Elements: []types.Element{
		types.Word{Index: 1}, types.Word{Index: 3},
	}}
	assert.False(t, gap.IsValid())
}

func TestSentenceIsValidMultiwordPlacement(t *testing.T) {
	ok := types.Sentence{Elements: []types.Element{
		types.Multiword{FirstIndex: 1, LastIndex: 2},
		types.Word{Index: 1}, types.Word{Index: 2},
	}}
	assert.True(t, ok.IsValid())

	notFollowedByWord := types.Sentence{Elements: []types.Element{
		types.Multiword{FirstIndex: 1, LastIndex: 2},
		types.Word{Index: 2},
	}}
	assert.False(t, notFollowedByWord.IsValid())

	overlapping := types.Sentence{Elements: []types.Element{
		types.Multiword{FirstIndex: 1, LastIndex: 2},
		types.Word{Index: 1},
		types.Multiword{FirstIndex: 2, LastIndex: 3},
		types.Word{Index: 2}, types.Word{Index: 3},
	}}
	assert.False(t, overlapping.IsValid())
}

func TestSentenceIsValidEmptyNodeNumbering(t *testing.T) {
	ok := types.Sentence{Elements: []types.Element{
		types.EmptyNode{MainIndex: 0, SubIndex: 1},
		types.EmptyNode{MainIndex: 0, SubIndex: 2},
		types.Word{Index: 1},
		types.EmptyNode{MainIndex: 1, SubIndex: 1},
	}}
	assert.True(t, ok.IsValid())

	badSubIndex := types.Sentence{Elements: []types.Element{
		types.EmptyNode{MainIndex: 0, SubIndex: 2},
		types.Word{Index: 1},
	}}
	assert.False(t, badSubIndex.IsValid())
}

func TestSentenceIsValidHeadBounds(t *testing.T) {
	ok := types.Sentence{Elements: []types.Element{
		types.Word{Index: 1, Head: intp(0)},
		types.Word{Index: 2, Head: intp(1)},
	}}
	assert.True(t, ok.IsValid())

	outOfBounds := types.Sentence{Elements: []types.Element{
		types.Word{Index: 1, Head: intp(5)},
	}}
	assert.False(t, outOfBounds.IsValid())
}

func TestWordIsValid(t *testing.T) {
	assert.True(t, types.Word{Index: 1}.IsValid())
	assert.False(t, types.Word{Index: 0}.IsValid())
}

func TestMultiwordIsValid(t *testing.T) {
	assert.True(t, types.Multiword{FirstIndex: 1, LastIndex: 2}.IsValid())
	assert.False(t, types.Multiword{FirstIndex: 1, LastIndex: 1}.IsValid())
	assert.False(t, types.Multiword{FirstIndex: 0, LastIndex: 2}.IsValid())
}

func TestEmptyNodeIsValid(t *testing.T) {
	assert.True(t, types.EmptyNode{MainIndex: 0, SubIndex: 1}.IsValid())
	assert.False(t, types.EmptyNode{MainIndex: -1, SubIndex: 1}.IsValid())
	assert.False(t, types.EmptyNode{MainIndex: 0, SubIndex: 0}.IsValid())
}
