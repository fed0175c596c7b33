package versetag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateVerseTagValidation(t *testing.T) {
	valid := CreateVerseTagRequest{
		VerseID:        10,
		TagID:          2,
		StartWordIndex: 1,
		EndWordIndex:   4,
	}
	assert.NoError(t, valid.Validate())

	singleWord := valid
	singleWord.StartWordIndex = 3
	singleWord.EndWordIndex = 3
	assert.NoError(t, singleWord.Validate(), "a single-word span is legal")

	inverted := valid
	inverted.StartWordIndex = 5
	inverted.EndWordIndex = 2
	assert.Error(t, inverted.Validate())

	zeroStart := valid
	zeroStart.StartWordIndex = 0
	assert.Error(t, zeroStart.Validate(), "word indexes are 1-based")

	noVerse := valid
	noVerse.VerseID = 0
	assert.Error(t, noVerse.Validate())

	noTag := valid
	noTag.TagID = 0
	assert.Error(t, noTag.Validate())
}
