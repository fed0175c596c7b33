package audiorequest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateAudioRequestValidation(t *testing.T) {
	valid := CreateAudioRequestRequest{
		AudioFilePath: "/audio/out.mp3",
		StartVerse:    1,
		EndVerse:      7,
	}
	assert.NoError(t, valid.Validate())

	singleVerse := valid
	singleVerse.StartVerse = 3
	singleVerse.EndVerse = 3
	assert.NoError(t, singleVerse.Validate(), "a single-verse range is legal")

	inverted := valid
	inverted.StartVerse = 7
	inverted.EndVerse = 1
	assert.Error(t, inverted.Validate())

	zeroStart := valid
	zeroStart.StartVerse = 0
	assert.Error(t, zeroStart.Validate(), "verse numbers are 1-based")

	noPath := valid
	noPath.AudioFilePath = ""
	assert.Error(t, noPath.Validate())

	noRange := CreateAudioRequestRequest{AudioFilePath: "/audio/out.mp3"}
	assert.Error(t, noRange.Validate())
}

func TestUpdateStatusRequestValidation(t *testing.T) {
	assert.NoError(t, UpdateStatusRequest{Status: StatusInProgress}.Validate())
	assert.ErrorIs(t, UpdateStatusRequest{Status: "bogus"}.Validate(), ErrInvalidStatus)
	assert.ErrorIs(t, UpdateStatusRequest{}.Validate(), ErrInvalidStatus)
}
