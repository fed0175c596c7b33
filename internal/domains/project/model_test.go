package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefDisplayName(t *testing.T) {
	assert.Equal(t, "Hafs", ResolvedRef("Hafs").DisplayName())
	assert.Equal(t, UnknownPlaceholder, UnresolvedRef().DisplayName())
}

func TestProjectViewLegacyShape(t *testing.T) {
	view := ProjectView{
		Key:          ProjectKey{ProjectID: 1, OwnerID: 9},
		ProjectName:  "Juz Amma",
		QuranVersion: ResolvedRef("Hafs"),
		Language:     ResolvedRef("Arabic"),
		Voice:        UnresolvedRef(),
	}

	got := view.Legacy()
	assert.Equal(t, map[string]string{
		"project_name":  "Juz Amma",
		"quran_version": "Hafs",
		"language":      "Arabic",
		"voice":         "Unknown",
	}, got)
}
