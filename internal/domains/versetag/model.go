package versetag

import (
	"time"

	"recitation-backend/internal/domains/project"
)

// VerseTagKey is the three-part identity of a VerseTag: the tag id is scoped
// to the verse it annotates, and the full triple addresses the annotation.
type VerseTagKey struct {
	VerseTagID int64 `json:"verse_tag_id"`
	VerseID    int64 `json:"verse_id"`
	TagID      int64 `json:"tag_id"`
}

// VerseTag marks a word span of one verse with a Tag, on behalf of exactly
// one Project. The project binding repeats the full (Project_id, User_id)
// pair, so an annotation can never outlive its ownership chain.
type VerseTag struct {
	Key            VerseTagKey        `json:"key"`
	Project        project.ProjectKey `json:"project"`
	StartWordIndex int                `json:"start_word_index"`
	EndWordIndex   int                `json:"end_word_index"`
	CreatedAt      time.Time          `json:"created_at"`
}
