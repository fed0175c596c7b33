package audiorequest

import (
	"time"

	"recitation-backend/internal/domains/project"
)

// RequestKey is the three-part identity of an AudioRequest. The request id
// is scoped to its project, so the full (request_id, Project_id, User_id)
// triple is what addresses a request.
type RequestKey struct {
	RequestID int64 `json:"request_id"`
	ProjectID int64 `json:"project_id"`
	OwnerID   int64 `json:"user_id"`
}

// ProjectKey returns the parent project half of the key.
func (k RequestKey) ProjectKey() project.ProjectKey {
	return project.ProjectKey{ProjectID: k.ProjectID, OwnerID: k.OwnerID}
}

// Status is the lifecycle state of an audio generation request.
//
//	pending -> in_progress -> completed
//	                       -> failed
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed from s.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// CanTransitionTo reports whether s -> next is a legal lifecycle step.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusInProgress
	case StatusInProgress:
		return next == StatusCompleted || next == StatusFailed
	}
	return false
}

// AudioRequest is one audio generation job over a verse range of a project.
// CompletedAt is set exactly when the request reaches a terminal status.
type AudioRequest struct {
	Key           RequestKey `json:"key"`
	Status        Status     `json:"status"`
	AudioFilePath string     `json:"audio_file_path"`
	RequestedAt   time.Time  `json:"requested_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	StartVerse    int        `json:"start_verse"`
	EndVerse      int        `json:"end_verse"`
	IncludeTags   bool       `json:"include_tags"`
}
