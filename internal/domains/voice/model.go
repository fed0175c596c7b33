package voice

import "time"

// Voice is a named narration profile, referenced by Projects.
type Voice struct {
	ID          int64     `json:"voice_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	FilePath    string    `json:"file_path"`
	CreatedAt   time.Time `json:"created_at"`
}
