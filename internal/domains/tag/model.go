package tag

// Tag is a reusable annotation label referenced by verse tags.
type Tag struct {
	ID          int64   `json:"tag_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}
