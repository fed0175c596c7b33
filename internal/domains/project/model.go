package project

// ProjectKey is the two-part identity of a Project. A Project is owned by
// exactly one User and is never addressable without that owner: every
// reference to a Project carries this value, never a loose Project_id.
type ProjectKey struct {
	ProjectID int64 `json:"project_id"`
	OwnerID   int64 `json:"user_id"`
}

func (k ProjectKey) IsZero() bool {
	return k.ProjectID == 0 && k.OwnerID == 0
}

// Project is a named unit of work referencing one Voice and one QuranVersion.
type Project struct {
	Key       ProjectKey `json:"key"`
	Name      string     `json:"name"`
	VoiceID   int64      `json:"voice_id"`
	VersionID int64      `json:"version_id"`
}

// UnknownPlaceholder is what an unresolved reference degrades to in listings.
const UnknownPlaceholder = "Unknown"

// Ref is a resolved-or-placeholder reference. Missing reference data never
// fails a listing; it shows up as unresolved instead of being guessed at.
type Ref struct {
	Name     string `json:"name"`
	Resolved bool   `json:"resolved"`
}

func ResolvedRef(name string) Ref {
	return Ref{Name: name, Resolved: true}
}

func UnresolvedRef() Ref {
	return Ref{}
}

// DisplayName returns the reference name, or the placeholder when the
// reference could not be resolved.
func (r Ref) DisplayName() string {
	if !r.Resolved {
		return UnknownPlaceholder
	}
	return r.Name
}

// ProjectView is one row of the home listing: the project resolved against
// its QuranVersion and Voice reference data.
type ProjectView struct {
	Key          ProjectKey `json:"key"`
	ProjectName  string     `json:"project_name"`
	QuranVersion Ref        `json:"quran_version"`
	Language     Ref        `json:"language"`
	Voice        Ref        `json:"voice"`
}

// Legacy renders the view in the shape the legacy home page consumed.
func (v ProjectView) Legacy() map[string]string {
	return map[string]string{
		"project_name":  v.ProjectName,
		"quran_version": v.QuranVersion.DisplayName(),
		"language":      v.Language.DisplayName(),
		"voice":         v.Voice.DisplayName(),
	}
}
