package model

// ReleaseInput holds the version metadata entered by the operator
type ReleaseInput struct {
	VersionName string // Human readable version name
	Tag         string // Version tag suffix
	Changes     string // Change description, used as commit message and release body
}

// FullTag combines the version name and tag into the release tag
func (r ReleaseInput) FullTag() string {
	return r.VersionName + " " + r.Tag
}

// Valid reports whether all required fields are present
func (r ReleaseInput) Valid() bool {
	return r.VersionName != "" && r.Tag != "" && r.Changes != ""
}
