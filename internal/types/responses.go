package types

// ------------------------------
// Response Types
// ------------------------------

// Collaborations wraps offset-style collection responses for collaborations.
type Collaborations struct {
	TotalCount int             `json:"total_count"`
	Entries    []Collaboration `json:"entries"`
}

// AllowlistEntries is a marker-paginated collection of allowlist entries.
type AllowlistEntries struct {
	Entries    []AllowlistEntry `json:"entries"`
	Limit      int              `json:"limit"`
	NextMarker string           `json:"next_marker,omitempty"`
}

// ExemptTargets is a marker-paginated collection of exempt targets.
type ExemptTargets struct {
	Entries    []ExemptTarget `json:"entries"`
	Limit      int            `json:"limit"`
	NextMarker string         `json:"next_marker,omitempty"`
}

// TermsOfServices wraps the terms-of-service collection response.
type TermsOfServices struct {
	TotalCount int              `json:"total_count"`
	Entries    []TermsOfService `json:"entries"`
}

// TOSUserStatuses wraps the user-status collection response.
type TOSUserStatuses struct {
	TotalCount int                        `json:"total_count"`
	Entries    []TermsOfServiceUserStatus `json:"entries"`
}
