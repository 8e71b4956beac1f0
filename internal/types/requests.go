package types

// ------------------------------
// Request Types
// ------------------------------

// ItemReference names the file or folder a collaboration applies to.
type ItemReference struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Accessor identifies who a collaboration is granted to: a user by id or
// login, or a group by id.
type Accessor struct {
	Type  string `json:"type"`
	ID    string `json:"id,omitempty"`
	Login string `json:"login,omitempty"`
}

// CreateCollaborationRequest holds parameters for a new collaboration.
// Notify is sent as a query flag, not in the body.
type CreateCollaborationRequest struct {
	Item         ItemReference     `json:"item"`
	AccessibleBy Accessor          `json:"accessible_by"`
	Role         CollaborationRole `json:"role"`
	CanViewPath  *bool             `json:"can_view_path,omitempty"`
	Notify       *bool             `json:"-"`
}

// UpdateCollaborationRequest changes a collaboration's role and/or status.
type UpdateCollaborationRequest struct {
	Role   CollaborationRole   `json:"role,omitempty"`
	Status CollaborationStatus `json:"status,omitempty"`
}

// CreateAllowlistEntryRequest holds parameters for a new domain allowlist entry.
type CreateAllowlistEntryRequest struct {
	Domain    string             `json:"domain"`
	Direction AllowlistDirection `json:"direction"`
}

// CreateExemptTargetRequest exempts a user from the allowlist.
type CreateExemptTargetRequest struct {
	User Accessor `json:"user"`
}

// CreateTermsOfServiceRequest holds parameters for a new terms-of-service record.
type CreateTermsOfServiceRequest struct {
	Status  TermsOfServiceStatus `json:"status"`
	TOSType TermsOfServiceType   `json:"tos_type"`
	Text    string               `json:"text"`
}

// UpdateTermsOfServiceRequest changes a record's status and/or text.
type UpdateTermsOfServiceRequest struct {
	Status TermsOfServiceStatus `json:"status,omitempty"`
	Text   string               `json:"text,omitempty"`
}

// TOSReference names a terms-of-service record inside a user-status payload.
type TOSReference struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// CreateTOSUserStatusRequest records a user's acceptance decision.
type CreateTOSUserStatusRequest struct {
	TOS        TOSReference `json:"tos"`
	User       Accessor     `json:"user"`
	IsAccepted bool         `json:"is_accepted"`
}

// UpdateTOSUserStatusRequest flips a user's acceptance decision.
type UpdateTOSUserStatusRequest struct {
	IsAccepted bool `json:"is_accepted"`
}

// ListOptions carries marker pagination parameters for list endpoints.
// Zero values are omitted from the query string.
type ListOptions struct {
	Limit  int
	Marker string
}
