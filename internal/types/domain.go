package types

import (
	"encoding/json"
	"time"
)

// ------------------------------
// Domain records
// ------------------------------
//
// These mirror the service's JSON payloads on the wire. The service owns the
// schema; fields not modeled here survive round trips only where declared as
// json.RawMessage.

// Entity is the minimal typed reference the service embeds in most payloads
// (users, groups, files, folders, enterprises).
type Entity struct {
	Type  string `json:"type"`
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Login string `json:"login,omitempty"`
}

// Collaboration grants a user or group a role on a file or folder.
type Collaboration struct {
	Type           string              `json:"type"`
	ID             string              `json:"id"`
	Item           *Entity             `json:"item,omitempty"`
	AccessibleBy   *Entity             `json:"accessible_by,omitempty"`
	CreatedBy      *Entity             `json:"created_by,omitempty"`
	Role           CollaborationRole   `json:"role"`
	Status         CollaborationStatus `json:"status,omitempty"`
	CanViewPath    bool                `json:"can_view_path,omitempty"`
	InviteEmail    string              `json:"invite_email,omitempty"`
	ExpiresAt      *time.Time          `json:"expires_at,omitempty"`
	CreatedAt      *time.Time          `json:"created_at,omitempty"`
	ModifiedAt     *time.Time          `json:"modified_at,omitempty"`
	AcknowledgedAt *time.Time          `json:"acknowledged_at,omitempty"`
}

// AllowlistEntry restricts collaboration to a domain in one or both directions.
type AllowlistEntry struct {
	Type       string             `json:"type"`
	ID         string             `json:"id"`
	Domain     string             `json:"domain"`
	Direction  AllowlistDirection `json:"direction"`
	Enterprise *Entity            `json:"enterprise,omitempty"`
	CreatedAt  *time.Time         `json:"created_at,omitempty"`
}

// ExemptTarget marks a user as exempt from the collaboration allowlist.
type ExemptTarget struct {
	Type       string     `json:"type"`
	ID         string     `json:"id"`
	User       *Entity    `json:"user,omitempty"`
	Enterprise *Entity    `json:"enterprise,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	ModifiedAt *time.Time `json:"modified_at,omitempty"`
}

// TermsOfService is an enterprise terms-of-service record.
type TermsOfService struct {
	Type       string               `json:"type"`
	ID         string               `json:"id"`
	Status     TermsOfServiceStatus `json:"status"`
	TOSType    TermsOfServiceType   `json:"tos_type"`
	Text       string               `json:"text"`
	Enterprise *Entity              `json:"enterprise,omitempty"`
	CreatedAt  *time.Time           `json:"created_at,omitempty"`
	ModifiedAt *time.Time           `json:"modified_at,omitempty"`
}

// TermsOfServiceUserStatus records whether a user accepted a terms-of-service.
type TermsOfServiceUserStatus struct {
	Type       string          `json:"type"`
	ID         string          `json:"id"`
	TOS        *TermsOfService `json:"tos,omitempty"`
	User       *Entity         `json:"user,omitempty"`
	IsAccepted bool            `json:"is_accepted"`
	CreatedAt  *time.Time      `json:"created_at,omitempty"`
	ModifiedAt *time.Time      `json:"modified_at,omitempty"`
}

// ErrorBody is the service's error payload, attached to non-success statuses.
type ErrorBody struct {
	Type        string          `json:"type"`
	Status      int             `json:"status"`
	Code        string          `json:"code"`
	Message     string          `json:"message"`
	RequestID   string          `json:"request_id"`
	ContextInfo json.RawMessage `json:"context_info,omitempty"`
}
