package types

// ------------------------------
// Enumerated values defined by the remote service
// ------------------------------

// CollaborationRole is the access level granted by a collaboration.
type CollaborationRole string

const (
	RoleEditor            CollaborationRole = "editor"
	RoleViewer            CollaborationRole = "viewer"
	RolePreviewer         CollaborationRole = "previewer"
	RoleUploader          CollaborationRole = "uploader"
	RolePreviewerUploader CollaborationRole = "previewer uploader"
	RoleViewerUploader    CollaborationRole = "viewer uploader"
	RoleCoOwner           CollaborationRole = "co-owner"
	RoleOwner             CollaborationRole = "owner"
)

// CollaborationStatus is the acceptance state of a collaboration.
type CollaborationStatus string

const (
	StatusAccepted CollaborationStatus = "accepted"
	StatusPending  CollaborationStatus = "pending"
	StatusRejected CollaborationStatus = "rejected"
)

// AllowlistDirection restricts which side of a collaboration a domain
// allowlist entry applies to.
type AllowlistDirection string

const (
	DirectionInbound  AllowlistDirection = "inbound"
	DirectionOutbound AllowlistDirection = "outbound"
	DirectionBoth     AllowlistDirection = "both"
)

// TermsOfServiceType distinguishes terms shown to managed users from terms
// shown to external users.
type TermsOfServiceType string

const (
	TOSTypeManaged  TermsOfServiceType = "managed"
	TOSTypeExternal TermsOfServiceType = "external"
)

// TermsOfServiceStatus is whether a terms-of-service record is active.
type TermsOfServiceStatus string

const (
	TOSEnabled  TermsOfServiceStatus = "enabled"
	TOSDisabled TermsOfServiceStatus = "disabled"
)
