package gobox

import "github.com/stackmint/gobox/internal/types"

// Public type aliases so SDK consumers can import only the gobox package.

// Requests
type (
	CreateCollaborationRequest  = types.CreateCollaborationRequest
	UpdateCollaborationRequest  = types.UpdateCollaborationRequest
	CreateAllowlistEntryRequest = types.CreateAllowlistEntryRequest
	CreateTermsOfServiceRequest = types.CreateTermsOfServiceRequest
	UpdateTermsOfServiceRequest = types.UpdateTermsOfServiceRequest
	ItemReference               = types.ItemReference
	Accessor                    = types.Accessor
	ListOptions                 = types.ListOptions

	// Domain entities
	Entity                   = types.Entity
	Collaboration            = types.Collaboration
	AllowlistEntry           = types.AllowlistEntry
	ExemptTarget             = types.ExemptTarget
	TermsOfService           = types.TermsOfService
	TermsOfServiceUserStatus = types.TermsOfServiceUserStatus

	// Collections
	Collaborations   = types.Collaborations
	AllowlistEntries = types.AllowlistEntries
	ExemptTargets    = types.ExemptTargets
	TermsOfServices  = types.TermsOfServices
	TOSUserStatuses  = types.TOSUserStatuses
)

// Enums
type (
	CollaborationRole    = types.CollaborationRole
	CollaborationStatus  = types.CollaborationStatus
	AllowlistDirection   = types.AllowlistDirection
	TermsOfServiceType   = types.TermsOfServiceType
	TermsOfServiceStatus = types.TermsOfServiceStatus
)

const (
	RoleEditor            = types.RoleEditor
	RoleViewer            = types.RoleViewer
	RolePreviewer         = types.RolePreviewer
	RoleUploader          = types.RoleUploader
	RolePreviewerUploader = types.RolePreviewerUploader
	RoleViewerUploader    = types.RoleViewerUploader
	RoleCoOwner           = types.RoleCoOwner
	RoleOwner             = types.RoleOwner

	StatusAccepted = types.StatusAccepted
	StatusPending  = types.StatusPending
	StatusRejected = types.StatusRejected

	DirectionInbound  = types.DirectionInbound
	DirectionOutbound = types.DirectionOutbound
	DirectionBoth     = types.DirectionBoth

	TOSTypeManaged  = types.TOSTypeManaged
	TOSTypeExternal = types.TOSTypeExternal

	TOSEnabled  = types.TOSEnabled
	TOSDisabled = types.TOSDisabled
)
