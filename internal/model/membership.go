package model

import "time"

// Role is an organization privilege level, ordered owner > admin > editor >
// analyst > viewer.
type Role string

const (
	RoleOwner   Role = "owner"
	RoleAdmin   Role = "admin"
	RoleEditor  Role = "editor"
	RoleAnalyst Role = "analyst"
	RoleViewer  Role = "viewer"
)

// AllRoles is the full enumeration, used where bare membership suffices.
var AllRoles = []Role{RoleOwner, RoleAdmin, RoleEditor, RoleAnalyst, RoleViewer}

// AgentCreatorRoles are the roles allowed to create agents in an organization.
var AgentCreatorRoles = []Role{RoleOwner, RoleAdmin, RoleEditor}

// Membership binds a user to an organization with a role. Unique per
// (org_id, user_id) pair; never mutated after creation.
type Membership struct {
	CreatedAt time.Time `json:"created_at"`
	Role      Role      `json:"role"`
	OrgID     int64     `json:"org_id,string"`
	UserID    int64     `json:"user_id,string"`
}
