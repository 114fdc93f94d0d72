package domain

import (
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
	RoleGuest  Role = "GUEST"
)

// Roles lists every role, most privileged first.
var Roles = []Role{RoleAdmin, RoleMember, RoleGuest}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleMember, RoleGuest:
		return true
	}
	return false
}

// ParseRole is case-insensitive; unknown values return false.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	return r, r.Valid()
}

type InviteStatus string

const (
	InvitePending  InviteStatus = "PENDING"
	InviteAccepted InviteStatus = "ACCEPTED"
)

// Membership is keyed by (WorkspaceID, UserID); the store guarantees at most
// one row per pair.
type Membership struct {
	WorkspaceID string
	UserID      string
	Role        Role
	Status      InviteStatus
	InvitedBy   string // empty for the workspace owner
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (m Membership) Accepted() bool { return m.Status == InviteAccepted }

// Member is a membership joined with the user it belongs to.
type Member struct {
	Membership
	Email string
	Name  string
}

// PendingInvite is what the dashboard shows for an unaccepted membership.
type PendingInvite struct {
	WorkspaceID   string
	WorkspaceName string
	Role          Role
	InvitedBy     string
	CreatedAt     time.Time
}
