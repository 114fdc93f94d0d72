package domain

import "time"

type Workspace struct {
	ID        string
	Name      string
	URL       string // unique slug
	OwnerID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WorkspaceView is a workspace as seen by one user, annotated with that
// user's membership.
type WorkspaceView struct {
	Workspace
	Role   Role
	Status InviteStatus
}
