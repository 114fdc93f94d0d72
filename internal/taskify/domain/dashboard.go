package domain

// Dashboard is the cross-workspace summary for one user. Every slice only
// contains data from workspaces the user has an accepted membership in.
type Dashboard struct {
	Workspaces     []WorkspaceView
	PendingInvites []PendingInvite
	Projects       []Project
	Sprints        []Sprint
	Issues         []IssueSummary
	Comments       []CommentView
}
