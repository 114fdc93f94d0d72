package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/taskify/internal/taskify/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement it and
// expose one sub-repository per aggregate. A Tx exposes the same repositories
// bound to the transaction, and cannot start a nested one.
type Store interface {
	Users() Users
	PasswordResets() PasswordResets
	Workspaces() Workspaces
	Memberships() Memberships
	Projects() Projects
	Sprints() Sprints
	Issues() Issues
	Comments() Comments

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise. Inside fn only the repositories of tx may be
	// used.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a user. A duplicate email is ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail matches case-insensitively.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	UpdateProfile(ctx context.Context, userID, name, avatarURL string) error
	UpdatePasswordHash(ctx context.Context, userID, hash string) error
}

type PasswordResets interface {
	CreatePasswordReset(ctx context.Context, r domain.PasswordReset) error
	GetPasswordReset(ctx context.Context, tokenHash string) (domain.PasswordReset, error)

	// DeletePasswordReset returns ErrNotFound when nothing was deleted, so a
	// token can only be consumed once.
	DeletePasswordReset(ctx context.Context, tokenHash string) error
	DeleteUserPasswordResets(ctx context.Context, userID string) error
	DeleteExpiredPasswordResets(ctx context.Context, now time.Time) (int64, error)
}

type Workspaces interface {
	// CreateWorkspace inserts a workspace. A duplicate URL slug is
	// ErrAlreadyExists.
	CreateWorkspace(ctx context.Context, w domain.Workspace) error
	GetWorkspace(ctx context.Context, id string) (domain.Workspace, error)

	// ListWorkspacesForUser returns every workspace the user owns or has a
	// membership row in (any status). Role and Status are empty when the
	// user owns the workspace without a membership row.
	ListWorkspacesForUser(ctx context.Context, userID string) ([]domain.WorkspaceView, error)

	// DeleteWorkspace cascades to memberships, projects, sprints, issues and
	// comments.
	DeleteWorkspace(ctx context.Context, id string) error
}

type Memberships interface {
	// CreateMembership fails with ErrAlreadyExists if the (workspace, user)
	// pair already has a row, whatever its status.
	CreateMembership(ctx context.Context, m domain.Membership) error
	GetMembership(ctx context.Context, workspaceID, userID string) (domain.Membership, error)
	ListMembers(ctx context.Context, workspaceID string) ([]domain.Member, error)
	ListMembershipsByUser(ctx context.Context, userID string) ([]domain.Membership, error)
	ListPendingInvites(ctx context.Context, userID string) ([]domain.PendingInvite, error)
	UpdateMembershipRole(ctx context.Context, workspaceID, userID string, role domain.Role) error

	// UpdateMembershipStatus only changes a row currently in status from;
	// otherwise it returns ErrNotFound.
	UpdateMembershipStatus(ctx context.Context, workspaceID, userID string, from, to domain.InviteStatus) error

	// DeletePendingMembership removes a row only while it is still PENDING.
	DeletePendingMembership(ctx context.Context, workspaceID, userID string) error
}

type Projects interface {
	CreateProject(ctx context.Context, p domain.Project) error
	GetProject(ctx context.Context, id string) (domain.Project, error)

	// ListProjects returns the projects of the given workspaces, newest first.
	ListProjects(ctx context.Context, workspaceIDs ...string) ([]domain.Project, error)
	UpdateProject(ctx context.Context, p domain.Project) error
	DeleteProject(ctx context.Context, id string) error

	// NextTicketNumber atomically increments and returns the project's issue
	// counter. Call it inside the transaction that inserts the issue.
	NextTicketNumber(ctx context.Context, projectID string) (int64, error)
}

type Sprints interface {
	CreateSprint(ctx context.Context, s domain.Sprint) error
	GetSprint(ctx context.Context, id string) (domain.Sprint, error)
	ListSprintsByProject(ctx context.Context, projectID string) ([]domain.Sprint, error)

	// ListSprintsByWorkspaces returns the sprints of every project in the
	// given workspaces.
	ListSprintsByWorkspaces(ctx context.Context, workspaceIDs ...string) ([]domain.Sprint, error)
	UpdateSprint(ctx context.Context, s domain.Sprint) error
	DeleteSprint(ctx context.Context, id string) error
}

type Issues interface {
	CreateIssue(ctx context.Context, i domain.Issue) error
	GetIssue(ctx context.Context, id string) (domain.Issue, error)

	// ListIssues returns a project's issues ordered by list position.
	ListIssues(ctx context.Context, projectID string, f domain.IssueFilter) ([]domain.Issue, error)

	// ListIssueSummaries returns the issues of the given workspaces, most
	// recently updated first.
	ListIssueSummaries(ctx context.Context, workspaceIDs ...string) ([]domain.IssueSummary, error)

	// ListAssignedOpen returns issues assigned to the user that are not DONE,
	// restricted to the given workspaces.
	ListAssignedOpen(ctx context.Context, assigneeID string, workspaceIDs ...string) ([]domain.IssueSummary, error)
	UpdateIssue(ctx context.Context, i domain.Issue) error
	DeleteIssue(ctx context.Context, id string) error
}

type Comments interface {
	CreateComment(ctx context.Context, c domain.Comment) error
	GetComment(ctx context.Context, id string) (domain.Comment, error)

	// ListCommentsByIssue returns comments oldest first.
	ListCommentsByIssue(ctx context.Context, issueID string) ([]domain.CommentView, error)

	// ListRecentComments returns up to limit comments on issues in the given
	// workspaces, newest first.
	ListRecentComments(ctx context.Context, limit int, workspaceIDs ...string) ([]domain.CommentView, error)
	UpdateCommentContent(ctx context.Context, id, content string, at time.Time) error
	DeleteComment(ctx context.Context, id string) error
}
