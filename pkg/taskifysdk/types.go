package taskifysdk

import (
	"bytes"
	"encoding/json"
	"time"
)

// ============================================================================
// Error Types
// ============================================================================

// ErrorResponse is the body of every non-validation error.
type ErrorResponse struct {
	// Error is the machine readable code (e.g. "forbidden", "not_found")
	Error string `json:"error"`

	// ErrorDescription is a human readable reason
	ErrorDescription string `json:"error_description"`
}

// ValidationErrorResponse is returned with 400 when a request body fails
// validation.
type ValidationErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// ============================================================================
// Nullable
// ============================================================================

// NullableString tells an absent field apart from an explicit null. It is
// used where null has a meaning of its own, e.g. moving an issue back to the
// backlog.
type NullableString struct {
	Set   bool
	Value *string
}

// Null is an explicit JSON null.
func Null() NullableString { return NullableString{Set: true} }

// Some wraps a value.
func Some(s string) NullableString { return NullableString{Set: true, Value: &s} }

func (n NullableString) IsZero() bool { return !n.Set }

func (n NullableString) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

func (n *NullableString) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

// ============================================================================
// Account Types
// ============================================================================

type RegisterRequest struct {
	Email    string `json:"email" example:"ada@example.com"`
	Name     string `json:"name" example:"Ada Lovelace"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"ada@example.com"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType" example:"Bearer"`
	ExpiresIn   int          `json:"expiresIn"` // seconds
}

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// UpdateProfileRequest changes only the fields that are present.
type UpdateProfileRequest struct {
	Name      *string `json:"name,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ============================================================================
// Workspace Types
// ============================================================================

type CreateWorkspaceRequest struct {
	Name string `json:"name" example:"Acme"`
	URL  string `json:"url" example:"acme"`
}

// WorkspaceResponse carries the caller's role and invite status when listed.
type WorkspaceResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	OwnerID   string    `json:"ownerId"`
	Role      string    `json:"role,omitempty" example:"ADMIN"`
	Status    string    `json:"status,omitempty" example:"ACCEPTED"`
	CreatedAt time.Time `json:"createdAt"`
}

type ListWorkspacesResponse struct {
	Workspaces []WorkspaceResponse `json:"workspaces"`
}

// ============================================================================
// Membership Types
// ============================================================================

// InviteMemberRequest names the invitee by email or by user id.
type InviteMemberRequest struct {
	Email  string `json:"email,omitempty"`
	UserID string `json:"userId,omitempty"`
	Role   string `json:"role" example:"MEMBER"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" example:"GUEST"`
}

type MembershipResponse struct {
	WorkspaceID string    `json:"workspaceId"`
	UserID      string    `json:"userId"`
	Role        string    `json:"role"`
	Status      string    `json:"status"`
	InvitedBy   string    `json:"invitedBy,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type MemberResponse struct {
	MembershipResponse
	Email string `json:"email"`
	Name  string `json:"name"`
}

type ListMembersResponse struct {
	Members []MemberResponse `json:"members"`
}

type PendingInviteResponse struct {
	WorkspaceID   string    `json:"workspaceId"`
	WorkspaceName string    `json:"workspaceName"`
	Role          string    `json:"role"`
	InvitedBy     string    `json:"invitedBy,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ============================================================================
// Project Types
// ============================================================================

type CreateProjectRequest struct {
	WorkspaceID string `json:"workspaceId"`
	Name        string `json:"name"`
	Key         string `json:"key,omitempty"`
	Description string `json:"description,omitempty"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type ProjectResponse struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspaceId"`
	Name        string    `json:"name"`
	Key         string    `json:"key"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ListProjectsResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

// ============================================================================
// Sprint Types
// ============================================================================

type CreateSprintRequest struct {
	Name      string     `json:"name"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// UpdateSprintRequest renames and/or transitions a sprint.
type UpdateSprintRequest struct {
	Name   *string `json:"name,omitempty"`
	Status *string `json:"status,omitempty" example:"ACTIVE"`
}

type SprintResponse struct {
	ID        string     `json:"id"`
	ProjectID string     `json:"projectId"`
	Name      string     `json:"name"`
	Status    string     `json:"status"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type ListSprintsResponse struct {
	Sprints []SprintResponse `json:"sprints"`
}

// ============================================================================
// Issue Types
// ============================================================================

type CreateIssueRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Type        string  `json:"type,omitempty" example:"BUG"`
	Priority    string  `json:"priority,omitempty" example:"HIGH"`
	SprintID    *string `json:"sprintId,omitempty"`
	AssigneeID  *string `json:"assigneeId,omitempty"`
}

// UpdateIssueRequest changes the fields that are present. A null sprintId
// moves the issue to the backlog; a null assigneeId unassigns it.
type UpdateIssueRequest struct {
	Title        *string        `json:"title,omitempty"`
	Description  *string        `json:"description,omitempty"`
	Type         *string        `json:"type,omitempty"`
	Priority     *string        `json:"priority,omitempty"`
	Status       *string        `json:"status,omitempty" example:"IN_PROGRESS"`
	ListPosition *float64       `json:"listPosition,omitempty"`
	SprintID     NullableString `json:"sprintId,omitzero" swaggertype:"string"`
	AssigneeID   NullableString `json:"assigneeId,omitzero" swaggertype:"string"`
}

type IssueResponse struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"projectId"`
	WorkspaceID  string    `json:"workspaceId"`
	TicketNumber int64     `json:"ticketNumber"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Type         string    `json:"type"`
	Priority     string    `json:"priority"`
	Status       string    `json:"status"`
	SprintID     *string   `json:"sprintId"`
	AssigneeID   *string   `json:"assigneeId"`
	ReporterID   string    `json:"reporterId"`
	ListPosition float64   `json:"listPosition"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// Set on cross-workspace feeds only.
	ProjectName   string `json:"projectName,omitempty"`
	ProjectKey    string `json:"projectKey,omitempty"`
	WorkspaceName string `json:"workspaceName,omitempty"`
}

type ListIssuesResponse struct {
	Issues []IssueResponse `json:"issues"`
}

// ============================================================================
// Comment Types
// ============================================================================

type CreateCommentRequest struct {
	IssueID string `json:"issueId"`
	Content string `json:"content"`
}

type UpdateCommentRequest struct {
	Content string `json:"content"`
}

type CommentResponse struct {
	ID        string    `json:"id"`
	IssueID   string    `json:"issueId"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	AuthorName   string `json:"authorName,omitempty"`
	IssueTitle   string `json:"issueTitle,omitempty"`
	TicketNumber int64  `json:"ticketNumber,omitempty"`
	ProjectID    string `json:"projectId,omitempty"`
	ProjectKey   string `json:"projectKey,omitempty"`
	WorkspaceID  string `json:"workspaceId,omitempty"`
}

type ListCommentsResponse struct {
	Comments []CommentResponse `json:"comments"`
}

// ============================================================================
// Dashboard Types
// ============================================================================

type DashboardResponse struct {
	Workspaces     []WorkspaceResponse     `json:"workspaces"`
	PendingInvites []PendingInviteResponse `json:"pendingInvites"`
	Projects       []ProjectResponse       `json:"projects"`
	Sprints        []SprintResponse        `json:"sprints"`
	Issues         []IssueResponse         `json:"issues"`
	Comments       []CommentResponse       `json:"comments"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse is returned by /livez and /readyz. Checks is only set by
// /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}
