package http

import (
	"strings"

	"github.com/aussiebroadwan/taskify/internal/taskify/domain"
	"github.com/aussiebroadwan/taskify/pkg/taskifysdk"
	"github.com/samber/lo"
)

func toUser(u domain.User) taskifysdk.UserResponse {
	return taskifysdk.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}

func toWorkspace(w domain.Workspace) taskifysdk.WorkspaceResponse {
	return taskifysdk.WorkspaceResponse{
		ID:        w.ID,
		Name:      w.Name,
		URL:       w.URL,
		OwnerID:   w.OwnerID,
		CreatedAt: w.CreatedAt,
	}
}

func toWorkspaceView(v domain.WorkspaceView, _ int) taskifysdk.WorkspaceResponse {
	out := toWorkspace(v.Workspace)
	out.Role = string(v.Role)
	out.Status = string(v.Status)
	return out
}

func toMembership(m domain.Membership) taskifysdk.MembershipResponse {
	return taskifysdk.MembershipResponse{
		WorkspaceID: m.WorkspaceID,
		UserID:      m.UserID,
		Role:        string(m.Role),
		Status:      string(m.Status),
		InvitedBy:   m.InvitedBy,
		CreatedAt:   m.CreatedAt,
	}
}

func toMember(m domain.Member, _ int) taskifysdk.MemberResponse {
	return taskifysdk.MemberResponse{
		MembershipResponse: toMembership(m.Membership),
		Email:              m.Email,
		Name:               m.Name,
	}
}

func toPendingInvite(p domain.PendingInvite, _ int) taskifysdk.PendingInviteResponse {
	return taskifysdk.PendingInviteResponse{
		WorkspaceID:   p.WorkspaceID,
		WorkspaceName: p.WorkspaceName,
		Role:          string(p.Role),
		InvitedBy:     p.InvitedBy,
		CreatedAt:     p.CreatedAt,
	}
}

func toProject(p domain.Project, _ int) taskifysdk.ProjectResponse {
	return taskifysdk.ProjectResponse{
		ID:          p.ID,
		WorkspaceID: p.WorkspaceID,
		Name:        p.Name,
		Key:         p.Key,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toSprint(s domain.Sprint, _ int) taskifysdk.SprintResponse {
	return taskifysdk.SprintResponse{
		ID:        s.ID,
		ProjectID: s.ProjectID,
		Name:      s.Name,
		Status:    string(s.Status),
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toIssue(i domain.Issue, _ int) taskifysdk.IssueResponse {
	return taskifysdk.IssueResponse{
		ID:           i.ID,
		ProjectID:    i.ProjectID,
		WorkspaceID:  i.WorkspaceID,
		TicketNumber: i.TicketNumber,
		Title:        i.Title,
		Description:  i.Description,
		Type:         string(i.Type),
		Priority:     string(i.Priority),
		Status:       string(i.Status),
		SprintID:     i.SprintID,
		AssigneeID:   i.AssigneeID,
		ReporterID:   i.ReporterID,
		ListPosition: i.ListPosition,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

func toIssueSummary(i domain.IssueSummary, _ int) taskifysdk.IssueResponse {
	out := toIssue(i.Issue, 0)
	out.ProjectName = i.ProjectName
	out.ProjectKey = i.ProjectKey
	out.WorkspaceName = i.WorkspaceName
	return out
}

func toComment(c domain.Comment) taskifysdk.CommentResponse {
	return taskifysdk.CommentResponse{
		ID:        c.ID,
		IssueID:   c.IssueID,
		UserID:    c.UserID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCommentView(c domain.CommentView, _ int) taskifysdk.CommentResponse {
	out := toComment(c.Comment)
	out.AuthorName = c.AuthorName
	out.IssueTitle = c.IssueTitle
	out.TicketNumber = c.TicketNumber
	out.ProjectID = c.ProjectID
	out.ProjectKey = c.ProjectKey
	out.WorkspaceID = c.WorkspaceID
	return out
}

// mapAll never returns nil so empty lists encode as [] rather than null.
func mapAll[T, R any](in []T, f func(T, int) R) []R {
	if len(in) == 0 {
		return []R{}
	}
	return lo.Map(in, f)
}

// enumPtr uppercases an optional wire enum into its domain type. Validity is
// left to the service.
func enumPtr[T ~string](s *string) *T {
	if s == nil {
		return nil
	}
	v := T(strings.ToUpper(strings.TrimSpace(*s)))
	return &v
}

func enumOr[T ~string](s string, def T) T {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return T(strings.ToUpper(strings.TrimSpace(s)))
}
