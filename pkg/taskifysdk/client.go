package taskifysdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to a Taskify server. The zero Token sends unauthenticated
// requests; use WithToken to act as a user.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Token      string
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithToken returns a copy of c that authenticates with token.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.Token = token
	return &cp
}

// do sends in as JSON (when non-nil) and decodes the response into out
// (when non-nil). Any status other than expected is returned as *APIError.
func (c *Client) do(ctx context.Context, method, path string, in, out any, expected int) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != expected {
		return parseErrorResponse(resp, raw)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// ============================================================================
// Health
// ============================================================================

func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, http.MethodGet, "/livez", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, http.MethodGet, "/readyz", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ============================================================================
// Accounts
// ============================================================================

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Me(ctx context.Context) (*UserResponse, error) {
	var out UserResponse
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*UserResponse, error) {
	var out UserResponse
	if err := c.do(ctx, http.MethodPatch, "/auth/profile", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ============================================================================
// Workspaces and members
// ============================================================================

func (c *Client) CreateWorkspace(ctx context.Context, req CreateWorkspaceRequest) (*WorkspaceResponse, error) {
	var out WorkspaceResponse
	if err := c.do(ctx, http.MethodPost, "/workspaces", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListWorkspaces(ctx context.Context) (*ListWorkspacesResponse, error) {
	var out ListWorkspacesResponse
	if err := c.do(ctx, http.MethodGet, "/workspaces", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteWorkspace(ctx context.Context, workspaceID string) error {
	return c.do(ctx, http.MethodDelete, "/workspaces/"+url.PathEscape(workspaceID), nil, nil, http.StatusNoContent)
}

func (c *Client) InviteMember(ctx context.Context, workspaceID string, req InviteMemberRequest) (*MembershipResponse, error) {
	var out MembershipResponse
	path := "/workspaces/" + url.PathEscape(workspaceID) + "/members/invite"
	if err := c.do(ctx, http.MethodPost, path, req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AcceptInvite(ctx context.Context, workspaceID string) (*MembershipResponse, error) {
	var out MembershipResponse
	path := "/workspaces/" + url.PathEscape(workspaceID) + "/members/accept"
	if err := c.do(ctx, http.MethodPost, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeclineInvite(ctx context.Context, workspaceID string) error {
	path := "/workspaces/" + url.PathEscape(workspaceID) + "/members/decline"
	return c.do(ctx, http.MethodPost, path, nil, nil, http.StatusNoContent)
}

func (c *Client) ListMembers(ctx context.Context, workspaceID string) (*ListMembersResponse, error) {
	var out ListMembersResponse
	path := "/workspaces/" + url.PathEscape(workspaceID) + "/members"
	if err := c.do(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateMemberRole(ctx context.Context, workspaceID, userID string, req UpdateRoleRequest) (*MembershipResponse, error) {
	var out MembershipResponse
	path := "/workspaces/" + url.PathEscape(workspaceID) + "/members/" + url.PathEscape(userID) + "/role"
	if err := c.do(ctx, http.MethodPatch, path, req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ============================================================================
// Projects and sprints
// ============================================================================

func (c *Client) CreateProject(ctx context.Context, req CreateProjectRequest) (*ProjectResponse, error) {
	var out ProjectResponse
	if err := c.do(ctx, http.MethodPost, "/project", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListProjects(ctx context.Context, workspaceID string) (*ListProjectsResponse, error) {
	var out ListProjectsResponse
	if err := c.do(ctx, http.MethodGet, "/project/workspace/"+url.PathEscape(workspaceID), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateSprint(ctx context.Context, projectID string, req CreateSprintRequest) (*SprintResponse, error) {
	var out SprintResponse
	path := "/api/projects/" + url.PathEscape(projectID) + "/sprints"
	if err := c.do(ctx, http.MethodPost, path, req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSprint(ctx context.Context, sprintID string, req UpdateSprintRequest) (*SprintResponse, error) {
	var out SprintResponse
	if err := c.do(ctx, http.MethodPatch, "/api/sprints/"+url.PathEscape(sprintID), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ============================================================================
// Issues and comments
// ============================================================================

func (c *Client) CreateIssue(ctx context.Context, projectID string, req CreateIssueRequest) (*IssueResponse, error) {
	var out IssueResponse
	path := "/api/issues?projectId=" + url.QueryEscape(projectID)
	if err := c.do(ctx, http.MethodPost, path, req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListIssues accepts the filters "sprint", "assignee" and "status".
func (c *Client) ListIssues(ctx context.Context, projectID string, filters url.Values) (*ListIssuesResponse, error) {
	var out ListIssuesResponse
	path := "/api/projects/" + url.PathEscape(projectID) + "/issues"
	if len(filters) > 0 {
		path += "?" + filters.Encode()
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateIssue(ctx context.Context, issueID string, req UpdateIssueRequest) (*IssueResponse, error) {
	var out IssueResponse
	if err := c.do(ctx, http.MethodPatch, "/api/issues/"+url.PathEscape(issueID), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteIssue(ctx context.Context, issueID string) error {
	return c.do(ctx, http.MethodDelete, "/api/issues/"+url.PathEscape(issueID), nil, nil, http.StatusNoContent)
}

func (c *Client) CreateComment(ctx context.Context, req CreateCommentRequest) (*CommentResponse, error) {
	var out CommentResponse
	if err := c.do(ctx, http.MethodPost, "/comments", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	var out DashboardResponse
	if err := c.do(ctx, http.MethodGet, "/dashboard", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
