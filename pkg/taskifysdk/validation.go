package taskifysdk

import (
	"net/mail"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	requiredReason = "required"

	maxNameLen        = 100
	maxTitleLen       = 200
	maxDescriptionLen = 20000
	maxCommentLen     = 10000
	minPasswordLen    = 8
	maxPasswordLen    = 128
)

var (
	reSlug = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{1,62}$`)

	workspaceRoles   = []string{"ADMIN", "MEMBER", "GUEST"}
	issueTypes       = []string{"BUG", "FEATURE", "TASK"}
	issuePriorities  = []string{"LOW", "MEDIUM", "HIGH", "CRITICAL"}
	issueStatuses    = []string{"TODO", "IN_PROGRESS", "DONE"}
	sprintStatuses   = []string{"PENDING", "ACTIVE", "COMPLETED"}
	oneOfRoles       = "must be one of ADMIN, MEMBER or GUEST"
	oneOfTypes       = "must be one of BUG, FEATURE or TASK"
	oneOfPriorities  = "must be one of LOW, MEDIUM, HIGH or CRITICAL"
	oneOfStatuses    = "must be one of TODO, IN_PROGRESS or DONE"
	oneOfSprintState = "must be one of PENDING, ACTIVE or COMPLETED"
)

// errs collects field errors. finish returns nil when there are none so
// callers can test the result against nil.
type errs map[string]string

func (e errs) finish() map[string]string {
	if len(e) == 0 {
		return nil
	}
	return e
}

func (e errs) email(field, v string) {
	v = strings.TrimSpace(v)
	if v == "" {
		e[field] = requiredReason
		return
	}
	if _, err := mail.ParseAddress(v); err != nil {
		e[field] = "invalid email address"
	}
}

func (e errs) text(field, v string, required bool, max int) {
	v = strings.TrimSpace(v)
	switch {
	case v == "" && required:
		e[field] = requiredReason
	case utf8.RuneCountInString(v) > max:
		e[field] = "too long"
	}
}

func (e errs) password(field, v string) {
	switch {
	case v == "":
		e[field] = requiredReason
	case len(v) < minPasswordLen:
		e[field] = "too short (min 8)"
	case len(v) > maxPasswordLen:
		e[field] = "too long (max 128)"
	}
}

func (e errs) enum(field, v string, allowed []string, reason string) {
	if !slices.Contains(allowed, strings.ToUpper(v)) {
		e[field] = reason
	}
}

func (r RegisterRequest) Validate() map[string]string {
	e := errs{}
	e.email("email", r.Email)
	e.text("name", r.Name, true, maxNameLen)
	e.password("password", r.Password)
	return e.finish()
}

func (r LoginRequest) Validate() map[string]string {
	e := errs{}
	if strings.TrimSpace(r.Email) == "" {
		e["email"] = requiredReason
	}
	if r.Password == "" {
		e["password"] = requiredReason
	}
	return e.finish()
}

func (r UpdateProfileRequest) Validate() map[string]string {
	e := errs{}
	if r.Name != nil {
		e.text("name", *r.Name, true, maxNameLen)
	}
	if r.AvatarURL != nil {
		e.text("avatarUrl", *r.AvatarURL, false, 2048)
	}
	return e.finish()
}

func (r ForgotPasswordRequest) Validate() map[string]string {
	e := errs{}
	e.email("email", r.Email)
	return e.finish()
}

func (r ResetPasswordRequest) Validate() map[string]string {
	e := errs{}
	if strings.TrimSpace(r.Token) == "" {
		e["token"] = requiredReason
	}
	e.password("password", r.Password)
	return e.finish()
}

func (r CreateWorkspaceRequest) Validate() map[string]string {
	e := errs{}
	e.text("name", r.Name, true, maxNameLen)
	url := strings.ToLower(strings.TrimSpace(r.URL))
	switch {
	case url == "":
		e["url"] = requiredReason
	case !reSlug.MatchString(url):
		e["url"] = "must be 2-63 characters of a-z, 0-9 or -, not starting with -"
	}
	return e.finish()
}

func (r InviteMemberRequest) Validate() map[string]string {
	e := errs{}
	switch {
	case strings.TrimSpace(r.Email) != "":
		e.email("email", r.Email)
	case strings.TrimSpace(r.UserID) == "":
		e["email"] = "email or userId is required"
	}
	e.enum("role", r.Role, workspaceRoles, oneOfRoles)
	return e.finish()
}

func (r UpdateRoleRequest) Validate() map[string]string {
	e := errs{}
	e.enum("role", r.Role, workspaceRoles, oneOfRoles)
	return e.finish()
}

func (r CreateProjectRequest) Validate() map[string]string {
	e := errs{}
	if strings.TrimSpace(r.WorkspaceID) == "" {
		e["workspaceId"] = requiredReason
	}
	e.text("name", r.Name, true, maxNameLen)
	e.text("key", r.Key, false, 64)
	e.text("description", r.Description, false, maxDescriptionLen)
	return e.finish()
}

func (r UpdateProjectRequest) Validate() map[string]string {
	e := errs{}
	if r.Name != nil {
		e.text("name", *r.Name, true, maxNameLen)
	}
	if r.Description != nil {
		e.text("description", *r.Description, false, maxDescriptionLen)
	}
	return e.finish()
}

func (r CreateSprintRequest) Validate() map[string]string {
	e := errs{}
	e.text("name", r.Name, true, maxNameLen)
	if r.StartDate != nil && r.EndDate != nil && r.EndDate.Before(*r.StartDate) {
		e["endDate"] = "must not be before startDate"
	}
	return e.finish()
}

func (r UpdateSprintRequest) Validate() map[string]string {
	e := errs{}
	if r.Name == nil && r.Status == nil {
		e["status"] = "name or status is required"
	}
	if r.Name != nil {
		e.text("name", *r.Name, true, maxNameLen)
	}
	if r.Status != nil {
		e.enum("status", *r.Status, sprintStatuses, oneOfSprintState)
	}
	return e.finish()
}

func (r CreateIssueRequest) Validate() map[string]string {
	e := errs{}
	e.text("title", r.Title, true, maxTitleLen)
	e.text("description", r.Description, false, maxDescriptionLen)
	if r.Type != "" {
		e.enum("type", r.Type, issueTypes, oneOfTypes)
	}
	if r.Priority != "" {
		e.enum("priority", r.Priority, issuePriorities, oneOfPriorities)
	}
	return e.finish()
}

func (r UpdateIssueRequest) Validate() map[string]string {
	e := errs{}
	if r.Title != nil {
		e.text("title", *r.Title, true, maxTitleLen)
	}
	if r.Description != nil {
		e.text("description", *r.Description, false, maxDescriptionLen)
	}
	if r.Type != nil {
		e.enum("type", *r.Type, issueTypes, oneOfTypes)
	}
	if r.Priority != nil {
		e.enum("priority", *r.Priority, issuePriorities, oneOfPriorities)
	}
	if r.Status != nil {
		e.enum("status", *r.Status, issueStatuses, oneOfStatuses)
	}
	return e.finish()
}

func (r CreateCommentRequest) Validate() map[string]string {
	e := errs{}
	if strings.TrimSpace(r.IssueID) == "" {
		e["issueId"] = requiredReason
	}
	e.text("content", r.Content, true, maxCommentLen)
	return e.finish()
}

func (r UpdateCommentRequest) Validate() map[string]string {
	e := errs{}
	e.text("content", r.Content, true, maxCommentLen)
	return e.finish()
}
