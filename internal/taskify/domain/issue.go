package domain

import "time"

type IssueType string

const (
	IssueBug     IssueType = "BUG"
	IssueFeature IssueType = "FEATURE"
	IssueTask    IssueType = "TASK"
)

func (t IssueType) Valid() bool {
	switch t {
	case IssueBug, IssueFeature, IssueTask:
		return true
	}
	return false
}

type IssuePriority string

const (
	PriorityLow      IssuePriority = "LOW"
	PriorityMedium   IssuePriority = "MEDIUM"
	PriorityHigh     IssuePriority = "HIGH"
	PriorityCritical IssuePriority = "CRITICAL"
)

func (p IssuePriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

type IssueStatus string

const (
	IssueTodo       IssueStatus = "TODO"
	IssueInProgress IssueStatus = "IN_PROGRESS"
	IssueDone       IssueStatus = "DONE"
)

func (s IssueStatus) Valid() bool {
	switch s {
	case IssueTodo, IssueInProgress, IssueDone:
		return true
	}
	return false
}

type Issue struct {
	ID           string
	ProjectID    string
	WorkspaceID  string // copied from the project at creation
	TicketNumber int64  // unique per project
	Title        string
	Description  string
	Type         IssueType
	Priority     IssuePriority
	Status       IssueStatus
	SprintID     *string // nil means backlog
	AssigneeID   *string
	ReporterID   string // immutable
	ListPosition float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IssueSummary carries the names the dashboard and "new issues" feed show
// alongside an issue.
type IssueSummary struct {
	Issue
	ProjectName   string
	ProjectKey    string
	WorkspaceName string
}

// IssueFilter narrows ListIssues. Zero values mean "no filter".
type IssueFilter struct {
	ActiveSprint bool   // only issues in the project's ACTIVE sprint
	Backlog      bool   // only issues with no sprint
	SprintID     string // only issues in this sprint
	AssigneeID   string // only issues assigned to this user
	Status       IssueStatus
}
