package domain

import "time"

type Comment struct {
	ID        string
	IssueID   string
	UserID    string // author
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CommentView is a comment joined with its author and the issue it sits on.
type CommentView struct {
	Comment
	AuthorName   string
	IssueTitle   string
	TicketNumber int64
	ProjectID    string
	ProjectKey   string
	WorkspaceID  string
}
