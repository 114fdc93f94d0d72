package domain

import "time"

type Project struct {
	ID          string
	WorkspaceID string // immutable after creation
	Name        string
	Key         string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
