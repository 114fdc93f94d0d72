package domain

import (
	"errors"
	"time"
)

type SprintStatus string

const (
	SprintPending   SprintStatus = "PENDING"
	SprintActive    SprintStatus = "ACTIVE"
	SprintCompleted SprintStatus = "COMPLETED"
)

func (s SprintStatus) Valid() bool {
	switch s {
	case SprintPending, SprintActive, SprintCompleted:
		return true
	}
	return false
}

var (
	ErrSprintCompleted  = errors.New("completed sprint cannot be modified")
	ErrSprintNotStarted = errors.New("sprint must be started before completing")
	ErrSprintBackwards  = errors.New("sprint cannot return to pending")
)

type Sprint struct {
	ID        string
	ProjectID string
	Name      string
	Status    SprintStatus
	StartDate *time.Time
	EndDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Transition moves the sprint to next, stamping dates as it goes. It returns
// a copy; the receiver is left untouched on error.
//
//	PENDING -> ACTIVE -> COMPLETED
func (s Sprint) Transition(next SprintStatus, now time.Time) (Sprint, error) {
	if s.Status == SprintCompleted {
		return s, ErrSprintCompleted
	}

	switch next {
	case SprintActive:
		if s.StartDate == nil {
			t := now
			s.StartDate = &t
		}
	case SprintCompleted:
		if s.Status != SprintActive {
			return s, ErrSprintNotStarted
		}
		t := now
		s.EndDate = &t
	case SprintPending:
		if s.Status != SprintPending {
			return s, ErrSprintBackwards
		}
	}

	s.Status = next
	return s, nil
}
