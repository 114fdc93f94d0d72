package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskify/internal/taskify/domain"
	"github.com/stretchr/testify/require"
)

func TestSprintLifecycle(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	admin := e.user(t, "admin@example.com")
	member := e.user(t, "member@example.com")
	w := e.workspace(t, admin, "acme")
	e.join(t, admin, w, member, domain.RoleMember)
	p := e.project(t, admin, w)

	sp, err := e.sprints.CreateSprint(ctx, admin, p.ID, "Sprint 1", nil, nil)
	require.NoError(t, err)
	require.Equal(t, domain.SprintPending, sp.Status)
	require.Nil(t, sp.StartDate)

	t.Run("member cannot create or transition", func(t *testing.T) {
		_, err := e.sprints.CreateSprint(ctx, member, p.ID, "x", nil, nil)
		require.ErrorIs(t, err, ErrForbidden)
		_, err = e.sprints.UpdateSprint(ctx, member, sp.ID, ptr(domain.SprintActive), nil)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("pending cannot complete", func(t *testing.T) {
		_, err := e.sprints.UpdateSprint(ctx, admin, sp.ID, ptr(domain.SprintCompleted), nil)
		require.ErrorIs(t, err, ErrInvalidState)
		require.EqualError(t, err, "sprint must be started before completing")
	})

	t.Run("start stamps start date", func(t *testing.T) {
		got, err := e.sprints.UpdateSprint(ctx, admin, sp.ID, ptr(domain.SprintActive), nil)
		require.NoError(t, err)
		require.Equal(t, domain.SprintActive, got.Status)
		require.NotNil(t, got.StartDate)

		stored, err := e.sprints.GetSprint(ctx, member, sp.ID)
		require.NoError(t, err)
		require.Equal(t, domain.SprintActive, stored.Status)
		require.NotNil(t, stored.StartDate)
	})

	t.Run("cannot go back to pending", func(t *testing.T) {
		_, err := e.sprints.UpdateSprint(ctx, admin, sp.ID, ptr(domain.SprintPending), nil)
		require.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("complete stamps end date", func(t *testing.T) {
		got, err := e.sprints.UpdateSprint(ctx, admin, sp.ID, ptr(domain.SprintCompleted), nil)
		require.NoError(t, err)
		require.Equal(t, domain.SprintCompleted, got.Status)
		require.NotNil(t, got.EndDate)
	})

	t.Run("completed is terminal", func(t *testing.T) {
		_, err := e.sprints.UpdateSprint(ctx, admin, sp.ID, ptr(domain.SprintActive), nil)
		require.ErrorIs(t, err, ErrInvalidState)
		require.EqualError(t, err, "completed sprint cannot be modified")

		_, err = e.sprints.UpdateSprint(ctx, admin, sp.ID, nil, ptr("renamed"))
		require.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("list", func(t *testing.T) {
		list, err := e.sprints.ListSprints(ctx, member, p.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
	})
}

func TestCreateSprintDates(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	admin := e.user(t, "admin@example.com")
	w := e.workspace(t, admin, "acme")
	p := e.project(t, admin, w)

	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := start.Add(14 * 24 * time.Hour)

	_, err := e.sprints.CreateSprint(ctx, admin, p.ID, "backwards", &end, &start)
	require.ErrorIs(t, err, ErrInvalidRequest)

	sp, err := e.sprints.CreateSprint(ctx, admin, p.ID, "planned", &start, &end)
	require.NoError(t, err)

	// a preset start date survives activation
	got, err := e.sprints.UpdateSprint(ctx, admin, sp.ID, ptr(domain.SprintActive), nil)
	require.NoError(t, err)
	require.True(t, start.Equal(*got.StartDate))
}

func TestDeleteSprintMovesIssuesToBacklog(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	admin := e.user(t, "admin@example.com")
	w := e.workspace(t, admin, "acme")
	p := e.project(t, admin, w)

	sp, err := e.sprints.CreateSprint(ctx, admin, p.ID, "Sprint 1", nil, nil)
	require.NoError(t, err)
	i, err := e.issues.CreateIssue(ctx, admin, p.ID, NewIssue{Title: "in sprint", SprintID: &sp.ID})
	require.NoError(t, err)

	require.NoError(t, e.sprints.DeleteSprint(ctx, admin, sp.ID))

	got, err := e.issues.GetIssue(ctx, admin, i.ID)
	require.NoError(t, err)
	require.Nil(t, got.SprintID)

	_, err = e.sprints.GetSprint(ctx, admin, sp.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
