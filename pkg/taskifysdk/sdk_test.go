package taskifysdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNullableString(t *testing.T) {
	t.Parallel()

	t.Run("absent, null and value decode differently", func(t *testing.T) {
		var absent, null, value UpdateIssueRequest
		require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
		require.NoError(t, json.Unmarshal([]byte(`{"sprintId":null}`), &null))
		require.NoError(t, json.Unmarshal([]byte(`{"sprintId":"s1"}`), &value))

		require.False(t, absent.SprintID.Set)
		require.True(t, null.SprintID.Set)
		require.Nil(t, null.SprintID.Value)
		require.True(t, value.SprintID.Set)
		require.Equal(t, "s1", *value.SprintID.Value)
	})

	t.Run("encoding omits unset fields", func(t *testing.T) {
		b, err := json.Marshal(UpdateIssueRequest{SprintID: Null(), AssigneeID: NullableString{}})
		require.NoError(t, err)
		require.JSONEq(t, `{"sprintId":null}`, string(b))

		b, err = json.Marshal(UpdateIssueRequest{AssigneeID: Some("u1")})
		require.NoError(t, err)
		require.JSONEq(t, `{"assigneeId":"u1"}`, string(b))
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("register", func(t *testing.T) {
		require.Nil(t, RegisterRequest{Email: "ada@example.com", Name: "Ada", Password: "longenough"}.Validate())

		errs := RegisterRequest{Email: "nope", Password: "short"}.Validate()
		require.Equal(t, "invalid email address", errs["email"])
		require.Equal(t, requiredReason, errs["name"])
		require.Contains(t, errs, "password")
	})

	t.Run("workspace slug", func(t *testing.T) {
		require.Nil(t, CreateWorkspaceRequest{Name: "Acme", URL: "Acme-HQ"}.Validate())
		require.Contains(t, CreateWorkspaceRequest{Name: "Acme", URL: "-acme"}.Validate(), "url")
		require.Contains(t, CreateWorkspaceRequest{Name: "Acme", URL: "a b"}.Validate(), "url")
	})

	t.Run("invite needs a target and a role", func(t *testing.T) {
		require.Nil(t, InviteMemberRequest{UserID: "u1", Role: "guest"}.Validate())

		errs := InviteMemberRequest{Role: "OWNER"}.Validate()
		require.Contains(t, errs, "email")
		require.Contains(t, errs, "role")
	})

	t.Run("sprint dates", func(t *testing.T) {
		start := time.Now()
		end := start.Add(-time.Hour)
		require.Contains(t, CreateSprintRequest{Name: "s", StartDate: &start, EndDate: &end}.Validate(), "endDate")

		status := "DONE"
		require.Contains(t, UpdateSprintRequest{Status: &status}.Validate(), "status")
		require.NotNil(t, UpdateSprintRequest{}.Validate())
	})

	t.Run("issue enums", func(t *testing.T) {
		require.Nil(t, CreateIssueRequest{Title: "x"}.Validate())
		errs := CreateIssueRequest{Title: "x", Type: "EPIC", Priority: "NOW"}.Validate()
		require.Contains(t, errs, "type")
		require.Contains(t, errs, "priority")
	})
}

func TestClientErrors(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/workspaces":
			require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error":"forbidden","error_description":"nope"}`))
		case "/auth/register":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"code":"validation_error","message":"invalid request","details":{"email":"required"}}`))
		case "/livez":
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	}))
	t.Cleanup(srv.Close)

	ctx := context.Background()
	c := NewClient(srv.URL + "/")

	h, err := c.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", h.Status)

	_, err = c.WithToken("tok").ListWorkspaces(ctx)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	require.Equal(t, ErrorCodeForbidden, apiErr.Code)

	_, err = c.Register(ctx, RegisterRequest{})
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, ErrorCodeValidation, apiErr.Code)
	require.Equal(t, "required", apiErr.Details["email"])

	_, err = c.Dashboard(ctx)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, ErrorCodeServerError, apiErr.Code)
}
