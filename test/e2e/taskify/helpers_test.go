package taskify_test

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskify/pkg/taskifysdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Container setup and shared helpers for the Taskify end-to-end tests.
 * The suite needs Docker and is skipped with -short.
 */

const (
	testImageName = "taskify-test:latest"
	testPassword  = "correct-horse-battery"
)

// TestMain builds the image once for the whole package and removes it
// afterwards.
func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	fmt.Fprintf(os.Stdout, "Building Taskify Docker image...")
	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Taskify Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/taskify/Dockerfile",
		"../../../")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // image might already be gone
}

// relaxedLimits lifts the credential and invite limits so tests can register
// as many users as they need.
var relaxedLimits = map[string]string{
	"RATELIMIT_STRICT_REQUESTS":   "1000",
	"RATELIMIT_STRICT_WINDOW_SEC": "60",
	"RATELIMIT_STRICT_BURST":      "1000",
	"RATELIMIT_MODERATE_REQUESTS": "1000",
	"RATELIMIT_MODERATE_BURST":    "1000",
}

// setupContainer starts Taskify and returns a client for it. extraEnv is
// merged over the defaults.
func setupContainer(t *testing.T, extraEnv map[string]string) *taskifysdk.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("e2e: skipped in -short mode")
	}
	ctx := context.Background()

	env := map[string]string{
		"TASKIFY_ISSUER":   "taskify-e2e",
		"TASKIFY_NUM_KEYS": "1",
		"ENV":              "test",
		"LOG_LEVEL":        "info",
		"LOG_FORMAT":       "json",
	}
	for k, v := range extraEnv {
		env[k] = v
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        testImageName,
			ExposedPorts: []string{"8080/tcp"},
			Env:          env,
			WaitingFor: wait.ForHTTP("/livez").
				WithPort("8080/tcp").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)
	host, err := container.Host(ctx)
	require.NoError(t, err)

	return taskifysdk.NewClient(fmt.Sprintf("http://%s:%s", host, mappedPort.Port()))
}

type user struct {
	*taskifysdk.Client
	ID    string
	Email string
}

// registerUser creates an account and returns a client acting as it.
func registerUser(t *testing.T, c *taskifysdk.Client, name string) user {
	t.Helper()

	email := name + "@example.com"
	resp, err := c.Register(t.Context(), taskifysdk.RegisterRequest{
		Email:    email,
		Name:     name,
		Password: testPassword,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)

	return user{Client: c.WithToken(resp.AccessToken), ID: resp.User.ID, Email: email}
}

// joinedWorkspace creates a workspace owned by admin and brings each member
// in with the given role through the full invite and accept flow.
func joinedWorkspace(t *testing.T, admin user, slug string, role string, members ...user) *taskifysdk.WorkspaceResponse {
	t.Helper()

	ws, err := admin.CreateWorkspace(t.Context(), taskifysdk.CreateWorkspaceRequest{Name: slug, URL: slug})
	require.NoError(t, err)

	for _, m := range members {
		_, err := admin.InviteMember(t.Context(), ws.ID, taskifysdk.InviteMemberRequest{Email: m.Email, Role: role})
		require.NoError(t, err)
		_, err = m.AcceptInvite(t.Context(), ws.ID)
		require.NoError(t, err)
	}
	return ws
}

// requireStatus checks err is an API error with the given status.
func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	var apiErr *taskifysdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode, apiErr.Description)
}
