package permission_test

import (
	"fmt"
	"testing"

	"github.com/aussiebroadwan/taskify/internal/taskify/domain"
	"github.com/aussiebroadwan/taskify/internal/taskify/permission"
	"github.com/stretchr/testify/require"
)

const (
	A = domain.RoleAdmin
	M = domain.RoleMember
	G = domain.RoleGuest
)

func TestRoleMatrix(t *testing.T) {
	// resource -> verb -> roles expected to be allowed by role alone
	want := map[permission.Resource]map[permission.Verb][]domain.Role{
		permission.Workspace: {permission.Read: {A, M, G}, permission.Create: nil, permission.Update: nil, permission.Delete: {A}},
		permission.Members:   {permission.Read: {A, M, G}, permission.Create: {A}, permission.Update: {A}, permission.Delete: nil},
		permission.Project:   {permission.Read: {A, M, G}, permission.Create: {A}, permission.Update: {A, M}, permission.Delete: {A}},
		permission.Sprint:    {permission.Read: {A, M, G}, permission.Create: {A}, permission.Update: {A}, permission.Delete: {A}},
		permission.Issue:     {permission.Read: {A, M, G}, permission.Create: {A, M}, permission.Update: {A, M}, permission.Delete: {A}},
		permission.Comment:   {permission.Read: {A, M, G}, permission.Create: {A, M}, permission.Update: nil, permission.Delete: {A}},
	}

	for res, verbs := range want {
		for verb, allowed := range verbs {
			for _, role := range domain.Roles {
				name := fmt.Sprintf("%s/%s/%s", res, verb, role)
				t.Run(name, func(t *testing.T) {
					require.Equal(t, contains(allowed, role), permission.RoleAllows(res, verb, role))
				})
			}
		}
	}
}

func TestOwnerOverride(t *testing.T) {
	owned := map[permission.Resource][]permission.Verb{
		permission.Workspace: {permission.Delete},
		permission.Issue:     {permission.Update, permission.Delete},
		permission.Comment:   {permission.Update, permission.Delete},
	}
	for res, verbs := range owned {
		for _, verb := range verbs {
			require.True(t, permission.OwnerAllows(res, verb), "%s/%s", res, verb)
		}
	}

	require.False(t, permission.OwnerAllows(permission.Project, permission.Delete))
	require.False(t, permission.OwnerAllows(permission.Issue, permission.Create))
}

func TestGuestCannotMutateProjectSprintIssue(t *testing.T) {
	for _, res := range []permission.Resource{permission.Project, permission.Sprint, permission.Issue} {
		require.True(t, permission.Allows(res, permission.Read, G, false))
		for _, verb := range []permission.Verb{permission.Create, permission.Update, permission.Delete} {
			require.False(t, permission.Allows(res, verb, G, false), "%s/%s", res, verb)
		}
	}
}

func TestReporterOverridesRole(t *testing.T) {
	require.False(t, permission.Allows(permission.Issue, permission.Delete, M, false))
	require.True(t, permission.Allows(permission.Issue, permission.Delete, M, true))
	require.True(t, permission.Allows(permission.Issue, permission.Update, G, true))

	// an ADMIN may delete but never edit someone else's comment
	require.True(t, permission.Allows(permission.Comment, permission.Delete, A, false))
	require.False(t, permission.Allows(permission.Comment, permission.Update, A, false))
	require.True(t, permission.Allows(permission.Comment, permission.Update, G, true))
}

func TestRolesReturnsCopy(t *testing.T) {
	r := permission.Roles(permission.Issue, permission.Create)
	require.Equal(t, []domain.Role{A, M}, r)
	r[0] = G
	require.Equal(t, []domain.Role{A, M}, permission.Roles(permission.Issue, permission.Create))
	require.Nil(t, permission.Roles(permission.Workspace, permission.Update))
}

func contains(roles []domain.Role, r domain.Role) bool {
	for _, x := range roles {
		if x == r {
			return true
		}
	}
	return false
}
