// Package permission holds the workspace permission table: which roles may
// perform which verb on which resource, and where resource ownership grants
// access on its own.
package permission

import (
	"slices"

	"github.com/aussiebroadwan/taskify/internal/taskify/domain"
)

type Resource string

const (
	Workspace Resource = "workspace"
	Members   Resource = "members"
	Project   Resource = "project"
	Sprint    Resource = "sprint"
	Issue     Resource = "issue"
	Comment   Resource = "comment"
)

type Verb string

const (
	Read   Verb = "read"
	Create Verb = "create"
	Update Verb = "update"
	Delete Verb = "delete"
)

// Rule grants a verb to every role in Roles. When Owner is set, the owner of
// the resource (workspace owner, issue reporter, comment author) is granted
// the verb too, as a second predicate checked after the role.
type Rule struct {
	Roles []domain.Role
	Owner bool
}

var (
	all         = []domain.Role{domain.RoleAdmin, domain.RoleMember, domain.RoleGuest}
	contributor = []domain.Role{domain.RoleAdmin, domain.RoleMember}
	adminOnly   = []domain.Role{domain.RoleAdmin}
)

// Table is the complete matrix. A missing entry denies everyone.
var Table = map[Resource]map[Verb]Rule{
	Workspace: {
		Read:   {Roles: all},
		Delete: {Roles: adminOnly, Owner: true},
	},
	Members: {
		Read:   {Roles: all},
		Create: {Roles: adminOnly},
		Update: {Roles: adminOnly},
	},
	Project: {
		Read:   {Roles: all},
		Create: {Roles: adminOnly},
		Update: {Roles: contributor},
		Delete: {Roles: adminOnly},
	},
	Sprint: {
		Read:   {Roles: all},
		Create: {Roles: adminOnly},
		Update: {Roles: adminOnly},
		Delete: {Roles: adminOnly},
	},
	Issue: {
		Read:   {Roles: all},
		Create: {Roles: contributor},
		Update: {Roles: contributor, Owner: true},
		Delete: {Roles: adminOnly, Owner: true},
	},
	Comment: {
		Read:   {Roles: all},
		Create: {Roles: contributor},
		Update: {Owner: true},
		Delete: {Roles: adminOnly, Owner: true},
	},
}

// Lookup returns the rule for (res, verb) and whether one exists.
func Lookup(res Resource, verb Verb) (Rule, bool) {
	r, ok := Table[res][verb]
	return r, ok
}

// RoleAllows reports whether role alone is enough for (res, verb).
func RoleAllows(res Resource, verb Verb, role domain.Role) bool {
	r, ok := Lookup(res, verb)
	return ok && slices.Contains(r.Roles, role)
}

// OwnerAllows reports whether owning the resource is enough for (res, verb).
func OwnerAllows(res Resource, verb Verb) bool {
	r, ok := Lookup(res, verb)
	return ok && r.Owner
}

// Allows evaluates the rule for an accepted member: the role predicate first,
// then ownership. Membership status is the caller's concern.
func Allows(res Resource, verb Verb, role domain.Role, isOwner bool) bool {
	if RoleAllows(res, verb, role) {
		return true
	}
	return isOwner && OwnerAllows(res, verb)
}

// Roles returns the roles granted (res, verb), or nil.
func Roles(res Resource, verb Verb) []domain.Role {
	r, _ := Lookup(res, verb)
	return slices.Clone(r.Roles)
}
