package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// RoleAssignment binds users to one incident role
type RoleAssignment struct {
	Role          string      `json:"role" yaml:"role" firestore:"role"`                                  // Role name, unique within an incident
	Users         []PersonRef `json:"users" yaml:"users" firestore:"users"`                               // Assigned users in selection order
	Lead          *PersonRef  `json:"lead,omitempty" yaml:"lead,omitempty" firestore:"lead,omitempty"`    // Optional role lead
	SaveAsDefault bool        `json:"save_as_default" yaml:"save_as_default" firestore:"save_as_default"` // Remember this assignment for future incidents
}

// Members returns the assigned users followed by the lead, deduplicated
func (r RoleAssignment) Members() []PersonRef {
	members := r.Users
	if r.Lead != nil {
		members = append(members[:len(members):len(members)], *r.Lead)
	}
	return UniquePersons(members)
}

// Validate checks the role name and that every member has a directory id
func (r RoleAssignment) Validate() error {
	if strings.TrimSpace(r.Role) == "" {
		return goerr.New("role name is required")
	}
	for _, u := range r.Users {
		if err := u.Validate(); err != nil {
			return goerr.Wrap(err, "invalid role user", goerr.V("role", r.Role))
		}
	}
	if r.Lead != nil {
		if err := r.Lead.Validate(); err != nil {
			return goerr.Wrap(err, "invalid role lead", goerr.V("role", r.Role))
		}
	}
	return nil
}

// RoleAssignments is the set of roles of one incident
type RoleAssignments []RoleAssignment

// Validate validates each role and checks role names are unique
func (rs RoleAssignments) Validate() error {
	seen := make(map[string]bool)
	for i, r := range rs {
		if err := r.Validate(); err != nil {
			return goerr.Wrap(err, "invalid role assignment", goerr.V("index", i))
		}
		if seen[r.Role] {
			return goerr.New("duplicate role name", goerr.V("role", r.Role))
		}
		seen[r.Role] = true
	}
	return nil
}

// Find returns the assignment for the role name, or nil
func (rs RoleAssignments) Find(role string) *RoleAssignment {
	for i := range rs {
		if rs[i].Role == role {
			result := rs[i]
			return &result
		}
	}
	return nil
}

// Members returns every user and lead across all roles, deduplicated
func (rs RoleAssignments) Members() []PersonRef {
	set := newPersonSet()
	for _, r := range rs {
		for _, p := range r.Members() {
			set.add(p)
		}
	}
	return set.list()
}

// Partition splits members into secondary commanders and plain role users.
// A user assigned to several plain roles appears once in roleUsers.
func (rs RoleAssignments) Partition(secondaryCommanderRole string) (roleUsers, secondaryCommanders []PersonRef) {
	users := newPersonSet()
	secondary := newPersonSet()
	for _, r := range rs {
		target := users
		if r.Role == secondaryCommanderRole {
			target = secondary
		}
		for _, p := range r.Members() {
			target.add(p)
		}
	}
	return users.list(), secondary.list()
}
