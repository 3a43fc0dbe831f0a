package model

import (
	"strings"

	"github.com/secmon-lab/muster/pkg/domain/types"
)

// GuestInvite is a guest user to invite into a workspace
type GuestInvite struct {
	Email       string `json:"email" yaml:"email"`
	DisplayName string `json:"display_name" yaml:"display_name"`
}

// NormalizedEmail returns the trimmed, lower-cased email used for dedup
func (g GuestInvite) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(g.Email))
}

// IsComplete reports whether both email and display name are present
func (g GuestInvite) IsComplete() bool {
	return strings.TrimSpace(g.Email) != "" && strings.TrimSpace(g.DisplayName) != ""
}

// DedupeGuests drops incomplete entries and duplicates by normalized email,
// keeping the first occurrence. Kept entries are trimmed.
func DedupeGuests(guests []GuestInvite) []GuestInvite {
	seen := make(map[string]bool)
	var result []GuestInvite
	for _, g := range guests {
		if !g.IsComplete() {
			continue
		}
		key := g.NormalizedEmail()
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, GuestInvite{
			Email:       strings.TrimSpace(g.Email),
			DisplayName: strings.TrimSpace(g.DisplayName),
		})
	}
	return result
}

// GuestOutcome is the result of inviting one guest
type GuestOutcome struct {
	Email  string
	UserID types.DirectoryID
	Status int // Remote status code of the failure, 0 on success
	Err    error
}

// Failed reports whether any call for the guest failed
func (o GuestOutcome) Failed() bool {
	return o.Err != nil
}

// InvitationResult is the aggregate outcome of a guest invitation batch
type InvitationResult struct {
	IsAllSucceeded bool
	Message        string
	Outcomes       []GuestOutcome
}
