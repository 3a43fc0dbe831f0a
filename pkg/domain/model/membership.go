package model

import "github.com/secmon-lab/muster/pkg/domain/types"

// Member is one membership record of a workspace
type Member struct {
	MembershipID types.MembershipID
	UserID       types.DirectoryID
	DisplayName  string
	Email        string
	Roles        []string // Privilege roles; empty means a plain member
}

// IsOwner reports whether the member holds any privilege role
func (m Member) IsOwner() bool {
	return len(m.Roles) > 0
}

// Person returns the member as a PersonRef
func (m Member) Person() PersonRef {
	return PersonRef{ID: m.UserID, DisplayName: m.DisplayName, Email: m.Email}
}

// MembershipSnapshot is the member list of a workspace at one point in time
type MembershipSnapshot struct {
	Members []Member
}

// Find returns the membership of the user, or nil
func (s *MembershipSnapshot) Find(userID types.DirectoryID) *Member {
	if s == nil {
		return nil
	}
	for i := range s.Members {
		if s.Members[i].UserID == userID {
			m := s.Members[i]
			return &m
		}
	}
	return nil
}

// FindMembership returns the member holding the membership id, or nil
func (s *MembershipSnapshot) FindMembership(id types.MembershipID) *Member {
	if s == nil {
		return nil
	}
	for i := range s.Members {
		if s.Members[i].MembershipID == id {
			m := s.Members[i]
			return &m
		}
	}
	return nil
}

// Has reports whether the user is a member in any capacity
func (s *MembershipSnapshot) Has(userID types.DirectoryID) bool {
	return s.Find(userID) != nil
}

// Partition splits user ids into plain members and owners
func (s *MembershipSnapshot) Partition() (plain, owners map[types.DirectoryID]bool) {
	plain = make(map[types.DirectoryID]bool)
	owners = make(map[types.DirectoryID]bool)
	if s == nil {
		return plain, owners
	}
	for _, m := range s.Members {
		if m.IsOwner() {
			owners[m.UserID] = true
		} else {
			plain[m.UserID] = true
		}
	}
	return plain, owners
}

// MembershipDiff is the set of membership changes one reconciliation applies
type MembershipDiff struct {
	NewMembers                   []PersonRef
	NewOwners                    []PersonRef
	RemovedMembershipIDs         []types.MembershipID
	RemovedCommanderMembershipID types.MembershipID // Empty unless the commander changed
}

// IsEmpty reports whether the diff changes nothing
func (d *MembershipDiff) IsEmpty() bool {
	return len(d.NewMembers) == 0 &&
		len(d.NewOwners) == 0 &&
		len(d.RemovedMembershipIDs) == 0 &&
		d.RemovedCommanderMembershipID == ""
}
