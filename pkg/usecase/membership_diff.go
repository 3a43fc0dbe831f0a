package usecase

import (
	"github.com/secmon-lab/muster/pkg/domain/model"
	"github.com/secmon-lab/muster/pkg/domain/types"
)

// DiffInput is the state compared by DiffMembership
type DiffInput struct {
	Snapshot               *model.MembershipSnapshot
	ExistingRoles          model.RoleAssignments
	NewRoles               model.RoleAssignments
	ExistingCommander      model.PersonRef
	NewCommander           model.PersonRef
	CreatorID              types.DirectoryID
	SecondaryCommanderRole string
}

// DiffMembership computes the membership changes needed to move a workspace
// from the existing role assignments to the new ones. It has no side effects.
//
// The new commander is never removed or added as a plain member, and the
// creator's membership is never removed. When the commander changes, the
// previous commander's membership is reported separately in
// RemovedCommanderMembershipID and not repeated in RemovedMembershipIDs.
func DiffMembership(in DiffInput) *model.MembershipDiff {
	plain, owners := in.Snapshot.Partition()

	existingRoleUsers, existingSecondary := in.ExistingRoles.Partition(in.SecondaryCommanderRole)
	newRoleUsers, newSecondary := in.NewRoles.Partition(in.SecondaryCommanderRole)

	newRoleSet := idSet(newRoleUsers)
	newSecondarySet := idSet(newSecondary)

	diff := &model.MembershipDiff{}

	for _, p := range newSecondary {
		if !owners[p.ID] {
			diff.NewOwners = append(diff.NewOwners, p)
		}
	}

	for _, p := range newRoleUsers {
		if plain[p.ID] || newSecondarySet[p.ID] || p.Is(in.NewCommander) {
			continue
		}
		diff.NewMembers = append(diff.NewMembers, p)
	}

	var removed []types.DirectoryID
	seen := make(map[types.DirectoryID]bool)
	markRemoved := func(id types.DirectoryID) {
		if id == "" || seen[id] || id == in.NewCommander.ID {
			return
		}
		seen[id] = true
		removed = append(removed, id)
	}

	for _, p := range existingSecondary {
		if newSecondarySet[p.ID] || p.Is(in.ExistingCommander) {
			continue
		}
		markRemoved(p.ID)
	}
	for _, p := range existingRoleUsers {
		if !newRoleSet[p.ID] {
			markRemoved(p.ID)
		}
	}

	commanderChanged := !in.ExistingCommander.IsZero() && !in.ExistingCommander.Is(in.NewCommander)
	if commanderChanged && !newSecondarySet[in.ExistingCommander.ID] && in.ExistingCommander.ID != in.CreatorID {
		if m := in.Snapshot.Find(in.ExistingCommander.ID); m != nil {
			diff.RemovedCommanderMembershipID = m.MembershipID
		}
	}

	for _, id := range removed {
		if id == in.CreatorID {
			continue
		}
		m := in.Snapshot.Find(id)
		if m == nil || m.MembershipID == diff.RemovedCommanderMembershipID {
			continue
		}
		diff.RemovedMembershipIDs = append(diff.RemovedMembershipIDs, m.MembershipID)
	}

	return diff
}

func idSet(persons []model.PersonRef) map[types.DirectoryID]bool {
	set := make(map[types.DirectoryID]bool, len(persons))
	for _, p := range persons {
		set[p.ID] = true
	}
	return set
}
