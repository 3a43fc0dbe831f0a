package usecase_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/muster/pkg/domain/model"
	"github.com/secmon-lab/muster/pkg/domain/types"
	"github.com/secmon-lab/muster/pkg/usecase"
)

const secondaryRole = "Secondary Incident Commander"

func person(id string) model.PersonRef {
	return model.PersonRef{ID: types.DirectoryID(id), DisplayName: "User " + id, Email: id + "@example.com"}
}

func persons(ids ...string) []model.PersonRef {
	result := make([]model.PersonRef, len(ids))
	for i, id := range ids {
		result[i] = person(id)
	}
	return result
}

func plainMember(id string) model.Member {
	return model.Member{MembershipID: types.MembershipID("m-" + id), UserID: types.DirectoryID(id)}
}

func ownerMember(id string) model.Member {
	return model.Member{MembershipID: types.MembershipID("m-" + id), UserID: types.DirectoryID(id), Roles: []string{"owner"}}
}

func personIDs(ps []model.PersonRef) []string {
	result := []string{}
	for _, p := range ps {
		result = append(result, p.ID.String())
	}
	return result
}

func membershipIDs(ids []types.MembershipID) []string {
	result := []string{}
	for _, id := range ids {
		result = append(result, id.String())
	}
	return result
}

func TestDiffMembership(t *testing.T) {
	t.Run("new role users are added once and existing plain members are skipped", func(t *testing.T) {
		diff := usecase.DiffMembership(usecase.DiffInput{
			Snapshot: &model.MembershipSnapshot{Members: []model.Member{
				ownerMember("creator"), ownerMember("ic"), plainMember("u1"),
			}},
			ExistingRoles: model.RoleAssignments{{Role: "Logistics", Users: persons("u1")}},
			NewRoles: model.RoleAssignments{
				{Role: "Logistics", Users: persons("u1", "u2")},
				{Role: "Operations", Users: persons("u2", "u3")},
			},
			ExistingCommander:      person("ic"),
			NewCommander:           person("ic"),
			CreatorID:              "creator",
			SecondaryCommanderRole: secondaryRole,
		})

		gt.Equal(t, []string{"u2", "u3"}, personIDs(diff.NewMembers))
		gt.Equal(t, []string{}, personIDs(diff.NewOwners))
		gt.Equal(t, []string{}, membershipIDs(diff.RemovedMembershipIDs))
		gt.Equal(t, types.MembershipID(""), diff.RemovedCommanderMembershipID)
	})

	t.Run("user moved out of one role but still in another is kept", func(t *testing.T) {
		diff := usecase.DiffMembership(usecase.DiffInput{
			Snapshot: &model.MembershipSnapshot{Members: []model.Member{
				ownerMember("creator"), ownerMember("ic"), plainMember("U"),
			}},
			ExistingRoles: model.RoleAssignments{
				{Role: "Logistics", Users: persons("U")},
				{Role: "Operations", Users: persons("U")},
			},
			NewRoles: model.RoleAssignments{
				{Role: "Operations", Users: persons("U")},
			},
			ExistingCommander:      person("ic"),
			NewCommander:           person("ic"),
			CreatorID:              "creator",
			SecondaryCommanderRole: secondaryRole,
		})

		gt.Equal(t, 0, len(diff.RemovedMembershipIDs))
		gt.True(t, diff.IsEmpty())
	})

	t.Run("removed role users are mapped to membership ids and creator is kept", func(t *testing.T) {
		diff := usecase.DiffMembership(usecase.DiffInput{
			Snapshot: &model.MembershipSnapshot{Members: []model.Member{
				ownerMember("creator"), ownerMember("ic"), plainMember("u1"), plainMember("u2"),
			}},
			ExistingRoles: model.RoleAssignments{
				{Role: "Logistics", Users: persons("u1", "u2", "creator")},
			},
			NewRoles:               model.RoleAssignments{},
			ExistingCommander:      person("ic"),
			NewCommander:           person("ic"),
			CreatorID:              "creator",
			SecondaryCommanderRole: secondaryRole,
		})

		gt.Equal(t, []string{"m-u1", "m-u2"}, membershipIDs(diff.RemovedMembershipIDs))
	})

	t.Run("secondary commanders become owners and take precedence over member addition", func(t *testing.T) {
		diff := usecase.DiffMembership(usecase.DiffInput{
			Snapshot: &model.MembershipSnapshot{Members: []model.Member{
				ownerMember("creator"), ownerMember("ic"), ownerMember("sc1"),
			}},
			ExistingRoles: model.RoleAssignments{
				{Role: secondaryRole, Users: persons("sc1")},
			},
			NewRoles: model.RoleAssignments{
				{Role: secondaryRole, Users: persons("sc1", "sc2")},
				{Role: "Logistics", Users: persons("sc2", "u1")},
			},
			ExistingCommander:      person("ic"),
			NewCommander:           person("ic"),
			CreatorID:              "creator",
			SecondaryCommanderRole: secondaryRole,
		})

		gt.Equal(t, []string{"sc2"}, personIDs(diff.NewOwners))
		gt.Equal(t, []string{"u1"}, personIDs(diff.NewMembers))
	})

	t.Run("dropped secondary commander is removed but the commander is not", func(t *testing.T) {
		diff := usecase.DiffMembership(usecase.DiffInput{
			Snapshot: &model.MembershipSnapshot{Members: []model.Member{
				ownerMember("creator"), ownerMember("ic"), ownerMember("sc1"),
			}},
			ExistingRoles: model.RoleAssignments{
				{Role: secondaryRole, Users: persons("sc1", "ic")},
			},
			NewRoles:               model.RoleAssignments{},
			ExistingCommander:      person("ic"),
			NewCommander:           person("ic"),
			CreatorID:              "creator",
			SecondaryCommanderRole: secondaryRole,
		})

		gt.Equal(t, []string{"m-sc1"}, membershipIDs(diff.RemovedMembershipIDs))
		gt.Equal(t, types.MembershipID(""), diff.RemovedCommanderMembershipID)
	})

	t.Run("changed commander is reported separately", func(t *testing.T) {
		diff := usecase.DiffMembership(usecase.DiffInput{
			Snapshot: &model.MembershipSnapshot{Members: []model.Member{
				ownerMember("creator"), ownerMember("ic1"), plainMember("ic2"),
			}},
			ExistingRoles: model.RoleAssignments{
				{Role: "Logistics", Users: persons("ic2")},
			},
			NewRoles:               model.RoleAssignments{},
			ExistingCommander:      person("ic1"),
			NewCommander:           person("ic2"),
			CreatorID:              "creator",
			SecondaryCommanderRole: secondaryRole,
		})

		gt.Equal(t, types.MembershipID("m-ic1"), diff.RemovedCommanderMembershipID)
		// The new commander left Logistics but must stay in the workspace.
		gt.Equal(t, []string{}, membershipIDs(diff.RemovedMembershipIDs))
	})

	t.Run("old commander kept as secondary commander is not removed", func(t *testing.T) {
		diff := usecase.DiffMembership(usecase.DiffInput{
			Snapshot: &model.MembershipSnapshot{Members: []model.Member{
				ownerMember("creator"), ownerMember("ic1"),
			}},
			NewRoles: model.RoleAssignments{
				{Role: secondaryRole, Users: persons("ic1")},
			},
			ExistingCommander:      person("ic1"),
			NewCommander:           person("ic2"),
			CreatorID:              "creator",
			SecondaryCommanderRole: secondaryRole,
		})

		gt.Equal(t, types.MembershipID(""), diff.RemovedCommanderMembershipID)
		gt.Equal(t, 0, len(diff.RemovedMembershipIDs))
		gt.Equal(t, 0, len(diff.NewOwners))
	})

	t.Run("creator as old commander is never removed", func(t *testing.T) {
		diff := usecase.DiffMembership(usecase.DiffInput{
			Snapshot: &model.MembershipSnapshot{Members: []model.Member{
				ownerMember("creator"),
			}},
			ExistingCommander:      person("creator"),
			NewCommander:           person("ic2"),
			CreatorID:              "creator",
			SecondaryCommanderRole: secondaryRole,
		})

		gt.Equal(t, types.MembershipID(""), diff.RemovedCommanderMembershipID)
		gt.Equal(t, 0, len(diff.RemovedMembershipIDs))
	})

	t.Run("old commander also dropped from a role is removed once", func(t *testing.T) {
		diff := usecase.DiffMembership(usecase.DiffInput{
			Snapshot: &model.MembershipSnapshot{Members: []model.Member{
				ownerMember("creator"), ownerMember("ic1"), plainMember("u1"),
			}},
			ExistingRoles: model.RoleAssignments{
				{Role: "Logistics", Users: persons("ic1", "u1")},
			},
			NewRoles:               model.RoleAssignments{},
			ExistingCommander:      person("ic1"),
			NewCommander:           person("ic2"),
			CreatorID:              "creator",
			SecondaryCommanderRole: secondaryRole,
		})

		gt.Equal(t, types.MembershipID("m-ic1"), diff.RemovedCommanderMembershipID)
		gt.Equal(t, []string{"m-u1"}, membershipIDs(diff.RemovedMembershipIDs))
	})
}

func TestDiffMembershipInvariants(t *testing.T) {
	snapshot := &model.MembershipSnapshot{Members: []model.Member{
		ownerMember("creator"), ownerMember("ic"), ownerMember("sc"),
		plainMember("a"), plainMember("b"), plainMember("c"),
	}}
	roleSets := []model.RoleAssignments{
		{},
		{{Role: "Logistics", Users: persons("a", "b")}},
		{{Role: "Logistics", Users: persons("creator", "c", "d")}},
		{{Role: secondaryRole, Users: persons("sc", "a")}, {Role: "Planning", Users: persons("a", "e")}},
		{{Role: "Planning", Users: persons("b", "creator")}, {Role: secondaryRole, Users: persons("creator")}},
	}
	commanders := []string{"ic", "sc", "creator", "a"}

	for _, existing := range roleSets {
		for _, updated := range roleSets {
			for _, oldIC := range commanders {
				for _, newIC := range commanders {
					diff := usecase.DiffMembership(usecase.DiffInput{
						Snapshot:               snapshot,
						ExistingRoles:          existing,
						NewRoles:               updated,
						ExistingCommander:      person(oldIC),
						NewCommander:           person(newIC),
						CreatorID:              "creator",
						SecondaryCommanderRole: secondaryRole,
					})

					plain, _ := snapshot.Partition()
					for _, m := range diff.NewMembers {
						gt.False(t, plain[m.ID])
					}
					for _, id := range diff.RemovedMembershipIDs {
						gt.NotEqual(t, types.MembershipID("m-creator"), id)
					}
					gt.NotEqual(t, types.MembershipID("m-creator"), diff.RemovedCommanderMembershipID)
					if oldIC == newIC {
						gt.Equal(t, types.MembershipID(""), diff.RemovedCommanderMembershipID)
					}

					seen := map[types.MembershipID]bool{}
					for _, id := range diff.RemovedMembershipIDs {
						gt.False(t, seen[id])
						seen[id] = true
					}
				}
			}
		}
	}
}
