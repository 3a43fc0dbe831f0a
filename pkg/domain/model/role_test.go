package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/muster/pkg/domain/model"
)

func person(id string) model.PersonRef {
	return model.NewPersonRef(id, "User "+id, id+"@example.com")
}

func TestRoleAssignmentMembers(t *testing.T) {
	lead := person("u2")
	r := model.RoleAssignment{
		Role:  "Logistics",
		Users: []model.PersonRef{person("u1"), person("u2"), person("u1")},
		Lead:  &lead,
	}

	members := r.Members()
	gt.Equal(t, 2, len(members))
	gt.Equal(t, "u1", members[0].ID.String())
	gt.Equal(t, "u2", members[1].ID.String())
	gt.Equal(t, 3, len(r.Users))
}

func TestRoleAssignmentsValidate(t *testing.T) {
	t.Run("valid roles", func(t *testing.T) {
		rs := model.RoleAssignments{
			{Role: "Logistics", Users: []model.PersonRef{person("u1")}},
			{Role: "Planning", Users: []model.PersonRef{person("u2")}},
		}
		gt.NoError(t, rs.Validate())
	})

	t.Run("duplicate role name", func(t *testing.T) {
		rs := model.RoleAssignments{
			{Role: "Logistics", Users: []model.PersonRef{person("u1")}},
			{Role: "Logistics", Users: []model.PersonRef{person("u2")}},
		}
		gt.Error(t, rs.Validate())
	})

	t.Run("empty role name", func(t *testing.T) {
		rs := model.RoleAssignments{{Role: " "}}
		gt.Error(t, rs.Validate())
	})

	t.Run("user without id", func(t *testing.T) {
		rs := model.RoleAssignments{
			{Role: "Logistics", Users: []model.PersonRef{{DisplayName: "nobody"}}},
		}
		gt.Error(t, rs.Validate())
	})
}

func TestRoleAssignmentsPartition(t *testing.T) {
	lead := person("u4")
	rs := model.RoleAssignments{
		{Role: "Logistics", Users: []model.PersonRef{person("u1"), person("u2")}},
		{Role: "Operations", Users: []model.PersonRef{person("u2"), person("u3")}},
		{Role: "Secondary Incident Commander", Users: []model.PersonRef{person("u5")}, Lead: &lead},
	}

	users, secondary := rs.Partition("Secondary Incident Commander")
	gt.Equal(t, 3, len(users))
	gt.Equal(t, "u1", users[0].ID.String())
	gt.Equal(t, "u2", users[1].ID.String())
	gt.Equal(t, "u3", users[2].ID.String())

	gt.Equal(t, 2, len(secondary))
	gt.Equal(t, "u5", secondary[0].ID.String())
	gt.Equal(t, "u4", secondary[1].ID.String())
}

func TestRoleAssignmentsFind(t *testing.T) {
	rs := model.RoleAssignments{{Role: "Logistics"}}
	gt.V(t, rs.Find("Logistics")).NotNil()
	gt.Nil(t, rs.Find("Planning"))
}

func TestPersonRefIs(t *testing.T) {
	gt.True(t, model.NewPersonRef("abc@realm", "A", "").Is(person("abc")))
	gt.False(t, model.PersonRef{}.Is(model.PersonRef{}))
}
