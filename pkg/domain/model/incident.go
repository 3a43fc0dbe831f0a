package model

import (
	"slices"
	"time"

	"github.com/secmon-lab/muster/pkg/domain/types"
)

// IncidentRecord is the persisted state of an incident
type IncidentRecord struct {
	ID              types.IncidentID     `firestore:"id"`                // Serial number assigned by the store
	Fields          IncidentFields       `firestore:"fields"`            // Descriptive attributes
	Commander       PersonRef            `firestore:"commander"`         // Current incident commander
	Roles           RoleAssignments      `firestore:"roles"`             // Current role assignments
	CreatedBy       PersonRef            `firestore:"created_by"`        // Workspace creator, never removed automatically
	ModifiedBy      PersonRef            `firestore:"modified_by"`       // Last acting user
	TeamGroupID     types.GroupID        `firestore:"team_group_id"`     // Group backing the workspace
	TeamWebURL      string               `firestore:"team_web_url"`      // Link to the workspace
	PlanID          types.PlanID         `firestore:"plan_id"`           // Planning artifact
	NewsTabLink     string               `firestore:"news_tab_link"`     // Link to the announcements tab
	ReasonForUpdate string               `firestore:"reason_for_update"` // Reason given for the last update
	PendingRemovals []types.MembershipID `firestore:"pending_removals"`  // Memberships a previous run failed to remove
	CreatedAt       time.Time            `firestore:"created_at"`
	UpdatedAt       time.Time            `firestore:"updated_at"`
}

// NewIncidentRecord creates a record for a provisioning request. The id is
// assigned by the store.
func NewIncidentRecord(req *WorkspaceRequest) *IncidentRecord {
	now := time.Now()
	return &IncidentRecord{
		Fields:     req.Fields(),
		Commander:  req.Commander(),
		Roles:      req.Roles(),
		CreatedBy:  req.Actor(),
		ModifiedBy: req.Actor(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// TeamID returns the workspace id, which is the id of its backing group
func (r *IncidentRecord) TeamID() types.TeamID {
	return types.TeamID(r.TeamGroupID)
}

// HasWorkspace reports whether provisioning has committed a workspace
func (r *IncidentRecord) HasWorkspace() bool {
	return r.TeamGroupID != ""
}

// Clone returns a deep copy of the record
func (r *IncidentRecord) Clone() *IncidentRecord {
	c := *r
	c.PendingRemovals = slices.Clone(r.PendingRemovals)
	c.Roles = make(RoleAssignments, len(r.Roles))
	for i, role := range r.Roles {
		role.Users = slices.Clone(role.Users)
		if role.Lead != nil {
			lead := *role.Lead
			role.Lead = &lead
		}
		c.Roles[i] = role
	}
	return &c
}

// IncidentUpdate holds the record fields to change; nil fields are left as is
type IncidentUpdate struct {
	Fields          *IncidentFields
	Commander       *PersonRef
	Roles           RoleAssignments // Replaces the roles when non-nil
	ModifiedBy      *PersonRef
	TeamGroupID     *types.GroupID
	TeamWebURL      *string
	PlanID          *types.PlanID
	NewsTabLink     *string
	ReasonForUpdate *string
	PendingRemovals *[]types.MembershipID // Replaces the pending removals when non-nil
}

// Apply writes the update onto the record
func (u *IncidentUpdate) Apply(r *IncidentRecord, now time.Time) {
	if u.Fields != nil {
		r.Fields = *u.Fields
	}
	if u.Commander != nil {
		r.Commander = *u.Commander
	}
	if u.Roles != nil {
		r.Roles = slices.Clone(u.Roles)
	}
	if u.ModifiedBy != nil {
		r.ModifiedBy = *u.ModifiedBy
	}
	if u.TeamGroupID != nil {
		r.TeamGroupID = *u.TeamGroupID
	}
	if u.TeamWebURL != nil {
		r.TeamWebURL = *u.TeamWebURL
	}
	if u.PlanID != nil {
		r.PlanID = *u.PlanID
	}
	if u.NewsTabLink != nil {
		r.NewsTabLink = *u.NewsTabLink
	}
	if u.ReasonForUpdate != nil {
		r.ReasonForUpdate = *u.ReasonForUpdate
	}
	if u.PendingRemovals != nil {
		r.PendingRemovals = slices.Clone(*u.PendingRemovals)
	}
	r.UpdatedAt = now
}
