package model

import (
	"slices"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/muster/pkg/domain/types"
)

// IncidentFields are the descriptive attributes of an incident
type IncidentFields struct {
	Name             string    `json:"name" yaml:"name" firestore:"name"`
	Type             string    `json:"type" yaml:"type" firestore:"type"`
	Description      string    `json:"description" yaml:"description" firestore:"description"`
	Location         string    `json:"location" yaml:"location" firestore:"location"`
	Severity         string    `json:"severity" yaml:"severity" firestore:"severity"`
	Status           string    `json:"status" yaml:"status" firestore:"status"`
	StartTime        time.Time `json:"start_time" yaml:"start_time" firestore:"start_time"`
	CloudStorageLink string    `json:"cloud_storage_link,omitempty" yaml:"cloud_storage_link,omitempty" firestore:"cloud_storage_link"`
}

// Validate checks the mandatory incident fields
func (f IncidentFields) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return goerr.New("incident name is required", goerr.T(ErrTagInvalidInput))
	}
	if strings.TrimSpace(f.Type) == "" {
		return goerr.New("incident type is required", goerr.T(ErrTagInvalidInput))
	}
	return nil
}

// WorkspaceRequest is the immutable input of one provisioning run. Create it
// with WorkspaceRequestBuilder.
type WorkspaceRequest struct {
	fields     IncidentFields
	actor      PersonRef
	commander  PersonRef
	roles      RoleAssignments
	visibility types.Visibility
	channels   []string
	guests     []GuestInvite
	owners     []PersonRef
	members    []PersonRef
}

// Fields returns the incident fields
func (r *WorkspaceRequest) Fields() IncidentFields { return r.fields }

// Actor returns the user who submitted the request
func (r *WorkspaceRequest) Actor() PersonRef { return r.actor }

// Commander returns the incident commander
func (r *WorkspaceRequest) Commander() PersonRef { return r.commander }

// Roles returns a copy of the role assignments
func (r *WorkspaceRequest) Roles() RoleAssignments { return slices.Clone(r.roles) }

// Visibility returns the requested workspace visibility
func (r *WorkspaceRequest) Visibility() types.Visibility { return r.visibility }

// Channels returns the additional channel names, empty when defaults apply
func (r *WorkspaceRequest) Channels() []string { return slices.Clone(r.channels) }

// Guests returns the guest users to invite
func (r *WorkspaceRequest) Guests() []GuestInvite { return slices.Clone(r.guests) }

// Owners returns the initial workspace owners
func (r *WorkspaceRequest) Owners() []PersonRef { return slices.Clone(r.owners) }

// Members returns the initial plain workspace members
func (r *WorkspaceRequest) Members() []PersonRef { return slices.Clone(r.members) }

// WorkspaceRequestBuilder assembles a WorkspaceRequest
type WorkspaceRequestBuilder struct {
	req                    WorkspaceRequest
	secondaryCommanderRole string
}

// NewWorkspaceRequestBuilder creates a builder with Public visibility
func NewWorkspaceRequestBuilder() *WorkspaceRequestBuilder {
	return &WorkspaceRequestBuilder{
		req: WorkspaceRequest{visibility: types.VisibilityPublic},
	}
}

// WithFields sets the incident fields
func (b *WorkspaceRequestBuilder) WithFields(fields IncidentFields) *WorkspaceRequestBuilder {
	b.req.fields = fields
	return b
}

// WithActor sets the submitting user
func (b *WorkspaceRequestBuilder) WithActor(actor PersonRef) *WorkspaceRequestBuilder {
	b.req.actor = actor
	return b
}

// WithCommander sets the incident commander
func (b *WorkspaceRequestBuilder) WithCommander(commander PersonRef) *WorkspaceRequestBuilder {
	b.req.commander = commander
	return b
}

// WithRoles sets the role assignments
func (b *WorkspaceRequestBuilder) WithRoles(roles RoleAssignments) *WorkspaceRequestBuilder {
	b.req.roles = slices.Clone(roles)
	return b
}

// WithSecondaryCommanderRole names the role whose members become owners
func (b *WorkspaceRequestBuilder) WithSecondaryCommanderRole(role string) *WorkspaceRequestBuilder {
	b.secondaryCommanderRole = role
	return b
}

// WithVisibility sets the workspace visibility
func (b *WorkspaceRequestBuilder) WithVisibility(v types.Visibility) *WorkspaceRequestBuilder {
	if v != "" {
		b.req.visibility = v
	}
	return b
}

// WithChannels sets additional channel names
func (b *WorkspaceRequestBuilder) WithChannels(names ...string) *WorkspaceRequestBuilder {
	b.req.channels = slices.Clone(names)
	return b
}

// WithGuests sets the guest users to invite
func (b *WorkspaceRequestBuilder) WithGuests(guests ...GuestInvite) *WorkspaceRequestBuilder {
	b.req.guests = slices.Clone(guests)
	return b
}

// Build validates the request and computes the initial owner and member
// lists. The commander and secondary commanders are owners, every other role
// user is a member, and the actor is added to both lists.
func (b *WorkspaceRequestBuilder) Build() (*WorkspaceRequest, error) {
	req := b.req

	if err := req.fields.Validate(); err != nil {
		return nil, err
	}
	if err := req.actor.Validate(); err != nil {
		return nil, goerr.Wrap(err, "actor is required", goerr.T(ErrTagInvalidInput))
	}
	if err := req.commander.Validate(); err != nil {
		return nil, goerr.Wrap(err, "incident commander is required", goerr.T(ErrTagInvalidInput))
	}
	if err := req.roles.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid roles", goerr.T(ErrTagInvalidInput))
	}
	if !req.visibility.IsValid() {
		return nil, goerr.New("invalid visibility",
			goerr.V("visibility", req.visibility),
			goerr.T(ErrTagInvalidInput))
	}

	var channels []string
	for _, name := range req.channels {
		name = strings.TrimSpace(name)
		if name != "" && !slices.Contains(channels, name) {
			channels = append(channels, name)
		}
	}
	req.channels = channels

	roleUsers, secondary := req.roles.Partition(b.secondaryCommanderRole)
	req.owners = UniquePersons([]PersonRef{req.commander}, secondary, []PersonRef{req.actor})

	ownerSet := make(map[types.DirectoryID]bool, len(req.owners))
	for _, o := range req.owners {
		ownerSet[o.ID] = true
	}
	var members []PersonRef
	for _, u := range roleUsers {
		if !ownerSet[u.ID] {
			members = append(members, u)
		}
	}
	req.members = UniquePersons(members, []PersonRef{req.actor})

	return &req, nil
}

// ProvisionInput is the wire form of a provisioning request
type ProvisionInput struct {
	Incident   IncidentFields   `json:"incident" yaml:"incident"`
	Actor      PersonRef        `json:"actor" yaml:"actor"`
	Commander  PersonRef        `json:"commander" yaml:"commander"`
	Roles      RoleAssignments  `json:"roles" yaml:"roles"`
	Visibility types.Visibility `json:"visibility" yaml:"visibility"`
	Channels   []string         `json:"channels" yaml:"channels"`
	Guests     []GuestInvite    `json:"guests" yaml:"guests"`
}

// Build converts the input into a WorkspaceRequest
func (in *ProvisionInput) Build(secondaryCommanderRole string) (*WorkspaceRequest, error) {
	return NewWorkspaceRequestBuilder().
		WithFields(in.Incident).
		WithActor(normalizePerson(in.Actor)).
		WithCommander(normalizePerson(in.Commander)).
		WithRoles(normalizeRoles(in.Roles)).
		WithSecondaryCommanderRole(secondaryCommanderRole).
		WithVisibility(in.Visibility).
		WithChannels(in.Channels...).
		WithGuests(in.Guests...).
		Build()
}

// ReconcileInput is the wire form of a membership reconciliation request
type ReconcileInput struct {
	Incident        IncidentFields  `json:"incident" yaml:"incident"`
	Actor           PersonRef       `json:"actor" yaml:"actor"`
	Commander       PersonRef       `json:"commander" yaml:"commander"`
	Roles           RoleAssignments `json:"roles" yaml:"roles"`
	Guests          []GuestInvite   `json:"guests" yaml:"guests"`
	ReasonForUpdate string          `json:"reason_for_update" yaml:"reason_for_update"`
}

// Normalize returns a copy with every directory id normalized
func (in *ReconcileInput) Normalize() *ReconcileInput {
	out := *in
	out.Actor = normalizePerson(in.Actor)
	out.Commander = normalizePerson(in.Commander)
	out.Roles = normalizeRoles(in.Roles)
	out.Guests = slices.Clone(in.Guests)
	return &out
}

// Validate checks the reconciliation input
func (in *ReconcileInput) Validate() error {
	if err := in.Incident.Validate(); err != nil {
		return err
	}
	if err := in.Actor.Validate(); err != nil {
		return goerr.Wrap(err, "actor is required", goerr.T(ErrTagInvalidInput))
	}
	if err := in.Commander.Validate(); err != nil {
		return goerr.Wrap(err, "incident commander is required", goerr.T(ErrTagInvalidInput))
	}
	if err := in.Roles.Validate(); err != nil {
		return goerr.Wrap(err, "invalid roles", goerr.T(ErrTagInvalidInput))
	}
	if strings.TrimSpace(in.ReasonForUpdate) == "" {
		return goerr.New("reason for update is required", goerr.T(ErrTagInvalidInput))
	}
	return nil
}

func normalizePerson(p PersonRef) PersonRef {
	p.ID = types.NewDirectoryID(p.ID.String())
	return p
}

func normalizeRoles(roles RoleAssignments) RoleAssignments {
	out := make(RoleAssignments, len(roles))
	for i, r := range roles {
		users := make([]PersonRef, len(r.Users))
		for j, u := range r.Users {
			users[j] = normalizePerson(u)
		}
		r.Users = users
		if r.Lead != nil {
			lead := normalizePerson(*r.Lead)
			r.Lead = &lead
		}
		out[i] = r
	}
	return out
}
