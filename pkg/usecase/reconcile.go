package usecase

import (
	"context"
	"slices"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/muster/pkg/domain/interfaces"
	"github.com/secmon-lab/muster/pkg/domain/model"
	"github.com/secmon-lab/muster/pkg/domain/types"
	"github.com/secmon-lab/muster/pkg/utils/apperr"
	"github.com/secmon-lab/muster/pkg/utils/async"
	"github.com/secmon-lab/muster/pkg/utils/logging"
)

// Messages reported by reconciliation runs
const (
	ReconcileSuccessMessage = "Incident workspace updated successfully"
	ReconcileFailureMessage = "Failed to update the incident workspace"
)

// Reconciliation brings an existing workspace in line with updated role
// assignments. Changes already applied are never reverted.
type Reconciliation struct {
	directory interfaces.DirectoryService
	store     interfaces.IncidentStore
	workspace *model.WorkspaceConfig
	config    *RunConfig
	tags      *TagSynchronizer
	guests    *GuestInviter
}

// NewReconciliation creates a Reconciliation use case
func NewReconciliation(directory interfaces.DirectoryService, store interfaces.IncidentStore, workspace *model.WorkspaceConfig, opts ...RunOption) *Reconciliation {
	config := NewRunConfig(opts...)
	return &Reconciliation{
		directory: directory,
		store:     store,
		workspace: workspace,
		config:    config,
		tags:      NewTagSynchronizer(directory, config.tagPolicy),
		guests:    NewGuestInviter(directory, workspace.GuestRedirectURL),
	}
}

type reconcileState struct {
	record      *model.IncidentRecord // State before this run
	displayName string
	snapshot    *model.MembershipSnapshot
	diff        *model.MembershipDiff
	guests      *async.Future[*model.InvitationResult]
	warnings    []string
}

func (s reconcileState) withWarning(msg string) reconcileState {
	s.warnings = append(append([]string{}, s.warnings...), msg)
	return s
}

func (s reconcileState) teamID() types.TeamID {
	return s.record.TeamID()
}

func (s reconcileState) commanderChanged(in *model.ReconcileInput) bool {
	return !s.record.Commander.Is(in.Commander)
}

type reconcileStep struct {
	name string
	run  func(ctx context.Context, in *model.ReconcileInput, s reconcileState) (reconcileState, error)
}

// Reconcile validates the input, loads the incident and runs the pipeline.
// The error is non-nil only when the input is rejected or the incident has
// no workspace; pipeline failures are reported in the outcome.
func (u *Reconciliation) Reconcile(ctx context.Context, id types.IncidentID, in *model.ReconcileInput) (*model.RunOutcome, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	record, err := u.store.GetIncidentRecord(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get incident record", goerr.V("incident_id", id))
	}
	if record == nil {
		return nil, goerr.Wrap(model.ErrIncidentNotFound, "incident not found",
			goerr.V("incident_id", id), goerr.T(model.ErrTagNotFound))
	}
	if !record.HasWorkspace() {
		return nil, goerr.New("incident has no workspace",
			goerr.V("incident_id", id), goerr.T(model.ErrTagNotFound))
	}

	outcome := u.run(ctx, record, in)
	u.config.notify(ctx, &model.OutcomeEvent{
		Kind:         model.RunKindReconcile,
		IncidentName: in.Incident.Name,
		Actor:        in.Actor,
		Outcome:      outcome,
	})
	return outcome, nil
}

func (u *Reconciliation) run(ctx context.Context, record *model.IncidentRecord, in *model.ReconcileInput) *model.RunOutcome {
	ctx = logging.With(ctx,
		"requestID", types.NewRequestID(),
		"actor", in.Actor.ID,
		"incidentID", record.ID)
	logger := ctxlog.From(ctx)
	logger.Info("Reconciling incident workspace", "teamID", record.TeamID())

	state := reconcileState{
		record:      record,
		displayName: u.workspace.TeamDisplayName(record.ID, in.Incident),
	}

	steps := []reconcileStep{
		{name: "update_incident_record", run: u.updateRecord},
		{name: "dispatch_guest_invitations", run: u.dispatchGuests},
		{name: "diff_membership", run: u.diffMembership},
		{name: "replace_commander", run: u.replaceCommander},
		{name: "remove_members", run: u.removeMembers},
		{name: "add_owners", run: u.addOwners},
		{name: "add_members", run: u.addMembers},
		{name: "rename_workspace", run: u.rename},
		{name: "sync_tags", run: u.syncTags},
	}

	for _, step := range steps {
		next, err := step.run(logging.With(ctx, "step", step.name), in, state)
		if err != nil {
			apperr.Handle(ctx, err, "step", step.name)
			if state.guests != nil {
				// Invitations already in flight still finish before reporting
				if msg, ok := joinGuests(ctx, state.guests); !ok {
					state = state.withWarning(msg)
				}
			}
			return &model.RunOutcome{
				ErrorMessage: ReconcileFailureMessage + ": " + step.name,
				Warnings:     append([]string{}, state.warnings...),
				IncidentID:   record.ID,
				TeamURL:      record.TeamWebURL,
			}
		}
		state = next
	}

	if state.guests != nil {
		if msg, ok := joinGuests(ctx, state.guests); !ok {
			state = state.withWarning(msg)
		}
	}

	logger.Info("Incident workspace reconciled", "warnings", len(state.warnings))
	return &model.RunOutcome{
		Success:    true,
		Message:    ReconcileSuccessMessage,
		Warnings:   append([]string{}, state.warnings...),
		IncidentID: record.ID,
		TeamURL:    record.TeamWebURL,
	}
}

func (u *Reconciliation) updateRecord(ctx context.Context, in *model.ReconcileInput, s reconcileState) (reconcileState, error) {
	roles := in.Roles
	if roles == nil {
		roles = model.RoleAssignments{}
	}
	update := &model.IncidentUpdate{
		Fields:          &in.Incident,
		Commander:       &in.Commander,
		Roles:           roles,
		ModifiedBy:      &in.Actor,
		ReasonForUpdate: &in.ReasonForUpdate,
	}
	if err := u.store.UpdateIncidentRecord(ctx, s.record.ID, update); err != nil {
		return s, goerr.Wrap(err, "failed to update incident record")
	}
	return s, nil
}

func (u *Reconciliation) dispatchGuests(ctx context.Context, in *model.ReconcileInput, s reconcileState) (reconcileState, error) {
	guests := model.DedupeGuests(in.Guests)
	if len(guests) == 0 {
		return s, nil
	}

	target := GuestTarget{
		GroupID:     s.record.TeamGroupID,
		TeamID:      s.teamID(),
		TeamName:    s.displayName,
		TeamURL:     s.record.TeamWebURL,
		Description: in.Incident.Description,
	}
	s.guests = async.Go(ctx, func(ctx context.Context) (*model.InvitationResult, error) {
		members, err := u.directory.GetTeamMembers(ctx, target.TeamID)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to get team members for guest invitation")
		}
		return u.guests.Invite(ctx, target, guests, members), nil
	})
	return s, nil
}

func (u *Reconciliation) diffMembership(ctx context.Context, in *model.ReconcileInput, s reconcileState) (reconcileState, error) {
	snapshot, err := u.directory.GetTeamMembers(ctx, s.teamID())
	if err != nil {
		return s, goerr.Wrap(err, "failed to get team members", goerr.V("team_id", s.teamID()))
	}

	s.snapshot = snapshot
	s.diff = DiffMembership(DiffInput{
		Snapshot:               snapshot,
		ExistingRoles:          s.record.Roles,
		NewRoles:               in.Roles,
		ExistingCommander:      s.record.Commander,
		NewCommander:           in.Commander,
		CreatorID:              s.record.CreatedBy.ID,
		SecondaryCommanderRole: u.workspace.SecondaryCommanderRole,
	})
	ctxlog.From(ctx).Debug("Membership diff computed",
		"newOwners", len(s.diff.NewOwners),
		"newMembers", len(s.diff.NewMembers),
		"removed", len(s.diff.RemovedMembershipIDs),
		"commanderRemoved", s.diff.RemovedCommanderMembershipID != "")
	return s, nil
}

func (u *Reconciliation) replaceCommander(ctx context.Context, in *model.ReconcileInput, s reconcileState) (reconcileState, error) {
	if !s.commanderChanged(in) {
		return s, nil
	}

	if err := u.directory.AddTeamMembers(ctx, s.teamID(), []model.PersonRef{in.Commander}, true); err != nil {
		return s, goerr.Wrap(err, "failed to add incident commander as owner",
			goerr.V("commander", in.Commander.ID))
	}

	specs := BuildTagSpecs(u.workspace.CommanderRole, in.Commander, nil)
	if result := u.tags.Resync(ctx, s.teamID(), specs); len(result.Failed) > 0 {
		s = s.withWarning("Failed to update tags: " + strings.Join(result.FailedNames(), ", "))
	}
	return s, nil
}

func (u *Reconciliation) removeMembers(ctx context.Context, in *model.ReconcileInput, s reconcileState) (reconcileState, error) {
	ids := s.diff.RemovedMembershipIDs
	if s.diff.RemovedCommanderMembershipID != "" {
		ids = append([]types.MembershipID{s.diff.RemovedCommanderMembershipID}, ids...)
	}
	ids = append(slices.Clone(ids), u.pendingRemovals(in, s)...)

	var failed []types.MembershipID
	var names []string
	seen := make(map[types.MembershipID]bool)
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		err := u.directory.RemoveTeamMember(ctx, s.teamID(), id)
		switch {
		case err == nil, model.IsNotFound(err):
		default:
			failed = append(failed, id)
			names = append(names, memberLabel(s.snapshot, id))
			apperr.Handle(ctx, goerr.Wrap(err, "failed to remove team member"), "membership_id", id)
		}
	}

	if len(failed) > 0 || len(s.record.PendingRemovals) > 0 {
		update := &model.IncidentUpdate{PendingRemovals: &failed}
		if err := u.store.UpdateIncidentRecord(ctx, s.record.ID, update); err != nil {
			apperr.Handle(ctx, goerr.Wrap(err, "failed to save pending removals"), "count", len(failed))
			s = s.withWarning("Failed to save the members left in the team for the next update")
		}
	}
	if len(failed) > 0 {
		s = s.withWarning("Failed to remove some members from the team: " + strings.Join(names, ", "))
	}
	return s, nil
}

// pendingRemovals returns the memberships an earlier run failed to remove
// that still exist and whose user is not wanted by this request
func (u *Reconciliation) pendingRemovals(in *model.ReconcileInput, s reconcileState) []types.MembershipID {
	wanted := map[types.DirectoryID]bool{
		in.Commander.ID:       true,
		s.record.CreatedBy.ID: true,
	}
	for _, p := range in.Roles.Members() {
		wanted[p.ID] = true
	}

	var ids []types.MembershipID
	for _, id := range s.record.PendingRemovals {
		m := s.snapshot.FindMembership(id)
		if m == nil || wanted[m.UserID] {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func memberLabel(snapshot *model.MembershipSnapshot, id types.MembershipID) string {
	m := snapshot.FindMembership(id)
	switch {
	case m == nil:
		return string(id)
	case m.DisplayName != "":
		return m.DisplayName
	default:
		return string(m.UserID)
	}
}

func (u *Reconciliation) addOwners(ctx context.Context, in *model.ReconcileInput, s reconcileState) (reconcileState, error) {
	if len(s.diff.NewOwners) == 0 {
		return s, nil
	}
	if err := u.directory.AddTeamMembers(ctx, s.teamID(), s.diff.NewOwners, true); err != nil {
		return s, goerr.Wrap(err, "failed to add team owners", goerr.V("count", len(s.diff.NewOwners)))
	}
	return s, nil
}

func (u *Reconciliation) addMembers(ctx context.Context, in *model.ReconcileInput, s reconcileState) (reconcileState, error) {
	if len(s.diff.NewMembers) == 0 {
		return s, nil
	}
	if err := u.directory.AddTeamMembers(ctx, s.teamID(), s.diff.NewMembers, false); err != nil {
		return s, goerr.Wrap(err, "failed to add team members", goerr.V("count", len(s.diff.NewMembers)))
	}
	return s, nil
}

func (u *Reconciliation) rename(ctx context.Context, in *model.ReconcileInput, s reconcileState) (reconcileState, error) {
	if err := u.directory.PatchGroup(ctx, s.record.TeamGroupID, &model.GroupPatch{DisplayName: s.displayName}); err != nil {
		return s, goerr.Wrap(err, "failed to rename workspace", goerr.V("display_name", s.displayName))
	}
	return s, nil
}

func (u *Reconciliation) syncTags(ctx context.Context, in *model.ReconcileInput, s reconcileState) (reconcileState, error) {
	specs := BuildTagSpecs(u.workspace.CommanderRole, in.Commander, in.Roles)
	if result := u.tags.Resync(ctx, s.teamID(), specs); len(result.Failed) > 0 {
		s = s.withWarning("Failed to update tags: " + strings.Join(result.FailedNames(), ", "))
	}
	return s, nil
}
