package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/muster/pkg/domain/interfaces"
	"github.com/secmon-lab/muster/pkg/domain/model"
	"github.com/secmon-lab/muster/pkg/domain/types"
	"github.com/secmon-lab/muster/pkg/utils/apperr"
	"github.com/secmon-lab/muster/pkg/utils/async"
	"github.com/secmon-lab/muster/pkg/utils/logging"
)

// Messages reported by provisioning runs
const (
	ProvisionSuccessMessage = "Incident workspace created successfully"
	ProvisionFailureMessage = "Something went wrong while creating the incident workspace. Please try again."
)

// SharePointTabAppID is the tab application that renders site pages and lists
const SharePointTabAppID = "2a527703-1f6f-4559-a332-d8a7d288cd88"

// RunConfig holds retry budgets and the wait function shared by the pipelines
type RunConfig struct {
	teamPolicy    RetryPolicy
	channelPolicy RetryPolicy
	tagPolicy     RetryPolicy
	sleep         SleepFunc
	notifier      interfaces.Notifier
}

// RunOption is a functional option for configuring pipelines
type RunOption func(*RunConfig)

// WithTeamPolicy overrides the team creation budget
func WithTeamPolicy(p RetryPolicy) RunOption {
	return func(c *RunConfig) {
		c.teamPolicy = p
	}
}

// WithChannelPolicy overrides the per-channel budget
func WithChannelPolicy(p RetryPolicy) RunOption {
	return func(c *RunConfig) {
		c.channelPolicy = p
	}
}

// WithTagPolicy overrides the tag creation budget
func WithTagPolicy(p RetryPolicy) RunOption {
	return func(c *RunConfig) {
		c.tagPolicy = p
	}
}

// WithSleep replaces every wait of the pipeline, retry delays included
func WithSleep(sleep SleepFunc) RunOption {
	return func(c *RunConfig) {
		c.sleep = sleep
	}
}

// WithNotifier reports every run outcome to n
func WithNotifier(n interfaces.Notifier) RunOption {
	return func(c *RunConfig) {
		c.notifier = n
	}
}

// notify reports the outcome. Failures are logged and never change the outcome.
func (c *RunConfig) notify(ctx context.Context, event *model.OutcomeEvent) {
	if c.notifier == nil {
		return
	}
	if err := c.notifier.NotifyOutcome(ctx, event); err != nil {
		apperr.Handle(ctx, goerr.Wrap(err, "failed to notify outcome"), "kind", event.Kind)
	}
}

// NewRunConfig creates a RunConfig with default budgets and optional settings
func NewRunConfig(opts ...RunOption) *RunConfig {
	config := &RunConfig{
		teamPolicy:    TeamCreationPolicy,
		channelPolicy: ChannelPolicy,
		tagPolicy:     TagCreationPolicy,
		sleep:         sleepContext,
	}

	for _, opt := range opts {
		opt(config)
	}

	config.teamPolicy = config.teamPolicy.WithSleep(config.sleep)
	config.channelPolicy = config.channelPolicy.WithSleep(config.sleep)
	config.tagPolicy = config.tagPolicy.WithSleep(config.sleep)
	return config
}

// Provisioning creates an incident record and its collaboration workspace
type Provisioning struct {
	directory interfaces.DirectoryService
	store     interfaces.IncidentStore
	workspace *model.WorkspaceConfig
	config    *RunConfig
	channels  *ChannelProvisioner
	tags      *TagSynchronizer
	guests    *GuestInviter
}

// NewProvisioning creates a Provisioning use case
func NewProvisioning(directory interfaces.DirectoryService, store interfaces.IncidentStore, workspace *model.WorkspaceConfig, opts ...RunOption) *Provisioning {
	run := NewRunConfig(opts...)
	return &Provisioning{
		directory: directory,
		store:     store,
		workspace: workspace,
		config:    run,
		channels:  NewChannelProvisioner(directory, run.channelPolicy),
		tags:      NewTagSynchronizer(directory, run.tagPolicy),
		guests:    NewGuestInviter(directory, workspace.GuestRedirectURL),
	}
}

// provisionState is the pipeline context handed from one step to the next.
// Steps receive it by value and return an updated copy.
type provisionState struct {
	stage       model.ProvisioningStage
	record      *model.IncidentRecord
	displayName string
	group       *model.Group
	team        *model.Team
	site        *model.Site
	newsTab     *model.Tab
	plan        *model.Plan
	guests      *async.Future[*model.InvitationResult]
	warnings    []string
}

func (s provisionState) withWarning(msg string) provisionState {
	s.warnings = append(append([]string{}, s.warnings...), msg)
	return s
}

type provisionStep struct {
	name    string
	reaches model.ProvisioningStage // Stage entered when the step succeeds, if any
	run     func(ctx context.Context, req *model.WorkspaceRequest, s provisionState) (provisionState, error)
}

// Provision validates the input and runs the pipeline. The error is non-nil
// only when the input is rejected before anything is created.
func (u *Provisioning) Provision(ctx context.Context, in *model.ProvisionInput) (*model.RunOutcome, error) {
	req, err := in.Build(u.workspace.SecondaryCommanderRole)
	if err != nil {
		return nil, err
	}
	return u.Run(ctx, req), nil
}

// Run provisions the workspace for req. Any failure after the incident
// record exists deletes the group, if created, and the record.
func (u *Provisioning) Run(ctx context.Context, req *model.WorkspaceRequest) *model.RunOutcome {
	outcome := u.provision(ctx, req)
	u.config.notify(ctx, &model.OutcomeEvent{
		Kind:         model.RunKindProvision,
		IncidentName: req.Fields().Name,
		Actor:        req.Actor(),
		Outcome:      outcome,
	})
	return outcome
}

func (u *Provisioning) provision(ctx context.Context, req *model.WorkspaceRequest) *model.RunOutcome {
	ctx = logging.With(ctx, "requestID", types.NewRequestID(), "actor", req.Actor().ID)
	logger := ctxlog.From(ctx)

	record, err := u.store.CreateIncidentRecord(ctx, model.NewIncidentRecord(req))
	if err != nil {
		apperr.Handle(ctx, goerr.Wrap(err, "failed to create incident record"), "step", "create_incident_record")
		return &model.RunOutcome{ErrorMessage: ProvisionFailureMessage, Warnings: []string{}}
	}

	ctx = logging.With(ctx, "incidentID", record.ID)
	logger = ctxlog.From(ctx)
	logger.Info("Provisioning incident workspace", "name", req.Fields().Name)

	state := provisionState{
		stage:       model.StageStart,
		record:      record,
		displayName: u.workspace.TeamDisplayName(record.ID, req.Fields()),
	}

	steps := []provisionStep{
		{name: "create_group", reaches: model.StageGroupCreated, run: u.createGroup},
		{name: "create_team", reaches: model.StageTeamReady, run: u.createTeam},
		{name: "dispatch_guest_invitations", run: u.dispatchGuests},
		{name: "create_channels", run: u.createChannels},
		{name: "read_site", run: u.readSite},
		{name: "create_news_channel", run: u.createNewsChannel},
		{name: "create_assessment_channel", reaches: model.StageChannelsProvisioned, run: u.createAssessmentChannel},
		{name: "create_plan", run: u.createPlan},
		{name: "apply_visibility", run: u.applyVisibility},
		{name: "post_summary", reaches: model.StageArtifactsReady, run: u.postSummary},
		{name: "sync_tags", reaches: model.StageTagsSynced, run: u.syncTags},
		{name: "commit", reaches: model.StageCommitted, run: u.commit},
	}

	for _, step := range steps {
		next, err := step.run(logging.With(ctx, "step", step.name), req, state)
		if err != nil {
			apperr.Handle(ctx, err, "step", step.name, "stage", state.stage)
			return u.rollback(ctx, state)
		}
		if step.reaches != "" {
			next.stage = step.reaches
			logger.Info("Provisioning stage reached", "stage", next.stage)
		}
		state = next
	}

	return u.complete(ctx, state)
}

func (u *Provisioning) createGroup(ctx context.Context, req *model.WorkspaceRequest, s provisionState) (provisionState, error) {
	visibility := req.Visibility()
	if u.workspace.PrivateAfterProvision {
		// Private groups are patched once the workspace is complete
		visibility = types.VisibilityPublic
	}

	spec := &model.GroupSpec{
		DisplayName:  s.displayName,
		MailNickname: u.workspace.MailNickname(s.record.ID),
		Description:  req.Fields().Description,
		Visibility:   visibility,
		Owners:       directoryIDs(req.Owners()),
		Members:      directoryIDs(req.Members()),
	}

	group, err := u.directory.CreateGroup(ctx, spec)
	if err != nil {
		return s, goerr.Wrap(err, "failed to create group", goerr.V("display_name", spec.DisplayName))
	}
	s.group = group
	return s, nil
}

func (u *Provisioning) createTeam(ctx context.Context, req *model.WorkspaceRequest, s provisionState) (provisionState, error) {
	teamID := types.TeamID(s.group.ID)
	attempt := Execute(ctx, u.config.teamPolicy, Classifier[*model.Team]{
		ResolveExisting: func(ctx context.Context) (*model.Team, error) {
			return u.directory.GetTeam(ctx, teamID)
		},
	}, func(ctx context.Context) (*model.Team, error) {
		return u.directory.CreateTeam(ctx, s.group.ID, model.DefaultTeamSettings())
	})

	if !attempt.Succeeded() {
		return s, goerr.Wrap(attempt.Err, "failed to create team",
			goerr.V("group_id", s.group.ID),
			goerr.V("attempts", attempt.Attempts))
	}

	team := attempt.Value
	if team == nil {
		team = &model.Team{ID: teamID}
	}
	if team.DisplayName == "" {
		team.DisplayName = s.displayName
	}
	ctxlog.From(ctx).Info("Team ready", "teamID", team.ID, "outcome", attempt.Outcome, "attempts", attempt.Attempts)
	s.team = team
	return s, nil
}

func (u *Provisioning) dispatchGuests(ctx context.Context, req *model.WorkspaceRequest, s provisionState) (provisionState, error) {
	guests := req.Guests()
	if len(guests) == 0 {
		return s, nil
	}

	target := GuestTarget{
		GroupID:     s.group.ID,
		TeamID:      s.team.ID,
		TeamName:    s.team.DisplayName,
		TeamURL:     s.team.WebURL,
		Description: req.Fields().Description,
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

func (u *Provisioning) createChannels(ctx context.Context, req *model.WorkspaceRequest, s provisionState) (provisionState, error) {
	result := u.channels.Provision(ctx, s.team.ID, u.workspace.ChannelsFor(req))
	if !result.IsFullyCreated() {
		s = s.withWarning("Failed to create channels: " + strings.Join(result.FailedNames(), ", "))
	}
	return s, nil
}

func (u *Provisioning) readSite(ctx context.Context, req *model.WorkspaceRequest, s provisionState) (provisionState, error) {
	if delay := u.workspace.SiteSettleDelay; delay > 0 {
		ctxlog.From(ctx).Debug("Waiting for site to settle", "delay", delay)
		if err := u.config.sleep(ctx, delay); err != nil {
			return s, goerr.Wrap(err, "interrupted while waiting for site")
		}
	}

	site, err := u.directory.GetSite(ctx, s.group.ID)
	if err != nil {
		return s, goerr.Wrap(err, "failed to get site", goerr.V("group_id", s.group.ID))
	}
	s.site = site
	return s, nil
}

func (u *Provisioning) createNewsChannel(ctx context.Context, req *model.WorkspaceRequest, s provisionState) (provisionState, error) {
	channel, err := u.directory.CreateChannel(ctx, s.team.ID, u.workspace.AnnouncementsChannel)
	if err != nil {
		return s, goerr.Wrap(err, "failed to create announcements channel")
	}

	tab, err := u.directory.CreateTab(ctx, s.team.ID, channel.ID, newsTabSpec(u.workspace.NewsTabName, s.site))
	if err != nil {
		return s, goerr.Wrap(err, "failed to create news tab", goerr.V("channel_id", channel.ID))
	}
	s.newsTab = tab
	return s, nil
}

func (u *Provisioning) createAssessmentChannel(ctx context.Context, req *model.WorkspaceRequest, s provisionState) (provisionState, error) {
	schema := u.workspace.AssessmentList
	if _, err := u.directory.CreateList(ctx, s.site.ID, &schema); err != nil {
		return s, goerr.Wrap(err, "failed to create assessment list", goerr.V("site_id", s.site.ID))
	}

	channel, err := u.directory.CreateChannel(ctx, s.team.ID, u.workspace.AssessmentChannel)
	if err != nil {
		return s, goerr.Wrap(err, "failed to create assessment channel")
	}

	if _, err := u.directory.CreateTab(ctx, s.team.ID, channel.ID, listTabSpec(schema.DisplayName, s.site)); err != nil {
		return s, goerr.Wrap(err, "failed to create assessment tab", goerr.V("channel_id", channel.ID))
	}
	return s, nil
}

func (u *Provisioning) createPlan(ctx context.Context, req *model.WorkspaceRequest, s provisionState) (provisionState, error) {
	plan, err := u.directory.CreatePlan(ctx, s.group.ID, s.displayName)
	if err != nil {
		return s, goerr.Wrap(err, "failed to create plan", goerr.V("group_id", s.group.ID))
	}
	s.plan = plan
	return s, nil
}

func (u *Provisioning) applyVisibility(ctx context.Context, req *model.WorkspaceRequest, s provisionState) (provisionState, error) {
	if !u.workspace.PrivateAfterProvision || req.Visibility() != types.VisibilityPrivate {
		return s, nil
	}
	if err := u.directory.PatchGroup(ctx, s.group.ID, &model.GroupPatch{Visibility: types.VisibilityPrivate}); err != nil {
		return s, goerr.Wrap(err, "failed to set group visibility")
	}
	return s, nil
}

func (u *Provisioning) postSummary(ctx context.Context, req *model.WorkspaceRequest, s provisionState) (provisionState, error) {
	channel, err := u.directory.GetPrimaryChannel(ctx, s.team.ID)
	if err != nil {
		return s, goerr.Wrap(err, "failed to get primary channel")
	}

	fields := req.Fields()
	card := &model.SummaryCard{
		TeamID:           s.team.ID,
		TeamDisplayName:  s.team.DisplayName,
		IncidentName:     fields.Name,
		Severity:         fields.Severity,
		Location:         fields.Location,
		CloudStorageLink: fields.CloudStorageLink,
		CommanderName:    req.Commander().DisplayName,
	}
	if err := u.directory.PostChannelMessage(ctx, s.team.ID, channel.ID, card); err != nil {
		return s, goerr.Wrap(err, "failed to post summary message", goerr.V("channel_id", channel.ID))
	}
	return s, nil
}

func (u *Provisioning) syncTags(ctx context.Context, req *model.WorkspaceRequest, s provisionState) (provisionState, error) {
	specs := BuildTagSpecs(u.workspace.CommanderRole, req.Commander(), req.Roles())
	result := u.tags.SyncTags(ctx, s.team.ID, specs)
	if len(result.Failed) > 0 {
		s = s.withWarning("Failed to create tags: " + strings.Join(result.FailedNames(), ", "))
	}
	return s, nil
}

func (u *Provisioning) commit(ctx context.Context, req *model.WorkspaceRequest, s provisionState) (provisionState, error) {
	update := &model.IncidentUpdate{
		TeamGroupID: &s.group.ID,
		TeamWebURL:  &s.team.WebURL,
	}
	if s.plan != nil {
		update.PlanID = &s.plan.ID
	}
	if s.newsTab != nil {
		update.NewsTabLink = &s.newsTab.WebURL
	}

	if err := u.store.UpdateIncidentRecord(ctx, s.record.ID, update); err != nil {
		return s, goerr.Wrap(err, "failed to update incident record")
	}
	return s, nil
}

func (u *Provisioning) rollback(ctx context.Context, s provisionState) *model.RunOutcome {
	logger := ctxlog.From(ctx)
	logger.Warn("Provisioning failed, rolling back", "stage", s.stage)

	s.stage = model.StageRollingBack
	if s.guests != nil {
		guests := s.guests
		async.Dispatch(ctx, func(ctx context.Context) error {
			if msg, ok := joinGuests(ctx, guests); !ok {
				ctxlog.From(ctx).Warn("Guest invitations of a rolled back workspace did not complete", "message", msg)
			}
			return nil
		})
	}
	if s.group != nil {
		if err := u.directory.DeleteGroup(ctx, s.group.ID); err != nil {
			apperr.Handle(ctx, goerr.Wrap(err, "failed to delete group"), "step", "rollback", "group_id", s.group.ID)
		}
	}
	if err := u.store.DeleteIncidentRecord(ctx, s.record.ID); err != nil {
		apperr.Handle(ctx, goerr.Wrap(err, "failed to delete incident record"), "step", "rollback")
	}
	s.stage = model.StageRolledBack
	logger.Info("Provisioning rolled back", "stage", s.stage)

	return &model.RunOutcome{
		ErrorMessage: ProvisionFailureMessage,
		Warnings:     []string{},
	}
}

func (u *Provisioning) complete(ctx context.Context, s provisionState) *model.RunOutcome {
	if s.guests != nil {
		if msg, ok := joinGuests(ctx, s.guests); !ok {
			s = s.withWarning(msg)
		}
	}

	ctxlog.From(ctx).Info("Incident workspace provisioned",
		"teamID", s.team.ID,
		"warnings", len(s.warnings))

	return &model.RunOutcome{
		Success:    true,
		Message:    ProvisionSuccessMessage,
		Warnings:   append([]string{}, s.warnings...),
		IncidentID: s.record.ID,
		TeamURL:    s.team.WebURL,
	}
}

// joinGuests waits for a guest invitation batch and returns its message
// when the batch did not fully succeed
func joinGuests(ctx context.Context, f *async.Future[*model.InvitationResult]) (string, bool) {
	result, err := f.Wait()
	if err != nil {
		apperr.Handle(ctx, err, "step", "join_guest_invitations")
		result = guestFailure(err)
	}
	if result.IsAllSucceeded {
		return "", true
	}
	return result.Message, false
}

func directoryIDs(persons []model.PersonRef) []types.DirectoryID {
	ids := make([]types.DirectoryID, len(persons))
	for i, p := range persons {
		ids[i] = p.ID
	}
	return ids
}

// managedPath returns the server-relative path of the site
func managedPath(site *model.Site) string {
	if site.Hostname != "" {
		if _, path, ok := strings.Cut(site.WebURL, site.Hostname); ok {
			return path
		}
	}
	return ""
}

func newsTabSpec(name string, site *model.Site) *model.TabSpec {
	return &model.TabSpec{
		DisplayName: name,
		AppID:       SharePointTabAppID,
		EntityID:    uuid.New().String(),
		ContentURL:  fmt.Sprintf("%s/_layouts/15/teamslogon.aspx?spfx=true&dest=%s/_layouts/15/news.aspx", site.WebURL, managedPath(site)),
		WebsiteURL:  site.WebURL + "/_layouts/15/news.aspx",
	}
}

func listTabSpec(listName string, site *model.Site) *model.TabSpec {
	listURL := strings.ReplaceAll(listName, " ", "")
	return &model.TabSpec{
		DisplayName: listName,
		AppID:       SharePointTabAppID,
		EntityID:    uuid.New().String(),
		ContentURL:  fmt.Sprintf("%s/_layouts/15/teamslogon.aspx?spfx=true&dest=%s/Lists/%s/AllItems.aspx", site.WebURL, managedPath(site), listURL),
	}
}
