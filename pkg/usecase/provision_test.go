package usecase_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/muster/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/muster/pkg/domain/model"
	"github.com/secmon-lab/muster/pkg/domain/types"
	"github.com/secmon-lab/muster/pkg/repository"
	"github.com/secmon-lab/muster/pkg/service/directory"
	"github.com/secmon-lab/muster/pkg/usecase"
)

// testDirectory is the in-memory directory with injectable failures
type testDirectory struct {
	*directory.Memory

	mu               sync.Mutex
	failGroup        error
	failTeam         error
	teamConflictOnce bool
	failChannels     map[string]bool
	failTab          error
	failMessage      error
	failInvite       error
	failAddMembers   error
	failRemove       error
	createTeamCalls  int
	deleteGroupCalls int
	channelAttempts  map[string]int
	removed          []types.MembershipID
}

func newTestDirectory() *testDirectory {
	return &testDirectory{
		Memory:          directory.NewMemory(),
		failChannels:    map[string]bool{},
		channelAttempts: map[string]int{},
	}
}

func (d *testDirectory) CreateGroup(ctx context.Context, spec *model.GroupSpec) (*model.Group, error) {
	if d.failGroup != nil {
		return nil, d.failGroup
	}
	return d.Memory.CreateGroup(ctx, spec)
}

func (d *testDirectory) CreateTeam(ctx context.Context, groupID types.GroupID, settings *model.TeamSettings) (*model.Team, error) {
	d.createTeamCalls++
	if d.failTeam != nil {
		return nil, d.failTeam
	}
	team, err := d.Memory.CreateTeam(ctx, groupID, settings)
	if err == nil && d.teamConflictOnce {
		d.teamConflictOnce = false
		return nil, goerr.New("Team already exists", goerr.T(model.ErrTagAlreadyExists), goerr.V(model.StatusKey, 409))
	}
	return team, err
}

func (d *testDirectory) DeleteGroup(ctx context.Context, groupID types.GroupID) error {
	d.deleteGroupCalls++
	return d.Memory.DeleteGroup(ctx, groupID)
}

func (d *testDirectory) CreateChannel(ctx context.Context, teamID types.TeamID, name string) (*model.Channel, error) {
	d.channelAttempts[name]++
	if d.failChannels[name] {
		return nil, goerr.New("internal server error", goerr.V(model.StatusKey, 500))
	}
	return d.Memory.CreateChannel(ctx, teamID, name)
}

func (d *testDirectory) CreateTab(ctx context.Context, teamID types.TeamID, channelID types.ChannelID, spec *model.TabSpec) (*model.Tab, error) {
	if d.failTab != nil {
		return nil, d.failTab
	}
	return d.Memory.CreateTab(ctx, teamID, channelID, spec)
}

func (d *testDirectory) PostChannelMessage(ctx context.Context, teamID types.TeamID, channelID types.ChannelID, card *model.SummaryCard) error {
	if d.failMessage != nil {
		return d.failMessage
	}
	return d.Memory.PostChannelMessage(ctx, teamID, channelID, card)
}

func (d *testDirectory) InviteGuest(ctx context.Context, email, displayName, redirectURL string) (types.DirectoryID, error) {
	if d.failInvite != nil {
		return "", d.failInvite
	}
	return d.Memory.InviteGuest(ctx, email, displayName, redirectURL)
}

func (d *testDirectory) AddTeamMembers(ctx context.Context, teamID types.TeamID, members []model.PersonRef, asOwner bool) error {
	if d.failAddMembers != nil {
		return d.failAddMembers
	}
	return d.Memory.AddTeamMembers(ctx, teamID, members, asOwner)
}

func (d *testDirectory) RemoveTeamMember(ctx context.Context, teamID types.TeamID, membershipID types.MembershipID) error {
	d.mu.Lock()
	d.removed = append(d.removed, membershipID)
	d.mu.Unlock()
	if d.failRemove != nil {
		return d.failRemove
	}
	return d.Memory.RemoveTeamMember(ctx, teamID, membershipID)
}

// testStore is the in-memory store with injectable failures
type testStore struct {
	*repository.Memory
	failCreate  error
	failUpdate  error
	deleteCalls int
}

func newTestStore() *testStore {
	return &testStore{Memory: repository.NewMemory()}
}

func (s *testStore) CreateIncidentRecord(ctx context.Context, record *model.IncidentRecord) (*model.IncidentRecord, error) {
	if s.failCreate != nil {
		return nil, s.failCreate
	}
	return s.Memory.CreateIncidentRecord(ctx, record)
}

func (s *testStore) UpdateIncidentRecord(ctx context.Context, id types.IncidentID, update *model.IncidentUpdate) error {
	if s.failUpdate != nil {
		return s.failUpdate
	}
	return s.Memory.UpdateIncidentRecord(ctx, id, update)
}

func (s *testStore) DeleteIncidentRecord(ctx context.Context, id types.IncidentID) error {
	s.deleteCalls++
	return s.Memory.DeleteIncidentRecord(ctx, id)
}

func testWorkspaceConfig() *model.WorkspaceConfig {
	cfg := model.DefaultWorkspaceConfig()
	cfg.SiteSettleDelay = 30 * time.Second
	return cfg
}

func provisionInput() *model.ProvisionInput {
	return &model.ProvisionInput{
		Incident: model.IncidentFields{
			Name:        "River",
			Type:        "Flood",
			Description: "River flooding downtown",
			Location:    "Downtown",
			Severity:    "High",
			StartTime:   time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		},
		Actor:     person("actor"),
		Commander: person("ic"),
		Roles: model.RoleAssignments{
			{Role: secondaryRole, Users: persons("sic")},
			{Role: "Logistics", Users: persons("u1", "u2")},
			{Role: "Planning", Users: persons("u3"), Lead: &model.PersonRef{ID: "u4", DisplayName: "User u4"}},
		},
		Visibility: types.VisibilityPublic,
	}
}

func buildRequest(t *testing.T, in *model.ProvisionInput) *model.WorkspaceRequest {
	req, err := in.Build(secondaryRole)
	gt.NoError(t, err).Required()
	return req
}

func TestProvisioningSuccess(t *testing.T) {
	ctx := context.Background()
	dir := newTestDirectory()
	store := newTestStore()
	var delays []time.Duration
	notifier := &mocks.NotifierMock{
		NotifyOutcomeFunc: func(ctx context.Context, event *model.OutcomeEvent) error { return nil },
	}

	uc := usecase.NewProvisioning(dir, store, testWorkspaceConfig(),
		usecase.WithSleep(recordSleep(&delays)),
		usecase.WithNotifier(notifier))

	outcome, err := uc.Provision(ctx, provisionInput())
	gt.NoError(t, err).Required()

	gt.True(t, outcome.Success)
	gt.Equal(t, usecase.ProvisionSuccessMessage, outcome.Message)
	gt.Equal(t, 0, len(outcome.Warnings))
	gt.Equal(t, types.IncidentID(1), outcome.IncidentID)
	gt.S(t, outcome.TeamURL).Contains("/teams/")

	record, err := store.GetIncidentRecord(ctx, outcome.IncidentID)
	gt.NoError(t, err).Required()
	gt.True(t, record.HasWorkspace())
	gt.Equal(t, outcome.TeamURL, record.TeamWebURL)
	gt.NotEqual(t, types.PlanID(""), record.PlanID)
	gt.True(t, strings.HasSuffix(record.NewsTabLink, "/_layouts/15/news.aspx"))

	teamID := record.TeamID()
	gt.Equal(t, "1-EOC-River-Flood-05Mar2024", dir.GroupDisplayName(record.TeamGroupID))
	gt.Equal(t,
		[]string{"Announcements", "Assessment", "General", "Logistics", "Planning", "Recovery"},
		dir.ChannelNames(teamID))

	gt.Equal(t, []types.DirectoryID{"ic"}, dir.TagMembers(teamID, "Incident Commander"))
	gt.Equal(t, []types.DirectoryID{"u1", "u2"}, dir.TagMembers(teamID, "Logistics"))
	gt.Equal(t, []types.DirectoryID{"u3", "u4"}, dir.TagMembers(teamID, "Planning"))

	messages := dir.Messages(teamID)
	gt.Equal(t, 1, len(messages))
	gt.Equal(t, "River", messages[0].IncidentName)
	gt.Equal(t, "User ic", messages[0].CommanderName)

	snapshot, err := dir.GetTeamMembers(ctx, teamID)
	gt.NoError(t, err).Required()
	gt.True(t, snapshot.Find("ic").IsOwner())
	gt.True(t, snapshot.Find("sic").IsOwner())
	gt.True(t, snapshot.Find("actor").IsOwner())
	gt.False(t, snapshot.Find("u1").IsOwner())

	gt.Equal(t, []time.Duration{30 * time.Second}, delays)
	gt.Equal(t, 1, dir.createTeamCalls)
	gt.Equal(t, 0, dir.deleteGroupCalls)

	gt.Equal(t, 1, len(notifier.NotifyOutcomeCalls()))
	gt.Equal(t, model.RunKindProvision, notifier.NotifyOutcomeCalls()[0].Event.Kind)
	gt.True(t, notifier.NotifyOutcomeCalls()[0].Event.Outcome.Success)
}

func TestProvisioningTeamConflictIsSuccess(t *testing.T) {
	dir := newTestDirectory()
	dir.teamConflictOnce = true
	store := newTestStore()

	uc := usecase.NewProvisioning(dir, store, testWorkspaceConfig(), usecase.WithSleep(recordSleep(new([]time.Duration))))
	outcome := uc.Run(context.Background(), buildRequest(t, provisionInput()))

	gt.True(t, outcome.Success)
	gt.Equal(t, 1, dir.createTeamCalls)
	gt.Equal(t, 0, dir.deleteGroupCalls)
}

func TestProvisioningRollback(t *testing.T) {
	ctx := context.Background()

	t.Run("team creation exhausts a budget of one", func(t *testing.T) {
		dir := newTestDirectory()
		dir.failTeam = goerr.New("not found", goerr.V(model.StatusKey, 404))
		store := newTestStore()

		uc := usecase.NewProvisioning(dir, store, testWorkspaceConfig(),
			usecase.WithTeamPolicy(usecase.TeamCreationPolicy.WithMaxAttempts(1)),
			usecase.WithSleep(recordSleep(new([]time.Duration))))
		outcome := uc.Run(ctx, buildRequest(t, provisionInput()))

		gt.False(t, outcome.Success)
		gt.Equal(t, usecase.ProvisionFailureMessage, outcome.ErrorMessage)
		gt.Equal(t, 1, dir.createTeamCalls)
		gt.Equal(t, 1, dir.deleteGroupCalls)
		gt.Equal(t, 1, store.deleteCalls)
		gt.Equal(t, 0, store.Count())
		gt.Equal(t, 1, len(dir.DeletedGroups()))
	})

	t.Run("team creation retries up to its budget", func(t *testing.T) {
		dir := newTestDirectory()
		dir.failTeam = goerr.New("not found", goerr.V(model.StatusKey, 404))
		store := newTestStore()
		var delays []time.Duration

		uc := usecase.NewProvisioning(dir, store, testWorkspaceConfig(), usecase.WithSleep(recordSleep(&delays)))
		outcome := uc.Run(ctx, buildRequest(t, provisionInput()))

		gt.False(t, outcome.Success)
		gt.Equal(t, usecase.TeamCreationPolicy.MaxAttempts, dir.createTeamCalls)
		gt.Equal(t, usecase.TeamCreationPolicy.MaxAttempts-1, len(delays))
		gt.Equal(t, 1, dir.deleteGroupCalls)
	})

	t.Run("group creation failure deletes only the record", func(t *testing.T) {
		dir := newTestDirectory()
		dir.failGroup = goerr.New("bad request", goerr.V(model.StatusKey, 400))
		store := newTestStore()

		uc := usecase.NewProvisioning(dir, store, testWorkspaceConfig())
		outcome := uc.Run(ctx, buildRequest(t, provisionInput()))

		gt.False(t, outcome.Success)
		gt.Equal(t, 0, dir.deleteGroupCalls)
		gt.Equal(t, 0, dir.createTeamCalls)
		gt.Equal(t, 1, store.deleteCalls)
		gt.Equal(t, 0, store.Count())
	})

	t.Run("tab failure is fatal", func(t *testing.T) {
		dir := newTestDirectory()
		dir.failTab = goerr.New("internal server error", goerr.V(model.StatusKey, 500))
		store := newTestStore()

		uc := usecase.NewProvisioning(dir, store, testWorkspaceConfig(), usecase.WithSleep(recordSleep(new([]time.Duration))))
		outcome := uc.Run(ctx, buildRequest(t, provisionInput()))

		gt.False(t, outcome.Success)
		gt.Equal(t, 1, dir.deleteGroupCalls)
		gt.Equal(t, 1, store.deleteCalls)
	})

	t.Run("summary message failure is fatal", func(t *testing.T) {
		dir := newTestDirectory()
		dir.failMessage = goerr.New("forbidden", goerr.V(model.StatusKey, 403))
		store := newTestStore()

		uc := usecase.NewProvisioning(dir, store, testWorkspaceConfig(), usecase.WithSleep(recordSleep(new([]time.Duration))))
		outcome := uc.Run(ctx, buildRequest(t, provisionInput()))

		gt.False(t, outcome.Success)
		gt.Equal(t, 1, dir.deleteGroupCalls)
		gt.Equal(t, 1, store.deleteCalls)
	})

	t.Run("commit failure is fatal", func(t *testing.T) {
		dir := newTestDirectory()
		store := newTestStore()
		store.failUpdate = goerr.New("unavailable")

		uc := usecase.NewProvisioning(dir, store, testWorkspaceConfig(), usecase.WithSleep(recordSleep(new([]time.Duration))))
		outcome := uc.Run(ctx, buildRequest(t, provisionInput()))

		gt.False(t, outcome.Success)
		gt.Equal(t, 1, dir.deleteGroupCalls)
		gt.Equal(t, 1, store.deleteCalls)
	})

	t.Run("record creation failure creates nothing", func(t *testing.T) {
		dir := newTestDirectory()
		store := newTestStore()
		store.failCreate = goerr.New("unavailable")

		uc := usecase.NewProvisioning(dir, store, testWorkspaceConfig())
		outcome := uc.Run(ctx, buildRequest(t, provisionInput()))

		gt.False(t, outcome.Success)
		gt.Equal(t, usecase.ProvisionFailureMessage, outcome.ErrorMessage)
		gt.Equal(t, 0, dir.deleteGroupCalls)
		gt.Equal(t, 0, store.deleteCalls)
	})
}

func TestProvisioningPartialFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("failed channel becomes a warning", func(t *testing.T) {
		dir := newTestDirectory()
		dir.failChannels["Planning"] = true
		store := newTestStore()

		uc := usecase.NewProvisioning(dir, store, testWorkspaceConfig(), usecase.WithSleep(recordSleep(new([]time.Duration))))
		outcome := uc.Run(ctx, buildRequest(t, provisionInput()))

		gt.True(t, outcome.Success)
		gt.Equal(t, []string{"Failed to create channels: Planning"}, outcome.Warnings)
		gt.Equal(t, usecase.ChannelPolicy.MaxAttempts, dir.channelAttempts["Planning"])
		gt.Equal(t, 1, dir.channelAttempts["Logistics"])
		gt.Equal(t, 0, dir.deleteGroupCalls)

		record, err := store.GetIncidentRecord(ctx, outcome.IncidentID)
		gt.NoError(t, err).Required()
		gt.True(t, record.HasWorkspace())
	})

	t.Run("requested channels replace the defaults", func(t *testing.T) {
		dir := newTestDirectory()
		store := newTestStore()
		in := provisionInput()
		in.Channels = []string{"Shelters"}

		uc := usecase.NewProvisioning(dir, store, testWorkspaceConfig(), usecase.WithSleep(recordSleep(new([]time.Duration))))
		outcome := uc.Run(ctx, buildRequest(t, in))

		gt.True(t, outcome.Success)
		record, err := store.GetIncidentRecord(ctx, outcome.IncidentID)
		gt.NoError(t, err).Required()
		gt.Equal(t, []string{"Announcements", "Assessment", "General", "Shelters"}, dir.ChannelNames(record.TeamID()))
	})

	t.Run("guest access denied degrades the result", func(t *testing.T) {
		dir := newTestDirectory()
		dir.failInvite = goerr.New("forbidden", goerr.T(model.ErrTagAccessDenied), goerr.V(model.StatusKey, 403))
		store := newTestStore()
		in := provisionInput()
		in.Guests = []model.GuestInvite{{Email: "guest@example.com", DisplayName: "Guest"}}

		uc := usecase.NewProvisioning(dir, store, testWorkspaceConfig(), usecase.WithSleep(recordSleep(new([]time.Duration))))
		outcome := uc.Run(ctx, buildRequest(t, in))

		gt.True(t, outcome.Success)
		gt.Equal(t, []string{usecase.GuestAccessDeniedMessage}, outcome.Warnings)
		gt.Equal(t, 0, dir.deleteGroupCalls)
	})

	t.Run("guests are invited and notified", func(t *testing.T) {
		dir := newTestDirectory()
		store := newTestStore()
		in := provisionInput()
		in.Guests = []model.GuestInvite{
			{Email: "guest@example.com", DisplayName: "Guest"},
			{Email: "GUEST@example.com", DisplayName: "Duplicate"},
		}

		uc := usecase.NewProvisioning(dir, store, testWorkspaceConfig(), usecase.WithSleep(recordSleep(new([]time.Duration))))
		outcome := uc.Run(ctx, buildRequest(t, in))

		gt.True(t, outcome.Success)
		gt.Equal(t, 0, len(outcome.Warnings))
		mails := dir.Mails()
		gt.Equal(t, 1, len(mails))
		gt.Equal(t, []string{"guest@example.com"}, mails[0].To)
	})

	t.Run("private workspace is patched after provisioning", func(t *testing.T) {
		dir := newTestDirectory()
		store := newTestStore()
		cfg := testWorkspaceConfig()
		cfg.PrivateAfterProvision = true
		in := provisionInput()
		in.Visibility = types.VisibilityPrivate

		uc := usecase.NewProvisioning(dir, store, cfg, usecase.WithSleep(recordSleep(new([]time.Duration))))
		outcome := uc.Run(ctx, buildRequest(t, in))

		gt.True(t, outcome.Success)
		record, err := store.GetIncidentRecord(ctx, outcome.IncidentID)
		gt.NoError(t, err).Required()
		gt.Equal(t, types.VisibilityPrivate, dir.GroupVisibility(record.TeamGroupID))
	})
}

func TestProvisioningRejectsInvalidInput(t *testing.T) {
	dir := newTestDirectory()
	store := newTestStore()
	in := provisionInput()
	in.Incident.Name = ""

	uc := usecase.NewProvisioning(dir, store, testWorkspaceConfig())
	outcome, err := uc.Provision(context.Background(), in)

	gt.Error(t, err)
	gt.True(t, model.IsInvalidInput(err))
	gt.Nil(t, outcome)
	gt.Equal(t, 0, store.Count())
}
