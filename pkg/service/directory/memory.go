package directory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/muster/pkg/domain/interfaces"
	"github.com/secmon-lab/muster/pkg/domain/model"
	"github.com/secmon-lab/muster/pkg/domain/types"
)

const (
	memoryHost = "memory.invalid"
	ownerRole  = "owner"
)

type memoryGroup struct {
	group      model.Group
	visibility types.Visibility
	members    map[types.DirectoryID]bool
}

type memoryTag struct {
	tag     model.Tag
	members map[types.DirectoryID]bool
}

type memoryTeam struct {
	team     model.Team
	members  []model.Member
	channels map[string]*model.Channel
	tabs     map[types.ChannelID][]*model.Tab
	tags     map[string]*memoryTag
	messages []model.SummaryCard
}

// Memory implements DirectoryService with in-memory state. It is used when
// no directory credentials are configured and as a fake in tests.
type Memory struct {
	mu      sync.RWMutex
	groups  map[types.GroupID]*memoryGroup
	teams   map[types.TeamID]*memoryTeam
	guests  map[string]types.DirectoryID
	mails   []model.MailMessage
	plans   map[types.GroupID]*model.Plan
	lists   map[types.SiteID][]model.ListSchema
	deleted []types.GroupID
}

var _ interfaces.DirectoryService = (*Memory)(nil)

// NewMemory creates an empty in-memory directory
func NewMemory() *Memory {
	return &Memory{
		groups: make(map[types.GroupID]*memoryGroup),
		teams:  make(map[types.TeamID]*memoryTeam),
		guests: make(map[string]types.DirectoryID),
		plans:  make(map[types.GroupID]*model.Plan),
		lists:  make(map[types.SiteID][]model.ListSchema),
	}
}

func conflict(msg string, values ...goerr.Option) error {
	opts := append([]goerr.Option{goerr.T(model.ErrTagAlreadyExists), goerr.V(model.StatusKey, 409)}, values...)
	return goerr.New(msg, opts...)
}

func notFound(msg string, values ...goerr.Option) error {
	opts := append([]goerr.Option{goerr.T(model.ErrTagNotFound), goerr.V(model.StatusKey, 404)}, values...)
	return goerr.New(msg, opts...)
}

// CreateGroup creates a group. Mail nicknames are unique.
func (m *Memory) CreateGroup(ctx context.Context, spec *model.GroupSpec) (*model.Group, error) {
	if spec == nil || spec.DisplayName == "" {
		return nil, goerr.New("group display name is empty", goerr.T(model.ErrTagInvalidInput), goerr.V(model.StatusKey, 400))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, g := range m.groups {
		if strings.EqualFold(g.group.MailNickname, spec.MailNickname) {
			return nil, conflict("Group already exists", goerr.V("mail_nickname", spec.MailNickname))
		}
	}

	g := &memoryGroup{
		group: model.Group{
			ID:           types.GroupID(uuid.New().String()),
			DisplayName:  spec.DisplayName,
			MailNickname: spec.MailNickname,
		},
		visibility: spec.Visibility,
		members:    make(map[types.DirectoryID]bool),
	}
	for _, id := range spec.Owners {
		g.members[id] = true
	}
	for _, id := range spec.Members {
		g.members[id] = false
	}
	m.groups[g.group.ID] = g

	group := g.group
	return &group, nil
}

// PatchGroup changes the display name or visibility of a group
func (m *Memory) PatchGroup(ctx context.Context, groupID types.GroupID, patch *model.GroupPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.groups[groupID]
	if !ok {
		return notFound("group not found", goerr.V("group_id", groupID))
	}
	if patch.DisplayName != "" {
		g.group.DisplayName = patch.DisplayName
		if t, ok := m.teams[types.TeamID(groupID)]; ok {
			t.team.DisplayName = patch.DisplayName
		}
	}
	if patch.Visibility != "" {
		g.visibility = patch.Visibility
	}
	return nil
}

// DeleteGroup deletes a group and its team
func (m *Memory) DeleteGroup(ctx context.Context, groupID types.GroupID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.groups[groupID]; !ok {
		return notFound("group not found", goerr.V("group_id", groupID))
	}
	delete(m.groups, groupID)
	delete(m.teams, types.TeamID(groupID))
	delete(m.plans, groupID)
	m.deleted = append(m.deleted, groupID)
	return nil
}

// AddGroupMember adds a user to a group and, when present, to its team
func (m *Memory) AddGroupMember(ctx context.Context, groupID types.GroupID, userID types.DirectoryID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.groups[groupID]
	if !ok {
		return notFound("group not found", goerr.V("group_id", groupID))
	}
	if _, ok := g.members[userID]; ok {
		return conflict("One or more added object references already exist", goerr.V("user_id", userID))
	}
	g.members[userID] = false

	if t, ok := m.teams[types.TeamID(groupID)]; ok {
		t.addMember(model.PersonRef{ID: userID}, false)
	}
	return nil
}

// CreateTeam creates the team backed by a group, seeded with its members
func (m *Memory) CreateTeam(ctx context.Context, groupID types.GroupID, settings *model.TeamSettings) (*model.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.groups[groupID]
	if !ok {
		return nil, notFound("group not found", goerr.V("group_id", groupID))
	}
	teamID := types.TeamID(groupID)
	if _, ok := m.teams[teamID]; ok {
		return nil, conflict("Team already exists", goerr.V("team_id", teamID))
	}

	t := &memoryTeam{
		team: model.Team{
			ID:          teamID,
			DisplayName: g.group.DisplayName,
			WebURL:      fmt.Sprintf("https://%s/teams/%s", memoryHost, teamID),
		},
		channels: make(map[string]*model.Channel),
		tabs:     make(map[types.ChannelID][]*model.Tab),
		tags:     make(map[string]*memoryTag),
	}
	ids := make([]types.DirectoryID, 0, len(g.members))
	for id := range g.members {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		t.addMember(model.PersonRef{ID: id}, g.members[id])
	}
	t.channels["General"] = &model.Channel{
		ID:          types.ChannelID(uuid.New().String()),
		DisplayName: "General",
		WebURL:      t.team.WebURL + "/general",
	}
	m.teams[teamID] = t

	team := t.team
	return &team, nil
}

// GetTeam returns a team
func (m *Memory) GetTeam(ctx context.Context, teamID types.TeamID) (*model.Team, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.teams[teamID]
	if !ok {
		return nil, notFound("team not found", goerr.V("team_id", teamID))
	}
	team := t.team
	return &team, nil
}

func (t *memoryTeam) addMember(p model.PersonRef, asOwner bool) {
	for i := range t.members {
		if t.members[i].UserID != p.ID {
			continue
		}
		if asOwner && !t.members[i].IsOwner() {
			t.members[i].Roles = []string{ownerRole}
		}
		return
	}

	member := model.Member{
		MembershipID: types.MembershipID(uuid.New().String()),
		UserID:       p.ID,
		DisplayName:  p.DisplayName,
		Email:        p.Email,
	}
	if asOwner {
		member.Roles = []string{ownerRole}
	}
	t.members = append(t.members, member)
}

// AddTeamMembers adds members to a team. Existing members are promoted when
// added as owners.
func (m *Memory) AddTeamMembers(ctx context.Context, teamID types.TeamID, members []model.PersonRef, asOwner bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.teams[teamID]
	if !ok {
		return notFound("team not found", goerr.V("team_id", teamID))
	}
	for _, p := range members {
		t.addMember(p, asOwner)
	}
	return nil
}

// RemoveTeamMember removes a membership from a team
func (m *Memory) RemoveTeamMember(ctx context.Context, teamID types.TeamID, membershipID types.MembershipID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.teams[teamID]
	if !ok {
		return notFound("team not found", goerr.V("team_id", teamID))
	}
	for i, member := range t.members {
		if member.MembershipID == membershipID {
			t.members = append(t.members[:i], t.members[i+1:]...)
			return nil
		}
	}
	return notFound("membership not found", goerr.V("membership_id", membershipID))
}

// GetTeamMembers returns a copy of the team membership
func (m *Memory) GetTeamMembers(ctx context.Context, teamID types.TeamID) (*model.MembershipSnapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.teams[teamID]
	if !ok {
		return nil, notFound("team not found", goerr.V("team_id", teamID))
	}
	snapshot := &model.MembershipSnapshot{Members: make([]model.Member, len(t.members))}
	for i, member := range t.members {
		member.Roles = append([]string(nil), member.Roles...)
		snapshot.Members[i] = member
	}
	return snapshot, nil
}

// GetPrimaryChannel returns the General channel of a team
func (m *Memory) GetPrimaryChannel(ctx context.Context, teamID types.TeamID) (*model.Channel, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.teams[teamID]
	if !ok {
		return nil, notFound("team not found", goerr.V("team_id", teamID))
	}
	ch := *t.channels["General"]
	return &ch, nil
}

// CreateChannel creates a standard channel. Names are unique per team.
func (m *Memory) CreateChannel(ctx context.Context, teamID types.TeamID, name string) (*model.Channel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.teams[teamID]
	if !ok {
		return nil, notFound("team not found", goerr.V("team_id", teamID))
	}
	if _, ok := t.channels[name]; ok {
		return nil, conflict("Channel name already existed", goerr.V("channel", name))
	}

	ch := &model.Channel{
		ID:          types.ChannelID(uuid.New().String()),
		DisplayName: name,
		WebURL:      t.team.WebURL + "/channels/" + strings.ReplaceAll(name, " ", "%20"),
	}
	t.channels[name] = ch
	result := *ch
	return &result, nil
}

// CreateTab adds a tab to a channel
func (m *Memory) CreateTab(ctx context.Context, teamID types.TeamID, channelID types.ChannelID, spec *model.TabSpec) (*model.Tab, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.teams[teamID]
	if !ok {
		return nil, notFound("team not found", goerr.V("team_id", teamID))
	}
	if !t.hasChannel(channelID) {
		return nil, notFound("channel not found", goerr.V("channel_id", channelID))
	}

	webURL := spec.WebsiteURL
	if webURL == "" {
		webURL = spec.ContentURL
	}
	tab := &model.Tab{
		ID:          types.TabID(uuid.New().String()),
		DisplayName: spec.DisplayName,
		WebURL:      webURL,
	}
	t.tabs[channelID] = append(t.tabs[channelID], tab)
	result := *tab
	return &result, nil
}

func (t *memoryTeam) hasChannel(id types.ChannelID) bool {
	for _, ch := range t.channels {
		if ch.ID == id {
			return true
		}
	}
	return false
}

// PostChannelMessage records a summary card
func (m *Memory) PostChannelMessage(ctx context.Context, teamID types.TeamID, channelID types.ChannelID, card *model.SummaryCard) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.teams[teamID]
	if !ok {
		return notFound("team not found", goerr.V("team_id", teamID))
	}
	if !t.hasChannel(channelID) {
		return notFound("channel not found", goerr.V("channel_id", channelID))
	}
	t.messages = append(t.messages, *card)
	return nil
}

// CreateTag creates a tag with initial members. Names are unique per team.
func (m *Memory) CreateTag(ctx context.Context, teamID types.TeamID, spec *model.TagSpec) (*model.Tag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.teams[teamID]
	if !ok {
		return nil, notFound("team not found", goerr.V("team_id", teamID))
	}
	if _, ok := t.tags[spec.DisplayName]; ok {
		return nil, conflict("Tag already exists", goerr.V("tag", spec.DisplayName))
	}

	tag := &memoryTag{
		tag:     model.Tag{ID: types.TagID(uuid.New().String()), DisplayName: spec.DisplayName},
		members: make(map[types.DirectoryID]bool),
	}
	for _, id := range spec.Members {
		tag.members[id] = true
	}
	t.tags[spec.DisplayName] = tag
	result := tag.tag
	return &result, nil
}

// AddTagMember adds a user to a tag
func (m *Memory) AddTagMember(ctx context.Context, teamID types.TeamID, tagID types.TagID, userID types.DirectoryID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.teams[teamID]
	if !ok {
		return notFound("team not found", goerr.V("team_id", teamID))
	}
	for _, tag := range t.tags {
		if tag.tag.ID != tagID {
			continue
		}
		if tag.members[userID] {
			return conflict("Member already exists in tag", goerr.V("user_id", userID))
		}
		tag.members[userID] = true
		return nil
	}
	return notFound("tag not found", goerr.V("tag_id", tagID))
}

// ListTags returns the tags of a team ordered by name
func (m *Memory) ListTags(ctx context.Context, teamID types.TeamID) ([]*model.Tag, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.teams[teamID]
	if !ok {
		return nil, notFound("team not found", goerr.V("team_id", teamID))
	}
	tags := make([]*model.Tag, 0, len(t.tags))
	for _, tag := range t.tags {
		result := tag.tag
		tags = append(tags, &result)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].DisplayName < tags[j].DisplayName })
	return tags, nil
}

// InviteGuest returns a stable guest id per email address
func (m *Memory) InviteGuest(ctx context.Context, email, displayName, redirectURL string) (types.DirectoryID, error) {
	key := strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(key, "@") {
		return "", goerr.New("invalid email address", goerr.T(model.ErrTagBlockedRecipient), goerr.V(model.StatusKey, 400), goerr.V("email", email))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if id, ok := m.guests[key]; ok {
		return id, nil
	}
	id := types.DirectoryID(uuid.New().String())
	m.guests[key] = id
	return id, nil
}

// SendMail records a mail message
func (m *Memory) SendMail(ctx context.Context, msg *model.MailMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.mails = append(m.mails, *msg)
	return nil
}

// CreatePlan creates the planning artifact of a group
func (m *Memory) CreatePlan(ctx context.Context, groupID types.GroupID, title string) (*model.Plan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.groups[groupID]; !ok {
		return nil, notFound("group not found", goerr.V("group_id", groupID))
	}
	plan := &model.Plan{ID: types.PlanID(uuid.New().String()), Title: title}
	m.plans[groupID] = plan
	result := *plan
	return &result, nil
}

// GetSite returns the site backing a group
func (m *Memory) GetSite(ctx context.Context, groupID types.GroupID) (*model.Site, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	g, ok := m.groups[groupID]
	if !ok {
		return nil, notFound("group not found", goerr.V("group_id", groupID))
	}
	return &model.Site{
		ID:       types.SiteID(memoryHost + "," + groupID.String()),
		WebURL:   fmt.Sprintf("https://%s/sites/%s", memoryHost, g.group.MailNickname),
		Hostname: memoryHost,
	}, nil
}

// CreateList creates a list on a site. Names are unique per site.
func (m *Memory) CreateList(ctx context.Context, siteID types.SiteID, schema *model.ListSchema) (*model.List, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, l := range m.lists[siteID] {
		if l.DisplayName == schema.DisplayName {
			return nil, conflict("A list with this name already exists", goerr.V("list", schema.DisplayName))
		}
	}
	m.lists[siteID] = append(m.lists[siteID], *schema)
	return &model.List{
		ID:     types.ListID(uuid.New().String()),
		WebURL: fmt.Sprintf("https://%s/lists/%s", memoryHost, strings.ReplaceAll(schema.DisplayName, " ", "")),
	}, nil
}

// HasGroup reports whether a group exists
func (m *Memory) HasGroup(groupID types.GroupID) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.groups[groupID]
	return ok
}

// DeletedGroups returns the ids of deleted groups in deletion order
func (m *Memory) DeletedGroups() []types.GroupID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]types.GroupID(nil), m.deleted...)
}

// GroupDisplayName returns the current display name of a group
func (m *Memory) GroupDisplayName(groupID types.GroupID) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.groups[groupID]; ok {
		return g.group.DisplayName
	}
	return ""
}

// GroupVisibility returns the current visibility of a group
func (m *Memory) GroupVisibility(groupID types.GroupID) types.Visibility {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.groups[groupID]; ok {
		return g.visibility
	}
	return ""
}

// ChannelNames returns the channel names of a team in order
func (m *Memory) ChannelNames(teamID types.TeamID) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.teams[teamID]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(t.channels))
	for name := range t.channels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TagMembers returns the member ids of a tag in order, or nil when the tag
// does not exist
func (m *Memory) TagMembers(teamID types.TeamID, name string) []types.DirectoryID {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.teams[teamID]
	if !ok {
		return nil
	}
	tag, ok := t.tags[name]
	if !ok {
		return nil
	}
	ids := make([]types.DirectoryID, 0, len(tag.members))
	for id := range tag.members {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Messages returns the summary cards posted in a team
func (m *Memory) Messages(teamID types.TeamID) []model.SummaryCard {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if t, ok := m.teams[teamID]; ok {
		return append([]model.SummaryCard(nil), t.messages...)
	}
	return nil
}

// Mails returns every mail sent
func (m *Memory) Mails() []model.MailMessage {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]model.MailMessage(nil), m.mails...)
}

// Lists returns the lists created on a site
func (m *Memory) Lists(siteID types.SiteID) []model.ListSchema {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]model.ListSchema(nil), m.lists[siteID]...)
}
