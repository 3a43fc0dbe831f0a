package graph

import (
	"context"
	"net/http"
	"net/url"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/muster/pkg/domain/interfaces"
	"github.com/secmon-lab/muster/pkg/domain/model"
	"github.com/secmon-lab/muster/pkg/domain/types"
)

var _ interfaces.DirectoryService = (*Client)(nil)

type groupResponse struct {
	ID           string `json:"id"`
	DisplayName  string `json:"displayName"`
	MailNickname string `json:"mailNickname"`
}

type teamResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	WebURL      string `json:"webUrl"`
}

type channelResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	WebURL      string `json:"webUrl"`
}

type memberResponse struct {
	ID          string   `json:"id"`
	UserID      string   `json:"userId"`
	DisplayName string   `json:"displayName"`
	Email       string   `json:"email"`
	Roles       []string `json:"roles"`
}

type tagResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

func (c *Client) userBinds(ids []types.DirectoryID) []string {
	binds := make([]string, len(ids))
	for i, id := range ids {
		binds[i] = c.bind("/users/%s", url.PathEscape(id.String()))
	}
	return binds
}

// CreateGroup creates a unified group with its owners and members
func (c *Client) CreateGroup(ctx context.Context, spec *model.GroupSpec) (*model.Group, error) {
	body := map[string]any{
		"displayName":     spec.DisplayName,
		"mailNickname":    spec.MailNickname,
		"description":     spec.Description,
		"visibility":      string(spec.Visibility),
		"groupTypes":      []string{"Unified"},
		"mailEnabled":     true,
		"securityEnabled": false,
	}
	if len(spec.Owners) > 0 {
		body["owners@odata.bind"] = c.userBinds(spec.Owners)
	}
	if len(spec.Members) > 0 {
		body["members@odata.bind"] = c.userBinds(spec.Members)
	}

	var resp groupResponse
	if err := c.do(ctx, request{method: http.MethodPost, path: "/groups", body: body, out: &resp}); err != nil {
		return nil, goerr.Wrap(err, "failed to create group", goerr.V("mail_nickname", spec.MailNickname))
	}
	return &model.Group{
		ID:           types.GroupID(resp.ID),
		DisplayName:  resp.DisplayName,
		MailNickname: resp.MailNickname,
	}, nil
}

// PatchGroup updates the display name or visibility of a group
func (c *Client) PatchGroup(ctx context.Context, groupID types.GroupID, patch *model.GroupPatch) error {
	body := map[string]any{}
	if patch.DisplayName != "" {
		body["displayName"] = patch.DisplayName
	}
	if patch.Visibility != "" {
		body["visibility"] = string(patch.Visibility)
	}
	if len(body) == 0 {
		return nil
	}

	if err := c.do(ctx, request{method: http.MethodPatch, path: "/groups/" + url.PathEscape(groupID.String()), body: body}); err != nil {
		return goerr.Wrap(err, "failed to patch group", goerr.V("group_id", groupID))
	}
	return nil
}

// DeleteGroup deletes a group and everything it backs
func (c *Client) DeleteGroup(ctx context.Context, groupID types.GroupID) error {
	if err := c.do(ctx, request{method: http.MethodDelete, path: "/groups/" + url.PathEscape(groupID.String())}); err != nil {
		return goerr.Wrap(err, "failed to delete group", goerr.V("group_id", groupID))
	}
	return nil
}

// AddGroupMember adds a directory object to a group
func (c *Client) AddGroupMember(ctx context.Context, groupID types.GroupID, userID types.DirectoryID) error {
	body := map[string]string{
		"@odata.id": c.bind("/directoryObjects/%s", url.PathEscape(userID.String())),
	}
	path := "/groups/" + url.PathEscape(groupID.String()) + "/members/$ref"
	if err := c.do(ctx, request{method: http.MethodPost, path: path, body: body}); err != nil {
		return goerr.Wrap(err, "failed to add group member",
			goerr.V("group_id", groupID),
			goerr.V("user_id", userID))
	}
	return nil
}

func teamPath(teamID types.TeamID) string {
	return "/teams/" + url.PathEscape(teamID.String())
}

func channelPath(teamID types.TeamID, channelID types.ChannelID) string {
	return teamPath(teamID) + "/channels/" + url.PathEscape(channelID.String())
}

// CreateTeam creates the team of a group. A group that is not yet visible to
// the workspace service fails with not found.
func (c *Client) CreateTeam(ctx context.Context, groupID types.GroupID, settings *model.TeamSettings) (*model.Team, error) {
	body := map[string]any{
		"memberSettings": map[string]any{
			"allowCreateUpdateChannels":         settings.AllowCreateUpdateChannels,
			"allowDeleteChannels":               settings.AllowDeleteChannels,
			"allowAddRemoveApps":                settings.AllowAddRemoveApps,
			"allowCreateUpdateRemoveTabs":       settings.AllowCreateUpdateRemoveTab,
			"allowCreateUpdateRemoveConnectors": false,
		},
		"guestSettings": map[string]any{
			"allowCreateUpdateChannels": settings.AllowGuestCreateChannels,
			"allowDeleteChannels":       settings.AllowGuestDeleteChannels,
		},
		"messagingSettings": map[string]any{
			"allowUserEditMessages":    settings.AllowUserEditMessages,
			"allowUserDeleteMessages":  settings.AllowUserDeleteMessages,
			"allowOwnerDeleteMessages": true,
			"allowTeamMentions":        settings.AllowTeamMentions,
			"allowChannelMentions":     settings.AllowChannelMentions,
		},
		"funSettings": map[string]any{
			"allowGiphy":            settings.AllowGiphy,
			"giphyContentRating":    settings.GiphyContentRating,
			"allowStickersAndMemes": settings.AllowStickersAndMemes,
			"allowCustomMemes":      settings.AllowCustomMemes,
		},
	}

	var resp teamResponse
	path := "/groups/" + url.PathEscape(groupID.String()) + "/team"
	if err := c.do(ctx, request{method: http.MethodPut, path: path, body: body, out: &resp}); err != nil {
		return nil, goerr.Wrap(err, "failed to create team", goerr.V("group_id", groupID))
	}
	return toTeam(resp), nil
}

func toTeam(resp teamResponse) *model.Team {
	return &model.Team{
		ID:          types.TeamID(resp.ID),
		DisplayName: resp.DisplayName,
		WebURL:      resp.WebURL,
	}
}

// GetTeam returns a team
func (c *Client) GetTeam(ctx context.Context, teamID types.TeamID) (*model.Team, error) {
	var resp teamResponse
	if err := c.do(ctx, request{method: http.MethodGet, path: teamPath(teamID), out: &resp}); err != nil {
		return nil, goerr.Wrap(err, "failed to get team", goerr.V("team_id", teamID))
	}
	return toTeam(resp), nil
}

// AddTeamMembers adds members in a single batch request
func (c *Client) AddTeamMembers(ctx context.Context, teamID types.TeamID, members []model.PersonRef, asOwner bool) error {
	if len(members) == 0 {
		return nil
	}

	roles := []string{}
	if asOwner {
		roles = []string{"owner"}
	}
	values := make([]map[string]any, len(members))
	for i, m := range members {
		values[i] = map[string]any{
			"@odata.type":     "microsoft.graph.aadUserConversationMember",
			"roles":           roles,
			"user@odata.bind": c.bind("/users('%s')", m.ID.String()),
		}
	}

	body := map[string]any{"values": values}
	if err := c.do(ctx, request{method: http.MethodPost, path: teamPath(teamID) + "/members/add", body: body}); err != nil {
		return goerr.Wrap(err, "failed to add team members",
			goerr.V("team_id", teamID),
			goerr.V("count", len(members)),
			goerr.V("as_owner", asOwner))
	}
	return nil
}

// RemoveTeamMember removes a membership from a team
func (c *Client) RemoveTeamMember(ctx context.Context, teamID types.TeamID, membershipID types.MembershipID) error {
	path := teamPath(teamID) + "/members/" + url.PathEscape(membershipID.String())
	if err := c.do(ctx, request{method: http.MethodDelete, path: path}); err != nil {
		return goerr.Wrap(err, "failed to remove team member",
			goerr.V("team_id", teamID),
			goerr.V("membership_id", membershipID))
	}
	return nil
}

// GetTeamMembers returns every membership of a team
func (c *Client) GetTeamMembers(ctx context.Context, teamID types.TeamID) (*model.MembershipSnapshot, error) {
	members, err := list[memberResponse](ctx, c, teamPath(teamID)+"/members")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get team members", goerr.V("team_id", teamID))
	}

	snapshot := &model.MembershipSnapshot{Members: make([]model.Member, len(members))}
	for i, m := range members {
		snapshot.Members[i] = model.Member{
			MembershipID: types.MembershipID(m.ID),
			UserID:       types.NewDirectoryID(m.UserID),
			DisplayName:  m.DisplayName,
			Email:        m.Email,
			Roles:        m.Roles,
		}
	}
	return snapshot, nil
}

// GetPrimaryChannel returns the default channel of a team
func (c *Client) GetPrimaryChannel(ctx context.Context, teamID types.TeamID) (*model.Channel, error) {
	var resp channelResponse
	if err := c.do(ctx, request{method: http.MethodGet, path: teamPath(teamID) + "/primaryChannel", out: &resp}); err != nil {
		return nil, goerr.Wrap(err, "failed to get primary channel", goerr.V("team_id", teamID))
	}
	return toChannel(resp), nil
}

func toChannel(resp channelResponse) *model.Channel {
	return &model.Channel{
		ID:          types.ChannelID(resp.ID),
		DisplayName: resp.DisplayName,
		WebURL:      resp.WebURL,
	}
}

// CreateChannel creates a standard channel
func (c *Client) CreateChannel(ctx context.Context, teamID types.TeamID, name string) (*model.Channel, error) {
	body := map[string]any{
		"displayName":    name,
		"membershipType": "standard",
	}

	var resp channelResponse
	if err := c.do(ctx, request{method: http.MethodPost, path: teamPath(teamID) + "/channels", body: body, out: &resp}); err != nil {
		return nil, goerr.Wrap(err, "failed to create channel",
			goerr.V("team_id", teamID),
			goerr.V("channel", name))
	}
	return toChannel(resp), nil
}

// CreateTab adds a tab to a channel
func (c *Client) CreateTab(ctx context.Context, teamID types.TeamID, channelID types.ChannelID, spec *model.TabSpec) (*model.Tab, error) {
	configuration := map[string]any{
		"entityId":   spec.EntityID,
		"contentUrl": spec.ContentURL,
	}
	if spec.WebsiteURL != "" {
		configuration["websiteUrl"] = spec.WebsiteURL
	}
	body := map[string]any{
		"displayName":         spec.DisplayName,
		"teamsApp@odata.bind": c.bind("/appCatalogs/teamsApps/%s", spec.AppID),
		"configuration":       configuration,
	}

	var resp struct {
		ID          string `json:"id"`
		DisplayName string `json:"displayName"`
		WebURL      string `json:"webUrl"`
	}
	if err := c.do(ctx, request{method: http.MethodPost, path: channelPath(teamID, channelID) + "/tabs", body: body, out: &resp}); err != nil {
		return nil, goerr.Wrap(err, "failed to create tab",
			goerr.V("team_id", teamID),
			goerr.V("channel_id", channelID),
			goerr.V("tab", spec.DisplayName))
	}
	return &model.Tab{
		ID:          types.TabID(resp.ID),
		DisplayName: resp.DisplayName,
		WebURL:      resp.WebURL,
	}, nil
}

// PostChannelMessage posts the summary card mentioning the team
func (c *Client) PostChannelMessage(ctx context.Context, teamID types.TeamID, channelID types.ChannelID, card *model.SummaryCard) error {
	body, err := buildCardMessage(card)
	if err != nil {
		return err
	}
	if err := c.do(ctx, request{method: http.MethodPost, path: channelPath(teamID, channelID) + "/messages", body: body}); err != nil {
		return goerr.Wrap(err, "failed to post channel message",
			goerr.V("team_id", teamID),
			goerr.V("channel_id", channelID))
	}
	return nil
}

// CreateTag creates a tag with its initial members
func (c *Client) CreateTag(ctx context.Context, teamID types.TeamID, spec *model.TagSpec) (*model.Tag, error) {
	members := make([]map[string]string, len(spec.Members))
	for i, id := range spec.Members {
		members[i] = map[string]string{"userId": id.String()}
	}
	body := map[string]any{
		"displayName": spec.DisplayName,
		"members":     members,
	}

	var resp tagResponse
	if err := c.do(ctx, request{method: http.MethodPost, path: teamPath(teamID) + "/tags", body: body, out: &resp}); err != nil {
		return nil, goerr.Wrap(err, "failed to create tag",
			goerr.V("team_id", teamID),
			goerr.V("tag", spec.DisplayName))
	}
	return &model.Tag{ID: types.TagID(resp.ID), DisplayName: resp.DisplayName}, nil
}

// AddTagMember adds a user to a tag
func (c *Client) AddTagMember(ctx context.Context, teamID types.TeamID, tagID types.TagID, userID types.DirectoryID) error {
	path := teamPath(teamID) + "/tags/" + url.PathEscape(tagID.String()) + "/members"
	body := map[string]string{"userId": userID.String()}
	if err := c.do(ctx, request{method: http.MethodPost, path: path, body: body}); err != nil {
		return goerr.Wrap(err, "failed to add tag member",
			goerr.V("tag_id", tagID),
			goerr.V("user_id", userID))
	}
	return nil
}

// ListTags returns every tag of a team
func (c *Client) ListTags(ctx context.Context, teamID types.TeamID) ([]*model.Tag, error) {
	tags, err := list[tagResponse](ctx, c, teamPath(teamID)+"/tags")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list tags", goerr.V("team_id", teamID))
	}

	result := make([]*model.Tag, len(tags))
	for i, t := range tags {
		result[i] = &model.Tag{ID: types.TagID(t.ID), DisplayName: t.DisplayName}
	}
	return result, nil
}

// InviteGuest invites an external user without sending the default
// invitation mail and returns the guest user id
func (c *Client) InviteGuest(ctx context.Context, email, displayName, redirectURL string) (types.DirectoryID, error) {
	body := map[string]any{
		"invitedUserEmailAddress": email,
		"invitedUserDisplayName":  displayName,
		"inviteRedirectUrl":       redirectURL,
		"sendInvitationMessage":   false,
	}

	var resp struct {
		InvitedUser struct {
			ID string `json:"id"`
		} `json:"invitedUser"`
	}
	if err := c.do(ctx, request{method: http.MethodPost, path: "/invitations", body: body, out: &resp, tags: recipientStatusTags}); err != nil {
		return "", goerr.Wrap(err, "failed to invite guest", goerr.V("email", email))
	}
	return types.DirectoryID(resp.InvitedUser.ID), nil
}

// SendMail sends an HTML mail from the configured sender mailbox
func (c *Client) SendMail(ctx context.Context, msg *model.MailMessage) error {
	recipients := make([]map[string]any, len(msg.To))
	for i, to := range msg.To {
		recipients[i] = map[string]any{"emailAddress": map[string]string{"address": to}}
	}
	body := map[string]any{
		"message": map[string]any{
			"subject": msg.Subject,
			"body": map[string]string{
				"contentType": "HTML",
				"content":     msg.HTMLBody,
			},
			"toRecipients": recipients,
		},
		"saveToSentItems": false,
	}

	path := "/users/" + url.PathEscape(c.sender) + "/sendMail"
	if err := c.do(ctx, request{method: http.MethodPost, path: path, body: body, tags: recipientStatusTags}); err != nil {
		return goerr.Wrap(err, "failed to send mail", goerr.V("to", msg.To))
	}
	return nil
}

// CreatePlan creates a plan owned by a group
func (c *Client) CreatePlan(ctx context.Context, groupID types.GroupID, title string) (*model.Plan, error) {
	body := map[string]any{
		"container": map[string]string{"url": c.bind("/groups/%s", groupID.String())},
		"title":     title,
	}

	var resp struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	if err := c.do(ctx, request{method: http.MethodPost, path: "/planner/plans", body: body, out: &resp}); err != nil {
		return nil, goerr.Wrap(err, "failed to create plan", goerr.V("group_id", groupID))
	}
	return &model.Plan{ID: types.PlanID(resp.ID), Title: resp.Title}, nil
}

// GetSite returns the root site of a group
func (c *Client) GetSite(ctx context.Context, groupID types.GroupID) (*model.Site, error) {
	var resp struct {
		ID             string `json:"id"`
		WebURL         string `json:"webUrl"`
		SiteCollection struct {
			Hostname string `json:"hostname"`
		} `json:"siteCollection"`
	}
	path := "/groups/" + url.PathEscape(groupID.String()) + "/sites/root"
	if err := c.do(ctx, request{method: http.MethodGet, path: path, out: &resp}); err != nil {
		return nil, goerr.Wrap(err, "failed to get site", goerr.V("group_id", groupID))
	}
	return &model.Site{
		ID:       types.SiteID(resp.ID),
		WebURL:   resp.WebURL,
		Hostname: resp.SiteCollection.Hostname,
	}, nil
}

// CreateList creates a generic list with the schema columns
func (c *Client) CreateList(ctx context.Context, siteID types.SiteID, schema *model.ListSchema) (*model.List, error) {
	body := map[string]any{
		"displayName": schema.DisplayName,
		"columns":     listColumns(schema.Columns),
		"list":        map[string]string{"template": "genericList"},
	}

	var resp struct {
		ID     string `json:"id"`
		WebURL string `json:"webUrl"`
	}
	path := "/sites/" + url.PathEscape(siteID.String()) + "/lists"
	if err := c.do(ctx, request{method: http.MethodPost, path: path, body: body, out: &resp}); err != nil {
		return nil, goerr.Wrap(err, "failed to create list",
			goerr.V("site_id", siteID),
			goerr.V("list", schema.DisplayName))
	}
	return &model.List{ID: types.ListID(resp.ID), WebURL: resp.WebURL}, nil
}

func listColumns(columns []model.ListColumn) []map[string]any {
	result := make([]map[string]any, len(columns))
	for i, col := range columns {
		def := map[string]any{"name": col.Name}
		switch col.Type {
		case "choice":
			def["choice"] = map[string]any{"choices": col.Choices}
		case "number":
			def["number"] = map[string]any{}
		case "dateTime":
			def["dateTime"] = map[string]any{}
		case "boolean":
			def["boolean"] = map[string]any{}
		default:
			def["text"] = map[string]any{}
		}
		result[i] = def
	}
	return result
}
