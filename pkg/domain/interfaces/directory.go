package interfaces

//go:generate moq -out mocks/directory_mock.go -pkg mocks . DirectoryService

import (
	"context"

	"github.com/secmon-lab/muster/pkg/domain/model"
	"github.com/secmon-lab/muster/pkg/domain/types"
)

// DirectoryService is the remote directory and collaboration service that
// hosts incident workspaces. Implementations tag failures with
// model.ErrTagAlreadyExists, model.ErrTagAccessDenied,
// model.ErrTagBlockedRecipient or model.ErrTagNotFound when they can classify
// them, and attach the remote status code as model.StatusKey.
type DirectoryService interface {
	// Groups
	CreateGroup(ctx context.Context, spec *model.GroupSpec) (*model.Group, error)
	PatchGroup(ctx context.Context, groupID types.GroupID, patch *model.GroupPatch) error
	DeleteGroup(ctx context.Context, groupID types.GroupID) error
	AddGroupMember(ctx context.Context, groupID types.GroupID, userID types.DirectoryID) error

	// Workspaces
	CreateTeam(ctx context.Context, groupID types.GroupID, settings *model.TeamSettings) (*model.Team, error)
	GetTeam(ctx context.Context, teamID types.TeamID) (*model.Team, error)
	AddTeamMembers(ctx context.Context, teamID types.TeamID, members []model.PersonRef, asOwner bool) error
	RemoveTeamMember(ctx context.Context, teamID types.TeamID, membershipID types.MembershipID) error
	GetTeamMembers(ctx context.Context, teamID types.TeamID) (*model.MembershipSnapshot, error)

	// Channels and tabs
	GetPrimaryChannel(ctx context.Context, teamID types.TeamID) (*model.Channel, error)
	CreateChannel(ctx context.Context, teamID types.TeamID, name string) (*model.Channel, error)
	CreateTab(ctx context.Context, teamID types.TeamID, channelID types.ChannelID, spec *model.TabSpec) (*model.Tab, error)
	PostChannelMessage(ctx context.Context, teamID types.TeamID, channelID types.ChannelID, card *model.SummaryCard) error

	// Tags
	CreateTag(ctx context.Context, teamID types.TeamID, spec *model.TagSpec) (*model.Tag, error)
	AddTagMember(ctx context.Context, teamID types.TeamID, tagID types.TagID, userID types.DirectoryID) error
	ListTags(ctx context.Context, teamID types.TeamID) ([]*model.Tag, error)

	// Guests and mail
	InviteGuest(ctx context.Context, email, displayName, redirectURL string) (types.DirectoryID, error)
	SendMail(ctx context.Context, msg *model.MailMessage) error

	// Artifacts
	CreatePlan(ctx context.Context, groupID types.GroupID, title string) (*model.Plan, error)
	GetSite(ctx context.Context, groupID types.GroupID) (*model.Site, error)
	CreateList(ctx context.Context, siteID types.SiteID, schema *model.ListSchema) (*model.List, error)
}
