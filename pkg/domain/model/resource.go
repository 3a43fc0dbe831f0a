package model

import (
	"github.com/secmon-lab/muster/pkg/domain/types"
)

// GroupSpec describes the directory group backing a new workspace
type GroupSpec struct {
	DisplayName  string
	MailNickname string
	Description  string
	Visibility   types.Visibility
	Owners       []types.DirectoryID
	Members      []types.DirectoryID
}

// Group is a created directory group
type Group struct {
	ID           types.GroupID
	DisplayName  string
	MailNickname string
}

// GroupPatch carries the group fields to change; empty values are left as is
type GroupPatch struct {
	DisplayName string
	Visibility  types.Visibility
}

// TeamSettings are the workspace settings applied at creation
type TeamSettings struct {
	AllowCreateUpdateChannels  bool
	AllowDeleteChannels        bool
	AllowAddRemoveApps         bool
	AllowGuestCreateChannels   bool
	AllowGuestDeleteChannels   bool
	AllowUserEditMessages      bool
	AllowUserDeleteMessages    bool
	AllowTeamMentions          bool
	AllowChannelMentions       bool
	AllowGiphy                 bool
	GiphyContentRating         string
	AllowStickersAndMemes      bool
	AllowCustomMemes           bool
	AllowCreateUpdateRemoveTab bool
}

// DefaultTeamSettings returns the settings used for incident workspaces
func DefaultTeamSettings() *TeamSettings {
	return &TeamSettings{
		AllowCreateUpdateChannels:  true,
		AllowDeleteChannels:        true,
		AllowAddRemoveApps:         true,
		AllowCreateUpdateRemoveTab: true,
		AllowUserEditMessages:      true,
		AllowUserDeleteMessages:    true,
		AllowTeamMentions:          true,
		AllowChannelMentions:       true,
		AllowGiphy:                 true,
		GiphyContentRating:         "strict",
		AllowStickersAndMemes:      true,
		AllowCustomMemes:           true,
	}
}

// Team is a collaboration workspace
type Team struct {
	ID          types.TeamID
	DisplayName string
	WebURL      string
}

// Channel is a workspace channel
type Channel struct {
	ID          types.ChannelID
	DisplayName string
	WebURL      string
}

// TabSpec describes a channel tab. AppID selects the tab application.
type TabSpec struct {
	DisplayName string
	AppID       string
	EntityID    string
	ContentURL  string
	WebsiteURL  string
}

// Tab is a created channel tab
type Tab struct {
	ID          types.TabID
	DisplayName string
	WebURL      string
}

// TagSpec describes a workspace tag and its initial members
type TagSpec struct {
	DisplayName string
	Members     []types.DirectoryID
}

// Tag is a workspace tag
type Tag struct {
	ID          types.TagID
	DisplayName string
}

// Plan is a planning artifact owned by a group
type Plan struct {
	ID    types.PlanID
	Title string
}

// Site is the document site of a group
type Site struct {
	ID       types.SiteID
	WebURL   string
	Hostname string
}

// ListColumn is one column of a site list
type ListColumn struct {
	Name    string   `yaml:"name"`
	Type    string   `yaml:"type"` // text, number, dateTime, choice
	Choices []string `yaml:"choices,omitempty"`
}

// ListSchema describes a site list
type ListSchema struct {
	DisplayName string       `yaml:"name"`
	Columns     []ListColumn `yaml:"columns"`
}

// List is a created site list
type List struct {
	ID     types.ListID
	WebURL string
}

// MailMessage is a notification email
type MailMessage struct {
	To       []string
	Subject  string
	HTMLBody string
}

// SummaryCard is the message posted in the primary channel of a new workspace
type SummaryCard struct {
	TeamID           types.TeamID
	TeamDisplayName  string
	IncidentName     string
	Severity         string
	Location         string
	CloudStorageLink string
	CommanderName    string
}
