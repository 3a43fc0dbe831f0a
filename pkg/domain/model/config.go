package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/muster/pkg/domain/types"
)

// TeamNameField is one component of the workspace display name
type TeamNameField string

const (
	TeamNameFieldPrefix       TeamNameField = "prefix"
	TeamNameFieldIncidentName TeamNameField = "incident_name"
	TeamNameFieldIncidentType TeamNameField = "incident_type"
	TeamNameFieldStartDate    TeamNameField = "start_date"
)

const (
	maxTeamNamePrefixLength = 10
	maxIncidentTypeLength   = 170
	teamNameDateLayout      = "02Jan2006"
)

// IsValid checks if the field is known
func (f TeamNameField) IsValid() bool {
	switch f {
	case TeamNameFieldPrefix, TeamNameFieldIncidentName, TeamNameFieldIncidentType, TeamNameFieldStartDate:
		return true
	default:
		return false
	}
}

// TeamNameConfig configures how workspace display names are built
type TeamNameConfig struct {
	Prefix string          `yaml:"prefix"`
	Fields []TeamNameField `yaml:"fields"`
}

// WorkspaceConfig holds the settings shared by every provisioning run
type WorkspaceConfig struct {
	TeamName               TeamNameConfig `yaml:"team_name"`
	DefaultChannels        []string       `yaml:"default_channels"`
	CommanderRole          string         `yaml:"commander_role"`
	SecondaryCommanderRole string         `yaml:"secondary_commander_role"`
	MailNicknamePrefix     string         `yaml:"mail_nickname_prefix"`
	GuestRedirectURL       string         `yaml:"guest_redirect_url"`
	SiteSettleDelay        time.Duration  `yaml:"site_settle_delay"`
	PrivateAfterProvision  bool           `yaml:"private_after_provision"`
	AnnouncementsChannel   string         `yaml:"announcements_channel"`
	NewsTabName            string         `yaml:"news_tab_name"`
	AssessmentChannel      string         `yaml:"assessment_channel"`
	AssessmentList         ListSchema     `yaml:"assessment_list"`
}

// DefaultWorkspaceConfig returns the built-in settings
func DefaultWorkspaceConfig() *WorkspaceConfig {
	return &WorkspaceConfig{
		TeamName: TeamNameConfig{
			Prefix: "EOC",
			Fields: []TeamNameField{
				TeamNameFieldPrefix,
				TeamNameFieldIncidentName,
				TeamNameFieldIncidentType,
				TeamNameFieldStartDate,
			},
		},
		DefaultChannels:        []string{"Logistics", "Planning", "Recovery"},
		CommanderRole:          "Incident Commander",
		SecondaryCommanderRole: "Secondary Incident Commander",
		MailNicknamePrefix:     "TEOC",
		GuestRedirectURL:       "https://teams.microsoft.com",
		AnnouncementsChannel:   "Announcements",
		NewsTabName:            "News",
		AssessmentChannel:      "Assessment",
		AssessmentList: ListSchema{
			DisplayName: "Ground Assessments",
			Columns: []ListColumn{
				{Name: "Location", Type: "text"},
				{Name: "Status", Type: "choice", Choices: []string{"Not Started", "In Progress", "Completed"}},
				{Name: "AssessedOn", Type: "dateTime"},
				{Name: "Notes", Type: "text"},
			},
		},
	}
}

// Validate validates the workspace configuration
func (c *WorkspaceConfig) Validate() error {
	if len([]rune(c.TeamName.Prefix)) > maxTeamNamePrefixLength {
		return goerr.New("team name prefix is too long",
			goerr.V("prefix", c.TeamName.Prefix),
			goerr.V("max", maxTeamNamePrefixLength))
	}
	seen := make(map[TeamNameField]bool)
	for _, f := range c.TeamName.Fields {
		if !f.IsValid() {
			return goerr.New("unknown team name field", goerr.V("field", f))
		}
		if seen[f] {
			return goerr.New("duplicate team name field", goerr.V("field", f))
		}
		seen[f] = true
	}

	if len(c.DefaultChannels) == 0 {
		return goerr.New("at least one default channel is required")
	}
	channels := make(map[string]bool)
	for _, name := range c.DefaultChannels {
		if strings.TrimSpace(name) == "" {
			return goerr.New("default channel name is empty")
		}
		if channels[name] {
			return goerr.New("duplicate default channel", goerr.V("name", name))
		}
		channels[name] = true
	}

	if c.CommanderRole == "" {
		return goerr.New("commander role is required")
	}
	if c.SecondaryCommanderRole == "" {
		return goerr.New("secondary commander role is required")
	}
	if c.CommanderRole == c.SecondaryCommanderRole {
		return goerr.New("commander and secondary commander roles must differ",
			goerr.V("role", c.CommanderRole))
	}
	if c.MailNicknamePrefix == "" {
		return goerr.New("mail nickname prefix is required")
	}
	if c.SiteSettleDelay < 0 {
		return goerr.New("site settle delay must not be negative",
			goerr.V("delay", c.SiteSettleDelay))
	}
	if c.AnnouncementsChannel == "" || c.AssessmentChannel == "" || c.NewsTabName == "" {
		return goerr.New("announcements channel, news tab and assessment channel names are required")
	}
	if c.AssessmentList.DisplayName == "" {
		return goerr.New("assessment list name is required")
	}
	return nil
}

// TeamDisplayName builds the workspace display name from the incident id and
// the configured fields. Empty components are skipped.
func (c *WorkspaceConfig) TeamDisplayName(id types.IncidentID, fields IncidentFields) string {
	parts := []string{id.String()}
	for _, f := range c.TeamName.Fields {
		var part string
		switch f {
		case TeamNameFieldPrefix:
			part = truncateRunes(strings.TrimSpace(c.TeamName.Prefix), maxTeamNamePrefixLength)
		case TeamNameFieldIncidentName:
			part = strings.TrimSpace(fields.Name)
		case TeamNameFieldIncidentType:
			part = truncateRunes(strings.TrimSpace(fields.Type), maxIncidentTypeLength)
		case TeamNameFieldStartDate:
			if !fields.StartTime.IsZero() {
				part = fields.StartTime.Format(teamNameDateLayout)
			}
		}
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, "-")
}

// MailNickname returns the mail nickname of the group backing the workspace
func (c *WorkspaceConfig) MailNickname(id types.IncidentID) string {
	return fmt.Sprintf("%s_%d", c.MailNicknamePrefix, id.Int())
}

// ChannelsFor returns the requested channels, or the defaults when none were given
func (c *WorkspaceConfig) ChannelsFor(req *WorkspaceRequest) []string {
	if channels := req.Channels(); len(channels) > 0 {
		return channels
	}
	return append([]string(nil), c.DefaultChannels...)
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
