package model

import (
	"github.com/secmon-lab/muster/pkg/domain/types"
)

// ChannelOutcome is the result of creating one channel
type ChannelOutcome struct {
	Name     string
	Created  bool
	Attempts int
	Channel  *Channel
	Err      error
}

// ChannelResult aggregates channel creation outcomes
type ChannelResult struct {
	Succeeded []ChannelOutcome
	Failed    []ChannelOutcome
}

// IsFullyCreated reports whether every requested channel exists
func (r *ChannelResult) IsFullyCreated() bool {
	return len(r.Failed) == 0
}

// FailedNames returns the names of channels that could not be created
func (r *ChannelResult) FailedNames() []string {
	names := make([]string, 0, len(r.Failed))
	for _, o := range r.Failed {
		names = append(names, o.Name)
	}
	return names
}

// TagOutcome is the result of synchronizing one tag
type TagOutcome struct {
	Name    string
	Created bool // False when the tag already existed
	Tag     *Tag
	Err     error
}

// TagResult aggregates tag synchronization outcomes
type TagResult struct {
	Succeeded []TagOutcome
	Failed    []TagOutcome
}

// Add records the outcome as succeeded or failed depending on its error
func (r *TagResult) Add(o TagOutcome) {
	if o.Err != nil {
		r.Failed = append(r.Failed, o)
	} else {
		r.Succeeded = append(r.Succeeded, o)
	}
}

// FailedNames returns the names of tags that could not be synchronized
func (r *TagResult) FailedNames() []string {
	names := make([]string, 0, len(r.Failed))
	for _, o := range r.Failed {
		names = append(names, o.Name)
	}
	return names
}

// RunOutcome is reported to the caller of a provisioning or reconciliation run
type RunOutcome struct {
	Success      bool             `json:"success"`
	Message      string           `json:"message,omitempty"`
	Warnings     []string         `json:"warnings"`
	ErrorMessage string           `json:"error_message,omitempty"`
	IncidentID   types.IncidentID `json:"incident_id,omitempty"`
	TeamURL      string           `json:"team_url,omitempty"`
}

// ProvisioningStage is a state of the provisioning pipeline
type ProvisioningStage string

const (
	StageStart               ProvisioningStage = "start"
	StageGroupCreated        ProvisioningStage = "group_created"
	StageTeamReady           ProvisioningStage = "team_ready"
	StageChannelsProvisioned ProvisioningStage = "channels_provisioned"
	StageArtifactsReady      ProvisioningStage = "artifacts_ready"
	StageTagsSynced          ProvisioningStage = "tags_synced"
	StageCommitted           ProvisioningStage = "committed"
	StageFailed              ProvisioningStage = "failed"
	StageRollingBack         ProvisioningStage = "rolling_back"
	StageRolledBack          ProvisioningStage = "rolled_back"
)

// String returns the string representation of the stage
func (s ProvisioningStage) String() string {
	return string(s)
}

// RunKind distinguishes provisioning from reconciliation runs
type RunKind string

const (
	RunKindProvision RunKind = "provision"
	RunKindReconcile RunKind = "reconcile"
)

// OutcomeEvent describes a finished run for notification
type OutcomeEvent struct {
	Kind         RunKind
	IncidentName string
	Actor        PersonRef
	Outcome      *RunOutcome
}
