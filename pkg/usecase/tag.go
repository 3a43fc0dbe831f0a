package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/muster/pkg/domain/interfaces"
	"github.com/secmon-lab/muster/pkg/domain/model"
	"github.com/secmon-lab/muster/pkg/domain/types"
)

// TagSynchronizer keeps one workspace tag per incident role
type TagSynchronizer struct {
	directory interfaces.DirectoryService
	policy    RetryPolicy
}

// NewTagSynchronizer creates a TagSynchronizer with the given retry budget
func NewTagSynchronizer(directory interfaces.DirectoryService, policy RetryPolicy) *TagSynchronizer {
	return &TagSynchronizer{
		directory: directory,
		policy:    policy,
	}
}

// BuildTagSpecs returns the commander tag followed by one tag per role.
// Roles without any member get no tag.
func BuildTagSpecs(commanderRole string, commander model.PersonRef, roles model.RoleAssignments) []model.TagSpec {
	var specs []model.TagSpec
	if !commander.IsZero() {
		specs = append(specs, model.TagSpec{
			DisplayName: commanderRole,
			Members:     []types.DirectoryID{commander.ID},
		})
	}
	for _, role := range roles {
		members := role.Members()
		if len(members) == 0 || role.Role == commanderRole {
			continue
		}
		ids := make([]types.DirectoryID, len(members))
		for i, m := range members {
			ids[i] = m.ID
		}
		specs = append(specs, model.TagSpec{DisplayName: role.Role, Members: ids})
	}
	return specs
}

// SyncTags creates a tag per spec. A tag that already exists is looked up
// and populated with the spec members explicitly, since creation of an
// existing tag does not add members.
func (s *TagSynchronizer) SyncTags(ctx context.Context, teamID types.TeamID, specs []model.TagSpec) *model.TagResult {
	logger := ctxlog.From(ctx)
	result := &model.TagResult{}
	var existing []model.TagSpec

	for _, spec := range specs {
		spec.Members = uniqueIDs(spec.Members)
		if len(spec.Members) == 0 {
			continue
		}

		attempt := Execute(ctx, s.policy, Classifier[*model.Tag]{}, func(ctx context.Context) (*model.Tag, error) {
			return s.directory.CreateTag(ctx, teamID, &spec)
		})

		switch attempt.Outcome {
		case OutcomeCreated:
			logger.Info("Tag created", "tag", spec.DisplayName, "members", len(spec.Members))
			result.Succeeded = append(result.Succeeded, model.TagOutcome{
				Name:    spec.DisplayName,
				Created: true,
				Tag:     attempt.Value,
			})
		case OutcomeAlreadyExists:
			existing = append(existing, spec)
		default:
			logger.Warn("Tag creation failed",
				"tag", spec.DisplayName,
				"attempts", attempt.Attempts,
				"error", attempt.Err)
			result.Failed = append(result.Failed, model.TagOutcome{
				Name: spec.DisplayName,
				Err: goerr.Wrap(attempt.Err, "failed to create tag",
					goerr.V("tag", spec.DisplayName),
					goerr.V("attempts", attempt.Attempts)),
			})
		}
	}

	if len(existing) == 0 {
		return result
	}

	tags, err := s.directory.ListTags(ctx, teamID)
	if err != nil {
		for _, spec := range existing {
			result.Failed = append(result.Failed, model.TagOutcome{
				Name: spec.DisplayName,
				Err:  goerr.Wrap(err, "failed to list tags", goerr.V("tag", spec.DisplayName)),
			})
		}
		return result
	}

	byName := indexTags(tags)
	for _, spec := range existing {
		result.Add(s.populate(ctx, teamID, byName[spec.DisplayName], spec))
	}
	return result
}

// Resync creates tags missing for the specs and adds every spec member to
// its existing tag. Adding a current member is treated as success.
func (s *TagSynchronizer) Resync(ctx context.Context, teamID types.TeamID, specs []model.TagSpec) *model.TagResult {
	tags, err := s.directory.ListTags(ctx, teamID)
	if err != nil {
		result := &model.TagResult{}
		for _, spec := range specs {
			result.Failed = append(result.Failed, model.TagOutcome{
				Name: spec.DisplayName,
				Err:  goerr.Wrap(err, "failed to list tags", goerr.V("tag", spec.DisplayName)),
			})
		}
		return result
	}

	byName := indexTags(tags)
	var missing, present []model.TagSpec
	for _, spec := range specs {
		if _, ok := byName[spec.DisplayName]; ok {
			present = append(present, spec)
		} else {
			missing = append(missing, spec)
		}
	}

	ctxlog.From(ctx).Info("Resynchronizing tags", "missing", len(missing), "existing", len(present))

	result := s.SyncTags(ctx, teamID, missing)
	for _, spec := range present {
		spec.Members = uniqueIDs(spec.Members)
		result.Add(s.populate(ctx, teamID, byName[spec.DisplayName], spec))
	}
	return result
}

func (s *TagSynchronizer) populate(ctx context.Context, teamID types.TeamID, tag *model.Tag, spec model.TagSpec) model.TagOutcome {
	if tag == nil {
		return model.TagOutcome{
			Name: spec.DisplayName,
			Err: goerr.New("tag reported as existing but not found",
				goerr.V("tag", spec.DisplayName),
				goerr.T(model.ErrTagNotFound)),
		}
	}

	for _, userID := range spec.Members {
		if err := s.directory.AddTagMember(ctx, teamID, tag.ID, userID); err != nil && !model.IsAlreadyExists(err) {
			return model.TagOutcome{
				Name: spec.DisplayName,
				Tag:  tag,
				Err: goerr.Wrap(err, "failed to add tag member",
					goerr.V("tag", spec.DisplayName),
					goerr.V("user_id", userID)),
			}
		}
	}
	return model.TagOutcome{Name: spec.DisplayName, Tag: tag}
}

func indexTags(tags []*model.Tag) map[string]*model.Tag {
	byName := make(map[string]*model.Tag, len(tags))
	for _, tag := range tags {
		if _, ok := byName[tag.DisplayName]; !ok {
			byName[tag.DisplayName] = tag
		}
	}
	return byName
}

func uniqueIDs(ids []types.DirectoryID) []types.DirectoryID {
	seen := make(map[types.DirectoryID]bool, len(ids))
	var result []types.DirectoryID
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}
	return result
}
