package slack

import (
	"fmt"
	"strings"

	"github.com/secmon-lab/muster/pkg/domain/model"
	"github.com/slack-go/slack"
)

func outcomeEmoji(outcome *model.RunOutcome) string {
	switch {
	case !outcome.Success:
		return "🚨"
	case len(outcome.Warnings) > 0:
		return "⚠️"
	default:
		return "✅"
	}
}

func outcomeTitle(event *model.OutcomeEvent) string {
	action := "created"
	if event.Kind == model.RunKindReconcile {
		action = "updated"
	}
	if !event.Outcome.Success {
		return fmt.Sprintf("Incident workspace could not be %s", action)
	}
	return fmt.Sprintf("Incident workspace %s", action)
}

// BuildOutcomeBlocks builds the blocks reporting a finished run
func BuildOutcomeBlocks(event *model.OutcomeEvent) []slack.Block {
	outcome := event.Outcome

	blocks := []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject(slack.PlainTextType, fmt.Sprintf("%s %s", outcomeEmoji(outcome), outcomeTitle(event)), true, false),
		),
	}

	fields := []*slack.TextBlockObject{
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Incident:*\n%s", event.IncidentName), false, false),
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Requested by:*\n%s", actorLabel(event.Actor)), false, false),
	}
	if outcome.IncidentID > 0 {
		fields = append(fields, slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Incident ID:*\n%d", outcome.IncidentID.Int()), false, false))
	}
	if outcome.TeamURL != "" {
		fields = append(fields, slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Workspace:*\n<%s|Open>", outcome.TeamURL), false, false))
	}
	blocks = append(blocks, slack.NewSectionBlock(nil, fields, nil))

	if !outcome.Success && outcome.ErrorMessage != "" {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("❌ Error: %s", outcome.ErrorMessage), false, false),
			nil, nil,
		))
	}

	if len(outcome.Warnings) > 0 {
		lines := make([]string, len(outcome.Warnings))
		for i, w := range outcome.Warnings {
			lines[i] = "• " + w
		}
		blocks = append(blocks,
			slack.NewDividerBlock(),
			slack.NewContextBlock("",
				slack.NewTextBlockObject(slack.MarkdownType, "*Warnings*\n"+strings.Join(lines, "\n"), false, false),
			),
		)
	}

	return blocks
}

func actorLabel(p model.PersonRef) string {
	switch {
	case p.DisplayName != "" && p.Email != "":
		return fmt.Sprintf("%s (%s)", p.DisplayName, p.Email)
	case p.DisplayName != "":
		return p.DisplayName
	default:
		return p.ID.String()
	}
}
