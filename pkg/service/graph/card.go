package graph

import (
	"encoding/json"
	"fmt"
	"html"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/muster/pkg/domain/model"
)

const cardAttachmentID = "summary"

type cardFact struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// buildSummaryCard renders the adaptive card describing the incident
func buildSummaryCard(card *model.SummaryCard) map[string]any {
	facts := []cardFact{
		{Title: "Incident", Value: card.IncidentName},
		{Title: "Severity", Value: card.Severity},
		{Title: "Location", Value: card.Location},
		{Title: "Incident Commander", Value: card.CommanderName},
	}

	body := []map[string]any{
		{
			"type":   "TextBlock",
			"size":   "Large",
			"weight": "Bolder",
			"wrap":   true,
			"text":   fmt.Sprintf("Welcome to %s", card.TeamDisplayName),
		},
		{
			"type":  "FactSet",
			"facts": facts,
		},
	}

	var actions []map[string]any
	if card.CloudStorageLink != "" {
		actions = append(actions, map[string]any{
			"type":  "Action.OpenUrl",
			"title": "Open shared files",
			"url":   card.CloudStorageLink,
		})
	}

	content := map[string]any{
		"$schema": "http://adaptivecards.io/schemas/adaptive-card.json",
		"type":    "AdaptiveCard",
		"version": "1.4",
		"body":    body,
	}
	if len(actions) > 0 {
		content["actions"] = actions
	}
	return content
}

// buildCardMessage wraps the summary card in a channel message that
// mentions the team
func buildCardMessage(card *model.SummaryCard) (map[string]any, error) {
	content, err := json.Marshal(buildSummaryCard(card))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode summary card")
	}

	name := card.TeamDisplayName
	return map[string]any{
		"body": map[string]string{
			"contentType": "html",
			"content": fmt.Sprintf(`<at id="0">%s</at><attachment id="%s"></attachment>`,
				html.EscapeString(name), cardAttachmentID),
		},
		"attachments": []map[string]any{
			{
				"id":          cardAttachmentID,
				"contentType": "application/vnd.microsoft.card.adaptive",
				"content":     string(content),
			},
		},
		"mentions": []map[string]any{
			{
				"id":          0,
				"mentionText": name,
				"mentioned": map[string]any{
					"conversation": map[string]any{
						"id":                       card.TeamID.String(),
						"displayName":              name,
						"conversationIdentityType": "team",
					},
				},
			},
		},
	}, nil
}
