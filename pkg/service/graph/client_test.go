package graph_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/muster/pkg/domain/model"
	"github.com/secmon-lab/muster/pkg/domain/types"
	"github.com/secmon-lab/muster/pkg/service/graph"
)

type recordedRequest struct {
	Method string
	Path   string
	Body   map[string]any
}

type fakeAPI struct {
	mu       sync.Mutex
	requests []recordedRequest
	handler  func(w http.ResponseWriter, r *http.Request)
}

func newFakeAPI(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*graph.Client, *fakeAPI) {
	api := &fakeAPI{handler: handler}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &body)
		}
		api.mu.Lock()
		api.requests = append(api.requests, recordedRequest{Method: r.Method, Path: r.URL.Path, Body: body})
		api.mu.Unlock()
		api.handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client, err := graph.New(context.Background(), graph.Config{
		BaseURL:       srv.URL,
		SenderAddress: "noreply@example.com",
		HTTPClient:    srv.Client(),
	})
	gt.NoError(t, err).Required()
	return client, api
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeGraphError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]any{"error": map[string]string{"code": code, "message": message}})
}

func TestNewRequiresCredentials(t *testing.T) {
	_, err := graph.New(context.Background(), graph.Config{SenderAddress: "noreply@example.com"})
	gt.Error(t, err)

	_, err = graph.New(context.Background(), graph.Config{TenantID: "t", ClientID: "c", ClientSecret: "s"})
	gt.Error(t, err)
}

func TestCreateGroup(t *testing.T) {
	client, api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]string{
			"id": "g-1", "displayName": "1-EOC-River", "mailNickname": "TEOC_1",
		})
	})

	group, err := client.CreateGroup(context.Background(), &model.GroupSpec{
		DisplayName:  "1-EOC-River",
		MailNickname: "TEOC_1",
		Visibility:   types.VisibilityPublic,
		Owners:       []types.DirectoryID{"ic"},
		Members:      []types.DirectoryID{"u1", "u2"},
	})
	gt.NoError(t, err).Required()
	gt.Equal(t, types.GroupID("g-1"), group.ID)

	gt.Equal(t, 1, len(api.requests))
	req := api.requests[0]
	gt.Equal(t, http.MethodPost, req.Method)
	gt.Equal(t, "/groups", req.Path)
	gt.Equal(t, "Public", req.Body["visibility"])
	gt.Equal(t, 1, len(req.Body["owners@odata.bind"].([]any)))
	gt.Equal(t, 2, len(req.Body["members@odata.bind"].([]any)))
	gt.S(t, req.Body["owners@odata.bind"].([]any)[0].(string)).Contains("/users/ic")
}

func TestErrorClassification(t *testing.T) {
	ctx := context.Background()

	t.Run("conflict is already exists", func(t *testing.T) {
		client, _ := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
			writeGraphError(w, http.StatusConflict, "Conflict", "Team already exists")
		})
		_, err := client.CreateTeam(ctx, "g-1", model.DefaultTeamSettings())
		gt.Error(t, err)
		gt.True(t, model.IsAlreadyExists(err))
		gt.Equal(t, 409, model.StatusCode(err))
	})

	t.Run("not found while the group replicates", func(t *testing.T) {
		client, _ := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
			writeGraphError(w, http.StatusNotFound, "NotFound", "No team found with Group Id g-1")
		})
		_, err := client.CreateTeam(ctx, "g-1", model.DefaultTeamSettings())
		gt.True(t, model.IsNotFound(err))
		gt.False(t, model.IsAlreadyExists(err))
	})

	t.Run("forbidden invitation is access denied", func(t *testing.T) {
		client, _ := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
			writeGraphError(w, http.StatusForbidden, "Forbidden", "Insufficient privileges")
		})
		_, err := client.InviteGuest(ctx, "guest@example.com", "Guest", "https://example.com")
		gt.True(t, model.IsAccessDenied(err))
	})

	t.Run("bad request invitation is a blocked recipient", func(t *testing.T) {
		client, _ := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
			writeGraphError(w, http.StatusBadRequest, "BadRequest", "The invited user is blocked")
		})
		_, err := client.InviteGuest(ctx, "guest@example.com", "Guest", "https://example.com")
		gt.True(t, model.IsBlockedRecipient(err))
		gt.Equal(t, 400, model.StatusCode(err))
	})

	t.Run("bad request elsewhere is not classified", func(t *testing.T) {
		client, _ := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
			writeGraphError(w, http.StatusBadRequest, "BadRequest", "Invalid value")
		})
		_, err := client.CreateChannel(ctx, "team-1", "Logistics")
		gt.Error(t, err)
		gt.False(t, model.IsBlockedRecipient(err))
		gt.Equal(t, 400, model.StatusCode(err))
	})

	t.Run("non JSON error body", func(t *testing.T) {
		client, _ := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream failure"))
		})
		_, err := client.GetTeam(ctx, "team-1")
		gt.Error(t, err)
		gt.Equal(t, 502, model.StatusCode(err))
		gt.S(t, err.Error()).Contains("upstream failure")
	})
}

func TestGetTeamMembersFollowsNextLink(t *testing.T) {
	client, api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			writeJSON(w, http.StatusOK, map[string]any{
				"value": []map[string]any{
					{"id": "m-2", "userId": "u2", "displayName": "User 2", "roles": []string{}},
				},
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"value": []map[string]any{
				{"id": "m-1", "userId": "u1", "displayName": "User 1", "roles": []string{"owner"}},
			},
			"@odata.nextLink": "http://" + r.Host + "/teams/team-1/members?page=2",
		})
	})

	snapshot, err := client.GetTeamMembers(context.Background(), "team-1")
	gt.NoError(t, err).Required()
	gt.Equal(t, 2, len(api.requests))
	gt.Equal(t, 2, len(snapshot.Members))
	gt.True(t, snapshot.Find("u1").IsOwner())
	gt.False(t, snapshot.Find("u2").IsOwner())
	gt.Equal(t, types.MembershipID("m-2"), snapshot.Find("u2").MembershipID)
}

func TestAddTeamMembers(t *testing.T) {
	client, api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"value": []any{}})
	})
	ctx := context.Background()

	gt.NoError(t, client.AddTeamMembers(ctx, "team-1", nil, true))
	gt.Equal(t, 0, len(api.requests))

	gt.NoError(t, client.AddTeamMembers(ctx, "team-1", []model.PersonRef{{ID: "u1"}, {ID: "u2"}}, true))
	gt.Equal(t, 1, len(api.requests))
	req := api.requests[0]
	gt.Equal(t, "/teams/team-1/members/add", req.Path)
	values := req.Body["values"].([]any)
	gt.Equal(t, 2, len(values))
	first := values[0].(map[string]any)
	gt.Equal[any](t, []any{"owner"}, first["roles"])
	gt.S(t, first["user@odata.bind"].(string)).Contains("/users('u1')")
}

func TestCreateTabAndList(t *testing.T) {
	client, api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/tabs"):
			writeJSON(w, http.StatusCreated, map[string]string{"id": "tab-1", "displayName": "News", "webUrl": "https://teams.example.com/tab"})
		default:
			writeJSON(w, http.StatusCreated, map[string]string{"id": "list-1", "webUrl": "https://contoso.example.com/Lists/GroundAssessments"})
		}
	})
	ctx := context.Background()

	tab, err := client.CreateTab(ctx, "team-1", "ch-1", &model.TabSpec{
		DisplayName: "News",
		AppID:       "app-1",
		EntityID:    "entity-1",
		ContentURL:  "https://contoso.example.com/content",
		WebsiteURL:  "https://contoso.example.com/news",
	})
	gt.NoError(t, err).Required()
	gt.Equal(t, "https://teams.example.com/tab", tab.WebURL)

	tabReq := api.requests[0]
	gt.Equal(t, "/teams/team-1/channels/ch-1/tabs", tabReq.Path)
	gt.S(t, tabReq.Body["teamsApp@odata.bind"].(string)).Contains("/appCatalogs/teamsApps/app-1")
	config := tabReq.Body["configuration"].(map[string]any)
	gt.Equal(t, "entity-1", config["entityId"])
	gt.Equal(t, "https://contoso.example.com/news", config["websiteUrl"])

	list, err := client.CreateList(ctx, "site-1", &model.ListSchema{
		DisplayName: "Ground Assessments",
		Columns: []model.ListColumn{
			{Name: "Location", Type: "text"},
			{Name: "Status", Type: "choice", Choices: []string{"Open", "Closed"}},
		},
	})
	gt.NoError(t, err).Required()
	gt.Equal(t, types.ListID("list-1"), list.ID)

	listReq := api.requests[1]
	gt.Equal(t, "/sites/site-1/lists", listReq.Path)
	columns := listReq.Body["columns"].([]any)
	gt.Equal(t, 2, len(columns))
	status := columns[1].(map[string]any)
	gt.Equal[any](t, []any{"Open", "Closed"}, status["choice"].(map[string]any)["choices"])
	gt.Equal(t, "genericList", listReq.Body["list"].(map[string]any)["template"])
}

func TestPostChannelMessage(t *testing.T) {
	client, api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]string{"id": "msg-1"})
	})

	err := client.PostChannelMessage(context.Background(), "team-1", "ch-1", &model.SummaryCard{
		TeamID:           "team-1",
		TeamDisplayName:  "1-EOC-River",
		IncidentName:     "River",
		Severity:         "High",
		Location:         "Downtown",
		CloudStorageLink: "https://files.example.com/river",
		CommanderName:    "Commander",
	})
	gt.NoError(t, err).Required()

	req := api.requests[0]
	gt.Equal(t, "/teams/team-1/channels/ch-1/messages", req.Path)
	body := req.Body["body"].(map[string]any)
	gt.S(t, body["content"].(string)).Contains(`<at id="0">1-EOC-River</at>`)

	attachment := req.Body["attachments"].([]any)[0].(map[string]any)
	content := attachment["content"].(string)
	gt.S(t, content).Contains("River")
	gt.S(t, content).Contains("Downtown")
	gt.S(t, content).Contains("https://files.example.com/river")

	mention := req.Body["mentions"].([]any)[0].(map[string]any)
	conversation := mention["mentioned"].(map[string]any)["conversation"].(map[string]any)
	gt.Equal(t, "team", conversation["conversationIdentityType"])
}

func TestSendMailAndInvite(t *testing.T) {
	client, api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/invitations" {
			writeJSON(w, http.StatusCreated, map[string]any{"invitedUser": map[string]string{"id": "guest-1"}})
			return
		}
		w.WriteHeader(http.StatusAccepted)
	})
	ctx := context.Background()

	id, err := client.InviteGuest(ctx, "guest@example.com", "Guest", "https://teams.example.com")
	gt.NoError(t, err).Required()
	gt.Equal(t, types.DirectoryID("guest-1"), id)
	gt.Equal(t, false, api.requests[0].Body["sendInvitationMessage"])

	gt.NoError(t, client.SendMail(ctx, &model.MailMessage{
		To:       []string{"guest@example.com"},
		Subject:  "Welcome",
		HTMLBody: "<p>Hello</p>",
	}))
	mailReq := api.requests[1]
	gt.Equal(t, "/users/noreply@example.com/sendMail", mailReq.Path)
	msg := mailReq.Body["message"].(map[string]any)
	gt.Equal(t, "Welcome", msg["subject"])
}
