package usecase

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/muster/pkg/domain/interfaces"
	"github.com/secmon-lab/muster/pkg/domain/model"
	"github.com/secmon-lab/muster/pkg/domain/types"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

//go:embed templates/*.html
var templateFS embed.FS

var guestMailTemplate = template.Must(template.ParseFS(templateFS, "templates/guest_invitation.html"))

// Messages reported for guest invitation batches
const (
	GuestAccessDeniedMessage = "Guest users could not be invited because you do not have permission to invite guests. Please contact your administrator."
	guestBlockedMessage      = "Guest invitations could not be sent to the following users: "
	guestGenericMessage      = "Guest users could not be invited. Please try again later."
	guestFailedMessage       = "Guest users could not be added to the workspace: "
)

const defaultGuestConcurrency = 4

// GuestTarget is the workspace guests are invited into
type GuestTarget struct {
	GroupID     types.GroupID
	TeamID      types.TeamID
	TeamName    string
	TeamURL     string
	Description string
}

// GuestInviter invites external users into a workspace
type GuestInviter struct {
	directory   interfaces.DirectoryService
	redirectURL string
	concurrency int64
}

// NewGuestInviter creates a GuestInviter. Invited users are redirected to
// redirectURL after accepting the invitation.
func NewGuestInviter(directory interfaces.DirectoryService, redirectURL string) *GuestInviter {
	return &GuestInviter{
		directory:   directory,
		redirectURL: redirectURL,
		concurrency: defaultGuestConcurrency,
	}
}

// Invite processes every candidate independently and classifies the batch.
// Incomplete and duplicate candidates are dropped first. Users already in
// existing are invited but neither added again nor notified.
func (g *GuestInviter) Invite(ctx context.Context, target GuestTarget, candidates []model.GuestInvite, existing *model.MembershipSnapshot) *model.InvitationResult {
	logger := ctxlog.From(ctx)
	guests := model.DedupeGuests(candidates)

	logger.Info("Inviting guests",
		"teamID", target.TeamID,
		"candidates", len(candidates),
		"guests", len(guests))

	outcomes := make([]model.GuestOutcome, len(guests))
	sem := semaphore.NewWeighted(g.concurrency)
	var group errgroup.Group

	for i, guest := range guests {
		group.Go(func() error {
			if err := sem.Acquire(ctx, 1); err != nil {
				outcomes[i] = failedGuest(guest, goerr.Wrap(err, "failed to acquire invitation slot"))
				return nil
			}
			defer sem.Release(1)

			outcomes[i] = g.inviteOne(ctx, target, guest, existing)
			return nil
		})
	}
	_ = group.Wait()

	return classifyInvitations(ctx, outcomes)
}

func (g *GuestInviter) inviteOne(ctx context.Context, target GuestTarget, guest model.GuestInvite, existing *model.MembershipSnapshot) model.GuestOutcome {
	userID, err := g.directory.InviteGuest(ctx, guest.Email, guest.DisplayName, g.redirectURL)
	if err != nil {
		return failedGuest(guest, goerr.Wrap(err, "failed to invite guest", goerr.V("email", guest.Email)))
	}

	outcome := model.GuestOutcome{Email: guest.Email, UserID: userID}
	if existing.Has(userID) {
		return outcome
	}

	if err := g.directory.AddGroupMember(ctx, target.GroupID, userID); err != nil {
		return failedGuest(guest, goerr.Wrap(err, "failed to add guest to workspace",
			goerr.V("email", guest.Email),
			goerr.V("user_id", userID)))
	}

	body, err := renderGuestMail(guest, target)
	if err != nil {
		return failedGuest(guest, err)
	}

	if err := g.directory.SendMail(ctx, &model.MailMessage{
		To:       []string{guest.Email},
		Subject:  "You have been added to " + target.TeamName,
		HTMLBody: body,
	}); err != nil {
		return failedGuest(guest, goerr.Wrap(err, "failed to send guest notification",
			goerr.V("email", guest.Email)))
	}

	return outcome
}

func failedGuest(guest model.GuestInvite, err error) model.GuestOutcome {
	return model.GuestOutcome{
		Email:  guest.Email,
		Status: model.StatusCode(err),
		Err:    err,
	}
}

// classifyInvitations folds per-guest outcomes into the batch result. The
// first access-denied failure decides the whole batch.
func classifyInvitations(ctx context.Context, outcomes []model.GuestOutcome) *model.InvitationResult {
	logger := ctxlog.From(ctx)
	result := &model.InvitationResult{IsAllSucceeded: true, Outcomes: outcomes}

	var blocked, others []string
	for _, o := range outcomes {
		if !o.Failed() {
			continue
		}
		logger.Warn("Guest invitation failed", "email", o.Email, "status", o.Status, "error", o.Err)

		if model.IsAccessDenied(o.Err) {
			result.IsAllSucceeded = false
			result.Message = GuestAccessDeniedMessage
			return result
		}
		if model.IsBlockedRecipient(o.Err) {
			blocked = append(blocked, o.Email)
		} else {
			others = append(others, o.Email)
		}
	}

	var messages []string
	if len(blocked) > 0 {
		messages = append(messages, guestBlockedMessage+strings.Join(blocked, ", "))
	}
	if len(others) > 0 {
		messages = append(messages, guestFailedMessage+strings.Join(others, ", "))
	}
	if len(messages) > 0 {
		result.IsAllSucceeded = false
		result.Message = strings.Join(messages, "\n")
	}
	return result
}

// guestFailure is the batch result when invitations could not be attempted
func guestFailure(err error) *model.InvitationResult {
	if model.IsAccessDenied(err) {
		return &model.InvitationResult{Message: GuestAccessDeniedMessage}
	}
	return &model.InvitationResult{Message: guestGenericMessage}
}

func renderGuestMail(guest model.GuestInvite, target GuestTarget) (string, error) {
	var buf bytes.Buffer
	if err := guestMailTemplate.Execute(&buf, struct {
		DisplayName string
		TeamName    string
		TeamURL     string
		Description string
	}{
		DisplayName: guest.DisplayName,
		TeamName:    target.TeamName,
		TeamURL:     target.TeamURL,
		Description: target.Description,
	}); err != nil {
		return "", goerr.Wrap(err, "failed to render guest mail")
	}
	return buf.String(), nil
}
