package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	netmail "net/mail"
	"net/url"
	"strings"

	"github.com/aussiebroadwan/hireflow/internal/onboarding/mail"
	"github.com/aussiebroadwan/hireflow/pkg/slogx"
)

var ErrInvalidEmailRequest = errors.New("invalid email request")

type InviteEmailRequest struct {
	Email            string
	OrganizationName string
	Token            string
	BaseURL          string
}

// EmailResult describes what happened to an invitation email. Skipped is
// set when no provider is configured; that is not an error.
type EmailResult struct {
	Sent      bool
	Skipped   bool
	MessageID string
}

type EmailService struct {
	Sender   mail.Sender
	From     string
	SiteName string
}

// InviteLink builds the acceptance link for token under baseURL.
func InviteLink(baseURL, token string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: base url must be an absolute http(s) url", ErrInvalidEmailRequest)
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/invite"
	u.RawQuery = url.Values{"token": {token}}.Encode()
	u.Fragment = ""
	return u.String(), nil
}

// SendInvite emails an invitation link to req.Email.
func (s *EmailService) SendInvite(ctx context.Context, req InviteEmailRequest) (EmailResult, error) {
	log := slogx.FromContext(ctx)

	if req.Email == "" || req.OrganizationName == "" || req.Token == "" || req.BaseURL == "" {
		return EmailResult{}, ErrInvalidEmailRequest
	}
	addr, err := netmail.ParseAddress(req.Email)
	if err != nil {
		return EmailResult{}, fmt.Errorf("%w: invalid email address", ErrInvalidEmailRequest)
	}
	link, err := InviteLink(req.BaseURL, req.Token)
	if err != nil {
		return EmailResult{}, err
	}

	if s.Sender == nil || !s.Sender.Configured() {
		log.Warn("mail provider not configured, skipping invite email",
			slog.String("organization", req.OrganizationName),
		)
		return EmailResult{Skipped: true}, nil
	}

	siteName := s.SiteName
	if siteName == "" {
		siteName = "Hireflow"
	}
	msg, err := mail.BuildInviteEmail(mail.InviteEmailData{
		SiteName:         siteName,
		OrganizationName: req.OrganizationName,
		InviteLink:       link,
	})
	if err != nil {
		return EmailResult{}, err
	}
	msg.From = s.From
	msg.To = addr.Address

	id, err := s.Sender.Send(ctx, msg)
	if err != nil {
		log.Error("failed to send invite email",
			slog.String("organization", req.OrganizationName),
			slog.Any("error", err),
		)
		return EmailResult{}, err
	}

	log.Info("invite email sent", slog.String("message_id", id))
	return EmailResult{Sent: true, MessageID: id}, nil
}
