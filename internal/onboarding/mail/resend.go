package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/aussiebroadwan/hireflow/pkg/slogx"
)

const (
	DefaultResendURL       = "https://api.resend.com"
	DefaultMaxRetries      = 3
	DefaultInitialInterval = 500 * time.Millisecond
	defaultRequestTimeout  = 10 * time.Second

	// maxRetryAfterSeconds caps a provider's Retry-After hint.
	maxRetryAfterSeconds = 30
)

// ResendSender posts messages to a Resend-compatible HTTP API.
type ResendSender struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client

	// MaxRetries is the number of attempts after the first one.
	MaxRetries      int
	InitialInterval time.Duration
}

func NewResendSender(apiKey, baseURL string) *ResendSender {
	if baseURL == "" {
		baseURL = DefaultResendURL
	}
	return &ResendSender{
		APIKey:          apiKey,
		BaseURL:         strings.TrimRight(baseURL, "/"),
		HTTPClient:      &http.Client{Timeout: defaultRequestTimeout},
		MaxRetries:      DefaultMaxRetries,
		InitialInterval: DefaultInitialInterval,
	}
}

func (s *ResendSender) Configured() bool {
	return s != nil && s.APIKey != ""
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

type resendResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Send delivers msg, retrying rate-limited and server-side failures with
// exponential backoff. Other client errors fail immediately.
func (s *ResendSender) Send(ctx context.Context, msg Message) (string, error) {
	if !s.Configured() {
		return "", ErrNotConfigured
	}
	log := slogx.FromContext(ctx)

	payload, err := json.Marshal(resendRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTMLBody,
		Text:    msg.TextBody,
	})
	if err != nil {
		return "", fmt.Errorf("mail: encode request: %w", err)
	}

	b := backoff.NewExponentialBackOff()
	if s.InitialInterval > 0 {
		b.InitialInterval = s.InitialInterval
	}
	maxRetries := s.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	attempt := 0
	id, err := backoff.Retry(ctx, func() (string, error) {
		attempt++
		id, err := s.post(ctx, payload)
		if err == nil {
			return id, nil
		}

		var perr *ProviderError
		if errors.As(err, &perr) && !perr.Retryable() {
			return "", backoff.Permanent(err)
		}
		log.Warn("mail delivery attempt failed",
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)
		return "", err
	},
		backoff.WithBackOff(b),
		backoff.WithMaxTries(uint(maxRetries+1)),
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *ResendSender) post(ctx context.Context, payload []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return "", backoff.Permanent(err)
	}
	req.Header.Set("Authorization", "Bearer "+s.APIKey)
	req.Header.Set("Content-Type", "application/json")

	client := s.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return "", err
	}

	var decoded resendResponse
	_ = json.Unmarshal(body, &decoded)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		perr := &ProviderError{StatusCode: resp.StatusCode, Message: decoded.Message}
		if resp.StatusCode == http.StatusTooManyRequests {
			if secs, ok := retryAfterSeconds(resp.Header.Get("Retry-After")); ok {
				return "", backoff.RetryAfter(secs)
			}
		}
		return "", perr
	}
	return decoded.ID, nil
}

// retryAfterSeconds parses a delta-seconds Retry-After value, capped at
// maxRetryAfterSeconds.
func retryAfterSeconds(header string) (int, bool) {
	secs, err := strconv.Atoi(strings.TrimSpace(header))
	if err != nil || secs <= 0 {
		return 0, false
	}
	return min(secs, maxRetryAfterSeconds), true
}
