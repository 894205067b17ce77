// Package whatsapp sends template messages through the WhatsApp Cloud API.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/cashbook_backend/internal/apperrors"
	portssvc "github.com/SscSPs/cashbook_backend/internal/core/ports/services"
	"github.com/SscSPs/cashbook_backend/internal/middleware"
	"golang.org/x/oauth2"
)

const (
	DefaultBaseURL      = "https://graph.facebook.com/v22.0"
	DefaultLanguageCode = "en"

	// Error bodies beyond this are truncated before being kept on NotificationError.
	maxErrorBody = 4 << 10
)

// Config describes the gateway account used to send messages.
type Config struct {
	BaseURL       string
	APIToken      string
	PhoneNumberID string
	LanguageCode  string
	Timeout       time.Duration
}

// Client implements NotificationSender against the WhatsApp Cloud API.
type Client struct {
	endpoint     string
	languageCode string
	httpClient   *http.Client
}

var _ portssvc.NotificationSender = (*Client)(nil)

// Option customises a Client.
type Option func(*Client)

// WithBaseTransport replaces the transport beneath the bearer-token transport.
func WithBaseTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		if t, ok := c.httpClient.Transport.(*oauth2.Transport); ok {
			t.Base = rt
		}
	}
}

// NewClient builds a client that authenticates every request with cfg.APIToken.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if cfg.APIToken == "" || cfg.PhoneNumberID == "" {
		return nil, errors.New("whatsapp: api token and phone number id are required")
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	lang := cfg.LanguageCode
	if lang == "" {
		lang = DefaultLanguageCode
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.APIToken, TokenType: "Bearer"})
	c := &Client{
		endpoint:     fmt.Sprintf("%s/%s/messages", baseURL, cfg.PhoneNumberID),
		languageCode: lang,
		httpClient: &http.Client{
			Transport: &oauth2.Transport{Source: src, Base: http.DefaultTransport},
			Timeout:   timeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type textParameter struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type component struct {
	Type       string          `json:"type"`
	Parameters []textParameter `json:"parameters"`
}

type language struct {
	Code string `json:"code"`
}

type template struct {
	Name       string      `json:"name"`
	Language   language    `json:"language"`
	Components []component `json:"components"`
}

type messageRequest struct {
	MessagingProduct string   `json:"messaging_product"`
	RecipientType    string   `json:"recipient_type"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Template         template `json:"template"`
}

type errorResponse struct {
	Error struct {
		Message   string `json:"message"`
		Type      string `json:"type"`
		Code      int    `json:"code"`
		FBTraceID string `json:"fbtrace_id"`
	} `json:"error"`
}

func newMessageRequest(to, templateName, lang string, params []string) messageRequest {
	parameters := make([]textParameter, len(params))
	for i, p := range params {
		parameters[i] = textParameter{Type: "text", Text: p}
	}
	return messageRequest{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             "template",
		Template: template{
			Name:     templateName,
			Language: language{Code: lang},
			Components: []component{
				{Type: "body", Parameters: parameters},
			},
		},
	}
}

// Send posts one template message. Any transport error or non-2xx status is
// returned as a *NotificationError; nothing is retried.
func (c *Client) Send(ctx context.Context, phoneNumber, templateName string, params []string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	body, err := json.Marshal(newMessageRequest(phoneNumber, templateName, c.languageCode, params))
	if err != nil {
		return &NotificationError{Template: templateName, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return &NotificationError{Template: templateName, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NotificationError{Template: templateName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		nerr := &NotificationError{Template: templateName, StatusCode: resp.StatusCode, Body: string(raw)}
		var apiErr errorResponse
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			nerr.APIMessage = apiErr.Error.Message
			nerr.APICode = apiErr.Error.Code
		}
		return nerr
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	logger.Info("WhatsApp template message sent", slog.String("template", templateName))
	return nil
}

// NotificationError reports a failed send. It matches apperrors.ErrNotification.
type NotificationError struct {
	Template   string
	StatusCode int
	APICode    int
	APIMessage string
	Body       string
	Err        error
}

func (e *NotificationError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("whatsapp: template %q: %v", e.Template, e.Err)
	case e.APIMessage != "":
		return fmt.Sprintf("whatsapp: template %q: status %d: %s (code %d)", e.Template, e.StatusCode, e.APIMessage, e.APICode)
	default:
		return fmt.Sprintf("whatsapp: template %q: unexpected status %d", e.Template, e.StatusCode)
	}
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}

func (e *NotificationError) Is(target error) bool {
	return target == apperrors.ErrNotification
}
