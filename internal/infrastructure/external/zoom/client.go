package zoom

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/johnquangdev/meeting-scheduler/pkg/config"
)

// Client wraps the Zoom operations this service needs
type Client interface {
	CreateMeeting(ctx context.Context, req *CreateMeetingRequest) (*Meeting, error)
}

// CreateMeetingRequest is the body sent to POST /users/me/meetings
type CreateMeetingRequest struct {
	Topic     string `json:"topic"`
	Type      int    `json:"type"`
	StartTime string `json:"start_time,omitempty"`
	Duration  int    `json:"duration"`
	Timezone  string `json:"timezone,omitempty"`
}

// Meeting holds the fields of Zoom's create response we rely on. Raw keeps
// the full payload so callers can pass it through untouched.
type Meeting struct {
	ID        int64           `json:"id"`
	UUID      string          `json:"uuid"`
	HostID    string          `json:"host_id"`
	Topic     string          `json:"topic"`
	Type      int             `json:"type"`
	StartTime string          `json:"start_time"`
	Duration  int             `json:"duration"`
	Timezone  string          `json:"timezone"`
	JoinURL   string          `json:"join_url"`
	StartURL  string          `json:"start_url"`
	Password  string          `json:"password"`
	Raw       json.RawMessage `json:"-"`
}

// APIError is a non-2xx answer from the Zoom REST API
type APIError struct {
	Status int
	Code   int    `json:"code"`
	Msg    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("zoom api: status %d: %s (code %d)", e.Status, e.Msg, e.Code)
	}
	return fmt.Sprintf("zoom api: status %d", e.Status)
}

// realClient talks to Zoom with server-to-server OAuth credentials
type realClient struct {
	creds      *clientcredentials.Config
	apiBaseURL string
	httpClient *http.Client
}

// NewClient creates a Zoom client. A fresh access token is requested for
// every call; nothing is cached between requests.
func NewClient(cfg config.ZoomConfig, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &realClient{
		creds: &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
			AuthStyle:    oauth2.AuthStyleInHeader,
			EndpointParams: url.Values{
				"grant_type": {"account_credentials"},
				"account_id": {cfg.AccountID},
			},
		},
		apiBaseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *realClient) token(ctx context.Context) (*oauth2.Token, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	tok, err := c.creds.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get zoom access token: %w", err)
	}
	return tok, nil
}

// CreateMeeting creates a meeting owned by the account's default user
func (c *realClient) CreateMeeting(ctx context.Context, req *CreateMeetingRequest) (*Meeting, error) {
	tok, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode zoom request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBaseURL+"/users/me/meetings", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build zoom request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	tok.SetAuthHeader(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call zoom: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read zoom response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		_ = json.Unmarshal(payload, apiErr)
		return nil, apiErr
	}

	var meeting Meeting
	if err := json.Unmarshal(payload, &meeting); err != nil {
		return nil, fmt.Errorf("failed to decode zoom response: %w", err)
	}
	meeting.Raw = json.RawMessage(payload)

	return &meeting, nil
}
