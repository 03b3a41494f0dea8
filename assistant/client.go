package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to the hosted Stormy assistant service. The service holds the
// model and the prompt templates, this client only ships the question and the
// league context over and returns the answer text.
type Client interface {
	Ask(ctx context.Context, req *Request) (*Reply, error)
}

type Request struct {
	Message    string `json:"message"`
	LeagueName string `json:"league_name,omitempty"`
	TeamName   string `json:"team_name,omitempty"`
}

type Reply struct {
	Answer string `json:"answer"`
}

type client struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

func New(url, apiKey string) (Client, error) {
	if url == "" {
		return nil, fmt.Errorf("assistant url must be provided")
	}
	return &client{
		url:    url,
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// NewForTest returns a client pointed at a fake assistant server.
func NewForTest(url string) Client {
	return &client{
		url: url,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *client) Ask(ctx context.Context, r *Request) (*Reply, error) {
	body, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("error encoding assistant request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/v1/chat", c.url), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error creating http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var reply Reply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("error parsing assistant response: %w", err)
	}
	return &reply, nil
}
