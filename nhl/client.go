package nhl

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Gstormsfh/citrus_league/model"
)

const StatsURL = "https://api.nhle.com"

type Client interface {
	LoadPlayers() ([]model.Player, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

func New() (Client, error) {
	c := &client{
		url: StatsURL,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
	}
	return c, nil
}

// NewForTest returns a client pointed at a fake stats server.
func NewForTest(url string) Client {
	return &client{
		url: url,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *client) LoadPlayers() ([]model.Player, error) {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/v1/players", c.url), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var parsed map[string]statsPlayer
	err = json.NewDecoder(resp.Body).Decode(&parsed)
	if err != nil {
		return nil, fmt.Errorf("error parsing response from stats api: %w", err)
	}

	// Convert the players into model.Players
	result := make([]model.Player, 0, len(parsed))
	for _, p := range parsed {
		pos := model.ParsePosition(p.Position)
		if pos == model.POS_UNKNOWN {
			continue
		}
		result = append(result, *p.toPlayer())
	}

	return result, nil
}
