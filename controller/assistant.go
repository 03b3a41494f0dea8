package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Gstormsfh/citrus_league/assistant"
	"github.com/Gstormsfh/citrus_league/db"
)

// AskAssistant sends a question to Stormy along with the asker's league
// context so answers can reference their team. Guests and GMs without a
// league still get an answer, just without the context.
func (c *controller) AskAssistant(ctx context.Context, profileID string, leagueID int32, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", errors.New("message must not be empty")
	}

	req := &assistant.Request{Message: message}

	if leagueID > 0 {
		l, err := c.db.GetLeague(ctx, leagueID)
		if err != nil && !errors.Is(err, db.ErrLeagueNotFound) {
			return "", fmt.Errorf("error loading league for assistant context: %w", err)
		}
		if l != nil {
			req.LeagueName = l.Name
		}

		if profileID != "" {
			t, err := c.db.GetTeamByOwner(ctx, leagueID, profileID)
			if err != nil && !errors.Is(err, db.ErrTeamNotFound) {
				return "", fmt.Errorf("error loading team for assistant context: %w", err)
			}
			if t != nil {
				req.TeamName = t.Name
			}
		}
	}

	reply, err := c.assistant.Ask(ctx, req)
	if err != nil {
		return "", fmt.Errorf("error asking assistant: %w", err)
	}
	return reply.Answer, nil
}
