package nhl

import (
	"log"
	"time"

	"github.com/Gstormsfh/citrus_league/model"
)

var zeroTime = time.Time{}

type statsPlayer struct {
	ID           string  `json:"player_id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Position     string  `json:"position"`
	Team         string  `json:"team"`
	JerseyNumber int     `json:"sweater_number"`
	Shoots       string  `json:"shoots_catches"`
	BirthDate    string  `json:"birth_date"`
	Points       float64 `json:"fantasy_points"`
	GamesPlayed  int     `json:"games_played"`
	Active       bool    `json:"active"`
}

func (p *statsPlayer) toPlayer() *model.Player {
	return &model.Player{
		ID:          p.ID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Position:    model.ParsePosition(p.Position),
		Team:        model.ParseNHLTeam(p.Team),
		Jersey:      p.JerseyNumber,
		Shoots:      p.Shoots,
		BirthDate:   parseBirthdate(p.BirthDate, p.ID),
		Points:      int32(p.Points * 1000),
		GamesPlayed: p.GamesPlayed,
		Active:      p.Active,
	}
}

func parseBirthdate(d, id string) time.Time {
	if d == "" {
		return zeroTime
	}

	t, err := time.Parse(time.DateOnly, d)
	if err != nil {
		log.Printf("unable to parse birth date '%s' for player %s", d, id)
		return zeroTime
	}
	return t
}
