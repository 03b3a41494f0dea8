package testutils

import (
	"context"
	"log"
	"time"

	"github.com/Gstormsfh/citrus_league/containers"
	"github.com/Gstormsfh/citrus_league/db"
	"github.com/Gstormsfh/citrus_league/model"
	"github.com/itbasis/go-clock"
)

var (
	ConnorMcDavid = &model.Player{
		ID:          "8478402",
		FirstName:   "Connor",
		LastName:    "McDavid",
		Position:    model.POS_C,
		Team:        model.TEAM_EDM,
		Points:      512400,
		GamesPlayed: 76,
		Active:      true,
	}
	DavidPastrnak = &model.Player{
		ID:          "8477956",
		FirstName:   "David",
		LastName:    "Pastrnak",
		Position:    model.POS_RW,
		Team:        model.TEAM_BOS,
		Points:      441150,
		GamesPlayed: 82,
		Active:      true,
	}
	JackHughes = &model.Player{
		ID:          "8481559",
		FirstName:   "Jack",
		LastName:    "Hughes",
		Position:    model.POS_C,
		Team:        model.TEAM_NJD,
		Points:      372800,
		GamesPlayed: 62,
		Active:      true,
	}
	IgorShesterkin = &model.Player{
		ID:          "8478048",
		FirstName:   "Igor",
		LastName:    "Shesterkin",
		Position:    model.POS_G,
		Team:        model.TEAM_NYR,
		Points:      398250,
		GamesPlayed: 61,
		Active:      true,
	}
	CaleMakar = &model.Player{
		ID:          "8480069",
		FirstName:   "Cale",
		LastName:    "Makar",
		Position:    model.POS_D,
		Team:        model.TEAM_COL,
		Points:      405000,
		GamesPlayed: 77,
		Active:      true,
	}
)

type TestDB struct {
	container *containers.DBContainer
	DB        db.DB
	Clock     clock.Clock
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()
	clock := clock.New()

	db, err := db.New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	if err := InsertTestPlayers(db); err != nil {
		log.Fatalf("error populating db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        db,
		Clock:     clock,
	}
}

func (db *TestDB) Shutdown() {
	db.container.Shutdown()
}

func InsertTestPlayers(db db.DB) error {
	players := []*model.Player{
		ConnorMcDavid,
		DavidPastrnak,
		JackHughes,
		IgorShesterkin,
		CaleMakar,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, p := range players {
		err := db.SavePlayer(ctx, p)
		if err != nil {
			return err
		}
	}

	return nil
}
