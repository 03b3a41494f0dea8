package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Gstormsfh/citrus_league/controller"
	"github.com/Gstormsfh/citrus_league/model"
	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"
)

// JSON shapes for the /api/v1 endpoints. Points go out formatted so clients
// don't need to know about the milli-point convention.
type apiPlayer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Team     string `json:"team"`
	Points   string `json:"points"`
}

type apiStandingsRow struct {
	TeamID        int32  `json:"team_id"`
	TeamName      string `json:"team_name"`
	Record        string `json:"record"`
	PointsFor     string `json:"points_for"`
	PointsAgainst string `json:"points_against"`
	Streak        string `json:"streak"`
}

func apiPlayerSearchHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		if query == "" {
			render.JSON(w, http.StatusBadRequest, map[string]string{"error": "q parameter is required"})
			return
		}

		results, err := ctrl.Search(r.Context(), query)
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}

		players := make([]apiPlayer, 0, len(results))
		for _, p := range results {
			players = append(players, toAPIPlayer(&p))
		}
		render.JSON(w, http.StatusOK, players)
	}
}

func apiStandingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueIDParam(r)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		standings, err := ctrl.GetStandings(r.Context(), id)
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}

		rows := make([]apiStandingsRow, 0, len(standings))
		for i := range standings {
			s := &standings[i]
			rows = append(rows, apiStandingsRow{
				TeamID:        s.TeamID,
				TeamName:      s.TeamName,
				Record:        s.FormattedRecord(),
				PointsFor:     s.FormattedPointsFor(),
				PointsAgainst: s.FormattedPointsAgainst(),
				Streak:        s.FormattedStreak(),
			})
		}
		render.JSON(w, http.StatusOK, rows)
	}
}

func apiWaiverStatusHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID, err := leagueIDParam(r)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		teamID, err := int32Param(r, "teamID")
		if err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		status, err := ctrl.GetWaiverStatus(r.Context(), leagueID, teamID)
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}

		render.JSON(w, http.StatusOK, status)
	}
}

func apiAssistantHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionFromRequest(r)

		var req struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}

		answer, err := ctrl.AskAssistant(r.Context(), s.ProfileID, s.LeagueID, req.Message)
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}

		render.JSON(w, http.StatusOK, map[string]string{"answer": answer})
	}
}

func toAPIPlayer(p *model.Player) apiPlayer {
	team := ""
	if p.Team != nil {
		team = p.Team.String()
	}
	return apiPlayer{
		ID:       p.ID,
		Name:     p.FullName(),
		Position: string(p.Position),
		Team:     team,
		Points:   p.FormattedPoints(),
	}
}

func int32Param(r *http.Request, name string) (int32, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, fmt.Errorf("error parsing %s: %v", name, err)
	}
	return int32(id), nil
}
