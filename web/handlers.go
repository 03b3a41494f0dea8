package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Gstormsfh/citrus_league/controller"
	"github.com/Gstormsfh/citrus_league/db"
	"github.com/Gstormsfh/citrus_league/model"
	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"
)

func homeHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionFromRequest(r)

		// Signed-in GMs land in their office instead of the pitch page.
		if s.SignedIn() && s.HasLeague() {
			http.Redirect(w, r, "/gm-office", http.StatusSeeOther)
			return
		}

		data := map[string]any{
			"signedIn": s.SignedIn(),
			"demo":     s.Demo,
		}
		render.HTML(w, http.StatusOK, "home", data)
	}
}

func staticPageHandler(render *render.Render, page string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.HTML(w, http.StatusOK, page, nil)
	}
}

func gmOfficeHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionFromRequest(r)
		if !s.SignedIn() {
			http.Redirect(w, r, "/signin", http.StatusSeeOther)
			return
		}
		if !s.HasLeague() {
			http.Redirect(w, r, "/leagues", http.StatusSeeOther)
			return
		}

		office, err := ctrl.GetGMOffice(r.Context(), s.LeagueID, s.ProfileID)
		if err != nil {
			if errors.Is(err, db.ErrTeamNotFound) {
				http.Redirect(w, r, fmt.Sprintf("/leagues/%d", s.LeagueID), http.StatusSeeOther)
				return
			}
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		render.HTML(w, http.StatusOK, "gmOffice", office)
	}
}

func leaguesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagues, err := ctrl.ListLeagues(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		render.HTML(w, http.StatusOK, "leagues", leagues)
	}
}

func leaguesPostHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		teamCount, err := strconv.Atoi(r.FormValue("teamCount"))
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", fmt.Sprintf("error parsing team count: %v", err))
			return
		}

		l, err := ctrl.AddLeague(r.Context(), r.FormValue("name"), r.FormValue("season"), teamCount)
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/leagues/%d", l.ID), http.StatusSeeOther)
	}
}

func getLeagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueIDParam(r)
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		l, err := ctrl.GetLeague(r.Context(), id)
		if err != nil {
			render.HTML(w, http.StatusNotFound, "404", err.Error())
			return
		}

		l.DraftPicks, err = ctrl.GetDraftRecap(r.Context(), id)
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		render.HTML(w, http.StatusOK, "league", l)
	}
}

func joinLeagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionFromRequest(r)
		if !s.SignedIn() {
			http.Redirect(w, r, "/signin", http.StatusSeeOther)
			return
		}

		id, err := leagueIDParam(r)
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		if _, err := ctrl.JoinLeague(r.Context(), id, s.ProfileID, r.FormValue("teamName")); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		setLeagueCookie(w, id)
		http.Redirect(w, r, "/gm-office", http.StatusSeeOther)
	}
}

// selectLeagueHandler makes an already-joined league the active one for the
// session.
func selectLeagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionFromRequest(r)
		if !s.SignedIn() {
			http.Redirect(w, r, "/signin", http.StatusSeeOther)
			return
		}

		id, err := leagueIDParam(r)
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		if _, err := ctrl.GetMyTeam(r.Context(), id, s.ProfileID); err != nil {
			if errors.Is(err, db.ErrTeamNotFound) {
				http.Redirect(w, r, fmt.Sprintf("/leagues/%d", id), http.StatusSeeOther)
				return
			}
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		setLeagueCookie(w, id)
		http.Redirect(w, r, "/gm-office", http.StatusSeeOther)
	}
}

func standingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueIDParam(r)
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		l, err := ctrl.GetLeague(r.Context(), id)
		if err != nil {
			render.HTML(w, http.StatusNotFound, "404", err.Error())
			return
		}

		standings, err := ctrl.GetStandings(r.Context(), id)
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		data := map[string]any{
			"league":    l,
			"standings": standings,
		}
		render.HTML(w, http.StatusOK, "standings", data)
	}
}

func scoreboardHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueIDParam(r)
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		// No week parameter means the latest week with results.
		week := 0
		if wk := r.URL.Query().Get("week"); wk != "" {
			week, err = strconv.Atoi(wk)
			if err != nil {
				render.HTML(w, http.StatusBadRequest, "400", fmt.Sprintf("error parsing week: %v", err))
				return
			}
		}

		board, err := ctrl.GetScoreboard(r.Context(), id, week)
		if err != nil {
			if errors.Is(err, db.ErrLeagueNotFound) {
				render.HTML(w, http.StatusNotFound, "404", "league not found")
			} else {
				render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			}
			return
		}

		render.HTML(w, http.StatusOK, "scoreboard", board)
	}
}

func playoffBracketHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueIDParam(r)
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		l, err := ctrl.GetLeague(r.Context(), id)
		if err != nil {
			render.HTML(w, http.StatusNotFound, "404", err.Error())
			return
		}

		rounds, err := ctrl.GetPlayoffBracket(r.Context(), id)
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		data := map[string]any{
			"league": l,
			"rounds": rounds,
		}
		render.HTML(w, http.StatusOK, "playoffBracket", data)
	}
}

func teamAnalyticsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID, err := strconv.Atoi(chi.URLParam(r, "teamID"))
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", fmt.Sprintf("error parsing team id: %v", err))
			return
		}

		week := 0
		if wk := r.URL.Query().Get("week"); wk != "" {
			week, err = strconv.Atoi(wk)
			if err != nil {
				render.HTML(w, http.StatusBadRequest, "400", fmt.Sprintf("error parsing week: %v", err))
				return
			}
		}

		analytics, err := ctrl.GetTeamAnalytics(r.Context(), int32(teamID), week)
		if err != nil {
			if errors.Is(err, db.ErrTeamNotFound) {
				render.HTML(w, http.StatusNotFound, "404", "team not found")
			} else {
				render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			}
			return
		}

		render.HTML(w, http.StatusOK, "teamAnalytics", analytics)
	}
}

func playerSearchHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")

		var err error
		var results []model.Player = nil
		if query != "" {
			results, err = ctrl.Search(r.Context(), query)
			if err != nil {
				render.HTML(w, http.StatusInternalServerError, "500", err.Error())
				return
			}
		}

		data := map[string]any{
			"q":       query,
			"results": results,
		}
		render.HTML(w, http.StatusOK, "playerSearch", data)
	}
}

func getPlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")
		p, err := ctrl.GetPlayer(r.Context(), playerID)
		if err != nil {
			if errors.Is(err, db.ErrPlayerNotFound) {
				render.HTML(w, http.StatusNotFound, "404", "player not found")
			} else {
				render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			}
			return
		}

		render.HTML(w, http.StatusOK, "player", p)
	}
}

func enterDemoHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		setDemoCookie(w, true)
		http.Redirect(w, r, "/demo/standings", http.StatusSeeOther)
	}
}

func exitDemoHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		setDemoCookie(w, false)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func demoStandingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := map[string]any{
			"league":    ctrl.GetDemoLeague(),
			"standings": ctrl.GetDemoStandings(),
		}
		render.HTML(w, http.StatusOK, "demoStandings", data)
	}
}

func demoScoreboardHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := map[string]any{
			"league":   ctrl.GetDemoLeague(),
			"matchups": ctrl.GetDemoMatchups(),
		}
		render.HTML(w, http.StatusOK, "demoScoreboard", data)
	}
}

func forceUpdatePlayers(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.UpdatePlayers(r.Context()); err != nil {
			render.Text(w, http.StatusInternalServerError, fmt.Sprintf("error updating players: %v", err))
			return
		}

		render.Text(w, http.StatusOK, "update players completed successfully")
	}
}

func forceProcessWaivers(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueIDParam(r)
		if err != nil {
			render.Text(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := ctrl.ProcessWaiverClaims(r.Context(), id); err != nil {
			render.Text(w, http.StatusInternalServerError, fmt.Sprintf("error processing waivers: %v", err))
			return
		}

		render.Text(w, http.StatusOK, "waiver processing completed successfully")
	}
}

// importResultsHandler accepts a JSON batch of matchup results from the
// scoring provider and writes them to the ledger.
func importResultsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueIDParam(r)
		if err != nil {
			render.Text(w, http.StatusBadRequest, err.Error())
			return
		}

		var matchups []model.Matchup
		if err := json.NewDecoder(r.Body).Decode(&matchups); err != nil {
			render.Text(w, http.StatusBadRequest, fmt.Sprintf("error decoding results: %v", err))
			return
		}

		if err := ctrl.ImportResults(r.Context(), id, matchups); err != nil {
			render.Text(w, http.StatusInternalServerError, fmt.Sprintf("error importing results: %v", err))
			return
		}

		render.Text(w, http.StatusOK, "results import completed successfully")
	}
}

func importDraftHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueIDParam(r)
		if err != nil {
			render.Text(w, http.StatusBadRequest, err.Error())
			return
		}

		var picks []model.DraftPick
		if err := json.NewDecoder(r.Body).Decode(&picks); err != nil {
			render.Text(w, http.StatusBadRequest, fmt.Sprintf("error decoding draft picks: %v", err))
			return
		}

		if err := ctrl.ImportDraft(r.Context(), id, picks); err != nil {
			render.Text(w, http.StatusInternalServerError, fmt.Sprintf("error importing draft: %v", err))
			return
		}

		render.Text(w, http.StatusOK, "draft import completed successfully")
	}
}

func leagueIDParam(r *http.Request) (int32, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "leagueID"))
	if err != nil {
		return 0, fmt.Errorf("error parsing league id: %v", err)
	}
	return int32(id), nil
}
