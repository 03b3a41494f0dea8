package web

import (
	"errors"
	"net/http"

	"github.com/Gstormsfh/citrus_league/controller"
	"github.com/Gstormsfh/citrus_league/db"
	"github.com/Gstormsfh/citrus_league/model"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/unrolled/render"
)

// waiverWireHandler shows the free agent pool, the team's pending and past
// claims, and its spot in the waiver order.
func waiverWireHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
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

		team, err := ctrl.GetMyTeam(r.Context(), s.LeagueID, s.ProfileID)
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		status, err := ctrl.GetWaiverStatus(r.Context(), s.LeagueID, team.ID)
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		query := r.URL.Query().Get("q")
		pos := model.ParsePosition(r.URL.Query().Get("pos"))

		var results []model.Player
		if query != "" || pos != model.POS_UNKNOWN {
			results, err = ctrl.SearchFreeAgents(r.Context(), s.LeagueID, query, pos)
			if err != nil {
				render.HTML(w, http.StatusInternalServerError, "500", err.Error())
				return
			}
		}

		data := map[string]any{
			"team":    team,
			"status":  status,
			"q":       query,
			"pos":     pos,
			"results": results,
		}
		render.HTML(w, http.StatusOK, "waiverWire", data)
	}
}

func submitClaimHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionFromRequest(r)
		if !s.SignedIn() || !s.HasLeague() {
			http.Redirect(w, r, "/signin", http.StatusSeeOther)
			return
		}

		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		team, err := ctrl.GetMyTeam(r.Context(), s.LeagueID, s.ProfileID)
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		playerID := r.FormValue("playerID")
		dropPlayerID := r.FormValue("dropPlayerID")

		res, err := ctrl.SubmitClaim(r.Context(), s.LeagueID, team.ID, playerID, dropPlayerID)
		if err != nil {
			switch {
			case errors.Is(err, db.ErrPlayerNotFound):
				render.HTML(w, http.StatusNotFound, "404", "player not found")
			case errors.Is(err, db.ErrPlayerOwned), errors.Is(err, db.ErrPlayerNotOwned):
				render.HTML(w, http.StatusBadRequest, "400", err.Error())
			default:
				render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			}
			return
		}

		render.HTML(w, http.StatusOK, "claimResult", res)
	}
}

func cancelClaimHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionFromRequest(r)
		if !s.SignedIn() || !s.HasLeague() {
			http.Redirect(w, r, "/signin", http.StatusSeeOther)
			return
		}

		claimID, err := uuid.Parse(chi.URLParam(r, "claimID"))
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", "invalid claim id")
			return
		}

		team, err := ctrl.GetMyTeam(r.Context(), s.LeagueID, s.ProfileID)
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		if err := ctrl.CancelClaim(r.Context(), claimID, team.ID); err != nil {
			switch {
			case errors.Is(err, db.ErrClaimNotFound):
				render.HTML(w, http.StatusNotFound, "404", "claim not found")
			case errors.Is(err, db.ErrClaimNotPending):
				render.HTML(w, http.StatusBadRequest, "400", err.Error())
			default:
				render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			}
			return
		}

		http.Redirect(w, r, "/waiver-wire", http.StatusSeeOther)
	}
}
