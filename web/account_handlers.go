package web

import (
	"errors"
	"net/http"

	"github.com/Gstormsfh/citrus_league/controller"
	"github.com/Gstormsfh/citrus_league/db"
	"github.com/google/uuid"
	"github.com/unrolled/render"
)

func signInHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		url, err := ctrl.SignInStart()
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		http.Redirect(w, r, url, http.StatusSeeOther)
	}
}

func signInCallbackHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()
		code := params.Get("code")
		state := params.Get("state")

		p, err := ctrl.SignInComplete(r.Context(), state, code)
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		setProfileCookie(w, p.ID)

		// A profile without a display name hasn't been through setup yet.
		if p.DisplayName == "" {
			http.Redirect(w, r, "/profile-setup", http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func signOutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clearSession(w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func profileSetupHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionFromRequest(r)
		if !s.SignedIn() {
			http.Redirect(w, r, "/signin", http.StatusSeeOther)
			return
		}

		p, err := ctrl.GetProfile(r.Context(), s.ProfileID)
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		render.HTML(w, http.StatusOK, "profileSetup", p)
	}
}

func profileSetupPostHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionFromRequest(r)
		if !s.SignedIn() {
			http.Redirect(w, r, "/signin", http.StatusSeeOther)
			return
		}

		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		_, err := ctrl.SetupProfile(r.Context(), s.ProfileID, r.FormValue("displayName"), r.FormValue("favoriteTeam"))
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func settingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionFromRequest(r)
		if !s.SignedIn() {
			http.Redirect(w, r, "/signin", http.StatusSeeOther)
			return
		}

		p, err := ctrl.GetProfile(r.Context(), s.ProfileID)
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		render.HTML(w, http.StatusOK, "settings", p)
	}
}

func settingsPostHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionFromRequest(r)
		if !s.SignedIn() {
			http.Redirect(w, r, "/signin", http.StatusSeeOther)
			return
		}

		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		_, err := ctrl.SetupProfile(r.Context(), s.ProfileID, r.FormValue("displayName"), r.FormValue("favoriteTeam"))
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		http.Redirect(w, r, "/settings", http.StatusSeeOther)
	}
}

// deleteAccountHandler removes the account and all of its teams, claims, and
// lineups in a single shot, then signs the browser out.
func deleteAccountHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionFromRequest(r)
		if !s.SignedIn() {
			http.Redirect(w, r, "/signin", http.StatusSeeOther)
			return
		}

		if err := ctrl.DeleteAccount(r.Context(), s.ProfileID); err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		clearSession(w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// verifyEmailHandler confirms the token in the link from the verification
// email.
func verifyEmailHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenParam := r.URL.Query().Get("token")
		if tokenParam == "" {
			render.HTML(w, http.StatusOK, "verifyEmail", map[string]any{"confirmed": false})
			return
		}

		token, err := uuid.Parse(tokenParam)
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", "invalid verification token")
			return
		}

		if _, err := ctrl.ConfirmEmailVerification(r.Context(), token); err != nil {
			if errors.Is(err, db.ErrTokenNotFound) {
				render.HTML(w, http.StatusNotFound, "404", "verification token not found or expired")
			} else {
				render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			}
			return
		}

		render.HTML(w, http.StatusOK, "verifyEmail", map[string]any{"confirmed": true})
	}
}

func startVerificationHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionFromRequest(r)
		if !s.SignedIn() {
			http.Redirect(w, r, "/signin", http.StatusSeeOther)
			return
		}

		token, err := ctrl.StartEmailVerification(r.Context(), s.ProfileID)
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		// The mailer service picks tokens up out of band, the page just
		// confirms one was issued.
		data := map[string]any{
			"confirmed": false,
			"sent":      true,
			"expiry":    token.Expiry,
		}
		render.HTML(w, http.StatusOK, "verifyEmail", data)
	}
}
