package web

import (
	"net/http"
	"strconv"
)

// Session state is carried in plain cookies. The profile id is an opaque
// subject from the auth provider and everything sensitive lives behind it in
// the database, the cookies only select what the pages render.
const (
	profileCookie = "citrus_profile"
	leagueCookie  = "citrus_league"
	demoCookie    = "citrus_demo"
)

type session struct {
	ProfileID string
	LeagueID  int32
	Demo      bool
}

func (s *session) SignedIn() bool {
	return s.ProfileID != ""
}

func (s *session) HasLeague() bool {
	return s.LeagueID > 0
}

func sessionFromRequest(r *http.Request) *session {
	s := &session{}

	if c, err := r.Cookie(profileCookie); err == nil {
		s.ProfileID = c.Value
	}
	if c, err := r.Cookie(leagueCookie); err == nil {
		if id, err := strconv.Atoi(c.Value); err == nil && id > 0 {
			s.LeagueID = int32(id)
		}
	}
	if c, err := r.Cookie(demoCookie); err == nil {
		s.Demo = c.Value == "1"
	}

	return s
}

func setProfileCookie(w http.ResponseWriter, profileID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     profileCookie,
		Value:    profileID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func setLeagueCookie(w http.ResponseWriter, leagueID int32) {
	http.SetCookie(w, &http.Cookie{
		Name:     leagueCookie,
		Value:    strconv.Itoa(int(leagueID)),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Demo mode is an explicit choice, entered and left through these cookies
// and never switched on by the server in response to an error.
func setDemoCookie(w http.ResponseWriter, on bool) {
	v := "0"
	maxAge := -1
	if on {
		v = "1"
		maxAge = 0
	}
	http.SetCookie(w, &http.Cookie{
		Name:     demoCookie,
		Value:    v,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSession(w http.ResponseWriter) {
	for _, name := range []string{profileCookie, leagueCookie, demoCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
}
