package testutils

import (
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"github.com/itbasis/go-clock"
	"golang.org/x/oauth2"
)

// The subject and email the fake auth provider reports for every sign-in.
const (
	TestUserID    = "auth0|gm-one"
	TestUserEmail = "gm@example.com"
)

type TestController struct {
	Clock         *clock.Mock
	OAuthConfig   *oauth2.Config
	UserInfoURL   string
	fakeNHL       *FakeNHLServer
	fakeAssistant *FakeAssistantServer
	fakeOAuth     *httptest.Server
}

func (c *TestController) Close() {
	c.fakeNHL.Close()
	c.fakeAssistant.Close()
	c.fakeOAuth.Close()
}

func (c *TestController) NHLURL() string {
	return c.fakeNHL.URL()
}

func (c *TestController) AssistantURL() string {
	return c.fakeAssistant.URL()
}

func NewTestController() *TestController {
	r := chi.NewRouter()
	r.Post("/token", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"access_token": "access_token",
			"refresh_token": "refresh_token",
			"token_type": "bearer",
			"expires_in": 3600
		}`))
	})
	r.Get("/userinfo", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"sub": "%s", "email": "%s"}`, TestUserID, TestUserEmail)
	})
	fakeOAuthServer := httptest.NewServer(r)

	fakeOAuthConfig := &oauth2.Config{
		ClientID:     "fakeClientID",
		ClientSecret: "fakeClientSecret",
		Endpoint: oauth2.Endpoint{
			AuthURL:  fmt.Sprintf("%s/auth", fakeOAuthServer.URL),
			TokenURL: fmt.Sprintf("%s/token", fakeOAuthServer.URL),
		},
		RedirectURL: fmt.Sprintf("%s/redirect", fakeOAuthServer.URL),
	}
	return &TestController{
		Clock:         clock.NewMock(),
		OAuthConfig:   fakeOAuthConfig,
		UserInfoURL:   fmt.Sprintf("%s/userinfo", fakeOAuthServer.URL),
		fakeNHL:       NewFakeNHLServer(),
		fakeAssistant: NewFakeAssistantServer(),
		fakeOAuth:     fakeOAuthServer,
	}
}
