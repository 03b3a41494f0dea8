package web

import (
	"net/http"
	"time"

	"github.com/Gstormsfh/citrus_league/controller"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Handle("/static/*", http.FileServer(http.FS(static)))

	// Marketing pages, open to everyone.
	r.Get("/", homeHandler(ctrl, render))
	r.Get("/about", staticPageHandler(render, "about"))
	r.Get("/careers", staticPageHandler(render, "careers"))
	r.Get("/blog", staticPageHandler(render, "blog"))
	r.Get("/news", staticPageHandler(render, "news"))
	r.Get("/guides", staticPageHandler(render, "guides"))

	// Account flows.
	r.Get("/signin", signInHandler(ctrl, render))
	r.Get("/auth/callback", signInCallbackHandler(ctrl, render))
	r.Get("/signout", signOutHandler())
	r.Route("/verify-email", func(r chi.Router) {
		r.Get("/", verifyEmailHandler(ctrl, render))
		r.Post("/", startVerificationHandler(ctrl, render))
	})
	r.Route("/profile-setup", func(r chi.Router) {
		r.Get("/", profileSetupHandler(ctrl, render))
		r.Post("/", profileSetupPostHandler(ctrl, render))
	})
	r.Route("/settings", func(r chi.Router) {
		r.Get("/", settingsHandler(ctrl, render))
		r.Post("/", settingsPostHandler(ctrl, render))
		r.Post("/delete-account", deleteAccountHandler(ctrl, render))
	})

	// Explicit guest mode with canned data.
	r.Route("/demo", func(r chi.Router) {
		r.Get("/", enterDemoHandler())
		r.Get("/exit", exitDemoHandler())
		r.Get("/standings", demoStandingsHandler(ctrl, render))
		r.Get("/scoreboard", demoScoreboardHandler(ctrl, render))
	})

	// The signed-in app.
	r.Get("/gm-office", gmOfficeHandler(ctrl, render))
	r.Route("/leagues", func(r chi.Router) {
		r.Get("/", leaguesHandler(ctrl, render))
		r.Post("/", leaguesPostHandler(ctrl, render))
		r.Get("/{leagueID:\\d+}", getLeagueHandler(ctrl, render))
		r.Post("/{leagueID:\\d+}/join", joinLeagueHandler(ctrl, render))
		r.Get("/{leagueID:\\d+}/select", selectLeagueHandler(ctrl, render))
	})
	r.Get("/standings/{leagueID:\\d+}", standingsHandler(ctrl, render))
	r.Get("/scoreboard/{leagueID:\\d+}", scoreboardHandler(ctrl, render))
	r.Get("/playoff-bracket/{leagueID:\\d+}", playoffBracketHandler(ctrl, render))
	r.Get("/team-analytics/{teamID:\\d+}", teamAnalyticsHandler(ctrl, render))

	r.Route("/waiver-wire", func(r chi.Router) {
		r.Get("/", waiverWireHandler(ctrl, render))
		r.Post("/claims", submitClaimHandler(ctrl, render))
		r.Post("/claims/{claimID}/cancel", cancelClaimHandler(ctrl, render))
	})

	r.Route("/players", func(r chi.Router) {
		// Show either the search page if the q parameter is not present, or perform
		// the search if it is.
		r.Get("/", playerSearchHandler(ctrl, render))
		r.Get("/{playerID:\\d+}", getPlayerHandler(ctrl, render))
	})

	// Stormy.
	r.Route("/assistant", func(r chi.Router) {
		r.Get("/", assistantPageHandler(ctrl, render))
		r.Get("/ws", assistantSocketHandler(ctrl))
	})

	// JSON endpoints for the mobile apps and embeddable widgets.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(cors.New(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST"},
		}).Handler)

		r.Get("/players", apiPlayerSearchHandler(ctrl, render))
		r.Get("/standings/{leagueID:\\d+}", apiStandingsHandler(ctrl, render))
		r.Get("/waivers/{leagueID:\\d+}/{teamID:\\d+}", apiWaiverStatusHandler(ctrl, render))
		r.Post("/assistant", apiAssistantHandler(ctrl, render))
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.BasicAuth("citrus", map[string]string{"admin": "pa55word"})) // TODO: read from DB instead
		r.Use(middleware.Timeout(30 * time.Second))                                   // Set a longer timeout for /admin actions

		r.Post("/players", forceUpdatePlayers(ctrl, render))
		r.Post("/waivers/{leagueID:\\d+}", forceProcessWaivers(ctrl, render))
		r.Post("/results/{leagueID:\\d+}", importResultsHandler(ctrl, render))
		r.Post("/drafts/{leagueID:\\d+}", importDraftHandler(ctrl, render))
	})

	return r
}
