package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/Gstormsfh/citrus_league/assistant"
	"github.com/Gstormsfh/citrus_league/controller"
	"github.com/Gstormsfh/citrus_league/db"
	"github.com/Gstormsfh/citrus_league/nhl"
	"github.com/Gstormsfh/citrus_league/web"
	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"golang.org/x/oauth2"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}
	connString := os.Getenv("POSTGRES_CONN_STR")

	portNum := 3000 // 3000 is the default
	port := os.Getenv("PORT")
	if port != "" {
		portNum, err = strconv.Atoi(port)
		if err != nil {
			log.Fatalf("error parsing port number: %v", err)
		}
	}

	clock := clock.New()
	db, err := db.New(context.Background(), connString, clock)
	if err != nil {
		log.Fatalf("cannot connect to DB: %v", err)
	}

	nhlClient, err := nhl.New()
	if err != nil {
		log.Fatalf("error creating nhl client: %v", err)
	}

	assistantClient, err := assistant.New(os.Getenv("ASSISTANT_URL"), os.Getenv("ASSISTANT_API_KEY"))
	if err != nil {
		log.Fatalf("error creating assistant client: %v", err)
	}

	ctrl, err := controller.New(clock, db, nhlClient, assistantClient, authConfigFromEnv())
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	server, err := web.NewServer(portNum, ctrl)
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Printf("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Refresh the player database from the NHL stats feed every 24-hours.
	wg.Add(1)
	go ctrl.RunPeriodicPlayerUpdates(24*time.Hour, shutdown, wg)

	// Process waiver claims for leagues whose local processing hour has come up.
	wg.Add(1)
	go ctrl.RunPeriodicWaiverProcessing(shutdown, wg)

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Printf("server shutdown")
}

// authConfigFromEnv returns nil when the oauth settings are missing, which
// leaves sign-in disabled but keeps the rest of the site working.
func authConfigFromEnv() *controller.AuthConfig {
	clientID := os.Getenv("OAUTH_CLIENT_ID")
	clientSecret := os.Getenv("OAUTH_CLIENT_SECRET")
	redirectURL := os.Getenv("OAUTH_REDIRECT_URL")
	if clientID == "" || clientSecret == "" || redirectURL == "" {
		return nil
	}

	return &controller.AuthConfig{
		OAuth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint: oauth2.Endpoint{
				AuthURL:  os.Getenv("OAUTH_AUTH_URL"),
				TokenURL: os.Getenv("OAUTH_TOKEN_URL"),
			},
			RedirectURL: redirectURL,
			Scopes:      []string{"openid", "email"},
		},
		UserInfoURL: os.Getenv("OAUTH_USERINFO_URL"),
	}
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
