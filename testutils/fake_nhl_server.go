package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

//go:embed nhldata
var nhldata embed.FS

type FakeNHLServer struct {
	s *httptest.Server
}

func NewFakeNHLServer() *FakeNHLServer {
	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Get("/players", nhlPlayersHandler)
	})

	return &FakeNHLServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeNHLServer) Close() {
	f.s.Close()
}

func (f *FakeNHLServer) URL() string {
	return f.s.URL
}

func nhlPlayersHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "players.json")
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := nhldata.ReadFile(fmt.Sprintf("nhldata/%s", name))
	if err != nil {
		log.Printf("error reading nhldata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
