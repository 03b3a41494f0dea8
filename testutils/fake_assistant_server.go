package testutils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

// FakeAssistantServer answers every chat request with a canned reply that
// echoes the question, plus the league context when one was sent. Tests use
// the echo to verify the context actually made it across.
type FakeAssistantServer struct {
	s *httptest.Server
}

func NewFakeAssistantServer() *FakeAssistantServer {
	r := chi.NewRouter()
	r.Post("/v1/chat", assistantChatHandler)

	return &FakeAssistantServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeAssistantServer) Close() {
	f.s.Close()
}

func (f *FakeAssistantServer) URL() string {
	return f.s.URL
}

func assistantChatHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message    string `json:"message"`
		LeagueName string `json:"league_name"`
		TeamName   string `json:"team_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	answer := fmt.Sprintf("you asked: %s", req.Message)
	if req.LeagueName != "" {
		answer = fmt.Sprintf("%s (league: %s, team: %s)", answer, req.LeagueName, req.TeamName)
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"answer": answer})
}
