package web

import (
	"log"
	"net/http"

	"github.com/Gstormsfh/citrus_league/controller"
	"github.com/gorilla/websocket"
	"github.com/unrolled/render"
)

func assistantPageHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionFromRequest(r)
		data := map[string]any{
			"signedIn": s.SignedIn(),
		}
		render.HTML(w, http.StatusOK, "assistant", data)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type assistantMessage struct {
	Message string `json:"message"`
}

type assistantReply struct {
	Answer string `json:"answer"`
	Error  string `json:"error,omitempty"`
}

// assistantSocketHandler runs the chat over a websocket so the page can
// stream questions without reloading. One question in, one answer out.
func assistantSocketHandler(ctrl controller.C) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionFromRequest(r)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("error upgrading assistant socket: %v", err)
			return
		}
		defer conn.Close()

		for {
			var msg assistantMessage
			if err := conn.ReadJSON(&msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("assistant socket closed unexpectedly: %v", err)
				}
				return
			}

			answer, err := ctrl.AskAssistant(r.Context(), s.ProfileID, s.LeagueID, msg.Message)

			reply := assistantReply{Answer: answer}
			if err != nil {
				reply = assistantReply{Error: err.Error()}
			}
			if err := conn.WriteJSON(&reply); err != nil {
				log.Printf("error writing assistant reply: %v", err)
				return
			}
		}
	}
}
