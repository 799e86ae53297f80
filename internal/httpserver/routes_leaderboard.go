// internal/httpserver/routes_leaderboard.go
//
// Leaderboard endpoints.
//   - POST /submit-score     → record {username, guesses}
//   - GET  /leaderboard      → ranked top scores (fewest guesses first)
//
// Submission is deliberately permissive: any client of the game can post a
// score, and a failed network call on the client side simply means the win
// never shows up here. The game engine does not depend on either endpoint.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/ItzRainUwU/RimuWordle/internal/game"
	"github.com/ItzRainUwU/RimuWordle/internal/leaderboard"
)

// mountLeaderboard registers the score endpoints.
func (s *Server) mountLeaderboard() {
	s.r.Post("/submit-score", s.handleSubmitScore)
	s.r.Get("/leaderboard", s.handleLeaderboard)
}

type submitScoreReq struct {
	Username string `json:"username"`
	Guesses  int    `json:"guesses"`
}

func (s *Server) handleSubmitScore(w http.ResponseWriter, r *http.Request) {
	var req submitScoreReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Guesses < 1 || req.Guesses > game.MaxGuesses {
		http.Error(w, `{"error":"invalid_score"}`, http.StatusBadRequest)
		return
	}
	if err := s.scores.Insert(r.Context(), req.Username, req.Guesses); err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := leaderboard.DefaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	rows, err := s.scores.Top(r.Context(), limit)
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(rows)
}
