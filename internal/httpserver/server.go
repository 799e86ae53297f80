// internal/httpserver/server.go
//
// HTTP wiring for the RimuWordle backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints (optional auth): /game/new, /game/guess, /game/state,
//     /game/hardmode, /stats/me — guests play under an anonymous cookie.
//   - Leaderboard endpoints: POST /submit-score, GET /leaderboard.
//   - Auth endpoints: /auth/* (see auth.go).
//
// Each player (user id or anonymous cookie id) gets one session.Session,
// created on demand and resumed from the persistence gateway, so an
// in-progress round survives both page reloads and server restarts.

package httpserver

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/ItzRainUwU/RimuWordle/internal/game"
	"github.com/ItzRainUwU/RimuWordle/internal/leaderboard"
	"github.com/ItzRainUwU/RimuWordle/internal/session"
	"github.com/ItzRainUwU/RimuWordle/internal/store"
	"github.com/ItzRainUwU/RimuWordle/internal/words"
)

// ScoreNotifier receives a winning player's score after a round completes.
// It is invoked from a session's round-completed subscriber and must not
// block the turn; implementations go async themselves.
type ScoreNotifier func(username string, guesses int)

// Server bundles router, persistence gateway, score store, and the live
// per-player sessions.
type Server struct {
	r      *chi.Mux
	db     *sql.DB
	gw     store.Gateway
	scores *leaderboard.Store
	notify ScoreNotifier

	mu       sync.Mutex
	sessions map[string]*session.Session
}

// New constructs a Server, installs middleware, and registers routes.
// notify may be nil, in which case winning scores go straight into the
// local score store.
func New(db *sql.DB, gw store.Gateway, notify ScoreNotifier) *Server {
	s := &Server{
		r:        chi.NewRouter(),
		db:       db,
		gw:       gw,
		scores:   leaderboard.NewStore(db),
		notify:   notify,
		sessions: make(map[string]*session.Session),
	}
	if s.notify == nil {
		s.notify = s.localNotify
	}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(corsFromEnv)

	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"rimuwordle","endpoints":["/health","POST /game/new","POST /game/guess","GET /game/state","GET /leaderboard","/auth/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := words.Stats()
		_ = json.NewEncoder(w).Encode(map[string]int{"answers": a, "allowed": g})
	})

	// Game endpoints — guests can play.
	s.r.Group(func(r chi.Router) {
		r.Use(s.withOptionalAuth())
		r.Post("/game/new", s.handleNewRound)
		r.Post("/game/guess", s.handleGuess)
		r.Get("/game/state", s.handleState)
		r.Post("/game/hardmode", s.handleHardMode)
		r.Get("/stats/me", s.handleStats)
	})

	s.mountLeaderboard()
	s.mountAuthRoutes()

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})
	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// localNotify records a win in the local score store.
func (s *Server) localNotify(username string, guesses int) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := s.scores.Insert(ctx, username, guesses); err != nil {
			log.Warn().Err(err).Str("username", username).Msg("record score")
		}
	}()
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ sessions -----------------------------------

// sessionFor returns the live session for an owner, creating and resuming
// it on first use. username is the display name for score submission; empty
// for anonymous players, whose wins stay off the leaderboard.
func (s *Server) sessionFor(owner, username string) *session.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[owner]; ok {
		return sess
	}
	sess := session.New(owner, s.gw)
	sess.Resume(context.Background())
	if username != "" {
		notify := s.notify
		sess.OnRoundComplete(func(res session.Result) {
			if res.Won {
				notify(username, res.GuessesUsed)
			}
		})
	}
	s.sessions[owner] = sess
	return sess
}

// ownerOf resolves the request's player identity: authenticated user id,
// or a stable anonymous cookie id for guests.
func (s *Server) ownerOf(w http.ResponseWriter, r *http.Request) (owner, username string) {
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		return me.ID, me.Username
	}
	return s.ensureAnonID(w, r), ""
}

// ------------------------------- GAME --------------------------------------

type newRoundReq struct {
	ForceNew bool `json:"forceNew"`
}

// handleNewRound resumes (or force-starts) a round and returns the state.
func (s *Server) handleNewRound(w http.ResponseWriter, r *http.Request) {
	var req newRoundReq
	_ = json.NewDecoder(r.Body).Decode(&req)
	owner, username := s.ownerOf(w, r)
	sess := s.sessionFor(owner, username)
	sess.NewRound(r.Context(), req.ForceNew)
	_ = json.NewEncoder(w).Encode(sess.CurrentState())
}

type guessReq struct {
	Guess string `json:"guess"`
}
type guessRes struct {
	Verdict game.Verdict      `json:"verdict"`
	State   string            `json:"state"` // "playing" | "won" | "lost"
	Reveal  []game.RevealStep `json:"reveal"`
	Secret  string            `json:"secret,omitempty"` // disclosed on loss
}

// handleGuess applies one guess. Validation failures map to 400/409 with
// the user-facing reason; the round is untouched in those cases.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	owner, username := s.ownerOf(w, r)
	sess := s.sessionFor(owner, username)

	verdict, state, err := sess.SubmitGuess(r.Context(), req.Guess)
	if err != nil {
		writeRejection(w, err)
		return
	}
	res := guessRes{
		Verdict: verdict,
		State:   state,
		Reveal:  game.RevealPlan(verdict, 0),
	}
	if state == "lost" {
		res.Secret = sess.CurrentState().Secret
	}
	_ = json.NewEncoder(w).Encode(res)
}

// handleState returns the render snapshot for the current round.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	owner, username := s.ownerOf(w, r)
	sess := s.sessionFor(owner, username)
	_ = json.NewEncoder(w).Encode(sess.CurrentState())
}

type hardModeReq struct {
	Enabled bool `json:"enabled"`
}

// handleHardMode toggles hard mode for the session. Enabling mid-round is
// rejected with 409 and the toggle left unchanged.
func (s *Server) handleHardMode(w http.ResponseWriter, r *http.Request) {
	var req hardModeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	owner, username := s.ownerOf(w, r)
	sess := s.sessionFor(owner, username)
	if err := sess.SetHardMode(req.Enabled); err != nil {
		writeRejection(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"hardMode": sess.HardMode()})
}

// handleStats returns the player's lifetime counters.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	owner, username := s.ownerOf(w, r)
	sess := s.sessionFor(owner, username)
	_ = json.NewEncoder(w).Encode(sess.Stats())
}

// writeRejection maps engine rejections onto HTTP. Every one of these is a
// user-visible transient message, not a server fault.
func writeRejection(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, game.ErrRoundOver) {
		status = http.StatusConflict
	}
	if hv, ok := game.IsViolation(err); ok {
		status = http.StatusConflict
		body, _ := json.Marshal(map[string]string{"error": hv.Msg, "kind": string(hv.Kind)})
		http.Error(w, string(body), status)
		return
	}
	body, _ := json.Marshal(map[string]string{"error": err.Error()})
	http.Error(w, string(body), status)
}

// ---------------------------- anon identity --------------------------------

const anonCookieName = "rimu_anon"

// ensureAnonID returns an existing anon cookie or sets a new one.
// Used to associate guest games with a stable identifier.
func (s *Server) ensureAnonID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(anonCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	id := genID()
	http.SetCookie(w, &http.Cookie{
		Name:     anonCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   os.Getenv("APP_ENV") == "production",
		SameSite: func() http.SameSite {
			if os.Getenv("APP_ENV") == "production" {
				return http.SameSiteNoneMode
			}
			return http.SameSiteLaxMode
		}(),
		Expires: time.Now().Add(180 * 24 * time.Hour),
	})
	return id
}

// ------------------------------- small util --------------------------------

// genID creates a 22-char URL-safe, crypto-random identifier (no padding).
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	out := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b[:])
	if len(out) > 22 {
		return out[:22]
	}
	return out
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
