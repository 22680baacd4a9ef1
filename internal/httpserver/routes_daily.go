// internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Challenge" mode.
// Exposes three endpoints under /daily:
//   - POST /daily/new         → start the daily round (creates or reuses session)
//   - POST /daily/guess       → submit a letter for today's daily round
//   - GET  /daily/leaderboard → fetch top 20 results for today (or a given date)
//
// Each user can play once per day (enforced by DB + in-memory session).
// Sessions are held in memory for active play and persisted to DB on
// finish. There is no daily answer word to protect: the round setup (word
// length, difficulty) is derived deterministically from date + salt, and the
// evil engine plays out identically for everyone making the same guesses.

package httpserver

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/RGonza1529/evil-hangman/internal/daily"
	"github.com/RGonza1529/evil-hangman/internal/game"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv      *Server
	store    *daily.Store
	salt     string
	sessions map[string]*dailySession // active sessions keyed by userID|date
	mu       sync.Mutex               // guards sessions
}

// dailySession holds transient in-memory state for an in-progress daily round.
type dailySession struct {
	UserID string
	Date   string
	Round  *game.Game
	Start  time.Time
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{
		srv:      s,
		store:    daily.NewStore(s.db),
		salt:     getEnv("DAILY_SALT", "local_dev_salt"),
		sessions: make(map[string]*dailySession),
	}
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
		r.Post("/guess", dd.handleGuess)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// challengeNow returns today's deterministic round setup.
func (d *dailyServer) challengeNow() daily.Challenge {
	return daily.ChallengeFor(time.Now(), d.salt, d.srv.index.Lengths())
}

// pruneSessions drops sessions from past dates. Once the day rolls over
// they can never be played again, so holding them only leaks memory.
// Caller must hold d.mu.
func (d *dailyServer) pruneSessions(today string) {
	for k, sess := range d.sessions {
		if sess.Date != today {
			delete(d.sessions, k)
		}
	}
}

// userIDWithAnon returns the authenticated user ID if logged in,
// otherwise ensures an anonymous ID via Server.ensureAnonID.
func (d *dailyServer) userIDWithAnon(w http.ResponseWriter, r *http.Request) string {
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		return me.ID
	}
	return d.srv.ensureAnonID(w, r)
}

// -----------------------------------------------------------------------------
// /daily/new

// dailyNewRes is returned by /daily/new.
type dailyNewRes struct {
	GameID      string `json:"gameId"`
	Date        string `json:"date"`
	Length      int    `json:"length"`
	Difficulty  string `json:"difficulty"`
	Pattern     string `json:"pattern"`
	GuessesLeft int    `json:"guessesLeft"`
	Played      bool   `json:"played"`
}

// handleNew creates or reuses the daily session for the current date.
// - If user already has a DB row for today → return Played=true.
// - Otherwise create/reuse an in-memory session and return its state.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	uid := d.userIDWithAnon(w, r)
	ch := d.challengeNow()
	if ch.Length == 0 {
		http.Error(w, `{"error":"no_dictionary"}`, http.StatusServiceUnavailable)
		return
	}

	// Check if already played (persisted in DB).
	if played, err := d.store.AlreadyPlayed(r.Context(), uid, ch.Date); err == nil && played {
		_ = json.NewEncoder(w).Encode(dailyNewRes{Date: ch.Date, Played: true})
		return
	}

	// Reuse or create session in memory.
	key := uid + "|" + ch.Date
	d.mu.Lock()
	d.pruneSessions(ch.Date)
	sess, ok := d.sessions[key]
	if !ok {
		g, err := game.New(d.srv.index, ch.Length, ch.Guesses, ch.Difficulty)
		if err != nil {
			d.mu.Unlock()
			log.Error().Err(err).Int("length", ch.Length).Msg("start daily round")
			http.Error(w, `{"error":"daily_unavailable"}`, http.StatusInternalServerError)
			return
		}
		sess = &dailySession{UserID: uid, Date: ch.Date, Round: g, Start: time.Now()}
		d.sessions[key] = sess
	}
	d.mu.Unlock()

	_ = json.NewEncoder(w).Encode(dailyNewRes{
		GameID:      sess.Round.ID,
		Date:        ch.Date,
		Length:      ch.Length,
		Difficulty:  string(ch.Difficulty),
		Pattern:     sess.Round.Manager().Pattern(),
		GuessesLeft: sess.Round.Manager().GuessesLeft(),
		Played:      false,
	})
}

// -----------------------------------------------------------------------------
// /daily/guess

// dailyGuessReq is the request payload for /daily/guess.
type dailyGuessReq struct {
	GameID string `json:"gameId"`
	Letter string `json:"letter"`
}

// dailyGuessRes is the response payload for /daily/guess.
type dailyGuessRes struct {
	Pattern     string `json:"pattern"`
	Correct     bool   `json:"correct"`
	GuessesLeft int    `json:"guessesLeft"`
	State       string `json:"state"` // playing | won | lost | locked
	SecretWord  string `json:"secretWord,omitempty"`
	Guesses     int    `json:"guesses"` // letters guessed so far
}

// handleGuess validates and applies a letter to today's daily session.
// - Rejects if no session or a stale GameID.
// - Returns "locked" once the session finished.
// - Persists the result to DB on finish (win or loss) so the day stays used.
func (d *dailyServer) handleGuess(w http.ResponseWriter, r *http.Request) {
	uid := d.userIDWithAnon(w, r)

	var p dailyGuessReq
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	if p.GameID == "" {
		http.Error(w, `{"error":"invalid"}`, http.StatusBadRequest)
		return
	}

	ch := d.challengeNow()

	// Find session.
	key := uid + "|" + ch.Date
	d.mu.Lock()
	sess, ok := d.sessions[key]
	d.mu.Unlock()
	if !ok || sess.Round.ID != p.GameID {
		http.Error(w, `{"error":"no_session"}`, http.StatusConflict)
		return
	}

	g := sess.Round
	if g.Finished {
		_ = json.NewEncoder(w).Encode(dailyGuessRes{
			Pattern: g.Manager().Pattern(), GuessesLeft: g.Manager().GuessesLeft(),
			State: "locked", Guesses: len(g.Manager().GuessedLetters()),
		})
		return
	}

	res, err := g.ApplyGuess(p.Letter)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	guesses := len(g.Manager().GuessedLetters())
	if g.Finished {
		elapsed := int(time.Since(sess.Start).Milliseconds())
		if err := d.store.InsertResult(r.Context(), daily.Result{
			UserID: uid, Date: ch.Date, WordLength: ch.Length, Difficulty: string(ch.Difficulty),
			Guesses: guesses, WrongGuesses: g.WrongGuesses(), ElapsedMs: elapsed, Won: g.Won,
		}); err != nil {
			log.Warn().Err(err).Str("user", uid).Msg("insert daily result")
		}
	}

	_ = json.NewEncoder(w).Encode(dailyGuessRes{
		Pattern:     res.Pattern,
		Correct:     res.Correct,
		GuessesLeft: res.GuessesLeft,
		State:       string(res.State),
		SecretWord:  res.SecretWord,
		Guesses:     guesses,
	})
}

// -----------------------------------------------------------------------------
// /daily/leaderboard

// lbRes is returned by /daily/leaderboard.
type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = d.challengeNow().Date
	}
	rows, err := d.store.Leaderboard(r.Context(), date, 20)
	if err != nil {
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(lbRes{Date: date, Top: rows})
}
