package httpserver

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RGonza1529/evil-hangman/internal/game"
	"github.com/RGonza1529/evil-hangman/internal/store"
)

// newTestServer wires a Server against an in-memory SQLite DB with the real
// schema and a tiny fixed dictionary.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// Every pooled connection gets its own :memory: database; keep one.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	schema, err := os.ReadFile(filepath.Join("..", "..", "sql", "001_init.sql"))
	require.NoError(t, err)
	_, err = db.Exec(string(schema))
	require.NoError(t, err)

	ix, err := game.NewIndex([]string{"cat", "car", "cop", "big", "crane", "slate"})
	require.NoError(t, err)

	return New(store.NewMemoryStore(), db, ix)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestNewGameValidatesInput(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s.Router(), http.MethodPost, "/game/new", map[string]any{"length": 9})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no_words_of_length")

	rec = doJSON(t, s.Router(), http.MethodPost, "/game/new", map[string]any{"length": 3, "difficulty": "impossible"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown_difficulty")
}

func TestGameFlow(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s.Router(), http.MethodPost, "/game/new",
		map[string]any{"length": 3, "guesses": 5, "difficulty": "hard"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var created newGameRes
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.GameID)
	assert.Equal(t, "---", created.Pattern)
	assert.Equal(t, 4, created.WordCount)
	assert.Equal(t, 5, created.GuessesLeft)

	// 'c' splits the dictionary; hard keeps {cat,car,cop}.
	rec = doJSON(t, s.Router(), http.MethodPost, "/game/guess",
		map[string]any{"gameId": created.GameID, "letter": "c"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res guessRes
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "c--", res.Pattern)
	assert.True(t, res.Correct)
	assert.Equal(t, 5, res.GuessesLeft)
	assert.Equal(t, 3, res.WordsLeft)
	assert.Equal(t, "playing", res.State)
	assert.Equal(t, map[string]int{"---": 1, "c--": 3}, res.Groups)

	// Repeating the letter is a client error; state is untouched.
	rec = doJSON(t, s.Router(), http.MethodPost, "/game/guess",
		map[string]any{"gameId": created.GameID, "letter": "c"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Round state is readable.
	req := httptest.NewRequest(http.MethodGet, "/game/"+created.GameID, nil)
	stateRec := httptest.NewRecorder()
	s.Router().ServeHTTP(stateRec, req)
	require.Equal(t, http.StatusOK, stateRec.Code)

	var st stateRes
	require.NoError(t, json.Unmarshal(stateRec.Body.Bytes(), &st))
	assert.Equal(t, "c--", st.Pattern)
	assert.Equal(t, "[c]", st.Guessed)
	assert.Equal(t, "playing", st.State)
}

func TestGuessUnknownGame(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s.Router(), http.MethodPost, "/game/guess",
		map[string]any{"gameId": "missing", "letter": "a"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDebugWords(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/debug/words", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Total    int            `json:"total"`
		ByLength map[string]int `json:"byLength"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 6, out.Total)
	assert.Equal(t, map[string]int{"3": 4, "5": 2}, out.ByLength)
}

func TestValidateSignup(t *testing.T) {
	assert.NoError(t, validateSignup("player_1", "longenough"))
	assert.Error(t, validateSignup("ab", "longenough"), "username too short")
	assert.Error(t, validateSignup("bad name", "longenough"), "space not allowed")
	assert.Error(t, validateSignup("player_1", "short"), "password too short")
}

func TestAuthFlow(t *testing.T) {
	s := newTestServer(t)

	// An anonymous round played before signup, claimed by the account below.
	rec := doJSON(t, s.Router(), http.MethodPost, "/game/new",
		map[string]any{"length": 3, "guesses": 5, "difficulty": "hard"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	anonCookies := rec.Result().Cookies()
	require.NotEmpty(t, anonCookies)
	var created newGameRes
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSONWith(t, s.Router(), http.MethodPost, "/auth/signup",
		map[string]any{"username": "player_1", "password": "longenough"}, anonCookies)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var su struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &su))
	assert.Equal(t, "player_1", su.Username)

	var authCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "hangman_token" {
			authCookie = c
		}
	}
	require.NotNil(t, authCookie, "signup must set the auth cookie")
	require.NotEmpty(t, authCookie.Value)

	// The anonymous round now belongs to the account.
	var owner string
	require.NoError(t, s.db.QueryRow(
		`SELECT COALESCE(user_id,'') FROM games WHERE id=?`, created.GameID).Scan(&owner))
	assert.Equal(t, su.ID, owner)

	// Username is taken.
	rec = doJSON(t, s.Router(), http.MethodPost, "/auth/signup",
		map[string]any{"username": "player_1", "password": "longenough"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Login rejects a bad password and accepts the right one.
	rec = doJSON(t, s.Router(), http.MethodPost, "/auth/login",
		map[string]any{"username": "player_1", "password": "notmypassword"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec = doJSON(t, s.Router(), http.MethodPost, "/auth/login",
		map[string]any{"username": "player_1", "password": "longenough"})
	assert.Equal(t, http.StatusOK, rec.Code)

	// /auth/me works with the cookie and 401s without it.
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.AddCookie(authCookie)
	meRec := httptest.NewRecorder()
	s.Router().ServeHTTP(meRec, req)
	require.Equal(t, http.StatusOK, meRec.Code)
	assert.Contains(t, meRec.Body.String(), "player_1")

	bareRec := httptest.NewRecorder()
	s.Router().ServeHTTP(bareRec, httptest.NewRequest(http.MethodGet, "/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, bareRec.Code)

	// Logout clears the cookie.
	rec = doJSON(t, s.Router(), http.MethodPost, "/auth/logout", map[string]any{})
	require.Equal(t, http.StatusOK, rec.Code)
	for _, c := range rec.Result().Cookies() {
		if c.Name == "hangman_token" {
			assert.Empty(t, c.Value)
		}
	}
}

func TestGuessWithClosedDB(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s.Router(), http.MethodPost, "/game/new",
		map[string]any{"length": 3, "guesses": 5, "difficulty": "hard"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var created newGameRes
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	// DB bookkeeping on a guess is best effort; losing the DB must not
	// take the round down with it.
	require.NoError(t, s.db.Close())

	rec = doJSON(t, s.Router(), http.MethodPost, "/game/guess",
		map[string]any{"gameId": created.GameID, "letter": "c"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res guessRes
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "c--", res.Pattern)
	assert.Equal(t, "playing", res.State)
}

func TestGenID(t *testing.T) {
	a, b := genID(), genID()
	assert.Len(t, a, 22)
	assert.NotEqual(t, a, b)
}
