// internal/httpserver/auth.go
//
// Authentication and profile routes for the solver backend.
// Responsibilities:
//   - Signup/login/logout with bcrypt password hashes and HS256 JWTs.
//   - Require-auth and optional-auth middleware (bearer header or cookie).
//   - Anonymous session cookie for guests; anon history is claimed by the
//     account on signup/login.
//   - User stats: sessions run and sessions solved.

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
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/rs/zerolog/log"
)

// Request payloads for signup/login.
type signupReq struct{ Username, Password string }
type loginReq struct{ Username, Password string }

// authUser is placed into request context by auth middleware.
type authUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// ctxUserKey is the context key type for storing authUser.
type ctxUserKey struct{}

// mountAuthRoutes registers authentication + gated routes (/auth/*, /sessions/mine).
func (s *Server) mountAuthRoutes() {
	s.r.Post("/auth/signup", s.handleSignup)
	s.r.Post("/auth/login", s.handleLogin)
	s.r.Post("/auth/logout", s.handleLogout)

	// Current user (gated)
	s.r.With(s.requireAuth()).Get("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		me, _ := r.Context().Value(ctxUserKey{}).(*authUser)
		if me == nil {
			http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
			return
		}
		u, err := s.findUserByID(me.ID)
		if err != nil {
			http.Error(w, `{"error":"not_found"}`, http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":          u.ID,
			"username":    u.Username,
			"sessionsRun": u.SessionsRun,
			"solved":      u.Solved,
		})
	})

	// Recent sessions (gated)
	s.r.With(s.requireAuth()).Get("/sessions/mine", func(w http.ResponseWriter, r *http.Request) {
		me, _ := r.Context().Value(ctxUserKey{}).(*authUser)
		if me == nil {
			http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
			return
		}
		rows, err := s.db.Query(`SELECT id, status, guesses, started_at, COALESCE(finished_at,'')
		                         FROM sessions WHERE user_id=? ORDER BY started_at DESC LIMIT 50`, me.ID)
		if err != nil {
			http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		type sessionRow struct {
			ID         string `json:"id"`
			Status     string `json:"status"`
			Guesses    int    `json:"guesses"`
			StartedAt  string `json:"startedAt"`
			FinishedAt string `json:"finishedAt,omitempty"`
		}
		out := []sessionRow{}
		for rows.Next() {
			var sr sessionRow
			if err := rows.Scan(&sr.ID, &sr.Status, &sr.Guesses, &sr.StartedAt, &sr.FinishedAt); err == nil {
				out = append(out, sr)
			}
		}
		_ = json.NewEncoder(w).Encode(out)
	})
}

// handleSignup creates a new user, signs a JWT, sets auth cookie, and claims anon history.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var body signupReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, `{"error":"invalid_json"}`, http.StatusBadRequest)
		return
	}
	u, err := s.createUser(body.Username, body.Password)
	if err != nil {
		if err.Error() == "username taken" {
			http.Error(w, `{"error":"Username taken"}`, http.StatusConflict)
			return
		}
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	tok, exp, err := s.signJWT(u.ID, u.Username)
	if err != nil {
		http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
		return
	}
	s.setAuthCookie(w, tok, exp)
	// Attach any anonymous sessions to the new account
	s.claimAnonSessions(s.ensureAnonID(w, r), u.ID)
	_ = json.NewEncoder(w).Encode(map[string]any{"id": u.ID, "username": u.Username, "createdAt": u.CreatedAt})
}

// handleLogin authenticates a user, sets cookie, and claims anon history.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body loginReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, `{"error":"invalid_json"}`, http.StatusBadRequest)
		return
	}
	u, err := s.findUserByUsername(strings.TrimSpace(body.Username))
	if err != nil || !checkPassword(u.PasswordHash, body.Password) {
		http.Error(w, `{"error":"Invalid username or password"}`, http.StatusUnauthorized)
		return
	}
	tok, exp, err := s.signJWT(u.ID, u.Username)
	if err != nil {
		http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
		return
	}
	s.setAuthCookie(w, tok, exp)
	s.claimAnonSessions(s.ensureAnonID(w, r), u.ID)
	_ = json.NewEncoder(w).Encode(map[string]any{"id": u.ID, "username": u.Username})
}

// handleLogout clears the auth cookie.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.clearAuthCookie(w)
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// --------------------------- optional auth ---------------------------------

// withOptionalAuth decorates requests with user context if a valid JWT is present.
// It never 401s; used for routes where guests are allowed.
func (s *Server) withOptionalAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tok := bearerOrCookie(r); tok != "" {
				claims := jwt.MapClaims{}
				if t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
					return []byte(getEnv("JWT_SECRET", "dev_secret_change_me")), nil
				}); err == nil && t.Valid {
					if id, _ := claims["id"].(string); id != "" {
						if u, err := s.findUserByID(id); err == nil {
							ctx := context.WithValue(r.Context(), ctxUserKey{}, &authUser{ID: u.ID, Username: u.Username})
							r = r.WithContext(ctx)
						}
					}
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

const anonCookieName = "solver_anon"

// ensureAnonID returns an existing anon cookie or sets a new one.
// Used to associate guest sessions with a stable identifier.
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
		Secure:   os.Getenv("NODE_ENV") == "production",
		SameSite: func() http.SameSite {
			if os.Getenv("NODE_ENV") == "production" {
				return http.SameSiteNoneMode
			}
			return http.SameSiteLaxMode
		}(),
		Expires: time.Now().Add(180 * 24 * time.Hour),
	})
	return id
}

// claimAnonSessions transfers any anonymous sessions to a user account after auth.
func (s *Server) claimAnonSessions(anonID, userID string) {
	if anonID == "" || userID == "" {
		return
	}
	if _, err := s.db.Exec(`UPDATE sessions SET user_id=?, anonymous_id=NULL WHERE anonymous_id=?`, userID, anonID); err != nil {
		log.Warn().Err(err).Msg("claim anon sessions")
	}
}

// ------------------------ auth helpers & users -----------------------------

// userRow matches the users table shape.
type userRow struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	SessionsRun  int
	Solved       int
}

// createUser validates input, checks uniqueness, hashes password, and inserts a new user.
func (s *Server) createUser(username, pw string) (*userRow, error) {
	username = normalizeUsername(username)
	if err := validateSignup(username, pw); err != nil {
		return nil, err
	}
	var exists int
	_ = s.db.QueryRow(`SELECT 1 FROM users WHERE lower(username)=lower(?)`, username).Scan(&exists)
	if exists == 1 {
		return nil, errors.New("username taken")
	}
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC().Format(time.RFC3339)
	id := genID()
	if _, err := s.db.Exec(`INSERT INTO users (id, username, password_hash, created_at) VALUES (?,?,?,?)`,
		id, username, string(h), now); err != nil {
		return nil, err
	}
	return &userRow{ID: id, Username: username, PasswordHash: string(h), CreatedAt: mustParse(now)}, nil
}

// findUserByUsername/ID load a user row or return an error if missing.
func (s *Server) findUserByUsername(username string) (*userRow, error) {
	row := s.db.QueryRow(`SELECT id, username, password_hash, created_at, sessions_run, solved
	                      FROM users WHERE lower(username)=lower(?)`, username)
	return scanUser(row)
}
func (s *Server) findUserByID(id string) (*userRow, error) {
	row := s.db.QueryRow(`SELECT id, username, password_hash, created_at, sessions_run, solved
	                      FROM users WHERE id=?`, id)
	return scanUser(row)
}

// scanUser converts a *sql.Row into a userRow.
func scanUser(row *sql.Row) (*userRow, error) {
	var u userRow
	var created string
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &created, &u.SessionsRun, &u.Solved); err != nil {
		return nil, err
	}
	u.CreatedAt = mustParse(created)
	return &u, nil
}

// mustParse parses RFC3339 timestamps; on error returns zero time.
func mustParse(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

// checkPassword is a bcrypt verifier.
func checkPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

// normalizeUsername trims whitespace; adjust here if you want stricter rules.
func normalizeUsername(u string) string {
	return strings.TrimSpace(u)
}

// validateSignup enforces basic username/password rules.
func validateSignup(u, p string) error {
	if len(u) < 3 || len(u) > 24 {
		return errors.New("username must be 3-24 chars")
	}
	for _, r := range u {
		if !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return errors.New("username: letters, numbers, underscore only")
		}
	}
	if len(p) < 8 || len(p) > 100 {
		return errors.New("password must be 8-100 chars")
	}
	return nil
}

// genID creates a 22-char URL-safe, crypto-random identifier (no padding).
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	s := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b[:])
	if len(s) > 22 {
		return s[:22]
	}
	return s
}

// bumpStats increments sessions run; updates solved when the session
// resolved to a determined word (within tx).
func (s *Server) bumpStats(tx *sql.Tx, userID string, solved bool) error {
	var runs, done int
	row := tx.QueryRow(`SELECT sessions_run, solved FROM users WHERE id=?`, userID)
	if err := row.Scan(&runs, &done); err != nil {
		return err
	}
	runs++
	if solved {
		done++
	}
	_, err := tx.Exec(`UPDATE users SET sessions_run=?, solved=? WHERE id=?`, runs, done, userID)
	return err
}

// ------------------------------ JWT & cookies ------------------------------

// signJWT creates an HS256 JWT with id/username and a configurable expiry (JWT_EXPIRES_DAYS; default 14).
func (s *Server) signJWT(id, username string) (string, time.Time, error) {
	secret := getEnv("JWT_SECRET", "dev_secret_change_me")
	days := envInt("JWT_EXPIRES_DAYS", 14)
	exp := time.Now().Add(time.Duration(days) * 24 * time.Hour)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       id,
		"username": username,
		"exp":      exp.Unix(),
		"iat":      time.Now().Unix(),
	})
	ss, err := t.SignedString([]byte(secret))
	return ss, exp, err
}

// setAuthCookie writes the auth token cookie with appropriate security attributes.
func (s *Server) setAuthCookie(w http.ResponseWriter, token string, exp time.Time) {
	name := getEnv("COOKIE_NAME", "solver_token")
	secure := os.Getenv("NODE_ENV") == "production"
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode // required for third-party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		Expires:  exp,
	})
}

// clearAuthCookie deletes the auth token cookie.
func (s *Server) clearAuthCookie(w http.ResponseWriter) {
	name := getEnv("COOKIE_NAME", "solver_token")
	secure := os.Getenv("NODE_ENV") == "production"
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		MaxAge:   -1,
	})
}

// bearerOrCookie extracts a bearer token from Authorization header or auth cookie.
func bearerOrCookie(r *http.Request) string {
	// Authorization: Bearer <token>
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(getEnv("COOKIE_NAME", "solver_token")); err == nil {
		return c.Value
	}
	return ""
}

// requireAuth enforces a valid JWT and injects authUser into request context.
func (s *Server) requireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerOrCookie(r)
			if tokenStr == "" {
				http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
				return
			}
			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
				return []byte(getEnv("JWT_SECRET", "dev_secret_change_me")), nil
			})
			if err != nil || !token.Valid {
				http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
				return
			}
			id, _ := claims["id"].(string)
			username, _ := claims["username"].(string)
			if id == "" || username == "" {
				http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
				return
			}
			// Ensure user still exists
			if _, err := s.findUserByID(id); err != nil {
				http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), ctxUserKey{}, &authUser{ID: id, Username: username})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
