package main

import (
	"context"
	"net/http"
	"time"

	"anirex/internal/auth"
	"anirex/internal/catalog"
	"anirex/internal/collection"
	"anirex/internal/httpx"
	"anirex/internal/metrics"
	"anirex/internal/profile"
	"anirex/internal/review"
	"anirex/internal/session"
	"anirex/internal/user"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type server struct {
	catalog     *catalog.HTTPHandler
	reviews     *review.HTTPHandler
	users       *user.HTTPHandler
	auth        *auth.HTTPHandler
	sessions    *session.HTTPHandler
	profiles    *profile.HTTPHandler
	collections *collection.HTTPHandler

	db        pinger
	jwtSecret string
	blacklist httpx.BlacklistRepository
}

func (s *server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /readyz", s.ready)
	mux.Handle("GET /metrics", metrics.Handler())

	protected := httpx.AuthMiddleware(s.jwtSecret, s.blacklist)
	optional := httpx.OptionalAuthMiddleware(s.jwtSecret, s.blacklist)
	withAuth := func(h http.HandlerFunc) http.Handler { return protected(h) }

	mux.HandleFunc("POST /v1/auth/register", s.users.RegisterUser)
	mux.HandleFunc("POST /v1/auth/login", s.auth.Login)
	mux.HandleFunc("POST /v1/auth/refresh", s.auth.RefreshToken)
	mux.Handle("POST /v1/auth/logout", withAuth(s.auth.Logout))

	mux.Handle("GET /v1/me", withAuth(s.users.GetCurrentUser))
	mux.Handle("GET /v1/me/sessions", withAuth(s.sessions.ListSessions))
	mux.Handle("DELETE /v1/me/sessions/{id}", withAuth(s.sessions.DeleteSession))
	mux.Handle("GET /v1/me/profile", withAuth(s.profiles.GetOwnProfile))
	mux.Handle("PATCH /v1/me/profile", withAuth(s.profiles.UpdateProfile))

	mux.Handle("GET /v1/me/{kind}", withAuth(s.collections.List))
	mux.Handle("PUT /v1/me/{kind}/{id}", withAuth(s.collections.Add))
	mux.Handle("DELETE /v1/me/{kind}/{id}", withAuth(s.collections.Remove))

	mux.HandleFunc("GET /v1/genres", s.catalog.ListGenres)
	mux.HandleFunc("GET /v1/anime", s.catalog.Search)
	mux.HandleFunc("GET /v1/anime/{id}", s.catalog.Get)
	mux.HandleFunc("GET /v1/feeds/{category}", s.catalog.Feed)

	mux.HandleFunc("GET /v1/anime/{id}/reviews", s.reviews.List)
	// The handler answers anonymous submissions with 401 before the service runs.
	mux.Handle("POST /v1/anime/{id}/reviews", optional(http.HandlerFunc(s.reviews.Submit)))

	return mux
}

func (s *server) ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
	defer cancel()
	if err := s.db.Ping(ctx); err != nil {
		httpx.JSONError(w, r, http.StatusServiceUnavailable, "NOT_READY", "database not ready", nil)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
