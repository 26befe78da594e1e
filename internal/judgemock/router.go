package judgemock

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"

	"createathon/internal/common/security"
)

// NewRouter assembles the mock judge API. Challenges are public; tokens,
// submissions, and users follow the real service's auth requirements.
func NewRouter(store *Store, accessTTL, refreshTTL time.Duration) http.Handler {
	h := NewHandlers(store, accessTTL, refreshTTL)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(30 * time.Second))
	r.Use(jwtauth.Verifier(security.TokenAuth))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Post("/token", h.login)
	r.Post("/token/refresh", h.refresh)
	r.Post("/users/register", h.register)

	r.Get("/challenges", h.listChallenges)
	r.Get("/challenges/{id}", h.getChallenge)

	r.Group(func(protected chi.Router) {
		protected.Use(Authenticator)
		protected.Post("/submissions", h.createSubmission)
		protected.Get("/submissions/user", h.listUserSubmissions)
		protected.Get("/users", h.listUsers)
		protected.Get("/users/{id}", h.getUser)
	})

	return r
}
