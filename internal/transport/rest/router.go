package rest

import (
	"net/http"

	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/transport/middleware"
)

// NewRouter mounts the probes and the /api/v1 endpoints. api wraps only
// the /api/v1 routes; probes stay unauthenticated and unlimited.
func NewRouter(cards *FlashcardHandler, sessions *SessionHandler, health *HealthHandler, api middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	v1 := http.NewServeMux()
	v1.HandleFunc("GET /api/v1/flashcards", cards.List)
	v1.HandleFunc("POST /api/v1/flashcards", cards.Create)
	v1.HandleFunc("GET /api/v1/flashcards/due", cards.ListDue)
	v1.HandleFunc("GET /api/v1/flashcards/stats", cards.Stats)
	v1.HandleFunc("GET /api/v1/flashcards/{id}", cards.Get)
	v1.HandleFunc("PATCH /api/v1/flashcards/{id}", cards.Update)
	v1.HandleFunc("DELETE /api/v1/flashcards/{id}", cards.Delete)
	v1.HandleFunc("GET /api/v1/flashcards/{id}/history", cards.History)
	v1.HandleFunc("GET /api/v1/flashcards/{id}/preview", cards.Preview)
	v1.HandleFunc("POST /api/v1/flashcards/{id}/reset", cards.Reset)

	v1.HandleFunc("GET /api/v1/sessions", sessions.List)
	v1.HandleFunc("POST /api/v1/sessions", sessions.Start)
	v1.HandleFunc("GET /api/v1/sessions/{id}", sessions.Get)
	v1.HandleFunc("DELETE /api/v1/sessions/{id}", sessions.Abandon)
	v1.HandleFunc("GET /api/v1/sessions/{id}/next", sessions.Next)
	v1.HandleFunc("POST /api/v1/sessions/{id}/reviews", sessions.Review)
	v1.HandleFunc("POST /api/v1/sessions/{id}/finish", sessions.Finish)
	v1.HandleFunc("/api/v1/", notFound)

	mux.Handle("/api/v1/", api(v1))
	mux.HandleFunc("/", notFound)

	return mux
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, codeNotFound, "route not found")
}
