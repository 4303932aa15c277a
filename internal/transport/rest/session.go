package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/domain"
	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/service/study"
)

//go:generate moq -out session_service_mock_test.go -pkg rest . sessionService

// sessionService defines the review session operations needed by SessionHandler.
type sessionService interface {
	StartSession(ctx context.Context, input study.StartSessionInput) (study.Session, error)
	GetSession(ctx context.Context, input study.SessionInput) (study.Session, error)
	NextCard(ctx context.Context, input study.SessionInput) (study.NextCardResult, error)
	SubmitReview(ctx context.Context, input study.SubmitReviewInput) (study.ReviewResult, error)
	FinishSession(ctx context.Context, input study.SessionInput) (domain.SessionSummary, error)
	AbandonSession(ctx context.Context, input study.SessionInput) error
	ListSessionSummaries(ctx context.Context, input study.ListSummariesInput) ([]domain.SessionSummary, error)
}

// SessionHandler serves the /api/v1/sessions endpoints.
type SessionHandler struct {
	svc sessionService
	log *slog.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(svc sessionService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{svc: svc, log: logger.With("handler", "session")}
}

type startSessionRequest struct {
	Language       *string `json:"language"`
	TargetLanguage *string `json:"targetLanguage"`
	Category       *string `json:"category"`
	MasteryLevel   *int    `json:"masteryLevel"`
	Limit          int     `json:"limit"`
}

type submitReviewRequest struct {
	CardID           uuid.UUID `json:"cardId"`
	Outcome          string    `json:"outcome"`
	TimeSpentSeconds int       `json:"timeSpentSeconds"`
}

type startSessionResponse struct {
	Session sessionResponse `json:"session"`
	CardIDs []string        `json:"cardIds"`
}

// Start handles POST /api/v1/sessions. An empty body starts a session over
// every due card.
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil {
			writeDomainError(w, r, h.log, err)
			return
		}
	}

	sess, err := h.svc.StartSession(r.Context(), study.StartSessionInput{
		Filter: study.CardFilterInput{
			Language:       toLanguagePtr(req.Language),
			TargetLanguage: toLanguagePtr(req.TargetLanguage),
			Category:       req.Category,
			MasteryLevel:   req.MasteryLevel,
			Limit:          req.Limit,
		},
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	w.Header().Set("Location", "/api/v1/sessions/"+sess.ID.String())
	writeJSON(w, http.StatusCreated, startSessionResponse{
		Session: toSessionResponse(sess),
		CardIDs: lo.Map(sess.Queue, func(id uuid.UUID, _ int) string { return id.String() }),
	})
}

// Get handles GET /api/v1/sessions/{id}.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	input, ok := h.sessionInput(w, r)
	if !ok {
		return
	}

	sess, err := h.svc.GetSession(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(sess))
}

// Next handles GET /api/v1/sessions/{id}/next. A null card means the queue
// is exhausted.
func (h *SessionHandler) Next(w http.ResponseWriter, r *http.Request) {
	input, ok := h.sessionInput(w, r)
	if !ok {
		return
	}

	res, err := h.svc.NextCard(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	resp := nextCardResponse{Session: toSessionResponse(res.Session)}
	if res.Card != nil {
		resp.Card = lo.ToPtr(toFlashcardResponse(*res.Card))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Review handles POST /api/v1/sessions/{id}/reviews.
func (h *SessionHandler) Review(w http.ResponseWriter, r *http.Request) {
	input, ok := h.sessionInput(w, r)
	if !ok {
		return
	}

	var req submitReviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	res, err := h.svc.SubmitReview(r.Context(), study.SubmitReviewInput{
		SessionID:        input.SessionID,
		CardID:           req.CardID,
		Outcome:          domain.Outcome(req.Outcome),
		TimeSpentSeconds: req.TimeSpentSeconds,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, reviewResponse{
		Card:      toFlashcardResponse(res.Card),
		Event:     toReviewEventResponse(res.Event),
		Session:   toSessionResponse(res.Session),
		Completed: res.Completed,
		Accuracy:  res.Accuracy,
	})
}

// Finish handles POST /api/v1/sessions/{id}/finish.
func (h *SessionHandler) Finish(w http.ResponseWriter, r *http.Request) {
	input, ok := h.sessionInput(w, r)
	if !ok {
		return
	}

	summary, err := h.svc.FinishSession(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSummaryResponse(summary))
}

// Abandon handles DELETE /api/v1/sessions/{id}. Repeating it is harmless.
func (h *SessionHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	input, ok := h.sessionInput(w, r)
	if !ok {
		return
	}

	if err := h.svc.AbandonSession(r.Context(), input); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /api/v1/sessions.
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	input := study.ListSummariesInput{Limit: q.integer("limit"), Offset: q.integer("offset")}
	if err := q.err(); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	summaries, err := h.svc.ListSessionSummaries(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"sessions": lo.Map(summaries, func(s domain.SessionSummary, _ int) summaryResponse {
			return toSummaryResponse(s)
		}),
	})
}

func (h *SessionHandler) sessionInput(w http.ResponseWriter, r *http.Request) (study.SessionInput, bool) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return study.SessionInput{}, false
	}
	return study.SessionInput{SessionID: id}, true
}
