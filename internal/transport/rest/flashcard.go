package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/domain"
	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/service/study"
	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/service/study/srs"
)

//go:generate moq -out card_service_mock_test.go -pkg rest . cardService

// cardService defines the card operations needed by FlashcardHandler.
type cardService interface {
	CreateCard(ctx context.Context, input study.CreateCardInput) (domain.Flashcard, error)
	GetCard(ctx context.Context, cardID uuid.UUID) (domain.Flashcard, error)
	ListCards(ctx context.Context, input study.CardFilterInput) ([]domain.Flashcard, error)
	ListDue(ctx context.Context, input study.CardFilterInput) ([]domain.Flashcard, error)
	UpdateCard(ctx context.Context, input study.UpdateCardInput) (domain.Flashcard, error)
	ResetCard(ctx context.Context, cardID uuid.UUID) (domain.Flashcard, error)
	DeleteCard(ctx context.Context, cardID uuid.UUID) error
	CardHistory(ctx context.Context, input study.CardHistoryInput) ([]domain.ReviewEvent, error)
	PreviewCard(ctx context.Context, cardID uuid.UUID) ([]srs.OutcomePreview, error)
	GetStats(ctx context.Context, timezone string) (domain.Stats, error)
}

// FlashcardHandler serves the /api/v1/flashcards endpoints.
type FlashcardHandler struct {
	svc cardService
	log *slog.Logger
}

// NewFlashcardHandler creates a FlashcardHandler.
func NewFlashcardHandler(svc cardService, logger *slog.Logger) *FlashcardHandler {
	return &FlashcardHandler{svc: svc, log: logger.With("handler", "flashcard")}
}

type createCardRequest struct {
	Word           string `json:"word"`
	Translation    string `json:"translation"`
	Language       string `json:"language"`
	TargetLanguage string `json:"targetLanguage"`
	Category       string `json:"category"`
}

type updateCardRequest struct {
	Word           *string `json:"word"`
	Translation    *string `json:"translation"`
	Language       *string `json:"language"`
	TargetLanguage *string `json:"targetLanguage"`
	Category       *string `json:"category"`
}

func toLanguagePtr(s *string) *domain.Language {
	if s == nil {
		return nil
	}
	return lo.ToPtr(domain.Language(*s))
}

// Create handles POST /api/v1/flashcards.
func (h *FlashcardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	card, err := h.svc.CreateCard(r.Context(), study.CreateCardInput{
		Word:           req.Word,
		Translation:    req.Translation,
		Language:       domain.Language(req.Language),
		TargetLanguage: domain.Language(req.TargetLanguage),
		Category:       req.Category,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	w.Header().Set("Location", "/api/v1/flashcards/"+card.ID.String())
	writeJSON(w, http.StatusCreated, toFlashcardResponse(card))
}

// List handles GET /api/v1/flashcards.
func (h *FlashcardHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := filterFromQuery(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	cards, err := h.svc.ListCards(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"flashcards": toFlashcardList(cards)})
}

// ListDue handles GET /api/v1/flashcards/due.
func (h *FlashcardHandler) ListDue(w http.ResponseWriter, r *http.Request) {
	input, err := filterFromQuery(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	cards, err := h.svc.ListDue(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"flashcards": toFlashcardList(cards)})
}

// Stats handles GET /api/v1/flashcards/stats.
func (h *FlashcardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStats(r.Context(), r.URL.Query().Get("tz"))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toStatsResponse(stats))
}

// Get handles GET /api/v1/flashcards/{id}.
func (h *FlashcardHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	card, err := h.svc.GetCard(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toFlashcardResponse(card))
}

// Update handles PATCH /api/v1/flashcards/{id}.
func (h *FlashcardHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	var req updateCardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	card, err := h.svc.UpdateCard(r.Context(), study.UpdateCardInput{
		CardID:         id,
		Word:           req.Word,
		Translation:    req.Translation,
		Language:       toLanguagePtr(req.Language),
		TargetLanguage: toLanguagePtr(req.TargetLanguage),
		Category:       req.Category,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toFlashcardResponse(card))
}

// History handles GET /api/v1/flashcards/{id}/history.
func (h *FlashcardHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	q := newQueryParams(r)
	input := study.CardHistoryInput{CardID: id, Limit: q.integer("limit"), Offset: q.integer("offset")}
	if err := q.err(); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	events, err := h.svc.CardHistory(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"events": lo.Map(events, func(e domain.ReviewEvent, _ int) reviewEventResponse {
			return toReviewEventResponse(e)
		}),
	})
}

// Preview handles GET /api/v1/flashcards/{id}/preview.
func (h *FlashcardHandler) Preview(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	previews, err := h.svc.PreviewCard(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"previews": toPreviewList(previews)})
}

// Reset handles POST /api/v1/flashcards/{id}/reset.
func (h *FlashcardHandler) Reset(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	card, err := h.svc.ResetCard(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toFlashcardResponse(card))
}

// Delete handles DELETE /api/v1/flashcards/{id}.
func (h *FlashcardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteCard(r.Context(), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func filterFromQuery(r *http.Request) (study.CardFilterInput, error) {
	q := newQueryParams(r)
	input := study.CardFilterInput{
		Language:       q.language("language"),
		TargetLanguage: q.language("targetLanguage"),
		Category:       q.text("category"),
		MasteryLevel:   q.optInt("masteryLevel"),
		Limit:          q.integer("limit"),
	}
	return input, q.err()
}
