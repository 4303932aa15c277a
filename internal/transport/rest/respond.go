package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/domain"
)

const maxBodyBytes = 1 << 20

// statusClientClosedRequest is recorded when the client went away mid-request.
const statusClientClosedRequest = 499

// Error codes returned in the error envelope.
const (
	codeValidation     = "VALIDATION_ERROR"
	codeInvalidOutcome = "INVALID_OUTCOME"
	codeUnauthorized   = "UNAUTHORIZED"
	codeForbidden      = "FORBIDDEN"
	codeNotFound       = "NOT_FOUND"
	codeNoCardsDue     = "NO_CARDS_DUE"
	codeOutOfSequence  = "OUT_OF_SEQUENCE"
	codeConflict       = "CONFLICT"
	codeAlreadyExists  = "ALREADY_EXISTS"
	codeInternal       = "INTERNAL"
)

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string               `json:"code"`
	Message string               `json:"message"`
	Fields  []fieldErrorResponse `json:"fields,omitempty"`
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorBody{Code: code, Message: message}})
}

// writeDomainError maps a service error onto a status code and error code.
// Unexpected errors are logged and reported without detail.
func writeDomainError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var verr *domain.ValidationError

	switch {
	case errors.Is(err, domain.ErrInvalidOutcome):
		writeError(w, http.StatusBadRequest, codeInvalidOutcome, "outcome must be one of again, hard, good, easy")
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorBody{
			Code:    codeValidation,
			Message: "validation failed",
			Fields: lo.Map(verr.Errors, func(fe domain.FieldError, _ int) fieldErrorResponse {
				return fieldErrorResponse{Field: fe.Field, Message: fe.Message}
			}),
		}})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, codeValidation, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "authentication required")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, codeForbidden, "forbidden")
	case errors.Is(err, domain.ErrNoCardsDue):
		writeError(w, http.StatusNotFound, codeNoCardsDue, "no cards are due for review")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, "not found")
	case errors.Is(err, domain.ErrOutOfSequence):
		writeError(w, http.StatusConflict, codeOutOfSequence, "card is not the next card in the session")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, codeConflict, "card was modified concurrently, retry")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, codeAlreadyExists, "already exists")
	case errors.Is(err, context.Canceled):
		log.InfoContext(r.Context(), "request canceled", slog.String("path", r.URL.Path))
		w.WriteHeader(statusClientClosedRequest)
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, codeInternal, "internal server error")
	}
}

// decodeJSON reads a single JSON object into dst. Unknown fields and
// trailing data are rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return domain.NewValidationError("body", "required")
		case errors.As(err, &maxErr):
			return domain.NewValidationError("body", "too large")
		default:
			return domain.NewValidationError("body", fmt.Sprintf("malformed JSON: %v", err))
		}
	}
	if dec.More() {
		return domain.NewValidationError("body", "must contain a single JSON object")
	}
	return nil
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a valid UUID")
	}
	return id, nil
}

// queryParams collects field errors while reading query values so that a
// request reports every malformed parameter at once.
type queryParams struct {
	r    *http.Request
	errs []domain.FieldError
}

func newQueryParams(r *http.Request) *queryParams {
	return &queryParams{r: r}
}

func (q *queryParams) text(name string) *string {
	if !q.r.URL.Query().Has(name) {
		return nil
	}
	return lo.ToPtr(q.r.URL.Query().Get(name))
}

func (q *queryParams) language(name string) *domain.Language {
	s := q.text(name)
	if s == nil {
		return nil
	}
	return lo.ToPtr(domain.Language(*s))
}

func (q *queryParams) optInt(name string) *int {
	s := q.text(name)
	if s == nil {
		return nil
	}
	n, err := strconv.Atoi(*s)
	if err != nil {
		q.errs = append(q.errs, domain.FieldError{Field: name, Message: "must be an integer"})
		return nil
	}
	return &n
}

func (q *queryParams) integer(name string) int {
	return lo.FromPtr(q.optInt(name))
}

func (q *queryParams) err() error {
	if len(q.errs) == 0 {
		return nil
	}
	return domain.NewValidationErrors(q.errs)
}
