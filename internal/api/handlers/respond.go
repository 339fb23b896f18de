package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/halaleats/backend/internal/api/validation"
	"github.com/halaleats/backend/internal/infrastructure/observability"
	apperrors "github.com/halaleats/backend/pkg/errors"
)

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

func respondWithValidationErrors(w http.ResponseWriter, violations []validation.FieldError) {
	respondWithJSON(w, http.StatusBadRequest, map[string]interface{}{
		"errors": violations,
	})
}

// respondWithRepositoryError maps a repository failure to the HTTP contract:
// not-found surfaces as 404 with the repository's message, anything else is
// logged and collapsed to a generic 500 so no internal detail reaches the
// client.
func respondWithRepositoryError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	if appErr, ok := err.(*apperrors.AppError); ok && appErr.Type == apperrors.ErrorTypeNotFound {
		respondWithError(w, http.StatusNotFound, appErr.Message)
		return
	}

	logger := observability.LoggerFromContext(r.Context())
	logger.Error().Err(err).Str("path", r.URL.Path).Msg(fallback)
	respondWithError(w, http.StatusInternalServerError, fallback)
}
