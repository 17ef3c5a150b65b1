package handlers

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/zatekoja/arovia/web/internal/application/screens"
	"github.com/zatekoja/arovia/web/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/arovia/web/pkg/errors"
)

const maxFormBytes = 1 << 20

var errInternal = stderrors.New("internal error")

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		observability.GetLogger().Error().Err(err).Msg("failed to encode response")
	}
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// wantsJSON reports whether the caller asked for JSON instead of a page
func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// statusFor maps a screen error to the status returned to JSON callers
func statusFor(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if stderrors.Is(err, errInternal) {
		return http.StatusInternalServerError
	}
	if stderrors.Is(err, screens.ErrBusy) {
		return http.StatusConflict
	}

	switch apperrors.TypeOf(err) {
	case apperrors.ErrorTypeValidation:
		return http.StatusBadRequest
	case apperrors.ErrorTypeNotFound:
		return http.StatusNotFound
	case apperrors.ErrorTypeCanceled:
		return http.StatusConflict
	case apperrors.ErrorTypeServerRejected, apperrors.ErrorTypeMalformedResponse:
		return http.StatusBadGateway
	case apperrors.ErrorTypeNetworkUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// formValues reads an urlencoded or JSON object body into url.Values
func formValues(w http.ResponseWriter, r *http.Request) (url.Values, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return nil, apperrors.NewValidationError("invalid request body")
		}
		values := make(url.Values, len(body))
		for k, v := range body {
			values.Set(k, v)
		}
		return values, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, apperrors.NewValidationError("invalid form")
	}
	return r.PostForm, nil
}
