package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

func errorRespWithFields(code, message string, fields map[string]string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			Fields:    fields,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

// handleServiceError maps typed service errors onto HTTP responses. Upstream
// failures answer with the endpoint's generic message; the concrete cause is
// logged server-side only.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error, genericMsg string) {
	switch e := err.(type) {
	case *services.ValidationError:
		writeJSON(w, http.StatusBadRequest, errorRespWithFields(
			"VALIDATION_ERROR", "Проверьте правильность заполнения формы", e.Fields, r))
	case *services.TimeoutError:
		log.Printf("upstream timeout in %s %s: %v", r.Method, r.URL.Path, err)
		writeJSON(w, http.StatusGatewayTimeout, errorResp("UPSTREAM_ERROR", genericMsg, r))
	default:
		log.Printf("upstream error in %s %s: %v", r.Method, r.URL.Path, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("UPSTREAM_ERROR", genericMsg, r))
	}
}
