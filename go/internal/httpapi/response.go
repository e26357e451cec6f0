// Package httpapi holds the JSON envelope, error mapping, request decoding and
// middleware shared by the REST services.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/rs/zerolog"
)

// Response is the envelope of every REST response
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// WriteJSON writes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func OK(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, Response{Success: true, Data: data})
}

func Created(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, Response{Success: true, Data: data})
}

// Message writes a successful response without payload.
func Message(w http.ResponseWriter, msg string) {
	WriteJSON(w, http.StatusOK, Response{Success: true, Message: msg})
}

// Error maps err to its status code and writes the failure envelope. Server
// errors are logged and their details kept out of the body.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("request failed")
		msg = http.StatusText(status)
	}
	WriteJSON(w, status, Response{Success: false, Message: msg})
}

// StatusFor returns the HTTP status of an application error.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrStateConflict):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrDeadlinePassed):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
