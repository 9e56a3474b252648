// Package httpjson is the JSON request/response layer shared by all
// features. It decodes request bodies and maps the apperr kinds onto
// status codes: NotFound is 404; Conflict, InvalidArgument, EmptyResult and
// malformed input are 400; anything else is a 500.
package httpjson

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dalemusser/rosterhub/internal/app/system/apperr"
	"go.uber.org/zap"
)

// errorResponse is the JSON body for every error the API returns.
type errorResponse struct {
	Detail string `json:"detail"`
}

// Decode reads a JSON request body into dst. Returns an InvalidArgument
// error on malformed JSON or unknown fields.
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperr.E(apperr.ErrInvalidArgument, "invalid request body: %v", err)
	}
	return nil
}

// Write encodes v as the response body with the given status code.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes v with a 200 status.
func OK(w http.ResponseWriter, v any) {
	Write(w, http.StatusOK, v)
}

// Error maps err to a status code and writes the error envelope. Unmapped
// errors become 500s and are logged; mapped domain errors are the caller's
// responsibility to log (or not) at the appropriate level.
func Error(w http.ResponseWriter, err error, log *zap.Logger) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError && log != nil {
		log.Error("internal error", zap.Error(err))
		Write(w, status, errorResponse{Detail: "internal server error"})
		return
	}
	Write(w, status, errorResponse{Detail: apperr.Detail(err)})
}

// StatusFor returns the HTTP status code for an error kind.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrConflict),
		errors.Is(err, apperr.ErrInvalidArgument),
		errors.Is(err, apperr.ErrEmptyResult):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
