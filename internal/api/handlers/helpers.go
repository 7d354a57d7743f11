package handlers

import (
	"campus-paths-service/internal/api/dto"
	"campus-paths-service/internal/platform/obs"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New()

func writeJSON(w http.ResponseWriter, r *http.Request, logger *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil && logger != nil {
		logger.Error("encode failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("req_id", obs.RequestID(r.Context())),
			zap.Error(err),
		)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, status int, msg string, invalid ...string) {
	writeJSON(w, r, logger, status, dto.ErrorResponse{Error: msg, Invalid: invalid})
}

// validationMessage renders validator errors as "src is required; ...".
func validationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(msgs, "; ")
}

// invalidFields lists the lower-cased names of fields that failed validation.
func invalidFields(err error) []string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, strings.ToLower(e.Field()))
	}
	return out
}
