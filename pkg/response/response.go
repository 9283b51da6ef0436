package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"clinic-cms-backend/pkg/apperrors"

	"github.com/sirupsen/logrus"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Code    string      `json:"code,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func Success(w http.ResponseWriter, statusCode int, data interface{}) {
	JSON(w, statusCode, Response{
		Success: true,
		Data:    data,
	})
}

func SuccessWithMessage(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	JSON(w, statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Error(w http.ResponseWriter, statusCode int, message string, code string) {
	JSON(w, statusCode, Response{
		Success: false,
		Error:   message,
		Code:    code,
	})
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	Error(w, http.StatusUnauthorized, message, "UNAUTHORIZED")
}

// FromError maps a domain error onto its HTTP status and envelope.
// Anything outside the taxonomy is logged and surfaced as a generic 500
// so no internal detail leaks to the client.
func FromError(w http.ResponseWriter, err error) {
	var domainErr *apperrors.DomainError
	if errors.As(err, &domainErr) {
		Error(w, statusFor(domainErr.Code), domainErr.Message, domainErr.Code)
		return
	}

	logrus.WithError(err).Error("Unhandled error at controller boundary")
	Error(w, http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR")
}

func statusFor(code string) int {
	switch code {
	case apperrors.CodeNotFound:
		return http.StatusNotFound
	case apperrors.CodeValidation:
		return http.StatusBadRequest
	case apperrors.CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
