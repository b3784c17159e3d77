package utils

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Response is the body of every failed request.
type Response struct {
	Message    string  `json:"message"`
	Code       string  `json:"code,omitempty"`
	MaxAllowed *string `json:"max_allowed,omitempty"`
}

func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, status int, message string) {
	RespondWithJSON(w, status, Response{Message: message})
}

func RespondWithCode(w http.ResponseWriter, status int, code, message string) {
	RespondWithJSON(w, status, Response{Message: message, Code: code})
}
