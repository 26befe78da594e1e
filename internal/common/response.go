package common

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the judge API's generic failure body. Validation failures
// use ValidationResponse instead so clients can render field errors.
type ErrorResponse struct {
	Message string `json:"message"`
}

type ValidationResponse struct {
	Errors map[string]string `json:"errors"`
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, ErrorResponse{Message: message})
}

func RespondWithValidationErrors(w http.ResponseWriter, fieldErrors map[string]string) {
	RespondWithJSON(w, http.StatusBadRequest, ValidationResponse{Errors: fieldErrors})
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message": "Failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
