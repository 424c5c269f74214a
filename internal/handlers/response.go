package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
)

// Response structure for success messages
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse structure for error messages
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Ошибка кодирования JSON-ответа: %v", err)
	}
}

// writeError сопоставляет ошибки хранилища с HTTP-статусами:
// NotFound - 404, Conflict - 409, Validation - 400, остальное - 500
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, database.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, database.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, database.ErrValidation):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		log.Printf("Внутренняя ошибка: %v", err)
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}
