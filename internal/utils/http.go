package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it with statusCode and the
// "application/json" content type. When marshaling fails it responds with
// 500 Internal Server Error and returns the wrapped error.
//
// Example usage:
//
//	utils.WriteJSON(w, models.NewSuccessResponse("Class was created"), http.StatusCreated)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
