package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
)

type ErrorItem struct {
	Msg string `json:"msg"`
}

// ErrorsResponse - ответ с ошибками для 400/401/500
type ErrorsResponse struct {
	Errors []ErrorItem `json:"errors"`
}

// MessageResponse - ответ с одним сообщением (404, подтверждения)
type MessageResponse struct {
	Msg string `json:"msg"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func WriteErrors(w http.ResponseWriter, statusCode int, messages ...string) {
	items := make([]ErrorItem, 0, len(messages))
	for _, msg := range messages {
		items = append(items, ErrorItem{Msg: msg})
	}

	log.Printf("ответ с ошибкой %d: %v", statusCode, messages)

	WriteJSON(w, statusCode, ErrorsResponse{Errors: items})
}

func WriteMessage(w http.ResponseWriter, statusCode int, msg string) {
	WriteJSON(w, statusCode, MessageResponse{Msg: msg})
}

// WriteServerError logs the cause and hides it behind a generic body
func WriteServerError(w http.ResponseWriter, err error) {
	log.Printf("внутренняя ошибка: %v", err)
	WriteJSON(w, http.StatusInternalServerError, ErrorsResponse{
		Errors: []ErrorItem{{Msg: "Server error"}},
	})
}

// validationMessages maps validator field failures onto client messages
func validationMessages(err error, fieldMsgs map[string]string) []string {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return []string{"Invalid request"}
	}

	var messages []string
	for _, fieldErr := range vErrs {
		if msg, ok := fieldMsgs[fieldErr.Field()]; ok {
			messages = append(messages, msg)
		} else {
			messages = append(messages, fieldErr.Field()+" is invalid")
		}
	}

	return messages
}
