// Package respond normalizes every request outcome into a fixed JSON
// envelope: {success, message, data?, errors?, meta?}.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/dolphin-labs/corekit/pagination"
)

// Envelope is the response shape returned for every outcome.
type Envelope struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    any              `json:"data,omitempty"`
	Errors  any              `json:"errors,omitempty"`
	Meta    *pagination.Meta `json:"meta,omitempty"`
}

// JSON writes data as JSON with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// OK writes a 200 success envelope with the default message.
func OK(w http.ResponseWriter, data any) {
	Success(w, http.StatusOK, "Success", data)
}

// Created writes a 201 success envelope.
func Created(w http.ResponseWriter, message string, data any) {
	Success(w, http.StatusCreated, message, data)
}

// Success writes a success envelope with an explicit status and message.
func Success(w http.ResponseWriter, status int, message string, data any) {
	if message == "" {
		message = "Success"
	}
	JSON(w, status, Envelope{Success: true, Message: message, Data: data})
}

// Paginated writes a success envelope carrying page metadata.
func Paginated(w http.ResponseWriter, data any, meta pagination.Meta) {
	JSON(w, http.StatusOK, Envelope{Success: true, Message: "Success", Data: data, Meta: &meta})
}

// Fail classifies err and writes the matching error envelope.
func Fail(w http.ResponseWriter, err error) {
	kind, message, detail := classify(err)
	entry := statusTable[kind]
	if message == "" {
		message = entry.message
	}
	JSON(w, entry.status, Envelope{Success: false, Message: message, Errors: detail})
}

// FailStatus writes an error envelope for a known kind with an explicit
// message, bypassing classification.
func FailStatus(w http.ResponseWriter, kind Kind, message string, errs any) {
	entry := statusTable[kind]
	if message == "" {
		message = entry.message
	}
	JSON(w, entry.status, Envelope{Success: false, Message: message, Errors: errs})
}

// DecodeJSON decodes a JSON request body into target, reporting malformed
// input as a validation error.
func DecodeJSON(r *http.Request, target any) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return &Error{Kind: KindValidation, Message: "Validation Error", Detail: "malformed JSON body", Err: err}
	}
	return nil
}
