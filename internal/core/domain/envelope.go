package domain

import (
	"encoding/json"
	"errors"
)

// Envelope is the uniform response wrapper every backend endpoint uses.
// Data stays raw until the calling service decodes it into its own payload
// type; the gateway never interprets it.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Errors  []string        `json:"errors,omitempty"`
}

// Decode unmarshals the data payload into v.
func (e *Envelope) Decode(v any) error {
	if len(e.Data) == 0 {
		return errors.New("envelope: empty data payload")
	}
	return json.Unmarshal(e.Data, v)
}

// Err converts a success=false envelope into an application error carrying
// the backend message, or fallback when the backend sent none.
func (e *Envelope) Err(fallback string) error {
	if e.Message != "" {
		return &APIError{Message: e.Message}
	}
	return &APIError{Message: fallback}
}
