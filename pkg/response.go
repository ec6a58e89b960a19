package pkg

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/workouttracker/internal/apierr"
)

var ContentType = struct {
	JSON string
	Text string
}{
	JSON: "application/json",
	Text: "text/plain; charset=utf-8",
}

// ErrorResponse is the error body: {"error": "..."} next to any extra fields the
// API error carries.
type ErrorResponse struct {
	Error  string
	Fields map[string]any
}

func (r ErrorResponse) MarshalJSON() ([]byte, error) {
	body := make(map[string]any, len(r.Fields)+1)
	for k, v := range r.Fields {
		body[k] = v
	}
	body["error"] = r.Error
	return json.Marshal(body)
}

func (r *ErrorResponse) UnmarshalJSON(b []byte) error {
	var body map[string]any
	if err := json.Unmarshal(b, &body); err != nil {
		return err
	}
	msg, _ := body["error"].(string)
	delete(body, "error")

	r.Error = msg
	r.Fields = nil
	if len(body) > 0 {
		r.Fields = body
	}
	return nil
}

func WriteResponse(w http.ResponseWriter, contentType, message string, statusCode int) {
	WriteResponseBytes(w, contentType, []byte(message), statusCode)
}

func WriteResponseBytes(w http.ResponseWriter, contentType string, message []byte, statusCode int) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(statusCode)

	if _, err := w.Write(message); err != nil {
		log.Errorf("failed to write response [%s]: %s", message, err)
	}
}

func WriteResponseBytesOK(w http.ResponseWriter, contentType string, message []byte) {
	WriteResponseBytes(w, contentType, message, http.StatusOK)
}

func WriteTextResponseOK(w http.ResponseWriter, message string) {
	WriteResponse(w, ContentType.Text, message, http.StatusOK)
}

// WriteJSON marshals v and writes it with the given status code.
func WriteJSON(w http.ResponseWriter, v any, statusCode int) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal response: %s", err)
		WriteError(w, err)
		return
	}
	WriteResponseBytes(w, ContentType.JSON, b, statusCode)
}

func WriteJSONResponseOK(w http.ResponseWriter, v any) {
	WriteJSON(w, v, http.StatusOK)
}

// WriteError renders err as {"error": "..."}. Typed API errors keep their status and
// message, everything else becomes an opaque 500.
func WriteError(w http.ResponseWriter, err error) {
	var apiErr *apierr.Error
	if !errors.As(err, &apiErr) {
		log.Errorf("unhandled error: %s", err)
		writeErrorBody(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	if apiErr.Status >= http.StatusInternalServerError {
		log.Errorf("request failed [%d]: %s", apiErr.Status, apiErr)
	} else {
		log.Debugf("request rejected [%d]: %s", apiErr.Status, apiErr)
	}

	writeErrorBody(w, apiErr.Status, ErrorResponse{Error: apiErr.Message, Fields: apiErr.Fields})
}

func writeErrorBody(w http.ResponseWriter, statusCode int, resp ErrorResponse) {
	b, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("marshal error body: %s", err)
		b = []byte(`{"error":"internal server error"}`)
	}
	WriteResponseBytes(w, ContentType.JSON, b, statusCode)
}
