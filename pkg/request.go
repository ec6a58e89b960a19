package pkg

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/2beens/workouttracker/internal/apierr"
)

// MaxBodyBytes caps request bodies; a whole workout of sets fits easily.
const MaxBodyBytes = 1 << 20

// DecodeJSON checks the content type and decodes the body into v.
func DecodeJSON(r *http.Request, v any) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), ContentType.JSON) {
		return apierr.Validation("invalid content type, expected application/json")
	}
	if r.Body == nil {
		return apierr.Validation("request body is empty")
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return apierr.Validation("request body is empty")
		}
		return apierr.New(http.StatusBadRequest, "invalid json body", err)
	}
	return nil
}

// ReadJSONBody returns the raw JSON body after the content type check.
func ReadJSONBody(r *http.Request) (json.RawMessage, error) {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), ContentType.JSON) {
		return nil, apierr.Validation("invalid content type, expected application/json")
	}
	if r.Body == nil {
		return nil, apierr.Validation("request body is empty")
	}
	b, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes))
	if err != nil {
		return nil, apierr.New(http.StatusBadRequest, "read request body", err)
	}
	if len(strings.TrimSpace(string(b))) == 0 {
		return nil, apierr.Validation("request body is empty")
	}
	return b, nil
}

// UUIDVar returns the named path variable, validated as a UUID.
func UUIDVar(r *http.Request, name string) (string, error) {
	raw := mux.Vars(r)[name]
	if raw == "" {
		return "", apierr.Validationf("%s is required", name)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", apierr.Validationf("invalid %s", name)
	}
	return id.String(), nil
}

// ValidUUID reports whether s parses as a UUID.
func ValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
