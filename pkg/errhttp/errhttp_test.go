package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	feeddomain "github.com/ghuser/orderline/services/feed/domain"
	recordsdomain "github.com/ghuser/orderline/services/records/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrInvalidInput", recordsdomain.ErrInvalidInput, http.StatusBadRequest},
		{"ErrNotFound", recordsdomain.ErrNotFound, http.StatusNotFound},
		{"ErrConflict", recordsdomain.ErrConflict, http.StatusConflict},
		{"ErrMalformedBatch", feeddomain.ErrMalformedBatch, http.StatusUnprocessableEntity},
		{"ErrCustomerNotFound", recordsdomain.ErrCustomerNotFound, http.StatusNotFound},
		{"ErrOrderNotFound", recordsdomain.ErrOrderNotFound, http.StatusNotFound},
		{"ErrItemNameTaken", recordsdomain.ErrItemNameTaken, http.StatusConflict},
		{"ErrIDOnCreate", recordsdomain.ErrIDOnCreate, http.StatusBadRequest},
		{"ErrIDMismatch", recordsdomain.ErrIDMismatch, http.StatusBadRequest},
		{"ErrCustomerRequired", recordsdomain.ErrCustomerRequired, http.StatusBadRequest},
		{"wrapped ErrItemNotFound", fmt.Errorf("get item: %w", recordsdomain.ErrItemNotFound), http.StatusNotFound},
		{"wrapped ErrMalformedBatch", fmt.Errorf("%w: order 3: missing phone", feeddomain.ErrMalformedBatch), http.StatusUnprocessableEntity},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("db down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, recordsdomain.ErrOrderNotFound)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if _, ok := body["error"]; !ok {
		t.Fatal("response body missing 'error' key")
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, recordsdomain.ErrCustomerNotFound)

	ct := w.Header().Get("Content-Type")
	if ct == "" {
		t.Fatal("Content-Type header not set")
	}
}
