package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	bookingdomain "github.com/ku-alexej/shareit/services/booking/domain"
	itemdomain "github.com/ku-alexej/shareit/services/item/domain"
	requestdomain "github.com/ku-alexej/shareit/services/request/domain"
	userdomain "github.com/ku-alexej/shareit/services/user/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrUserNotFound", userdomain.ErrUserNotFound, http.StatusNotFound},
		{"ErrItemNotFound", itemdomain.ErrItemNotFound, http.StatusNotFound},
		{"ErrNotOwner", itemdomain.ErrNotOwner, http.StatusNotFound},
		{"ErrBookingNotFound", bookingdomain.ErrBookingNotFound, http.StatusNotFound},
		{"ErrOwnBooking", bookingdomain.ErrOwnBooking, http.StatusNotFound},
		{"ErrRequestNotFound", requestdomain.ErrRequestNotFound, http.StatusNotFound},
		{"ErrEmailTaken", userdomain.ErrEmailTaken, http.StatusConflict},
		{"ErrUserInUse", userdomain.ErrUserInUse, http.StatusConflict},
		{"ErrItemUnavailable", bookingdomain.ErrItemUnavailable, http.StatusBadRequest},
		{"ErrInvalidTimeRange", bookingdomain.ErrInvalidTimeRange, http.StatusBadRequest},
		{"ErrAlreadyResolved", bookingdomain.ErrAlreadyResolved, http.StatusBadRequest},
		{"ErrCommentNotAllowed", itemdomain.ErrCommentNotAllowed, http.StatusBadRequest},
		{"ErrUnsupportedState", bookingdomain.ErrUnsupportedState, http.StatusInternalServerError},
		{"UnsupportedStateError", &bookingdomain.UnsupportedStateError{Value: "BOGUS"}, http.StatusInternalServerError},
		{"wrapped ErrUserNotFound", fmt.Errorf("get user: %w", userdomain.ErrUserNotFound), http.StatusNotFound},
		{"wrapped ErrEmailTaken", fmt.Errorf("create user: %w", userdomain.ErrEmailTaken), http.StatusConflict},
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

func TestWriteError_UnknownStateKeepsMessage(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, &bookingdomain.UnsupportedStateError{Value: "SOMEDAY"})

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if got := body["error"]; got != "Unknown state: SOMEDAY" {
		t.Fatalf("expected raw state in message, got %q", got)
	}
}

func TestWriteError_MasksUnknownErrors(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, errors.New("pq: connection refused"))

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if got := body["error"]; got != "Internal server error" {
		t.Fatalf("expected masked message, got %q", got)
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, userdomain.ErrUserNotFound)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if _, ok := body["error"]; !ok {
		t.Fatal("response body missing 'error' key")
	}
}
