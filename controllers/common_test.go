package controllers

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/PrinceS45/SIH-CampusOne-sub000/errors"
	"github.com/PrinceS45/SIH-CampusOne-sub000/response"
)

func serveError(t *testing.T, err error) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	handleServiceError(c, err)

	var body response.Response
	if jerr := json.Unmarshal(w.Body.Bytes(), &body); jerr != nil {
		t.Fatalf("decode body: %v", jerr)
	}
	return w, body
}

func TestHandleServiceErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"student not found", errors.ErrStudentNotFound, http.StatusNotFound},
		{"room not found", errors.ErrRoomNotFound, http.StatusNotFound},
		{"room not available", errors.ErrRoomNotAvailable, http.StatusBadRequest},
		{"already allocated", errors.ErrStudentAllocated, http.StatusBadRequest},
		{"gender mismatch", errors.ErrGenderMismatch, http.StatusBadRequest},
		{"no current room", errors.ErrNoAllocation, http.StatusBadRequest},
		{"room occupied", errors.ErrRoomOccupied, http.StatusConflict},
		{"fee already paid", errors.ErrFeeAlreadyPaid, http.StatusConflict},
		{"duplicate result", errors.ErrResultExists, http.StatusConflict},
		{"email taken", errors.ErrUserAlreadyExists, http.StatusConflict},
		{"wrong password", errors.ErrInvalidPassword, http.StatusUnauthorized},
		{"inactive user", errors.ErrUserInactive, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := serveError(t, tt.err)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
			if body.Code != 0 {
				t.Errorf("envelope code = %d, want 0", body.Code)
			}
			if body.Mess == "" {
				t.Error("empty message")
			}
		})
	}
}

func TestHandleServiceErrorUnexpectedKeepsMessage(t *testing.T) {
	dbErr := stderrors.New("pq: connection refused")

	w, body := serveError(t, dbErr)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if body.Mess != dbErr.Error() {
		t.Errorf("message = %q, want %q", body.Mess, dbErr.Error())
	}
}

func TestHandleServiceErrorAppError(t *testing.T) {
	err := errors.NewAppError(errors.ErrCodeValidation, "Semester must be between 1 and 12", nil)

	w, body := serveError(t, err)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body.Mess != "Semester must be between 1 and 12" {
		t.Errorf("message = %q", body.Mess)
	}
}
