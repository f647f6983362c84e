package dto

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
)

func bindStudent(t *testing.T, body string) error {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/students", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	var out CreateStudentRequest
	return binding.JSON.Bind(req, &out)
}

// Binding must accept every semester the record validator accepts (1-12).
func TestCreateStudentSemesterBounds(t *testing.T) {
	base := `{"name":"Ravi Kumar","email":"ravi@example.com","gender":1,"course":"B.Tech","semester":%d}`

	for _, semester := range []int{1, 10, 12} {
		if err := bindStudent(t, fmt.Sprintf(base, semester)); err != nil {
			t.Errorf("semester %d rejected: %v", semester, err)
		}
	}
	for _, semester := range []int{-1, 13} {
		if err := bindStudent(t, fmt.Sprintf(base, semester)); err == nil {
			t.Errorf("semester %d accepted, want binding error", semester)
		}
	}
}

func TestCreateStudentSemesterDefaultsToOne(t *testing.T) {
	body := `{"name":"Ravi Kumar","email":"ravi@example.com","gender":1,"course":"B.Tech"}`
	if err := bindStudent(t, body); err != nil {
		t.Fatalf("omitted semester rejected: %v", err)
	}

	r := CreateStudentRequest{Name: "Ravi Kumar", Email: "ravi@example.com", Gender: 1, Course: "B.Tech"}
	if got := r.ToModel().Semester; got != 1 {
		t.Errorf("default semester = %d, want 1", got)
	}
}
