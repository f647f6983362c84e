package validator

import (
	"testing"
	"time"

	"github.com/PrinceS45/SIH-CampusOne-sub000/constants"
	"github.com/PrinceS45/SIH-CampusOne-sub000/errors"
	"github.com/PrinceS45/SIH-CampusOne-sub000/models"
)

func validStudent() *models.Student {
	return &models.Student{
		Name:     "Ravi Kumar",
		Email:    "ravi.kumar@example.com",
		Gender:   constants.GenderMale,
		Course:   "B.Tech",
		Semester: 3,
		Status:   constants.StudentStatusActive,
	}
}

func wantCode(t *testing.T, err error, code errors.ErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	appErr := errors.GetAppError(err)
	if appErr == nil {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != code {
		t.Errorf("code = %s, want %s", appErr.Code, code)
	}
}

func TestValidateStudent(t *testing.T) {
	if err := ValidateStudent(validStudent()); err != nil {
		t.Fatalf("valid student rejected: %v", err)
	}

	s := validStudent()
	s.Name = ""
	wantCode(t, ValidateStudent(s), errors.ErrCodeRequiredField)

	s = validStudent()
	s.Email = "not-an-email"
	wantCode(t, ValidateStudent(s), errors.ErrCodeInvalidEmail)

	s = validStudent()
	s.PhoneNumber = "12345"
	wantCode(t, ValidateStudent(s), errors.ErrCodeInvalidPhone)

	s = validStudent()
	s.Gender = 0
	wantCode(t, ValidateStudent(s), errors.ErrCodeValidation)

	s = validStudent()
	s.Semester = 13
	wantCode(t, ValidateStudent(s), errors.ErrCodeValidation)

	s = validStudent()
	s.Status = 9
	wantCode(t, ValidateStudent(s), errors.ErrCodeInvalidStatus)
}

func TestValidateHostel(t *testing.T) {
	h := &models.Hostel{Name: "Aryabhatta", Type: constants.HostelTypeBoys, Status: constants.HostelStatusActive}
	if err := ValidateHostel(h); err != nil {
		t.Fatalf("valid hostel rejected: %v", err)
	}

	h.Type = 3
	wantCode(t, ValidateHostel(h), errors.ErrCodeValidation)

	h.Type = constants.HostelTypeGirls
	h.WardenPhone = "98765"
	wantCode(t, ValidateHostel(h), errors.ErrCodeInvalidPhone)
}

func TestValidateRoom(t *testing.T) {
	r := &models.Room{HostelID: 1, RoomNumber: "101", Capacity: 2, Status: constants.RoomStatusAvailable}
	if err := ValidateRoom(r); err != nil {
		t.Fatalf("valid room rejected: %v", err)
	}

	r.Capacity = 7
	wantCode(t, ValidateRoom(r), errors.ErrCodeValidation)

	r.Capacity = 2
	r.CurrentOccupancy = 3
	wantCode(t, ValidateRoom(r), errors.ErrCodeValidation)

	r.CurrentOccupancy = 0
	r.Price = -1
	wantCode(t, ValidateRoom(r), errors.ErrCodeInvalidAmount)
}

func TestValidateFee(t *testing.T) {
	f := &models.Fee{
		StudentID:    1,
		Type:         constants.FeeTypeHostel,
		Amount:       4500,
		DueDate:      time.Now().AddDate(0, 1, 0),
		AcademicYear: "2026-27",
	}
	if err := ValidateFee(f); err != nil {
		t.Fatalf("valid fee rejected: %v", err)
	}

	f.Amount = 0
	wantCode(t, ValidateFee(f), errors.ErrCodeInvalidAmount)

	f.Amount = 4500
	f.AcademicYear = "2026"
	wantCode(t, ValidateFee(f), errors.ErrCodeInvalidFormat)
}

func TestValidateExamAndResult(t *testing.T) {
	exam := &models.Exam{
		Name:         "Mid Semester",
		Subject:      "Data Structures",
		Date:         time.Now(),
		MaxMarks:     100,
		PassingMarks: 35,
	}
	if err := ValidateExam(exam); err != nil {
		t.Fatalf("valid exam rejected: %v", err)
	}

	exam.PassingMarks = 120
	wantCode(t, ValidateExam(exam), errors.ErrCodeInvalidMarks)
	exam.PassingMarks = 35

	result := &models.Result{ExamID: 1, StudentID: 1, MarksObtained: 80}
	if err := ValidateResult(result, exam); err != nil {
		t.Fatalf("valid result rejected: %v", err)
	}

	result.MarksObtained = 101
	wantCode(t, ValidateResult(result, exam), errors.ErrCodeInvalidMarks)
}

func TestValidateDateRange(t *testing.T) {
	from := time.Now()
	to := from.AddDate(0, 0, -1)
	wantCode(t, ValidateDateRange(from, to), errors.ErrCodeValidation)

	if err := ValidateDateRange(from, from.AddDate(0, 0, 1)); err != nil {
		t.Errorf("valid range rejected: %v", err)
	}
}
