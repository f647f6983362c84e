package validator

import (
	"regexp"
	"time"

	"github.com/PrinceS45/SIH-CampusOne-sub000/constants"
	"github.com/PrinceS45/SIH-CampusOne-sub000/errors"
	"github.com/PrinceS45/SIH-CampusOne-sub000/models"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
	yearRegex  = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}$`)
)

// ValidateUser validates a staff account.
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email is required", nil)
	}
	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email is not valid", nil)
	}
	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Password is required", nil)
	}
	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Password must be at least 6 characters", nil)
	}
	if user.Role != constants.RoleStaff && user.Role != constants.RoleAdmin {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role is not valid", nil)
	}
	return nil
}

// ValidateStudent validates a student record before it is persisted.
func ValidateStudent(student *models.Student) error {
	if student.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Student name is required", nil)
	}
	if student.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Student email is required", nil)
	}
	if !isValidEmail(student.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Student email is not valid", nil)
	}
	if student.PhoneNumber != "" && !isValidPhone(student.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Student phone number is not valid", nil)
	}
	if student.Gender != constants.GenderMale && student.Gender != constants.GenderFemale {
		return errors.NewAppError(errors.ErrCodeValidation, "Student gender is not valid", nil)
	}
	if student.Course == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Course is required", nil)
	}
	if student.Semester < 1 || student.Semester > 12 {
		return errors.NewAppError(errors.ErrCodeValidation, "Semester must be between 1 and 12", nil)
	}
	if err := student.ValidateStatus(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Student status is not valid", err)
	}
	if student.GuardianPhone != "" && !isValidPhone(student.GuardianPhone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Guardian phone number is not valid", nil)
	}
	return nil
}

// ValidateHostel validates a hostel record.
func ValidateHostel(hostel *models.Hostel) error {
	if hostel.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Hostel name is required", nil)
	}
	if err := hostel.ValidateType(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Hostel type must be boys or girls", err)
	}
	if hostel.WardenPhone != "" && !isValidPhone(hostel.WardenPhone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Warden phone number is not valid", nil)
	}
	if hostel.WardenEmail != "" && !isValidEmail(hostel.WardenEmail) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Warden email is not valid", nil)
	}
	return nil
}

// ValidateRoom validates a room record.
func ValidateRoom(room *models.Room) error {
	if room.HostelID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Hostel ID is required", nil)
	}
	if room.RoomNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Room number is required", nil)
	}
	if room.Capacity < 1 || room.Capacity > 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Room capacity must be between 1 and 6", nil)
	}
	if room.CurrentOccupancy < 0 || room.CurrentOccupancy > room.Capacity {
		return errors.NewAppError(errors.ErrCodeValidation, "Room occupancy must be between 0 and capacity", nil)
	}
	if room.Price < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Room price must not be negative", nil)
	}
	if err := room.ValidateStatus(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Room status is not valid", err)
	}
	return nil
}

// ValidateFee validates a fee record.
func ValidateFee(fee *models.Fee) error {
	if fee.StudentID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Student ID is required", nil)
	}
	if fee.Type < constants.FeeTypeTuition || fee.Type > constants.FeeTypeOther {
		return errors.NewAppError(errors.ErrCodeValidation, "Fee type is not valid", nil)
	}
	if fee.Amount <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Fee amount must be positive", nil)
	}
	if fee.DueDate.IsZero() {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Due date is required", nil)
	}
	if fee.AcademicYear != "" && !yearRegex.MatchString(fee.AcademicYear) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Academic year must look like 2025-26", nil)
	}
	if err := fee.ValidateStatus(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Fee status is not valid", err)
	}
	return nil
}

// ValidateExam validates an exam definition.
func ValidateExam(exam *models.Exam) error {
	if exam.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Exam name is required", nil)
	}
	if exam.Subject == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Subject is required", nil)
	}
	if exam.Date.IsZero() {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Exam date is required", nil)
	}
	if exam.MaxMarks <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidMarks, "Maximum marks must be positive", nil)
	}
	if exam.PassingMarks < 0 || exam.PassingMarks > exam.MaxMarks {
		return errors.NewAppError(errors.ErrCodeInvalidMarks, "Passing marks must be between 0 and maximum marks", nil)
	}
	return nil
}

// ValidateResult validates a result against its exam.
func ValidateResult(result *models.Result, exam *models.Exam) error {
	if result.ExamID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Exam ID is required", nil)
	}
	if result.StudentID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Student ID is required", nil)
	}
	if result.MarksObtained < 0 || result.MarksObtained > exam.MaxMarks {
		return errors.NewAppError(errors.ErrCodeInvalidMarks, "Marks must be between 0 and maximum marks", nil)
	}
	return nil
}

// ValidateEmail checks a bare email address.
func ValidateEmail(email string) error {
	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email is not valid", nil)
	}
	return nil
}

// ValidatePhone checks a bare phone number.
func ValidatePhone(phone string) error {
	if !isValidPhone(phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Phone number is not valid", nil)
	}
	return nil
}

// ValidateDateRange checks that from precedes to when both are set.
func ValidateDateRange(from, to time.Time) error {
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return errors.NewAppError(errors.ErrCodeValidation, "End date must be after start date", nil)
	}
	return nil
}

func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func isValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}
