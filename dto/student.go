package dto

import (
	"time"

	"github.com/PrinceS45/SIH-CampusOne-sub000/constants"
	"github.com/PrinceS45/SIH-CampusOne-sub000/models"
)

type CreateStudentRequest struct {
	Name          string    `json:"name" binding:"required"`
	Email         string    `json:"email" binding:"required,email"`
	PhoneNumber   string    `json:"phoneNumber" binding:"omitempty,len=10,numeric"`
	Gender        int       `json:"gender" binding:"required,min=1,max=2"`
	DateOfBirth   string    `json:"dateOfBirth"`
	Course        string    `json:"course" binding:"required"`
	Branch        string    `json:"branch"`
	Semester      int       `json:"semester" binding:"omitempty,min=1,max=12"`
	AdmissionDate time.Time `json:"admissionDate"`
	GuardianName  string    `json:"guardianName"`
	GuardianPhone string    `json:"guardianPhone" binding:"omitempty,len=10,numeric"`
	Address       string    `json:"address"`
}

// ToModel builds the student record. The student code is issued by the
// service, never taken from the request.
func (r *CreateStudentRequest) ToModel() *models.Student {
	semester := r.Semester
	if semester == 0 {
		semester = 1
	}
	return &models.Student{
		Name:          r.Name,
		Email:         r.Email,
		PhoneNumber:   r.PhoneNumber,
		Gender:        r.Gender,
		DateOfBirth:   r.DateOfBirth,
		Course:        r.Course,
		Branch:        r.Branch,
		Semester:      semester,
		Status:        constants.StudentStatusActive,
		AdmissionDate: r.AdmissionDate,
		GuardianName:  r.GuardianName,
		GuardianPhone: r.GuardianPhone,
		Address:       r.Address,
	}
}

type ChangeStatusRequest struct {
	Status int `json:"status" binding:"required"`
}
