package dto

import (
	"time"

	"github.com/PrinceS45/SIH-CampusOne-sub000/models"
)

type CreateExamRequest struct {
	Name         string    `json:"name" binding:"required"`
	Course       string    `json:"course" binding:"required"`
	Branch       string    `json:"branch"`
	Semester     int       `json:"semester" binding:"omitempty,min=1,max=12"`
	Subject      string    `json:"subject" binding:"required"`
	Date         time.Time `json:"date"`
	MaxMarks     float64   `json:"maxMarks" binding:"omitempty,gt=0"`
	PassingMarks float64   `json:"passingMarks" binding:"omitempty,gt=0"`
}

func (r *CreateExamRequest) ToModel() *models.Exam {
	exam := &models.Exam{
		Name:         r.Name,
		Course:       r.Course,
		Branch:       r.Branch,
		Semester:     r.Semester,
		Subject:      r.Subject,
		Date:         r.Date,
		MaxMarks:     r.MaxMarks,
		PassingMarks: r.PassingMarks,
	}
	if exam.MaxMarks == 0 {
		exam.MaxMarks = 100
	}
	if exam.PassingMarks == 0 {
		exam.PassingMarks = 35
	}
	return exam
}

type RecordResultRequest struct {
	StudentID     uint    `json:"studentId" binding:"required"`
	MarksObtained float64 `json:"marksObtained" binding:"min=0"`
}
