package dto

import (
	"time"

	"github.com/PrinceS45/SIH-CampusOne-sub000/models"
)

type CreateFeeRequest struct {
	StudentID    uint      `json:"studentId" binding:"required"`
	Type         int       `json:"type" binding:"required,min=1,max=5"`
	Amount       float64   `json:"amount" binding:"required,gt=0"`
	DueDate      time.Time `json:"dueDate" binding:"required"`
	Semester     int       `json:"semester" binding:"omitempty,min=1,max=12"`
	AcademicYear string    `json:"academicYear" binding:"omitempty,academicyear"`
}

func (r *CreateFeeRequest) ToModel() *models.Fee {
	return &models.Fee{
		StudentID:    r.StudentID,
		Type:         r.Type,
		Amount:       r.Amount,
		DueDate:      r.DueDate,
		Semester:     r.Semester,
		AcademicYear: r.AcademicYear,
	}
}

type CollectFeeRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}
