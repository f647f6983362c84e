package models

import (
	"fmt"
	"time"

	"github.com/PrinceS45/SIH-CampusOne-sub000/constants"
)

type Fee struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	StudentID     uint       `gorm:"not null;index" json:"studentId"`
	Type          int        `gorm:"not null" json:"type"`
	Amount        float64    `gorm:"not null" json:"amount"`
	Status        int        `gorm:"default:0" json:"status"`
	DueDate       time.Time  `json:"dueDate"`
	PaidDate      *time.Time `json:"paidDate,omitempty"`
	PaymentMethod string     `json:"paymentMethod"`
	ReceiptNumber string     `gorm:"uniqueIndex;type:varchar(40)" json:"receiptNumber"`
	Semester      int        `json:"semester"`
	AcademicYear  string     `gorm:"type:varchar(9)" json:"academicYear"`

	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID"`
}

func (f *Fee) ValidateStatus() error {
	if f.Status < constants.FeeStatusPending || f.Status > constants.FeeStatusWaived {
		return fmt.Errorf("invalid status: %d, must be between %d and %d",
			f.Status, constants.FeeStatusPending, constants.FeeStatusWaived)
	}
	return nil
}

// IsOverdue reports whether an unpaid fee has passed its due date.
func (f *Fee) IsOverdue(now time.Time) bool {
	return f.Status == constants.FeeStatusPending && now.After(f.DueDate)
}
