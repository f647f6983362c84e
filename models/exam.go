package models

import (
	"time"
)

type Exam struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name         string    `gorm:"not null" json:"name"`
	Course       string    `json:"course"`
	Branch       string    `json:"branch"`
	Semester     int       `json:"semester"`
	Subject      string    `gorm:"not null" json:"subject"`
	Date         time.Time `json:"date"`
	MaxMarks     float64   `gorm:"default:100" json:"maxMarks"`
	PassingMarks float64   `gorm:"default:35" json:"passingMarks"`

	Results []Result `json:"results,omitempty" gorm:"foreignKey:ExamID"`
}

// Result stores a student's marks for one exam.
type Result struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	ExamID        uint      `gorm:"not null;index;uniqueIndex:idx_exam_student" json:"examId"`
	StudentID     uint      `gorm:"not null;index;uniqueIndex:idx_exam_student" json:"studentId"`
	MarksObtained float64   `gorm:"not null" json:"marksObtained"`
	Grade         string    `gorm:"type:varchar(2)" json:"grade"`
	Passed        bool      `json:"passed"`

	Exam    *Exam    `json:"exam,omitempty" gorm:"foreignKey:ExamID"`
	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID"`
}

// GradeFor maps a percentage to a letter grade.
func GradeFor(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A+"
	case percentage >= 80:
		return "A"
	case percentage >= 70:
		return "B"
	case percentage >= 60:
		return "C"
	case percentage >= 50:
		return "D"
	case percentage >= 35:
		return "E"
	default:
		return "F"
	}
}
