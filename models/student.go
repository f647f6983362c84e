package models

import (
	"fmt"
	"time"

	"github.com/PrinceS45/SIH-CampusOne-sub000/constants"
)

type Student struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	StudentCode   string    `gorm:"uniqueIndex;type:varchar(20);not null" json:"studentId"`
	Name          string    `gorm:"not null" json:"name"`
	Email         string    `gorm:"unique" json:"email"`
	PhoneNumber   string    `gorm:"type:varchar(11)" json:"phoneNumber"`
	Gender        int       `json:"gender"`
	DateOfBirth   string    `gorm:"default:'01/01/2000'" json:"dateOfBirth"`
	Course        string    `json:"course"`
	Branch        string    `json:"branch"`
	Semester      int       `gorm:"default:1" json:"semester"`
	Status        int       `gorm:"default:1" json:"status"`
	AdmissionDate time.Time `json:"admissionDate"`
	GuardianName  string    `json:"guardianName"`
	GuardianPhone string    `gorm:"type:varchar(11)" json:"guardianPhone"`
	Address       string    `gorm:"type:text" json:"address"`

	// Hostel allocation. Both are set or both are null.
	HostelID *uint   `json:"hostelId,omitempty"`
	RoomID   *uint   `json:"roomId,omitempty"`
	Hostel   *Hostel `json:"hostel,omitempty" gorm:"foreignKey:HostelID"`
	Room     *Room   `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}

func (s *Student) ValidateStatus() error {
	if s.Status < constants.StudentStatusActive || s.Status > constants.StudentStatusSuspended {
		return fmt.Errorf("invalid status: %d, must be between %d and %d",
			s.Status, constants.StudentStatusActive, constants.StudentStatusSuspended)
	}
	return nil
}

// IsAllocated reports whether the student currently holds a hostel room.
func (s *Student) IsAllocated() bool {
	return s.HostelID != nil && s.RoomID != nil
}
