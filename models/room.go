package models

import (
	"fmt"
	"time"

	"github.com/PrinceS45/SIH-CampusOne-sub000/constants"
)

type Room struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	HostelID         uint      `gorm:"not null;uniqueIndex:idx_hostel_room_number" json:"hostelId"`
	RoomNumber       string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_hostel_room_number" json:"roomNumber"`
	Floor            int       `json:"floor"`
	Capacity         int       `gorm:"default:1" json:"capacity"`
	CurrentOccupancy int       `gorm:"default:0" json:"currentOccupancy"`
	Status           int       `gorm:"default:1" json:"status"`
	Price            float64   `json:"price"`

	Hostel   *Hostel   `json:"hostel,omitempty" gorm:"foreignKey:HostelID"`
	Students []Student `json:"students,omitempty" gorm:"foreignKey:RoomID"`
}

func (r *Room) ValidateStatus() error {
	if r.Status < constants.RoomStatusAvailable || r.Status > constants.RoomStatusReserved {
		return fmt.Errorf("invalid status: %d, must be between %d and %d",
			r.Status, constants.RoomStatusAvailable, constants.RoomStatusReserved)
	}
	return nil
}

// HasManualOverride reports whether the room was taken out of rotation by
// hand. Allocation never changes these statuses.
func (r *Room) HasManualOverride() bool {
	return r.Status == constants.RoomStatusMaintenance || r.Status == constants.RoomStatusReserved
}

// IsAvailable reports whether the room can take one more student.
func (r *Room) IsAvailable() bool {
	return r.Status == constants.RoomStatusAvailable && r.CurrentOccupancy < r.Capacity
}

// IsFull reports whether the room is at capacity.
func (r *Room) IsFull() bool {
	return r.CurrentOccupancy >= r.Capacity
}

// DeriveStatus recomputes the status from occupancy. A partially occupied
// room stays available; it flips to occupied only once full. Manual
// maintenance/reserved overrides are left untouched.
func (r *Room) DeriveStatus() {
	if r.HasManualOverride() {
		return
	}
	if r.IsFull() {
		r.Status = constants.RoomStatusOccupied
	} else {
		r.Status = constants.RoomStatusAvailable
	}
}
