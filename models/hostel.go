package models

import (
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/PrinceS45/SIH-CampusOne-sub000/constants"
)

type Hostel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name        string    `gorm:"unique;not null" json:"name"`
	Type        int       `gorm:"not null" json:"type"`
	Address     string    `gorm:"type:text" json:"address"`
	WardenName  string    `json:"wardenName"`
	WardenPhone string    `gorm:"type:varchar(11)" json:"wardenPhone"`
	WardenEmail string    `json:"wardenEmail"`

	// Room counts are denormalized and always re-derived from the rooms
	// table, never incremented in place.
	TotalRooms     int `gorm:"default:0" json:"totalRooms"`
	OccupiedRooms  int `gorm:"default:0" json:"occupiedRooms"`
	AvailableRooms int `gorm:"default:0" json:"availableRooms"`

	Amenities pq.StringArray `gorm:"type:text[]" json:"amenities"`
	Rules     pq.StringArray `gorm:"type:text[]" json:"rules"`
	Status    int            `gorm:"default:1" json:"status"`
	Rooms     []Room         `json:"rooms,omitempty" gorm:"foreignKey:HostelID"`
}

func (h *Hostel) ValidateType() error {
	if h.Type != constants.HostelTypeBoys && h.Type != constants.HostelTypeGirls {
		return fmt.Errorf("invalid hostel type: %d", h.Type)
	}
	return nil
}

// AcceptsGender reports whether a student of the given gender may live here.
func (h *Hostel) AcceptsGender(gender int) bool {
	switch h.Type {
	case constants.HostelTypeBoys:
		return gender == constants.GenderMale
	case constants.HostelTypeGirls:
		return gender == constants.GenderFemale
	}
	return false
}

// OccupancyRate returns occupied rooms as a fraction of total rooms.
func (h *Hostel) OccupancyRate() float64 {
	if h.TotalRooms == 0 {
		return 0
	}
	return float64(h.OccupiedRooms) / float64(h.TotalRooms)
}
