package dto

import (
	"github.com/lib/pq"

	"github.com/PrinceS45/SIH-CampusOne-sub000/models"
)

type CreateHostelRequest struct {
	Name        string   `json:"name" binding:"required"`
	Type        int      `json:"type" binding:"required,min=1,max=2"`
	Address     string   `json:"address"`
	WardenName  string   `json:"wardenName"`
	WardenPhone string   `json:"wardenPhone" binding:"omitempty,len=10,numeric"`
	WardenEmail string   `json:"wardenEmail" binding:"omitempty,email"`
	Amenities   []string `json:"amenities"`
	Rules       []string `json:"rules"`
}

func (r *CreateHostelRequest) ToModel() *models.Hostel {
	return &models.Hostel{
		Name:        r.Name,
		Type:        r.Type,
		Address:     r.Address,
		WardenName:  r.WardenName,
		WardenPhone: r.WardenPhone,
		WardenEmail: r.WardenEmail,
		Amenities:   pq.StringArray(r.Amenities),
		Rules:       pq.StringArray(r.Rules),
	}
}

type CreateRoomRequest struct {
	RoomNumber string  `json:"roomNumber" binding:"required"`
	Floor      int     `json:"floor"`
	Capacity   int     `json:"capacity" binding:"required,min=1,max=6"`
	Price      float64 `json:"price" binding:"omitempty,min=0"`
}

func (r *CreateRoomRequest) ToModel(hostelID uint) *models.Room {
	return &models.Room{
		HostelID:   hostelID,
		RoomNumber: r.RoomNumber,
		Floor:      r.Floor,
		Capacity:   r.Capacity,
		Price:      r.Price,
	}
}

type RoomStatusRequest struct {
	Status int `json:"status" binding:"required,min=1,max=4"`
}

// AllocateRequest asks for a bed in a specific room for a student,
// identified by business key.
type AllocateRequest struct {
	StudentCode string `json:"studentId" binding:"required"`
	RoomID      uint   `json:"roomId" binding:"required"`
}

type DeallocateRequest struct {
	StudentCode string `json:"studentId" binding:"required"`
}
