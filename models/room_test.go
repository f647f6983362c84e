package models

import (
	"testing"

	"github.com/PrinceS45/SIH-CampusOne-sub000/constants"
)

func TestRoomDeriveStatus(t *testing.T) {
	tests := []struct {
		name string
		room Room
		want int
	}{
		{
			name: "empty room stays available",
			room: Room{Capacity: 2, CurrentOccupancy: 0, Status: constants.RoomStatusAvailable},
			want: constants.RoomStatusAvailable,
		},
		{
			name: "partially occupied room stays available",
			room: Room{Capacity: 2, CurrentOccupancy: 1, Status: constants.RoomStatusAvailable},
			want: constants.RoomStatusAvailable,
		},
		{
			name: "full room flips to occupied",
			room: Room{Capacity: 2, CurrentOccupancy: 2, Status: constants.RoomStatusAvailable},
			want: constants.RoomStatusOccupied,
		},
		{
			name: "emptied room flips back to available",
			room: Room{Capacity: 1, CurrentOccupancy: 0, Status: constants.RoomStatusOccupied},
			want: constants.RoomStatusAvailable,
		},
		{
			name: "maintenance override is untouched",
			room: Room{Capacity: 2, CurrentOccupancy: 2, Status: constants.RoomStatusMaintenance},
			want: constants.RoomStatusMaintenance,
		},
		{
			name: "reserved override is untouched",
			room: Room{Capacity: 2, CurrentOccupancy: 0, Status: constants.RoomStatusReserved},
			want: constants.RoomStatusReserved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.room.DeriveStatus()
			if tt.room.Status != tt.want {
				t.Errorf("status = %d, want %d", tt.room.Status, tt.want)
			}
		})
	}
}

func TestRoomIsAvailable(t *testing.T) {
	room := Room{Capacity: 2, CurrentOccupancy: 1, Status: constants.RoomStatusAvailable}
	if !room.IsAvailable() {
		t.Error("room with a free bed should be available")
	}

	room.CurrentOccupancy = 2
	if room.IsAvailable() {
		t.Error("full room should not be available")
	}

	room = Room{Capacity: 2, CurrentOccupancy: 0, Status: constants.RoomStatusMaintenance}
	if room.IsAvailable() {
		t.Error("maintenance room should not be available")
	}
}

func TestHostelAcceptsGender(t *testing.T) {
	boys := Hostel{Type: constants.HostelTypeBoys}
	girls := Hostel{Type: constants.HostelTypeGirls}

	if !boys.AcceptsGender(constants.GenderMale) {
		t.Error("boys hostel should accept male students")
	}
	if boys.AcceptsGender(constants.GenderFemale) {
		t.Error("boys hostel should reject female students")
	}
	if !girls.AcceptsGender(constants.GenderFemale) {
		t.Error("girls hostel should accept female students")
	}
	if girls.AcceptsGender(constants.GenderMale) {
		t.Error("girls hostel should reject male students")
	}
}

func TestHostelOccupancyRate(t *testing.T) {
	h := Hostel{TotalRooms: 4, OccupiedRooms: 1}
	if got := h.OccupancyRate(); got != 0.25 {
		t.Errorf("rate = %v, want 0.25", got)
	}

	empty := Hostel{}
	if got := empty.OccupancyRate(); got != 0 {
		t.Errorf("rate of empty hostel = %v, want 0", got)
	}
}
