package services

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/PrinceS45/SIH-CampusOne-sub000/constants"
	"github.com/PrinceS45/SIH-CampusOne-sub000/errors"
	"github.com/PrinceS45/SIH-CampusOne-sub000/models"
)

// AllocationTx is the slice of storage the allocation service touches
// inside one transaction.
type AllocationTx interface {
	StudentByCode(code string) (*models.Student, error)
	RoomForUpdate(id uint) (*models.Room, error)
	SaveStudent(student *models.Student) error
	SaveRoom(room *models.Room) error
	RefreshHostelCounts(hostelID uint) (*models.Hostel, error)
}

// AllocationStore runs a function inside a single transaction.
type AllocationStore interface {
	WithinTx(ctx context.Context, fn func(tx AllocationTx) error) error
}

type gormAllocationStore struct {
	db *gorm.DB
}

// NewGormAllocationStore builds the GORM-backed allocation store.
func NewGormAllocationStore(db *gorm.DB) AllocationStore {
	return &gormAllocationStore{db: db}
}

func (s *gormAllocationStore) WithinTx(ctx context.Context, fn func(tx AllocationTx) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormAllocationTx{tx: tx})
	})
}

type gormAllocationTx struct {
	tx *gorm.DB
}

func (t *gormAllocationTx) StudentByCode(code string) (*models.Student, error) {
	var student models.Student
	err := t.tx.Where("student_code = ?", code).First(&student).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrStudentNotFound
		}
		return nil, err
	}
	return &student, nil
}

// RoomForUpdate locks the room row so a concurrent allocation cannot read
// the same free capacity. The hostel is loaded alongside for the gender
// compatibility check.
func (t *gormAllocationTx) RoomForUpdate(id uint) (*models.Room, error) {
	var room models.Room
	err := t.tx.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "rooms"}}).
		First(&room, id).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrRoomNotFound
		}
		return nil, err
	}

	var hostel models.Hostel
	if err := t.tx.First(&hostel, room.HostelID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrHostelNotFound
		}
		return nil, err
	}
	room.Hostel = &hostel
	return &room, nil
}

func (t *gormAllocationTx) SaveStudent(student *models.Student) error {
	return t.tx.Model(&models.Student{}).Where("id = ?", student.ID).
		Select("hostel_id", "room_id").
		Updates(map[string]interface{}{
			"hostel_id": student.HostelID,
			"room_id":   student.RoomID,
		}).Error
}

func (t *gormAllocationTx) SaveRoom(room *models.Room) error {
	return t.tx.Model(&models.Room{}).Where("id = ?", room.ID).
		Updates(map[string]interface{}{
			"current_occupancy": room.CurrentOccupancy,
			"status":            room.Status,
		}).Error
}

// RefreshHostelCounts re-derives the denormalized room counts from the
// rooms table. Idempotent; safe to call after any room mutation.
func (t *gormAllocationTx) RefreshHostelCounts(hostelID uint) (*models.Hostel, error) {
	type statusCount struct {
		Status int
		Count  int
	}
	var counts []statusCount
	err := t.tx.Model(&models.Room{}).
		Select("status, count(*) as count").
		Where("hostel_id = ?", hostelID).
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	total, occupied, available := 0, 0, 0
	for _, sc := range counts {
		total += sc.Count
		switch sc.Status {
		case constants.RoomStatusOccupied:
			occupied += sc.Count
		case constants.RoomStatusAvailable:
			available += sc.Count
		}
	}

	updates := map[string]interface{}{
		"total_rooms":     total,
		"occupied_rooms":  occupied,
		"available_rooms": available,
	}
	if err := t.tx.Model(&models.Hostel{}).Where("id = ?", hostelID).Updates(updates).Error; err != nil {
		return nil, err
	}

	var hostel models.Hostel
	if err := t.tx.First(&hostel, hostelID).Error; err != nil {
		return nil, err
	}
	return &hostel, nil
}
