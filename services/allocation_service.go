package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/PrinceS45/SIH-CampusOne-sub000/constants"
	"github.com/PrinceS45/SIH-CampusOne-sub000/errors"
	"github.com/PrinceS45/SIH-CampusOne-sub000/models"
	"github.com/PrinceS45/SIH-CampusOne-sub000/services/audit"
	"github.com/PrinceS45/SIH-CampusOne-sub000/services/logger"
	"github.com/PrinceS45/SIH-CampusOne-sub000/services/notification"
)

// AllocationService maintains the occupancy invariants across Student,
// Room and Hostel when a student moves in or out of a room. All three
// writes plus the hostel count refresh happen in one transaction; the
// room row is locked so concurrent requests cannot overshoot capacity.
type AllocationService struct {
	store    AllocationStore
	logger   logger.Logger
	audit    audit.Service
	notifier notification.Service
}

type AllocationServiceOptions struct {
	DB       *gorm.DB
	Logger   logger.Logger
	Audit    audit.Service
	Notifier notification.Service
}

func NewAllocationService(opts AllocationServiceOptions) *AllocationService {
	return &AllocationService{
		store:    NewGormAllocationStore(opts.DB),
		logger:   opts.Logger,
		audit:    opts.Audit,
		notifier: opts.Notifier,
	}
}

// NewAllocationServiceWithStore wires a custom store.
func NewAllocationServiceWithStore(store AllocationStore, log logger.Logger, auditSvc audit.Service, notifier notification.Service) *AllocationService {
	return &AllocationService{
		store:    store,
		logger:   log,
		audit:    auditSvc,
		notifier: notifier,
	}
}

// Allocate assigns the room to the student identified by their student code.
// Preconditions, checked in order: student exists, room exists, room is
// available, student holds no room, hostel type matches student gender.
func (s *AllocationService) Allocate(ctx context.Context, studentCode string, roomID uint, performedBy uint) (*models.Student, *models.Room, error) {
	var (
		student *models.Student
		room    *models.Room
	)

	err := s.store.WithinTx(ctx, func(tx AllocationTx) error {
		var err error
		student, err = tx.StudentByCode(studentCode)
		if err != nil {
			return err
		}

		room, err = tx.RoomForUpdate(roomID)
		if err != nil {
			return err
		}

		if !room.IsAvailable() {
			return errors.ErrRoomNotAvailable
		}
		if student.IsAllocated() {
			return errors.ErrStudentAllocated
		}
		if !room.Hostel.AcceptsGender(student.Gender) {
			return errors.ErrGenderMismatch
		}

		student.HostelID = &room.HostelID
		student.RoomID = &room.ID
		room.CurrentOccupancy++
		room.DeriveStatus()

		if err := tx.SaveRoom(room); err != nil {
			return err
		}
		if err := tx.SaveStudent(student); err != nil {
			return err
		}

		hostel, err := tx.RefreshHostelCounts(room.HostelID)
		if err != nil {
			return err
		}
		room.Hostel = hostel
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("allocated student %s to room %s in %s", student.StudentCode, room.RoomNumber, room.Hostel.Name)
	s.recordAudit(audit.Entry{
		Action:      constants.AuditActionAllocate,
		Module:      constants.AuditModuleHostel,
		Description: fmt.Sprintf("Allocated student %s to room %s in hostel %s", student.StudentCode, room.RoomNumber, room.Hostel.Name),
		PerformedBy: performedBy,
		TargetID:    student.ID,
		TargetModel: "Student",
		Changes: map[string]interface{}{
			"hostelId":  room.HostelID,
			"roomId":    room.ID,
			"occupancy": room.CurrentOccupancy,
		},
	})
	s.broadcast(notification.AllocationMessage(student.StudentCode, room.RoomNumber, room.Hostel.Name))

	return student, room, nil
}

// Deallocate releases the student's current room. A room already at zero
// occupancy is treated as stale data and repaired rather than rejected.
func (s *AllocationService) Deallocate(ctx context.Context, studentCode string, performedBy uint) (*models.Student, *models.Room, error) {
	var (
		student *models.Student
		room    *models.Room
	)

	err := s.store.WithinTx(ctx, func(tx AllocationTx) error {
		var err error
		student, err = tx.StudentByCode(studentCode)
		if err != nil {
			return err
		}

		if !student.IsAllocated() {
			return errors.ErrNoAllocation
		}

		room, err = tx.RoomForUpdate(*student.RoomID)
		if err != nil {
			return err
		}

		student.HostelID = nil
		student.RoomID = nil
		if room.CurrentOccupancy > 0 {
			room.CurrentOccupancy--
		}
		room.DeriveStatus()

		if err := tx.SaveRoom(room); err != nil {
			return err
		}
		if err := tx.SaveStudent(student); err != nil {
			return err
		}

		hostel, err := tx.RefreshHostelCounts(room.HostelID)
		if err != nil {
			return err
		}
		room.Hostel = hostel
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("deallocated student %s from room %s", student.StudentCode, room.RoomNumber)
	s.recordAudit(audit.Entry{
		Action:      constants.AuditActionDeallocate,
		Module:      constants.AuditModuleHostel,
		Description: fmt.Sprintf("Deallocated student %s from room %s in hostel %s", student.StudentCode, room.RoomNumber, room.Hostel.Name),
		PerformedBy: performedBy,
		TargetID:    student.ID,
		TargetModel: "Student",
		Changes: map[string]interface{}{
			"roomId":    room.ID,
			"occupancy": room.CurrentOccupancy,
		},
	})
	s.broadcast(notification.DeallocationMessage(student.StudentCode, room.RoomNumber, room.Hostel.Name))

	return student, room, nil
}

func (s *AllocationService) recordAudit(e audit.Entry) {
	if s.audit == nil {
		return
	}
	s.audit.Record(e)
}

func (s *AllocationService) broadcast(message string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.SendMessage(message); err != nil {
		s.logger.Error("broadcast failed: %v", err)
	}
}
