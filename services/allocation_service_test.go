package services

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/PrinceS45/SIH-CampusOne-sub000/constants"
	"github.com/PrinceS45/SIH-CampusOne-sub000/errors"
	"github.com/PrinceS45/SIH-CampusOne-sub000/models"
	"github.com/PrinceS45/SIH-CampusOne-sub000/services/logger"
)

// memStore is an in-memory AllocationStore. A failed transaction restores
// the previous state, mirroring a rollback.
type memStore struct {
	students map[string]*models.Student
	rooms    map[uint]*models.Room
	hostels  map[uint]*models.Hostel
}

func newMemStore() *memStore {
	return &memStore{
		students: make(map[string]*models.Student),
		rooms:    make(map[uint]*models.Room),
		hostels:  make(map[uint]*models.Hostel),
	}
}

func (s *memStore) WithinTx(ctx context.Context, fn func(tx AllocationTx) error) error {
	snapshot := s.clone()
	if err := fn(&memTx{store: s}); err != nil {
		s.students = snapshot.students
		s.rooms = snapshot.rooms
		s.hostels = snapshot.hostels
		return err
	}
	return nil
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for k, v := range s.students {
		st := *v
		c.students[k] = &st
	}
	for k, v := range s.rooms {
		r := *v
		c.rooms[k] = &r
	}
	for k, v := range s.hostels {
		h := *v
		c.hostels[k] = &h
	}
	return c
}

type memTx struct {
	store *memStore
}

func (t *memTx) StudentByCode(code string) (*models.Student, error) {
	st, ok := t.store.students[code]
	if !ok {
		return nil, errors.ErrStudentNotFound
	}
	copy := *st
	return &copy, nil
}

func (t *memTx) RoomForUpdate(id uint) (*models.Room, error) {
	r, ok := t.store.rooms[id]
	if !ok {
		return nil, errors.ErrRoomNotFound
	}
	copy := *r
	if h, ok := t.store.hostels[r.HostelID]; ok {
		hc := *h
		copy.Hostel = &hc
	}
	return &copy, nil
}

func (t *memTx) SaveStudent(student *models.Student) error {
	copy := *student
	t.store.students[student.StudentCode] = &copy
	return nil
}

func (t *memTx) SaveRoom(room *models.Room) error {
	copy := *room
	copy.Hostel = nil
	t.store.rooms[room.ID] = &copy
	return nil
}

func (t *memTx) RefreshHostelCounts(hostelID uint) (*models.Hostel, error) {
	h, ok := t.store.hostels[hostelID]
	if !ok {
		return nil, errors.ErrHostelNotFound
	}
	total, occupied, available := 0, 0, 0
	for _, r := range t.store.rooms {
		if r.HostelID != hostelID {
			continue
		}
		total++
		switch r.Status {
		case constants.RoomStatusOccupied:
			occupied++
		case constants.RoomStatusAvailable:
			available++
		}
	}
	h.TotalRooms = total
	h.OccupiedRooms = occupied
	h.AvailableRooms = available
	copy := *h
	return &copy, nil
}

func newTestService(store AllocationStore) *AllocationService {
	return NewAllocationServiceWithStore(store, logger.NewDefaultLogger(logger.ErrorLevel), nil, nil)
}

func seedStore() *memStore {
	store := newMemStore()
	store.hostels[1] = &models.Hostel{ID: 1, Name: "Aryabhatta", Type: constants.HostelTypeBoys}
	store.hostels[2] = &models.Hostel{ID: 2, Name: "Kalpana", Type: constants.HostelTypeGirls}
	store.rooms[10] = &models.Room{ID: 10, HostelID: 1, RoomNumber: "101", Capacity: 2, Status: constants.RoomStatusAvailable}
	store.rooms[11] = &models.Room{ID: 11, HostelID: 1, RoomNumber: "102", Capacity: 1, Status: constants.RoomStatusAvailable}
	store.rooms[20] = &models.Room{ID: 20, HostelID: 2, RoomNumber: "201", Capacity: 2, Status: constants.RoomStatusAvailable}
	store.students["STU00001"] = &models.Student{ID: 1, StudentCode: "STU00001", Name: "Ravi", Gender: constants.GenderMale}
	store.students["STU00002"] = &models.Student{ID: 2, StudentCode: "STU00002", Name: "Amit", Gender: constants.GenderMale}
	store.students["STU00003"] = &models.Student{ID: 3, StudentCode: "STU00003", Name: "Priya", Gender: constants.GenderFemale}
	return store
}

func TestAllocateUpdatesStudentRoomAndHostel(t *testing.T) {
	store := seedStore()
	svc := newTestService(store)

	student, room, err := svc.Allocate(context.Background(), "STU00001", 10, 1)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}

	if student.HostelID == nil || *student.HostelID != 1 {
		t.Errorf("student hostel ref = %v, want 1", student.HostelID)
	}
	if student.RoomID == nil || *student.RoomID != 10 {
		t.Errorf("student room ref = %v, want 10", student.RoomID)
	}
	if room.CurrentOccupancy != 1 {
		t.Errorf("occupancy = %d, want 1", room.CurrentOccupancy)
	}
	// One of two beds taken: the room stays available.
	if room.Status != constants.RoomStatusAvailable {
		t.Errorf("status = %d, want available", room.Status)
	}
	if got := store.hostels[1].OccupiedRooms; got != 0 {
		t.Errorf("hostel occupied rooms = %d, want 0", got)
	}
}

func TestAllocateFillsRoomAtCapacity(t *testing.T) {
	store := seedStore()
	svc := newTestService(store)

	if _, _, err := svc.Allocate(context.Background(), "STU00001", 11, 1); err != nil {
		t.Fatalf("Allocate: %v", err)
	}

	room := store.rooms[11]
	if room.CurrentOccupancy != 1 {
		t.Errorf("occupancy = %d, want 1", room.CurrentOccupancy)
	}
	if room.Status != constants.RoomStatusOccupied {
		t.Errorf("status = %d, want occupied", room.Status)
	}
	if got := store.hostels[1].OccupiedRooms; got != 1 {
		t.Errorf("hostel occupied rooms = %d, want 1", got)
	}
	if got := store.hostels[1].AvailableRooms; got != 1 {
		t.Errorf("hostel available rooms = %d, want 1", got)
	}
}

func TestAllocateFullRoomFailsWithoutMutation(t *testing.T) {
	store := seedStore()
	svc := newTestService(store)

	if _, _, err := svc.Allocate(context.Background(), "STU00001", 11, 1); err != nil {
		t.Fatalf("first Allocate: %v", err)
	}

	_, _, err := svc.Allocate(context.Background(), "STU00002", 11, 1)
	if !stderrors.Is(err, errors.ErrRoomNotAvailable) {
		t.Fatalf("err = %v, want ErrRoomNotAvailable", err)
	}

	if store.rooms[11].CurrentOccupancy != 1 {
		t.Errorf("occupancy changed on failed allocation: %d", store.rooms[11].CurrentOccupancy)
	}
	if store.students["STU00002"].IsAllocated() {
		t.Error("second student got allocation refs on failure")
	}
}

func TestAllocateTwiceFails(t *testing.T) {
	store := seedStore()
	svc := newTestService(store)

	if _, _, err := svc.Allocate(context.Background(), "STU00001", 10, 1); err != nil {
		t.Fatalf("Allocate: %v", err)
	}

	_, _, err := svc.Allocate(context.Background(), "STU00001", 20, 1)
	if !stderrors.Is(err, errors.ErrStudentAllocated) {
		t.Fatalf("err = %v, want ErrStudentAllocated", err)
	}
	if store.rooms[20].CurrentOccupancy != 0 {
		t.Errorf("target room mutated on failed allocation")
	}
}

func TestAllocateGenderMismatchFails(t *testing.T) {
	store := seedStore()
	svc := newTestService(store)

	_, _, err := svc.Allocate(context.Background(), "STU00003", 10, 1)
	if !stderrors.Is(err, errors.ErrGenderMismatch) {
		t.Fatalf("err = %v, want ErrGenderMismatch", err)
	}
	if store.rooms[10].CurrentOccupancy != 0 {
		t.Errorf("room mutated on gender mismatch")
	}
	if store.students["STU00003"].IsAllocated() {
		t.Error("student got allocation refs on gender mismatch")
	}
}

func TestAllocateUnknownStudentAndRoom(t *testing.T) {
	store := seedStore()
	svc := newTestService(store)

	if _, _, err := svc.Allocate(context.Background(), "STU99999", 10, 1); !stderrors.Is(err, errors.ErrStudentNotFound) {
		t.Errorf("err = %v, want ErrStudentNotFound", err)
	}
	if _, _, err := svc.Allocate(context.Background(), "STU00001", 999, 1); !stderrors.Is(err, errors.ErrRoomNotFound) {
		t.Errorf("err = %v, want ErrRoomNotFound", err)
	}
}

func TestAllocateMaintenanceRoomFails(t *testing.T) {
	store := seedStore()
	store.rooms[10].Status = constants.RoomStatusMaintenance
	svc := newTestService(store)

	_, _, err := svc.Allocate(context.Background(), "STU00001", 10, 1)
	if !stderrors.Is(err, errors.ErrRoomNotAvailable) {
		t.Fatalf("err = %v, want ErrRoomNotAvailable", err)
	}
}

func TestDeallocateRoundTrip(t *testing.T) {
	store := seedStore()
	svc := newTestService(store)

	if _, _, err := svc.Allocate(context.Background(), "STU00001", 11, 1); err != nil {
		t.Fatalf("Allocate: %v", err)
	}

	student, room, err := svc.Deallocate(context.Background(), "STU00001", 1)
	if err != nil {
		t.Fatalf("Deallocate: %v", err)
	}

	if student.IsAllocated() {
		t.Error("student still holds allocation refs")
	}
	if room.CurrentOccupancy != 0 {
		t.Errorf("occupancy = %d, want 0", room.CurrentOccupancy)
	}
	if room.Status != constants.RoomStatusAvailable {
		t.Errorf("status = %d, want available", room.Status)
	}
	if got := store.hostels[1].OccupiedRooms; got != 0 {
		t.Errorf("hostel occupied rooms = %d, want 0", got)
	}

	// The bed is free again for someone else.
	if _, _, err := svc.Allocate(context.Background(), "STU00002", 11, 1); err != nil {
		t.Fatalf("re-Allocate after round trip: %v", err)
	}
}

func TestDeallocateWithoutAllocationFails(t *testing.T) {
	store := seedStore()
	svc := newTestService(store)

	_, _, err := svc.Deallocate(context.Background(), "STU00001", 1)
	if !stderrors.Is(err, errors.ErrNoAllocation) {
		t.Fatalf("err = %v, want ErrNoAllocation", err)
	}
}

func TestDeallocateRepairsZeroOccupancy(t *testing.T) {
	store := seedStore()
	hostelID, roomID := uint(1), uint(10)
	// Stale data: student references a room whose counter is already zero.
	store.students["STU00001"].HostelID = &hostelID
	store.students["STU00001"].RoomID = &roomID
	svc := newTestService(store)

	_, room, err := svc.Deallocate(context.Background(), "STU00001", 1)
	if err != nil {
		t.Fatalf("Deallocate: %v", err)
	}
	if room.CurrentOccupancy != 0 {
		t.Errorf("occupancy = %d, want clamped to 0", room.CurrentOccupancy)
	}
	if store.students["STU00001"].IsAllocated() {
		t.Error("student refs not cleared")
	}
}

func TestAllocateTwoStudentsScenario(t *testing.T) {
	store := seedStore()
	svc := newTestService(store)

	if _, room, err := svc.Allocate(context.Background(), "STU00001", 10, 1); err != nil {
		t.Fatalf("first Allocate: %v", err)
	} else if room.Status != constants.RoomStatusAvailable {
		t.Errorf("after 1/2 beds: status = %d, want available", room.Status)
	}

	_, room, err := svc.Allocate(context.Background(), "STU00002", 10, 1)
	if err != nil {
		t.Fatalf("second Allocate: %v", err)
	}
	if room.CurrentOccupancy != 2 {
		t.Errorf("occupancy = %d, want 2", room.CurrentOccupancy)
	}
	if room.Status != constants.RoomStatusOccupied {
		t.Errorf("after 2/2 beds: status = %d, want occupied", room.Status)
	}
	if got := store.hostels[1].OccupiedRooms; got != 1 {
		t.Errorf("hostel occupied rooms = %d, want 1", got)
	}
}
