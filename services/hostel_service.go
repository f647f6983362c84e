package services

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/PrinceS45/SIH-CampusOne-sub000/constants"
	"github.com/PrinceS45/SIH-CampusOne-sub000/errors"
	"github.com/PrinceS45/SIH-CampusOne-sub000/models"
	"github.com/PrinceS45/SIH-CampusOne-sub000/services/logger"
	"github.com/PrinceS45/SIH-CampusOne-sub000/validator"
)

// OccupancyCacheKey caches the per-hostel occupancy statistics.
const OccupancyCacheKey = "hostels:occupancy"

const occupancyCacheTTL = 5 * time.Minute

type HostelService struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger logger.Logger
}

type HostelServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger logger.Logger
}

func NewHostelService(opts HostelServiceOptions) *HostelService {
	return &HostelService{
		db:     opts.DB,
		rdb:    opts.Redis,
		logger: opts.Logger,
	}
}

// Create persists a hostel after validation.
func (s *HostelService) Create(ctx context.Context, hostel *models.Hostel) error {
	if err := validator.ValidateHostel(hostel); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Create(hostel).Error; err != nil {
		return err
	}
	s.invalidateOccupancyCache(ctx)
	return nil
}

// GetByID returns a hostel with its rooms.
func (s *HostelService) GetByID(ctx context.Context, id uint) (*models.Hostel, error) {
	var hostel models.Hostel
	err := s.db.WithContext(ctx).Preload("Rooms").First(&hostel, id).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrHostelNotFound
		}
		return nil, err
	}
	return &hostel, nil
}

// List returns hostels filtered by type and status.
func (s *HostelService) List(ctx context.Context, hostelType, status int) ([]models.Hostel, error) {
	query := s.db.WithContext(ctx).Model(&models.Hostel{})
	if hostelType > 0 {
		query = query.Where("type = ?", hostelType)
	}
	if status > 0 {
		query = query.Where("status = ?", status)
	}

	var hostels []models.Hostel
	err := query.Order("name").Find(&hostels).Error
	return hostels, err
}

// Update applies field changes to a hostel. Room counts cannot be edited;
// they are always derived.
func (s *HostelService) Update(ctx context.Context, id uint, updates map[string]interface{}) (*models.Hostel, error) {
	delete(updates, "id")
	delete(updates, "total_rooms")
	delete(updates, "totalRooms")
	delete(updates, "occupied_rooms")
	delete(updates, "occupiedRooms")
	delete(updates, "available_rooms")
	delete(updates, "availableRooms")
	delete(updates, "created_at")
	delete(updates, "updated_at")

	hostel, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(hostel).Updates(updates).Error; err != nil {
		return nil, err
	}
	s.invalidateOccupancyCache(ctx)
	return s.GetByID(ctx, id)
}

// Delete removes a hostel that has no occupied rooms.
func (s *HostelService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	var occupied int64
	err := s.db.WithContext(ctx).Model(&models.Room{}).
		Where("hostel_id = ? AND current_occupancy > 0", id).
		Count(&occupied).Error
	if err != nil {
		return err
	}
	if occupied > 0 {
		return errors.ErrHostelOccupied
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("hostel_id = ?", id).Delete(&models.Room{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Hostel{}, id).Error; err != nil {
			return err
		}
		s.invalidateOccupancyCache(ctx)
		return nil
	})
}

// RoomFilter narrows the room list for one hostel.
type RoomFilter struct {
	Status        int
	Floor         int
	AvailableOnly bool
}

// ListRooms returns the rooms of a hostel, filtered.
func (s *HostelService) ListRooms(ctx context.Context, hostelID uint, filter RoomFilter) ([]models.Room, error) {
	if _, err := s.GetByID(ctx, hostelID); err != nil {
		return nil, err
	}

	query := s.db.WithContext(ctx).Model(&models.Room{}).Where("hostel_id = ?", hostelID)
	if filter.Status > 0 {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Floor > 0 {
		query = query.Where("floor = ?", filter.Floor)
	}
	if filter.AvailableOnly {
		query = query.Where("status = ? AND current_occupancy < capacity", constants.RoomStatusAvailable)
	}

	var rooms []models.Room
	err := query.Order("room_number").Find(&rooms).Error
	return rooms, err
}

// CreateRoom adds a room under a hostel and refreshes the hostel counts.
func (s *HostelService) CreateRoom(ctx context.Context, room *models.Room) error {
	if err := validator.ValidateRoom(room); err != nil {
		return err
	}
	if _, err := s.GetByID(ctx, room.HostelID); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(room).Error; err != nil {
			return err
		}
		if _, err := (&gormAllocationTx{tx: tx}).RefreshHostelCounts(room.HostelID); err != nil {
			return err
		}
		s.invalidateOccupancyCache(ctx)
		return nil
	})
}

// GetRoom returns one room with its hostel.
func (s *HostelService) GetRoom(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	err := s.db.WithContext(ctx).Preload("Hostel").First(&room, id).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// UpdateRoom applies field changes to a room. Occupancy is owned by the
// allocation service.
func (s *HostelService) UpdateRoom(ctx context.Context, id uint, updates map[string]interface{}) (*models.Room, error) {
	delete(updates, "id")
	delete(updates, "hostel_id")
	delete(updates, "hostelId")
	delete(updates, "current_occupancy")
	delete(updates, "currentOccupancy")
	delete(updates, "created_at")
	delete(updates, "updated_at")

	room, err := s.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Room{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		if _, err := (&gormAllocationTx{tx: tx}).RefreshHostelCounts(room.HostelID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.invalidateOccupancyCache(ctx)
	return s.GetRoom(ctx, id)
}

// ChangeRoomStatus sets a manual status override (maintenance/reserved) or
// puts the room back in rotation by re-deriving from occupancy.
func (s *HostelService) ChangeRoomStatus(ctx context.Context, id uint, status int) (*models.Room, error) {
	room, err := s.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}

	room.Status = status
	if err := room.ValidateStatus(); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidStatus, "Room status is not valid", err)
	}
	if !room.HasManualOverride() {
		room.DeriveStatus()
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Room{}).Where("id = ?", id).
			Update("status", room.Status).Error; err != nil {
			return err
		}
		if _, err := (&gormAllocationTx{tx: tx}).RefreshHostelCounts(room.HostelID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.invalidateOccupancyCache(ctx)
	return room, nil
}

// DeleteRoom removes a room that nobody occupies.
func (s *HostelService) DeleteRoom(ctx context.Context, id uint) error {
	room, err := s.GetRoom(ctx, id)
	if err != nil {
		return err
	}
	if room.CurrentOccupancy > 0 {
		return errors.ErrRoomOccupied
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Room{}, id).Error; err != nil {
			return err
		}
		if _, err := (&gormAllocationTx{tx: tx}).RefreshHostelCounts(room.HostelID); err != nil {
			return err
		}
		s.invalidateOccupancyCache(ctx)
		return nil
	})
}

// HostelOccupancy is one row of the occupancy statistics endpoint.
type HostelOccupancy struct {
	Name           string  `json:"name"`
	Type           int     `json:"type"`
	TotalRooms     int     `json:"totalRooms"`
	OccupiedRooms  int     `json:"occupiedRooms"`
	AvailableRooms int     `json:"availableRooms"`
	OccupancyRate  float64 `json:"occupancyRate"`
}

// OccupancyStats returns per-hostel room counts, cached for a few minutes.
func (s *HostelService) OccupancyStats(ctx context.Context) ([]HostelOccupancy, error) {
	if s.rdb != nil {
		var cached []HostelOccupancy
		if err := GetFromRedis(ctx, s.rdb, OccupancyCacheKey, &cached); err == nil && len(cached) > 0 {
			return cached, nil
		}
	}

	var hostels []models.Hostel
	if err := s.db.WithContext(ctx).Order("name").Find(&hostels).Error; err != nil {
		return nil, err
	}

	stats := make([]HostelOccupancy, 0, len(hostels))
	for _, h := range hostels {
		stats = append(stats, HostelOccupancy{
			Name:           h.Name,
			Type:           h.Type,
			TotalRooms:     h.TotalRooms,
			OccupiedRooms:  h.OccupiedRooms,
			AvailableRooms: h.AvailableRooms,
			OccupancyRate:  h.OccupancyRate(),
		})
	}

	if s.rdb != nil {
		if err := SetToRedis(ctx, s.rdb, OccupancyCacheKey, stats, occupancyCacheTTL); err != nil {
			s.logger.Error("could not cache occupancy stats: %v", err)
		}
	}
	return stats, nil
}

// ReconcileAllCounts re-derives room counts for every hostel. Run by the
// nightly cron and safe to run at any time.
func (s *HostelService) ReconcileAllCounts(ctx context.Context) error {
	var ids []uint
	if err := s.db.WithContext(ctx).Model(&models.Hostel{}).Pluck("id", &ids).Error; err != nil {
		return err
	}

	for _, id := range ids {
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			_, err := (&gormAllocationTx{tx: tx}).RefreshHostelCounts(id)
			return err
		})
		if err != nil {
			s.logger.Error("reconcile hostel %d failed: %v", id, err)
			return err
		}
	}
	s.invalidateOccupancyCache(ctx)
	s.logger.Info("reconciled room counts for %d hostels", len(ids))
	return nil
}

// InvalidateOccupancyCache drops the cached occupancy stats. Called after
// allocation mutations as well.
func (s *HostelService) InvalidateOccupancyCache(ctx context.Context) {
	s.invalidateOccupancyCache(ctx)
}

func (s *HostelService) invalidateOccupancyCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := DeleteFromRedis(ctx, s.rdb, OccupancyCacheKey); err != nil {
		s.logger.Error("could not invalidate occupancy cache: %v", err)
	}
}
