package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/PrinceS45/SIH-CampusOne-sub000/dto"
)

const lastFiltersTTL = 30 * time.Minute

// SaveLastFilters remembers a session's student list filters.
func SaveLastFilters(ctx context.Context, rdb *redis.Client, key string, filters *dto.StudentSearchFilters) error {
	b, _ := json.Marshal(filters)
	return rdb.Set(ctx, "last_filters:"+key, b, lastFiltersTTL).Err()
}

// GetLastFilters loads a session's remembered filters.
func GetLastFilters(ctx context.Context, rdb *redis.Client, key string) (*dto.StudentSearchFilters, error) {
	val, err := rdb.Get(ctx, "last_filters:"+key).Result()
	if err != nil {
		return nil, err
	}
	var filters dto.StudentSearchFilters
	if err := json.Unmarshal([]byte(val), &filters); err != nil {
		return nil, err
	}
	return &filters, nil
}

// ClearLastFilters drops a session's remembered filters.
func ClearLastFilters(ctx context.Context, rdb *redis.Client, key string) error {
	return rdb.Del(ctx, "last_filters:"+key).Err()
}

// MergeFilters overlays new filter values on the remembered ones. Unset
// fields keep the old value.
func MergeFilters(old *dto.StudentSearchFilters, next *dto.StudentSearchFilters) *dto.StudentSearchFilters {
	next.Course = orString(next.Course, old.Course)
	next.Branch = orString(next.Branch, old.Branch)
	next.Name = orString(next.Name, old.Name)
	next.Semester = orIntPointer(next.Semester, old.Semester)
	next.Status = orIntPointer(next.Status, old.Status)
	next.HostelID = orUintPointer(next.HostelID, old.HostelID)
	return next
}

func orString(newVal, oldVal string) string {
	if newVal != "" {
		return newVal
	}
	return oldVal
}

func orIntPointer(newVal, oldVal *int) *int {
	if newVal != nil {
		return newVal
	}
	return oldVal
}

func orUintPointer(newVal, oldVal *uint) *uint {
	if newVal != nil {
		return newVal
	}
	return oldVal
}
