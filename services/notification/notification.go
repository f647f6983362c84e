package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

// Service pushes short event messages to connected clients.
type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// AllocationMessage formats the broadcast for a room allocation event.
func AllocationMessage(studentCode, roomNumber, hostelName string) string {
	return fmt.Sprintf("Student %s allocated to room %s in %s", studentCode, roomNumber, hostelName)
}

// DeallocationMessage formats the broadcast for a room release event.
func DeallocationMessage(studentCode, roomNumber, hostelName string) string {
	return fmt.Sprintf("Student %s vacated room %s in %s", studentCode, roomNumber, hostelName)
}
