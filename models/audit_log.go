package models

import (
	"encoding/json"
	"time"
)

// AuditLog is an append-only record of who performed which mutating action.
type AuditLog struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time       `gorm:"autoCreateTime;index" json:"createdAt"`
	Action      string          `gorm:"type:varchar(20);not null;index" json:"action"`
	Module      string          `gorm:"type:varchar(20);not null;index" json:"module"`
	Description string          `gorm:"type:text" json:"description"`
	PerformedBy uint            `gorm:"index" json:"performedBy"`
	TargetID    uint            `json:"targetId"`
	TargetModel string          `gorm:"type:varchar(30)" json:"targetModel"`
	Changes     json.RawMessage `gorm:"type:jsonb" json:"changes,omitempty"`
}
