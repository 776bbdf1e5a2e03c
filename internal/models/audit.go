// internal/models/audit.go
package models

import "time"

type AuditLog struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RequestID    string    `json:"request_id" gorm:"size:36;index"`
	Action       string    `json:"action" gorm:"size:100;not null;index"`
	ResourceType string    `json:"resource_type" gorm:"size:50;not null;index"`
	ResourceID   *int64    `json:"resource_id" gorm:"index"`
	Status       int       `json:"status"`
	DurationMs   int64     `json:"duration_ms"`
	IPAddress    string    `json:"ip_address" gorm:"size:45"`
	UserAgent    string    `json:"user_agent" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`
}
