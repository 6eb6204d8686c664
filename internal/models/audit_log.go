package models

import "time"

// AuditLog records destructive administrative actions (bulk order reset,
// user deletion) with the acting user so they can be traced after the fact.
type AuditLog struct {
	ID        uint   `gorm:"primaryKey"`
	ActorID   string `gorm:"index;not null"`
	Action    string `gorm:"not null"`
	Detail    string
	CreatedAt time.Time
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
