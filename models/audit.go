package models

import (
	"log"
	"time"

	"gorm.io/gorm"
)

// AuditLog records one admin mutation (who did what to which record).
type AuditLog struct {
	ID      uint `gorm:"primaryKey;autoIncrement" json:"id"`
	AdminID uint `gorm:"not null;index" json:"admin_id"`

	Action     string `gorm:"size:255;not null" json:"action"`
	RecordType string `gorm:"size:50" json:"record_type"`
	RecordID   uint   `json:"record_id"`
	Details    string `gorm:"type:text" json:"details"`

	CreatedAt time.Time `json:"created_at"`
}

// RecordAudit appends an audit row. A failed write is logged, never fatal;
// auditing must not abort the admin action it describes.
func RecordAudit(db *gorm.DB, adminID uint, action, recordType string, recordID uint, details string) {
	entry := &AuditLog{
		AdminID:    adminID,
		Action:     action,
		RecordType: recordType,
		RecordID:   recordID,
		Details:    details,
	}
	if err := db.Create(entry).Error; err != nil {
		log.Printf("❌ Failed to write audit log (%s %s/%d): %v", action, recordType, recordID, err)
	}
}
