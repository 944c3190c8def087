package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	TyphoonStatusActive = "active"
	TyphoonStatusPaused = "paused"
	TyphoonStatusEnded  = "ended"
)

// Typhoon is the disaster event that scopes all report submissions. At most
// one typhoon is active-or-paused at a time; ended is terminal.
type Typhoon struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name                string     `gorm:"not null;column:name" json:"name"`
	Description         string     `gorm:"column:description" json:"description"`
	Status              string     `gorm:"not null;index;column:status" json:"status"`
	// OpenMarker is true while the typhoon is active or paused and NULL once
	// ended. Its unique index is the storage-level backstop for the
	// one-open-event rule: concurrent declares race into a unique violation.
	OpenMarker *bool `gorm:"uniqueIndex;column:open_marker" json:"-"`
	StartedAt           time.Time  `gorm:"not null" json:"started_at"`
	PausedAt            *time.Time `json:"paused_at,omitempty"`
	ResumedAt           *time.Time `json:"resumed_at,omitempty"`
	EndedAt             *time.Time `json:"ended_at,omitempty"`
	CreatedBy           uuid.UUID  `gorm:"type:uuid" json:"created_by"`
	PausedBy            *uuid.UUID `gorm:"type:uuid" json:"paused_by,omitempty"`
	ResumedBy           *uuid.UUID `gorm:"type:uuid" json:"resumed_by,omitempty"`
	EndedBy             *uuid.UUID `gorm:"type:uuid" json:"ended_by,omitempty"`
	GeneratedReportPath string     `gorm:"column:generated_report_path" json:"generated_report_path,omitempty"`
	CreatedAt           time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time  `gorm:"not null" json:"updated_at"`
}

func (Typhoon) TableName() string { return "typhoon" }
