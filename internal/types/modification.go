package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ModificationActionCreated = "created"
	ModificationActionUpdated = "updated"
)

// ActorRef is the actor identity embedded in every changed-field entry.
type ActorRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// FieldChange is one field's before/after pair inside a modification.
type FieldChange struct {
	Old   any      `json:"old"`
	New   any      `json:"new"`
	Actor ActorRef `json:"actor"`
}

// ChangeEntry is the history projection served to consumers: one past
// change of one field, newest-first in the lists the query service builds.
type ChangeEntry struct {
	Old   any       `json:"old"`
	New   any       `json:"new"`
	Actor ActorRef  `json:"actor"`
	Date  time.Time `json:"date"`
}

// ModificationEntry is one append-only audit record covering a single
// create or update of a report row. ChangedFields holds the JSON-encoded
// map of column name to FieldChange.
type ModificationEntry struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ActorID       uuid.UUID      `gorm:"type:uuid;column:actor_id" json:"actor_id"`
	ActorName     string         `gorm:"column:actor_name" json:"actor_name"`
	SubjectKind   ReportKind     `gorm:"not null;column:subject_kind;index:idx_modification_subject" json:"subject_kind"`
	SubjectID     uuid.UUID      `gorm:"type:uuid;not null;column:subject_id;index:idx_modification_subject" json:"subject_id"`
	Action        string         `gorm:"not null;column:action" json:"action"`
	ChangedFields datatypes.JSON `gorm:"column:changed_fields" json:"changed_fields"`
	CreatedAt     time.Time      `gorm:"not null;index" json:"created_at"`
}

func (ModificationEntry) TableName() string { return "modification" }
