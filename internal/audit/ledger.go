package audit

import (
	"context"
	"encoding/json"
	"reflect"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/aurorapdrrmo/sitrep-backend/internal/logger"
	"github.com/aurorapdrrmo/sitrep-backend/internal/repos"
	"github.com/aurorapdrrmo/sitrep-backend/internal/types"
)

// untrackedFields are never captured in a modification entry: bookkeeping
// columns plus the secrets deny-list.
var untrackedFields = map[string]struct{}{
	"updated_at":         {},
	"last_updated_by_id": {},
	"password":           {},
	"remember_token":     {},
}

// Ledger appends per-field change entries for report writes. One generic
// diffing routine serves every report type; records only declare their
// trackable fields through FieldValues.
type Ledger struct {
	db   *gorm.DB
	log  *logger.Logger
	mods repos.ModificationRepo
}

func NewLedger(db *gorm.DB, baseLog *logger.Logger, mods repos.ModificationRepo) *Ledger {
	return &Ledger{
		db:   db,
		log:  baseLog.With("component", "Ledger"),
		mods: mods,
	}
}

// RecordCreated appends one entry covering every non-empty trackable field
// of a freshly created row, with old values pinned to null. No entry is
// written when every field is empty.
func (l *Ledger) RecordCreated(ctx context.Context, tx *gorm.DB, actor types.Actor, kind types.ReportKind, subjectID uuid.UUID, fields map[string]any) error {
	changes := DiffForCreate(actor, fields)
	if len(changes) == 0 {
		return nil
	}
	return l.append(ctx, tx, actor, kind, subjectID, types.ModificationActionCreated, changes)
}

// RecordUpdated appends one entry covering the fields whose values differ
// between the pre-write snapshot and the incoming values. A save that
// changes nothing writes nothing.
func (l *Ledger) RecordUpdated(ctx context.Context, tx *gorm.DB, actor types.Actor, kind types.ReportKind, subjectID uuid.UUID, prev, next map[string]any) error {
	changes := DiffForUpdate(actor, prev, next)
	if len(changes) == 0 {
		return nil
	}
	return l.append(ctx, tx, actor, kind, subjectID, types.ModificationActionUpdated, changes)
}

func (l *Ledger) append(ctx context.Context, tx *gorm.DB, actor types.Actor, kind types.ReportKind, subjectID uuid.UUID, action string, changes map[string]types.FieldChange) error {
	payload, err := json.Marshal(changes)
	if err != nil {
		return err
	}
	entry := &types.ModificationEntry{
		ID:            uuid.New(),
		ActorID:       actor.ID,
		ActorName:     actor.Name,
		SubjectKind:   kind,
		SubjectID:     subjectID,
		Action:        action,
		ChangedFields: datatypes.JSON(payload),
		CreatedAt:     time.Now().UTC(),
	}
	if _, err := l.mods.Create(ctx, tx, []*types.ModificationEntry{entry}); err != nil {
		return err
	}
	return nil
}

// DiffForCreate builds the changed-field map for a creation: every tracked
// field carrying a non-zero value, old pinned to nil.
func DiffForCreate(actor types.Actor, fields map[string]any) map[string]types.FieldChange {
	ref := types.ActorRef{ID: actor.ID, Name: actorName(actor)}
	changes := make(map[string]types.FieldChange)
	for field, value := range fields {
		if _, skip := untrackedFields[field]; skip {
			continue
		}
		if isZeroValue(value) {
			continue
		}
		changes[field] = types.FieldChange{Old: nil, New: value, Actor: ref}
	}
	return changes
}

// DiffForUpdate builds the changed-field map for an update from the
// pre-write snapshot. Fields with equal old and new values are dropped.
func DiffForUpdate(actor types.Actor, prev, next map[string]any) map[string]types.FieldChange {
	ref := types.ActorRef{ID: actor.ID, Name: actorName(actor)}
	changes := make(map[string]types.FieldChange)
	for field, newValue := range next {
		if _, skip := untrackedFields[field]; skip {
			continue
		}
		oldValue, ok := prev[field]
		if ok && sameValue(oldValue, newValue) {
			continue
		}
		changes[field] = types.FieldChange{Old: oldValue, New: newValue, Actor: ref}
	}
	return changes
}

func actorName(actor types.Actor) string {
	if actor.Name == "" {
		return types.SystemActor().Name
	}
	return actor.Name
}

func sameValue(a, b any) bool {
	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			return at.Equal(bt)
		}
	}
	return reflect.DeepEqual(a, b)
}

func isZeroValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.IsZero()
}
