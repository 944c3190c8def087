package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aurorapdrrmo/sitrep-backend/internal/logger"
	"github.com/aurorapdrrmo/sitrep-backend/internal/repos"
	"github.com/aurorapdrrmo/sitrep-backend/internal/types"
)

// HistoryService is a read-only projection over the modification trail:
// per-field change lists ordered newest-first.
type HistoryService struct {
	db   *gorm.DB
	log  *logger.Logger
	mods repos.ModificationRepo
}

func NewHistoryService(db *gorm.DB, baseLog *logger.Logger, mods repos.ModificationRepo) *HistoryService {
	return &HistoryService{
		db:   db,
		log:  baseLog.With("service", "HistoryService"),
		mods: mods,
	}
}

// GetHistory returns every past change of one record, keyed by field name.
func (s *HistoryService) GetHistory(ctx context.Context, tx *gorm.DB, kind types.ReportKind, recordID uuid.UUID) (map[string][]types.ChangeEntry, error) {
	entries, err := s.mods.ListBySubject(ctx, tx, kind, recordID)
	if err != nil {
		return nil, err
	}

	history := make(map[string][]types.ChangeEntry)
	for _, entry := range entries {
		changes, err := decodeChangedFields(entry)
		if err != nil {
			s.log.Warn("skipping undecodable modification entry", "entry_id", entry.ID, "error", err)
			continue
		}
		for field, change := range changes {
			history[field] = append(history[field], types.ChangeEntry{
				Old:   change.Old,
				New:   change.New,
				Actor: change.Actor,
				Date:  entry.CreatedAt,
			})
		}
	}
	return history, nil
}

// GetHistoryForBatch returns the change lists for many records in one
// query, keyed "<recordID>_<field>" the way the report tables consume it.
func (s *HistoryService) GetHistoryForBatch(ctx context.Context, tx *gorm.DB, kind types.ReportKind, recordIDs []uuid.UUID) (map[string][]types.ChangeEntry, error) {
	entries, err := s.mods.ListBySubjects(ctx, tx, kind, recordIDs)
	if err != nil {
		return nil, err
	}

	history := make(map[string][]types.ChangeEntry)
	for _, entry := range entries {
		changes, err := decodeChangedFields(entry)
		if err != nil {
			s.log.Warn("skipping undecodable modification entry", "entry_id", entry.ID, "error", err)
			continue
		}
		for field, change := range changes {
			key := fmt.Sprintf("%s_%s", entry.SubjectID, field)
			history[key] = append(history[key], types.ChangeEntry{
				Old:   change.Old,
				New:   change.New,
				Actor: change.Actor,
				Date:  entry.CreatedAt,
			})
		}
	}
	return history, nil
}

func decodeChangedFields(entry *types.ModificationEntry) (map[string]types.FieldChange, error) {
	changes := make(map[string]types.FieldChange)
	if len(entry.ChangedFields) == 0 {
		return changes, nil
	}
	if err := json.Unmarshal(entry.ChangedFields, &changes); err != nil {
		return nil, err
	}
	return changes, nil
}
