package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aurorapdrrmo/sitrep-backend/internal/logger"
	"github.com/aurorapdrrmo/sitrep-backend/internal/types"
)

// ModificationRepo persists the append-only audit trail. Entries are never
// updated or deleted.
type ModificationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, entries []*types.ModificationEntry) ([]*types.ModificationEntry, error)
	ListBySubject(ctx context.Context, tx *gorm.DB, kind types.ReportKind, subjectID uuid.UUID) ([]*types.ModificationEntry, error)
	ListBySubjects(ctx context.Context, tx *gorm.DB, kind types.ReportKind, subjectIDs []uuid.UUID) ([]*types.ModificationEntry, error)
}

type modificationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewModificationRepo(db *gorm.DB, baseLog *logger.Logger) ModificationRepo {
	repoLog := baseLog.With("repo", "ModificationRepo")
	return &modificationRepo{db: db, log: repoLog}
}

func (r *modificationRepo) Create(ctx context.Context, tx *gorm.DB, entries []*types.ModificationEntry) ([]*types.ModificationEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(entries) == 0 {
		return []*types.ModificationEntry{}, nil
	}

	for _, entry := range entries {
		if entry.ID == uuid.Nil {
			entry.ID = uuid.New()
		}
	}
	if err := transaction.WithContext(ctx).Create(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *modificationRepo) ListBySubject(ctx context.Context, tx *gorm.DB, kind types.ReportKind, subjectID uuid.UUID) ([]*types.ModificationEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.ModificationEntry
	if subjectID == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("subject_kind = ? AND subject_id = ?", kind, subjectID).
		Order("created_at DESC, id DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *modificationRepo) ListBySubjects(ctx context.Context, tx *gorm.DB, kind types.ReportKind, subjectIDs []uuid.UUID) ([]*types.ModificationEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.ModificationEntry
	if len(subjectIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("subject_kind = ? AND subject_id IN ?", kind, subjectIDs).
		Order("created_at DESC, id DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
