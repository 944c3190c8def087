package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aurorapdrrmo/sitrep-backend/internal/logger"
	"github.com/aurorapdrrmo/sitrep-backend/internal/types"
)

// ReportRepo is the one gorm-backed store serving every report table. The
// type parameter pair follows the usual pointer-constraint pattern so the
// repo can both instantiate rows and drive them through the Report
// interface.
type ReportRepo[T any, PT interface {
	*T
	types.Report
}] struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewReportRepo[T any, PT interface {
	*T
	types.Report
}](db *gorm.DB, baseLog *logger.Logger) *ReportRepo[T, PT] {
	var zero T
	repoLog := baseLog.With("repo", "ReportRepo", "table", PT(&zero).TableName())
	return &ReportRepo[T, PT]{db: db, log: repoLog}
}

func (r *ReportRepo[T, PT]) Kind() types.ReportKind {
	var zero T
	return PT(&zero).ReportKind()
}

func (r *ReportRepo[T, PT]) Table() string {
	var zero T
	return PT(&zero).TableName()
}

func (r *ReportRepo[T, PT]) Create(ctx context.Context, tx *gorm.DB, rows []PT) ([]PT, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return []PT{}, nil
	}

	for _, row := range rows {
		if row.ReportID() == uuid.Nil {
			row.SetReportID(uuid.New())
		}
	}
	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReportRepo[T, PT]) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (PT, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result T
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return PT(&result), nil
}

// UpdateFields applies a column-keyed update map to one row. Returns the
// number of rows matched so callers can detect a missing record.
func (r *ReportRepo[T, PT]) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if id == uuid.Nil || len(updates) == 0 {
		return 0, nil
	}

	res := transaction.WithContext(ctx).
		Model(PT(new(T))).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *ReportRepo[T, PT]) ListByTyphoon(ctx context.Context, tx *gorm.DB, typhoonID uuid.UUID) ([]PT, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []PT
	if typhoonID == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("typhoon_id = ?", typhoonID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *ReportRepo[T, PT]) ListOrphans(ctx context.Context, tx *gorm.DB) ([]PT, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []PT
	if err := transaction.WithContext(ctx).
		Where("typhoon_id IS NULL").
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *ReportRepo[T, PT]) CountByTyphoon(ctx context.Context, tx *gorm.DB, typhoonID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(PT(new(T))).
		Where("typhoon_id = ?", typhoonID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ReportRepo[T, PT]) CountOrphans(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(PT(new(T))).
		Where("typhoon_id IS NULL").
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// RelinkOrphans points every row with no typhoon association at the given
// typhoon. Returns the number of rows updated.
func (r *ReportRepo[T, PT]) RelinkOrphans(ctx context.Context, tx *gorm.DB, typhoonID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if typhoonID == uuid.Nil {
		return 0, nil
	}

	res := transaction.WithContext(ctx).
		Model(PT(new(T))).
		Where("typhoon_id IS NULL").
		Update("typhoon_id", typhoonID)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
