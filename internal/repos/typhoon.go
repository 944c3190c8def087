package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aurorapdrrmo/sitrep-backend/internal/logger"
	"github.com/aurorapdrrmo/sitrep-backend/internal/types"
)

type TyphoonRepo interface {
	Create(ctx context.Context, tx *gorm.DB, typhoon *types.Typhoon) (*types.Typhoon, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Typhoon, error)
	// GetLatest returns the most recently started typhoon of any status,
	// or nil when none exists.
	GetLatest(ctx context.Context, tx *gorm.DB) (*types.Typhoon, error)
	// GetLatestByStatuses returns the most recently started typhoon whose
	// status is in the given set, or nil when none matches.
	GetLatestByStatuses(ctx context.Context, tx *gorm.DB, statuses []string) (*types.Typhoon, error)
	// UpdateFieldsByStatus applies updates only while the row's status is in
	// the allowed set. Returns false when the guard missed.
	UpdateFieldsByStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, allowedStatuses []string, updates map[string]any) (bool, error)
}

type typhoonRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTyphoonRepo(db *gorm.DB, baseLog *logger.Logger) TyphoonRepo {
	repoLog := baseLog.With("repo", "TyphoonRepo")
	return &typhoonRepo{db: db, log: repoLog}
}

func (r *typhoonRepo) Create(ctx context.Context, tx *gorm.DB, typhoon *types.Typhoon) (*types.Typhoon, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if typhoon.ID == uuid.Nil {
		typhoon.ID = uuid.New()
	}
	if err := transaction.WithContext(ctx).Create(typhoon).Error; err != nil {
		return nil, err
	}
	return typhoon, nil
}

func (r *typhoonRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Typhoon, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Typhoon
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *typhoonRepo) GetLatest(ctx context.Context, tx *gorm.DB) (*types.Typhoon, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Typhoon
	if err := transaction.WithContext(ctx).
		Order("started_at DESC").
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *typhoonRepo) GetLatestByStatuses(ctx context.Context, tx *gorm.DB, statuses []string) (*types.Typhoon, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Typhoon
	if len(statuses) == 0 {
		return nil, nil
	}

	if err := transaction.WithContext(ctx).
		Where("status IN ?", statuses).
		Order("started_at DESC").
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *typhoonRepo) UpdateFieldsByStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, allowedStatuses []string, updates map[string]any) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if id == uuid.Nil || len(allowedStatuses) == 0 {
		return false, nil
	}

	res := transaction.WithContext(ctx).
		Model(&types.Typhoon{}).
		Where("id = ? AND status IN ?", id, allowedStatuses).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
