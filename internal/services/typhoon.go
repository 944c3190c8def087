package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aurorapdrrmo/sitrep-backend/internal/apperr"
	"github.com/aurorapdrrmo/sitrep-backend/internal/cache"
	"github.com/aurorapdrrmo/sitrep-backend/internal/logger"
	"github.com/aurorapdrrmo/sitrep-backend/internal/repos"
	"github.com/aurorapdrrmo/sitrep-backend/internal/types"
)

// TyphoonService is the registry for the single open disaster event. Only
// one typhoon may be active-or-paused at a time: the check-then-insert in
// Create gives the friendly conflict message, and the unique open_marker
// index is the backstop when two declares race past the check. Lifecycle
// transitions are status-guarded updates so a stale caller gets an
// invalid-state error instead of clobbering timestamps.
type TyphoonService interface {
	GetActive(ctx context.Context) (*types.Typhoon, error)
	GetActiveOrPaused(ctx context.Context) (*types.Typhoon, error)
	HasActive(ctx context.Context) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.Typhoon, error)
	Create(ctx context.Context, actor types.Actor, name, description string) (*types.Typhoon, error)
	Pause(ctx context.Context, actor types.Actor, id uuid.UUID) (*types.Typhoon, error)
	Resume(ctx context.Context, actor types.Actor, id uuid.UUID) (*types.Typhoon, error)
	End(ctx context.Context, actor types.Actor, id uuid.UUID, reportArtifactPath string) (*types.Typhoon, error)
}

type typhoonService struct {
	db    *gorm.DB
	log   *logger.Logger
	repo  repos.TyphoonRepo
	cache *cache.TyphoonCache
}

func NewTyphoonService(db *gorm.DB, baseLog *logger.Logger, repo repos.TyphoonRepo, typhoonCache *cache.TyphoonCache) TyphoonService {
	return &typhoonService{
		db:    db,
		log:   baseLog.With("service", "TyphoonService"),
		repo:  repo,
		cache: typhoonCache,
	}
}

func (s *typhoonService) GetActive(ctx context.Context) (*types.Typhoon, error) {
	return s.repo.GetLatestByStatuses(ctx, nil, []string{types.TyphoonStatusActive})
}

func (s *typhoonService) GetActiveOrPaused(ctx context.Context) (*types.Typhoon, error) {
	if cached, hit, err := s.cache.GetCurrent(ctx); err == nil && hit {
		return cached, nil
	} else if err != nil {
		s.log.Warn("typhoon cache read failed, falling through to store", "error", err)
	}

	current, err := s.repo.GetLatestByStatuses(ctx, nil, []string{types.TyphoonStatusActive, types.TyphoonStatusPaused})
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetCurrent(ctx, current); err != nil {
		s.log.Warn("typhoon cache write failed", "error", err)
	}
	return current, nil
}

func (s *typhoonService) HasActive(ctx context.Context) (bool, error) {
	active, err := s.GetActive(ctx)
	if err != nil {
		return false, err
	}
	return active != nil, nil
}

func (s *typhoonService) GetByID(ctx context.Context, id uuid.UUID) (*types.Typhoon, error) {
	return s.repo.GetByID(ctx, nil, id)
}

func (s *typhoonService) Create(ctx context.Context, actor types.Actor, name, description string) (*types.Typhoon, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation("typhoon name is required")
	}

	var created *types.Typhoon
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.repo.GetLatestByStatuses(ctx, tx, []string{types.TyphoonStatusActive, types.TyphoonStatusPaused})
		if err != nil {
			return err
		}
		if existing != nil {
			return apperr.Conflict(fmt.Sprintf("typhoon %q is still %s", existing.Name, existing.Status))
		}

		now := time.Now().UTC()
		open := true
		typhoon := &types.Typhoon{
			ID:          uuid.New(),
			Name:        name,
			Description: strings.TrimSpace(description),
			Status:      types.TyphoonStatusActive,
			StartedAt:   now,
			CreatedBy:   actor.ID,
			OpenMarker:  &open,
		}
		created, err = s.repo.Create(ctx, tx, typhoon)
		return err
	})
	if err != nil {
		return nil, apperr.MapError(err)
	}

	s.cache.Invalidate(ctx)
	s.log.Info("typhoon event declared", "typhoon_id", created.ID, "name", created.Name, "by", actor.Name)
	return created, nil
}

func (s *typhoonService) Pause(ctx context.Context, actor types.Actor, id uuid.UUID) (*types.Typhoon, error) {
	now := time.Now().UTC()
	updated, err := s.transition(ctx, id,
		[]string{types.TyphoonStatusActive},
		map[string]any{
			"status":    types.TyphoonStatusPaused,
			"paused_at": now,
			"paused_by": actor.ID,
		},
		"only an active typhoon can be paused",
	)
	if err != nil {
		return nil, err
	}
	s.log.Info("typhoon event paused", "typhoon_id", id, "by", actor.Name)
	return updated, nil
}

func (s *typhoonService) Resume(ctx context.Context, actor types.Actor, id uuid.UUID) (*types.Typhoon, error) {
	now := time.Now().UTC()
	updated, err := s.transition(ctx, id,
		[]string{types.TyphoonStatusPaused},
		map[string]any{
			"status":     types.TyphoonStatusActive,
			"resumed_at": now,
			"resumed_by": actor.ID,
		},
		"only a paused typhoon can be resumed",
	)
	if err != nil {
		return nil, err
	}
	s.log.Info("typhoon event resumed", "typhoon_id", id, "by", actor.Name)
	return updated, nil
}

func (s *typhoonService) End(ctx context.Context, actor types.Actor, id uuid.UUID, reportArtifactPath string) (*types.Typhoon, error) {
	now := time.Now().UTC()
	updated, err := s.transition(ctx, id,
		[]string{types.TyphoonStatusActive, types.TyphoonStatusPaused},
		map[string]any{
			"status":                types.TyphoonStatusEnded,
			"ended_at":              now,
			"ended_by":              actor.ID,
			"generated_report_path": reportArtifactPath,
			"open_marker":           nil,
		},
		"the typhoon has already ended",
	)
	if err != nil {
		return nil, err
	}
	s.log.Info("typhoon event ended", "typhoon_id", id, "by", actor.Name, "report", reportArtifactPath)
	return updated, nil
}

func (s *typhoonService) transition(ctx context.Context, id uuid.UUID, allowedStatuses []string, updates map[string]any, invalidMsg string) (*types.Typhoon, error) {
	ok, err := s.repo.UpdateFieldsByStatus(ctx, nil, id, allowedStatuses, updates)
	if err != nil {
		return nil, apperr.MapError(err)
	}
	if !ok {
		existing, err := s.repo.GetByID(ctx, nil, id)
		if err != nil {
			return nil, apperr.MapError(err)
		}
		if existing == nil {
			return nil, apperr.NotFound("typhoon does not exist")
		}
		return nil, apperr.InvalidState(invalidMsg)
	}

	s.cache.Invalidate(ctx)
	return s.repo.GetByID(ctx, nil, id)
}
