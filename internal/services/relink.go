package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aurorapdrrmo/sitrep-backend/internal/apperr"
	"github.com/aurorapdrrmo/sitrep-backend/internal/logger"
	"github.com/aurorapdrrmo/sitrep-backend/internal/repos"
)

// RelinkResult reports per-table outcomes of an orphan backfill run.
type RelinkResult struct {
	Updated map[string]int64  `json:"updated"`
	Failed  map[string]string `json:"failed,omitempty"`
	Total   int64             `json:"total"`
}

// RelinkService is the operator-invoked maintenance path that points
// report rows with no typhoon association at a chosen typhoon.
type RelinkService struct {
	db       *gorm.DB
	log      *logger.Logger
	typhoons repos.TyphoonRepo
	bindings []KindBinding
}

func NewRelinkService(db *gorm.DB, baseLog *logger.Logger, typhoons repos.TyphoonRepo, bindings []KindBinding) *RelinkService {
	return &RelinkService{
		db:       db,
		log:      baseLog.With("service", "RelinkService"),
		typhoons: typhoons,
		bindings: bindings,
	}
}

// RelinkOrphans backfills every report table. A failing table is recorded
// and skipped; the remaining tables still run.
func (s *RelinkService) RelinkOrphans(ctx context.Context, typhoonID uuid.UUID) (*RelinkResult, error) {
	target, err := s.typhoons.GetByID(ctx, nil, typhoonID)
	if err != nil {
		return nil, apperr.MapError(err)
	}
	if target == nil {
		return nil, apperr.NotFound("target typhoon does not exist")
	}

	result := &RelinkResult{
		Updated: make(map[string]int64, len(s.bindings)),
		Failed:  make(map[string]string),
	}
	for _, binding := range s.bindings {
		count, err := binding.Relink(ctx, typhoonID)
		if err != nil {
			s.log.Warn("orphan relink failed for table", "table", binding.Table, "error", err)
			result.Failed[binding.Table] = err.Error()
			continue
		}
		result.Updated[binding.Table] = count
		result.Total += count
	}

	s.log.Info("orphan relink finished", "typhoon_id", typhoonID, "total", result.Total, "failed_tables", len(result.Failed))
	return result, nil
}
