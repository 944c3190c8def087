package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/aurorapdrrmo/sitrep-backend/internal/logger"
	"github.com/aurorapdrrmo/sitrep-backend/internal/types"
)

// KindSummary is one report table's row counts for the dashboard.
type KindSummary struct {
	Kind    types.ReportKind `json:"kind"`
	Table   string           `json:"table"`
	Count   int64            `json:"count"`
	Orphans int64            `json:"orphans"`
}

type DashboardSummary struct {
	Typhoon *types.Typhoon `json:"typhoon,omitempty"`
	Counts  []KindSummary  `json:"counts"`
	Total   int64          `json:"total"`
}

// SummaryService serves the dashboard's per-kind aggregation contract.
type SummaryService struct {
	db       *gorm.DB
	log      *logger.Logger
	typhoons TyphoonService
	bindings []KindBinding
}

func NewSummaryService(db *gorm.DB, baseLog *logger.Logger, typhoons TyphoonService, bindings []KindBinding) *SummaryService {
	return &SummaryService{
		db:       db,
		log:      baseLog.With("service", "SummaryService"),
		typhoons: typhoons,
		bindings: bindings,
	}
}

// Summarize counts each kind's rows for the current typhoon, plus its
// orphaned rows, for the dashboard landing view.
func (s *SummaryService) Summarize(ctx context.Context) (*DashboardSummary, error) {
	current, err := s.typhoons.GetActiveOrPaused(ctx)
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{
		Typhoon: current,
		Counts:  make([]KindSummary, 0, len(s.bindings)),
	}
	for _, binding := range s.bindings {
		ks := KindSummary{Kind: binding.Kind, Table: binding.Table}
		if current != nil {
			count, err := binding.Count(ctx, current.ID)
			if err != nil {
				return nil, err
			}
			ks.Count = count
		}
		orphans, err := binding.CountOrphans(ctx)
		if err != nil {
			return nil, err
		}
		ks.Orphans = orphans
		summary.Counts = append(summary.Counts, ks)
		summary.Total += ks.Count
	}
	return summary, nil
}
