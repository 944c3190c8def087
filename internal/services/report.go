package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aurorapdrrmo/sitrep-backend/internal/apperr"
	"github.com/aurorapdrrmo/sitrep-backend/internal/audit"
	"github.com/aurorapdrrmo/sitrep-backend/internal/gate"
	"github.com/aurorapdrrmo/sitrep-backend/internal/logger"
	"github.com/aurorapdrrmo/sitrep-backend/internal/types"
)

// KindBinding is the non-generic face one report kind presents to the
// cross-table utilities (relink, dashboard summary, workbook export).
type KindBinding struct {
	Kind         types.ReportKind
	Table        string
	Count        func(ctx context.Context, typhoonID uuid.UUID) (int64, error)
	CountOrphans func(ctx context.Context) (int64, error)
	Relink       func(ctx context.Context, typhoonID uuid.UUID) (int64, error)
	ListReports  func(ctx context.Context, typhoonID uuid.UUID) ([]types.Report, error)
}

// ReportService is the gated, audited write path for one report kind.
// Every mutation consults the form gate first; allowed writes get the
// resolved typhoon id and the acting user stamped on.
type ReportService[T any, PT interface {
	*T
	types.Report
}] struct {
	db    *gorm.DB
	log   *logger.Logger
	gate  *gate.FormGate
	store *audit.AuditedReportRepo[T, PT]
}

func NewReportService[T any, PT interface {
	*T
	types.Report
}](db *gorm.DB, baseLog *logger.Logger, formGate *gate.FormGate, store *audit.AuditedReportRepo[T, PT]) *ReportService[T, PT] {
	return &ReportService[T, PT]{
		db:    db,
		log:   baseLog.With("service", "ReportService", "table", store.Repo().Table()),
		gate:  formGate,
		store: store,
	}
}

func (s *ReportService[T, PT]) Kind() types.ReportKind { return s.store.Kind() }

func (s *ReportService[T, PT]) Table() string { return s.store.Repo().Table() }

// Submit persists a bulk-or-single batch of new rows. The typhoon id is
// resolved once per request from the gate decision; admins writing with no
// open event produce unscoped rows, recoverable via the relink utility.
func (s *ReportService[T, PT]) Submit(ctx context.Context, actor types.Actor, rows []PT) ([]PT, error) {
	if len(rows) == 0 {
		return []PT{}, nil
	}

	decision, err := s.gate.Check(ctx, nil, actor)
	if err != nil {
		return nil, err
	}
	if !decision.Writable() {
		return nil, apperr.GateBlocked(decision.Reason())
	}

	var typhoonID *uuid.UUID
	if decision.Typhoon != nil {
		id := decision.Typhoon.ID
		typhoonID = &id
	}

	var created []PT
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			row.SetTyphoonRef(typhoonID)
			row.SetCreator(actor.ID)
			row.SetUpdater(actor.ID)
		}
		created, err = s.store.Create(ctx, tx, actor, rows)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update applies an edited row through the audited store. Returns false
// when no tracked field actually changed.
func (s *ReportService[T, PT]) Update(ctx context.Context, actor types.Actor, row PT) (bool, error) {
	decision, err := s.gate.Check(ctx, nil, actor)
	if err != nil {
		return false, err
	}
	if !decision.Writable() {
		return false, apperr.GateBlocked(decision.Reason())
	}

	var changed bool
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		changed, err = s.store.Update(ctx, tx, actor, row)
		return err
	})
	if err != nil {
		return false, err
	}
	return changed, nil
}

func (s *ReportService[T, PT]) GetByID(ctx context.Context, id uuid.UUID) (PT, error) {
	return s.store.Repo().GetByID(ctx, nil, id)
}

func (s *ReportService[T, PT]) ListByTyphoon(ctx context.Context, typhoonID uuid.UUID) ([]PT, error) {
	return s.store.Repo().ListByTyphoon(ctx, nil, typhoonID)
}

// Binding adapts this kind's store for the cross-table utilities.
func (s *ReportService[T, PT]) Binding() KindBinding {
	repo := s.store.Repo()
	return KindBinding{
		Kind:  repo.Kind(),
		Table: repo.Table(),
		Count: func(ctx context.Context, typhoonID uuid.UUID) (int64, error) {
			return repo.CountByTyphoon(ctx, nil, typhoonID)
		},
		CountOrphans: func(ctx context.Context) (int64, error) {
			return repo.CountOrphans(ctx, nil)
		},
		Relink: func(ctx context.Context, typhoonID uuid.UUID) (int64, error) {
			return repo.RelinkOrphans(ctx, nil, typhoonID)
		},
		ListReports: func(ctx context.Context, typhoonID uuid.UUID) ([]types.Report, error) {
			rows, err := repo.ListByTyphoon(ctx, nil, typhoonID)
			if err != nil {
				return nil, err
			}
			reports := make([]types.Report, 0, len(rows))
			for _, row := range rows {
				reports = append(reports, row)
			}
			return reports, nil
		},
	}
}
