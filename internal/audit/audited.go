package audit

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aurorapdrrmo/sitrep-backend/internal/apperr"
	"github.com/aurorapdrrmo/sitrep-backend/internal/logger"
	"github.com/aurorapdrrmo/sitrep-backend/internal/repos"
	"github.com/aurorapdrrmo/sitrep-backend/internal/types"
)

// AuditedReportRepo decorates a ReportRepo so every create and update
// leaves a modification entry. The ledger append is best-effort relative
// to the primary write: the record commit stands even when the append
// fails, and the failure is logged.
type AuditedReportRepo[T any, PT interface {
	*T
	types.Report
}] struct {
	repo   *repos.ReportRepo[T, PT]
	ledger *Ledger
	log    *logger.Logger
}

func Wrap[T any, PT interface {
	*T
	types.Report
}](repo *repos.ReportRepo[T, PT], ledger *Ledger, baseLog *logger.Logger) *AuditedReportRepo[T, PT] {
	return &AuditedReportRepo[T, PT]{
		repo:   repo,
		ledger: ledger,
		log:    baseLog.With("component", "AuditedReportRepo", "table", repo.Table()),
	}
}

// Repo exposes the undecorated store for read paths.
func (a *AuditedReportRepo[T, PT]) Repo() *repos.ReportRepo[T, PT] { return a.repo }

func (a *AuditedReportRepo[T, PT]) Kind() types.ReportKind { return a.repo.Kind() }

func (a *AuditedReportRepo[T, PT]) Create(ctx context.Context, tx *gorm.DB, actor types.Actor, rows []PT) ([]PT, error) {
	created, err := a.repo.Create(ctx, tx, rows)
	if err != nil {
		return nil, apperr.MapError(err)
	}
	for _, row := range created {
		if err := a.ledger.RecordCreated(ctx, tx, actor, row.ReportKind(), row.ReportID(), row.FieldValues()); err != nil {
			a.log.Warn("modification entry append failed on create", "record_id", row.ReportID(), "error", err)
		}
	}
	return created, nil
}

// Update diffs the incoming row against the pre-write snapshot, persists
// only the changed columns plus the updater stamp, and logs the diff.
// Returns false without touching storage when no tracked field changed.
func (a *AuditedReportRepo[T, PT]) Update(ctx context.Context, tx *gorm.DB, actor types.Actor, incoming PT) (bool, error) {
	id := incoming.ReportID()
	if id == uuid.Nil {
		return false, apperr.Validation("record id is required for update")
	}

	prev, err := a.repo.GetByID(ctx, tx, id)
	if err != nil {
		return false, apperr.MapError(err)
	}
	if prev == nil {
		return false, apperr.NotFound("record does not exist")
	}

	prevFields := prev.FieldValues()
	nextFields := incoming.FieldValues()
	changes := DiffForUpdate(actor, prevFields, nextFields)
	if len(changes) == 0 {
		return false, nil
	}

	updates := make(map[string]any, len(changes)+1)
	for field, change := range changes {
		updates[field] = change.New
	}
	updates["last_updated_by_id"] = actor.ID

	if _, err := a.repo.UpdateFields(ctx, tx, id, updates); err != nil {
		return false, apperr.MapError(err)
	}

	if err := a.ledger.RecordUpdated(ctx, tx, actor, incoming.ReportKind(), id, prevFields, nextFields); err != nil {
		a.log.Warn("modification entry append failed on update", "record_id", id, "error", err)
	}
	return true, nil
}
