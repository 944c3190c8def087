package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aurorapdrrmo/sitrep-backend/internal/apperr"
	"github.com/aurorapdrrmo/sitrep-backend/internal/audit"
	"github.com/aurorapdrrmo/sitrep-backend/internal/gate"
	"github.com/aurorapdrrmo/sitrep-backend/internal/repos"
	"github.com/aurorapdrrmo/sitrep-backend/internal/services"
	"github.com/aurorapdrrmo/sitrep-backend/internal/testutil"
	"github.com/aurorapdrrmo/sitrep-backend/internal/types"
)

type reportFixture struct {
	db       *gorm.DB
	typhoons services.TyphoonService
	weather  *services.ReportService[types.Weather, *types.Weather]
}

func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()
	gdb := testutil.DB(t)
	log := testutil.Logger(t)

	typhoonRepo := repos.NewTyphoonRepo(gdb, log)
	mods := repos.NewModificationRepo(gdb, log)
	ledger := audit.NewLedger(gdb, log, mods)
	formGate := gate.NewFormGate(gdb, log, typhoonRepo, nil)

	weatherRepo := repos.NewReportRepo[types.Weather](gdb, log)
	store := audit.Wrap(weatherRepo, ledger, log)

	return &reportFixture{
		db:       gdb,
		typhoons: services.NewTyphoonService(gdb, log, typhoonRepo, nil),
		weather:  services.NewReportService(gdb, log, formGate, store),
	}
}

func TestSubmitScopesRowsToOpenTyphoon(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()
	admin := adminActor()
	encoder := types.Actor{ID: uuid.New(), Name: "Rico"}

	typhoon, err := f.typhoons.Create(ctx, admin, "Egay", "")
	if err != nil {
		t.Fatalf("create typhoon: %v", err)
	}

	created, err := f.weather.Submit(ctx, encoder, []*types.Weather{
		{Municipality: "Baler", WindSpeedKph: 40},
		{Municipality: "Dipaculao", WindSpeedKph: 30},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(created))
	}
	for _, row := range created {
		if row.TyphoonID == nil || *row.TyphoonID != typhoon.ID {
			t.Fatal("submitted rows must be scoped to the open typhoon")
		}
		if row.CreatorID != encoder.ID || row.LastUpdatedByID != encoder.ID {
			t.Fatal("submitted rows must carry the acting user")
		}
	}

	rows, err := f.weather.ListByTyphoon(ctx, typhoon.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 listed rows, got %d", len(rows))
	}
}

func TestSubmitBlockedWithoutEvent(t *testing.T) {
	f := newReportFixture(t)
	encoder := types.Actor{ID: uuid.New(), Name: "Rico"}

	_, err := f.weather.Submit(context.Background(), encoder, []*types.Weather{{Municipality: "Baler"}})
	if !errors.Is(err, apperr.ErrGateBlocked) {
		t.Fatalf("expected gate block, got %v", err)
	}
	var blocked *apperr.GateBlockedError
	if !errors.As(err, &blocked) || blocked.Reason == "" {
		t.Fatal("gate block must carry a reason")
	}
}

func TestSubmitBlockedWhilePaused(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()
	admin := adminActor()
	encoder := types.Actor{ID: uuid.New(), Name: "Rico"}

	typhoon, err := f.typhoons.Create(ctx, admin, "Egay", "")
	if err != nil {
		t.Fatalf("create typhoon: %v", err)
	}
	if _, err := f.typhoons.Pause(ctx, admin, typhoon.ID); err != nil {
		t.Fatalf("pause: %v", err)
	}

	if _, err := f.weather.Submit(ctx, encoder, []*types.Weather{{Municipality: "Baler"}}); !errors.Is(err, apperr.ErrGateBlocked) {
		t.Fatalf("expected gate block while paused, got %v", err)
	}

	// the admin bypass still lands, scoped to the paused typhoon
	created, err := f.weather.Submit(ctx, admin, []*types.Weather{{Municipality: "Baler"}})
	if err != nil {
		t.Fatalf("admin submit: %v", err)
	}
	if created[0].TyphoonID == nil || *created[0].TyphoonID != typhoon.ID {
		t.Fatal("admin rows must still be scoped to the paused typhoon")
	}
}

func TestAdminSubmitWithoutEventCreatesOrphans(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()
	admin := adminActor()

	created, err := f.weather.Submit(ctx, admin, []*types.Weather{{Municipality: "Baler"}})
	if err != nil {
		t.Fatalf("admin submit: %v", err)
	}
	if created[0].TyphoonID != nil {
		t.Fatal("with no open event an admin row stays unscoped")
	}

	binding := f.weather.Binding()
	orphans, err := binding.CountOrphans(ctx)
	if err != nil {
		t.Fatalf("count orphans: %v", err)
	}
	if orphans != 1 {
		t.Fatalf("expected 1 orphan, got %d", orphans)
	}
}

func TestUpdateThroughGate(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()
	admin := adminActor()
	encoder := types.Actor{ID: uuid.New(), Name: "Rico"}

	typhoon, err := f.typhoons.Create(ctx, admin, "Egay", "")
	if err != nil {
		t.Fatalf("create typhoon: %v", err)
	}
	created, err := f.weather.Submit(ctx, encoder, []*types.Weather{{Municipality: "Baler", WindSpeedKph: 40}})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	id := created[0].ID

	edit := &types.Weather{Municipality: "Baler", WindSpeedKph: 55}
	edit.SetReportID(id)
	changed, err := f.weather.Update(ctx, encoder, edit)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !changed {
		t.Fatal("expected the edit to land")
	}

	// once the event ends, encoder edits stop landing
	if _, err := f.typhoons.End(ctx, admin, typhoon.ID, ""); err != nil {
		t.Fatalf("end: %v", err)
	}
	edit.WindSpeedKph = 60
	if _, err := f.weather.Update(ctx, encoder, edit); !errors.Is(err, apperr.ErrGateBlocked) {
		t.Fatalf("expected gate block after end, got %v", err)
	}
}

func TestSubmitEmptyBatch(t *testing.T) {
	f := newReportFixture(t)

	created, err := f.weather.Submit(context.Background(), adminActor(), nil)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(created) != 0 {
		t.Fatalf("expected no rows, got %d", len(created))
	}
}
