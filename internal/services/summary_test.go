package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/aurorapdrrmo/sitrep-backend/internal/audit"
	"github.com/aurorapdrrmo/sitrep-backend/internal/gate"
	"github.com/aurorapdrrmo/sitrep-backend/internal/repos"
	"github.com/aurorapdrrmo/sitrep-backend/internal/services"
	"github.com/aurorapdrrmo/sitrep-backend/internal/testutil"
	"github.com/aurorapdrrmo/sitrep-backend/internal/types"
)

func TestSummarizeCountsPerKind(t *testing.T) {
	gdb := testutil.DB(t)
	log := testutil.Logger(t)
	ctx := context.Background()
	admin := adminActor()
	encoder := types.Actor{ID: uuid.New(), Name: "Rico"}

	typhoonRepo := repos.NewTyphoonRepo(gdb, log)
	mods := repos.NewModificationRepo(gdb, log)
	ledger := audit.NewLedger(gdb, log, mods)
	formGate := gate.NewFormGate(gdb, log, typhoonRepo, nil)
	typhoons := services.NewTyphoonService(gdb, log, typhoonRepo, nil)

	weatherSvc := services.NewReportService(gdb, log, formGate,
		audit.Wrap(repos.NewReportRepo[types.Weather](gdb, log), ledger, log))
	casualtySvc := services.NewReportService(gdb, log, formGate,
		audit.Wrap(repos.NewReportRepo[types.Casualty](gdb, log), ledger, log))

	// one orphan from before the event opened
	if _, err := weatherSvc.Submit(ctx, admin, []*types.Weather{{Municipality: "Maria Aurora"}}); err != nil {
		t.Fatalf("seed orphan: %v", err)
	}

	typhoon, err := typhoons.Create(ctx, admin, "Egay", "")
	if err != nil {
		t.Fatalf("create typhoon: %v", err)
	}
	if _, err := weatherSvc.Submit(ctx, encoder, []*types.Weather{
		{Municipality: "Baler"},
		{Municipality: "Dipaculao"},
	}); err != nil {
		t.Fatalf("submit weather: %v", err)
	}
	if _, err := casualtySvc.Submit(ctx, encoder, []*types.Casualty{{Municipality: "Baler", Name: "Juan Cruz"}}); err != nil {
		t.Fatalf("submit casualty: %v", err)
	}

	summary := services.NewSummaryService(gdb, log, typhoons, []services.KindBinding{
		weatherSvc.Binding(),
		casualtySvc.Binding(),
	})

	result, err := summary.Summarize(ctx)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if result.Typhoon == nil || result.Typhoon.ID != typhoon.ID {
		t.Fatal("summary must name the open typhoon")
	}
	if result.Total != 3 {
		t.Fatalf("expected 3 scoped rows total, got %d", result.Total)
	}

	byTable := make(map[string]services.KindSummary, len(result.Counts))
	for _, ks := range result.Counts {
		byTable[ks.Table] = ks
	}
	if ks := byTable["weather"]; ks.Count != 2 || ks.Orphans != 1 {
		t.Fatalf("unexpected weather summary: %+v", ks)
	}
	if ks := byTable["casualty"]; ks.Count != 1 || ks.Orphans != 0 {
		t.Fatalf("unexpected casualty summary: %+v", ks)
	}
}

func TestSummarizeWithoutOpenTyphoon(t *testing.T) {
	gdb := testutil.DB(t)
	log := testutil.Logger(t)

	typhoonRepo := repos.NewTyphoonRepo(gdb, log)
	mods := repos.NewModificationRepo(gdb, log)
	ledger := audit.NewLedger(gdb, log, mods)
	formGate := gate.NewFormGate(gdb, log, typhoonRepo, nil)
	typhoons := services.NewTyphoonService(gdb, log, typhoonRepo, nil)

	weatherSvc := services.NewReportService(gdb, log, formGate,
		audit.Wrap(repos.NewReportRepo[types.Weather](gdb, log), ledger, log))

	summary := services.NewSummaryService(gdb, log, typhoons, []services.KindBinding{weatherSvc.Binding()})
	result, err := summary.Summarize(context.Background())
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if result.Typhoon != nil {
		t.Fatal("no typhoon should be named when none is open")
	}
	if result.Total != 0 {
		t.Fatalf("expected zero total, got %d", result.Total)
	}
}
