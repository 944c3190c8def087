package repos_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/aurorapdrrmo/sitrep-backend/internal/apperr"
	"github.com/aurorapdrrmo/sitrep-backend/internal/repos"
	"github.com/aurorapdrrmo/sitrep-backend/internal/testutil"
	"github.com/aurorapdrrmo/sitrep-backend/internal/types"
)

func TestReportRepoRoundTrip(t *testing.T) {
	gdb := testutil.DB(t)
	log := testutil.Logger(t)
	repo := repos.NewReportRepo[types.Weather](gdb, log)
	ctx := context.Background()

	if repo.Table() != "weather" || repo.Kind() != types.KindWeather {
		t.Fatalf("unexpected table/kind: %s/%s", repo.Table(), repo.Kind())
	}

	typhoonID := uuid.New()
	scoped := &types.Weather{Municipality: "Baler", WindSpeedKph: 40}
	scoped.TyphoonID = &typhoonID
	orphan := &types.Weather{Municipality: "Dipaculao"}

	created, err := repo.Create(ctx, nil, []*types.Weather{scoped, orphan})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	for _, row := range created {
		if row.ID == uuid.Nil {
			t.Fatal("create must assign ids")
		}
	}

	got, err := repo.GetByID(ctx, nil, scoped.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Municipality != "Baler" {
		t.Fatalf("unexpected row: %+v", got)
	}

	missing, err := repo.GetByID(ctx, nil, uuid.New())
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("unknown id must resolve to nil")
	}

	count, err := repo.CountByTyphoon(ctx, nil, typhoonID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 scoped row, got %d", count)
	}
	orphans, err := repo.CountOrphans(ctx, nil)
	if err != nil {
		t.Fatalf("count orphans: %v", err)
	}
	if orphans != 1 {
		t.Fatalf("expected 1 orphan, got %d", orphans)
	}
}

func TestReportRepoUpdateFields(t *testing.T) {
	gdb := testutil.DB(t)
	log := testutil.Logger(t)
	repo := repos.NewReportRepo[types.Weather](gdb, log)
	ctx := context.Background()

	created, err := repo.Create(ctx, nil, []*types.Weather{{Municipality: "Baler", WindSpeedKph: 40}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id := created[0].ID

	affected, err := repo.UpdateFields(ctx, nil, id, map[string]any{"wind_speed_kph": 55.0})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 row affected, got %d", affected)
	}

	got, err := repo.GetByID(ctx, nil, id)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.WindSpeedKph != 55 {
		t.Fatalf("expected 55, got %v", got.WindSpeedKph)
	}

	affected, err = repo.UpdateFields(ctx, nil, uuid.New(), map[string]any{"wind_speed_kph": 60.0})
	if err != nil {
		t.Fatalf("update missing: %v", err)
	}
	if affected != 0 {
		t.Fatal("unknown id must affect no rows")
	}
}

func TestReportRepoRelinkOrphans(t *testing.T) {
	gdb := testutil.DB(t)
	log := testutil.Logger(t)
	repo := repos.NewReportRepo[types.Weather](gdb, log)
	ctx := context.Background()

	if _, err := repo.Create(ctx, nil, []*types.Weather{
		{Municipality: "Baler"},
		{Municipality: "Dipaculao"},
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	typhoonID := uuid.New()
	moved, err := repo.RelinkOrphans(ctx, nil, typhoonID)
	if err != nil {
		t.Fatalf("relink: %v", err)
	}
	if moved != 2 {
		t.Fatalf("expected 2 rows relinked, got %d", moved)
	}

	rows, err := repo.ListByTyphoon(ctx, nil, typhoonID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows under the typhoon, got %d", len(rows))
	}

	remaining, err := repo.CountOrphans(ctx, nil)
	if err != nil {
		t.Fatalf("count orphans: %v", err)
	}
	if remaining != 0 {
		t.Fatalf("expected no orphans left, got %d", remaining)
	}
}

func TestTyphoonOpenMarkerBackstop(t *testing.T) {
	gdb := testutil.DB(t)
	log := testutil.Logger(t)
	repo := repos.NewTyphoonRepo(gdb, log)
	ctx := context.Background()

	firstOpen := true
	first, err := repo.Create(ctx, nil, &types.Typhoon{
		Name:       "Egay",
		Status:     types.TyphoonStatusActive,
		StartedAt:  time.Now().UTC(),
		CreatedBy:  uuid.New(),
		OpenMarker: &firstOpen,
	})
	if err != nil {
		t.Fatalf("create first: %v", err)
	}

	// a second open insert must fail at the storage layer, even when the
	// application-level check has been raced past
	secondOpen := true
	_, err = repo.Create(ctx, nil, &types.Typhoon{
		Name:       "Falcon",
		Status:     types.TyphoonStatusActive,
		StartedAt:  time.Now().UTC(),
		CreatedBy:  uuid.New(),
		OpenMarker: &secondOpen,
	})
	if err == nil {
		t.Fatal("expected the unique open marker to reject a second open typhoon")
	}
	if !errors.Is(apperr.MapError(err), apperr.ErrConflict) {
		t.Fatalf("expected the violation to map to conflict, got %v", err)
	}

	// ending the first frees the slot
	ok, err := repo.UpdateFieldsByStatus(ctx, nil, first.ID,
		[]string{types.TyphoonStatusActive},
		map[string]any{"status": types.TyphoonStatusEnded, "open_marker": nil})
	if err != nil || !ok {
		t.Fatalf("end first: ok=%v err=%v", ok, err)
	}
	thirdOpen := true
	if _, err := repo.Create(ctx, nil, &types.Typhoon{
		Name:       "Falcon",
		Status:     types.TyphoonStatusActive,
		StartedAt:  time.Now().UTC(),
		CreatedBy:  uuid.New(),
		OpenMarker: &thirdOpen,
	}); err != nil {
		t.Fatalf("expected create to succeed once the slot is free: %v", err)
	}
}

func TestTyphoonRepoStatusGuard(t *testing.T) {
	gdb := testutil.DB(t)
	log := testutil.Logger(t)
	repo := repos.NewTyphoonRepo(gdb, log)
	ctx := context.Background()

	typhoon, err := repo.Create(ctx, nil, &types.Typhoon{
		Name:      "Egay",
		Status:    types.TyphoonStatusActive,
		StartedAt: time.Now().UTC(),
		CreatedBy: uuid.New(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	ok, err := repo.UpdateFieldsByStatus(ctx, nil, typhoon.ID,
		[]string{types.TyphoonStatusPaused},
		map[string]any{"status": types.TyphoonStatusActive})
	if err != nil {
		t.Fatalf("guarded update: %v", err)
	}
	if ok {
		t.Fatal("guard must miss when the status is not in the allowed set")
	}

	ok, err = repo.UpdateFieldsByStatus(ctx, nil, typhoon.ID,
		[]string{types.TyphoonStatusActive},
		map[string]any{"status": types.TyphoonStatusPaused})
	if err != nil {
		t.Fatalf("guarded update: %v", err)
	}
	if !ok {
		t.Fatal("guard must hit when the status matches")
	}

	reloaded, err := repo.GetByID(ctx, nil, typhoon.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Status != types.TyphoonStatusPaused {
		t.Fatalf("expected paused, got %q", reloaded.Status)
	}
}
