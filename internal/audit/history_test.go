package audit_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/aurorapdrrmo/sitrep-backend/internal/audit"
	"github.com/aurorapdrrmo/sitrep-backend/internal/testutil"
	"github.com/aurorapdrrmo/sitrep-backend/internal/types"
)

func TestGetHistoryPerField(t *testing.T) {
	f := newAuditFixture(t)
	gdb := f.db
	log := testutil.Logger(t)
	history := audit.NewHistoryService(gdb, log, f.mods)
	ctx := context.Background()
	actor := types.Actor{ID: uuid.New(), Name: "Rico"}

	created, err := f.store.Create(ctx, nil, actor, []*types.Weather{{
		Municipality: "Baler",
		WindSpeedKph: 40,
	}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id := created[0].ID

	edit := &types.Weather{Municipality: "Baler", WindSpeedKph: 55}
	edit.SetReportID(id)
	if _, err := f.store.Update(ctx, nil, actor, edit); err != nil {
		t.Fatalf("update: %v", err)
	}

	fieldHistory, err := history.GetHistory(ctx, nil, types.KindWeather, id)
	if err != nil {
		t.Fatalf("get history: %v", err)
	}

	wind := fieldHistory["wind_speed_kph"]
	if len(wind) != 2 {
		t.Fatalf("expected creation + update for wind speed, got %d", len(wind))
	}
	// newest first
	if wind[0].Old != 40.0 || wind[0].New != 55.0 {
		t.Fatalf("expected newest change 40->55, got %v->%v", wind[0].Old, wind[0].New)
	}
	if wind[1].Old != nil || wind[1].New != 40.0 {
		t.Fatalf("expected creation change nil->40, got %v->%v", wind[1].Old, wind[1].New)
	}
	if wind[0].Actor.Name != "Rico" {
		t.Fatalf("expected actor attribution, got %q", wind[0].Actor.Name)
	}

	// the municipality never changed after creation
	if got := len(fieldHistory["municipality"]); got != 1 {
		t.Fatalf("expected a single municipality change, got %d", got)
	}
}

func TestGetHistoryForBatchKeys(t *testing.T) {
	f := newAuditFixture(t)
	log := testutil.Logger(t)
	history := audit.NewHistoryService(f.db, log, f.mods)
	ctx := context.Background()
	actor := types.Actor{ID: uuid.New(), Name: "Rico"}

	created, err := f.store.Create(ctx, nil, actor, []*types.Weather{
		{Municipality: "Baler", WindSpeedKph: 40},
		{Municipality: "Dipaculao", WindSpeedKph: 30},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	ids := []uuid.UUID{created[0].ID, created[1].ID}
	batch, err := history.GetHistoryForBatch(ctx, nil, types.KindWeather, ids)
	if err != nil {
		t.Fatalf("batch history: %v", err)
	}

	for i, id := range ids {
		key := fmt.Sprintf("%s_municipality", id)
		entries, ok := batch[key]
		if !ok || len(entries) != 1 {
			t.Fatalf("expected one municipality entry under %q", key)
		}
		want := created[i].Municipality
		if entries[0].New != want {
			t.Fatalf("expected %q, got %v", want, entries[0].New)
		}
	}
}

func TestGetHistoryEmpty(t *testing.T) {
	f := newAuditFixture(t)
	log := testutil.Logger(t)
	history := audit.NewHistoryService(f.db, log, f.mods)

	fieldHistory, err := history.GetHistory(context.Background(), nil, types.KindWeather, uuid.New())
	if err != nil {
		t.Fatalf("get history: %v", err)
	}
	if len(fieldHistory) != 0 {
		t.Fatalf("expected empty history, got %d fields", len(fieldHistory))
	}
}
