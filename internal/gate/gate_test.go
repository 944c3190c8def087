package gate_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/aurorapdrrmo/sitrep-backend/internal/cache"
	"github.com/aurorapdrrmo/sitrep-backend/internal/gate"
	"github.com/aurorapdrrmo/sitrep-backend/internal/repos"
	"github.com/aurorapdrrmo/sitrep-backend/internal/testutil"
	"github.com/aurorapdrrmo/sitrep-backend/internal/types"
)

func newGateFixture(t *testing.T) (*gate.FormGate, repos.TyphoonRepo) {
	t.Helper()
	gdb := testutil.DB(t)
	log := testutil.Logger(t)
	repo := repos.NewTyphoonRepo(gdb, log)
	return gate.NewFormGate(gdb, log, repo, nil), repo
}

func seedTyphoon(t *testing.T, repo repos.TyphoonRepo, name, status string, startedAt time.Time) *types.Typhoon {
	t.Helper()
	typhoon, err := repo.Create(context.Background(), nil, &types.Typhoon{
		ID:        uuid.New(),
		Name:      name,
		Status:    status,
		StartedAt: startedAt,
		CreatedBy: uuid.New(),
	})
	if err != nil {
		t.Fatalf("seed typhoon: %v", err)
	}
	return typhoon
}

func TestCheckNoEvent(t *testing.T) {
	formGate, _ := newGateFixture(t)
	encoder := types.Actor{ID: uuid.New(), Name: "Rico"}

	decision, err := formGate.Check(context.Background(), nil, encoder)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if decision.Result != gate.BlockedNoEvent {
		t.Fatalf("expected blocked_no_event, got %q", decision.Result)
	}
	if decision.Writable() || decision.PageVisible() {
		t.Fatal("no-event block must hide the forms entirely")
	}
	if decision.Reason() == "" {
		t.Fatal("blocked decision must carry a reason")
	}
}

func TestCheckActiveEvent(t *testing.T) {
	formGate, repo := newGateFixture(t)
	typhoon := seedTyphoon(t, repo, "Egay", types.TyphoonStatusActive, time.Now().UTC())
	encoder := types.Actor{ID: uuid.New(), Name: "Rico"}

	decision, err := formGate.Check(context.Background(), nil, encoder)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if decision.Result != gate.Allowed {
		t.Fatalf("expected allowed, got %q", decision.Result)
	}
	if decision.Typhoon == nil || decision.Typhoon.ID != typhoon.ID {
		t.Fatal("allowed decision must resolve the open typhoon")
	}
}

func TestCheckPausedEvent(t *testing.T) {
	formGate, repo := newGateFixture(t)
	seedTyphoon(t, repo, "Egay", types.TyphoonStatusPaused, time.Now().UTC())
	encoder := types.Actor{ID: uuid.New(), Name: "Rico"}

	decision, err := formGate.Check(context.Background(), nil, encoder)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if decision.Result != gate.BlockedPaused {
		t.Fatalf("expected blocked_paused, got %q", decision.Result)
	}
	// paused is asymmetric: the page still renders, writes do not land
	if decision.Writable() {
		t.Fatal("paused event must reject programmatic writes")
	}
	if !decision.PageVisible() {
		t.Fatal("paused event must still render the page")
	}
}

func TestCheckEndedEvent(t *testing.T) {
	formGate, repo := newGateFixture(t)
	seedTyphoon(t, repo, "Egay", types.TyphoonStatusEnded, time.Now().UTC())
	encoder := types.Actor{ID: uuid.New(), Name: "Rico"}

	decision, err := formGate.Check(context.Background(), nil, encoder)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if decision.Result != gate.BlockedEnded {
		t.Fatalf("expected blocked_ended, got %q", decision.Result)
	}
	if decision.Writable() || decision.PageVisible() {
		t.Fatal("ended block must hide the forms entirely")
	}
}

func TestCheckWithCacheConfigured(t *testing.T) {
	gdb := testutil.DB(t)
	log := testutil.Logger(t)
	repo := repos.NewTyphoonRepo(gdb, log)
	// a cache without a backing client is a no-op, so the decision must
	// still resolve through the registry
	formGate := gate.NewFormGate(gdb, log, repo, cache.NewTyphoonCache(nil, log))
	typhoon := seedTyphoon(t, repo, "Egay", types.TyphoonStatusActive, time.Now().UTC())
	encoder := types.Actor{ID: uuid.New(), Name: "Rico"}

	decision, err := formGate.Check(context.Background(), nil, encoder)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if decision.Result != gate.Allowed {
		t.Fatalf("expected allowed, got %q", decision.Result)
	}
	if decision.Typhoon == nil || decision.Typhoon.ID != typhoon.ID {
		t.Fatal("decision must resolve the open typhoon")
	}
}

func TestCheckAdminBypass(t *testing.T) {
	formGate, repo := newGateFixture(t)
	admin := types.Actor{ID: uuid.New(), Name: "Dana", IsAdmin: true}

	// admins pass even with no event at all
	decision, err := formGate.Check(context.Background(), nil, admin)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if decision.Result != gate.Allowed {
		t.Fatalf("expected allowed for admin, got %q", decision.Result)
	}
	if decision.Typhoon != nil {
		t.Fatal("no typhoon should resolve when none is open")
	}

	// and their writes still get scoped when one is open
	typhoon := seedTyphoon(t, repo, "Egay", types.TyphoonStatusPaused, time.Now().UTC())
	decision, err = formGate.Check(context.Background(), nil, admin)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if decision.Result != gate.Allowed {
		t.Fatalf("expected allowed for admin during pause, got %q", decision.Result)
	}
	if decision.Typhoon == nil || decision.Typhoon.ID != typhoon.ID {
		t.Fatal("admin decision must still resolve the open typhoon")
	}
}
