package gate

import (
	"context"

	"gorm.io/gorm"

	"github.com/aurorapdrrmo/sitrep-backend/internal/cache"
	"github.com/aurorapdrrmo/sitrep-backend/internal/logger"
	"github.com/aurorapdrrmo/sitrep-backend/internal/repos"
	"github.com/aurorapdrrmo/sitrep-backend/internal/types"
)

type Result string

const (
	Allowed        Result = "allowed"
	BlockedNoEvent Result = "blocked_no_event"
	BlockedPaused  Result = "blocked_paused"
	BlockedEnded   Result = "blocked_ended"
)

// Decision is the gate's verdict for one mutation request. Paused is the
// asymmetric case: API writes are rejected while interactive pages still
// load, rendering the forms disabled.
type Decision struct {
	Result  Result         `json:"result"`
	Typhoon *types.Typhoon `json:"typhoon,omitempty"`
}

// Writable reports whether a programmatic submission may proceed.
func (d Decision) Writable() bool { return d.Result == Allowed }

// PageVisible reports whether an interactive page may render the forms at
// all; paused shows them disabled instead of redirecting.
func (d Decision) PageVisible() bool {
	return d.Result == Allowed || d.Result == BlockedPaused
}

// Reason is the user-facing explanation for a blocked decision.
func (d Decision) Reason() string {
	switch d.Result {
	case BlockedNoEvent:
		return "no active typhoon event exists"
	case BlockedPaused:
		return "the current typhoon event is paused"
	case BlockedEnded:
		return "the typhoon event has ended"
	default:
		return ""
	}
}

// FormGate decides, per mutation request, whether report submission is
// currently permitted. It never mutates anything itself; callers attach
// the resolved typhoon id to new records.
type FormGate struct {
	db       *gorm.DB
	log      *logger.Logger
	typhoons repos.TyphoonRepo
	cache    *cache.TyphoonCache
}

func NewFormGate(db *gorm.DB, baseLog *logger.Logger, typhoons repos.TyphoonRepo, typhoonCache *cache.TyphoonCache) *FormGate {
	return &FormGate{
		db:       db,
		log:      baseLog.With("component", "FormGate"),
		typhoons: typhoons,
		cache:    typhoonCache,
	}
}

func (g *FormGate) Check(ctx context.Context, tx *gorm.DB, actor types.Actor) (Decision, error) {
	current, err := g.currentOpen(ctx, tx)
	if err != nil {
		return Decision{}, err
	}

	// Admins bypass the gate entirely; the typhoon is still resolved so
	// their writes get scoped when one is open.
	if actor.IsAdmin {
		return Decision{Result: Allowed, Typhoon: current}, nil
	}

	if current == nil {
		latest, err := g.typhoons.GetLatest(ctx, tx)
		if err != nil {
			return Decision{}, err
		}
		if latest != nil && latest.Status == types.TyphoonStatusEnded {
			return Decision{Result: BlockedEnded, Typhoon: latest}, nil
		}
		return Decision{Result: BlockedNoEvent}, nil
	}

	if current.Status == types.TyphoonStatusPaused {
		return Decision{Result: BlockedPaused, Typhoon: current}, nil
	}
	return Decision{Result: Allowed, Typhoon: current}, nil
}

// currentOpen resolves the active-or-paused typhoon, serving repeat checks
// from the cache. Transactional callers always read the registry directly.
func (g *FormGate) currentOpen(ctx context.Context, tx *gorm.DB) (*types.Typhoon, error) {
	if tx == nil {
		if cached, hit, err := g.cache.GetCurrent(ctx); err == nil && hit {
			return cached, nil
		} else if err != nil {
			g.log.Warn("typhoon cache read failed, falling through to registry", "error", err)
		}
	}

	current, err := g.typhoons.GetLatestByStatuses(ctx, tx, []string{types.TyphoonStatusActive, types.TyphoonStatusPaused})
	if err != nil {
		return nil, err
	}
	if tx == nil {
		if err := g.cache.SetCurrent(ctx, current); err != nil {
			g.log.Warn("typhoon cache write failed", "error", err)
		}
	}
	return current, nil
}
