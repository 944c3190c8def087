package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/aurorapdrrmo/sitrep-backend/internal/apperr"
	"github.com/aurorapdrrmo/sitrep-backend/internal/repos"
	"github.com/aurorapdrrmo/sitrep-backend/internal/requestdata"
	"github.com/aurorapdrrmo/sitrep-backend/internal/services"
	"github.com/aurorapdrrmo/sitrep-backend/internal/testutil"
	"github.com/aurorapdrrmo/sitrep-backend/internal/types"
)

func newAuthFixture(t *testing.T) (services.AuthService, repos.UserRepo, *gorm.DB) {
	t.Helper()
	gdb := testutil.DB(t)
	log := testutil.Logger(t)
	users := repos.NewUserRepo(gdb, log)
	return services.NewAuthService(gdb, log, users, "test-secret", time.Hour), users, gdb
}

func TestEnsureDefaultAdminSeedsOnce(t *testing.T) {
	auth, users, _ := newAuthFixture(t)
	ctx := context.Background()

	if err := auth.EnsureDefaultAdmin(ctx, "Dana", "dana@pdrrmo.local", "letmein"); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	if err := auth.EnsureDefaultAdmin(ctx, "Dana", "dana@pdrrmo.local", "letmein"); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	count, err := users.CountAll(ctx, nil)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single seeded user, got %d", count)
	}

	admin, err := users.GetByEmail(ctx, nil, "dana@pdrrmo.local")
	if err != nil {
		t.Fatalf("get admin: %v", err)
	}
	if admin == nil || admin.Role != types.RoleAdmin {
		t.Fatal("seeded user must be an administrator")
	}
	if admin.Password == "letmein" {
		t.Fatal("password must be stored hashed")
	}
}

func TestLoginRoundTrip(t *testing.T) {
	auth, _, _ := newAuthFixture(t)
	ctx := context.Background()

	if err := auth.EnsureDefaultAdmin(ctx, "Dana", "dana@pdrrmo.local", "letmein"); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	token, user, err := auth.Login(ctx, "Dana@PDRRMO.local", "letmein")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatal("login must return a token")
	}

	resolved, err := auth.SetContextFromToken(ctx, token)
	if err != nil {
		t.Fatalf("resolve token: %v", err)
	}
	rd := requestdata.GetRequestData(resolved)
	if rd == nil {
		t.Fatal("resolved context must carry request data")
	}
	if rd.ActorID != user.ID || rd.ActorName != "Dana" || !rd.IsAdmin {
		t.Fatalf("unexpected request data: %+v", rd)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	auth, _, _ := newAuthFixture(t)
	ctx := context.Background()

	if err := auth.EnsureDefaultAdmin(ctx, "Dana", "dana@pdrrmo.local", "letmein"); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	if _, _, err := auth.Login(ctx, "dana@pdrrmo.local", "wrong"); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error for wrong password, got %v", err)
	}
	if _, _, err := auth.Login(ctx, "nobody@pdrrmo.local", "letmein"); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error for unknown user, got %v", err)
	}
}

func TestSetContextFromTokenRejectsTampering(t *testing.T) {
	auth, _, _ := newAuthFixture(t)
	ctx := context.Background()

	if _, err := auth.SetContextFromToken(ctx, "not-a-token"); err == nil {
		t.Fatal("expected malformed token rejection")
	}

	if err := auth.EnsureDefaultAdmin(ctx, "Dana", "dana@pdrrmo.local", "letmein"); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	token, _, err := auth.Login(ctx, "dana@pdrrmo.local", "letmein")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	gdb := testutil.DB(t)
	otherLog := testutil.Logger(t)
	otherAuth := services.NewAuthService(gdb, otherLog, repos.NewUserRepo(gdb, otherLog), "other-secret", time.Hour)
	if _, err := otherAuth.SetContextFromToken(ctx, token); err == nil {
		t.Fatal("expected signature rejection under a different secret")
	}
}
