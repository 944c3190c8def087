package main

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/aurorapdrrmo/sitrep-backend/internal/audit"
	"github.com/aurorapdrrmo/sitrep-backend/internal/cache"
	"github.com/aurorapdrrmo/sitrep-backend/internal/db"
	"github.com/aurorapdrrmo/sitrep-backend/internal/export"
	"github.com/aurorapdrrmo/sitrep-backend/internal/gate"
	"github.com/aurorapdrrmo/sitrep-backend/internal/handlers"
	"github.com/aurorapdrrmo/sitrep-backend/internal/logger"
	"github.com/aurorapdrrmo/sitrep-backend/internal/middleware"
	"github.com/aurorapdrrmo/sitrep-backend/internal/repos"
	"github.com/aurorapdrrmo/sitrep-backend/internal/server"
	"github.com/aurorapdrrmo/sitrep-backend/internal/services"
	"github.com/aurorapdrrmo/sitrep-backend/internal/types"
	"github.com/aurorapdrrmo/sitrep-backend/internal/utils"
)

// wiring bundles the shared collaborators every report kind needs.
type wiring struct {
	db       *gorm.DB
	log      *logger.Logger
	gate     *gate.FormGate
	ledger   *audit.Ledger
	history  *audit.HistoryService
	typhoons services.TyphoonService
}

func wireReport[T any, PT interface {
	*T
	types.Report
}](w *wiring, slug string) (handlers.ReportRoutes, services.KindBinding) {
	repo := repos.NewReportRepo[T, PT](w.db, w.log)
	store := audit.Wrap(repo, w.ledger, w.log)
	svc := services.NewReportService(w.db, w.log, w.gate, store)
	routes := handlers.NewReportHandler(slug, svc, w.history, w.typhoons)
	return routes, svc.Binding()
}

func main() {
	mode := utils.GetEnv("APP_ENV", "development", nil)
	baseLog, err := logger.New(mode)
	if err != nil {
		panic(err)
	}
	defer baseLog.Sync()

	jwtSecret := utils.GetEnv("JWT_SECRET_KEY", "", baseLog)
	if jwtSecret == "" {
		baseLog.Fatal("JWT_SECRET_KEY must be set")
	}
	tokenTTL := time.Duration(utils.GetEnvAsInt("TOKEN_TTL_HOURS", 12, baseLog)) * time.Hour
	exportDir := utils.GetEnv("EXPORT_DIR", "./exports", baseLog)

	pg, err := db.NewPostgresService(baseLog)
	if err != nil {
		baseLog.Fatal("failed to initialize postgres", "error", err)
	}
	if err := pg.AutoMigrateAll(); err != nil {
		baseLog.Fatal("failed to run migrations", "error", err)
	}
	gdb := pg.DB()

	var typhoonCache *cache.TyphoonCache
	if redisAddr := utils.GetEnv("REDIS_ADDR", "", baseLog); redisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: utils.GetEnv("REDIS_PASSWORD", "", baseLog),
		})
		typhoonCache = cache.NewTyphoonCache(client, baseLog)
	}

	typhoonRepo := repos.NewTyphoonRepo(gdb, baseLog)
	userRepo := repos.NewUserRepo(gdb, baseLog)
	modRepo := repos.NewModificationRepo(gdb, baseLog)

	ledger := audit.NewLedger(gdb, baseLog, modRepo)
	history := audit.NewHistoryService(gdb, baseLog, modRepo)
	formGate := gate.NewFormGate(gdb, baseLog, typhoonRepo, typhoonCache)

	typhoonService := services.NewTyphoonService(gdb, baseLog, typhoonRepo, typhoonCache)
	authService := services.NewAuthService(gdb, baseLog, userRepo, jwtSecret, tokenTTL)

	w := &wiring{
		db:       gdb,
		log:      baseLog,
		gate:     formGate,
		ledger:   ledger,
		history:  history,
		typhoons: typhoonService,
	}

	type wired struct {
		routes  handlers.ReportRoutes
		binding services.KindBinding
	}
	var all []wired
	add := func(routes handlers.ReportRoutes, binding services.KindBinding) {
		all = append(all, wired{routes: routes, binding: binding})
	}

	add(wireReport[types.Weather](w, "weather"))
	add(wireReport[types.Casualty](w, "casualties"))
	add(wireReport[types.Injured](w, "injured"))
	add(wireReport[types.Missing](w, "missing"))
	add(wireReport[types.PreEmptiveReport](w, "pre-emptive-reports"))
	add(wireReport[types.Road](w, "roads"))
	add(wireReport[types.Bridge](w, "bridges"))
	add(wireReport[types.Communication](w, "communications"))
	add(wireReport[types.ElectricityService](w, "electricity-services"))
	add(wireReport[types.WaterService](w, "water-services"))
	add(wireReport[types.WaterLevel](w, "water-levels"))
	add(wireReport[types.IncidentMonitored](w, "incidents-monitored"))
	add(wireReport[types.AffectedTourist](w, "affected-tourists"))
	add(wireReport[types.DamagedHouseReport](w, "damaged-houses"))
	add(wireReport[types.ResponseOperation](w, "response-operations"))
	add(wireReport[types.AssistanceExtended](w, "assistance-extended"))
	add(wireReport[types.AssistanceProvidedLgu](w, "assistance-provided-lgu"))
	add(wireReport[types.SuspensionOfClass](w, "class-suspensions"))
	add(wireReport[types.SuspensionOfWork](w, "work-suspensions"))
	add(wireReport[types.AgricultureReport](w, "agriculture-reports"))
	add(wireReport[types.UscDeclaration](w, "usc-declarations"))
	add(wireReport[types.PrePositioning](w, "pre-positioning"))

	reportRoutes := make([]handlers.ReportRoutes, 0, len(all))
	bindings := make([]services.KindBinding, 0, len(all))
	for _, entry := range all {
		reportRoutes = append(reportRoutes, entry.routes)
		bindings = append(bindings, entry.binding)
	}

	relinkService := services.NewRelinkService(gdb, baseLog, typhoonRepo, bindings)
	summaryService := services.NewSummaryService(gdb, baseLog, typhoonService, bindings)
	workbookService := export.NewWorkbookService(exportDir, baseLog, bindings)

	adminName := utils.GetEnv("ADMIN_NAME", "Administrator", baseLog)
	adminEmail := utils.GetEnv("ADMIN_EMAIL", "admin@localhost", baseLog)
	adminPassword := utils.GetEnv("ADMIN_PASSWORD", "", baseLog)
	if adminPassword != "" {
		if err := authService.EnsureDefaultAdmin(context.Background(), adminName, adminEmail, adminPassword); err != nil {
			baseLog.Fatal("failed to seed default administrator", "error", err)
		}
	}

	router := server.NewRouter(server.RouterConfig{
		AuthHandler:    handlers.NewAuthHandler(authService),
		AuthMiddleware: middleware.NewAuthMiddleware(baseLog, authService),
		TyphoonHandler: handlers.NewTyphoonHandler(typhoonService, workbookService, formGate),
		SummaryHandler: handlers.NewSummaryHandler(summaryService),
		RelinkHandler:  handlers.NewRelinkHandler(relinkService),
		ReportRoutes:   reportRoutes,
	})

	serverPort := utils.GetEnv("SERVER_PORT", "8080", baseLog)
	baseLog.Info("starting server", "port", serverPort, "mode", mode)
	if err := router.Run(":" + serverPort); err != nil {
		baseLog.Fatal("server exited", "error", err)
	}
}
