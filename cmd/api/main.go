package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	_ "github.com/jhoicas/cargopilot-api/docs"
	appanalytics "github.com/jhoicas/cargopilot-api/internal/application/analytics"
	"github.com/jhoicas/cargopilot-api/internal/application/auth"
	"github.com/jhoicas/cargopilot-api/internal/application/mission"
	"github.com/jhoicas/cargopilot-api/internal/application/ports"
	"github.com/jhoicas/cargopilot-api/internal/application/tasks"
	"github.com/jhoicas/cargopilot-api/internal/application/usecase"
	infraemail "github.com/jhoicas/cargopilot-api/internal/infrastructure/email"
	"github.com/jhoicas/cargopilot-api/internal/infrastructure/observability"
	infrapdf "github.com/jhoicas/cargopilot-api/internal/infrastructure/pdf"
	"github.com/jhoicas/cargopilot-api/internal/infrastructure/postgres"
	"github.com/jhoicas/cargopilot-api/internal/infrastructure/realtime"
	"github.com/jhoicas/cargopilot-api/internal/infrastructure/supabase"
	httpRouter "github.com/jhoicas/cargopilot-api/internal/interfaces/http"
	"github.com/jhoicas/cargopilot-api/pkg/config"
	"github.com/jhoicas/cargopilot-api/pkg/logger"
)

const bodyLimit = 10 * 1024 * 1024 // documentos y fotos

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Importes como números JSON, no strings.
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	metrics := observability.NewMetrics()

	userRepo := postgres.NewUserRepository(pool)
	chauffeurRepo := postgres.NewChauffeurRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	vehiculeRepo := postgres.NewVehiculeRepository(pool)
	missionRepo := postgres.NewMissionRepository(pool)
	carteRepo := postgres.NewCarteRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	incidentRepo := postgres.NewIncidentRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Supabase: Auth admin (identidad) y Storage (archivos) comparten cliente y circuit breaker.
	sb := supabase.NewClient(cfg.Supabase, metrics, log.Component("supabase"))

	authUC := auth.NewAuthUseCase(userRepo, chauffeurRepo, cfg.JWT.Secret)
	hub := realtime.NewHub(authUC, metrics, log.Component("ws"))

	var mailer ports.Mailer = infraemail.NewLogMailer(log.Component("mailer"))
	if cfg.SMTP.Enabled() {
		mailer = infraemail.NewSMTPMailer(cfg.SMTP)
	}

	clientUC := usecase.NewClientUseCase(clientRepo, sb)
	chauffeurUC := usecase.NewChauffeurUseCase(usecase.ChauffeurDeps{
		Chauffeurs: chauffeurRepo,
		Users:      userRepo,
		Missions:   missionRepo,
		Vehicules:  vehiculeRepo,
		Incidents:  incidentRepo,
		Tx:         txRunner,
		Identity:   sb,
		Blobs:      sb,
		Mailer:     mailer,
		Log:        log.Component("chauffeurs"),
	})
	vehiculeUC := usecase.NewVehiculeUseCase(vehiculeRepo, chauffeurRepo, sb)
	missionUC := mission.NewUseCase(missionRepo, clientRepo, chauffeurRepo, vehiculeRepo,
		hub, infrapdf.NewMissionSheetGenerator(), log.Component("missions"))
	carteUC := usecase.NewCarteUseCase(carteRepo, chauffeurRepo)
	contactUC := usecase.NewContactUseCase(contactRepo, hub)
	incidentUC := usecase.NewIncidentUseCase(incidentRepo, chauffeurRepo, missionRepo, hub)
	userUC := usecase.NewUserUseCase(userRepo, sb, log.Component("users"))
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

	// Tareas programadas
	scheduler := tasks.NewScheduler(log.Component("tasks"))
	scheduler.OnRun(metrics.TaskRun)
	expiration := tasks.NewExpirationCheck(chauffeurRepo, hub, cfg.Tasks.ExpirationWindowDays, log.Component("expiration"))
	if err := scheduler.Add("document_expiration", cfg.Tasks.ExpirationCron, expiration); err != nil {
		log.Fatal().Err(err).Msg("programar tareas")
	}
	scheduler.Start()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    bodyLimit,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CargoPilot API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ClientUC:    clientUC,
		ChauffeurUC: chauffeurUC,
		VehiculeUC:  vehiculeUC,
		MissionUC:   missionUC,
		CarteUC:     carteUC,
		ContactUC:   contactUC,
		IncidentUC:  incidentUC,
		UserUC:      userUC,
		DashboardUC: dashboardUC,
		Hub:         hub,
		Validator:   httpRouter.NewValidator(),
		Metrics:     metrics,
		DB:          pool,
		Log:         log.Component("http"),
		AppName:     cfg.App.Name,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	scheduler.Stop(shutdownCtx)
	hub.Shutdown()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
