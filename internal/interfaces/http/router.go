package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/jhoicas/cargopilot-api/internal/application/access"
	appanalytics "github.com/jhoicas/cargopilot-api/internal/application/analytics"
	"github.com/jhoicas/cargopilot-api/internal/application/auth"
	"github.com/jhoicas/cargopilot-api/internal/application/mission"
	"github.com/jhoicas/cargopilot-api/internal/application/usecase"
	"github.com/jhoicas/cargopilot-api/internal/infrastructure/observability"
	"github.com/jhoicas/cargopilot-api/internal/infrastructure/realtime"
)

// Pinger comprobación de la base de datos para /health (lo cumple *pgxpool.Pool).
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ClientUC    *usecase.ClientUseCase
	ChauffeurUC *usecase.ChauffeurUseCase
	VehiculeUC  *usecase.VehiculeUseCase
	MissionUC   *mission.UseCase
	CarteUC     *usecase.CarteUseCase
	ContactUC   *usecase.ContactUseCase
	IncidentUC  *usecase.IncidentUseCase
	UserUC      *usecase.UserUseCase
	DashboardUC *appanalytics.DashboardUseCase

	Hub       *realtime.Hub
	Validator *Validator
	Metrics   *observability.Metrics
	DB        Pinger
	Log       zerolog.Logger
	AppName   string
}

// Router registra middlewares globales y rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	val := deps.Validator
	if val == nil {
		val = NewValidator()
	}

	app.Use(RequestLogger(deps.Log))
	if deps.Metrics != nil {
		app.Use(MetricsMiddleware(deps.Metrics))
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Metrics.Registry, promhttp.HandlerOpts{})))
	}

	health := NewHealthHandler(deps.DB, deps.AppName)
	app.Get("/health", health.Check)

	// WebSocket: el token se valida antes del upgrade.
	ws := NewWSHandler(deps.AuthUC, deps.Hub)
	app.Get("/ws", ws.Handshake, ws.Upgrade())

	// Público
	contactHandler := NewContactHandler(deps.ContactUC, val)
	app.Post("/contact", contactHandler.Submit)

	authn := AuthMiddleware(deps.AuthUC)

	authGroup := app.Group("/auth", authn, Authorize(access.Authenticated(), ""))
	authGroup.Get("/me", NewAuthHandler().Me)

	// Administración (SousAdmin)
	admin := app.Group("/admin", authn, Authorize(access.AdminOnly, ""))

	clients := admin.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC, val)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Patch("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)
	clients.Patch("/:id/upload-picture", clientHandler.UploadPicture)

	chauffeurs := admin.Group("/chauffeurs")
	chauffeurHandler := NewChauffeurHandler(deps.ChauffeurUC, val)
	chauffeurs.Post("/", chauffeurHandler.Create)
	chauffeurs.Get("/", chauffeurHandler.List)
	chauffeurs.Get("/document/:docId/view", chauffeurHandler.ViewDocument)
	chauffeurs.Get("/:id", chauffeurHandler.Detail)
	chauffeurs.Delete("/:id", chauffeurHandler.Delete)
	chauffeurs.Post("/:id/formations", chauffeurHandler.AddFormation)
	chauffeurs.Post("/:id/incidents", chauffeurHandler.AddIncident)
	chauffeurs.Patch("/:id/upload-document", chauffeurHandler.UploadDocument)
	chauffeurs.Patch("/:id/upload-picture", chauffeurHandler.UploadPicture)

	vehicules := admin.Group("/vehicules")
	vehiculeHandler := NewVehiculeHandler(deps.VehiculeUC, val)
	vehicules.Post("/", vehiculeHandler.Create)
	vehicules.Get("/", vehiculeHandler.List)
	vehicules.Patch("/entretiens/:entretienId", vehiculeHandler.UpdateEntretien)
	vehicules.Delete("/entretiens/:entretienId", vehiculeHandler.DeleteEntretien)
	vehicules.Get("/:id", vehiculeHandler.Detail)
	vehicules.Patch("/:id", vehiculeHandler.Update)
	vehicules.Patch("/:id/upload-photo", vehiculeHandler.UploadPhoto)
	vehicules.Post("/:id/entretiens", vehiculeHandler.AddEntretien)

	missions := admin.Group("/missions")
	missionHandler := NewMissionHandler(deps.MissionUC, val)
	missions.Post("/", missionHandler.Create)
	missions.Get("/", missionHandler.List)
	missions.Get("/:id", missionHandler.Get)
	missions.Patch("/:id/status", missionHandler.UpdateStatusAdmin)
	missions.Get("/:id/pdf", missionHandler.DownloadPDF)

	cartes := admin.Group("/cartes")
	carteHandler := NewCarteHandler(deps.CarteUC, val)
	cartes.Post("/", carteHandler.Create)
	cartes.Get("/", carteHandler.List)
	cartes.Get("/:id", carteHandler.GetByID)
	cartes.Patch("/:id", carteHandler.Update)
	cartes.Delete("/:id", carteHandler.Delete)

	contact := admin.Group("/contact")
	contact.Get("/", contactHandler.List)
	contact.Patch("/:id/status", contactHandler.UpdateStatus)
	contact.Delete("/:id", contactHandler.Delete)

	users := admin.Group("/users")
	userHandler := NewUserHandler(deps.UserUC, val)
	users.Get("/", userHandler.List)
	users.Post("/sous-admin", userHandler.CreateSousAdmin)
	users.Patch("/me/password", userHandler.ChangePassword)
	users.Get("/:id", userHandler.GetByID)
	users.Patch("/:id", userHandler.Update)
	users.Patch("/:id/status", userHandler.UpdateStatus)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	admin.Get("/dashboard/analytics", dashboardHandler.GetAnalytics)

	// App móvil (Chauffeur)
	mobile := app.Group("/mobile", authn, Authorize(access.DriverOnly, ""))
	mobile.Get("/chauffeurs/me", chauffeurHandler.Me)
	mobile.Get("/vehicules/my-vehicle", vehiculeHandler.MyVehicle)
	mobile.Get("/missions/my-active", missionHandler.MyActive)
	mobile.Patch("/missions/:id/status", missionHandler.UpdateStatusMobile)
	mobile.Post("/incidents", Authorize(access.IsChauffeur(), ""), NewIncidentHandler(deps.IncidentUC, val).Report)
}
