package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gabrielcaixeta01/barber-agenda/internal/audit"
	"github.com/gabrielcaixeta01/barber-agenda/internal/cache"
	"github.com/gabrielcaixeta01/barber-agenda/internal/config"
	"github.com/gabrielcaixeta01/barber-agenda/internal/handlers"
	infraRepo "github.com/gabrielcaixeta01/barber-agenda/internal/infra/repository"
	"github.com/gabrielcaixeta01/barber-agenda/internal/middleware"
	ucAppointment "github.com/gabrielcaixeta01/barber-agenda/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, viewCache *cache.Cache, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES (APPOINTMENTS)
	// ======================================================
	createUC := ucAppointment.NewCreateAppointment(appointmentRepo, auditDispatcher)
	updateUC := ucAppointment.NewUpdateAppointment(appointmentRepo, auditDispatcher)
	cancelUC := ucAppointment.NewCancelAppointment(appointmentRepo, auditDispatcher)
	reactivateUC := ucAppointment.NewReactivateAppointment(appointmentRepo, auditDispatcher)
	completeUC := ucAppointment.NewCompleteAppointment(appointmentRepo, auditDispatcher)
	deleteUC := ucAppointment.NewDeleteAppointment(appointmentRepo, auditDispatcher)
	listUC := ucAppointment.NewListAppointments(appointmentRepo)
	weekUC := ucAppointment.NewGetWeekAgenda(appointmentRepo)
	statsUC := ucAppointment.NewGetAdminStats(appointmentRepo)
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	publicHandler := handlers.NewPublicHandler(db, viewCache, createUC, availabilityUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		viewCache,
		createUC,
		updateUC,
		cancelUC,
		reactivateUC,
		completeUC,
		deleteUC,
		listUC,
		weekUC,
	)

	dashboardHandler := handlers.NewDashboardHandler(statsUC)
	barberHandler := handlers.NewBarberHandler(db, viewCache, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db, viewCache, auditDispatcher)
	scheduleHandler := handlers.NewScheduleHandler(db, viewCache, auditDispatcher)
	profileHandler := handlers.NewProfileHandler(db, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC BOOKING FLOW
		// ------------------------------
		api.POST("/appointments", publicHandler.CreateAppointment)

		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/barbers", publicHandler.ListBarbers)
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/availability", publicHandler.Availability)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// ADMIN AREA (edge guard)
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg))
		{
			admin.GET("/stats", dashboardHandler.Stats)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			admin.GET("/appointments", appointmentHandler.List)
			admin.GET("/appointments/week", appointmentHandler.Week)
			admin.POST("/appointments", appointmentHandler.Create)
			admin.PATCH("/appointments/:id", appointmentHandler.Update)
			admin.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			admin.PATCH("/appointments/:id/reactivate", appointmentHandler.Reactivate)
			admin.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			admin.DELETE("/appointments/:id", appointmentHandler.Delete)

			// ------------------------------
			// CATALOG
			// ------------------------------
			admin.GET("/barbers", barberHandler.List)
			admin.POST("/barbers", barberHandler.Create)
			admin.PATCH("/barbers/:id", barberHandler.Update)
			admin.PATCH("/barbers/:id/active", barberHandler.SetActive)
			admin.DELETE("/barbers/:id", barberHandler.Delete)

			admin.GET("/services", serviceHandler.List)
			admin.POST("/services", serviceHandler.Create)
			admin.PATCH("/services/:id", serviceHandler.Update)
			admin.DELETE("/services/:id", serviceHandler.Delete)

			admin.GET("/schedules", scheduleHandler.List)
			admin.POST("/schedules", scheduleHandler.Create)
			admin.PATCH("/schedules/:id", scheduleHandler.Update)
			admin.DELETE("/schedules/:id", scheduleHandler.Delete)

			// ------------------------------
			// PROFILE / AUDIT
			// ------------------------------
			admin.GET("/profile", profileHandler.Get)
			admin.PUT("/profile", profileHandler.Upsert)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
