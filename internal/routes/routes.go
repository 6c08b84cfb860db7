package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/animalcarehq/animalcare-api/internal/audit"
	"github.com/animalcarehq/animalcare-api/internal/cache"
	"github.com/animalcarehq/animalcare-api/internal/clock"
	"github.com/animalcarehq/animalcare-api/internal/config"
	"github.com/animalcarehq/animalcare-api/internal/handlers"
	infraRepo "github.com/animalcarehq/animalcare-api/internal/infra/repository"
	"github.com/animalcarehq/animalcare-api/internal/middleware"
	"github.com/animalcarehq/animalcare-api/internal/notify"
	ucAppointment "github.com/animalcarehq/animalcare-api/internal/usecase/appointment"
	ucSchedule "github.com/animalcarehq/animalcare-api/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	mailer := notify.NewMailer(cfg)
	notifyDispatcher := notify.NewDispatcher(mailer)

	slotCache := cache.New(cfg.RedisURL)

	now := clock.Clock(clock.System)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	bookUC := ucAppointment.NewBook(
		appointmentRepo,
		auditDispatcher,
		notifyDispatcher,
		slotCache,
		now,
		cfg.MaxAppointmentMinutes,
	)

	rescheduleUC := ucAppointment.NewReschedule(
		appointmentRepo,
		auditDispatcher,
		slotCache,
		now,
		cfg.MaxAppointmentMinutes,
	)

	cancelUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
		notifyDispatcher,
		slotCache,
		now,
	)

	completeUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
		now,
	)

	noShowUC := ucAppointment.NewMarkNoShow(
		appointmentRepo,
		auditDispatcher,
	)

	slotsUC := ucAppointment.NewGetSlots(appointmentRepo, slotCache)

	listByDateUC := ucAppointment.NewListByDate(appointmentRepo)
	listByMonthUC := ucAppointment.NewListByMonth(appointmentRepo)

	// ======================================================
	// USE CASES — SCHEDULES
	// ======================================================
	createWeeklyUC := ucSchedule.NewCreateWeekly(scheduleRepo, auditDispatcher, slotCache)
	replaceWeeklyUC := ucSchedule.NewReplaceWeekly(scheduleRepo, auditDispatcher, slotCache)
	deleteDayUC := ucSchedule.NewDeleteDay(scheduleRepo, auditDispatcher, slotCache)
	deleteAllUC := ucSchedule.NewDeleteAll(scheduleRepo, auditDispatcher, slotCache)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	ownerHandler := handlers.NewOwnerHandler(db)
	animalHandler := handlers.NewAnimalHandler(db, now)
	veterinarianHandler := handlers.NewVeterinarianHandler(db, now)
	receptionistHandler := handlers.NewReceptionistHandler(db)
	specialtyHandler := handlers.NewSpecialtyHandler(db)

	scheduleHandler := handlers.NewScheduleHandler(
		db,
		createWeeklyUC,
		replaceWeeklyUC,
		deleteDayUC,
		deleteAllUC,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		auditDispatcher,
		now,
		bookUC,
		rescheduleUC,
		cancelUC,
		completeUC,
		noShowUC,
		slotsUC,
		listByDateUC,
		listByMonthUC,
	)

	adminHandler := handlers.NewAdminHandler(db, now)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// REGISTRY
			// ------------------------------
			staff := secured.Group("/", middleware.RequireRoles("admin", "receptionist"))
			{
				staff.POST("/owners", ownerHandler.Create)
				staff.GET("/owners", ownerHandler.List)
				staff.GET("/owners/:id", ownerHandler.Get)
				staff.PUT("/owners/:id", ownerHandler.Update)
				staff.DELETE("/owners/:id", ownerHandler.Delete)

				staff.POST("/animals", animalHandler.Create)
				staff.GET("/animals", animalHandler.List)
				staff.GET("/animals/:id", animalHandler.Get)
				staff.PUT("/animals/:id", animalHandler.Update)
				staff.DELETE("/animals/:id", animalHandler.Delete)
			}

			secured.GET("/veterinarians", veterinarianHandler.List)
			secured.GET("/veterinarians/:vetId", veterinarianHandler.Get)
			secured.GET("/specialties", specialtyHandler.List)

			admin := secured.Group("/", middleware.RequireRoles("admin"))
			{
				admin.POST("/veterinarians", veterinarianHandler.Create)
				admin.PUT("/veterinarians/:vetId", veterinarianHandler.Update)
				admin.DELETE("/veterinarians/:vetId", veterinarianHandler.Delete)

				admin.POST("/receptionists", receptionistHandler.Create)
				admin.GET("/receptionists", receptionistHandler.List)
				admin.GET("/receptionists/:id", receptionistHandler.Get)
				admin.PUT("/receptionists/:id", receptionistHandler.Update)
				admin.DELETE("/receptionists/:id", receptionistHandler.Delete)

				admin.POST("/specialties", specialtyHandler.Create)
				admin.PUT("/specialties/:id", specialtyHandler.Update)
				admin.DELETE("/specialties/:id", specialtyHandler.Delete)

				// ------------------------------
				// WEEKLY SCHEDULES
				// ------------------------------
				admin.POST("/veterinarians/:vetId/schedules", scheduleHandler.Create)
				admin.PUT("/veterinarians/:vetId/schedules", scheduleHandler.ReplaceAll)
				admin.DELETE("/veterinarians/:vetId/schedules", scheduleHandler.DeleteAll)
				admin.DELETE("/schedules/:id", scheduleHandler.DeleteDay)

				admin.DELETE("/appointments/:id", appointmentHandler.Delete)

				admin.GET("/admin/dashboard", adminHandler.Dashboard)
				admin.GET("/admin/reports/monthly", adminHandler.MonthlyReport)
				admin.GET("/admin/audit-logs", auditLogsHandler.List)
			}

			secured.GET("/veterinarians/:vetId/schedules", scheduleHandler.ListForVet)
			secured.GET("/me/schedule", scheduleHandler.MySchedule)
			secured.GET("/me/appointments", appointmentHandler.MyAppointments)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			booking := secured.Group("/", middleware.RequireRoles("admin", "receptionist"))
			{
				booking.POST("/appointments", appointmentHandler.Create)
				booking.PUT("/appointments/:id", appointmentHandler.Reschedule)
				booking.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
				booking.PATCH("/appointments/:id/no-show", appointmentHandler.NoShow)
			}

			vetOrStaff := secured.Group("/", middleware.RequireRoles("admin", "receptionist", "veterinarian"))
			{
				vetOrStaff.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
				vetOrStaff.GET("/appointments", appointmentHandler.ListByDate)
				vetOrStaff.GET("/appointments/today", appointmentHandler.Today)
				vetOrStaff.GET("/appointments/month", appointmentHandler.ListByMonth)
				vetOrStaff.GET("/appointments/slots", appointmentHandler.Slots)
			}
		}
	}
}
