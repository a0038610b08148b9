package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mindspace-care/mindspace-api/internal/appctx"
	"github.com/mindspace-care/mindspace-api/internal/handlers"
	infraRepo "github.com/mindspace-care/mindspace-api/internal/infra/repository"
	"github.com/mindspace-care/mindspace-api/internal/middleware"
	"github.com/mindspace-care/mindspace-api/internal/models"
	ucBooking "github.com/mindspace-care/mindspace-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, app *appctx.App) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(app.DB)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, app.Audit)
	cancelBookingUC := ucBooking.NewCancelBooking(bookingRepo, app.Audit)
	completeBookingUC := ucBooking.NewCompleteBooking(bookingRepo, app.Audit)
	listUserBookingsUC := ucBooking.NewListUserBookings(bookingRepo)
	listTherapistsUC := ucBooking.NewListTherapists(bookingRepo)
	getAvailabilityUC := ucBooking.NewGetAvailability(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(app)
	meHandler := handlers.NewMeHandler(app.DB)
	therapistHandler := handlers.NewTherapistHandler(app, listTherapistsUC)
	bookingHandler := handlers.NewBookingHandler(
		app,
		createBookingUC,
		cancelBookingUC,
		completeBookingUC,
		listUserBookingsUC,
		getAvailabilityUC,
	)
	adminHandler := handlers.NewAdminHandler(app)
	auditLogsHandler := handlers.NewAuditLogsHandler(app.DB)
	notificationHandler := handlers.NewNotificationHandler(app)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/therapists", therapistHandler.List)
		api.GET("/therapists/:id/slots", bookingHandler.Slots)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/signup", authHandler.SignUp)
		api.POST("/auth/login", authHandler.SignIn)
		api.POST("/auth/logout", authHandler.SignOut)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(app.Cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/auth/dashboard", authHandler.Dashboard)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings", bookingHandler.ListMine)
			secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)

			secured.GET("/notifications", notificationHandler.List)
			secured.DELETE("/notifications/:id", notificationHandler.Dismiss)
			secured.DELETE("/notifications", notificationHandler.Clear)

			// ------------------------------
			// THERAPIST / ADMIN
			// ------------------------------
			staff := secured.Group("/")
			staff.Use(middleware.RequireRole(models.RoleTherapist, models.RoleAdmin))
			{
				staff.PATCH("/bookings/:id/complete", bookingHandler.Complete)
			}

			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/therapists", adminHandler.ListTherapists)
				admin.PATCH("/therapists/:id/approve", adminHandler.Approve)
				admin.PATCH("/therapists/:id/reject", adminHandler.Reject)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
