package routes

import (
	"net/http"
	"time"

	"medibook/handlers"
	"medibook/middleware"
	"medibook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterDoctorRoutes registers the doctor directory, profile, and schedule
// endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		api.POST("/register", hb.DoctorHandler.RegisterDoctorHandler)
		api.GET("", hb.DoctorHandler.ListDoctorsHandler)
		api.GET("/:id", hb.DoctorHandler.GetDoctorHandler)

		api.POST("/:id/profile-update", hb.DoctorHandler.RequestProfileUpdateHandler)
		api.GET("/:id/profile-update", hb.DoctorHandler.GetPendingUpdateHandler)

		api.PUT("/:id/schedule", hb.ScheduleHandler.SetScheduleHandler)
		api.GET("/:id/schedule", hb.ScheduleHandler.GetScheduleHandler)
		api.GET("/:id/slots", hb.ScheduleHandler.GetAvailableSlotsHandler)

		api.GET("/:id/appointments", hb.AppointmentHandler.ListDoctorAppointmentsHandler)
	}
}

// RegisterAppointmentRoutes registers the booking lifecycle endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.POST("", hb.AppointmentHandler.CreateAppointmentHandler)
		api.GET("/:id", hb.AppointmentHandler.GetAppointmentHandler)
		api.PUT("/:id/confirm", hb.AppointmentHandler.ConfirmAppointmentHandler)
		api.PUT("/:id/cancel", hb.AppointmentHandler.CancelAppointmentHandler)
		api.PUT("/:id/reject", hb.AppointmentHandler.RejectAppointmentHandler)
		api.PUT("/:id/complete", hb.AppointmentHandler.CompleteAppointmentHandler)
		api.PUT("/:id/reschedule", hb.AppointmentHandler.RescheduleAppointmentHandler)
		api.DELETE("/:id", hb.AppointmentHandler.RevokeAppointmentHandler)
	}
}

// RegisterPatientRoutes registers patient-facing read endpoints.
func RegisterPatientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/patients")
	{
		api.GET("/:id/appointments", hb.AppointmentHandler.ListPatientAppointmentsHandler)
		api.GET("/:id/records", hb.RecordHandler.ListRecordsHandler)
	}
}

// RegisterUserRoutes registers notification and activity-feed endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.GET("/:userId/notifications", hb.NotificationHandler.ListNotificationsHandler)
		api.PUT("/:userId/notifications/read-all", hb.NotificationHandler.MarkAllReadHandler)
		api.GET("/:userId/activity", hb.ActivityHandler.RecentActivityHandler)
	}
	r.PUT("/api/notifications/:id/read", hb.NotificationHandler.MarkReadHandler)
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.GET("/stats", hb.AdminHandler.StatsHandler)
		adminGroup.GET("/doctors", hb.AdminHandler.VerificationQueueHandler)
		adminGroup.PUT("/doctors/:id/verify", hb.AdminHandler.VerifyDoctorHandler)
		adminGroup.PUT("/doctors/:id/reject", hb.AdminHandler.RejectDoctorHandler)
		adminGroup.GET("/profile-requests", hb.AdminHandler.ProfileRequestsHandler)
		adminGroup.PUT("/profile-requests/:id/approve", hb.AdminHandler.ApproveProfileUpdateHandler)
		adminGroup.PUT("/profile-requests/:id/reject", hb.AdminHandler.RejectProfileUpdateHandler)
	}
}

// RegisterStorageRoutes registers profile image upload endpoints.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	{
		api.POST("/profile-image", hb.StorageHandler.UploadProfileImageHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint backed by the
// background health monitor.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(utils.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware())

	RegisterDoctorRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterPatientRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterHealthRoute(r)
	r.GET("/api/specialties", handlers.ListSpecialtiesHandler)
}
