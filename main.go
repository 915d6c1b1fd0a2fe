// File: medibook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medibook/config"
	"medibook/cron"
	"medibook/database"
	activityRepoPkg "medibook/database/repository/activity"
	appointmentRepoPkg "medibook/database/repository/appointment"
	doctorRepoPkg "medibook/database/repository/doctor"
	notificationRepoPkg "medibook/database/repository/notification"
	recordRepoPkg "medibook/database/repository/record"
	scheduleRepoPkg "medibook/database/repository/schedule"
	"medibook/handlers"
	"medibook/routes"
	"medibook/services/activity"
	"medibook/services/admin"
	"medibook/services/appointment"
	"medibook/services/doctor"
	"medibook/services/notification"
	"medibook/services/schedule"
	"medibook/services/storage"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	storageService, err := storage.NewStorageService()
	if err != nil {
		logger.Sugar().Warnf("main: cloudinary storage disabled: %v", err)
		storageService = nil
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// repositories.
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo()
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()
	activityRepo := activityRepoPkg.NewMongoActivityRepo()
	recordRepo := recordRepoPkg.NewMongoMedicalRecordRepo()

	// Reminder queue client.
	reminderClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer reminderClient.Close()

	// services.
	doctorService := &doctor.DefaultDoctorService{
		Repo:  doctorRepo,
		Cache: utils.GetCacheClient(),
	}
	scheduleService := &schedule.DefaultScheduleService{
		Repo:     scheduleRepo,
		ApptRepo: apptRepo,
		Cache:    utils.GetCacheClient(),
	}
	notificationService := &notification.DefaultNotificationService{
		Repo: notificationRepo,
		Push: utils.FCMClient,
	}
	activityService := &activity.DefaultActivityService{
		Repo: activityRepo,
	}
	appointmentService := &appointment.DefaultAppointmentService{
		Repo:          apptRepo,
		Doctors:       doctorRepo,
		Records:       recordRepo,
		Schedule:      scheduleService,
		Notifications: notificationService,
		Activities:    activityService,
		Reminders:     reminderClient,
		ReminderLead:  time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
	}
	adminService := &admin.DefaultAdminService{
		Doctors:  doctorService,
		DoctorDB: doctorRepo,
		ApptDB:   apptRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		DoctorHandler:       handlers.NewDoctorHandler(doctorService),
		ScheduleHandler:     handlers.NewScheduleHandler(scheduleService),
		AppointmentHandler:  handlers.NewAppointmentHandler(appointmentService),
		AdminHandler:        handlers.NewAdminHandler(adminService),
		NotificationHandler: handlers.NewNotificationHandler(notificationService),
		ActivityHandler:     handlers.NewActivityHandler(activityService),
		RecordHandler:       handlers.NewRecordHandler(recordRepo),
		StorageHandler:      handlers.NewStorageHandler(storageService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder worker and health monitor.
	cron.InitReminderWorker(notificationService)
	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient()}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
