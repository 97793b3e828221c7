package main

import (
	"log"

	"github.com/gin-gonic/gin"

	api "worship-backend/cmd/api"
	deviceDelivery "worship-backend/internal/device/delivery"
	devicedomain "worship-backend/internal/device/domain"
	deviceRepo "worship-backend/internal/device/repository"
	deviceUsecase "worship-backend/internal/device/usecase"
	notifyDelivery "worship-backend/internal/notify/delivery"
	notifyUsecase "worship-backend/internal/notify/usecase"
	reminderDelivery "worship-backend/internal/reminder/delivery"
	reminderUsecase "worship-backend/internal/reminder/usecase"
	scheduledomain "worship-backend/internal/schedule/domain"
	scheduleRepo "worship-backend/internal/schedule/repository"
	userdomain "worship-backend/internal/user/domain"
	userRepo "worship-backend/internal/user/repository"
	"worship-backend/pkg/config"
	"worship-backend/pkg/database"
	"worship-backend/pkg/fcm"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&devicedomain.Device{}, &userdomain.User{}, &scheduledomain.Schedule{}, &scheduledomain.Service{}, &scheduledomain.Assignment{}, &scheduledomain.Song{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize FCM client
	fcmClient, err := fcm.NewClient(cfg.FirebaseCredentials)
	if err != nil {
		log.Fatal("Failed to initialize FCM client:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := userRepo.NewUserRepository(db)
	deviceRepository := deviceRepo.NewDeviceRepository(db)
	scheduleRepository := scheduleRepo.NewScheduleRepository(db)

	// Notification pipeline
	resolver := notifyUsecase.NewResolver(userRepository, userdomain.Role(cfg.DefaultRole))
	collector := notifyUsecase.NewCollector(deviceRepository)
	dispatcher := notifyUsecase.NewDispatcher(fcmClient, cfg.BaseURL)

	// Initialize use cases
	deviceUsecaseInstance := deviceUsecase.NewDeviceUsecase(deviceRepository)
	notifyUsecaseInstance := notifyUsecase.NewNotifyUsecase(resolver, collector, dispatcher)
	reminderUsecaseInstance := reminderUsecase.NewReminderUsecase(scheduleRepository, resolver, collector, dispatcher, cfg)

	// Initialize handlers
	deviceHandler := deviceDelivery.NewDeviceHandler(deviceUsecaseInstance)
	notifyHandler := notifyDelivery.NewNotifyHandler(notifyUsecaseInstance)
	reminderHandler := reminderDelivery.NewReminderHandler(reminderUsecaseInstance)

	// Start HTTP server
	r := gin.Default()
	api.SetupRoutes(r, cfg, deviceHandler, notifyHandler, reminderHandler)

	log.Printf("[Server] Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
