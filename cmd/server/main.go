package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"hospital-admin-backend/internal/config"
	"hospital-admin-backend/internal/database"
	"hospital-admin-backend/internal/handler"
	"hospital-admin-backend/internal/middleware"
	"hospital-admin-backend/internal/repository"
	"hospital-admin-backend/internal/service"
	"hospital-admin-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// 3. Initialize database connection and schema
	db := database.Connect(cfg)
	database.Migrate(db)

	// 4. Initialize repositories
	patientRepo := repository.NewPatientRepo(db)
	doctorRepo := repository.NewDoctorRepo(db)
	appointmentRepo := repository.NewAppointmentRepo(db)
	billingRepo := repository.NewBillingRepo(db)
	floorRepo := repository.NewFloorRepo(db)
	roomRepo := repository.NewRoomRepo(db)
	stayRepo := repository.NewStayRepo(db)
	userRepo := repository.NewUserRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	// 5. Initialize services
	patientService := service.NewPatientService(patientRepo, auditRepo)
	doctorService := service.NewDoctorService(doctorRepo, auditRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo, patientRepo, doctorRepo, auditRepo)
	billingService := service.NewBillingService(billingRepo, patientRepo, auditRepo)
	floorService := service.NewFloorService(floorRepo, auditRepo)
	roomService := service.NewRoomService(roomRepo, floorRepo, auditRepo)
	admissionService := service.NewAdmissionService(stayRepo, patientRepo, roomRepo, auditRepo)
	authService := service.NewAuthService(userRepo, auditRepo)
	workerService := service.NewWorkerService(userRepo, cfg.Worker.TokenPurgeInterval)

	// 6. Start background worker in goroutine
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go workerService.Start(ctx)

	// 7. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 8. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// 9. Register handlers
	patientHandler := handler.NewPatientHandler(patientService)
	doctorHandler := handler.NewDoctorHandler(doctorService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	billingHandler := handler.NewBillingHandler(billingService)
	floorHandler := handler.NewFloorHandler(floorService)
	roomHandler := handler.NewRoomHandler(roomService)
	admissionHandler := handler.NewAdmissionHandler(admissionService)
	auditHandler := handler.NewAuditHandler(auditRepo)
	authHandler := handler.NewAuthHandler(authService)

	// 10. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "hospital-admin-backend",
		})
	})

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	// Resource routes
	api := r.Group("/api")
	api.Use(middleware.RateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	{
		api.GET("/patients", patientHandler.GetPatients)
		api.POST("/patients", patientHandler.CreatePatient)
		api.PUT("/patients/:id", patientHandler.UpdatePatient)
		api.DELETE("/patients/:id", patientHandler.DeletePatient)

		api.GET("/doctors", doctorHandler.GetDoctors)
		api.POST("/doctors", doctorHandler.CreateDoctor)
		api.PUT("/doctors/:id", doctorHandler.UpdateDoctor)
		api.DELETE("/doctors/:id", doctorHandler.DeleteDoctor)

		api.GET("/appointments", appointmentHandler.GetAppointments)
		api.POST("/appointments", appointmentHandler.CreateAppointment)
		api.PUT("/appointments/:id", appointmentHandler.UpdateAppointment)
		api.DELETE("/appointments/:id", appointmentHandler.DeleteAppointment)

		api.GET("/billing", billingHandler.GetBilling)
		api.POST("/billing", billingHandler.CreateBilling)
		api.PUT("/billing/:id", billingHandler.UpdateBilling)
		api.DELETE("/billing/:id", billingHandler.DeleteBilling)

		api.GET("/floors", floorHandler.GetFloors)
		api.POST("/floors", floorHandler.CreateFloor)
		api.PUT("/floors/:id", floorHandler.UpdateFloor)
		api.DELETE("/floors/:id", floorHandler.DeleteFloor)

		api.GET("/rooms", roomHandler.GetRooms)
		api.GET("/rooms/available", roomHandler.GetAvailableRooms)
		api.POST("/rooms", roomHandler.CreateRoom)
		api.PUT("/rooms/:id", roomHandler.UpdateRoom)
		api.DELETE("/rooms/:id", roomHandler.DeleteRoom)

		// Admissions: admit occupies a room, discharge frees it
		api.GET("/patient_room", admissionHandler.GetAdmissions)
		api.POST("/patient_room", admissionHandler.Admit)
		api.PUT("/patient_room/:id/discharge", admissionHandler.Discharge)

		// Admin-only routes
		api.GET("/audit", middleware.AuthMiddleware(), middleware.RequireAdmin(), auditHandler.GetLogs)
	}

	// 11. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Cancel background worker context
	cancel()
	log.Println("Server exited")
}
