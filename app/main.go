package main

import (
	"context"
	"membership/config"
	"membership/middleware"
	"membership/services/membership/delivery"
	"membership/services/membership/repository"
	"membership/services/membership/usecase"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var log *logrus.Logger
var wg sync.WaitGroup

const usecaseTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, using environment variables")
	}

	log = config.GetLogrusInstance()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	startHTTP(cfg)
}

func startHTTP(cfg *config.Config) {
	log.Info("Starting HTTP")
	app := fiber.New(fiber.Config{
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})

	// CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Use(middleware.RequestLogger(log))

	app.Static("/uploads", "./uploads")

	db, err := config.BootDB(cfg)
	if err != nil {
		log.Fatalf("Failed to boot DB: %v", err)
		return
	}

	pool, err := config.BootPgxPool(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to boot pgx pool: %v", err)
		return
	}
	defer pool.Close()

	auth := middleware.NewAuthMiddleware(cfg, db)

	userRepo := repository.NewUserRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	checkinRepo := repository.NewCheckinRepository(db)
	volunteerRepo := repository.NewVolunteerRepository(db)
	dashboardRepo := repository.NewDashboardRepository(pool)

	authUC := usecase.NewAuthUseCase(userRepo, auth, usecaseTimeout)
	memberUC := usecase.NewMemberUseCase(memberRepo, usecaseTimeout)
	activityUC := usecase.NewActivityUseCase(activityRepo, usecaseTimeout)
	checkinUC := usecase.NewCheckinUseCase(checkinRepo, memberRepo, activityRepo, usecaseTimeout)
	volunteerUC := usecase.NewVolunteerUseCase(volunteerRepo, memberRepo, usecaseTimeout)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo, usecaseTimeout)

	delivery.NewHealthHandler(app)
	delivery.NewAuthHandler(app, authUC, auth)
	delivery.NewMemberHandler(app, memberUC, auth)
	delivery.NewActivityHandler(app, activityUC, auth)
	delivery.NewCheckinHandler(app, checkinUC, auth)
	delivery.NewVolunteerHandler(app, volunteerUC, auth)
	delivery.NewDashboardHandler(app, dashboardUC, auth)

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server for Public on port %s", cfg.Port)
		if err := app.Listen(cfg.ListenAddress()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, os.Kill)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	wg.Wait()
	log.Info("Server shut down gracefully")
}
