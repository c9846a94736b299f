package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/patient-portal/internal/api/http"
	"github.com/spec-kit/patient-portal/internal/api/http/handlers"
	"github.com/spec-kit/patient-portal/internal/auth"
	"github.com/spec-kit/patient-portal/internal/config"
	"github.com/spec-kit/patient-portal/internal/events"
	"github.com/spec-kit/patient-portal/internal/observability"
	"github.com/spec-kit/patient-portal/internal/persistence"
	"github.com/spec-kit/patient-portal/internal/repository"
	"github.com/spec-kit/patient-portal/internal/service"
	"github.com/spec-kit/patient-portal/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	identityRepo := repository.NewIdentityRepository(pool)
	registrationRepo := repository.NewRegistrationRepository(pool)
	patientRepo := repository.NewPatientRepository(pool)
	doctorRepo := repository.NewDoctorRepository(pool)
	appointmentRepo := repository.NewAppointmentRepository(pool)
	recordRepo := repository.NewMedicalRecordRepository(pool)
	prescriptionRepo := repository.NewPrescriptionRepository(pool)

	denylist := auth.NewTokenDenylist(redis.Client, logger)
	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		IdentityRepo:     identityRepo,
		PatientRepo:      patientRepo,
		DoctorRepo:       doctorRepo,
		RegistrationRepo: registrationRepo,
		Denylist:         denylist,
	})
	appointmentService := service.NewAppointmentService(appointmentRepo, doctorRepo, dispatcher)
	recordService := service.NewMedicalRecordService(recordRepo, patientRepo, appointmentRepo)
	prescriptionService := service.NewPrescriptionService(prescriptionRepo, patientRepo)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	sessionMiddleware := auth.NewSessionMiddleware(authService.TokenManager(), denylist, logger)

	metrics := observability.NewMetrics()
	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService, cfg.Auth),
		Appointments:   handlers.NewAppointmentsHandler(appointmentService),
		MedicalRecords: handlers.NewMedicalRecordsHandler(recordService),
		Prescriptions:  handlers.NewPrescriptionsHandler(prescriptionService),
		Session:        sessionMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
