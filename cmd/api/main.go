package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	appanalytics "github.com/ninjasaskeh/vr46/internal/application/analytics"
	"github.com/ninjasaskeh/vr46/internal/application/auth"
	"github.com/ninjasaskeh/vr46/internal/application/report"
	"github.com/ninjasaskeh/vr46/internal/application/usecase"
	"github.com/ninjasaskeh/vr46/internal/application/weighing"
	infraexcel "github.com/ninjasaskeh/vr46/internal/infrastructure/excel"
	infrakafka "github.com/ninjasaskeh/vr46/internal/infrastructure/kafka"
	inframetrics "github.com/ninjasaskeh/vr46/internal/infrastructure/metrics"
	infrapdf "github.com/ninjasaskeh/vr46/internal/infrastructure/pdf"
	"github.com/ninjasaskeh/vr46/internal/infrastructure/postgres"
	httpRouter "github.com/ninjasaskeh/vr46/internal/interfaces/http"
	"github.com/ninjasaskeh/vr46/pkg/config"
	"github.com/ninjasaskeh/vr46/pkg/jwt"
	"github.com/ninjasaskeh/vr46/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	materialRepo := postgres.NewMaterialRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	recordRepo := postgres.NewWeightRecordRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Eventos de pesaje: Kafka si hay brokers, si no no-op.
	events := weighing.NoopPublisher()
	if cfg.Kafka.Enabled() {
		producer := infrakafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer func() {
			if err := producer.Close(); err != nil {
				log.Error().Err(err).Msg("cerrar productor kafka")
			}
		}()
		events = producer
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).Msg("publicación de eventos habilitada")
	}

	metrics := weighing.NoopRecorder()
	var recorder *inframetrics.Recorder
	if cfg.Metrics.Enabled {
		recorder = inframetrics.NewRecorder()
		metrics = recorder
	}

	weighingUC := weighing.NewUseCase(weighing.Deps{
		Tx:                txRunner,
		Materials:         materialRepo,
		Users:             userRepo,
		Records:           recordRepo,
		Notifications:     notificationRepo,
		Events:            events,
		Metrics:           metrics,
		Log:               log.Component("weighing"),
	})
	tokens := jwt.NewSigner(cfg.JWT.Secret, cfg.JWT.Issuer, time.Duration(cfg.JWT.Expiration)*time.Minute)
	authUC := auth.NewAuthUseCase(userRepo, tokens)
	reportUC := report.NewUseCase(recordRepo, infraexcel.NewWeightRecordsWriter(), infrapdf.NewTicketGenerator(cfg.App.Name))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "VR46 API",
	}))

	if recorder != nil {
		app.Get("/metrics", adaptor.HTTPHandler(recorder.Handler()))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		WeighingUC:     weighingUC,
		MaterialUC:     usecase.NewMaterialUseCase(materialRepo),
		SupplierUC:     usecase.NewSupplierUseCase(supplierRepo),
		UserUC:         usecase.NewUserUseCase(userRepo),
		NotificationUC: usecase.NewNotificationUseCase(notificationRepo),
		WeightRecordUC: usecase.NewWeightRecordUseCase(recordRepo),
		DashboardUC:    appanalytics.NewDashboardUseCase(analyticsRepo),
		ReportUC:       reportUC,
		Tokens:         tokens,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
