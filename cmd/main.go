package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hrmedrecords/internal/config"
	"hrmedrecords/internal/handler"
	"hrmedrecords/internal/repository"
	"hrmedrecords/internal/service"
	"hrmedrecords/internal/validator"
)

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*sqlx.DB, error) {
	var db *sqlx.DB
	var err error

	for i := 0; i < maxAttempts; i++ {
		db, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			return db, nil
		}

		log.Warn().Err(err).Msgf("Failed to connect to database (attempt %d/%d)", i+1, maxAttempts)
		time.Sleep(delay)
	}

	return nil, fmt.Errorf("failed to connect after %d attempts: %w", maxAttempts, err)
}

func runMigrations(cfg *config.Config) error {
	databaseURL := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)

	var m *migrate.Migrate
	var err error

	for i := 0; i < 5; i++ {
		m, err = migrate.New("file://migrations", databaseURL)
		if err == nil {
			break
		}
		log.Warn().Err(err).Msgf("Failed to create migrate instance (attempt %d/5)", i+1)
		time.Sleep(time.Second * 5)
	}

	if err != nil {
		return fmt.Errorf("failed to create migrate instance after retries: %w", err)
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		log.Warn().Msgf("Found dirty database state at version %d, attempting to force version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Загружаем конфигурацию
	appConfig, err := config.NewConfig(".app.env")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// Подключаемся к базе данных
	db, err := connectWithRetry(appConfig.Database.GetDSN(), 5, time.Second*5)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database after retries")
	}
	defer db.Close()

	if err := runMigrations(appConfig); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}

	// Инициализация репозиториев
	medicalRecordRepo := repository.NewMedicalRecordRepository(db)
	statusRepo := repository.NewStatusRepository(db)
	typeRepo := repository.NewMedicalRecordTypeRepository(db)

	// Валидаторы подбираются здесь и передаются сервису явно
	createUpdateValidator := validator.NewCreateUpdateValidator(medicalRecordRepo, statusRepo, typeRepo)
	softDeleteValidator := validator.NewSoftDeleteValidator(medicalRecordRepo, statusRepo)

	// Инициализация сервиса и хендлера
	medicalRecordService := service.NewMedicalRecordService(
		medicalRecordRepo,
		statusRepo,
		createUpdateValidator,
		softDeleteValidator,
		log.Logger,
	)
	medicalRecordHandler := handler.NewMedicalRecordHandler(medicalRecordService, log.Logger)

	// Настройка HTTP роутера
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "x-user-id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Info().Str("method", r.Method).Str("path", r.URL.Path).Msg("Incoming request")
			next.ServeHTTP(w, r)
		})
	})

	r.Route("/api/MedicalRecord", medicalRecordHandler.Routes)

	// Создаем HTTP сервер
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}

	// Канал для сигналов завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Запускаем HTTP сервер
	go func() {
		log.Info().Msgf("Starting HTTP server on port %s", appConfig.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Ожидаем сигнал завершения
	<-quit
	log.Info().Msg("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP server forced to shutdown")
	}

	if err := db.Close(); err != nil {
		log.Error().Err(err).Msg("Error closing database connection")
	}

	log.Info().Msg("Server exited properly")
}
