package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-employee-registry/internal/facades"
	"github.com/sbilibin2017/gw-employee-registry/internal/handlers"
	"github.com/sbilibin2017/gw-employee-registry/internal/logger"
	"github.com/sbilibin2017/gw-employee-registry/internal/middlewares"
	"github.com/sbilibin2017/gw-employee-registry/internal/repositories"
	"github.com/sbilibin2017/gw-employee-registry/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/gw-employee-registry/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Storage drivers
const (
	storageFile     = "file"
	storagePostgres = "postgres"
)

const writeLockKey = "employees:write-lock"

// @title gw-employee-registry API
// @version 1.0.0
// @description Service for managing employee records
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel, logEncoding,
		storageDriver, dataPath,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, writeLockTTL,
		kafkaBrokers, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel, logEncoding,
		storageDriver, dataPath,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, writeLockTTL,
		kafkaBrokers, kafkaTopic,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, storage, PostgreSQL, Redis and Kafka configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel, logEncoding string,
	storageDriver, dataPath string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string, writeLockTTLSecond int,
	kafkaBrokers []string, kafkaTopic string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")
	logEncoding = getEnv("APP_LOG_ENCODING", "json")

	// Storage config
	storageDriver = getEnv("STORAGE_DRIVER", storageFile)
	dataPath = getEnv("DATA_PATH", "./database/employees.json")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config, an empty host disables the cross-process write lock
	redisHost = getEnv("REDIS_HOST", "")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if writeLockTTLSecond, err = strconv.Atoi(getEnv("WRITE_LOCK_TTL_SECOND", "10")); err != nil {
		return
	}

	// Kafka config, no brokers disables event publishing
	for _, broker := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			kafkaBrokers = append(kafkaBrokers, broker)
		}
	}
	kafkaTopic = getEnv("KAFKA_TOPIC", "employee-events")

	return
}

// run initializes the logger, storage, optional Redis lock and Kafka publisher,
// and serves HTTP until ctx is done or a shutdown signal arrives.
func run(ctx context.Context,
	appHost, appPort, logLevel, logEncoding string,
	storageDriver, dataPath string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string, writeLockTTLSecond int,
	kafkaBrokers []string, kafkaTopic string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel, logEncoding); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Initialize storage
	var (
		reader services.EmployeeDocumentReader
		writer services.EmployeeDocumentWriter
	)
	switch storageDriver {
	case storageFile:
		repo := repositories.NewEmployeeFileRepository(dataPath)
		reader, writer = repo, repo
		logger.Log.Infow("Using JSON file storage", "path", dataPath)

	case storagePostgres:
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			pgUser, pgPassword, pgHost, pgPort, pgDB)
		logger.Log.Infow("Connecting to PostgreSQL", "host", pgHost, "port", pgPort, "db", pgDB)

		db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
		if err != nil {
			return fmt.Errorf("PostgreSQL connection error: %w", err)
		}
		defer db.Close()
		db.SetMaxOpenConns(pgMaxOpenConns)
		db.SetMaxIdleConns(pgMaxIdleConns)

		repo := repositories.NewEmployeeDBRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("PostgreSQL schema error: %w", err)
		}
		reader, writer = repo, repo

	default:
		return fmt.Errorf("unknown storage driver %q", storageDriver)
	}

	// Connect to Redis
	var locker services.WriteLocker
	if redisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
			Password: redisPassword,
			DB:       redisDB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		locker = repositories.NewWriteLockRepository(rdb, writeLockKey, time.Duration(writeLockTTLSecond)*time.Second)
		logger.Log.Infow("Redis write lock enabled", "key", writeLockKey)
	}

	// Initialize Kafka publisher
	var publisher services.EventPublisher
	if len(kafkaBrokers) > 0 {
		facade := facades.NewEmployeeEventsKafkaFacade(&kafka.Writer{
			Addr:         kafka.TCP(kafkaBrokers...),
			Topic:        kafkaTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		})
		defer facade.Close()
		publisher = facade
		logger.Log.Infow("Kafka publishing enabled", "brokers", kafkaBrokers, "topic", kafkaTopic)
	}

	// Initialize services
	employeeService := services.NewEmployeeService(reader, writer, locker, publisher)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: newRouter(employeeService, appHost, appPort),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires the employee endpoints, health check and swagger UI.
// The endpoints are served under /employees and under /api/employee for older clients.
func newRouter(svc *services.EmployeeService, appHost, appPort string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	})

	employeeRoutes := func(r chi.Router) {
		r.Get("/", handlers.NewListEmployeesHandler(svc))
		r.Post("/", handlers.NewCreateEmployeeHandler(svc))
		r.Get("/{id}", handlers.NewGetEmployeeHandler(svc))
		r.Put("/{id}", handlers.NewUpdateEmployeeHandler(svc))
		r.Delete("/{id}", handlers.NewDeleteEmployeeHandler(svc))
	}
	r.Route("/employees", employeeRoutes)
	r.Route("/api/employee", employeeRoutes)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	return r
}
