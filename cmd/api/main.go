package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/limbo/gymverse/internal/api"
	"github.com/limbo/gymverse/internal/catalog"
	"github.com/limbo/gymverse/internal/generator"
	"github.com/limbo/gymverse/internal/repository"
	"github.com/limbo/gymverse/internal/service"
	"github.com/limbo/gymverse/pkg/cleanup"
	"github.com/limbo/gymverse/pkg/config"
	jwtservice "github.com/limbo/gymverse/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	setupLogger(cfg.GetStringOr("LOG_LEVEL", "info"))
	defer cleanup.CleanUp()

	cat, err := loadCatalog(cfg)
	if err != nil {
		log.Fatal("loading catalog error: " + err.Error())
	}
	slog.Info("catalog loaded",
		slog.Int("exercises", len(cat.Exercises())),
		slog.Int("cardio", len(cat.Cardio())),
	)

	var (
		usersRepo    repository.UsersRepositoryI
		routinesRepo repository.RoutinesRepositoryI
	)
	if addr := cfg.GetString("POSTGRES_DB_ADDRESS"); addr != "" {
		dbCfg := repository.PGCfg{
			Address:  addr,
			Username: cfg.GetString("POSTGRES_USER"),
			Password: cfg.GetString("POSTGRES_PASSWORD"),
			DB:       cfg.GetString("POSTGRES_DB"),
			SSLMode:  cfg.GetStringOr("POSTGRES_SSLMODE", "disable"),
		}
		if err = repository.Migrate(&dbCfg, cfg.GetStringOr("MIGRATIONS_DIR", "./migrations")); err != nil {
			log.Fatal("migrating database error: " + err.Error())
		}
		usersRepo = repository.NewUsersRepo(&dbCfg)
		routinesRepo = repository.NewRoutinesRepo(&dbCfg)
	} else {
		slog.Warn("POSTGRES_DB_ADDRESS is empty, data is kept in memory")
		usersRepo = repository.NewMemoryUsersRepo()
		routinesRepo = repository.NewMemoryRoutinesRepo()
	}

	secret := cfg.GetString("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	serv := api.New(&api.ServicesList{
		UserService:    service.NewUserService(usersRepo),
		RoutineService: service.NewRoutineService(routinesRepo, generator.New(cat)),
		JwtService:     jwtservice.New(secret, cfg.GetDuration("JWT_TTL", jwtservice.DefaultTTL)),
		Catalog:        cat,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	err = serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":3001"))
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server error", slog.String("error", err.Error()))
	}
}

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	exercisesPath := cfg.GetString("CATALOG_EXERCISES_PATH")
	cardioPath := cfg.GetString("CATALOG_CARDIO_PATH")
	if exercisesPath != "" && cardioPath != "" {
		return catalog.LoadFiles(exercisesPath, cardioPath)
	}
	if exercisesPath != "" || cardioPath != "" {
		slog.Warn("catalog override needs both CATALOG_EXERCISES_PATH and CATALOG_CARDIO_PATH, using embedded data")
	}
	return catalog.Load()
}

func setupLogger(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}
