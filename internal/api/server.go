package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/gymverse/internal/service"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	mx             *chi.Mux
	userService    service.UserServiceI
	routineService service.RoutineServiceI
	jwtService     JWTServiceI
	catalog        CatalogI
}

type ServicesList struct {
	UserService    service.UserServiceI
	RoutineService service.RoutineServiceI
	JwtService     JWTServiceI
	Catalog        CatalogI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:             chi.NewMux(),
		userService:    servicesOptions.UserService,
		routineService: servicesOptions.RoutineService,
		jwtService:     servicesOptions.JwtService,
		catalog:        servicesOptions.Catalog,
	}
	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(s.AccessLogMiddleware)
	s.mx.Use(s.CORSMiddleware)

	s.mx.Route("/api", func(r chi.Router) {
		r.Get("/health", s.Health)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", s.Register)
			r.Post("/login", s.Login)
			r.With(s.AuthMiddleware, s.LoggerExtensionMiddleware).Get("/me", s.Me)
		})

		r.Route("/exercises", func(r chi.Router) {
			r.Get("/", s.ListExercises)
			r.Get("/muscle-groups", s.ListMuscleGroups)
			r.Get("/{id}", s.GetExercise)
			r.Get("/{id}/alternates", s.GetAlternates)
		})

		r.Route("/cardio", func(r chi.Router) {
			r.Get("/", s.ListCardio)
			r.Get("/random", s.RandomCardio)
			r.Get("/categories", s.ListCardioCategories)
			r.Get("/{id}", s.GetCardio)
		})

		r.Route("/routines", func(r chi.Router) {
			r.Post("/preview", s.PreviewRoutine)
			r.Group(func(r chi.Router) {
				r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
				r.Post("/generate", s.GenerateRoutine)
				r.Get("/", s.ListRoutines)
				r.Get("/{id}", s.GetRoutine)
				r.Put("/{id}", s.UpdateRoutine)
				r.Delete("/{id}", s.DeleteRoutine)
			})
		})
	})
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
