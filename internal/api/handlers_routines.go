package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/gymverse/internal/error_values"
	"github.com/limbo/gymverse/internal/service"
	"github.com/limbo/gymverse/pkg/entity"
	"github.com/limbo/gymverse/pkg/httputil"
)

type RoutineResponse struct {
	Routine *entity.Routine `json:"routine"`
}

type RoutinesResponse struct {
	Routines []*entity.Routine `json:"routines"`
}

func (s *Server) GenerateRoutine(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("generate routine error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "not authenticated", nil)
		return
	}
	var req entity.GenerateRoutineRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("generate routine error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	routine, err := s.routineService.Generate(ctx, uid, &req)
	if err != nil {
		writeRoutineError(w, logger, "generate routine", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, RoutineResponse{Routine: routine})
	logger.Info("routine generated", slog.String("routine_id", routine.ID.String()), slog.String("goal", routine.Goal))
}

func (s *Server) PreviewRoutine(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req entity.GenerateRoutineRequest
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("preview routine error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	routine, err := s.routineService.Preview(ctx, &req)
	if err != nil {
		writeRoutineError(w, logger, "preview routine", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, RoutineResponse{Routine: routine})
}

func (s *Server) ListRoutines(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list routines error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "not authenticated", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	routines, err := s.routineService.List(ctx, uid)
	if err != nil {
		writeRoutineError(w, logger, "list routines", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, RoutinesResponse{Routines: routines})
}

func (s *Server) GetRoutine(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, id, ok := routineTarget(w, r, logger, "get routine")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	routine, err := s.routineService.Get(ctx, id, uid)
	if err != nil {
		writeRoutineError(w, logger, "get routine", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, RoutineResponse{Routine: routine})
}

func (s *Server) UpdateRoutine(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, id, ok := routineTarget(w, r, logger, "update routine")
	if !ok {
		return
	}
	var req service.UpdateRoutineRequest
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("update routine error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	routine, err := s.routineService.Update(ctx, id, uid, &req)
	if err != nil {
		writeRoutineError(w, logger, "update routine", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, RoutineResponse{Routine: routine})
	logger.Info("routine updated", slog.String("routine_id", id.String()))
}

func (s *Server) DeleteRoutine(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, id, ok := routineTarget(w, r, logger, "delete routine")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.routineService.Delete(ctx, id, uid); err != nil {
		writeRoutineError(w, logger, "delete routine", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"message": "routine deleted"})
	logger.Info("routine deleted", slog.String("routine_id", id.String()))
}

// routineTarget extracts the caller and the routine id, answering the request itself on failure.
func routineTarget(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string) (uid, id uuid.UUID, ok bool) {
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "not authenticated", nil)
		return uuid.Nil, uuid.Nil, false
	}
	id, err = uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		// A malformed id names no routine.
		logger.Error(op + " error: invalid id in path")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "routine not found", nil)
		return uuid.Nil, uuid.Nil, false
	}
	return uid, id, true
}

func writeRoutineError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrInvalidRequest):
		logger.Error(op+" error: invalid request", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid routine request", err)
	case errors.Is(err, errorvalues.ErrUnknownGoal):
		logger.Error(op+" error: unknown goal", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown fitness goal", err)
	case errors.Is(err, errorvalues.ErrInsufficientCatalog):
		logger.Error(op+" error: catalog exhausted", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusUnprocessableEntity, "not enough exercises match the constraints", err)
	case errors.Is(err, errorvalues.ErrRoutineNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
		logger.Error(op + " error: routine not found")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "routine not found", nil)
	case errors.Is(err, errorvalues.ErrUserNotFound):
		logger.Error(op + " error: unexist user")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "user not found", nil)
	case errors.Is(err, errorvalues.ErrEmptyCardioCatalog):
		logger.Error(op+" error: cardio catalog is empty", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "routine generation is misconfigured", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while processing routine", nil)
	}
}
