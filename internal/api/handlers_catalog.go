package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/gymverse/internal/catalog"
	errorvalues "github.com/limbo/gymverse/internal/error_values"
	"github.com/limbo/gymverse/pkg/httputil"
)

func (s *Server) ListExercises(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	exercises := s.catalog.FilterExercises(catalog.ExerciseFilter{
		MuscleGroup: q.Get("muscleGroup"),
		Equipment:   q.Get("equipment"),
		Difficulty:  q.Get("difficulty"),
		Search:      q.Get("search"),
		Tags:        splitList(q.Get("tags")),
	})
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"exercises": exercises,
		"total":     len(exercises),
	})
}

func (s *Server) ListMuscleGroups(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"muscleGroups": s.catalog.MuscleGroups()})
}

func (s *Server) GetExercise(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	exercise, err := s.catalog.Exercise(id)
	if err != nil {
		s.writeCatalogError(w, r, err)
		return
	}
	alternates, err := s.catalog.Alternates(id)
	if err != nil {
		s.writeCatalogError(w, r, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"exercise":   exercise,
		"alternates": alternates,
	})
}

func (s *Server) GetAlternates(w http.ResponseWriter, r *http.Request) {
	alternates, err := s.catalog.Alternates(chi.URLParam(r, "id"))
	if err != nil {
		s.writeCatalogError(w, r, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"alternates": alternates})
}

func (s *Server) ListCardio(w http.ResponseWriter, r *http.Request) {
	cardio := s.catalog.FilterCardio(cardioFilterFromQuery(r))
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"cardio": cardio,
		"total":  len(cardio),
	})
}

func (s *Server) RandomCardio(w http.ResponseWriter, r *http.Request) {
	activity, err := s.catalog.RandomCardio(cardioFilterFromQuery(r))
	if err != nil {
		s.writeCatalogError(w, r, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"cardio": activity})
}

func (s *Server) ListCardioCategories(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"categories": s.catalog.Categories()})
}

func (s *Server) GetCardio(w http.ResponseWriter, r *http.Request) {
	activity, err := s.catalog.CardioActivity(chi.URLParam(r, "id"))
	if err != nil {
		s.writeCatalogError(w, r, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"cardio": activity})
}

func (s *Server) writeCatalogError(w http.ResponseWriter, r *http.Request, err error) {
	logger := GetLoggerFromCtx(r.Context())
	switch {
	case errors.Is(err, errorvalues.ErrExerciseNotFound):
		logger.Error("catalog error: unknown exercise", "id", chi.URLParam(r, "id"))
		httputil.WriteErrorResponse(w, http.StatusNotFound, "exercise not found", nil)
	case errors.Is(err, errorvalues.ErrCardioNotFound):
		logger.Error("catalog error: no cardio activity matched")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "cardio activity not found", nil)
	default:
		logger.Error("catalog error", "error", err.Error())
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal catalog error", nil)
	}
}

func cardioFilterFromQuery(r *http.Request) catalog.CardioFilter {
	q := r.URL.Query()
	// Unparsable ratings disable the filter.
	funRating, _ := strconv.Atoi(q.Get("funRating"))
	return catalog.CardioFilter{
		Category:     q.Get("category"),
		Intensity:    q.Get("intensityLevel"),
		MinFunRating: funRating,
		Tags:         splitList(q.Get("tags")),
		Search:       q.Get("search"),
	}
}

// splitList parses comma separated query values.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
