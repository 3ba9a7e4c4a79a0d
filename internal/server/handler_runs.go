package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/me/flightsched/internal/store"
	"github.com/me/flightsched/pkg/model"
)

// runSummary is the list form of an archived run.
type runSummary struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Algorithm string        `json:"algorithm"`
	Source    string        `json:"source,omitempty"`
	Summary   model.Summary `json:"summary"`
	CreatedAt string        `json:"created_at"`
}

// runDetail is the single-run form: run metadata plus its schedule.
type runDetail struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Source    string             `json:"source,omitempty"`
	CreatedAt string             `json:"created_at"`
	Schedule  model.ScheduleView `json:"schedule"`
}

func (s *Server) requireStore(w http.ResponseWriter, reqID string) bool {
	if s.store != nil {
		return true
	}
	respondError(w, reqID, http.StatusNotFound, &model.APIError{
		Code:    model.ErrNotFound,
		Message: "run archive is not configured",
	})
	return false
}

// parseListOptions reads limit, offset and name from the query string.
func parseListOptions(r *http.Request) (model.ListOptions, *model.APIError) {
	opts := model.DefaultListOptions()
	q := r.URL.Query()
	var errs []model.FieldError
	for key, dst := range map[string]*int{"limit": &opts.Limit, "offset": &opts.Offset} {
		raw := q.Get(key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, model.FieldError{Field: key, Message: "must be an integer"})
			continue
		}
		*dst = n
	}
	if len(errs) > 0 {
		return opts, model.NewValidationError("invalid query parameters", errs...)
	}
	opts.Name = q.Get("name")
	opts.Clamp()
	return opts, nil
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	if !s.requireStore(w, reqID) {
		return
	}

	opts, apiErr := parseListOptions(r)
	if apiErr != nil {
		respondError(w, reqID, http.StatusBadRequest, apiErr)
		return
	}

	runs, total, err := s.store.ListRuns(r.Context(), opts)
	if err != nil {
		respondInternal(w, reqID, err)
		return
	}

	data := make([]runSummary, 0, len(runs))
	for _, run := range runs {
		data = append(data, runSummary{
			ID:        run.ID,
			Name:      run.Name,
			Algorithm: run.Algorithm,
			Source:    run.Source,
			Summary:   run.Summary,
			CreatedAt: run.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	respondList(w, reqID, data, model.NewPagination(total, opts, len(data)))
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	if !s.requireStore(w, reqID) {
		return
	}
	id := chi.URLParam(r, "id")

	run, err := s.store.GetRun(r.Context(), id)
	if err != nil {
		respondInternal(w, reqID, err)
		return
	}
	if run == nil {
		respondError(w, reqID, http.StatusNotFound, model.NewNotFoundError("run", id))
		return
	}
	respondOK(w, reqID, runDetail{
		ID:        run.ID,
		Name:      run.Name,
		Source:    run.Source,
		CreatedAt: run.CreatedAt.UTC().Format(time.RFC3339),
		Schedule:  run.View(),
	})
}

func (s *Server) handleDeleteRun(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	if !s.requireStore(w, reqID) {
		return
	}
	id := chi.URLParam(r, "id")

	if err := s.store.DeleteRun(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, reqID, http.StatusNotFound, model.NewNotFoundError("run", id))
			return
		}
		respondInternal(w, reqID, err)
		return
	}
	s.logger.Info("run deleted", "id", id)
	respondOK(w, reqID, map[string]any{"id": id, "deleted": true})
}
