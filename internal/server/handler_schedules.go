package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/me/flightsched/internal/scheduler"
	"github.com/me/flightsched/internal/telemetry"
	"github.com/me/flightsched/pkg/model"
)

// maxScheduleBody bounds the POST /api/v1/schedules request body.
const maxScheduleBody = 1 << 20

// scheduleRequest is the body of POST /api/v1/schedules.
type scheduleRequest struct {
	Name      string              `json:"name"`
	Algorithm string              `json:"algorithm"`
	Save      bool                `json:"save"`
	Flights   []model.FlightInput `json:"flights"`
}

func (s *Server) handleCreateSchedule(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var req scheduleRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxScheduleBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		respondError(w, reqID, http.StatusBadRequest, &model.APIError{
			Code:    model.ErrValidation,
			Message: "Invalid JSON body: " + err.Error(),
		})
		return
	}

	alg := s.algorithm
	if req.Algorithm != "" {
		parsed, err := scheduler.ParseAlgorithm(req.Algorithm)
		if err != nil {
			respondError(w, reqID, http.StatusBadRequest,
				model.NewValidationError("unknown algorithm",
					model.FieldError{Field: "algorithm", Message: err.Error()}))
			return
		}
		alg = parsed
	}

	if req.Save && s.store == nil {
		respondError(w, reqID, http.StatusBadRequest,
			model.NewValidationError("archiving is not available",
				model.FieldError{Field: "save", Message: "server has no run store"}))
		return
	}

	flights, apiErr := s.validator.Validate(&model.FlightBatch{Name: req.Name, Flights: req.Flights})
	if apiErr != nil {
		respondError(w, reqID, http.StatusBadRequest, apiErr)
		return
	}

	started := time.Now()
	result := s.sched[alg].Schedule(flights)
	telemetry.ObserveSchedule(alg.String(), result, time.Since(started))

	if !req.Save {
		view := result.View()
		view.Algorithm = alg.String()
		respondOK(w, reqID, view)
		return
	}

	name := req.Name
	if name == "" {
		name = "unnamed-batch"
	}
	run := model.NewRun("run_"+uuid.New().String(), name, alg.String(), result, s.now())
	run.Source = model.RunSourceAPI
	if err := s.store.CreateRun(r.Context(), run); err != nil {
		respondInternal(w, reqID, err)
		return
	}
	s.logger.Info("run archived", "id", run.ID, "name", run.Name, "algorithm", run.Algorithm, "flights", result.Len())

	respondCreated(w, reqID, run.View())
}
