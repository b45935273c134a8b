package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	errorvalues "github.com/limbo/wellness/internal/error_values"
	"github.com/limbo/wellness/internal/service"
	"github.com/limbo/wellness/pkg/httputil"
)

const handlerTimeout = 10 * time.Second

type SubmitCheckInRequest struct {
	Energy int `json:"energy"`
	Mood   int `json:"mood"`
}

var athleteNotFound = httputil.ErrorResponse{
	Code:    http.StatusNotFound,
	Message: "athlete not found",
	Hint:    "check the link and reload the page",
}

func (s *Server) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/admin", http.StatusFound)
}

func (s *Server) GetDashboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	dashboard, err := s.dashboardService.GetDashboard(ctx)
	if err != nil {
		logger.Error("dashboard error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while loading dashboard", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, dashboard)
	logger.Info("dashboard provided", slog.Int("athletes", dashboard.Stats.Total))
}

func (s *Server) GetAthleteCheckIn(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	view, err := s.checkInsService.GetAthleteView(ctx, chi.URLParam(r, "code"))
	if err != nil {
		if errors.Is(err, errorvalues.ErrAthleteNotFound) {
			logger.Error("check-in view error: unexist athlete")
			httputil.WriteError(w, athleteNotFound, nil)
			return
		}
		logger.Error("check-in view error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while loading athlete data", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
	logger.Info("check-in view provided", slog.String("status", string(view.Status)))
}

func (s *Server) SubmitCheckIn(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req SubmitCheckInRequest
	if err := httputil.DecodeJSONBody(r, &req); err != nil {
		logger.Error("check-in error: invalid body", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	view, err := s.checkInsService.Submit(ctx, chi.URLParam(r, "code"), &service.SaveCheckInRequest{
		Energy: req.Energy,
		Mood:   req.Mood,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidScores):
			logger.Error("check-in error: invalid scores")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "energy and mood must be between 1 and 10", nil)
		case errors.Is(err, errorvalues.ErrAthleteNotFound):
			logger.Error("check-in error: unexist athlete")
			httputil.WriteError(w, athleteNotFound, nil)
		default:
			logger.Error("check-in error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while saving check-in", err)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
	logger.Info("check-in saved")
}
