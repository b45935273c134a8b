package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/wellness/internal/service"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	mx               *chi.Mux
	checkInsService  service.CheckInsServiceI
	dashboardService service.DashboardServiceI
}

type ServicesList struct {
	CheckInsService  service.CheckInsServiceI
	DashboardService service.DashboardServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:               chi.NewMux(),
		checkInsService:  servicesOptions.CheckInsService,
		dashboardService: servicesOptions.DashboardService,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Get("/", s.Index)
	s.mx.Get("/admin", s.GetDashboard)
	s.mx.Route("/{code}", func(r chi.Router) {
		r.Use(s.LoggerExtensionMiddleware)
		r.Get("/", s.GetAthleteCheckIn)
		r.Post("/checkin", s.SubmitCheckIn)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.New("serving error: " + err.Error())
	case <-ctx.Done():
	}
	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("shutdown error: " + err.Error())
	}
	return nil
}
