package api

import (
	"bed-scheduler-service/internal/api/handlers"
	"bed-scheduler-service/internal/ports"
	"bed-scheduler-service/internal/services"
	"net/http"
)

type RouterConfig struct {
	DefaultStrategy string
	DefaultBedCount int
	MaxGraphGuests  int
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// repo may be nil, in which case only inline guests can be scheduled.
func NewRouter(repo ports.GuestRepository, planner *services.CachedPlanner, cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	guestHandler := &handlers.GuestHandler{Repo: repo}
	scheduleHandler := &handlers.ScheduleHandler{
		Repo:            repo,
		Planner:         planner,
		DefaultStrategy: cfg.DefaultStrategy,
		DefaultBedCount: cfg.DefaultBedCount,
		MaxGraphGuests:  cfg.MaxGraphGuests,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/guests", guestHandler.List)
	mux.HandleFunc("/schedules", scheduleHandler.Plan)

	return loggingMiddleware(mux)
}
