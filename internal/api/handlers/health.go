package handlers

import (
	"bed-scheduler-service/internal/services"
	"net/http"
)

// Health provides a minimal liveness check that also lists the
// scheduling strategies this build understands.
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := map[string]any{
		"status":     "ok",
		"strategies": []string{services.StrategyGraph, services.StrategyEarliestFinish},
	}
	writeJSON(w, r, http.StatusOK, res)
}
