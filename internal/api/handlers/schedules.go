package handlers

import (
	"bed-scheduler-service/internal/api/dto"
	"bed-scheduler-service/internal/domain"
	"bed-scheduler-service/internal/ports"
	"bed-scheduler-service/internal/services"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

const maxBedCount = 100

type ScheduleHandler struct {
	Repo            ports.GuestRepository
	Planner         *services.CachedPlanner
	DefaultStrategy string
	DefaultBedCount int
	MaxGraphGuests  int
}

// Plan allocates beds for inline guests, or for the stored guests when the
// request carries none.
func (h *ScheduleHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ScheduleRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	bedCount := h.DefaultBedCount
	if req.BedCount != nil {
		bedCount = *req.BedCount
	}
	if bedCount > maxBedCount {
		writeError(w, r, http.StatusBadRequest, "bed_count must be at most 100")
		return
	}

	strategy := strings.TrimSpace(req.Strategy)
	if strategy == "" {
		strategy = h.DefaultStrategy
	}
	if _, err := services.PlannerByName(strategy); err != nil {
		writeError(w, r, http.StatusBadRequest, "strategy must be one of graph, earliest_finish")
		return
	}

	svcReq := services.PlanStaysRequest{
		BedCount:       bedCount,
		Strategy:       strategy,
		MaxGraphGuests: h.MaxGraphGuests,
	}
	if req.Window != nil {
		svcReq.Window = &services.Window{From: req.Window.From, To: req.Window.To}
	}
	if req.Guests == nil && h.Repo == nil {
		writeError(w, r, http.StatusBadRequest, "guests are required when no guest storage is configured")
		return
	}
	if req.Guests != nil {
		svcReq.Guests = make([]domain.Guest, 0, len(req.Guests))
		for _, g := range req.Guests {
			svcReq.Guests = append(svcReq.Guests, domain.NewGuest(g.GuestID, g.Start, g.End))
		}
	}

	alloc, err := services.PlanStays(r.Context(), svcReq, h.Repo, h.Planner)
	if err != nil {
		writeServiceError(w, r, "plan stays", err)
		return
	}

	res := dto.ScheduleResponse{
		Strategy:    strategy,
		Hosted:      alloc.HostedCount(),
		Beds:        make([]dto.BedResponse, 0, len(alloc.Beds)),
		Unscheduled: make([]dto.GuestResponse, 0, len(alloc.Unscheduled)),
	}
	for _, b := range alloc.Beds {
		res.Beds = append(res.Beds, dto.BedResponse{BedID: b.BedID, GuestIDs: b.GuestIDs()})
	}
	for _, g := range alloc.Unscheduled {
		res.Unscheduled = append(res.Unscheduled, dto.GuestResponse{GuestID: g.GuestID, Start: g.Start, End: g.End})
	}

	writeJSON(w, r, http.StatusOK, res)
}
