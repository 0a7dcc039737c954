package handlers

import (
	"bed-scheduler-service/internal/api/dto"
	"bed-scheduler-service/internal/ports"
	"net/http"
)

// GuestHandler exposes read-only guest retrieval endpoints.
type GuestHandler struct {
	Repo ports.GuestRepository
}

func (h *GuestHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if h.Repo == nil {
		writeError(w, r, http.StatusServiceUnavailable, "guest storage is not configured")
		return
	}

	guests, err := h.Repo.ListGuests(r.Context())
	if err != nil {
		writeServiceError(w, r, "list guests", err)
		return
	}

	res := dto.ListGuestsResponse{
		Guests: make([]dto.GuestResponse, 0, len(guests)),
	}
	for _, g := range guests {
		res.Guests = append(res.Guests, dto.GuestResponse{
			GuestID: g.GuestID,
			Start:   g.Start,
			End:     g.End,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
