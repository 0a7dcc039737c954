package dto

type GuestRequest struct {
	GuestID int `json:"guest_id"`
	Start   int `json:"start"`
	End     int `json:"end"`
}

type WindowRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type ScheduleRequest struct {
	BedCount *int           `json:"bed_count"`
	Strategy string         `json:"strategy"`
	Window   *WindowRequest `json:"window"`
	// Omit to schedule the stored guests.
	Guests []GuestRequest `json:"guests"`
}

type BedResponse struct {
	BedID    int   `json:"bed_id"`
	GuestIDs []int `json:"guest_ids"`
}

type ScheduleResponse struct {
	Strategy    string          `json:"strategy"`
	Hosted      int             `json:"hosted"`
	Beds        []BedResponse   `json:"beds"`
	Unscheduled []GuestResponse `json:"unscheduled"`
}
