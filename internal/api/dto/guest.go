package dto

type GuestResponse struct {
	GuestID int `json:"guest_id"`
	Start   int `json:"start"`
	End     int `json:"end"`
}

type ListGuestsResponse struct {
	Guests []GuestResponse `json:"guests"`
}
