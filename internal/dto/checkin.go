package dto

// HasCheckinResponse signals whether the caller already checked in on the
// configured event day.
type HasCheckinResponse struct {
	HasCheckin bool `json:"has_checkin"`
}

// CheckinResponse signals a completed check-in.
type CheckinResponse struct {
	Success bool `json:"success"`
}

// IsFreshyNightTicketRedeemedResponse signals whether the caller's
// freshy-night ticket was already redeemed at the door.
type IsFreshyNightTicketRedeemedResponse struct {
	Redeemed bool `json:"redeemed"`
}
