package dto

import "github.com/freshfest/gateway-api/internal/proto"

// EstampEvent is one collectible event in the stamp hunt.
type EstampEvent struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	AdditionalInfo string `json:"additional_info"`
}

// UserEstampEvent is one user's progress on one event.
type UserEstampEvent struct {
	Event   EstampEvent `json:"event"`
	IsTaken bool        `json:"is_taken"`
	TakenAt int64       `json:"taken_at"`
}

// GetAllEstampResponse lists every event in the stamp namespace.
type GetAllEstampResponse struct {
	Events []EstampEvent `json:"events"`
}

// GetUserEstampsResponse lists the caller's per-event progress.
type GetUserEstampsResponse struct {
	Events []UserEstampEvent `json:"events"`
}

// RedeemItemResponse signals a completed redemption.
type RedeemItemResponse struct {
	Success bool `json:"success"`
}

// HasRedeemItemResponse signals whether the caller already redeemed.
type HasRedeemItemResponse struct {
	Redeemed bool `json:"redeemed"`
}

// EstampEventFromProto maps a backend event onto the wire shape.
func EstampEventFromProto(e *proto.Event) EstampEvent {
	if e == nil {
		return EstampEvent{}
	}
	return EstampEvent{
		ID:             e.EventId,
		Name:           e.EventName,
		AdditionalInfo: e.AdditionalInfo,
	}
}

// EstampEventsFromProto maps a backend event list element-wise, preserving
// order.
func EstampEventsFromProto(es []*proto.Event) []EstampEvent {
	out := make([]EstampEvent, 0, len(es))
	for _, e := range es {
		out = append(out, EstampEventFromProto(e))
	}
	return out
}

// UserEstampEventFromProto maps a backend user-event onto the wire shape.
func UserEstampEventFromProto(ue *proto.UserEvent) UserEstampEvent {
	if ue == nil {
		return UserEstampEvent{}
	}
	return UserEstampEvent{
		Event:   EstampEventFromProto(ue.Event),
		IsTaken: ue.IsTaken,
		TakenAt: ue.TakenAt,
	}
}

// UserEstampEventsFromProto maps a backend user-event list element-wise,
// preserving order.
func UserEstampEventsFromProto(ues []*proto.UserEvent) []UserEstampEvent {
	out := make([]UserEstampEvent, 0, len(ues))
	for _, ue := range ues {
		out = append(out, UserEstampEventFromProto(ue))
	}
	return out
}
