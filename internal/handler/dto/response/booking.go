package response

import (
	"backline/internal/usecase/commands"
)

type BookingResponse struct {
	EventID        int64   `json:"eventId"`
	ReservationIDs []int64 `json:"reservationIds"`
}

func FromBookingResult(r *commands.CommitBookingResult) *BookingResponse {
	return &BookingResponse{
		EventID:        r.EventID,
		ReservationIDs: emptyIfNil(r.ReservationIDs),
	}
}
