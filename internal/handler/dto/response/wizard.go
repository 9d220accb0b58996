package response

import (
	"booking-wizard/internal/usecase/commands"
)

type SubmitResponse struct {
	Outcome     string `json:"outcome"`
	BookingID   string `json:"booking_id"`
	RedirectURL string `json:"redirect_url,omitempty"`
}

func FromSubmitResult(result *commands.SubmitResult) SubmitResponse {
	return SubmitResponse{
		Outcome:     string(result.Outcome),
		BookingID:   result.BookingID,
		RedirectURL: result.RedirectURL,
	}
}

// PaymentUnavailableResponse reports the distinct failure class where
// the booking record exists upstream but no payment redirect could be
// produced. The booking id is surfaced for operator reconciliation.
type PaymentUnavailableResponse struct {
	Outcome   string `json:"outcome"`
	BookingID string `json:"booking_id"`
	Error     string `json:"error"`
}
