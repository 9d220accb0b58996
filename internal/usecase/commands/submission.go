package commands

import (
	"context"
	"fmt"
	"log/slog"

	"booking-wizard/internal/domain/wizard"
	"booking-wizard/internal/infra"
	"booking-wizard/internal/pkg/errs"
	"booking-wizard/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidContact     = errs.New("invalid contact details")
	ErrDraftNotReady      = errs.New("draft not ready for submission")
	ErrSubmissionInFlight = errs.New("submission already in progress")
	ErrBookingRejected    = errs.New("booking rejected by upstream")
)

// PaymentIntentError is the higher-severity failure class: the booking
// record already exists upstream, but no payment path was produced.
// Resolution is operator-side reconciliation, not a silent retry, which
// could mint a duplicate intent for the same booking.
type PaymentIntentError struct {
	BookingID string
	err       error
}

func (e *PaymentIntentError) Error() string {
	return fmt.Sprintf("payment intent failed for booking %s: %v", e.BookingID, e.err)
}

func (e *PaymentIntentError) Unwrap() error {
	return e.err
}

// BookingGateway submits bookings and requests payment intents from the
// upstream backend. The bearer token is forwarded only when the caller
// holds a staff session.
type BookingGateway interface {
	CreateBooking(ctx context.Context, payload shared.BookingSubmission, bearerToken string) (shared.BookingCreated, error)
	CreatePaymentIntent(ctx context.Context, bookingID string) (shared.PaymentIntent, error)
}

type SubmitParams struct {
	FirstName           string
	LastName            string
	Email               string
	Phone               string
	SpecialRequirements string
	NumberOfPeople      int
	PromoCode           string
}

type SubmitOutcome string

const (
	// OutcomeConfirmed: staff booking, complete with no payment step.
	OutcomeConfirmed SubmitOutcome = "confirmed"
	// OutcomeRedirect: guest booking, caller must navigate to RedirectURL.
	OutcomeRedirect SubmitOutcome = "redirect"
)

type SubmitResult struct {
	Outcome     SubmitOutcome
	BookingID   string
	RedirectURL string
}

// SubmissionCommands turns a completed draft plus contact details into an
// upstream booking, then branches on the submitting principal: staff
// bookings are terminal confirmations, guest bookings continue into the
// payment-intent redirect.
type SubmissionCommands interface {
	Submit(ctx context.Context, sessionID uuid.UUID, params SubmitParams, principal shared.Principal) (*SubmitResult, error)
}

type submissionCommandsImpl struct {
	store   SessionStore
	gateway BookingGateway
}

func NewSubmissionCommands(store SessionStore, gateway BookingGateway) SubmissionCommands {
	return &submissionCommandsImpl{
		store:   store,
		gateway: gateway,
	}
}

func (c *submissionCommandsImpl) Submit(
	ctx context.Context,
	sessionID uuid.UUID,
	params SubmitParams,
	principal shared.Principal,
) (*SubmitResult, error) {
	s, err := c.store.Find(sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, errs.Wrap(err, "failed to find session")
	}

	contact, err := wizard.NewContact(
		params.FirstName, params.LastName, params.Email, params.Phone, params.SpecialRequirements)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidContact)
	}

	var payload shared.BookingSubmission
	if err := s.WithErr(func(d *wizard.Draft) error {
		if err := d.SetPeople(params.NumberOfPeople); err != nil {
			return err
		}
		d.SetPromoCode(params.PromoCode)
		if err := d.ReadyToSubmit(); err != nil {
			return err
		}
		d.SetContact(contact)
		payload = buildSubmission(d, contact)
		return nil
	}); err != nil {
		return nil, errs.Mark(err, ErrDraftNotReady)
	}

	// At most one submission in flight per session; a re-entrant submit
	// is a no-op from the caller's perspective.
	if !s.BeginSubmit() {
		return nil, ErrSubmissionInFlight
	}

	created, err := c.gateway.CreateBooking(ctx, payload, principal.Token)
	if err != nil {
		// The draft is untouched; the caller stays on confirm and may
		// retry after correcting input or re-checking availability.
		s.EndSubmit()
		return nil, errs.Mark(err, ErrBookingRejected)
	}

	if principal.Staff {
		s.EndSubmit()
		s.With(func(d *wizard.Draft) {
			d.Reset()
		})
		s.SetAvailability(shared.AvailabilityState{Status: shared.AvailabilityIdle})
		slog.Info("manual booking confirmed",
			"session_id", sessionID, "booking_id", created.ID, "staff_user_id", principal.UserID)
		return &SubmitResult{Outcome: OutcomeConfirmed, BookingID: created.ID}, nil
	}

	// The payment intent strictly follows the booking; the two calls are
	// never concurrent for one draft.
	s.MarkPaymentPending()
	intent, err := c.gateway.CreatePaymentIntent(ctx, created.ID)
	s.EndSubmit()
	if err != nil {
		slog.Error("payment intent failed after booking was created",
			"session_id", sessionID, "booking_id", created.ID, "error", err.Error())
		return nil, &PaymentIntentError{BookingID: created.ID, err: err}
	}

	s.With(func(d *wizard.Draft) {
		d.MarkSucceeded()
	})
	return &SubmitResult{Outcome: OutcomeRedirect, BookingID: created.ID, RedirectURL: intent.URL}, nil
}

func buildSubmission(d *wizard.Draft, contact wizard.Contact) shared.BookingSubmission {
	selected := d.SelectedSlots()
	slots := make([]shared.SubmittedSlot, 0, len(selected))
	for _, slot := range selected {
		slots = append(slots, shared.SubmittedSlot{Start: slot.Start, End: slot.End})
	}
	return shared.BookingSubmission{
		User: shared.BookingUser{
			FirstName: contact.FirstName,
			LastName:  contact.LastName,
			Email:     contact.Email,
			Phone:     contact.Phone,
		},
		Date:           d.SelectedDate().Format("01-02-2006"),
		TimeSlots:      slots,
		Service:        d.Service().ID,
		Room:           d.Room().ID,
		PromoCode:      d.PromoCode(),
		NumberOfPeople: d.People(),
	}
}
