package commands

import (
	"time"

	"booking-wizard/internal/domain/wizard"
	"booking-wizard/internal/infra"
	"booking-wizard/internal/pkg/clock"
	"booking-wizard/internal/pkg/errs"
	"booking-wizard/internal/usecase/queries"
	"booking-wizard/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound  = errs.New("session not found")
	ErrInvalidDate      = errs.New("invalid date")
	ErrSlotNotOffered   = errs.New("slot not in current availability")
	ErrDomainValidation = errs.New("domain validation error")
)

type SessionStore interface {
	Add(s *shared.Session)
	Find(id uuid.UUID) (*shared.Session, error)
}

type SelectCategoryParams struct {
	ID   string
	Name string
}

type SelectRoomParams struct {
	ID   string
	Name string
}

type SelectServiceParams struct {
	ID                string
	Name              string
	PricePerSlotCents int64
	AvailableDays     []string
}

// WizardCommands mutates the draft of one wizard session. Every mutation
// returns the refreshed session view so clients can re-render without a
// second round trip.
type WizardCommands interface {
	StartSession() (*queries.SessionView, error)
	SelectCategory(sessionID uuid.UUID, params SelectCategoryParams) (*queries.SessionView, error)
	SelectRoom(sessionID uuid.UUID, params SelectRoomParams) (*queries.SessionView, error)
	SelectService(sessionID uuid.UUID, params SelectServiceParams) (*queries.SessionView, error)
	SelectDate(sessionID uuid.UUID, date string) (*queries.SessionView, error)
	ToggleSlot(sessionID uuid.UUID, start, end string) (*queries.SessionView, error)
	SetPeople(sessionID uuid.UUID, people int) (*queries.SessionView, error)
	SetPromoCode(sessionID uuid.UUID, code string) (*queries.SessionView, error)
	Navigate(sessionID uuid.UUID, step string) (*queries.SessionView, error)
	// RefreshSlots forces a new availability fetch for the current key,
	// the recovery path after a slot conflict at submission time.
	RefreshSlots(sessionID uuid.UUID) (*queries.SessionView, error)
}

type wizardCommandsImpl struct {
	store          SessionStore
	availability   queries.AvailabilityQueries
	sessionQueries queries.SessionQueries
	clock          clock.Clock
}

func NewWizardCommands(
	store SessionStore,
	availability queries.AvailabilityQueries,
	sessionQueries queries.SessionQueries,
	clk clock.Clock,
) WizardCommands {
	return &wizardCommandsImpl{
		store:          store,
		availability:   availability,
		sessionQueries: sessionQueries,
		clock:          clk,
	}
}

func (w *wizardCommandsImpl) StartSession() (*queries.SessionView, error) {
	s := shared.NewSession(w.clock.Now())
	w.store.Add(s)
	return w.sessionQueries.Get(s.ID())
}

func (w *wizardCommandsImpl) find(id uuid.UUID) (*shared.Session, error) {
	s, err := w.store.Find(id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, errs.Wrap(err, "failed to find session")
	}
	s.Touch(w.clock.Now())
	return s, nil
}

func (w *wizardCommandsImpl) SelectCategory(sessionID uuid.UUID, params SelectCategoryParams) (*queries.SessionView, error) {
	s, err := w.find(sessionID)
	if err != nil {
		return nil, err
	}
	s.With(func(d *wizard.Draft) {
		d.SelectCategory(wizard.CategorySnapshot{ID: params.ID, Name: params.Name})
		_ = d.Navigate(wizard.StepRoom)
	})
	return w.sessionQueries.Get(sessionID)
}

func (w *wizardCommandsImpl) SelectRoom(sessionID uuid.UUID, params SelectRoomParams) (*queries.SessionView, error) {
	s, err := w.find(sessionID)
	if err != nil {
		return nil, err
	}
	s.With(func(d *wizard.Draft) {
		d.SelectRoom(wizard.RoomSnapshot{ID: params.ID, Name: params.Name})
		_ = d.Navigate(wizard.StepService)
	})
	w.availability.Refresh(s)
	return w.sessionQueries.Get(sessionID)
}

func (w *wizardCommandsImpl) SelectService(sessionID uuid.UUID, params SelectServiceParams) (*queries.SessionView, error) {
	s, err := w.find(sessionID)
	if err != nil {
		return nil, err
	}
	s.With(func(d *wizard.Draft) {
		d.SelectService(wizard.ServiceSnapshot{
			ID:                params.ID,
			Name:              params.Name,
			PricePerSlotCents: params.PricePerSlotCents,
			AvailableDays:     params.AvailableDays,
		})
		_ = d.Navigate(wizard.StepTime)
	})
	w.availability.Refresh(s)
	return w.sessionQueries.Get(sessionID)
}

func (w *wizardCommandsImpl) SelectDate(sessionID uuid.UUID, date string) (*queries.SessionView, error) {
	s, err := w.find(sessionID)
	if err != nil {
		return nil, err
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if err := s.WithErr(func(d *wizard.Draft) error {
		return d.SelectDate(day, w.clock.Now())
	}); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	// Exactly one fetch per key change; Refresh dedupes in-flight keys.
	w.availability.Refresh(s)
	return w.sessionQueries.Get(sessionID)
}

func (w *wizardCommandsImpl) ToggleSlot(sessionID uuid.UUID, start, end string) (*queries.SessionView, error) {
	s, err := w.find(sessionID)
	if err != nil {
		return nil, err
	}

	// Only slots from the current loaded snapshot can be toggled; picking
	// from a stale or errored list is rejected outright.
	state := s.Availability()
	if state.Status != shared.AvailabilityLoaded {
		return nil, ErrSlotNotOffered
	}
	wanted := wizard.TimeSlot{Start: start, End: end}
	var offered *wizard.TimeSlot
	for _, slot := range state.Slots {
		if slot.Same(wanted) {
			offered = &slot
			break
		}
	}
	if offered == nil {
		return nil, ErrSlotNotOffered
	}

	if err := s.WithErr(func(d *wizard.Draft) error {
		return d.ToggleSlot(*offered)
	}); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	return w.sessionQueries.Get(sessionID)
}

func (w *wizardCommandsImpl) SetPeople(sessionID uuid.UUID, people int) (*queries.SessionView, error) {
	s, err := w.find(sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.WithErr(func(d *wizard.Draft) error {
		return d.SetPeople(people)
	}); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	return w.sessionQueries.Get(sessionID)
}

func (w *wizardCommandsImpl) SetPromoCode(sessionID uuid.UUID, code string) (*queries.SessionView, error) {
	s, err := w.find(sessionID)
	if err != nil {
		return nil, err
	}
	s.With(func(d *wizard.Draft) {
		d.SetPromoCode(code)
	})
	return w.sessionQueries.Get(sessionID)
}

func (w *wizardCommandsImpl) Navigate(sessionID uuid.UUID, step string) (*queries.SessionView, error) {
	s, err := w.find(sessionID)
	if err != nil {
		return nil, err
	}
	target, err := wizard.ParseStep(step)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if err := s.WithErr(func(d *wizard.Draft) error {
		return d.Navigate(target)
	}); err != nil {
		return nil, err
	}
	w.availability.Refresh(s)
	return w.sessionQueries.Get(sessionID)
}

func (w *wizardCommandsImpl) RefreshSlots(sessionID uuid.UUID) (*queries.SessionView, error) {
	s, err := w.find(sessionID)
	if err != nil {
		return nil, err
	}
	w.availability.Requery(s)
	return w.sessionQueries.Get(sessionID)
}
