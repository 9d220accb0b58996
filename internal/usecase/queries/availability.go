package queries

import (
	"context"
	"log/slog"
	"time"

	"booking-wizard/internal/domain/wizard"
	"booking-wizard/internal/usecase/shared"

	"golang.org/x/sync/singleflight"
)

// AvailabilityGateway fetches the bookable slots for one key from the
// upstream backend.
type AvailabilityGateway interface {
	CheckAvailability(ctx context.Context, key wizard.AvailabilityKey) ([]wizard.TimeSlot, error)
}

// AvailabilityQueries owns the asynchronous availability lifecycle of a
// session: at most one fetch per key at a time, and results for
// superseded keys are discarded when they arrive.
type AvailabilityQueries interface {
	// Refresh starts a fetch for the session's current key unless one is
	// already in flight or the current result is already for that key.
	// It returns immediately; the result lands on the session later.
	Refresh(s *shared.Session)
	// Requery discards the current loaded result and fetches again, the
	// recovery path when a selected slot was booked out from under the
	// draft.
	Requery(s *shared.Session)
	Snapshot(s *shared.Session) shared.AvailabilityState
}

type availabilityQueriesImpl struct {
	gateway AvailabilityGateway
	group   singleflight.Group
	timeout time.Duration
}

func NewAvailabilityQueries(gateway AvailabilityGateway, timeout time.Duration) AvailabilityQueries {
	return &availabilityQueriesImpl{
		gateway: gateway,
		timeout: timeout,
	}
}

func (a *availabilityQueriesImpl) Refresh(s *shared.Session) {
	a.refresh(s, false)
}

func (a *availabilityQueriesImpl) Requery(s *shared.Session) {
	a.refresh(s, true)
}

func (a *availabilityQueriesImpl) refresh(s *shared.Session, force bool) {
	key, ok := s.CurrentKey()
	if !ok {
		// Fetching is disabled until service, room and date are chosen.
		s.SetAvailability(shared.AvailabilityState{Status: shared.AvailabilityIdle})
		return
	}

	state := s.Availability()
	if state.Key == key && state.Status == shared.AvailabilityLoading {
		return
	}
	if !force && state.Key == key && state.Status == shared.AvailabilityLoaded {
		return
	}

	s.SetAvailability(shared.AvailabilityState{Status: shared.AvailabilityLoading, Key: key})
	go a.fetch(s, key)
}

func (a *availabilityQueriesImpl) fetch(s *shared.Session, key wizard.AvailabilityKey) {
	// Detached from the request context: the triggering request returns
	// before the result arrives, and sibling sessions share the flight.
	result, err, _ := a.group.Do(key.String(), func() (any, error) {
		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()
		return a.gateway.CheckAvailability(ctx, key)
	})

	state := shared.AvailabilityState{Status: shared.AvailabilityLoaded, Key: key}
	if err != nil {
		state = shared.AvailabilityState{Status: shared.AvailabilityError, Key: key, Reason: err.Error()}
	} else if slots, ok := result.([]wizard.TimeSlot); ok {
		state.Slots = slots
	}

	if !s.ApplyAvailabilityIfCurrent(state) {
		slog.Debug("discarding stale availability result",
			"session_id", s.ID(), "service_id", key.ServiceID, "room_id", key.RoomID, "date", key.Date)
	}
}

func (a *availabilityQueriesImpl) Snapshot(s *shared.Session) shared.AvailabilityState {
	return s.Availability()
}
