package shared

import (
	"sync"
	"time"

	"booking-wizard/internal/domain/wizard"

	"github.com/google/uuid"
)

// AvailabilityStatus is the lifecycle of one availability query.
type AvailabilityStatus string

const (
	// AvailabilityIdle: no fetch is possible yet (service or date unset).
	AvailabilityIdle    AvailabilityStatus = "idle"
	AvailabilityLoading AvailabilityStatus = "loading"
	AvailabilityLoaded  AvailabilityStatus = "loaded"
	AvailabilityError   AvailabilityStatus = "error"
)

// AvailabilityState is the last known result for the session's current
// availability key. A loaded empty slice is a valid "no slots" outcome,
// distinct from an error.
type AvailabilityState struct {
	Status AvailabilityStatus
	Key    wizard.AvailabilityKey
	Slots  []wizard.TimeSlot
	Reason string // set when Status is AvailabilityError
}

// SubmitPhase tracks which submission call is in flight, so the caller
// can render "booking pending" and "payment pending" distinctly and so
// re-entrant submits are rejected.
type SubmitPhase string

const (
	SubmitIdle           SubmitPhase = "idle"
	SubmitBookingPending SubmitPhase = "booking_pending"
	SubmitPaymentPending SubmitPhase = "payment_pending"
)

// Session is one wizard session: the draft plus the transient query and
// submission state around it. All access goes through the session mutex,
// preserving the single-writer model even though the HTTP surface is
// concurrent.
type Session struct {
	mu sync.Mutex

	id           uuid.UUID
	draft        *wizard.Draft
	availability AvailabilityState
	submitPhase  SubmitPhase
	createdAt    time.Time
	touchedAt    time.Time
}

func NewSession(now time.Time) *Session {
	return &Session{
		id:           uuid.New(),
		draft:        wizard.NewDraft(),
		availability: AvailabilityState{Status: AvailabilityIdle},
		submitPhase:  SubmitIdle,
		createdAt:    now,
		touchedAt:    now,
	}
}

func (s *Session) ID() uuid.UUID       { return s.id }
func (s *Session) CreatedAt() time.Time { return s.createdAt }

// With runs fn holding the session mutex. The draft must only be touched
// inside fn.
func (s *Session) With(fn func(d *wizard.Draft)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.draft)
}

// WithErr is With for mutations that can fail.
func (s *Session) WithErr(fn func(d *wizard.Draft) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.draft)
}

func (s *Session) Touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchedAt = now
}

func (s *Session) ExpiredAt(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.touchedAt) > ttl
}

// CurrentKey reads the draft's availability key under the session lock.
func (s *Session) CurrentKey() (wizard.AvailabilityKey, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.AvailabilityKey()
}

func (s *Session) Availability() AvailabilityState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.availability
}

func (s *Session) SetAvailability(state AvailabilityState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.availability = state
}

// ApplyAvailabilityIfCurrent installs a fetch result only when the draft
// still points at the key the fetch was issued for. Results for
// superseded keys are discarded on arrival.
func (s *Session) ApplyAvailabilityIfCurrent(state AvailabilityState) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.draft.AvailabilityKey()
	if !ok || current != state.Key {
		return false
	}
	s.availability = state
	return true
}

func (s *Session) SubmitPhase() SubmitPhase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitPhase
}

// BeginSubmit claims the single in-flight submission. It reports false
// when a booking or payment-intent call is already pending.
func (s *Session) BeginSubmit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitPhase != SubmitIdle {
		return false
	}
	s.submitPhase = SubmitBookingPending
	return true
}

// MarkPaymentPending moves the claimed submission into its second,
// dependent call. The booking record already exists upstream.
func (s *Session) MarkPaymentPending() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitPhase = SubmitPaymentPending
}

func (s *Session) EndSubmit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitPhase = SubmitIdle
}
