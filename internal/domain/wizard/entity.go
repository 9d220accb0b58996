package wizard

import (
	"errors"
	"fmt"
	"time"

	"booking-wizard/internal/pkg/clock"
)

const (
	MinPeople = 1
	MaxPeople = 5
)

var (
	ErrNoServiceSelected = errors.New("no service selected")
	ErrPastDate          = errors.New("date is in the past")
	ErrDayNotAvailable   = errors.New("service not offered on this day")
	ErrSlotUnavailable   = errors.New("time slot is not available")
	ErrPeopleOutOfRange  = errors.New("number of people out of range")
	ErrNoForwardToStep   = errors.New("cannot advance to step")
)

// StepGuardError is returned when a forward transition is rejected. It
// names the first unmet prerequisite step so callers can offer a jump
// there instead of failing hard.
type StepGuardError struct {
	Target   Step
	Required Step
	Reason   string
}

func (e *StepGuardError) Error() string {
	return fmt.Sprintf("cannot advance to %s: %s (complete %s first)", e.Target, e.Reason, e.Required)
}

func (e *StepGuardError) Unwrap() error {
	return ErrNoForwardToStep
}

// CategorySnapshot, RoomSnapshot and ServiceSnapshot cache the display
// fields chosen in earlier steps. IDs are the upstream backend's opaque
// object IDs.
type CategorySnapshot struct {
	ID   string
	Name string
}

type RoomSnapshot struct {
	ID   string
	Name string
}

type ServiceSnapshot struct {
	ID                string
	Name              string
	PricePerSlotCents int64
	AvailableDays     []string // short weekday names, e.g. "Mon"
}

func (s ServiceSnapshot) offeredOn(day time.Time) bool {
	if len(s.AvailableDays) == 0 {
		return true
	}
	short := day.Weekday().String()[:3]
	for _, d := range s.AvailableDays {
		if d == short {
			return true
		}
	}
	return false
}

// AvailabilityKey identifies one availability query. Any change to any
// component is a new key; slots fetched under an old key are stale.
type AvailabilityKey struct {
	ServiceID string
	RoomID    string
	Date      string // YYYY-MM-DD
}

func (k AvailabilityKey) String() string {
	return k.ServiceID + "|" + k.RoomID + "|" + k.Date
}

// Draft is the single mutable aggregate of one wizard session. It is
// created empty at wizard entry, mutated in place by user actions, and
// reset on successful staff booking. It is never persisted; only the
// submitted payload is durable.
type Draft struct {
	step     Step
	category *CategorySnapshot
	room     *RoomSnapshot
	service  *ServiceSnapshot

	selectedDate  *time.Time // day granularity
	selectedSlots []TimeSlot // ordered, de-duplicated by start+end
	people        int
	promoCode     string
	contact       *Contact
}

func NewDraft() *Draft {
	return &Draft{
		step:   StepCategory,
		people: MinPeople,
	}
}

func (d *Draft) Step() Step                  { return d.step }
func (d *Draft) Category() *CategorySnapshot { return d.category }
func (d *Draft) Room() *RoomSnapshot         { return d.room }
func (d *Draft) Service() *ServiceSnapshot   { return d.service }
func (d *Draft) SelectedDate() *time.Time    { return d.selectedDate }
func (d *Draft) People() int                 { return d.people }
func (d *Draft) PromoCode() string           { return d.promoCode }
func (d *Draft) Contact() *Contact           { return d.contact }

func (d *Draft) SelectedSlots() []TimeSlot {
	out := make([]TimeSlot, len(d.selectedSlots))
	copy(out, d.selectedSlots)
	return out
}

func (d *Draft) SelectCategory(snap CategorySnapshot) {
	d.category = &snap
}

// SelectRoom replaces the room choice. Changing rooms invalidates the
// date and slot selections: availability was keyed to the old room.
func (d *Draft) SelectRoom(snap RoomSnapshot) {
	if d.room != nil && d.room.ID == snap.ID {
		d.room = &snap
		return
	}
	d.room = &snap
	d.clearSchedule()
}

// SelectService replaces the service choice, with the same invalidation
// rule as SelectRoom.
func (d *Draft) SelectService(snap ServiceSnapshot) {
	if d.service != nil && d.service.ID == snap.ID {
		d.service = &snap
		return
	}
	d.service = &snap
	d.clearSchedule()
}

// SelectDate accepts a calendar day if it is not in the past and its
// weekday is one the service is offered on. Both checks are local
// pre-filters, independent of the availability fetch. Changing the date
// drops previously picked slots (they belong to the old key).
func (d *Draft) SelectDate(date time.Time, now time.Time) error {
	if d.service == nil {
		return ErrNoServiceSelected
	}
	day := clock.StartOfDay(date)
	if day.Before(clock.StartOfDay(now)) {
		return ErrPastDate
	}
	if !d.service.offeredOn(day) {
		return ErrDayNotAvailable
	}
	if d.selectedDate == nil || !d.selectedDate.Equal(day) {
		d.selectedSlots = nil
	}
	d.selectedDate = &day
	return nil
}

// ToggleSlot adds slot to the selection, or removes it if already chosen.
// Only slots reported available can be selected. Order of first selection
// is preserved.
func (d *Draft) ToggleSlot(slot TimeSlot) error {
	for i, s := range d.selectedSlots {
		if s.Same(slot) {
			d.selectedSlots = append(d.selectedSlots[:i], d.selectedSlots[i+1:]...)
			return nil
		}
	}
	if !slot.Available {
		return ErrSlotUnavailable
	}
	d.selectedSlots = append(d.selectedSlots, slot)
	return nil
}

func (d *Draft) SetPeople(n int) error {
	if n < MinPeople || n > MaxPeople {
		return ErrPeopleOutOfRange
	}
	d.people = n
	return nil
}

func (d *Draft) SetPromoCode(code string) {
	d.promoCode = code
}

func (d *Draft) SetContact(c Contact) {
	d.contact = &c
}

// AvailabilityKey returns the current query key. ok is false while the
// service or date is unset, which disables fetching entirely.
func (d *Draft) AvailabilityKey() (AvailabilityKey, bool) {
	if d.service == nil || d.room == nil || d.selectedDate == nil {
		return AvailabilityKey{}, false
	}
	return AvailabilityKey{
		ServiceID: d.service.ID,
		RoomID:    d.room.ID,
		Date:      d.selectedDate.Format("2006-01-02"),
	}, true
}

// Navigate moves the wizard. Backward movement needs no validation (UX
// override, the earlier steps re-validate on the way forward). Forward
// movement is guarded by the entry invariants of the target step. The
// success step is reserved for the submission coordinator.
func (d *Draft) Navigate(target Step) error {
	if _, ok := stepOrder[target]; !ok {
		return ErrUnknownStep
	}
	if target == StepSuccess {
		return &StepGuardError{Target: target, Required: StepConfirm, Reason: "success is reached only through submission"}
	}
	if !d.step.Before(target) {
		d.step = target
		return nil
	}
	if err := d.guardEntry(target); err != nil {
		return err
	}
	d.step = target
	return nil
}

func (d *Draft) guardEntry(target Step) error {
	unmet := func(required Step, reason string) error {
		return &StepGuardError{Target: target, Required: required, Reason: reason}
	}
	if stepOrder[target] >= stepOrder[StepRoom] && d.category == nil {
		return unmet(StepCategory, "no category selected")
	}
	if stepOrder[target] >= stepOrder[StepService] && d.room == nil {
		return unmet(StepRoom, "no room selected")
	}
	if stepOrder[target] >= stepOrder[StepTime] && d.service == nil {
		return unmet(StepService, "no service selected")
	}
	if stepOrder[target] >= stepOrder[StepConfirm] && d.selectedDate == nil {
		return unmet(StepTime, "no date selected")
	}
	if stepOrder[target] >= stepOrder[StepConfirm] && len(d.selectedSlots) == 0 {
		return unmet(StepTime, "no time slots selected")
	}
	return nil
}

// ReadyToSubmit reports whether the confirm-step invariants hold.
func (d *Draft) ReadyToSubmit() error {
	return d.guardEntry(StepConfirm)
}

// MarkSucceeded is invoked by the submission coordinator only, after the
// upstream confirms the booking.
func (d *Draft) MarkSucceeded() {
	d.step = StepSuccess
}

// Reset returns the draft to its initial empty state.
func (d *Draft) Reset() {
	*d = *NewDraft()
}

func (d *Draft) clearSchedule() {
	d.selectedDate = nil
	d.selectedSlots = nil
}
