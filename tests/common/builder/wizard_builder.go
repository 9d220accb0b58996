//go:build unit

package builder

import (
	"testing"
	"time"

	"booking-wizard/internal/domain/wizard"
	reqdto "booking-wizard/internal/handler/dto/request"
	"booking-wizard/internal/usecase/commands"
	"booking-wizard/internal/usecase/shared"

	"github.com/stretchr/testify/require"
)

// BaseTime is the frozen "now" the builders work against. It is a Monday
// so weekday-availability cases are predictable.
var BaseTime = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

// WizardBuilder assembles a session whose draft has progressed through
// the selection steps. Defaults describe a guest one-slot booking that is
// ready to submit.
type WizardBuilder struct {
	now      time.Time
	category wizard.CategorySnapshot
	room     wizard.RoomSnapshot
	service  wizard.ServiceSnapshot
	date     time.Time
	offered  []wizard.TimeSlot
	selected []wizard.TimeSlot
	people   int
	promo    string
}

func NewWizardBuilder() *WizardBuilder {
	offered := []wizard.TimeSlot{
		{Start: "09:00", End: "10:00", Available: true},
		{Start: "10:00", End: "11:00", Available: true},
		{Start: "11:00", End: "12:00", Available: false},
	}
	return &WizardBuilder{
		now:      BaseTime,
		category: wizard.CategorySnapshot{ID: "cat-1", Name: "Treatments"},
		room:     wizard.RoomSnapshot{ID: "room-1", Name: "Room One"},
		service: wizard.ServiceSnapshot{
			ID:                "svc-1",
			Name:              "Deep Tissue",
			PricePerSlotCents: 2000,
		},
		date:     BaseTime.AddDate(0, 0, 1),
		offered:  offered,
		selected: offered[:1],
		people:   2,
	}
}

func (b *WizardBuilder) With(fn func(*WizardBuilder)) *WizardBuilder {
	fn(b)
	return b
}

func (b *WizardBuilder) WithService(snap wizard.ServiceSnapshot) *WizardBuilder {
	b.service = snap
	return b
}

func (b *WizardBuilder) WithDate(date time.Time) *WizardBuilder {
	b.date = date
	return b
}

func (b *WizardBuilder) WithOffered(slots ...wizard.TimeSlot) *WizardBuilder {
	b.offered = slots
	return b
}

func (b *WizardBuilder) WithSelected(slots ...wizard.TimeSlot) *WizardBuilder {
	b.selected = slots
	return b
}

func (b *WizardBuilder) WithPeople(n int) *WizardBuilder {
	b.people = n
	return b
}

func (b *WizardBuilder) WithPromoCode(code string) *WizardBuilder {
	b.promo = code
	return b
}

// BuildSession returns a session whose draft holds every default
// selection and whose availability is loaded for the current key.
func (b *WizardBuilder) BuildSession(t *testing.T) *shared.Session {
	t.Helper()

	s := shared.NewSession(b.now)
	err := s.WithErr(func(d *wizard.Draft) error {
		d.SelectCategory(b.category)
		d.SelectRoom(b.room)
		d.SelectService(b.service)
		if err := d.SelectDate(b.date, b.now); err != nil {
			return err
		}
		for _, slot := range b.selected {
			if err := d.ToggleSlot(slot); err != nil {
				return err
			}
		}
		if err := d.SetPeople(b.people); err != nil {
			return err
		}
		d.SetPromoCode(b.promo)
		return nil
	})
	require.NoError(t, err)

	key, ok := s.CurrentKey()
	require.True(t, ok)
	s.SetAvailability(shared.AvailabilityState{
		Status: shared.AvailabilityLoaded,
		Key:    key,
		Slots:  b.offered,
	})
	return s
}

func (b *WizardBuilder) BuildSubmitRequestDTO() reqdto.SubmitBookingRequest {
	return reqdto.SubmitBookingRequest{
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Email:          "ada@example.com",
		Phone:          "+44 20 7946 0000",
		NumberOfPeople: b.people,
		PromoCode:      b.promo,
	}
}

func (b *WizardBuilder) BuildSubmitParams() commands.SubmitParams {
	dto := b.BuildSubmitRequestDTO()
	return commands.SubmitParams{
		FirstName:      dto.FirstName,
		LastName:       dto.LastName,
		Email:          dto.Email,
		Phone:          dto.Phone,
		NumberOfPeople: dto.NumberOfPeople,
		PromoCode:      dto.PromoCode,
	}
}
