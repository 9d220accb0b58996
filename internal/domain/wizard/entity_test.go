//go:build unit

package wizard_test

import (
	"testing"
	"time"

	"booking-wizard/internal/domain/wizard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC) // Monday

func slotAt(start, end string) wizard.TimeSlot {
	return wizard.TimeSlot{Start: start, End: end, Available: true}
}

// progresses a draft through the selection steps up to and including time
func draftAtTime(t *testing.T) *wizard.Draft {
	t.Helper()
	d := wizard.NewDraft()
	d.SelectCategory(wizard.CategorySnapshot{ID: "cat-1", Name: "Treatments"})
	d.SelectRoom(wizard.RoomSnapshot{ID: "room-1", Name: "Room One"})
	d.SelectService(wizard.ServiceSnapshot{ID: "svc-1", Name: "Deep Tissue", PricePerSlotCents: 2000})
	require.NoError(t, d.SelectDate(now.AddDate(0, 0, 1), now))
	require.NoError(t, d.Navigate(wizard.StepTime))
	return d
}

func TestDraftNavigation(t *testing.T) {
	t.Run("starts at category with one person", func(t *testing.T) {
		d := wizard.NewDraft()
		assert.Equal(t, wizard.StepCategory, d.Step())
		assert.Equal(t, 1, d.People())
	})

	t.Run("forward navigation is guarded by prerequisites", func(t *testing.T) {
		cases := []struct {
			name     string
			prepare  func(d *wizard.Draft)
			target   wizard.Step
			required wizard.Step
		}{
			{
				name:     "room requires a category",
				prepare:  func(d *wizard.Draft) {},
				target:   wizard.StepRoom,
				required: wizard.StepCategory,
			},
			{
				name: "service requires a room",
				prepare: func(d *wizard.Draft) {
					d.SelectCategory(wizard.CategorySnapshot{ID: "cat-1"})
				},
				target:   wizard.StepService,
				required: wizard.StepRoom,
			},
			{
				name: "time requires a service",
				prepare: func(d *wizard.Draft) {
					d.SelectCategory(wizard.CategorySnapshot{ID: "cat-1"})
					d.SelectRoom(wizard.RoomSnapshot{ID: "room-1"})
				},
				target:   wizard.StepTime,
				required: wizard.StepService,
			},
			{
				name: "confirm requires selected slots",
				prepare: func(d *wizard.Draft) {
					d.SelectCategory(wizard.CategorySnapshot{ID: "cat-1"})
					d.SelectRoom(wizard.RoomSnapshot{ID: "room-1"})
					d.SelectService(wizard.ServiceSnapshot{ID: "svc-1"})
				},
				target:   wizard.StepConfirm,
				required: wizard.StepTime,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				d := wizard.NewDraft()
				tc.prepare(d)

				err := d.Navigate(tc.target)
				require.Error(t, err)
				require.ErrorIs(t, err, wizard.ErrNoForwardToStep)

				var guardErr *wizard.StepGuardError
				require.ErrorAs(t, err, &guardErr)
				assert.Equal(t, tc.target, guardErr.Target)
				assert.Equal(t, tc.required, guardErr.Required)
				assert.Equal(t, wizard.StepCategory, d.Step(), "step must not move on a rejected transition")
			})
		}
	})

	t.Run("backward navigation is always allowed", func(t *testing.T) {
		d := draftAtTime(t)
		require.NoError(t, d.Navigate(wizard.StepCategory))
		assert.Equal(t, wizard.StepCategory, d.Step())
	})

	t.Run("backward navigation keeps selections intact", func(t *testing.T) {
		d := draftAtTime(t)
		require.NoError(t, d.ToggleSlot(slotAt("09:00", "10:00")))
		require.NoError(t, d.Navigate(wizard.StepRoom))

		assert.NotNil(t, d.SelectedDate())
		assert.Len(t, d.SelectedSlots(), 1)
	})

	t.Run("success step is unreachable through navigation", func(t *testing.T) {
		d := draftAtTime(t)
		require.NoError(t, d.ToggleSlot(slotAt("09:00", "10:00")))

		err := d.Navigate(wizard.StepSuccess)
		require.ErrorIs(t, err, wizard.ErrNoForwardToStep)
	})

	t.Run("unknown step is rejected", func(t *testing.T) {
		d := wizard.NewDraft()
		require.ErrorIs(t, d.Navigate(wizard.Step("checkout")), wizard.ErrUnknownStep)
	})

	t.Run("confirm is reachable with a complete selection", func(t *testing.T) {
		d := draftAtTime(t)
		require.NoError(t, d.ToggleSlot(slotAt("09:00", "10:00")))
		require.NoError(t, d.Navigate(wizard.StepConfirm))
		require.NoError(t, d.ReadyToSubmit())
	})
}

func TestDraftSelections(t *testing.T) {
	t.Run("changing room clears date and slots", func(t *testing.T) {
		d := draftAtTime(t)
		require.NoError(t, d.ToggleSlot(slotAt("09:00", "10:00")))

		d.SelectRoom(wizard.RoomSnapshot{ID: "room-2", Name: "Room Two"})

		assert.Nil(t, d.SelectedDate())
		assert.Empty(t, d.SelectedSlots())
	})

	t.Run("reselecting the same room keeps the schedule", func(t *testing.T) {
		d := draftAtTime(t)
		require.NoError(t, d.ToggleSlot(slotAt("09:00", "10:00")))

		d.SelectRoom(wizard.RoomSnapshot{ID: "room-1", Name: "Room One (renamed)"})

		assert.NotNil(t, d.SelectedDate())
		assert.Len(t, d.SelectedSlots(), 1)
	})

	t.Run("changing service clears date and slots", func(t *testing.T) {
		d := draftAtTime(t)
		require.NoError(t, d.ToggleSlot(slotAt("09:00", "10:00")))

		d.SelectService(wizard.ServiceSnapshot{ID: "svc-2"})

		assert.Nil(t, d.SelectedDate())
		assert.Empty(t, d.SelectedSlots())
	})

	t.Run("date validation", func(t *testing.T) {
		t.Run("requires a service first", func(t *testing.T) {
			d := wizard.NewDraft()
			require.ErrorIs(t, d.SelectDate(now, now), wizard.ErrNoServiceSelected)
		})

		t.Run("rejects past days but accepts today", func(t *testing.T) {
			d := draftAtTime(t)
			require.ErrorIs(t, d.SelectDate(now.AddDate(0, 0, -1), now), wizard.ErrPastDate)
			require.NoError(t, d.SelectDate(now, now), "today is bookable regardless of the wall clock hour")
		})

		t.Run("rejects weekdays the service is not offered on", func(t *testing.T) {
			d := wizard.NewDraft()
			d.SelectService(wizard.ServiceSnapshot{ID: "svc-1", AvailableDays: []string{"Mon", "Wed"}})

			require.NoError(t, d.SelectDate(now, now)) // Monday
			require.ErrorIs(t, d.SelectDate(now.AddDate(0, 0, 1), now), wizard.ErrDayNotAvailable)
			require.NoError(t, d.SelectDate(now.AddDate(0, 0, 2), now)) // Wednesday
		})

		t.Run("changing the date drops picked slots", func(t *testing.T) {
			d := draftAtTime(t)
			require.NoError(t, d.ToggleSlot(slotAt("09:00", "10:00")))

			require.NoError(t, d.SelectDate(now.AddDate(0, 0, 2), now))
			assert.Empty(t, d.SelectedSlots())
		})

		t.Run("reselecting the same date keeps picked slots", func(t *testing.T) {
			d := draftAtTime(t)
			require.NoError(t, d.ToggleSlot(slotAt("09:00", "10:00")))

			require.NoError(t, d.SelectDate(now.AddDate(0, 0, 1), now))
			assert.Len(t, d.SelectedSlots(), 1)
		})
	})

	t.Run("slot toggling", func(t *testing.T) {
		t.Run("select then deselect", func(t *testing.T) {
			d := draftAtTime(t)
			slot := slotAt("09:00", "10:00")

			require.NoError(t, d.ToggleSlot(slot))
			assert.Len(t, d.SelectedSlots(), 1)

			require.NoError(t, d.ToggleSlot(slot))
			assert.Empty(t, d.SelectedSlots())
		})

		t.Run("unavailable slots cannot be selected", func(t *testing.T) {
			d := draftAtTime(t)
			err := d.ToggleSlot(wizard.TimeSlot{Start: "09:00", End: "10:00", Available: false})
			require.ErrorIs(t, err, wizard.ErrSlotUnavailable)
		})

		t.Run("deselect matches on identity, not availability", func(t *testing.T) {
			d := draftAtTime(t)
			require.NoError(t, d.ToggleSlot(slotAt("09:00", "10:00")))

			// The slot went stale and is now reported unavailable; the user
			// can still remove it from their selection.
			require.NoError(t, d.ToggleSlot(wizard.TimeSlot{Start: "09:00", End: "10:00", Available: false}))
			assert.Empty(t, d.SelectedSlots())
		})

		t.Run("selection order is preserved", func(t *testing.T) {
			d := draftAtTime(t)
			require.NoError(t, d.ToggleSlot(slotAt("11:00", "12:00")))
			require.NoError(t, d.ToggleSlot(slotAt("09:00", "10:00")))

			selected := d.SelectedSlots()
			require.Len(t, selected, 2)
			assert.Equal(t, "11:00", selected[0].Start)
			assert.Equal(t, "09:00", selected[1].Start)
		})
	})

	t.Run("people bounds", func(t *testing.T) {
		d := wizard.NewDraft()
		require.ErrorIs(t, d.SetPeople(0), wizard.ErrPeopleOutOfRange)
		require.ErrorIs(t, d.SetPeople(6), wizard.ErrPeopleOutOfRange)
		require.NoError(t, d.SetPeople(1))
		require.NoError(t, d.SetPeople(5))
		assert.Equal(t, 5, d.People())
	})
}

func TestDraftAvailabilityKey(t *testing.T) {
	t.Run("unset until service, room and date are chosen", func(t *testing.T) {
		d := wizard.NewDraft()
		_, ok := d.AvailabilityKey()
		assert.False(t, ok)

		d.SelectRoom(wizard.RoomSnapshot{ID: "room-1"})
		d.SelectService(wizard.ServiceSnapshot{ID: "svc-1"})
		_, ok = d.AvailabilityKey()
		assert.False(t, ok, "still no date")

		require.NoError(t, d.SelectDate(now, now))
		key, ok := d.AvailabilityKey()
		require.True(t, ok)
		assert.Equal(t, wizard.AvailabilityKey{ServiceID: "svc-1", RoomID: "room-1", Date: "2026-03-02"}, key)
	})

	t.Run("any component change produces a new key", func(t *testing.T) {
		d := draftAtTime(t)
		before, ok := d.AvailabilityKey()
		require.True(t, ok)

		require.NoError(t, d.SelectDate(now.AddDate(0, 0, 2), now))
		after, ok := d.AvailabilityKey()
		require.True(t, ok)
		assert.NotEqual(t, before, after)
	})
}

func TestDraftReset(t *testing.T) {
	d := draftAtTime(t)
	require.NoError(t, d.ToggleSlot(slotAt("09:00", "10:00")))
	require.NoError(t, d.SetPeople(3))
	d.SetPromoCode("SPRING10")
	d.MarkSucceeded()
	require.Equal(t, wizard.StepSuccess, d.Step())

	d.Reset()

	assert.Equal(t, wizard.StepCategory, d.Step())
	assert.Nil(t, d.Category())
	assert.Nil(t, d.Room())
	assert.Nil(t, d.Service())
	assert.Nil(t, d.SelectedDate())
	assert.Empty(t, d.SelectedSlots())
	assert.Equal(t, 1, d.People())
	assert.Empty(t, d.PromoCode())
}
