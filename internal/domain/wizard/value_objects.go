package wizard

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

var (
	ErrInvalidClockTime = errors.New("invalid clock time")
	ErrInvalidContact   = errors.New("invalid contact")
)

// TimeSlot is a bookable interval as reported by the upstream backend.
// Times are 24-hour "HH:MM" strings; Available reflects server-side truth
// at fetch time only and may go stale. Slots are immutable once fetched.
type TimeSlot struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
}

// Same reports slot identity, which is start+end. Availability is state,
// not identity.
func (t TimeSlot) Same(other TimeSlot) bool {
	return t.Start == other.Start && t.End == other.End
}

// Label renders the slot for display, e.g. "9:00 AM - 10:00 AM".
func (t TimeSlot) Label() string {
	start, err := FormatClock12(t.Start)
	if err != nil {
		return t.Start + " - " + t.End
	}
	end, err := FormatClock12(t.End)
	if err != nil {
		return t.Start + " - " + t.End
	}
	return start + " - " + end
}

// FormatClock12 converts a 24-hour "HH:MM" string to "h:MM AM/PM".
// Midnight maps to 12:00 AM and noon to 12:00 PM.
func FormatClock12(clock string) (string, error) {
	var h, m int
	if _, err := fmt.Sscanf(clock, "%d:%d", &h, &m); err != nil {
		return "", ErrInvalidClockTime
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return "", ErrInvalidClockTime
	}

	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	hour := h % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, m, period), nil
}

// Contact is collected at the confirm step only.
type Contact struct {
	FirstName           string
	LastName            string
	Email               string
	Phone               string
	SpecialRequirements string
}

func NewContact(firstName, lastName, email, phone, specialRequirements string) (Contact, error) {
	c := Contact{
		FirstName:           strings.TrimSpace(firstName),
		LastName:            strings.TrimSpace(lastName),
		Email:               strings.TrimSpace(email),
		Phone:               strings.TrimSpace(phone),
		SpecialRequirements: strings.TrimSpace(specialRequirements),
	}
	if c.FirstName == "" || c.LastName == "" || c.Phone == "" {
		return Contact{}, ErrInvalidContact
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return Contact{}, ErrInvalidContact
	}
	return c, nil
}

// FormatCents renders integer cents with two decimals for display. The
// authoritative price is always recomputed server-side from the slot list.
func FormatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
