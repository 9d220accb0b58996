package queries

import (
	"github.com/google/uuid"
)

// Read models (DTO for read side)
type SessionView struct {
	ID             uuid.UUID        `json:"id"`
	Step           string           `json:"step"`
	Category       *SelectionView   `json:"category,omitempty"`
	Room           *SelectionView   `json:"room,omitempty"`
	Service        *ServiceView     `json:"service,omitempty"`
	SelectedDate   *string          `json:"selected_date,omitempty"`
	SelectedSlots  []SlotView       `json:"selected_slots"`
	NumberOfPeople int              `json:"number_of_people"`
	PromoCode      string           `json:"promo_code,omitempty"`
	Quote          QuoteView        `json:"quote"`
	Availability   AvailabilityView `json:"availability"`
	SubmitPhase    string           `json:"submit_phase"`
}

type SelectionView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ServiceView struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	PricePerSlotCents int64    `json:"price_per_slot_cents"`
	AvailableDays     []string `json:"available_days"`
}

type SlotView struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
	Label     string `json:"label"`
}

type QuoteView struct {
	PricePerSlotCents int64  `json:"price_per_slot_cents"`
	SlotCount         int    `json:"slot_count"`
	NumberOfPeople    int    `json:"number_of_people"`
	TotalCents        int64  `json:"total_cents"`
	TotalDisplay      string `json:"total_display"`
}

type AvailabilityView struct {
	Status string     `json:"status"`
	Date   string     `json:"date,omitempty"`
	Slots  []SlotView `json:"slots"`
	Reason string     `json:"reason,omitempty"`
}
