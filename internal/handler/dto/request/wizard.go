package request

import (
	"booking-wizard/internal/usecase/commands"
)

// Selection requests cache the display fields the catalog screens
// already hold. Prices cached here are presentation only; the upstream
// recomputes the authoritative total at booking time.

type SelectCategoryRequest struct {
	CategoryID string `json:"categoryId" binding:"required"`
	Name       string `json:"name"`
}

type SelectRoomRequest struct {
	RoomID string `json:"roomId" binding:"required"`
	Name   string `json:"name"`
}

type SelectServiceRequest struct {
	ServiceID         string   `json:"serviceId" binding:"required"`
	Name              string   `json:"name"`
	PricePerSlotCents int64    `json:"pricePerSlotCents" binding:"min=0"`
	AvailableDays     []string `json:"availableDays"`
}

type SelectDateRequest struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
}

type ToggleSlotRequest struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

type SetPeopleRequest struct {
	NumberOfPeople int `json:"numberOfPeople" binding:"required,min=1,max=5"`
}

type SetPromoCodeRequest struct {
	PromoCode string `json:"promoCode"`
}

type NavigateRequest struct {
	Step string `json:"step" binding:"required"`
}

type SubmitBookingRequest struct {
	FirstName           string `json:"firstName" binding:"required"`
	LastName            string `json:"lastName" binding:"required"`
	Email               string `json:"email" binding:"required,email"`
	Phone               string `json:"phone" binding:"required"`
	SpecialRequirements string `json:"specialRequirements"`
	NumberOfPeople      int    `json:"numberOfPeople" binding:"required,min=1,max=5"`
	PromoCode           string `json:"promoCode"`
}

func (r SubmitBookingRequest) ToParams() commands.SubmitParams {
	return commands.SubmitParams{
		FirstName:           r.FirstName,
		LastName:            r.LastName,
		Email:               r.Email,
		Phone:               r.Phone,
		SpecialRequirements: r.SpecialRequirements,
		NumberOfPeople:      r.NumberOfPeople,
		PromoCode:           r.PromoCode,
	}
}
