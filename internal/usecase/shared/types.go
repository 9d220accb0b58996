package shared

// BookingSubmission is the payload posted to the upstream booking
// endpoint. Date uses the upstream's MM-DD-YYYY convention. Slots carry
// identity only; availability is the upstream's own state.
type BookingSubmission struct {
	User           BookingUser     `json:"user"`
	Date           string          `json:"date"`
	TimeSlots      []SubmittedSlot `json:"timeSlots"`
	Service        string          `json:"service"`
	Room           string          `json:"room"`
	PromoCode      string          `json:"promoCode"`
	NumberOfPeople int             `json:"numberOfPeople"`
}

type SubmittedSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type BookingUser struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// BookingCreated is the upstream's acknowledgement of a durable booking
// record.
type BookingCreated struct {
	ID string
}

// PaymentIntent is the redirect target for collecting a guest payment,
// created only after the booking record exists.
type PaymentIntent struct {
	URL string
}
