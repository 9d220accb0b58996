package wizard

// PriceCalculator derives the display total from the draft. The computed
// value is presentation only; the upstream backend recomputes the
// authoritative price from the submitted slot list.
type PriceCalculator interface {
	TotalCents(d *Draft) int64
}

// DefaultPriceCalculator charges per slot, per person.
type DefaultPriceCalculator struct{}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{}
}

func (pc *DefaultPriceCalculator) TotalCents(d *Draft) int64 {
	if d.Service() == nil {
		return 0
	}
	return d.Service().PricePerSlotCents * int64(d.People()) * int64(len(d.SelectedSlots()))
}
