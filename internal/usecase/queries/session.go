package queries

import (
	"booking-wizard/internal/domain/wizard"
	"booking-wizard/internal/infra"
	"booking-wizard/internal/pkg/errs"
	"booking-wizard/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var ErrSessionNotFound = errs.New("session not found")

type SessionStore interface {
	Find(id uuid.UUID) (*shared.Session, error)
}

type SessionQueries interface {
	Get(id uuid.UUID) (*SessionView, error)
	Slots(id uuid.UUID) (*AvailabilityView, error)
	Quote(id uuid.UUID) (*QuoteView, error)
}

type sessionQueriesImpl struct {
	store        SessionStore
	availability AvailabilityQueries
	calc         wizard.PriceCalculator
}

func NewSessionQueries(store SessionStore, availability AvailabilityQueries, calc wizard.PriceCalculator) SessionQueries {
	return &sessionQueriesImpl{
		store:        store,
		availability: availability,
		calc:         calc,
	}
}

func (q *sessionQueriesImpl) find(id uuid.UUID) (*shared.Session, error) {
	s, err := q.store.Find(id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, errs.Wrap(err, "failed to find session")
	}
	return s, nil
}

func (q *sessionQueriesImpl) Get(id uuid.UUID) (*SessionView, error) {
	s, err := q.find(id)
	if err != nil {
		return nil, err
	}

	view := &SessionView{ID: s.ID()}
	s.With(func(d *wizard.Draft) {
		view.Step = d.Step().String()
		if c := d.Category(); c != nil {
			view.Category = &SelectionView{ID: c.ID, Name: c.Name}
		}
		if r := d.Room(); r != nil {
			view.Room = &SelectionView{ID: r.ID, Name: r.Name}
		}
		if svc := d.Service(); svc != nil {
			view.Service = &ServiceView{
				ID:                svc.ID,
				Name:              svc.Name,
				PricePerSlotCents: svc.PricePerSlotCents,
				AvailableDays:     svc.AvailableDays,
			}
		}
		if date := d.SelectedDate(); date != nil {
			formatted := date.Format("2006-01-02")
			view.SelectedDate = &formatted
		}
		view.SelectedSlots = slotViews(d.SelectedSlots())
		view.NumberOfPeople = d.People()
		view.PromoCode = d.PromoCode()
		view.Quote = quoteView(d, q.calc)
	})
	view.Availability = availabilityView(q.availability.Snapshot(s))
	view.SubmitPhase = string(s.SubmitPhase())
	return view, nil
}

func (q *sessionQueriesImpl) Slots(id uuid.UUID) (*AvailabilityView, error) {
	s, err := q.find(id)
	if err != nil {
		return nil, err
	}
	view := availabilityView(q.availability.Snapshot(s))
	return &view, nil
}

func (q *sessionQueriesImpl) Quote(id uuid.UUID) (*QuoteView, error) {
	s, err := q.find(id)
	if err != nil {
		return nil, err
	}
	var view QuoteView
	s.With(func(d *wizard.Draft) {
		view = quoteView(d, q.calc)
	})
	return &view, nil
}

func quoteView(d *wizard.Draft, calc wizard.PriceCalculator) QuoteView {
	view := QuoteView{
		SlotCount:      len(d.SelectedSlots()),
		NumberOfPeople: d.People(),
		TotalCents:     calc.TotalCents(d),
	}
	if svc := d.Service(); svc != nil {
		view.PricePerSlotCents = svc.PricePerSlotCents
	}
	view.TotalDisplay = wizard.FormatCents(view.TotalCents)
	return view
}

func availabilityView(state shared.AvailabilityState) AvailabilityView {
	return AvailabilityView{
		Status: string(state.Status),
		Date:   state.Key.Date,
		Slots:  slotViews(state.Slots),
		Reason: state.Reason,
	}
}

func slotViews(slots []wizard.TimeSlot) []SlotView {
	views := make([]SlotView, 0, len(slots))
	for _, slot := range slots {
		var view SlotView
		_ = copier.Copy(&view, &slot)
		view.Label = slot.Label()
		views = append(views, view)
	}
	return views
}
