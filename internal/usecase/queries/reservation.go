package queries

import (
	"context"
	"strconv"
	"strings"
	"time"

	"visit-booking/internal/domain/reservation"
	"visit-booking/internal/pkg/errs"
	"visit-booking/internal/usecase/shared"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID          int64
	PatientName string
	VisitDate   string
	Description string
	Attendee    string
	DTStart     string
	DTStamp     time.Time
	Method      string
	Status      string
	UID         string
}

type AvailabilityParams struct {
	StartDate string
	EndDate   string
	N         string
}

type AvailabilityView struct {
	AvailableDates []string
}

type ReservationQueries interface {
	LookupByAttendee(ctx context.Context, attendee string) ([]*ReservationView, error)
	CheckAvailability(ctx context.Context, params AvailabilityParams) (*AvailabilityView, error)
	ListAll(ctx context.Context) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store shared.ReservationStore
}

func NewReservationQueries(store shared.ReservationStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) LookupByAttendee(ctx context.Context, attendee string) ([]*ReservationView, error) {
	who, err := reservation.NewAttendee(attendee)
	if err != nil {
		return nil, err
	}
	rows, err := q.store.FindByAttendee(ctx, who.String())
	if err != nil {
		return nil, err
	}
	return toViews(rows), nil
}

func (q *reservationQueriesImpl) CheckAvailability(ctx context.Context, params AvailabilityParams) (*AvailabilityView, error) {
	window, n, err := parseAvailabilityParams(params)
	if err != nil {
		return nil, err
	}

	dates := []string{}
	if window.IsEmpty() {
		return &AvailabilityView{AvailableDates: dates}, nil
	}

	booked, err := q.store.FindBookedDates(ctx, window)
	if err != nil {
		return nil, err
	}
	for _, d := range reservation.FindAvailable(window, booked, n) {
		dates = append(dates, d.String())
	}
	return &AvailabilityView{AvailableDates: dates}, nil
}

func (q *reservationQueriesImpl) ListAll(ctx context.Context) ([]*ReservationView, error) {
	rows, err := q.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toViews(rows), nil
}

func parseAvailabilityParams(params AvailabilityParams) (reservation.DateRange, int, error) {
	var missing []string
	if strings.TrimSpace(params.StartDate) == "" {
		missing = append(missing, "startDate")
	}
	if strings.TrimSpace(params.EndDate) == "" {
		missing = append(missing, "endDate")
	}
	if strings.TrimSpace(params.N) == "" {
		missing = append(missing, "N")
	}
	if len(missing) > 0 {
		return reservation.DateRange{}, 0, errs.Validationf("missing query parameters: %s", strings.Join(missing, ", "))
	}

	start, err := reservation.ParseDate(params.StartDate)
	if err != nil {
		return reservation.DateRange{}, 0, errs.Wrap(err, "startDate")
	}
	end, err := reservation.ParseDate(params.EndDate)
	if err != nil {
		return reservation.DateRange{}, 0, errs.Wrap(err, "endDate")
	}
	n, err := strconv.Atoi(params.N)
	if err != nil || n <= 0 {
		return reservation.DateRange{}, 0, errs.Formatf("N must be a positive integer, got %q", params.N)
	}
	return reservation.NewDateRange(start, end), n, nil
}

func toViews(rows []*reservation.Reservation) []*ReservationView {
	views := make([]*ReservationView, 0, len(rows))
	for _, r := range rows {
		views = append(views, &ReservationView{
			ID:          r.ID(),
			PatientName: r.PatientName(),
			VisitDate:   r.VisitDate().String(),
			Description: r.Description(),
			Attendee:    r.Attendee().String(),
			DTStart:     r.DTStart(),
			DTStamp:     r.DTStamp(),
			Method:      r.Method().String(),
			Status:      r.Status().String(),
			UID:         r.UID(),
		})
	}
	return views
}
