//go:build unit || e2e

package builder

import (
	"time"

	"visit-booking/internal/domain/reservation"
	reqdto "visit-booking/internal/handler/dto/request"
	sqlc "visit-booking/internal/infra/sqlc/generated"
	"visit-booking/internal/usecase/commands"
	"visit-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationBuilder struct {
	ID          int64
	PatientName string
	VisitDate   string
	Description string
	Attendee    string
	DTStart     string
	DTStamp     time.Time
	Status      reservation.Status
	UID         string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:          1,
		PatientName: "Jane Doe",
		VisitDate:   "2024-01-02",
		Description: "Annual checkup",
		Attendee:    "jane@example.com",
		DTStart:     "2024-01-02T09:00:00Z",
		DTStamp:     time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		Status:      reservation.StatusConfirmed,
		UID:         "uid-1704110400000-0123456789abcdef",
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ReservationBuilder) BuildRequest() reservation.Request {
	return reservation.Request{
		PatientName: b.PatientName,
		VisitDate:   b.VisitDate,
		Description: b.Description,
		Attendee:    b.Attendee,
		DTStart:     b.DTStart,
	}
}

func (b *ReservationBuilder) BuildParams() commands.AddReservationParams {
	return commands.AddReservationParams(b.BuildRequest())
}

func (b *ReservationBuilder) BuildRequestDTO() reqdto.AddReservationRequest {
	return reqdto.AddReservationRequest{
		PatientName: b.PatientName,
		VisitDate:   b.VisitDate,
		Description: b.Description,
		Attendee:    b.Attendee,
		DTStart:     b.DTStart,
	}
}

// BuildDomain reconstructs a persisted reservation; VisitDate must be valid.
func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	d, err := reservation.ParseDate(b.VisitDate)
	if err != nil {
		panic(err)
	}
	return reservation.ReconstructReservation(
		b.ID,
		b.PatientName,
		d,
		b.Description,
		b.Attendee,
		b.DTStart,
		b.DTStamp,
		reservation.MethodRequest,
		b.Status,
		b.UID,
	)
}

func (b *ReservationBuilder) BuildInfra() sqlc.Visit {
	d, err := reservation.ParseDate(b.VisitDate)
	if err != nil {
		panic(err)
	}
	return sqlc.Visit{
		ID:          b.ID,
		PatientName: b.PatientName,
		VisitDate:   pgtype.Date{Time: d.Time(), Valid: true},
		Description: b.Description,
		Attendee:    b.Attendee,
		Dtstart:     b.DTStart,
		Dtstamp:     pgtype.Timestamptz{Time: b.DTStamp, Valid: true},
		Method:      reservation.MethodRequest.String(),
		Status:      b.Status.String(),
		Uid:         b.UID,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:          b.ID,
		PatientName: b.PatientName,
		VisitDate:   b.VisitDate,
		Description: b.Description,
		Attendee:    b.Attendee,
		DTStart:     b.DTStart,
		DTStamp:     b.DTStamp,
		Method:      reservation.MethodRequest.String(),
		Status:      b.Status.String(),
		UID:         b.UID,
	}
}
