package reservation

import (
	"strings"
	"time"

	"visit-booking/internal/pkg/clock"
	"visit-booking/internal/pkg/errs"
)

// Request carries the caller-supplied fields of a new reservation.
type Request struct {
	PatientName string
	VisitDate   string
	Description string
	Attendee    string
	DTStart     string
}

type Services struct {
	Clock clock.Clock
	Codes CodeGenerator
}

type Reservation struct {
	id          int64
	patientName string
	visitDate   Date
	description string
	attendee    Attendee
	dtstart     string
	dtstamp     time.Time
	method      Method
	status      Status
	uid         string
}

// NewReservation validates req and builds a CONFIRMED reservation with a fresh
// confirmation code. The id stays zero until the store assigns one.
func NewReservation(services *Services, req Request) (*Reservation, error) {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"patientName", req.PatientName},
		{"visitDate", req.VisitDate},
		{"description", req.Description},
		{"attendee", req.Attendee},
		{"dtstart", req.DTStart},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, errs.Validationf("missing required reservation information: %s", strings.Join(missing, ", "))
	}

	visitDate, err := ParseDate(req.VisitDate)
	if err != nil {
		return nil, errs.Wrap(err, "visitDate")
	}
	attendee, err := NewAttendee(req.Attendee)
	if err != nil {
		return nil, errs.Wrap(err, "attendee")
	}

	return &Reservation{
		patientName: req.PatientName,
		visitDate:   visitDate,
		description: req.Description,
		attendee:    attendee,
		dtstart:     req.DTStart,
		dtstamp:     services.Clock.Now().UTC().Truncate(time.Microsecond),
		method:      MethodRequest,
		status:      StatusConfirmed,
		uid:         services.Codes.Generate(),
	}, nil
}

// RegenerateUID replaces the confirmation code of a not yet persisted reservation.
func (r *Reservation) RegenerateUID(codes CodeGenerator) {
	r.uid = codes.Generate()
}

func ReconstructReservation(
	id int64,
	patientName string,
	visitDate Date,
	description string,
	attendee string,
	dtstart string,
	dtstamp time.Time,
	method Method,
	status Status,
	uid string,
) *Reservation {
	return &Reservation{
		id:          id,
		patientName: patientName,
		visitDate:   visitDate,
		description: description,
		attendee:    Attendee{value: attendee},
		dtstart:     dtstart,
		dtstamp:     dtstamp,
		method:      method,
		status:      status,
		uid:         uid,
	}
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusConfirmed
}

func (r *Reservation) ID() int64           { return r.id }
func (r *Reservation) PatientName() string { return r.patientName }
func (r *Reservation) VisitDate() Date     { return r.visitDate }
func (r *Reservation) Description() string { return r.description }
func (r *Reservation) Attendee() Attendee  { return r.attendee }
func (r *Reservation) DTStart() string     { return r.dtstart }
func (r *Reservation) DTStamp() time.Time  { return r.dtstamp }
func (r *Reservation) Method() Method      { return r.method }
func (r *Reservation) Status() Status      { return r.status }
func (r *Reservation) UID() string         { return r.uid }
