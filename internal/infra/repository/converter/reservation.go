package converter

import (
	"visit-booking/internal/domain/reservation"
	sqlc "visit-booking/internal/infra/sqlc/generated"
	"visit-booking/internal/pkg/pgconv"
)

func ReservationToInfra(res *reservation.Reservation) sqlc.CreateVisitParams {
	return sqlc.CreateVisitParams{
		PatientName: res.PatientName(),
		VisitDate:   pgconv.DateToPgtype(res.VisitDate().Time()),
		Description: res.Description(),
		Attendee:    res.Attendee().String(),
		Dtstart:     res.DTStart(),
		Dtstamp:     pgconv.TimeToPgtype(res.DTStamp()),
		Method:      res.Method().String(),
		Status:      res.Status().String(),
		Uid:         res.UID(),
	}
}

func VisitToDomain(v sqlc.Visit) (*reservation.Reservation, error) {
	visitDate, err := pgconv.DateFromPgtype(v.VisitDate)
	if err != nil {
		return nil, err
	}
	dtstamp, err := pgconv.TimeFromPgtype(v.Dtstamp)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(
		v.ID,
		v.PatientName,
		reservation.DateOf(visitDate),
		v.Description,
		v.Attendee,
		v.Dtstart,
		dtstamp,
		reservation.Method(v.Method),
		reservation.Status(v.Status),
		v.Uid,
	), nil
}

func VisitsToDomain(rows []sqlc.Visit) ([]*reservation.Reservation, error) {
	out := make([]*reservation.Reservation, 0, len(rows))
	for _, v := range rows {
		res, err := VisitToDomain(v)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}
