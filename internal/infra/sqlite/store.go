package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"
	"time"

	"visit-booking/internal/domain/reservation"
	"visit-booking/internal/infra"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const timestampLayout = time.RFC3339Nano

const visitColumns = `id, patient_name, visit_date, description, attendee, dtstart, dtstamp, method, status, uid`

const (
	insertVisit = `INSERT INTO visits (patient_name, visit_date, description, attendee, dtstart, dtstamp, method, status, uid)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	deleteVisitByUID     = `DELETE FROM visits WHERE uid = ?`
	getVisitByUID        = `SELECT ` + visitColumns + ` FROM visits WHERE uid = ? AND (? = 0 OR status <> 'CANCELLED') LIMIT 1`
	listVisitsByAttendee = `SELECT ` + visitColumns + ` FROM visits WHERE attendee = ? ORDER BY id`
	listBookedDates      = `SELECT DISTINCT visit_date FROM visits WHERE visit_date BETWEEN ? AND ? AND status <> 'CANCELLED' ORDER BY visit_date`
	listVisits           = `SELECT ` + visitColumns + ` FROM visits ORDER BY id`
)

// ReservationStore keeps reservations in a SQLite database opened with
// db.OpenSQLite. Dates are stored as YYYY-MM-DD text so range scans compare
// lexically.
type ReservationStore struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewReservationStore(db *sql.DB, logger *slog.Logger) *ReservationStore {
	return &ReservationStore{db: db, logger: logger}
}

func (s *ReservationStore) Insert(ctx context.Context, res *reservation.Reservation) (int64, error) {
	result, err := s.db.ExecContext(ctx, insertVisit,
		res.PatientName(),
		res.VisitDate().String(),
		res.Description(),
		res.Attendee().String(),
		res.DTStart(),
		res.DTStamp().UTC().Format(timestampLayout),
		res.Method().String(),
		res.Status().String(),
		res.UID(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, infra.WrapRepoErr(s.logger, infra.KindDuplicateKey, "confirmation code already exists", err)
		}
		return 0, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to insert reservation", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to read inserted id", err)
	}
	return id, nil
}

func (s *ReservationStore) DeleteByUID(ctx context.Context, uid string) (int64, error) {
	result, err := s.db.ExecContext(ctx, deleteVisitByUID, uid)
	if err != nil {
		return 0, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to delete reservation", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to read affected rows", err)
	}
	return n, nil
}

func (s *ReservationStore) FindByUID(ctx context.Context, uid string, activeOnly bool) (*reservation.Reservation, error) {
	res, err := scanVisit(s.db.QueryRowContext(ctx, getVisitByUID, uid, activeOnly))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "reservation not found", err)
		}
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to find reservation", err)
	}
	return res, nil
}

func (s *ReservationStore) FindByAttendee(ctx context.Context, attendee string) ([]*reservation.Reservation, error) {
	out, err := s.queryVisits(ctx, listVisitsByAttendee, attendee)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to list reservations by attendee", err)
	}
	return out, nil
}

func (s *ReservationStore) FindBookedDates(ctx context.Context, window reservation.DateRange) (map[reservation.Date]struct{}, error) {
	rows, err := s.db.QueryContext(ctx, listBookedDates, window.Start().String(), window.End().String())
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to list booked dates", err)
	}
	defer rows.Close()

	booked := map[reservation.Date]struct{}{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to scan booked date", err)
		}
		d, err := reservation.ParseDate(raw)
		if err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "corrupt visit_date "+raw, err)
		}
		booked[d] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to iterate booked dates", err)
	}
	return booked, nil
}

func (s *ReservationStore) ListAll(ctx context.Context) ([]*reservation.Reservation, error) {
	out, err := s.queryVisits(ctx, listVisits)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to list reservations", err)
	}
	return out, nil
}

func (s *ReservationStore) Close() error {
	return s.db.Close()
}

func (s *ReservationStore) queryVisits(ctx context.Context, query string, args ...any) ([]*reservation.Reservation, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*reservation.Reservation{}
	for rows.Next() {
		res, err := scanVisit(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVisit(row rowScanner) (*reservation.Reservation, error) {
	var (
		id                                         int64
		patientName, visitDate, description        string
		attendee, dtstart, dtstamp, method, status string
		uid                                        string
	)
	if err := row.Scan(&id, &patientName, &visitDate, &description, &attendee, &dtstart, &dtstamp, &method, &status, &uid); err != nil {
		return nil, err
	}

	date, err := reservation.ParseDate(visitDate)
	if err != nil {
		return nil, err
	}
	stamp, err := time.Parse(timestampLayout, dtstamp)
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(
		id,
		patientName,
		date,
		description,
		attendee,
		dtstart,
		stamp.UTC(),
		reservation.Method(method),
		reservation.Status(status),
		uid,
	), nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	switch sqliteErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return true
	case sqlite3.SQLITE_CONSTRAINT:
		return strings.Contains(sqliteErr.Error(), "UNIQUE")
	default:
		return false
	}
}
