package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createVisit = `-- name: CreateVisit :one
INSERT INTO visits (patient_name, visit_date, description, attendee, dtstart, dtstamp, method, status, uid)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id
`

type CreateVisitParams struct {
	PatientName string             `json:"patient_name"`
	VisitDate   pgtype.Date        `json:"visit_date"`
	Description string             `json:"description"`
	Attendee    string             `json:"attendee"`
	Dtstart     string             `json:"dtstart"`
	Dtstamp     pgtype.Timestamptz `json:"dtstamp"`
	Method      string             `json:"method"`
	Status      string             `json:"status"`
	Uid         string             `json:"uid"`
}

func (q *Queries) CreateVisit(ctx context.Context, db DBTX, arg CreateVisitParams) (int64, error) {
	row := db.QueryRow(ctx, createVisit,
		arg.PatientName,
		arg.VisitDate,
		arg.Description,
		arg.Attendee,
		arg.Dtstart,
		arg.Dtstamp,
		arg.Method,
		arg.Status,
		arg.Uid,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const deleteVisitByUID = `-- name: DeleteVisitByUID :execrows
DELETE FROM visits
WHERE uid = $1
`

func (q *Queries) DeleteVisitByUID(ctx context.Context, db DBTX, uid string) (int64, error) {
	result, err := db.Exec(ctx, deleteVisitByUID, uid)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getVisitByUID = `-- name: GetVisitByUID :one
SELECT id, patient_name, visit_date, description, attendee, dtstart, dtstamp, method, status, uid
FROM visits
WHERE uid = $1
  AND (NOT $2::boolean OR status <> 'CANCELLED')
LIMIT 1
`

type GetVisitByUIDParams struct {
	Uid        string `json:"uid"`
	ActiveOnly bool   `json:"active_only"`
}

func (q *Queries) GetVisitByUID(ctx context.Context, db DBTX, arg GetVisitByUIDParams) (Visit, error) {
	row := db.QueryRow(ctx, getVisitByUID, arg.Uid, arg.ActiveOnly)
	var i Visit
	err := row.Scan(
		&i.ID,
		&i.PatientName,
		&i.VisitDate,
		&i.Description,
		&i.Attendee,
		&i.Dtstart,
		&i.Dtstamp,
		&i.Method,
		&i.Status,
		&i.Uid,
	)
	return i, err
}

const listBookedDates = `-- name: ListBookedDates :many
SELECT DISTINCT visit_date
FROM visits
WHERE visit_date BETWEEN $1 AND $2
  AND status <> 'CANCELLED'
ORDER BY visit_date
`

type ListBookedDatesParams struct {
	StartDate pgtype.Date `json:"start_date"`
	EndDate   pgtype.Date `json:"end_date"`
}

func (q *Queries) ListBookedDates(ctx context.Context, db DBTX, arg ListBookedDatesParams) ([]pgtype.Date, error) {
	rows, err := db.Query(ctx, listBookedDates, arg.StartDate, arg.EndDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []pgtype.Date{}
	for rows.Next() {
		var visit_date pgtype.Date
		if err := rows.Scan(&visit_date); err != nil {
			return nil, err
		}
		items = append(items, visit_date)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listVisits = `-- name: ListVisits :many
SELECT id, patient_name, visit_date, description, attendee, dtstart, dtstamp, method, status, uid
FROM visits
ORDER BY id
`

func (q *Queries) ListVisits(ctx context.Context, db DBTX) ([]Visit, error) {
	rows, err := db.Query(ctx, listVisits)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Visit{}
	for rows.Next() {
		var i Visit
		if err := rows.Scan(
			&i.ID,
			&i.PatientName,
			&i.VisitDate,
			&i.Description,
			&i.Attendee,
			&i.Dtstart,
			&i.Dtstamp,
			&i.Method,
			&i.Status,
			&i.Uid,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listVisitsByAttendee = `-- name: ListVisitsByAttendee :many
SELECT id, patient_name, visit_date, description, attendee, dtstart, dtstamp, method, status, uid
FROM visits
WHERE attendee = $1
ORDER BY id
`

func (q *Queries) ListVisitsByAttendee(ctx context.Context, db DBTX, attendee string) ([]Visit, error) {
	rows, err := db.Query(ctx, listVisitsByAttendee, attendee)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Visit{}
	for rows.Next() {
		var i Visit
		if err := rows.Scan(
			&i.ID,
			&i.PatientName,
			&i.VisitDate,
			&i.Description,
			&i.Attendee,
			&i.Dtstart,
			&i.Dtstamp,
			&i.Method,
			&i.Status,
			&i.Uid,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
