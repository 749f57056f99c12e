//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type VisitRow struct {
	PatientName string
	VisitDate   string
	Description string
	Attendee    string
	DTStart     string
	Status      string
	UID         string
}

// inserts a visit directly, bypassing the application layer
func InsertVisit(t *testing.T, db DBLike, row VisitRow) int64 {
	t.Helper()

	if row.Status == "" {
		row.Status = "CONFIRMED"
	}
	if row.DTStart == "" {
		row.DTStart = row.VisitDate + "T09:00:00Z"
	}

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO visits (patient_name, visit_date, description, attendee, dtstart, dtstamp, method, status, uid)
		VALUES ($1, $2::date, $3, $4, $5, now(), 'REQUEST', $6, $7)
		RETURNING id`,
		row.PatientName, row.VisitDate, row.Description, row.Attendee, row.DTStart, row.Status, row.UID,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func CountVisits(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM visits").Scan(&n)
	require.NoError(t, err)
	return n
}

// truncates the visits table and restarts its id sequence
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE visits RESTART IDENTITY")
	return err
}
