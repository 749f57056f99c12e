package pgconv

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

var (
	ErrNullDate      = errors.New("unexpected NULL date")
	ErrInfiniteDate  = errors.New("unexpected infinite date")
	ErrNullTimestamp = errors.New("unexpected NULL timestamp")
)

// DateToPgtype keeps only the calendar components of t.
func DateToPgtype(t time.Time) pgtype.Date {
	y, m, d := t.Date()
	return pgtype.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}
}

func DateFromPgtype(pd pgtype.Date) (time.Time, error) {
	if !pd.Valid {
		return time.Time{}, ErrNullDate
	}
	if pd.InfinityModifier != pgtype.Finite {
		return time.Time{}, ErrInfiniteDate
	}
	return pd.Time, nil
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func TimeFromPgtype(pt pgtype.Timestamptz) (time.Time, error) {
	if !pt.Valid {
		return time.Time{}, ErrNullTimestamp
	}
	return pt.Time.UTC(), nil
}
