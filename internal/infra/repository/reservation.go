package repository

import (
	"context"
	"errors"
	"log/slog"

	"visit-booking/internal/domain/reservation"
	"visit-booking/internal/infra"
	"visit-booking/internal/infra/repository/converter"
	sqlc "visit-booking/internal/infra/sqlc/generated"
	"visit-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationQueries interface {
	CreateVisit(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateVisitParams) (int64, error)
	DeleteVisitByUID(ctx context.Context, db sqlc.DBTX, uid string) (int64, error)
	GetVisitByUID(ctx context.Context, db sqlc.DBTX, arg sqlc.GetVisitByUIDParams) (sqlc.Visit, error)
	ListVisitsByAttendee(ctx context.Context, db sqlc.DBTX, attendee string) ([]sqlc.Visit, error)
	ListBookedDates(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookedDatesParams) ([]pgtype.Date, error)
	ListVisits(ctx context.Context, db sqlc.DBTX) ([]sqlc.Visit, error)
}

// ReservationRepository is the PostgreSQL reservation store. Each method is a
// single statement on the pool, so every call is its own implicit transaction.
type ReservationRepository struct {
	queries ReservationQueries
	db      sqlc.DBTX
	logger  *slog.Logger
	retry   retryPolicy
	closer  func()
}

func NewReservationRepository(queries ReservationQueries, db sqlc.DBTX, logger *slog.Logger) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
		logger:  logger,
		retry:   defaultRetryPolicy,
	}
}

// WithCloser registers fn to run on Close, typically the pool cleanup.
func (r *ReservationRepository) WithCloser(fn func()) *ReservationRepository {
	r.closer = fn
	return r
}

func (r *ReservationRepository) Insert(ctx context.Context, res *reservation.Reservation) (int64, error) {
	params := converter.ReservationToInfra(res)

	id, err := withRetry(ctx, r.logger, r.retry, func() (int64, error) {
		return r.queries.CreateVisit(ctx, r.db, params)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return 0, infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, "confirmation code already exists", err)
		}
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to insert reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) DeleteByUID(ctx context.Context, uid string) (int64, error) {
	n, err := withRetry(ctx, r.logger, r.retry, func() (int64, error) {
		return r.queries.DeleteVisitByUID(ctx, r.db, uid)
	})
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete reservation", err)
	}
	return n, nil
}

func (r *ReservationRepository) FindByUID(ctx context.Context, uid string, activeOnly bool) (*reservation.Reservation, error) {
	row, err := r.queries.GetVisitByUID(ctx, r.db, sqlc.GetVisitByUIDParams{Uid: uid, ActiveOnly: activeOnly})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "reservation not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find reservation", err)
	}
	res, err := converter.VisitToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to convert reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) FindByAttendee(ctx context.Context, attendee string) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListVisitsByAttendee(ctx, r.db, attendee)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list reservations by attendee", err)
	}
	out, err := converter.VisitsToDomain(rows)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to convert reservations", err)
	}
	return out, nil
}

func (r *ReservationRepository) FindBookedDates(ctx context.Context, window reservation.DateRange) (map[reservation.Date]struct{}, error) {
	rows, err := r.queries.ListBookedDates(ctx, r.db, sqlc.ListBookedDatesParams{
		StartDate: pgconv.DateToPgtype(window.Start().Time()),
		EndDate:   pgconv.DateToPgtype(window.End().Time()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list booked dates", err)
	}

	booked := make(map[reservation.Date]struct{}, len(rows))
	for _, pd := range rows {
		t, err := pgconv.DateFromPgtype(pd)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to convert booked date", err)
		}
		booked[reservation.DateOf(t)] = struct{}{}
	}
	return booked, nil
}

func (r *ReservationRepository) ListAll(ctx context.Context) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListVisits(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list reservations", err)
	}
	out, err := converter.VisitsToDomain(rows)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to convert reservations", err)
	}
	return out, nil
}

func (r *ReservationRepository) Close() error {
	if r.closer != nil {
		r.closer()
	}
	return nil
}
