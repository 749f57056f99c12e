//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"visit-booking/internal/domain/reservation"
	"visit-booking/internal/infra"
	sqlc "visit-booking/internal/infra/sqlc/generated"
	"visit-booking/internal/pkg/errs"
	"visit-booking/tests/common/builder"
	"visit-booking/tests/common/testutil"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationQueries struct {
	mock.Mock
}

func (m *MockReservationQueries) CreateVisit(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateVisitParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationQueries) DeleteVisitByUID(ctx context.Context, db sqlc.DBTX, uid string) (int64, error) {
	args := m.Called(ctx, db, uid)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationQueries) GetVisitByUID(ctx context.Context, db sqlc.DBTX, arg sqlc.GetVisitByUIDParams) (sqlc.Visit, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Visit), args.Error(1)
}

func (m *MockReservationQueries) ListVisitsByAttendee(ctx context.Context, db sqlc.DBTX, attendee string) ([]sqlc.Visit, error) {
	args := m.Called(ctx, db, attendee)
	return args.Get(0).([]sqlc.Visit), args.Error(1)
}

func (m *MockReservationQueries) ListBookedDates(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookedDatesParams) ([]pgtype.Date, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]pgtype.Date), args.Error(1)
}

func (m *MockReservationQueries) ListVisits(ctx context.Context, db sqlc.DBTX) ([]sqlc.Visit, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.Visit), args.Error(1)
}

// sqlc.DBTX implementation for MockReservationQueries
func (m *MockReservationQueries) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockReservationQueries) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockReservationQueries) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

func newTestRepository(q *MockReservationQueries) *ReservationRepository {
	repo := NewReservationRepository(q, q, testutil.DiscardLogger())
	repo.retry = retryPolicy{maxRetries: 2, base: time.Millisecond}
	return repo
}

func pgErr(code string) error {
	return &pgconn.PgError{Code: code, Message: "simulated"}
}

func TestInsert(t *testing.T) {
	res := builder.NewReservationBuilder().BuildDomain()

	tests := []struct {
		name      string
		errs      []error
		wantID    int64
		wantKind  infra.RepositoryErrorKind
		wantCalls int
	}{
		{name: "success", errs: []error{nil}, wantID: 9, wantCalls: 1},
		{name: "unique violation", errs: []error{pgErr(pgErrCodeUniqueViolation)}, wantKind: infra.KindDuplicateKey, wantCalls: 1},
		{name: "serialization failure retried", errs: []error{pgErr(pgErrCodeSerializationFailure), nil}, wantID: 9, wantCalls: 2},
		{
			name:      "deadlock retries exhausted",
			errs:      []error{pgErr(pgErrCodeDeadlockDetected), pgErr(pgErrCodeDeadlockDetected), pgErr(pgErrCodeDeadlockDetected)},
			wantKind:  infra.KindDBFailure,
			wantCalls: 3,
		},
		{name: "other failure", errs: []error{assert.AnError}, wantKind: infra.KindDBFailure, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockReservationQueries)
			for _, e := range tt.errs {
				id := int64(0)
				if e == nil {
					id = tt.wantID
				}
				mockQueries.On("CreateVisit", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateVisitParams) bool {
					return p.Uid == res.UID() && p.Status == "CONFIRMED" && p.VisitDate.Valid
				})).Return(id, e).Once()
			}

			id, err := newTestRepository(mockQueries).Insert(context.Background(), res)
			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Equal(t, tt.wantKind == infra.KindDBFailure, errs.IsStorage(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
			mockQueries.AssertNumberOfCalls(t, "CreateVisit", tt.wantCalls)
		})
	}
}

func TestFindByUID(t *testing.T) {
	row := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.ID = 5 }).BuildInfra()

	t.Run("found", func(t *testing.T) {
		mockQueries := new(MockReservationQueries)
		mockQueries.On("GetVisitByUID", mock.Anything, mock.Anything, sqlc.GetVisitByUIDParams{Uid: row.Uid, ActiveOnly: true}).Return(row, nil)

		got, err := newTestRepository(mockQueries).FindByUID(context.Background(), row.Uid, true)
		require.NoError(t, err)
		assert.Equal(t, int64(5), got.ID())
		assert.Equal(t, reservation.NewDate(2024, time.January, 2), got.VisitDate())
		assert.Equal(t, reservation.StatusConfirmed, got.Status())
		mockQueries.AssertExpectations(t)
	})

	t.Run("no rows", func(t *testing.T) {
		mockQueries := new(MockReservationQueries)
		mockQueries.On("GetVisitByUID", mock.Anything, mock.Anything, mock.Anything).Return(sqlc.Visit{}, pgx.ErrNoRows)

		_, err := newTestRepository(mockQueries).FindByUID(context.Background(), "uid-missing", false)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.False(t, errs.IsStorage(err))
	})

	t.Run("null date is a storage failure", func(t *testing.T) {
		broken := row
		broken.VisitDate = pgtype.Date{}
		mockQueries := new(MockReservationQueries)
		mockQueries.On("GetVisitByUID", mock.Anything, mock.Anything, mock.Anything).Return(broken, nil)

		_, err := newTestRepository(mockQueries).FindByUID(context.Background(), row.Uid, false)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestDeleteByUID(t *testing.T) {
	mockQueries := new(MockReservationQueries)
	mockQueries.On("DeleteVisitByUID", mock.Anything, mock.Anything, "uid-a").Return(int64(1), nil).Once()
	mockQueries.On("DeleteVisitByUID", mock.Anything, mock.Anything, "uid-b").Return(int64(0), nil).Once()
	mockQueries.On("DeleteVisitByUID", mock.Anything, mock.Anything, "uid-c").Return(int64(0), assert.AnError).Once()
	repo := newTestRepository(mockQueries)

	n, err := repo.DeleteByUID(context.Background(), "uid-a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.DeleteByUID(context.Background(), "uid-b")
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = repo.DeleteByUID(context.Background(), "uid-c")
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	mockQueries.AssertExpectations(t)
}

func TestFindBookedDates(t *testing.T) {
	start := reservation.NewDate(2024, time.January, 1)
	end := reservation.NewDate(2024, time.January, 10)

	mockQueries := new(MockReservationQueries)
	mockQueries.On("ListBookedDates", mock.Anything, mock.Anything, sqlc.ListBookedDatesParams{
		StartDate: pgtype.Date{Time: start.Time(), Valid: true},
		EndDate:   pgtype.Date{Time: end.Time(), Valid: true},
	}).Return([]pgtype.Date{
		{Time: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Valid: true},
		{Time: time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), Valid: true},
	}, nil)

	booked, err := newTestRepository(mockQueries).FindBookedDates(context.Background(), reservation.NewDateRange(start, end))
	require.NoError(t, err)
	assert.Equal(t, map[reservation.Date]struct{}{
		reservation.NewDate(2024, time.January, 2): {},
		reservation.NewDate(2024, time.January, 4): {},
	}, booked)
	mockQueries.AssertExpectations(t)
}

func TestListQueries(t *testing.T) {
	rows := []sqlc.Visit{
		builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.ID = 1; b.UID = "uid-a" }).BuildInfra(),
		builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.ID = 2; b.UID = "uid-b" }).BuildInfra(),
	}

	t.Run("by attendee", func(t *testing.T) {
		mockQueries := new(MockReservationQueries)
		mockQueries.On("ListVisitsByAttendee", mock.Anything, mock.Anything, "jane@example.com").Return(rows, nil)

		got, err := newTestRepository(mockQueries).FindByAttendee(context.Background(), "jane@example.com")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "uid-b", got[1].UID())
	})

	t.Run("all", func(t *testing.T) {
		mockQueries := new(MockReservationQueries)
		mockQueries.On("ListVisits", mock.Anything, mock.Anything).Return([]sqlc.Visit{}, assert.AnError)

		_, err := newTestRepository(mockQueries).ListAll(context.Background())
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.True(t, errs.IsStorage(err))
	})
}

func TestClose(t *testing.T) {
	closed := false
	repo := newTestRepository(new(MockReservationQueries)).WithCloser(func() { closed = true })
	require.NoError(t, repo.Close())
	assert.True(t, closed)
}
