//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"visit-booking/internal/domain/reservation"
	"visit-booking/internal/infra"
	"visit-booking/internal/infra/memstore"
	"visit-booking/internal/pkg/clock"
	"visit-booking/internal/pkg/errs"
	"visit-booking/internal/usecase/commands"
	"visit-booking/internal/usecase/shared"
	"visit-booking/tests/common/builder"
	"visit-booking/tests/common/testutil"
	reservationmock "visit-booking/tests/mock/reservation"
	sharedmock "visit-booking/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationCommandsTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockStore     *sharedmock.MockReservationStore
	mockPublisher *sharedmock.MockEventPublisher
	mockCodes     *reservationmock.MockCodeGenerator
	clock         *clock.MockClock
	uc            commands.ReservationCommands
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = sharedmock.NewMockReservationStore(s.mockCtrl)
	s.mockPublisher = sharedmock.NewMockEventPublisher(s.mockCtrl)
	s.mockCodes = reservationmock.NewMockCodeGenerator(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.uc = commands.NewReservationUseCase(s.mockStore, s.mockCodes, s.mockPublisher, s.clock, testutil.DiscardLogger())
}

func (s *ReservationCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func duplicateKeyErr() error {
	return infra.WrapRepoErr(testutil.DiscardLogger(), infra.KindDuplicateKey, "confirmation code already exists", nil)
}

func notFoundErr() error {
	return infra.WrapRepoErr(testutil.DiscardLogger(), infra.KindNotFound, "reservation not found", nil)
}

func (s *ReservationCommandsTestSuite) TestAddReservation() {
	ctx := context.Background()

	s.Run("success", func() {
		params := builder.NewReservationBuilder().BuildParams()
		s.mockCodes.EXPECT().Generate().Return("uid-1")
		s.mockStore.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, res *reservation.Reservation) (int64, error) {
				s.Equal("uid-1", res.UID())
				s.Equal(reservation.StatusConfirmed, res.Status())
				s.Equal(params.PatientName, res.PatientName())
				return 7, nil
			})
		s.mockPublisher.EXPECT().Publish(gomock.Any()).Do(func(ev shared.ReservationEvent) {
			s.Equal(shared.EventReservationCreated, ev.Type)
			s.Equal(int64(7), ev.ID)
			s.Equal("uid-1", ev.UID)
			s.Equal("2024-01-02", ev.VisitDate)
		})

		result, err := s.uc.AddReservation(ctx, params)
		s.Require().NoError(err)
		s.Equal(int64(7), result.ID)
		s.Equal("uid-1", result.ConfirmationCode)
	})

	s.Run("missing field never reaches the store", func() {
		params := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.PatientName = ""
		}).BuildParams()

		result, err := s.uc.AddReservation(ctx, params)
		s.Require().Error(err)
		s.Nil(result)
		s.True(errs.IsValidation(err))
		s.False(errs.IsFormat(err))
	})

	s.Run("malformed attendee", func() {
		params := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.Attendee = "not-an-email"
		}).BuildParams()

		_, err := s.uc.AddReservation(ctx, params)
		s.Require().Error(err)
		s.True(errs.IsFormat(err))
	})

	s.Run("regenerates code on collision", func() {
		params := builder.NewReservationBuilder().BuildParams()
		gomock.InOrder(
			s.mockCodes.EXPECT().Generate().Return("uid-dup"),
			s.mockStore.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(0), duplicateKeyErr()),
			s.mockCodes.EXPECT().Generate().Return("uid-fresh"),
			s.mockStore.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(3), nil),
		)
		s.mockPublisher.EXPECT().Publish(gomock.Any())

		result, err := s.uc.AddReservation(ctx, params)
		s.Require().NoError(err)
		s.Equal("uid-fresh", result.ConfirmationCode)
	})

	s.Run("gives up after repeated collisions", func() {
		params := builder.NewReservationBuilder().BuildParams()
		s.mockCodes.EXPECT().Generate().Return("uid-dup").Times(3)
		s.mockStore.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(0), duplicateKeyErr()).Times(3)

		_, err := s.uc.AddReservation(ctx, params)
		s.Require().Error(err)
		s.True(errs.IsStorage(err))
		s.ErrorIs(err, commands.ErrCodeExhausted)
	})

	s.Run("storage failure", func() {
		params := builder.NewReservationBuilder().BuildParams()
		s.mockCodes.EXPECT().Generate().Return("uid-1")
		s.mockStore.EXPECT().Insert(gomock.Any(), gomock.Any()).
			Return(int64(0), infra.WrapRepoErr(testutil.DiscardLogger(), infra.KindDBFailure, "insert", errs.New("disk full")))

		_, err := s.uc.AddReservation(ctx, params)
		s.Require().Error(err)
		s.True(errs.IsStorage(err))
		s.False(errs.IsValidation(err))
	})
}

func (s *ReservationCommandsTestSuite) TestCancelReservation() {
	ctx := context.Background()

	s.Run("success", func() {
		existing := builder.NewReservationBuilder().BuildDomain()
		s.mockStore.EXPECT().FindByUID(gomock.Any(), existing.UID(), true).Return(existing, nil)
		s.mockStore.EXPECT().DeleteByUID(gomock.Any(), existing.UID()).Return(int64(1), nil)
		s.mockPublisher.EXPECT().Publish(gomock.Any()).Do(func(ev shared.ReservationEvent) {
			s.Equal(shared.EventReservationCancelled, ev.Type)
			s.Equal(existing.ID(), ev.ID)
			s.Equal(s.clock.Now(), ev.OccurredAt)
		})

		s.NoError(s.uc.CancelReservation(ctx, existing.UID()))
	})

	s.Run("empty code", func() {
		err := s.uc.CancelReservation(ctx, "  ")
		s.Require().Error(err)
		s.True(errs.IsValidation(err))
	})

	s.Run("unknown code", func() {
		s.mockStore.EXPECT().FindByUID(gomock.Any(), "uid-missing", true).Return(nil, notFoundErr())

		err := s.uc.CancelReservation(ctx, "uid-missing")
		s.Require().Error(err)
		s.True(errs.IsNotFound(err))
		s.ErrorIs(err, commands.ErrReservationNotFound)
	})

	s.Run("lost the race to a concurrent cancel", func() {
		existing := builder.NewReservationBuilder().BuildDomain()
		s.mockStore.EXPECT().FindByUID(gomock.Any(), existing.UID(), true).Return(existing, nil)
		s.mockStore.EXPECT().DeleteByUID(gomock.Any(), existing.UID()).Return(int64(0), nil)

		err := s.uc.CancelReservation(ctx, existing.UID())
		s.Require().Error(err)
		s.True(errs.IsNotFound(err))
	})
}

// Exercises the usecase against the in-memory store end to end.
func TestReservationCommandsWithMemStore(t *testing.T) {
	ctx := context.Background()
	logger := testutil.DiscardLogger()
	clk := clock.NewMockClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	store := memstore.NewReservationStore(logger)
	uc := commands.NewReservationUseCase(store, reservation.NewTimestampCodeGenerator(clk), nil, clk, logger)

	first, err := uc.AddReservation(ctx, builder.NewReservationBuilder().BuildParams())
	require.NoError(t, err)
	second, err := uc.AddReservation(ctx, builder.NewReservationBuilder().BuildParams())
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.NotEqual(t, first.ConfirmationCode, second.ConfirmationCode)

	require.NoError(t, uc.CancelReservation(ctx, first.ConfirmationCode))
	err = uc.CancelReservation(ctx, first.ConfirmationCode)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))

	all, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, second.ConfirmationCode, all[0].UID())
}
