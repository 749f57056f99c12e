package commands

import (
	"context"
	"log/slog"
	"strings"

	"visit-booking/internal/domain/reservation"
	"visit-booking/internal/infra"
	"visit-booking/internal/pkg/clock"
	"visit-booking/internal/pkg/errs"
	"visit-booking/internal/usecase/shared"
)

// maxCodeAttempts bounds regeneration when a confirmation code hits the uid index.
const maxCodeAttempts = 3

var (
	ErrReservationNotFound = errs.New("reservation not found or already canceled")
	ErrCodeExhausted       = errs.New("could not allocate a unique confirmation code")
)

type AddReservationParams struct {
	PatientName string
	VisitDate   string
	Description string
	Attendee    string
	DTStart     string
}

type AddReservationResult struct {
	ID               int64
	ConfirmationCode string
}

type ReservationCommands interface {
	AddReservation(ctx context.Context, params AddReservationParams) (*AddReservationResult, error)
	CancelReservation(ctx context.Context, confirmationCode string) error
}

type reservationUseCaseImpl struct {
	store     shared.ReservationStore
	codes     reservation.CodeGenerator
	publisher shared.EventPublisher
	clock     clock.Clock
	logger    *slog.Logger
}

func NewReservationUseCase(
	store shared.ReservationStore,
	codes reservation.CodeGenerator,
	publisher shared.EventPublisher,
	clk clock.Clock,
	logger *slog.Logger,
) ReservationCommands {
	if publisher == nil {
		publisher = shared.NopPublisher{}
	}
	return &reservationUseCaseImpl{
		store:     store,
		codes:     codes,
		publisher: publisher,
		clock:     clk,
		logger:    logger,
	}
}

func (uc *reservationUseCaseImpl) AddReservation(ctx context.Context, params AddReservationParams) (*AddReservationResult, error) {
	services := &reservation.Services{Clock: uc.clock, Codes: uc.codes}
	res, err := reservation.NewReservation(services, reservation.Request(params))
	if err != nil {
		return nil, err
	}

	var id int64
	for attempt := 1; ; attempt++ {
		id, err = uc.store.Insert(ctx, res)
		if err == nil {
			break
		}
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, err
		}
		if attempt == maxCodeAttempts {
			uc.logger.Error("confirmation code collisions exhausted", "attempts", attempt, "error", err)
			return nil, errs.Mark(errs.Wrapf(ErrCodeExhausted, "after %d attempts", attempt), errs.ErrStorage)
		}
		uc.logger.Warn("confirmation code collision, regenerating",
			"attempt", attempt,
			"uid", res.UID())
		res.RegenerateUID(uc.codes)
	}

	uc.logger.Info("reservation added",
		"id", id,
		"uid", res.UID(),
		"visit_date", res.VisitDate().String())

	uc.publisher.Publish(shared.ReservationEvent{
		Type:       shared.EventReservationCreated,
		ID:         id,
		UID:        res.UID(),
		Attendee:   res.Attendee().String(),
		VisitDate:  res.VisitDate().String(),
		OccurredAt: res.DTStamp(),
	})

	return &AddReservationResult{ID: id, ConfirmationCode: res.UID()}, nil
}

func (uc *reservationUseCaseImpl) CancelReservation(ctx context.Context, confirmationCode string) error {
	if strings.TrimSpace(confirmationCode) == "" {
		return errs.Validation("missing confirmation code")
	}

	existing, err := uc.store.FindByUID(ctx, confirmationCode, true)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(ErrReservationNotFound, errs.ErrNotFound)
		}
		return err
	}

	// A concurrent cancel may have removed the row since the lookup; the
	// delete count decides which caller wins.
	removed, err := uc.store.DeleteByUID(ctx, confirmationCode)
	if err != nil {
		return err
	}
	if removed == 0 {
		return errs.Mark(ErrReservationNotFound, errs.ErrNotFound)
	}

	uc.logger.Info("reservation canceled", "id", existing.ID(), "uid", confirmationCode)

	uc.publisher.Publish(shared.ReservationEvent{
		Type:       shared.EventReservationCancelled,
		ID:         existing.ID(),
		UID:        confirmationCode,
		Attendee:   existing.Attendee().String(),
		VisitDate:  existing.VisitDate().String(),
		OccurredAt: uc.clock.Now().UTC(),
	})
	return nil
}
