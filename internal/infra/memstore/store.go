package memstore

import (
	"context"
	"log/slog"
	"sync"

	"visit-booking/internal/domain/reservation"
	"visit-booking/internal/infra"
)

// ReservationStore is a process-local store guarded by a single mutex. It
// backs STORE_DRIVER=memory and usecase tests.
type ReservationStore struct {
	mu     sync.RWMutex
	nextID int64
	rows   []*reservation.Reservation // insertion order
	byUID  map[string]int             // index into rows
	logger *slog.Logger
}

func NewReservationStore(logger *slog.Logger) *ReservationStore {
	return &ReservationStore{
		byUID:  map[string]int{},
		logger: logger,
	}
}

func (s *ReservationStore) Insert(_ context.Context, res *reservation.Reservation) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byUID[res.UID()]; exists {
		return 0, infra.WrapRepoErr(s.logger, infra.KindDuplicateKey, "confirmation code already exists", nil)
	}

	s.nextID++
	stored := reservation.ReconstructReservation(
		s.nextID,
		res.PatientName(),
		res.VisitDate(),
		res.Description(),
		res.Attendee().String(),
		res.DTStart(),
		res.DTStamp(),
		res.Method(),
		res.Status(),
		res.UID(),
	)
	s.byUID[res.UID()] = len(s.rows)
	s.rows = append(s.rows, stored)
	return s.nextID, nil
}

func (s *ReservationStore) DeleteByUID(_ context.Context, uid string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.byUID[uid]
	if !ok {
		return 0, nil
	}
	s.rows = append(s.rows[:idx], s.rows[idx+1:]...)
	delete(s.byUID, uid)
	for i := idx; i < len(s.rows); i++ {
		s.byUID[s.rows[i].UID()] = i
	}
	return 1, nil
}

func (s *ReservationStore) FindByUID(_ context.Context, uid string, activeOnly bool) (*reservation.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byUID[uid]
	if !ok || (activeOnly && !s.rows[idx].IsActive()) {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "reservation not found", nil)
	}
	return s.rows[idx], nil
}

func (s *ReservationStore) FindByAttendee(_ context.Context, attendee string) ([]*reservation.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*reservation.Reservation{}
	for _, r := range s.rows {
		if r.Attendee().String() == attendee {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *ReservationStore) FindBookedDates(_ context.Context, window reservation.DateRange) (map[reservation.Date]struct{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	booked := map[reservation.Date]struct{}{}
	for _, r := range s.rows {
		if r.IsActive() && window.Contains(r.VisitDate()) {
			booked[r.VisitDate()] = struct{}{}
		}
	}
	return booked, nil
}

func (s *ReservationStore) ListAll(_ context.Context) ([]*reservation.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*reservation.Reservation, len(s.rows))
	copy(out, s.rows)
	return out, nil
}

func (s *ReservationStore) Close() error {
	return nil
}
