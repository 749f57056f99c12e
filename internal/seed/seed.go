package seed

import (
	"context"
	"math/rand/v2"
	"time"

	"visit-booking/internal/usecase/commands"
)

var (
	patients     = []string{"Alice", "Bob", "Charlie", "Diana", "Evan", "Fiona", "George"}
	descriptions = []string{"General Checkup", "Dental Checkup", "Eye Examination", "ENT Checkup", "Orthopedic Consultation"}
	attendees    = []string{"alice@example.com", "bob@example.com", "charlie@example.com", "diana@example.com", "evan@example.com", "fiona@example.com", "george@example.com"}
)

// Window bounds the random visit dates of sample reservations.
type Window struct {
	From time.Time
	To   time.Time
}

var DefaultWindow = Window{
	From: time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC),
	To:   time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC),
}

// SampleRequests builds n random reservation requests. dtstart equals the
// visit date, at midnight UTC. An inverted window yields nothing.
func SampleRequests(rng *rand.Rand, window Window, n int) []commands.AddReservationParams {
	days := int(window.To.Sub(window.From).Hours()/24) + 1
	if days <= 0 || n <= 0 {
		return []commands.AddReservationParams{}
	}
	out := make([]commands.AddReservationParams, 0, n)
	for range n {
		visit := window.From.AddDate(0, 0, rng.IntN(days))
		out = append(out, commands.AddReservationParams{
			PatientName: patients[rng.IntN(len(patients))],
			VisitDate:   visit.Format(time.DateOnly),
			Description: descriptions[rng.IntN(len(descriptions))],
			Attendee:    attendees[rng.IntN(len(attendees))],
			DTStart:     visit.Format(time.RFC3339),
		})
	}
	return out
}

// Populate adds every request through cmds and returns the created results.
// It stops at the first failure.
func Populate(ctx context.Context, cmds commands.ReservationCommands, reqs []commands.AddReservationParams) ([]*commands.AddReservationResult, error) {
	results := make([]*commands.AddReservationResult, 0, len(reqs))
	for _, req := range reqs {
		res, err := cmds.AddReservation(ctx, req)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}
