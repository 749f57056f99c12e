package response

import (
	"time"

	"visit-booking/internal/usecase/commands"
	"visit-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID          int64     `json:"id"`
	PatientName string    `json:"patientName"`
	VisitDate   string    `json:"visitDate"`
	Description string    `json:"description"`
	Attendee    string    `json:"attendee"`
	DTStart     string    `json:"dtstart"`
	DTStamp     time.Time `json:"dtstamp"`
	Method      string    `json:"method"`
	Status      string    `json:"status"`
	UID         string    `json:"uid"`
}

type AddReservationResponse struct {
	Message          string `json:"message"`
	ID               int64  `json:"id"`
	ConfirmationCode string `json:"confirmationCode"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type AvailabilityResponse struct {
	AvailableDates []string `json:"availableDates"`
}

func FromReservationViews(views []*queries.ReservationView) ([]ReservationResponse, error) {
	out := make([]ReservationResponse, 0, len(views))
	if err := copier.Copy(&out, views); err != nil {
		return nil, err
	}
	return out, nil
}

func FromAddResult(result *commands.AddReservationResult) AddReservationResponse {
	return AddReservationResponse{
		Message:          "Reservation added successfully",
		ID:               result.ID,
		ConfirmationCode: result.ConfirmationCode,
	}
}

func FromAvailabilityView(view *queries.AvailabilityView) AvailabilityResponse {
	dates := view.AvailableDates
	if dates == nil {
		dates = []string{}
	}
	return AvailabilityResponse{AvailableDates: dates}
}
