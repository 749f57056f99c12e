package request

// Fields are not marked binding:"required"; presence is validated by the
// usecase so every missing field is reported together.
type AddReservationRequest struct {
	PatientName string `json:"patientName" example:"Jane Doe"`
	VisitDate   string `json:"visitDate" example:"2024-01-02"`
	Description string `json:"description" example:"Annual checkup"`
	Attendee    string `json:"attendee" example:"jane@example.com"`
	DTStart     string `json:"dtstart" example:"2024-01-02T09:00:00Z"`
}

type CancelReservationRequest struct {
	ConfirmationCode string `json:"confirmationCode" example:"uid-1704067200000-3f2a9c1b7d4e6a08"`
}

type LookupReservationsQuery struct {
	Attendee string `form:"attendee"`
}

type CheckAvailabilityQuery struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	N         string `form:"N"`
}
