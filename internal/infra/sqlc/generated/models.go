package sqlc

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Visit struct {
	ID          int64              `json:"id"`
	PatientName string             `json:"patient_name"`
	VisitDate   pgtype.Date        `json:"visit_date"`
	Description string             `json:"description"`
	Attendee    string             `json:"attendee"`
	Dtstart     string             `json:"dtstart"`
	Dtstamp     pgtype.Timestamptz `json:"dtstamp"`
	Method      string             `json:"method"`
	Status      string             `json:"status"`
	Uid         string             `json:"uid"`
}
