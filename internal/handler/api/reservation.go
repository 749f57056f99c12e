package api

import (
	"net/http"

	reqdto "visit-booking/internal/handler/dto/request"
	resdto "visit-booking/internal/handler/dto/response"
	"visit-booking/internal/handler/httperr"
	"visit-booking/internal/pkg/errs"
	"visit-booking/internal/usecase/commands"
	"visit-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Add reservation
// @Description Book a visit and receive a confirmation code
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.AddReservationRequest true "Reservation request"
// @Success 201 {object} resdto.AddReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 415 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /add-reservation [post]
func (h *ReservationHandler) AddReservation(c *gin.Context) {
	var req reqdto.AddReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Bad Request: Invalid JSON", nil)
		return
	}

	result, err := h.cmds.AddReservation(c.Request.Context(), commands.AddReservationParams{
		PatientName: req.PatientName,
		VisitDate:   req.VisitDate,
		Description: req.Description,
		Attendee:    req.Attendee,
		DTStart:     req.DTStart,
	})
	if err != nil {
		abortWithUsecaseError(c, err, "Bad Request: Missing required reservation information")
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAddResult(result))
}

// @Summary Cancel reservation
// @Description Cancel an active reservation by confirmation code
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CancelReservationRequest true "Cancel request"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /cancel-reservation [post]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	var req reqdto.CancelReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Bad Request: Invalid JSON format", nil)
		return
	}

	if err := h.cmds.CancelReservation(c.Request.Context(), req.ConfirmationCode); err != nil {
		abortWithUsecaseError(c, err, "Bad Request: Missing confirmation code")
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Reservation canceled successfully."})
}

// @Summary Lookup reservations
// @Description List every reservation requested by an attendee
// @Tags reservations
// @Produce json
// @Param attendee query string true "Attendee email"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /lookup-reservations [get]
func (h *ReservationHandler) LookupReservations(c *gin.Context) {
	var query reqdto.LookupReservationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Bad Request: Missing attendee identifier", nil)
		return
	}

	views, err := h.q.LookupByAttendee(c.Request.Context(), query.Attendee)
	if err != nil {
		msg := "Bad Request: Missing attendee identifier"
		if errs.IsFormat(err) {
			msg = "Bad Request: Malformed email address"
		}
		abortWithUsecaseError(c, err, msg)
		return
	}

	response, err := resdto.FromReservationViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal Server Error", nil)
		return
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Check availability
// @Description Up to N free weekdays between startDate and endDate
// @Tags reservations
// @Produce json
// @Param startDate query string true "First date (YYYY-MM-DD)"
// @Param endDate query string true "Last date (YYYY-MM-DD)"
// @Param N query int true "Maximum number of dates"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /check-availability [get]
func (h *ReservationHandler) CheckAvailability(c *gin.Context) {
	var query reqdto.CheckAvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Bad Request: Missing or invalid query parameters", nil)
		return
	}

	view, err := h.q.CheckAvailability(c.Request.Context(), queries.AvailabilityParams{
		StartDate: query.StartDate,
		EndDate:   query.EndDate,
		N:         query.N,
	})
	if err != nil {
		abortWithUsecaseError(c, err, "Bad Request: Missing or invalid query parameters")
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// abortWithUsecaseError renders badRequestMsg for validation failures, with the
// usecase message as detail.
func abortWithUsecaseError(c *gin.Context, err error, badRequestMsg string) {
	status := httperr.StatusFor(err)
	switch status {
	case http.StatusBadRequest:
		httperr.AbortWithError(c, status, err, badRequestMsg, err.Error())
	case http.StatusNotFound:
		httperr.AbortWithError(c, status, err, "Reservation not found or already canceled", nil)
	default:
		httperr.AbortWithError(c, status, err, "Internal Server Error", nil)
	}
}
