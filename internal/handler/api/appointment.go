package api

import (
	"errors"
	"net/http"
	"time"

	"beautypro/internal/domain/appointment"
	reqdto "beautypro/internal/handler/dto/request"
	resdto "beautypro/internal/handler/dto/response"
	"beautypro/internal/handler/httperr"
	"beautypro/internal/handler/middleware"
	"beautypro/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errMissingIdentity = errors.New("missing user identity in context")

type AppointmentHandler struct {
	bookingUseCase      usecase.BookingUseCase
	availabilityUseCase usecase.AvailabilityUseCase
}

func NewAppointmentHandler(
	bookingUseCase usecase.BookingUseCase,
	availabilityUseCase usecase.AvailabilityUseCase,
) *AppointmentHandler {
	return &AppointmentHandler{
		bookingUseCase:      bookingUseCase,
		availabilityUseCase: availabilityUseCase,
	}
}

// @Summary Get availability
// @Description Free slots for one master, service and date
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param master_id query string true "Master ID"
// @Param service_id query string true "Service ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /availability [get]
func (h *AppointmentHandler) GetAvailability(c *gin.Context) {
	masterID, err := uuid.Parse(c.Query("master_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid master id", nil)
		return
	}

	serviceID, err := uuid.Parse(c.Query("service_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service id", nil)
		return
	}

	date, err := time.ParseInLocation("2006-01-02", c.Query("date"), time.Local)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	availability, err := h.availabilityUseCase.GetAvailability(c.Request.Context(), usecase.AvailabilityQuery{
		MasterID:  masterID,
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMasterNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Master not found", nil)
		case errors.Is(err, usecase.ErrServiceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
		case errors.Is(err, usecase.ErrMasterInactive):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Master is not active", nil)
		case errors.Is(err, usecase.ErrServiceNotPerformed):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Master does not perform this service", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load availability", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityRM(availability))
}

// @Summary Create appointment
// @Description Book a slot; conflicting bookings are rejected atomically
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAppointmentRequest true "Appointment request"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /appointments [post]
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	clientID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	created, err := h.bookingUseCase.CreateBooking(c.Request.Context(), clientID, req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMasterNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Master not found", nil)
		case errors.Is(err, usecase.ErrServiceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
		case errors.Is(err, usecase.ErrMasterInactive):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Master is not active", nil)
		case errors.Is(err, usecase.ErrServiceNotPerformed):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Master does not perform this service", nil)
		case errors.Is(err, usecase.ErrOutsideWorkingHours):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Slot is outside working hours", nil)
		case errors.Is(err, usecase.ErrSlotNotOnGrid):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Slot start is not aligned to the booking grid", nil)
		case errors.Is(err, usecase.ErrSlotInPast):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Slot start is in the past", nil)
		case errors.Is(err, usecase.ErrBookingConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Time slot already booked", nil)
		case errors.Is(err, usecase.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		case errors.Is(err, appointment.ErrInvalidDuration):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid service duration", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create appointment", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAppointmentRM(created))
}

// @Summary List my appointments
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (scheduled, completed, canceled)"
// @Param upcoming query bool false "Only scheduled appointments in the future"
// @Success 200 {array} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Router /appointments [get]
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	clientID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}

	var status *appointment.Status
	if raw := c.Query("status"); raw != "" {
		s, err := appointment.NewStatus(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status filter", nil)
			return
		}
		status = &s
	}

	appointments, err := h.bookingUseCase.ListClientAppointments(c.Request.Context(), clientID, usecase.ListAppointmentsQuery{
		Status:       status,
		UpcomingOnly: c.Query("upcoming") == "true",
	})
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list appointments", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentRMs(appointments))
}

// @Summary Cancel appointment
// @Description Cancel own scheduled appointment; frees the slot
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	clientID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid appointment id", nil)
		return
	}

	canceled, err := h.bookingUseCase.CancelBooking(c.Request.Context(), clientID, id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found", nil)
		case errors.Is(err, usecase.ErrNotAppointmentOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Appointment belongs to another client", nil)
		case errors.Is(err, usecase.ErrAppointmentFinalized):
			httperr.AbortWithError(c, http.StatusConflict, err, "Appointment is already canceled or completed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to cancel appointment", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentRM(canceled))
}

// @Summary Complete appointment
// @Description Operator-side transition after the visit happened
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /appointments/{id}/complete [post]
func (h *AppointmentHandler) CompleteAppointment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid appointment id", nil)
		return
	}

	completed, err := h.bookingUseCase.CompleteAppointment(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found", nil)
		case errors.Is(err, usecase.ErrAppointmentFinalized):
			httperr.AbortWithError(c, http.StatusConflict, err, "Appointment is already canceled or completed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to complete appointment", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentRM(completed))
}
