package rest

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Seishinryoku00/Medical-Management-App/internal/domain"
)

// @Summary Book an appointment
// @Description Creates a new appointment in scheduled status. Fails when the doctor already has an overlapping appointment or the requested room is occupied or inactive.
// @Tags Appointments
// @Accept json
// @Produce json
// @Param input body domain.CreateAppointmentDTO true "Appointment data"
// @Success 201 {object} domain.Appointment "Created appointment"
// @Failure 400 {object} errorResponseBody "Validation error"
// @Failure 401 {object} errorResponseBody "Not authorized"
// @Failure 403 {object} errorResponseBody "Booking for another patient"
// @Failure 404 {object} errorResponseBody "Doctor, patient or room not found"
// @Failure 409 {object} errorResponseBody "Slot already taken or room inactive"
// @Security ApiKeyAuth
// @Router /appointments [post]
func (h *Handler) createAppointment(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	var req domain.CreateAppointmentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	appointment, err := h.services.Appointments.Create(c.Request.Context(), actor, req)
	if err != nil {
		h.logger.Warn("appointment creation failed", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	createdResponse(c, appointment)
}

// @Summary Get an appointment
// @Description Returns one appointment. Patients see only their own appointments, doctors only their own schedule.
// @Tags Appointments
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} domain.Appointment "Appointment"
// @Failure 400 {object} errorResponseBody "Invalid ID"
// @Failure 401 {object} errorResponseBody "Not authorized"
// @Failure 403 {object} errorResponseBody "Appointment belongs to another patient"
// @Failure 404 {object} errorResponseBody "Appointment not found"
// @Security ApiKeyAuth
// @Router /appointments/{id} [get]
func (h *Handler) getAppointmentByID(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "invalid id format")
		return
	}

	appointment, err := h.services.Appointments.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, 200, appointment)
}

// @Summary Modify an appointment
// @Description Applies a partial update (date, start time, room, note). Requires at least 24 hours of notice; cancelled appointments cannot be modified.
// @Tags Appointments
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Param input body domain.UpdateAppointmentDTO true "Fields to update"
// @Success 200 {object} domain.Appointment "Updated appointment"
// @Failure 400 {object} errorResponseBody "Validation error"
// @Failure 401 {object} errorResponseBody "Not authorized"
// @Failure 403 {object} errorResponseBody "Appointment belongs to another patient"
// @Failure 404 {object} errorResponseBody "Appointment not found"
// @Failure 409 {object} errorResponseBody "Appointment cancelled"
// @Failure 422 {object} errorResponseBody "Less than 24 hours of notice"
// @Security ApiKeyAuth
// @Router /appointments/{id} [put]
func (h *Handler) updateAppointment(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "invalid id format")
		return
	}

	var req domain.UpdateAppointmentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	appointment, err := h.services.Appointments.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		h.logger.Warn("appointment update failed", zap.Error(err), zap.Int64("id", id))
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, 200, appointment)
}

type cancelAppointmentRequest struct {
	Reason *string `json:"reason"`
}

// @Summary Cancel an appointment
// @Description Moves an appointment into cancelled status and records the optional reason. Requires at least 24 hours of notice.
// @Tags Appointments
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Param input body cancelAppointmentRequest false "Cancellation reason"
// @Success 200 {object} messageResponseType "Appointment cancelled"
// @Failure 400 {object} errorResponseBody "Invalid ID"
// @Failure 401 {object} errorResponseBody "Not authorized"
// @Failure 403 {object} errorResponseBody "Appointment belongs to another patient"
// @Failure 404 {object} errorResponseBody "Appointment not found"
// @Failure 409 {object} errorResponseBody "Already cancelled"
// @Failure 422 {object} errorResponseBody "Less than 24 hours of notice"
// @Security ApiKeyAuth
// @Router /appointments/{id} [delete]
func (h *Handler) cancelAppointment(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "invalid id format")
		return
	}

	var req cancelAppointmentRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequestResponse(c, "invalid request body")
			return
		}
	}

	if err := h.services.Appointments.Cancel(c.Request.Context(), actor, id, req.Reason); err != nil {
		h.logger.Warn("appointment cancellation failed", zap.Error(err), zap.Int64("id", id))
		serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, 200, "appointment cancelled")
}

// @Summary List appointments
// @Description Returns the caller's appointments: a patient gets their own bookings, a doctor their own schedule. Optional status and date range filters.
// @Tags Appointments
// @Produce json
// @Param status query string false "Status filter" Enums(scheduled, completed, cancelled, pending)
// @Param date_from query string false "Start of the date range (YYYY-MM-DD)"
// @Param date_to query string false "End of the date range (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} paginatedResponse "Appointments"
// @Failure 400 {object} errorResponseBody "Invalid filter"
// @Failure 401 {object} errorResponseBody "Not authorized"
// @Security ApiKeyAuth
// @Router /appointments [get]
func (h *Handler) getAppointments(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	filter, page, pageSize, err := parseAppointmentFilter(c)
	if err != nil {
		badRequestResponse(c, err.Error())
		return
	}

	appointments, err := h.services.Appointments.List(c.Request.Context(), actor, filter)
	if err != nil {
		h.logger.Error("listing appointments failed", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	paginatedSuccessResponse(c, appointments, len(appointments)+filter.Offset, page, pageSize)
}

func parseAppointmentFilter(c *gin.Context) (domain.AppointmentFilter, int, int, error) {
	var filter domain.AppointmentFilter

	if statusParam := c.Query("status"); statusParam != "" {
		status := domain.AppointmentStatus(statusParam)
		filter.Status = &status
	}

	if fromParam := c.Query("date_from"); fromParam != "" {
		from, err := time.Parse("2006-01-02", fromParam)
		if err != nil {
			return filter, 0, 0, err
		}
		filter.DateFrom = &from
	}

	if toParam := c.Query("date_to"); toParam != "" {
		to, err := time.Parse("2006-01-02", toParam)
		if err != nil {
			return filter, 0, 0, err
		}
		filter.DateTo = &to
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	filter.Limit = pageSize
	filter.Offset = (page - 1) * pageSize

	return filter, page, pageSize, nil
}
