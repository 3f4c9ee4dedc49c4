package rest

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Seishinryoku00/Medical-Management-App/internal/domain"
)

// @Summary Add a doctor
// @Description Registers a new doctor with their weekly availability pattern. Staff only.
// @Tags Doctors
// @Accept json
// @Produce json
// @Param input body domain.CreateDoctorDTO true "Doctor data"
// @Success 201 {object} map[string]interface{} "ID of the created doctor"
// @Failure 400 {object} errorResponseBody "Validation error"
// @Failure 401 {object} errorResponseBody "Not authorized"
// @Failure 403 {object} errorResponseBody "Access denied"
// @Failure 409 {object} errorResponseBody "Email already registered"
// @Security ApiKeyAuth
// @Router /doctors [post]
func (h *Handler) createDoctor(c *gin.Context) {
	var req domain.CreateDoctorDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	id, err := h.services.Doctors.Create(c.Request.Context(), req)
	if err != nil {
		h.logger.Warn("doctor creation failed", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary List doctors
// @Description Returns the active doctors ordered by name.
// @Tags Doctors
// @Produce json
// @Param specialization query string false "Filter by specialization"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {array} domain.Doctor "Doctors"
// @Router /doctors [get]
func (h *Handler) getDoctors(c *gin.Context) {
	if specialization := c.Query("specialization"); specialization != "" {
		doctors, err := h.services.Doctors.ListBySpecialization(c.Request.Context(), specialization)
		if err != nil {
			h.logger.Error("listing doctors failed", zap.Error(err))
			serviceErrorResponse(c, err)
			return
		}
		successResponse(c, 200, doctors)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	doctors, err := h.services.Doctors.List(c.Request.Context(), pageSize, (page-1)*pageSize)
	if err != nil {
		h.logger.Error("listing doctors failed", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, 200, doctors)
}

// @Summary Get a doctor
// @Tags Doctors
// @Produce json
// @Param id path int true "Doctor ID"
// @Success 200 {object} domain.Doctor "Doctor"
// @Failure 400 {object} errorResponseBody "Invalid ID"
// @Failure 404 {object} errorResponseBody "Doctor not found"
// @Router /doctors/{id} [get]
func (h *Handler) getDoctorByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "invalid id format")
		return
	}

	doctor, err := h.services.Doctors.GetByID(c.Request.Context(), id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, 200, doctor)
}

// @Summary Available slots of a doctor
// @Description Returns the free 30-minute slots of a doctor over the requested window, in ascending date and time order.
// @Tags Doctors
// @Produce json
// @Param id path int true "Doctor ID"
// @Param from query string false "First date of the window (YYYY-MM-DD), defaults to today"
// @Param days query int false "Window length in days" default(7)
// @Success 200 {array} domain.Slot "Free slots"
// @Failure 400 {object} errorResponseBody "Invalid parameters"
// @Failure 404 {object} errorResponseBody "Doctor not found"
// @Router /doctors/{id}/slots [get]
func (h *Handler) getDoctorSlots(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "invalid id format")
		return
	}

	from, days, err := parseSlotWindow(c)
	if err != nil {
		badRequestResponse(c, err.Error())
		return
	}

	slots, err := h.services.Availability.DoctorSlots(c.Request.Context(), id, from, days)
	if err != nil {
		h.logger.Error("resolving slots failed", zap.Error(err), zap.Int64("doctor_id", id))
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, 200, slots)
}

// @Summary Available slots by specialization
// @Description Returns the free slots of every active doctor with the given specialization, merged and ordered by date and time.
// @Tags Doctors
// @Produce json
// @Param specialization path string true "Specialization"
// @Param from query string false "First date of the window (YYYY-MM-DD), defaults to today"
// @Param days query int false "Window length in days" default(7)
// @Success 200 {array} domain.Slot "Free slots"
// @Failure 400 {object} errorResponseBody "Invalid parameters"
// @Router /doctors/specialization/{specialization}/slots [get]
func (h *Handler) getSpecializationSlots(c *gin.Context) {
	specialization := c.Param("specialization")

	from, days, err := parseSlotWindow(c)
	if err != nil {
		badRequestResponse(c, err.Error())
		return
	}

	slots, err := h.services.Availability.SpecializationSlots(c.Request.Context(), specialization, from, days)
	if err != nil {
		h.logger.Error("resolving slots failed", zap.Error(err), zap.String("specialization", specialization))
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, 200, slots)
}

func parseSlotWindow(c *gin.Context) (time.Time, int, error) {
	from := time.Now()
	if fromParam := c.Query("from"); fromParam != "" {
		parsed, err := time.Parse("2006-01-02", fromParam)
		if err != nil {
			return time.Time{}, 0, err
		}
		from = parsed
	}

	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	return from, days, nil
}
