package rest

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @Summary Current patient profile
// @Description Returns the profile of the authenticated patient.
// @Tags Patients
// @Produce json
// @Success 200 {object} domain.Patient "Patient"
// @Failure 401 {object} errorResponseBody "Not authorized"
// @Failure 404 {object} errorResponseBody "Patient not found"
// @Security ApiKeyAuth
// @Router /patients/me [get]
func (h *Handler) getCurrentPatient(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	patient, err := h.services.Patients.GetByID(c.Request.Context(), actor.ID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, 200, patient)
}

// @Summary Get a patient
// @Description Returns one patient record. Staff only.
// @Tags Patients
// @Produce json
// @Param id path int true "Patient ID"
// @Success 200 {object} domain.Patient "Patient"
// @Failure 400 {object} errorResponseBody "Invalid ID"
// @Failure 401 {object} errorResponseBody "Not authorized"
// @Failure 403 {object} errorResponseBody "Access denied"
// @Failure 404 {object} errorResponseBody "Patient not found"
// @Security ApiKeyAuth
// @Router /patients/{id} [get]
func (h *Handler) getPatientByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "invalid id format")
		return
	}

	patient, err := h.services.Patients.GetByID(c.Request.Context(), id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, 200, patient)
}

// @Summary List patients
// @Description Returns the active patients ordered by name. Staff only.
// @Tags Patients
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {array} domain.Patient "Patients"
// @Failure 401 {object} errorResponseBody "Not authorized"
// @Failure 403 {object} errorResponseBody "Access denied"
// @Security ApiKeyAuth
// @Router /patients [get]
func (h *Handler) getPatients(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	patients, err := h.services.Patients.List(c.Request.Context(), pageSize, (page-1)*pageSize)
	if err != nil {
		h.logger.Error("listing patients failed", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, 200, patients)
}
