package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Seishinryoku00/Medical-Management-App/internal/domain"
)

// @Summary Register a patient
// @Description Creates a new patient account.
// @Tags Auth
// @Accept json
// @Produce json
// @Param input body domain.CreatePatientDTO true "Patient data"
// @Success 201 {object} map[string]interface{} "ID of the created patient"
// @Failure 400 {object} errorResponseBody "Validation error"
// @Failure 409 {object} errorResponseBody "Email already registered"
// @Router /auth/patient/register [post]
func (h *Handler) registerPatient(c *gin.Context) {
	var req domain.CreatePatientDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	id, err := h.services.Patients.Register(c.Request.Context(), req)
	if err != nil {
		h.logger.Warn("patient registration failed", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Patient login
// @Tags Auth
// @Accept json
// @Produce json
// @Param input body domain.LoginRequest true "Credentials"
// @Success 200 {object} domain.TokenResponse "Access token"
// @Failure 400 {object} errorResponseBody "Validation error"
// @Failure 401 {object} errorResponseBody "Invalid credentials or deactivated account"
// @Router /auth/patient/login [post]
func (h *Handler) loginPatient(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	token, err := h.services.Auth.LoginPatient(c.Request.Context(), req)
	if err != nil {
		h.logger.Warn("patient login failed", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, 200, token)
}

// @Summary Doctor login
// @Tags Auth
// @Accept json
// @Produce json
// @Param input body domain.LoginRequest true "Credentials"
// @Success 200 {object} domain.TokenResponse "Access token"
// @Failure 400 {object} errorResponseBody "Validation error"
// @Failure 401 {object} errorResponseBody "Invalid credentials or deactivated account"
// @Router /auth/doctor/login [post]
func (h *Handler) loginDoctor(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	token, err := h.services.Auth.LoginDoctor(c.Request.Context(), req)
	if err != nil {
		h.logger.Warn("doctor login failed", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, 200, token)
}
