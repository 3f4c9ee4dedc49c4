package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Seishinryoku00/Medical-Management-App/internal/domain"
)

// @Summary Join the waiting list
// @Description Creates a waiting list entry for a visit that could not be booked. Priority defaults to medium.
// @Tags WaitingList
// @Accept json
// @Produce json
// @Param input body domain.CreateWaitingListDTO true "Waiting list request"
// @Success 201 {object} domain.WaitingListEntry "Created entry"
// @Failure 400 {object} errorResponseBody "Validation error"
// @Failure 401 {object} errorResponseBody "Not authorized"
// @Failure 403 {object} errorResponseBody "Request for another patient"
// @Failure 404 {object} errorResponseBody "Patient or doctor not found"
// @Security ApiKeyAuth
// @Router /waiting-list [post]
func (h *Handler) addWaitingListEntry(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	var req domain.CreateWaitingListDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	entry, err := h.services.WaitingList.Add(c.Request.Context(), actor, req)
	if err != nil {
		h.logger.Warn("waiting list entry creation failed", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	createdResponse(c, entry)
}

// @Summary Ranked waiting list
// @Description Returns the open waiting list entries ordered by priority (urgent first) and submission time. Staff only.
// @Tags WaitingList
// @Produce json
// @Success 200 {array} domain.WaitingListEntry "Entries"
// @Failure 401 {object} errorResponseBody "Not authorized"
// @Failure 403 {object} errorResponseBody "Access denied"
// @Security ApiKeyAuth
// @Router /waiting-list [get]
func (h *Handler) getRankedWaitingList(c *gin.Context) {
	entries, err := h.services.WaitingList.Ranked(c.Request.Context())
	if err != nil {
		h.logger.Error("listing waiting list failed", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, 200, entries)
}
