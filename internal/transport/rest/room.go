package rest

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Seishinryoku00/Medical-Management-App/internal/domain"
)

// @Summary Add a room
// @Description Registers a new visit room. Staff only.
// @Tags Rooms
// @Accept json
// @Produce json
// @Param input body domain.CreateRoomDTO true "Room data"
// @Success 201 {object} map[string]interface{} "ID of the created room"
// @Failure 400 {object} errorResponseBody "Validation error"
// @Failure 401 {object} errorResponseBody "Not authorized"
// @Failure 403 {object} errorResponseBody "Access denied"
// @Security ApiKeyAuth
// @Router /rooms [post]
func (h *Handler) createRoom(c *gin.Context) {
	var req domain.CreateRoomDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	id, err := h.services.Rooms.Create(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("room creation failed", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary List rooms
// @Tags Rooms
// @Produce json
// @Param active query bool false "Filter by active flag"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {array} domain.Room "Rooms"
// @Router /rooms [get]
func (h *Handler) getRooms(c *gin.Context) {
	var active *bool
	if activeParam := c.Query("active"); activeParam != "" {
		value, err := strconv.ParseBool(activeParam)
		if err != nil {
			badRequestResponse(c, "invalid active filter")
			return
		}
		active = &value
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	rooms, err := h.services.Rooms.List(c.Request.Context(), active, pageSize, (page-1)*pageSize)
	if err != nil {
		h.logger.Error("listing rooms failed", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, 200, rooms)
}

// @Summary Get a room
// @Tags Rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} domain.Room "Room"
// @Failure 400 {object} errorResponseBody "Invalid ID"
// @Failure 404 {object} errorResponseBody "Room not found"
// @Router /rooms/{id} [get]
func (h *Handler) getRoomByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "invalid id format")
		return
	}

	room, err := h.services.Rooms.GetByID(c.Request.Context(), id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, 200, room)
}

// @Summary Room occupancy for a date
// @Description Returns the room's bookings for one date and whether the room can be offered at all. An inactive room is reported as unavailable.
// @Tags Rooms
// @Produce json
// @Param id path int true "Room ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} domain.RoomDayAvailability "Occupancy"
// @Failure 400 {object} errorResponseBody "Invalid parameters"
// @Failure 404 {object} errorResponseBody "Room not found"
// @Router /rooms/{id}/availability [get]
func (h *Handler) getRoomDayAvailability(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "invalid id format")
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		badRequestResponse(c, "invalid or missing date")
		return
	}

	availability, err := h.services.Rooms.DayAvailability(c.Request.Context(), id, date)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, 200, availability)
}
