package rest

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/Seishinryoku00/Medical-Management-App/config"
	"github.com/Seishinryoku00/Medical-Management-App/internal/service"
)

type Handler struct {
	services *service.Services
	logger   *zap.Logger
	config   *config.Config
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		config:   config,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())

	router.Use(h.errorMiddleware())

	router.Use(h.corsMiddleware())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/patient/register", h.registerPatient)
			auth.POST("/patient/login", h.loginPatient)
			auth.POST("/doctor/login", h.loginDoctor)
		}

		doctors := api.Group("/doctors")
		{
			doctors.GET("/", h.getDoctors)
			doctors.GET("/:id", h.getDoctorByID)
			doctors.GET("/:id/slots", h.getDoctorSlots)
			doctors.GET("/specialization/:specialization/slots", h.getSpecializationSlots)

			staff := doctors.Group("/", h.authMiddleware(), h.doctorMiddleware())
			{
				staff.POST("/", h.createDoctor)
			}
		}

		patients := api.Group("/patients")
		patients.Use(h.authMiddleware())
		{
			patients.GET("/me", h.getCurrentPatient)

			staff := patients.Group("/", h.doctorMiddleware())
			{
				staff.GET("/", h.getPatients)
				staff.GET("/:id", h.getPatientByID)
			}
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("/", h.getRooms)
			rooms.GET("/:id", h.getRoomByID)
			rooms.GET("/:id/availability", h.getRoomDayAvailability)

			staff := rooms.Group("/", h.authMiddleware(), h.doctorMiddleware())
			{
				staff.POST("/", h.createRoom)
			}
		}

		appointments := api.Group("/appointments")
		appointments.Use(h.authMiddleware())
		{
			appointments.POST("/", h.createAppointment)
			appointments.GET("/", h.getAppointments)
			appointments.GET("/:id", h.getAppointmentByID)
			appointments.PUT("/:id", h.updateAppointment)
			appointments.DELETE("/:id", h.cancelAppointment)
		}

		waitingList := api.Group("/waiting-list")
		waitingList.Use(h.authMiddleware())
		{
			waitingList.POST("/", h.addWaitingListEntry)
			waitingList.GET("/", h.doctorMiddleware(), h.getRankedWaitingList)
		}
	}
}
