package v1

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/fleet_incident_tracker/internal/config"
	"github.com/shenikar/fleet_incident_tracker/internal/models"
	"github.com/shenikar/fleet_incident_tracker/internal/service"
	"github.com/sirupsen/logrus"
)

// retryAfterSeconds - подсказка клиенту при таймауте хранилища или загрузки
const retryAfterSeconds = "5"

type Handler struct {
	incidentService service.IncidentService
	lookupService   service.LookupService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(incidentService service.IncidentService, lookupService service.LookupService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		incidentService: incidentService,
		lookupService:   lookupService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary Create a new incident
// @Description Create an incident with its initial audit entries. Accepts JSON or multipart form with `images`/`documents` files.
// @Tags Incidents
// @Accept json,mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} models.Incident
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "Storage or upload failure"
// @Failure 503 {object} ErrorResponse "Timed out, retry later"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	values, err := h.bindRequest(c, &input)
	if err != nil {
		h.respondBindError(c, log, err)
		return
	}

	var uploads []models.Upload
	if values != nil {
		if input.Images, err = attachmentURLs(values, models.AttachmentImages); err != nil {
			h.respondError(c, log, err)
			return
		}
		if input.Documents, err = attachmentURLs(values, models.AttachmentDocuments); err != nil {
			h.respondError(c, log, err)
			return
		}
		uploads = fileUploads(c)
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := h.incidentService.CreateIncident(c.Request.Context(), CreateRequestToIncident(input), uploads)
	if err != nil {
		log.WithError(err).Error("Failed to create incident in service")
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, incident)
}

// @Summary Get a list of incidents
// @Description Get a filtered, paginated list of incidents ordered by occurrence time, newest first.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Status" Enums(PENDING, IN_PROGRESS, RESOLVED, CLOSED, CANCELLED)
// @Param severity query string false "Severity" Enums(LOW, MEDIUM, HIGH, CRITICAL)
// @Param carId query int false "Car ID"
// @Param assignedToId query int false "Assignee user ID"
// @Param startDate query string false "Occurred at or after (RFC3339 or YYYY-MM-DD)"
// @Param endDate query string false "Occurred at or before (RFC3339 or YYYY-MM-DD)"
// @Param query query string false "Case-insensitive search in title, description and location"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Number of items per page" default(10)
// @Success 200 {object} IncidentListResponse
// @Failure 400 {object} ErrorResponse "Invalid filter value"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")
	query := c.Request.URL.Query()

	filter, err := service.ParseIncidentFilter(query)
	if err != nil {
		log.WithError(err).Warn("Invalid incident filter")
		h.respondError(c, log, err)
		return
	}
	page := service.ParsePagination(query)

	result, err := h.incidentService.ListIncidents(c.Request.Context(), filter, page)
	if err != nil {
		log.WithError(err).Error("Failed to list incident from service")
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, PageToListResponse(result))
}

// @Summary Get incident by ID
// @Description Get an incident with its car, reporter, assignee, car reading and update history (newest first).
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Incident ID"
// @Success 200 {object} models.Incident
// @Failure 400 {object} ErrorResponse "Invalid incident ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, ok := parseIncidentID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from service")
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, incident)
}

// @Summary Update an existing incident
// @Description Partially update an incident. Changes of status, assignee, costs and resolution are recorded in its update history. Accepts form fields (multipart with `images`/`documents` files) or JSON.
// @Tags Incidents
// @Accept mpfd,x-www-form-urlencoded,json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Incident ID"
// @Param incident body UpdateIncidentRequest true "Incident update request"
// @Success 200 {object} models.Incident
// @Failure 400 {object} ErrorResponse "Invalid incident ID or request body"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents/{id} [put]
func (h *Handler) updateIncident(c *gin.Context) {
	id, ok := parseIncidentID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateIncident").WithField("id", id)

	var input UpdateIncidentRequest
	values, err := h.bindRequest(c, &input)
	if err != nil {
		h.respondBindError(c, log, err)
		return
	}

	var uploads []models.Upload
	if values != nil {
		if input.Images, err = attachmentURLs(values, models.AttachmentImages); err != nil {
			h.respondError(c, log, err)
			return
		}
		if input.Documents, err = attachmentURLs(values, models.AttachmentDocuments); err != nil {
			h.respondError(c, log, err)
			return
		}
		uploads = fileUploads(c)
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := h.incidentService.UpdateIncident(c.Request.Context(), id, UpdateRequestToPatch(input), input.UserID, uploads)
	if err != nil {
		log.WithError(err).Error("Failed to update incident in service")
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, incident)
}

// @Summary Add an update to an incident
// @Description Append a typed entry to the incident history. STATUS_CHANGE, ASSIGNMENT, COST_UPDATE and RESOLUTION also apply the supplied fields to the incident; COMMENT only records the message.
// @Tags Incidents
// @Accept json,mpfd,x-www-form-urlencoded
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Incident ID"
// @Param update body AddUpdateRequest true "Update entry"
// @Success 201 {object} models.IncidentUpdate
// @Failure 400 {object} ErrorResponse "Invalid incident ID or request body"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents/{id}/updates [post]
func (h *Handler) addIncidentUpdate(c *gin.Context) {
	id, ok := parseIncidentID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "addIncidentUpdate").WithField("id", id)

	var input AddUpdateRequest
	if _, err := h.bindRequest(c, &input); err != nil {
		h.respondBindError(c, log, err)
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update, err := h.incidentService.AddUpdate(c.Request.Context(), id, AddUpdateRequestToSubmission(input))
	if err != nil {
		log.WithError(err).Error("Failed to add incident update in service")
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, update)
}

// @Summary Get incident statistics
// @Description Get totals by status and severity, open incidents and average resolution time in hours.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.IncidentStats
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.incidentService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// @Summary List users
// @Tags Lookups
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.UserRef
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users [get]
func (h *Handler) listUsers(c *gin.Context) {
	log := h.logger.WithField("method", "listUsers")

	users, err := h.lookupService.ListUsers(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary List cars
// @Tags Lookups
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Car
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /cars [get]
func (h *Handler) listCars(c *gin.Context) {
	log := h.logger.WithField("method", "listCars")

	cars, err := h.lookupService.ListCars(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, cars)
}

// @Summary List car readings
// @Tags Lookups
// @Produce json
// @Security ApiKeyAuth
// @Param carId query int false "Only readings of this car"
// @Success 200 {array} models.CarReading
// @Failure 400 {object} ErrorResponse "Invalid car ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /car-readings [get]
func (h *Handler) listCarReadings(c *gin.Context) {
	log := h.logger.WithField("method", "listCarReadings")

	var carID *int64
	if raw := c.Query("carId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid car ID"})
			return
		}
		carID = &id
	}

	readings, err := h.lookupService.ListCarReadings(c.Request.Context(), carID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, readings)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func parseIncidentID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return 0, false
	}
	return id, true
}

// respondError переводит ошибку сервиса в HTTP-статус
// respondBindError отвечает на ошибку разбора тела: 413 при превышении лимита, иначе 400
func (h *Handler) respondBindError(c *gin.Context, log *logrus.Entry, err error) {
	log.WithError(err).Warn("Failed to bind request")

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
}

func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, context.DeadlineExceeded):
		c.Header("Retry-After", retryAfterSeconds)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "request timed out, please retry"})
	case errors.Is(err, models.ErrUpstream):
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream service unavailable"})
	default:
		log.WithError(err).Error("Unhandled error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
