package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gabrielcaixeta01/barber-agenda/internal/cache"
	domain "github.com/gabrielcaixeta01/barber-agenda/internal/domain/appointment"
	"github.com/gabrielcaixeta01/barber-agenda/internal/httperr"
	"github.com/gabrielcaixeta01/barber-agenda/internal/httpresp"
	"github.com/gabrielcaixeta01/barber-agenda/internal/models"
	ucAppointment "github.com/gabrielcaixeta01/barber-agenda/internal/usecase/appointment"
)

// PublicHandler serves the unauthenticated booking flow: barbers,
// services, availability, and the one JSON creation endpoint.
type PublicHandler struct {
	db             *gorm.DB
	cache          *cache.Cache
	createUC       *ucAppointment.CreateAppointment
	availabilityUC *ucAppointment.GetAvailability
}

func NewPublicHandler(
	db *gorm.DB,
	viewCache *cache.Cache,
	createUC *ucAppointment.CreateAppointment,
	availabilityUC *ucAppointment.GetAvailability,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		cache:          viewCache,
		createUC:       createUC,
		availabilityUC: availabilityUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	BarberID        string `json:"barber_id"`
	ServiceID       string `json:"service_id"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	ClientName      string `json:"client_name"`
	ClientPhone     string `json:"client_phone"`
}

// ======================================================
// CATALOG
// ======================================================

// ListBarbers returns active barbers only; inactive barbers stay out
// of the public flow but keep their history.
func (h *PublicHandler) ListBarbers(c *gin.Context) {
	var barbers []models.Barber
	if h.cache.GetJSON(c.Request.Context(), cacheKeyBarbers, &barbers) {
		httpresp.List(c, barbers)
		return
	}

	if err := h.db.
		Where("active = ?", true).
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", err.Error())
		return
	}

	h.cache.SetJSON(c.Request.Context(), cacheKeyBarbers, barbers)
	httpresp.List(c, barbers)
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if h.cache.GetJSON(c.Request.Context(), cacheKeyServices, &services) {
		httpresp.List(c, services)
		return
	}

	if err := h.db.
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", err.Error())
		return
	}

	h.cache.SetJSON(c.Request.Context(), cacheKeyServices, services)
	httpresp.List(c, services)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *PublicHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	barberID := c.Query("barber_id")

	key := cachePrefixAvailable + date + ":" + barberID

	var slots []string
	if h.cache.GetJSON(c.Request.Context(), key, &slots) {
		httpresp.OK(c, gin.H{"date": date, "slots": slots})
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		Date:     date,
		BarberID: barberID,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	h.cache.SetJSON(c.Request.Context(), key, slots)
	httpresp.OK(c, gin.H{"date": date, "slots": slots})
}

// ======================================================
// CREATE (POST /api/appointments)
// ======================================================

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		BarberID:    req.BarberID,
		ServiceID:   req.ServiceID,
		Date:        req.AppointmentDate,
		Time:        req.AppointmentTime,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), cachePrefixAvailable)

	httpresp.Created(c, ap)
}
