package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/gabrielcaixeta01/barber-agenda/internal/audit"
	"github.com/gabrielcaixeta01/barber-agenda/internal/cache"
	"github.com/gabrielcaixeta01/barber-agenda/internal/httperr"
	"github.com/gabrielcaixeta01/barber-agenda/internal/httpresp"
	"github.com/gabrielcaixeta01/barber-agenda/internal/models"
	"github.com/gabrielcaixeta01/barber-agenda/internal/validators"
)

type ServiceHandler struct {
	db    *gorm.DB
	cache *cache.Cache
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, viewCache *cache.Cache, auditDispatcher *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, cache: viewCache, audit: auditDispatcher}
}

// --------- Requests ---------

// Price arrives as the raw human-typed string ("35", "35,00",
// "1.234,56") and goes through the cents heuristic.
type ServiceRequest struct {
	Name            string `json:"name"`
	DurationMinutes string `json:"duration_minutes"`
	Price           string `json:"price"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", err.Error())
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	fields, ok := h.bindFields(c)
	if !ok {
		return
	}

	service := models.Service{
		Name:            fields.name,
		DurationMinutes: fields.duration,
		PriceCents:      fields.priceCents,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", err.Error())
		return
	}

	h.cache.Invalidate(c.Request.Context(), cacheKeyServices)
	h.audit.Dispatch(audit.Event{
		AdminID:  adminIDFrom(c),
		Action:   "service_created",
		Entity:   "service",
		EntityID: &service.ID,
	})

	httpresp.Created(c, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var service models.Service
	if err := h.db.
		Where("id = ?", c.Param("id")).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "")
			return
		}
		httperr.Internal(c, "failed_to_get_service", err.Error())
		return
	}

	fields, ok := h.bindFields(c)
	if !ok {
		return
	}

	service.Name = fields.name
	service.DurationMinutes = fields.duration
	service.PriceCents = fields.priceCents

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", err.Error())
		return
	}

	h.cache.Invalidate(c.Request.Context(), cacheKeyServices)
	h.audit.Dispatch(audit.Event{
		AdminID:  adminIDFrom(c),
		Action:   "service_updated",
		Entity:   "service",
		EntityID: &service.ID,
	})

	httpresp.OK(c, service)
}

// Delete is restricted while appointments still reference the service;
// the database foreign key reports that as a 409 rather than a silent
// cascade.
func (h *ServiceHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Where("id = ?", id).Delete(&models.Service{})
	if res.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(res.Error, &pgErr) && pgErr.Code == "23503" {
			httperr.Write(c, http.StatusConflict, "service_in_use", pgErr.Message)
			return
		}
		httperr.Internal(c, "failed_to_delete_service", res.Error.Error())
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cacheKeyServices)
	h.audit.Dispatch(audit.Event{
		AdminID:  adminIDFrom(c),
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: &id,
	})

	c.Status(http.StatusNoContent)
}

// --------- Field binding ---------

type serviceFields struct {
	name       string
	duration   int
	priceCents int
}

func (h *ServiceHandler) bindFields(c *gin.Context) (serviceFields, bool) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return serviceFields{}, false
	}

	name, err := validators.MustString(req.Name, "name")
	if err != nil {
		httperr.From(c, err)
		return serviceFields{}, false
	}

	duration, err := validators.MustPositiveInt(req.DurationMinutes, "duration_minutes")
	if err != nil {
		httperr.From(c, err)
		return serviceFields{}, false
	}

	priceCents, err := validators.MustPriceCents(req.Price, "price")
	if err != nil {
		httperr.From(c, err)
		return serviceFields{}, false
	}

	return serviceFields{
		name:       name,
		duration:   duration,
		priceCents: priceCents,
	}, true
}
