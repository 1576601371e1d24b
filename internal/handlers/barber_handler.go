package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gabrielcaixeta01/barber-agenda/internal/audit"
	"github.com/gabrielcaixeta01/barber-agenda/internal/cache"
	"github.com/gabrielcaixeta01/barber-agenda/internal/httperr"
	"github.com/gabrielcaixeta01/barber-agenda/internal/httpresp"
	"github.com/gabrielcaixeta01/barber-agenda/internal/models"
	"github.com/gabrielcaixeta01/barber-agenda/internal/validators"
)

type BarberHandler struct {
	db    *gorm.DB
	cache *cache.Cache
	audit *audit.Dispatcher
}

func NewBarberHandler(db *gorm.DB, viewCache *cache.Cache, auditDispatcher *audit.Dispatcher) *BarberHandler {
	return &BarberHandler{db: db, cache: viewCache, audit: auditDispatcher}
}

// --------- Requests ---------

type BarberRequest struct {
	Name string `json:"name"`
}

type SetBarberActiveRequest struct {
	Active *bool `json:"active"`
}

// --------- Handlers ---------

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", err.Error())
		return
	}

	httpresp.List(c, barbers)
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	name, err := validators.MustString(req.Name, "name")
	if err != nil {
		httperr.From(c, err)
		return
	}

	barber := models.Barber{
		Name:   name,
		Active: true,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", err.Error())
		return
	}

	h.cache.Invalidate(c.Request.Context(), cacheKeyBarbers, cachePrefixAvailable)
	h.audit.Dispatch(audit.Event{
		AdminID:  adminIDFrom(c),
		Action:   "barber_created",
		Entity:   "barber",
		EntityID: &barber.ID,
	})

	httpresp.Created(c, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	barber, ok := h.find(c)
	if !ok {
		return
	}

	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	name, err := validators.MustString(req.Name, "name")
	if err != nil {
		httperr.From(c, err)
		return
	}

	barber.Name = name
	if err := h.db.Save(barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", err.Error())
		return
	}

	h.cache.Invalidate(c.Request.Context(), cacheKeyBarbers)
	h.audit.Dispatch(audit.Event{
		AdminID:  adminIDFrom(c),
		Action:   "barber_updated",
		Entity:   "barber",
		EntityID: &barber.ID,
	})

	httpresp.OK(c, barber)
}

func (h *BarberHandler) SetActive(c *gin.Context) {
	barber, ok := h.find(c)
	if !ok {
		return
	}

	var req SetBarberActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Active == nil {
		httperr.BadRequest(c, "validation_error", "missing required field: active")
		return
	}

	barber.Active = *req.Active
	if err := h.db.Save(barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", err.Error())
		return
	}

	h.cache.Invalidate(c.Request.Context(), cacheKeyBarbers, cachePrefixAvailable)
	h.audit.Dispatch(audit.Event{
		AdminID:  adminIDFrom(c),
		Action:   "barber_active_changed",
		Entity:   "barber",
		EntityID: &barber.ID,
		Metadata: map[string]any{"active": barber.Active},
	})

	httpresp.OK(c, barber)
}

// Delete removes a barber; schedules cascade and appointments keep
// their history with the barber unassigned.
func (h *BarberHandler) Delete(c *gin.Context) {
	barber, ok := h.find(c)
	if !ok {
		return
	}

	if err := h.db.Delete(barber).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_barber", err.Error())
		return
	}

	h.cache.Invalidate(c.Request.Context(), cacheKeyBarbers, cachePrefixAvailable)
	h.audit.Dispatch(audit.Event{
		AdminID:  adminIDFrom(c),
		Action:   "barber_deleted",
		Entity:   "barber",
		EntityID: &barber.ID,
	})

	c.Status(http.StatusNoContent)
}

func (h *BarberHandler) find(c *gin.Context) (*models.Barber, bool) {
	var barber models.Barber
	if err := h.db.
		Where("id = ?", c.Param("id")).
		First(&barber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "barber_not_found", "")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get_barber", err.Error())
		return nil, false
	}
	return &barber, true
}
