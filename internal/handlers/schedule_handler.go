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

type ScheduleHandler struct {
	db    *gorm.DB
	cache *cache.Cache
	audit *audit.Dispatcher
}

func NewScheduleHandler(db *gorm.DB, viewCache *cache.Cache, auditDispatcher *audit.Dispatcher) *ScheduleHandler {
	return &ScheduleHandler{db: db, cache: viewCache, audit: auditDispatcher}
}

// --------- Requests ---------

type ScheduleRequest struct {
	BarberID  string `json:"barber_id"`
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// --------- Handlers ---------

func (h *ScheduleHandler) List(c *gin.Context) {
	q := h.db.Order("day_of_week ASC, start_time ASC")

	if barberID := c.Query("barber_id"); barberID != "" {
		q = q.Where("barber_id = ?", barberID)
	}

	var schedules []models.BarberSchedule
	if err := q.Find(&schedules).Error; err != nil {
		httperr.Internal(c, "failed_to_list_schedules", err.Error())
		return
	}

	httpresp.List(c, schedules)
}

func (h *ScheduleHandler) Create(c *gin.Context) {
	fields, ok := h.bindFields(c, true)
	if !ok {
		return
	}

	var barber models.Barber
	if err := h.db.
		Where("id = ?", fields.barberID).
		First(&barber).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "")
		return
	}

	schedule := models.BarberSchedule{
		BarberID:  barber.ID,
		DayOfWeek: fields.dayOfWeek,
		StartTime: fields.startTime,
		EndTime:   fields.endTime,
	}

	if err := h.db.Create(&schedule).Error; err != nil {
		httperr.Internal(c, "failed_to_create_schedule", err.Error())
		return
	}

	h.cache.Invalidate(c.Request.Context(), cachePrefixAvailable)
	h.audit.Dispatch(audit.Event{
		AdminID:  adminIDFrom(c),
		Action:   "schedule_created",
		Entity:   "barber_schedule",
		EntityID: &schedule.ID,
	})

	httpresp.Created(c, schedule)
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	var schedule models.BarberSchedule
	if err := h.db.
		Where("id = ?", c.Param("id")).
		First(&schedule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "schedule_not_found", "")
			return
		}
		httperr.Internal(c, "failed_to_get_schedule", err.Error())
		return
	}

	fields, ok := h.bindFields(c, false)
	if !ok {
		return
	}

	schedule.DayOfWeek = fields.dayOfWeek
	schedule.StartTime = fields.startTime
	schedule.EndTime = fields.endTime

	if err := h.db.Save(&schedule).Error; err != nil {
		httperr.Internal(c, "failed_to_update_schedule", err.Error())
		return
	}

	h.cache.Invalidate(c.Request.Context(), cachePrefixAvailable)
	h.audit.Dispatch(audit.Event{
		AdminID:  adminIDFrom(c),
		Action:   "schedule_updated",
		Entity:   "barber_schedule",
		EntityID: &schedule.ID,
	})

	httpresp.OK(c, schedule)
}

func (h *ScheduleHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Where("id = ?", id).Delete(&models.BarberSchedule{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_schedule", res.Error.Error())
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "schedule_not_found", "")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cachePrefixAvailable)
	h.audit.Dispatch(audit.Event{
		AdminID:  adminIDFrom(c),
		Action:   "schedule_deleted",
		Entity:   "barber_schedule",
		EntityID: &id,
	})

	c.Status(http.StatusNoContent)
}

// --------- Field binding ---------

type scheduleFields struct {
	barberID  string
	dayOfWeek int
	startTime string
	endTime   string
}

func (h *ScheduleHandler) bindFields(c *gin.Context, withBarber bool) (scheduleFields, bool) {
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return scheduleFields{}, false
	}

	var fields scheduleFields

	if withBarber {
		barberID, err := validators.MustString(req.BarberID, "barber_id")
		if err != nil {
			httperr.From(c, err)
			return scheduleFields{}, false
		}
		fields.barberID = barberID
	}

	day, err := validators.MustInt(req.DayOfWeek, "day_of_week")
	if err != nil {
		httperr.From(c, err)
		return scheduleFields{}, false
	}
	if day < 0 || day > 6 {
		httperr.BadRequest(c, "validation_error", "day_of_week out of range (0..6)")
		return scheduleFields{}, false
	}

	start, err := validators.MustTime(req.StartTime, "start_time")
	if err != nil {
		httperr.From(c, err)
		return scheduleFields{}, false
	}
	end, err := validators.MustTime(req.EndTime, "end_time")
	if err != nil {
		httperr.From(c, err)
		return scheduleFields{}, false
	}

	// Zero-padded "HH:MM" compares correctly as a string.
	if start >= end {
		httperr.BadRequest(c, "validation_error", "start_time must be before end_time")
		return scheduleFields{}, false
	}

	fields.dayOfWeek = day
	fields.startTime = start
	fields.endTime = end
	return fields, true
}
