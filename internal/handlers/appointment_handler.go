package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gabrielcaixeta01/barber-agenda/internal/cache"
	"github.com/gabrielcaixeta01/barber-agenda/internal/httperr"
	"github.com/gabrielcaixeta01/barber-agenda/internal/httpresp"
	ucAppointment "github.com/gabrielcaixeta01/barber-agenda/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	cache *cache.Cache

	createUC     *ucAppointment.CreateAppointment
	updateUC     *ucAppointment.UpdateAppointment
	cancelUC     *ucAppointment.CancelAppointment
	reactivateUC *ucAppointment.ReactivateAppointment
	completeUC   *ucAppointment.CompleteAppointment
	deleteUC     *ucAppointment.DeleteAppointment
	listUC       *ucAppointment.ListAppointments
	weekUC       *ucAppointment.GetWeekAgenda
}

func NewAppointmentHandler(
	viewCache *cache.Cache,
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	reactivateUC *ucAppointment.ReactivateAppointment,
	completeUC *ucAppointment.CompleteAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	listUC *ucAppointment.ListAppointments,
	weekUC *ucAppointment.GetWeekAgenda,
) *AppointmentHandler {
	return &AppointmentHandler{
		cache:        viewCache,
		createUC:     createUC,
		updateUC:     updateUC,
		cancelUC:     cancelUC,
		reactivateUC: reactivateUC,
		completeUC:   completeUC,
		deleteUC:     deleteUC,
		listUC:       listUC,
		weekUC:       weekUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type WalkInAppointmentRequest struct {
	BarberID        string `json:"barber_id"`
	ServiceID       string `json:"service_id"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	ClientName      string `json:"client_name"`
	ClientPhone     string `json:"client_phone"`
}

type UpdateAppointmentRequest struct {
	BarberID        string `json:"barber_id"`
	ServiceID       string `json:"service_id"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
}

// ======================================================
// CREATE (walk-in)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req WalkInAppointmentRequest
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
		WalkIn:      true,
		AdminID:     adminIDFrom(c),
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), cachePrefixAvailable)

	httpresp.Created(c, ap)
}

// ======================================================
// LIST / WEEK
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	rows, err := h.listUC.Execute(c.Request.Context(), ucAppointment.ListAppointmentsInput{
		View:     c.Query("view"),
		Date:     c.Query("date"),
		Status:   c.Query("status"),
		BarberID: c.Query("barber_id"),
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, rows)
}

func (h *AppointmentHandler) Week(c *gin.Context) {
	agenda, err := h.weekUC.Execute(c.Request.Context())
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, agenda)
}

// ======================================================
// UPDATE (reschedule / reassign)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		ID:        c.Param("id"),
		Date:      req.AppointmentDate,
		Time:      req.AppointmentTime,
		ServiceID: req.ServiceID,
		BarberID:  req.BarberID,
		AdminID:   adminIDFrom(c),
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), cachePrefixAvailable)

	httpresp.OK(c, ap)
}

// ======================================================
// STATUS TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	ap, err := h.cancelUC.Execute(c.Request.Context(), adminIDFrom(c), c.Param("id"))
	if err != nil {
		httperr.From(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), cachePrefixAvailable)

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Reactivate(c *gin.Context) {
	ap, err := h.reactivateUC.Execute(c.Request.Context(), adminIDFrom(c), c.Param("id"))
	if err != nil {
		httperr.From(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), cachePrefixAvailable)

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	ap, err := h.completeUC.Execute(c.Request.Context(), adminIDFrom(c), c.Param("id"))
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), adminIDFrom(c), c.Param("id")); err != nil {
		httperr.From(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), cachePrefixAvailable)

	c.Status(http.StatusNoContent)
}
