package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/gabrielcaixeta01/barber-agenda/internal/httperr"
	"github.com/gabrielcaixeta01/barber-agenda/internal/httpresp"
	ucAppointment "github.com/gabrielcaixeta01/barber-agenda/internal/usecase/appointment"
)

type DashboardHandler struct {
	statsUC *ucAppointment.GetAdminStats
}

func NewDashboardHandler(statsUC *ucAppointment.GetAdminStats) *DashboardHandler {
	return &DashboardHandler{statsUC: statsUC}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, stats)
}
