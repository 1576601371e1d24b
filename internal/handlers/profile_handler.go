package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gabrielcaixeta01/barber-agenda/internal/audit"
	"github.com/gabrielcaixeta01/barber-agenda/internal/httperr"
	"github.com/gabrielcaixeta01/barber-agenda/internal/httpresp"
	"github.com/gabrielcaixeta01/barber-agenda/internal/models"
	"github.com/gabrielcaixeta01/barber-agenda/internal/validators"
)

// ProfileHandler manages the admin's own profile row, keyed by the
// authenticated identity. The row is upserted, never deleted.
type ProfileHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewProfileHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *ProfileHandler {
	return &ProfileHandler{db: db, audit: auditDispatcher}
}

type UpsertProfileRequest struct {
	DisplayName string `json:"display_name"`
}

func (h *ProfileHandler) Get(c *gin.Context) {
	adminID := adminIDFrom(c)
	if adminID == nil {
		httperr.Unauthorized(c, "not_authenticated", "")
		return
	}

	var profile models.AdminProfile
	if err := h.db.
		Where("id = ?", *adminID).
		First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "profile_not_found", "")
			return
		}
		httperr.Internal(c, "failed_to_get_profile", err.Error())
		return
	}

	httpresp.OK(c, profile)
}

func (h *ProfileHandler) Upsert(c *gin.Context) {
	adminID := adminIDFrom(c)
	if adminID == nil {
		httperr.Unauthorized(c, "not_authenticated", "")
		return
	}

	var req UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	displayName, err := validators.MustString(req.DisplayName, "display_name")
	if err != nil {
		httperr.From(c, err)
		return
	}

	profile := models.AdminProfile{
		ID:          *adminID,
		DisplayName: displayName,
	}

	if err := h.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"display_name", "updated_at"}),
		}).
		Create(&profile).Error; err != nil {
		httperr.Internal(c, "failed_to_upsert_profile", err.Error())
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  adminID,
		Action:   "profile_updated",
		Entity:   "admin_profile",
		EntityID: adminID,
	})

	httpresp.OK(c, profile)
}
