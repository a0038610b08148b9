package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/mindspace-care/mindspace-api/internal/appctx"
	"github.com/mindspace-care/mindspace-api/internal/authmsg"
	domain "github.com/mindspace-care/mindspace-api/internal/domain/booking"
	"github.com/mindspace-care/mindspace-api/internal/httperr"
	"github.com/mindspace-care/mindspace-api/internal/httpresp"
	"github.com/mindspace-care/mindspace-api/internal/middleware"
	"github.com/mindspace-care/mindspace-api/internal/models"
)

// AdminHandler owns the therapist application lifecycle:
// pending -> approved | rejected.
type AdminHandler struct {
	app *appctx.App
}

func NewAdminHandler(app *appctx.App) *AdminHandler {
	return &AdminHandler{app: app}
}

func (h *AdminHandler) ListTherapists(c *gin.Context) {
	q := h.app.DB.Preload("User").Order("created_at ASC")

	if status := c.Query("status"); status != "" {
		q = q.Where("approval_status = ?", status)
	}

	var out []models.Therapist
	if err := q.Find(&out).Error; err != nil {
		httperr.Internal(c, "failed_to_list_therapists", authmsg.Lookup("internal_error"))
		return
	}

	httpresp.List(c, out)
}

func (h *AdminHandler) Approve(c *gin.Context) {
	h.transition(c, domain.ApprovalApproved, "therapist_approved")
}

func (h *AdminHandler) Reject(c *gin.Context) {
	h.transition(c, domain.ApprovalRejected, "therapist_rejected")
}

func (h *AdminHandler) transition(c *gin.Context, to domain.ApprovalStatus, action string) {
	adminID := c.MustGet(middleware.ContextUserID).(string)

	var th models.Therapist
	if err := h.app.DB.Where("id = ?", c.Param("id")).First(&th).Error; err != nil {
		httperr.NotFound(c, "therapist_not_found", "Application not found.")
		return
	}

	if th.ApprovalStatus != string(domain.ApprovalPending) {
		httperr.BadRequest(c, "invalid_state", "This application was already decided.")
		return
	}

	th.ApprovalStatus = string(to)
	if err := h.app.DB.Save(&th).Error; err != nil {
		httperr.Internal(c, "failed_to_update_therapist", authmsg.Lookup("internal_error"))
		return
	}

	h.app.Audit.Dispatch(auditApproval(&adminID, th.ID, action))

	// The public directory changed; refresh the cached listing once
	// the approval burst settles.
	h.app.InvalidateTherapistCache(func() {
		var approved []models.Therapist
		err := h.app.DB.
			Where("approval_status = ? AND active = ?", string(domain.ApprovalApproved), true).
			Order("name ASC").
			Find(&approved).Error
		if err != nil {
			log.Warn().Err(err).Msg("therapist cache refresh failed")
			return
		}
		h.app.Session.Set("therapists", approved)
	})

	c.JSON(200, th)
}
