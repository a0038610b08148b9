package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mindspace-care/mindspace-api/internal/appctx"
	"github.com/mindspace-care/mindspace-api/internal/authmsg"
	"github.com/mindspace-care/mindspace-api/internal/httperr"
	"github.com/mindspace-care/mindspace-api/internal/httpresp"
	ucBooking "github.com/mindspace-care/mindspace-api/internal/usecase/booking"
)

// TherapistHandler serves the public therapist directory: only
// approved, active therapists are ever listed.
type TherapistHandler struct {
	app  *appctx.App
	list *ucBooking.ListTherapists
}

func NewTherapistHandler(app *appctx.App, list *ucBooking.ListTherapists) *TherapistHandler {
	return &TherapistHandler{app: app, list: list}
}

func (h *TherapistHandler) List(c *gin.Context) {
	therapists, err := h.list.Execute(c.Request.Context(), c.Query("search"))
	if err != nil {
		httperr.Internal(c, "failed_to_list_therapists", authmsg.Lookup("internal_error"))
		return
	}

	h.app.Session.Set("therapists", therapists)
	httpresp.List(c, therapists)
}
