package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mindspace-care/mindspace-api/internal/appctx"
	"github.com/mindspace-care/mindspace-api/internal/httpresp"
)

// NotificationHandler exposes the notification center so a client can
// poll the visible stack and dismiss entries.
type NotificationHandler struct {
	app *appctx.App
}

func NewNotificationHandler(app *appctx.App) *NotificationHandler {
	return &NotificationHandler{app: app}
}

func (h *NotificationHandler) List(c *gin.Context) {
	httpresp.List(c, h.app.Notifications.List())
}

func (h *NotificationHandler) Dismiss(c *gin.Context) {
	h.app.Notifications.Remove(c.Param("id"))
	c.JSON(200, gin.H{"status": "dismissed"})
}

func (h *NotificationHandler) Clear(c *gin.Context) {
	h.app.Notifications.Clear()
	c.JSON(200, gin.H{"status": "cleared"})
}
