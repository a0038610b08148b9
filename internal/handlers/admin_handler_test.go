package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindspace-care/mindspace-api/internal/appctx"
	domain "github.com/mindspace-care/mindspace-api/internal/domain/booking"
	"github.com/mindspace-care/mindspace-api/internal/models"
)

func newAdminRouter(app *appctx.App, adminID string) *gin.Engine {
	h := NewAdminHandler(app)

	r := gin.New()
	admin := r.Group("/api/admin")
	admin.Use(asUser(adminID, models.RoleAdmin))
	{
		admin.GET("/therapists", h.ListTherapists)
		admin.PATCH("/therapists/:id/approve", h.Approve)
		admin.PATCH("/therapists/:id/reject", h.Reject)
	}
	return r
}

func seedPendingApplication(t *testing.T, app *appctx.App, email string) *models.Therapist {
	t.Helper()

	u := seedAccount(t, app, email, "123456", models.RoleTherapist)
	th := &models.Therapist{
		UserID:         u.ID,
		Name:           u.FullName,
		ApprovalStatus: string(domain.ApprovalPending),
		Active:         true,
	}
	require.NoError(t, app.DB.Create(th).Error)
	return th
}

func patch(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestApprove_PendingApplication(t *testing.T) {
	app := newTestApp(t)
	admin := seedAccount(t, app, "admin@example.com", "123456", models.RoleAdmin)
	th := seedPendingApplication(t, app, "dr.zara@example.com")
	r := newAdminRouter(app, admin.ID)

	w := patch(r, "/api/admin/therapists/"+th.ID+"/approve")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got models.Therapist
	require.NoError(t, app.DB.First(&got, "id = ?", th.ID).Error)
	assert.Equal(t, string(domain.ApprovalApproved), got.ApprovalStatus)
}

func TestReject_PendingApplication(t *testing.T) {
	app := newTestApp(t)
	admin := seedAccount(t, app, "admin@example.com", "123456", models.RoleAdmin)
	th := seedPendingApplication(t, app, "dr.zara@example.com")
	r := newAdminRouter(app, admin.ID)

	w := patch(r, "/api/admin/therapists/"+th.ID+"/reject")
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Therapist
	require.NoError(t, app.DB.First(&got, "id = ?", th.ID).Error)
	assert.Equal(t, string(domain.ApprovalRejected), got.ApprovalStatus)
}

func TestApprove_DecidedApplicationIsFinal(t *testing.T) {
	app := newTestApp(t)
	admin := seedAccount(t, app, "admin@example.com", "123456", models.RoleAdmin)
	th := seedPendingApplication(t, app, "dr.zara@example.com")
	r := newAdminRouter(app, admin.ID)

	require.Equal(t, http.StatusOK, patch(r, "/api/admin/therapists/"+th.ID+"/reject").Code)

	w := patch(r, "/api/admin/therapists/"+th.ID+"/approve")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_state", decode(t, w)["error_code"])

	var got models.Therapist
	require.NoError(t, app.DB.First(&got, "id = ?", th.ID).Error)
	assert.Equal(t, string(domain.ApprovalRejected), got.ApprovalStatus)
}

func TestApprove_UnknownApplication(t *testing.T) {
	app := newTestApp(t)
	admin := seedAccount(t, app, "admin@example.com", "123456", models.RoleAdmin)
	r := newAdminRouter(app, admin.ID)

	w := patch(r, "/api/admin/therapists/00000000-0000-0000-0000-000000000000/approve")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApprove_RefreshesCachedDirectoryOnce(t *testing.T) {
	app := newTestApp(t)
	admin := seedAccount(t, app, "admin@example.com", "123456", models.RoleAdmin)
	a := seedPendingApplication(t, app, "dr.zara@example.com")
	b := seedPendingApplication(t, app, "dr.amit@example.com")
	r := newAdminRouter(app, admin.ID)

	require.Equal(t, http.StatusOK, patch(r, "/api/admin/therapists/"+a.ID+"/approve").Code)
	require.Equal(t, http.StatusOK, patch(r, "/api/admin/therapists/"+b.ID+"/approve").Code)

	// Burst approvals coalesce into one debounced refresh.
	assert.Eventually(t, func() bool {
		cached, ok := app.Session.Get("therapists").([]models.Therapist)
		return ok && len(cached) == 2
	}, 2*time.Second, 25*time.Millisecond)
}

func TestListTherapists_StatusFilter(t *testing.T) {
	app := newTestApp(t)
	admin := seedAccount(t, app, "admin@example.com", "123456", models.RoleAdmin)
	seedPendingApplication(t, app, "dr.zara@example.com")

	approved := seedPendingApplication(t, app, "dr.amit@example.com")
	approved.ApprovalStatus = string(domain.ApprovalApproved)
	require.NoError(t, app.DB.Save(approved).Error)

	r := newAdminRouter(app, admin.ID)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/therapists?status=pending", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.EqualValues(t, 1, body["total"])
}
