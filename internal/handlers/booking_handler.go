package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mindspace-care/mindspace-api/internal/appctx"
	"github.com/mindspace-care/mindspace-api/internal/authmsg"
	"github.com/mindspace-care/mindspace-api/internal/httperr"
	"github.com/mindspace-care/mindspace-api/internal/httpresp"
	"github.com/mindspace-care/mindspace-api/internal/middleware"
	ucBooking "github.com/mindspace-care/mindspace-api/internal/usecase/booking"
	"github.com/mindspace-care/mindspace-api/internal/ui/notify"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	app      *appctx.App
	create   *ucBooking.CreateBooking
	cancel   *ucBooking.CancelBooking
	complete *ucBooking.CompleteBooking
	listMine *ucBooking.ListUserBookings
	slots    *ucBooking.GetAvailability
}

func NewBookingHandler(
	app *appctx.App,
	create *ucBooking.CreateBooking,
	cancel *ucBooking.CancelBooking,
	complete *ucBooking.CompleteBooking,
	listMine *ucBooking.ListUserBookings,
	slots *ucBooking.GetAvailability,
) *BookingHandler {
	return &BookingHandler{
		app:      app,
		create:   create,
		cancel:   cancel,
		complete: complete,
		listMine: listMine,
		slots:    slots,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	TherapistID string `json:"therapist_id" binding:"required"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking request.")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		UserID:      userID,
		TherapistID: req.TherapistID,
		Date:        req.Date,
		Time:        req.Time,
	})
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	h.app.Notifications.Show(
		"Session booked for "+b.SessionDate+" at "+b.StartTime,
		notify.TypeSuccess, notify.Options{},
	)

	c.JSON(201, b)
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	bookings, err := h.listMine.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", authmsg.Lookup("internal_error"))
		return
	}

	h.app.Session.Set("bookings", bookings)
	httpresp.List(c, bookings)
}

// ======================================================
// CANCEL / COMPLETE
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	role := c.MustGet(middleware.ContextUserRole).(string)

	b, err := h.cancel.Execute(c.Request.Context(), userID, role, c.Param("id"))
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	h.app.Notifications.Show("Session cancelled", notify.TypeInfo, notify.Options{})

	c.JSON(200, b)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	role := c.MustGet(middleware.ContextUserRole).(string)

	b, err := h.complete.Execute(c.Request.Context(), userID, role, c.Param("id"))
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(200, b)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *BookingHandler) Slots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	free, err := h.slots.Execute(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	httpresp.List(c, free)
}

// ======================================================
// ERROR MAPPING
// ======================================================

func (h *BookingHandler) writeBookingError(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)

	switch code {
	case "booking_conflict":
		// Conflicts get their own status and message so a double
		// booking never reads like a generic failure.
		h.app.Notifications.Show(authmsg.Lookup(code), notify.TypeError, notify.Options{})
		httperr.Conflict(c, code, authmsg.Lookup(code))

	case "missing_date_or_time", "invalid_slot", "invalid_date",
		"date_in_past", "date_too_far", "invalid_state":
		httperr.BadRequest(c, code, authmsg.Lookup(code))

	case "therapist_not_found", "booking_not_found":
		httperr.NotFound(c, code, authmsg.Lookup(code))

	case "therapist_not_available":
		httperr.BadRequest(c, code, "This therapist is not currently accepting bookings.")

	case "not_allowed":
		httperr.Forbidden(c, code, "You cannot modify this booking.")

	default:
		h.app.Notifications.Show(authmsg.Lookup("internal_error"), notify.TypeError, notify.Options{})
		httperr.Internal(c, "internal_error", authmsg.Lookup("internal_error"))
	}
}
