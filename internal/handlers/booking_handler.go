package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sharpfade/barbershop-api/internal/httperr"
	"github.com/sharpfade/barbershop-api/internal/httpresp"
	"github.com/sharpfade/barbershop-api/internal/middleware"
	"github.com/sharpfade/barbershop-api/internal/models"
	"github.com/sharpfade/barbershop-api/internal/schedule"
	ucBooking "github.com/sharpfade/barbershop-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC   *ucBooking.CreateBooking
	confirmUC  *ucBooking.ConfirmBooking
	cancelUC   *ucBooking.CancelBooking
	completeUC *ucBooking.CompleteBooking
	byDateUC   *ucBooking.ListBookingsByDate
	byMonthUC  *ucBooking.ListBookingsByMonth
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	confirmUC *ucBooking.ConfirmBooking,
	cancelUC *ucBooking.CancelBooking,
	completeUC *ucBooking.CompleteBooking,
	byDateUC *ucBooking.ListBookingsByDate,
	byMonthUC *ucBooking.ListBookingsByMonth,
) *BookingHandler {
	return &BookingHandler{
		createUC:   createUC,
		confirmUC:  confirmUC,
		cancelUC:   cancelUC,
		completeUC: completeUC,
		byDateUC:   byDateUC,
		byMonthUC:  byMonthUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:MM
	Notes       string `json:"notes"`
}

// ======================================================
// CREATE (STAFF)
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	bk, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		BarbershopID: barbershopID,
		BarberID:     barberID,
		ClientName:   req.ClientName,
		ClientPhone:  req.ClientPhone,
		ClientEmail:  req.ClientEmail,
		ServiceID:    req.ServiceID,
		Date:         req.Date,
		Time:         req.Time,
		Notes:        req.Notes,
		StaffCreated: true,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bk)
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) ListByDate(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "A date is required.")
		return
	}

	date, err := schedule.ParseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	bookings, err := h.byDateUC.Execute(c.Request.Context(), barberID, barbershopID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) ListByMonth(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Invalid year.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Invalid month.")
		return
	}

	bookings, err := h.byMonthUC.Execute(c.Request.Context(), barberID, barbershopID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":     year,
		"month":    month,
		"bookings": bookings,
	})
}

// ======================================================
// STATUS TRANSITIONS
// ======================================================

func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, h.confirmUC.Execute)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cancelUC.Execute)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	h.transition(c, h.completeUC.Execute)
}

type transitionFunc func(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
	bookingID uint,
) (*models.Booking, error)

func (h *BookingHandler) transition(c *gin.Context, exec transitionFunc) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	bk, err := exec(c.Request.Context(), barbershopID, barberID, uint(id))
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, bk)
}

// ======================================================
// ERROR MAPPING
// ======================================================

// mapBookingError translates business errors raised by the booking use
// cases into HTTP responses. Anything unrecognized is a 500.
func mapBookingError(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case "invalid_date_or_time":
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
	case "too_soon":
		httperr.BadRequest(c, "too_soon", "The slot is too close to now.")
	case "service_not_found":
		httperr.BadRequest(c, "service_not_found", "Service not found.")
	case "outside_working_hours":
		httperr.BadRequest(c, "outside_working_hours", "Outside working hours.")
	case "slot_already_taken":
		httperr.Conflict(c, "slot_already_taken", "The slot was just taken.")
	case "booking_not_found":
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
	case "invalid_state":
		httperr.BadRequest(c, "invalid_state", "The booking cannot change to that status.")
	default:
		httperr.Internal(c, "booking_failed", "Could not process the booking.")
	}
}
