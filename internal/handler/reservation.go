package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dinespot/table-reservation/internal/booking"
	"github.com/dinespot/table-reservation/internal/repository"
	"github.com/dinespot/table-reservation/internal/service"
	"github.com/dinespot/table-reservation/internal/utils"
)

// ReservationHandler serves reservation creation, cancellation and the
// JWT-guarded admin listing. Lifecycle rules live in the service; the
// handler only binds requests and maps error types to status codes.
type ReservationHandler struct {
	Service      *service.ReservationService
	Reservations *repository.ReservationRepo
	Env          string
}

// NewReservationHandler constructs a ReservationHandler.
func NewReservationHandler(svc *service.ReservationService, reservations *repository.ReservationRepo, env string) *ReservationHandler {
	if svc == nil || reservations == nil {
		panic("nil dependency passed to NewReservationHandler")
	}
	return &ReservationHandler{Service: svc, Reservations: reservations, Env: env}
}

// Create handles POST /reservations. Responses:
//   - 201 with the reservation enriched with restaurantName and tableSeats
//   - 400 for validation failures, past dates and booking conflicts; a
//     conflict additionally carries nextAvailable, the instant the blocking
//     reservation holds
//   - 404 when the restaurant or table does not exist
func (h *ReservationHandler) Create(c echo.Context) error {
	var in service.CreateReservationInput
	if err := c.Bind(&in); err != nil {
		return fail(c, h.Env, http.StatusBadRequest, "Invalid request body", err)
	}

	created, err := h.Service.Create(c.Request().Context(), in)
	if err != nil {
		var ve *service.ValidationError
		var nfe *service.NotFoundError
		var ce *booking.ConflictError
		switch {
		case errors.As(err, &ve):
			return fail(c, h.Env, http.StatusBadRequest, ve.Message, nil)
		case errors.As(err, &nfe):
			return fail(c, h.Env, http.StatusNotFound, nfe.Error(), nil)
		case errors.As(err, &ce):
			return c.JSON(http.StatusBadRequest, echo.Map{
				"message":       "Table is already reserved",
				"nextAvailable": ce.NextAvailable.Format(time.RFC3339),
			})
		default:
			return fail(c, h.Env, http.StatusInternalServerError, "Error creating reservation", err)
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":     "Reservation created successfully",
		"reservation": created,
	})
}

// ListByRestaurant handles GET /reservations/:id, the admin listing for a
// restaurant. The status filter is one of upcoming, past or all (default);
// upcoming sorts ascending, past descending.
func (h *ReservationHandler) ListByRestaurant(c echo.Context) error {
	restaurantID := c.Param("id")
	if !utils.IsHexID(restaurantID) {
		return fail(c, h.Env, http.StatusBadRequest, "Invalid restaurant ID format", nil)
	}
	page, limit := pageParams(c)
	status := c.QueryParam("status")

	reservations, total, err := h.Reservations.ListByRestaurant(
		c.Request().Context(), restaurantID, status, time.Now().UTC(), page, limit,
	)
	if err != nil {
		return fail(c, h.Env, http.StatusInternalServerError, "Error fetching reservations", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"reservations": reservations,
		"pagination":   repository.NewPagination(page, limit, total),
	})
}

// Cancel handles DELETE /reservations/:id. Past reservations are rejected
// with 400; cancelling releases the table and hard-deletes the record.
func (h *ReservationHandler) Cancel(c echo.Context) error {
	err := h.Service.Cancel(c.Request().Context(), c.Param("id"))
	if err != nil {
		var ve *service.ValidationError
		var nfe *service.NotFoundError
		switch {
		case errors.As(err, &ve):
			return fail(c, h.Env, http.StatusBadRequest, ve.Message, nil)
		case errors.As(err, &nfe):
			return fail(c, h.Env, http.StatusNotFound, nfe.Error(), nil)
		default:
			return fail(c, h.Env, http.StatusInternalServerError, "Error cancelling reservation", err)
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Reservation cancelled successfully"})
}
