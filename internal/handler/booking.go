package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-booking-assistant/internal/store"
)

// BookingHandler serves read access to the booking ledger.
type BookingHandler struct {
	ledger *store.Ledger
}

// NewBookingHandler constructs a BookingHandler over the given ledger.
func NewBookingHandler(ledger *store.Ledger) *BookingHandler {
	return &BookingHandler{ledger: ledger}
}

// GetBooking looks up a single booking by its numeric ID.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid booking id"})
	}
	b, err := h.ledger.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "lookup failed"})
	}
	return c.JSON(http.StatusOK, b)
}
