package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-booking-assistant/internal/store"
)

// BrowseHandler serves the local catalog for clients that want to show
// movie and theater lists outside a conversation.
type BrowseHandler struct {
	inv *store.InventoryStore
}

// NewBrowseHandler constructs a BrowseHandler over the given inventory.
func NewBrowseHandler(inv *store.InventoryStore) *BrowseHandler {
	return &BrowseHandler{inv: inv}
}

// GetMovies lists every movie in the local catalog.
func (h *BrowseHandler) GetMovies(c echo.Context) error {
	return c.JSON(http.StatusOK, h.inv.ListMovies())
}

// GetTheaters lists every theater in the local catalog.
func (h *BrowseHandler) GetTheaters(c echo.Context) error {
	return c.JSON(http.StatusOK, h.inv.ListTheaters())
}
