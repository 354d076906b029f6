package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-booking-assistant/internal/session"
)

// ChatHandler exposes the dialogue engine over HTTP.  The session ID in
// the path doubles as the user ID for preference and booking ownership;
// posting to an unknown session creates it in the greeting state.
type ChatHandler struct {
	sessions *session.Registry
}

// NewChatHandler constructs a ChatHandler backed by the given registry.
func NewChatHandler(sessions *session.Registry) *ChatHandler {
	return &ChatHandler{sessions: sessions}
}

// messageRequest is the body of POST /v1/sessions/:id/messages.
type messageRequest struct {
	Text string `json:"text"`
}

// messageResponse carries the assistant's reply and the state the
// session landed in after the turn.
type messageResponse struct {
	Reply string `json:"reply"`
	State string `json:"state"`
}

// PostMessage runs one dialogue turn.  Empty input is still handed to
// the engine; every state answers it with its own re-prompt.
func (h *ChatHandler) PostMessage(c echo.Context) error {
	sessionID := c.Param("id")
	if strings.TrimSpace(sessionID) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing session id"})
	}
	var req messageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	reply, state := h.sessions.HandleTurn(c.Request().Context(), sessionID, req.Text)
	return c.JSON(http.StatusOK, messageResponse{Reply: reply, State: string(state)})
}

// GetSession returns a read-only snapshot of the session context.
func (h *ChatHandler) GetSession(c echo.Context) error {
	view, ok := h.sessions.Snapshot(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
	}
	return c.JSON(http.StatusOK, view)
}

// DeleteSession drops the session.  Confirmed bookings survive in the
// ledger; only the conversation state is discarded.
func (h *ChatHandler) DeleteSession(c echo.Context) error {
	if !h.sessions.Remove(c.Param("id")) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
	}
	return c.NoContent(http.StatusNoContent)
}
