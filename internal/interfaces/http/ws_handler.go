package http

import (
	"context"
	"strings"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cargopilot-api/internal/application/dto"
	"github.com/jhoicas/cargopilot-api/internal/infrastructure/realtime"
)

const localWSUserID = "ws_user_id"

// TokenVerifier valida el access token y devuelve el subject (lo implementa *auth.AuthUseCase).
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}

// WSHandler canal de notificaciones en tiempo real (/ws).
type WSHandler struct {
	verifier TokenVerifier
	hub      *realtime.Hub
}

// NewWSHandler construye el handler.
func NewWSHandler(verifier TokenVerifier, hub *realtime.Hub) *WSHandler {
	return &WSHandler{verifier: verifier, hub: hub}
}

// Handshake valida el token antes del upgrade. Acepta ?token= o Authorization: Bearer.
// La cuenta local se comprueba después, dentro del hub.
func (h *WSHandler) Handshake(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	token := strings.TrimSpace(c.Query("token"))
	if token == "" {
		t, errResp := bearerToken(c)
		if errResp != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(errResp)
		}
		token = t
	}
	userID, err := h.verifier.VerifyToken(token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
	}
	c.Locals(localWSUserID, userID)
	return c.Next()
}

// Upgrade godoc
// @Summary      Notificaciones en tiempo real
// @Description  WebSocket. Frames {"event": "...", "data": {...}} según las salas de la cuenta.
// @Tags         realtime
// @Param        token  query  string  false  "Access token (alternativa al header Authorization)"
// @Success      101
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /ws [get]
func (h *WSHandler) Upgrade() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userID, _ := conn.Locals(localWSUserID).(string)
		h.hub.Serve(context.Background(), userID, conn)
	})
}
