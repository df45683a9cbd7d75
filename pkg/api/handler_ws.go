package api

import (
	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"
)

// websocketHandler upgrades the connection and hands it to the connection
// manager, which owns the subscription lifecycle until the client goes away.
func (s *Server) websocketHandler(c *echo.Context) error {
	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		OriginPatterns: s.cfg.System.AllowedWSOrigins,
	})
	if err != nil {
		s.logger.Warn("WebSocket upgrade failed", "error", err)
		return nil
	}

	s.connManager.HandleConnection(c.Request().Context(), conn, encodeActor(identity(c)))
	return nil
}
