package realtime

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/seojin-dev/as-human-being/backend/internal/models"
	"go.uber.org/zap"
	"nhooyr.io/websocket"
)

// ServeWS returns an Echo handler that upgrades to a per-user notification
// stream. Auth is done via ?token=xxx query param since the browser
// WebSocket API cannot set headers.
func ServeWS(hub *Hub, jwtSecret string) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenStr := c.QueryParam("token")
		if tokenStr == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Missing token")
		}

		userID, err := validateToken(tokenStr, jwtSecret)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
		}

		conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			hub.logger.Warn("realtime accept error", zap.Error(err))
			return nil
		}

		client := NewClient(hub, conn, userID)
		hub.register <- client

		go client.WritePump()
		client.ReadPump()
		return nil
	}
}

func validateToken(tokenStr, secret string) (string, error) {
	claims := &models.JwtCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", jwt.ErrTokenInvalidClaims
	}
	return claims.UserID, nil
}
