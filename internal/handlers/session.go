package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"restaurant-backend/internal/utils"
)

const sessionCookie = "session_id"

const sessionMaxAge = int(30 * 24 * time.Hour / time.Second)

// sessionID returns the visitor's session id, minting a cookie for new
// visitors.
func sessionID(c *gin.Context) string {
	id, err := c.Cookie(sessionCookie)
	if err != nil || id == "" {
		id = utils.GenerateSessionID()
		c.SetCookie(sessionCookie, id, sessionMaxAge, "/", "", false, true)
	}
	return id
}
