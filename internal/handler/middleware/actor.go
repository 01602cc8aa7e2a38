package middleware

import (
	"errors"
	"net/http"
	"strings"

	"range-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ActorHeader names the caller. It is trusted as given; authentication
// happens upstream.
const ActorHeader = "X-Actor"

const actorKey = "actor"

var errActorMissing = errors.New("missing " + ActorHeader + " header")

func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := strings.TrimSpace(c.GetHeader(ActorHeader))
		if actor == "" {
			httperr.AbortWithError(c, http.StatusBadRequest, errActorMissing, "X-Actor header is required", nil)
			return
		}
		c.Set(actorKey, actor)
		c.Next()
	}
}

func GetActor(c *gin.Context) (string, bool) {
	v, exists := c.Get(actorKey)
	if !exists {
		return "", false
	}
	actor, ok := v.(string)
	return actor, ok && actor != ""
}
