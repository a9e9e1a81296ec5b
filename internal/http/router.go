// README: HTTP router registration.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"skylift/internal/http/handlers"
	"skylift/internal/http/middleware"
	"skylift/internal/modules/chat"
	"skylift/internal/modules/lookup"
)

type RouterDeps struct {
	Engine        *chat.Engine
	Conversations *chat.Store
	Gateway       lookup.Gateway
	Logger        *zap.Logger
	LookupTimeout time.Duration
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.Logging(deps.Logger))

	flightHandler := handlers.NewFlightHandler(deps.Gateway, deps.Logger, deps.LookupTimeout)
	r.POST("/api/search-flights", flightHandler.Search)

	// One chat round-trip can run both completion passes plus a lookup.
	chatTimeout := deps.LookupTimeout + 30*time.Second
	chatHandler := handlers.NewChatHandler(deps.Engine, deps.Conversations, deps.Logger, chatTimeout)
	r.POST("/api/chat", chatHandler.Message)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
