package mcp

import (
	"net/http"

	ginMw "github.com/Laisky/gin-middlewares/v7"
	gconfig "github.com/Laisky/go-config/v2"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"
)

// RunHTTP mounts the streamable MCP handler into a gin engine and serves it
// until the listener fails.
func (s *Server) RunHTTP(addr string) error {
	if !gconfig.Shared.GetBool("debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		ginMw.NewLoggerMiddleware(
			ginMw.WithLoggerMwColored(),
			ginMw.WithLevel(s.logger.Level().String()),
			ginMw.WithLogger(s.logger.Named("gin")),
		),
	)

	engine.Any("/health", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world")
	})
	engine.Any("/mcp", ginMw.FromStd(s.handler.ServeHTTP))
	engine.Any("/mcp/*any", ginMw.FromStd(s.handler.ServeHTTP))

	s.logger.Info("listening on http", zap.String("addr", addr))
	return engine.Run(addr)
}
