// Package httpbridge exposes the tool catalog over HTTP JSON. Unlike the
// stdio transport it signals failures out of band: any dispatch error maps to
// a 500 status with a structured error body instead of an "Error: " text
// inside a success envelope.
package httpbridge

import (
	"net"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Cyclone1070/toolshed/internal/config"
	"github.com/Cyclone1070/toolshed/internal/dispatch"
	"github.com/Cyclone1070/toolshed/internal/logging"
)

// Server wraps the gin router and its dependencies.
type Server struct {
	router     *gin.Engine
	dispatcher *dispatch.Dispatcher
	logger     *logging.Logger
	addr       string
}

// NewServer creates the HTTP bridge over the given dispatcher.
func NewServer(cfg *config.Config, dispatcher *dispatch.Dispatcher, logger *logging.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	s := &Server{
		router:     router,
		dispatcher: dispatcher,
		logger:     logger,
		addr:       net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
	}

	router.GET("/health", s.health)
	router.GET("/api/tools", s.listTools)
	router.POST("/api/tool", s.callTool)

	return s
}

// Run starts listening. Blocks until the listener fails.
func (s *Server) Run() error {
	s.logger.Info("http bridge listening", zap.String("addr", s.addr))
	return s.router.Run(s.addr)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// listTools publishes the catalog with input schemas.
func (s *Server) listTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tools": s.dispatcher.Declarations()})
}

// callTool executes one tool call. Success is 200 with the result envelope;
// every dispatch failure, from an unknown tool name to a missing file, is 500
// with {"error": message}.
func (s *Server) callTool(c *gin.Context) {
	var req dispatch.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	res, err := s.dispatcher.Dispatch(c.Request.Context(), req)
	if err != nil {
		s.logger.Warn("tool call failed", zap.String("tool", req.Name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.logger.Debug("tool call succeeded", zap.String("tool", req.Name))
	c.JSON(http.StatusOK, res)
}
