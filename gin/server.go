package gin

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Server hosts the handlers registered by the domain http packages. It
// satisfies the Server interface each of them declares.
type Server struct {
	engine *gin.Engine
}

func NewServer(env string) *Server {
	if env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// CORS
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, PUT, POST, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Accept-Language, Authorization, Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
		}
		c.Next()
	})

	// Unknown route
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Page not found"})
	})

	// Welcome
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, map[string]string{"message": "Welcome to PhotoPilot API"})
	})

	// Ping
	router.GET("/photopilot/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, map[string]string{"data": "ok"})
	})

	return &Server{engine: router}
}

// RegisterHandler mounts a handler on path for method. The route params are
// stored in the request context under "params" for the decoders to read.
func (s *Server) RegisterHandler(path, method string, handler http.Handler) {
	s.engine.Handle(method, path, func(c *gin.Context) {
		params := make(map[string]string)
		for _, p := range c.Params {
			params[p.Key] = p.Value
		}

		ctx := context.WithValue(c.Request.Context(), "params", params)
		handler.ServeHTTP(c.Writer, c.Request.WithContext(ctx))
	})
}

// Handler exposes the underlying engine, for net/http and for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}
