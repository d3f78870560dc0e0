// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"farecast/internal/http/handlers"
	"farecast/internal/http/middleware"
	"farecast/internal/modules/assistant"
	"farecast/internal/modules/pricing"
	"farecast/internal/modules/samples"
)

type ServerDeps struct {
	Pricing     *pricing.Service
	Samples     *samples.Table
	SamplesSize int
	SamplesSeed int64
	// Geocoder and Assistant are optional.
	Geocoder  assistant.Geocoder
	Assistant *assistant.Service
	Logger    *zap.Logger
}

type Server struct {
	fares     *handlers.FareHandler
	samples   *handlers.SamplesHandler
	assistant *handlers.AssistantHandler
	log       *zap.Logger
}

func NewServer(deps ServerDeps) *Server {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		fares:     handlers.NewFareHandler(deps.Pricing),
		samples:   handlers.NewSamplesHandler(deps.Pricing, deps.Samples, deps.SamplesSize, deps.SamplesSeed),
		assistant: handlers.NewAssistantHandler(deps.Geocoder, deps.Assistant),
		log:       log,
	}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(s.log), middleware.Recovery(s.log))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api")
	api.GET("/form", s.fares.Form)
	api.POST("/fares", s.fares.Create)
	api.GET("/samples", s.samples.List)
	api.GET("/geocode", s.assistant.Geocode)
	api.POST("/assistant/trip", s.assistant.Trip)
	return r
}
