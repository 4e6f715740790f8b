package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"clipscribe/types"
)

// Pipeline is the slice of the orchestrator the HTTP layer needs.
type Pipeline interface {
	Run(ctx context.Context, req types.TranscriptionRequest) (*types.TranscriptionResponse, error)
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(p Pipeline) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	// Register resource routers
	RegisterTranscriptionRoutes(r, p)
	RegisterHealthRoutes(r)
	return r
}
