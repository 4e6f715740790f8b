package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"clipscribe/orchestrator"
	"clipscribe/types"
)

// RegisterTranscriptionRoutes registers the transcription endpoints.
func RegisterTranscriptionRoutes(r *gin.Engine, p Pipeline) {
	ctrl := &transcriptionController{pipeline: p}
	r.GET("/", ctrl.handleRoot)
	r.POST("/api/transcribe", ctrl.handleTranscribe)
}

type transcriptionController struct {
	pipeline Pipeline
}

func (ctrl *transcriptionController) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Video Transcriber API!"})
}

// handleTranscribe runs one synchronous transcription request end to end.
func (ctrl *transcriptionController) handleTranscribe(c *gin.Context) {
	var req types.TranscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := ctrl.pipeline.Run(c.Request.Context(), req)
	if err != nil {
		status, msg := statusFor(err)
		// Full detail stays in the log; downstream and internal failures
		// reach the caller as a generic message only.
		log.Printf("transcribe request failed: %v", err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// statusFor maps a pipeline error to an HTTP status and caller-facing
// message: 400 for input errors (verbatim), 502 for downstream tool/model
// failures (generic), 500 otherwise.
func statusFor(err error) (int, string) {
	var se *orchestrator.StageError
	if errors.As(err, &se) {
		switch se.Class {
		case orchestrator.ClassInput:
			return http.StatusBadRequest, se.Err.Error()
		case orchestrator.ClassUpstream:
			switch se.Stage {
			case "fetch":
				return http.StatusBadGateway, "Download failed."
			case "transcribe":
				return http.StatusBadGateway, "Transcription failed."
			}
			return http.StatusBadGateway, "Upstream processing failed."
		}
	}
	return http.StatusInternalServerError, "Unexpected processing error."
}
