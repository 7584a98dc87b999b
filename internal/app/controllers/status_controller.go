package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pcaproject/timesheet-server/internal/app/models/dto"
)

// ServiceVersion is reported by the status endpoint.
const ServiceVersion = "1.0.0"

// StatusController reports service health
type StatusController struct {
	startedAt time.Time
}

// NewStatusController creates a new StatusController
func NewStatusController() *StatusController {
	return &StatusController{
		startedAt: time.Now(),
	}
}

// GetStatus reports that the service is up
// @Summary Service status
// @Description Returns the service name, version and uptime
// @Tags status
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.StatusData} "Service is healthy"
// @Router /status [get]
func (c *StatusController) GetStatus(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.StatusData{
		Service: "timesheet-server",
		Version: ServiceVersion,
		Uptime:  time.Since(c.startedAt).Round(time.Second).String(),
	}, "Service is healthy"))
}
