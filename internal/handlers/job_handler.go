package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hirehub/backend/internal/services"
)

type JobHandler struct {
	JobService *services.JobService
}

func NewJobHandler(js *services.JobService) *JobHandler {
	return &JobHandler{JobService: js}
}

// ListJobs is GET /api/jobs. Optional title and location query params narrow
// the result; a store failure surfaces as an empty list with success false.
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.JobService.ListVisible(c.Query("title"), c.Query("location"))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error(), "jobs": []any{}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "jobs": jobs})
}

// GetJob is GET /api/jobs/:id.
func (h *JobHandler) GetJob(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Job not found"})
		return
	}

	job, err := h.JobService.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Job not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "job": job})
}
