package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hirehub/backend/internal/auth"
	"github.com/hirehub/backend/internal/dtos"
	"github.com/hirehub/backend/internal/services"
)

type UserHandler struct {
	UserService *services.UserService
}

func NewUserHandler(us *services.UserService) *UserHandler {
	return &UserHandler{UserService: us}
}

// GetUser is GET /api/users/user.
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.UserService.Get(auth.UserIDFromContext(c))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// ApplyJob is POST /api/users/apply-job.
func (h *UserHandler) ApplyJob(c *gin.Context) {
	var req dtos.ApplyJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		return
	}

	_, err := h.UserService.Apply(auth.UserIDFromContext(c), req.JobID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyApplied):
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "You have already applied for this job"})
		case errors.Is(err, services.ErrJobNotFound):
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Job not found"})
		default:
			c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Job Application Submitted Successfully"})
}

// GetApplications is GET /api/users/applications.
func (h *UserHandler) GetApplications(c *gin.Context) {
	applications, err := h.UserService.ListApplications(auth.UserIDFromContext(c))
	if err != nil {
		if errors.Is(err, services.ErrNoApplications) {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "No job applications found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "applications": applications})
}

// UpdateProfile is PUT /api/users/update-profile.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dtos.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		return
	}

	user, err := h.UserService.UpdateProfile(auth.UserIDFromContext(c), &req)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated successfully",
		"user":    user,
	})
}

// UpdateResume is POST /api/users/update-resume (multipart).
func (h *UserHandler) UpdateResume(c *gin.Context) {
	file, err := c.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Please provide a resume file"})
		return
	}

	resume, err := file.Open()
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		return
	}
	defer resume.Close()

	user, err := h.UserService.UpdateResume(c.Request.Context(), auth.UserIDFromContext(c), resume)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Resume updated successfully",
		"user":    user,
	})
}
