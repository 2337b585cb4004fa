package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hirehub/backend/internal/webhook"
)

// WebhookHandler receives signed account lifecycle events from the identity
// provider and mirrors them into the local user collection.
type WebhookHandler struct {
	Verifier webhook.Verifier
	Syncer   *webhook.Syncer
}

func NewWebhookHandler(verifier webhook.Verifier, syncer *webhook.Syncer) *WebhookHandler {
	return &WebhookHandler{Verifier: verifier, Syncer: syncer}
}

// Handle is POST /webhooks. Unlike the API routes, guard clauses here use
// real status codes so the provider retries failed deliveries.
func (h *WebhookHandler) Handle(c *gin.Context) {
	if h.Verifier == nil {
		log.Println("webhook secret not configured")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Webhook secret not configured"})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Unreadable body"})
		return
	}

	if c.GetHeader("svix-id") == "" || c.GetHeader("svix-timestamp") == "" || c.GetHeader("svix-signature") == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing required svix headers"})
		return
	}

	if err := h.Verifier.Verify(body, c.Request.Header); err != nil {
		log.Printf("webhook verification failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Webhook verification failed"})
		return
	}

	var event webhook.Event
	if err := json.Unmarshal(body, &event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid event payload"})
		return
	}

	switch event.Type {
	case webhook.EventUserCreated:
		if event.Data.ID == "" || len(event.Data.EmailAddresses) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing required user data"})
			return
		}
		if err := h.Syncer.CreateUser(event.Data); err != nil {
			log.Printf("webhook create user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Database error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "User created successfully"})

	case webhook.EventUserUpdated:
		if err := h.Syncer.UpdateUser(event.Data); err != nil {
			log.Printf("webhook update user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Database error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "User updated successfully"})

	case webhook.EventUserDeleted:
		if err := h.Syncer.DeleteUser(event.Data.ID); err != nil {
			log.Printf("webhook delete user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Database error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted successfully"})

	default:
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Event type not handled"})
	}
}
