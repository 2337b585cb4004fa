package webhook

import (
	"strings"

	"github.com/hirehub/backend/internal/models"
	"gorm.io/gorm"
)

// Event kinds the identity provider delivers.
const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
	EventUserDeleted = "user.deleted"
)

// Event is the envelope of an identity provider delivery.
type Event struct {
	Type string    `json:"type"`
	Data EventData `json:"data"`
}

type EventData struct {
	ID             string         `json:"id"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	ImageURL       string         `json:"image_url"`
	EmailAddresses []EmailAddress `json:"email_addresses"`
}

type EmailAddress struct {
	EmailAddress string `json:"email_address"`
}

func (d EventData) primaryEmail() string {
	if len(d.EmailAddresses) == 0 {
		return ""
	}
	return d.EmailAddresses[0].EmailAddress
}

func (d EventData) fullName() string {
	return strings.TrimSpace(d.FirstName + " " + d.LastName)
}

// Syncer applies identity provider account lifecycle events to the local
// user collection.
type Syncer struct {
	DB *gorm.DB
}

func NewSyncer(db *gorm.DB) *Syncer {
	return &Syncer{DB: db}
}

func (s *Syncer) CreateUser(data EventData) error {
	user := &models.User{
		ID:     data.ID,
		Email:  data.primaryEmail(),
		Name:   data.fullName(),
		Image:  data.ImageURL,
		Resume: "",
	}
	return s.DB.Create(user).Error
}

func (s *Syncer) UpdateUser(data EventData) error {
	return s.DB.Model(&models.User{}).
		Where("id = ?", data.ID).
		Updates(map[string]interface{}{
			"email": data.primaryEmail(),
			"name":  data.fullName(),
			"image": data.ImageURL,
		}).Error
}

func (s *Syncer) DeleteUser(id string) error {
	return s.DB.Delete(&models.User{}, "id = ?", id).Error
}
