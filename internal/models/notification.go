package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification is an in-app message for a single user, optionally pointing
// at the entity that caused it.
type Notification struct {
	ID                string    `gorm:"primaryKey" json:"id"`
	UserID            string    `gorm:"index" json:"userId"`
	Message           string    `json:"message"`
	RelatedEntityID   *string   `json:"relatedEntityId"`
	RelatedEntityType *string   `json:"relatedEntityType"`
	IsRead            bool      `json:"isRead"`
	CreatedAt         time.Time `json:"createdAt"`
}

// BeforeCreate generates a UUID for the notification if the ID is not set yet.
func (n *Notification) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return
}
