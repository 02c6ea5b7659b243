package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification — всплывающее сообщение для пользователя (toast). Не хранится.
type Notification struct {
	ID          uuid.UUID
	Title       string
	Description string
	CreatedAt   time.Time
}

func NewNotification(title, description string, now time.Time) *Notification {
	return &Notification{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		CreatedAt:   now,
	}
}
