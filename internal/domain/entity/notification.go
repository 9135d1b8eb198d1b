package entity

import "time"

type NotificationType string

const (
	NotificationTypeBlog    NotificationType = "blog"
	NotificationTypeComment NotificationType = "comment"
	NotificationTypeLike    NotificationType = "like"
	NotificationTypeAdmin   NotificationType = "admin"
)

// Notification is addressed to a single user.
type Notification struct {
	ID        string                 `json:"id"`
	UserID    string                 `json:"userId"`
	Type      NotificationType       `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	IsRead    bool                   `json:"isRead"`
	CreatedAt time.Time              `json:"createdAt"`
	Data      map[string]interface{} `json:"data,omitempty"`
}
