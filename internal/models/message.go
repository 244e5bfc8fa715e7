package models

import (
	"sort"
	"time"
)

type Message struct {
	ID         string    `gorm:"primarykey;type:varchar(64)" json:"id"`
	SenderID   string    `gorm:"type:varchar(64);not null;index" json:"sender_id"`
	ReceiverID string    `gorm:"type:varchar(64);not null;index" json:"receiver_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
	Read       bool      `gorm:"column:is_read;not null;default:false" json:"read"`
}

// Conversation is derived from messages; it is never stored.
type Conversation struct {
	ID           string    `json:"id"`
	Participants []string  `json:"participants"`
	LastMessage  *Message  `json:"last_message,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
	Unread       int       `json:"unread"`
}

// ConversationKey identifies the unordered pair {a, b}.
func ConversationKey(a, b string) string {
	pair := []string{a, b}
	sort.Strings(pair)
	return pair[0] + ":" + pair[1]
}
