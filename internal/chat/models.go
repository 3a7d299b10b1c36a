package chat

import "time"

type ChatSession struct {
	ID        string        `gorm:"primaryKey" json:"id"`
	UserID    string        `gorm:"index;not null" json:"user_id"`
	Title     string        `json:"title"`
	Messages  []ChatMessage `gorm:"foreignKey:SessionID" json:"messages,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// ChatMessage rows are append-only: created once, never edited.
type ChatMessage struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	SessionID string    `gorm:"index;not null" json:"session_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func (ChatSession) TableName() string {
	return "wellness.chat_sessions"
}

func (ChatMessage) TableName() string {
	return "wellness.chat_messages"
}
