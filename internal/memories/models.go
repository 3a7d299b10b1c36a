package memories

import "time"

// Memory is a per-user key/value record the chat features use to personalize
// replies. (user_id, key) is unique; writes are upserts.
type Memory struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	UserID     string    `gorm:"uniqueIndex:idx_user_key;not null" json:"user_id"`
	Key        string    `gorm:"uniqueIndex:idx_user_key;not null" json:"key"`
	Value      string    `json:"value"`
	LastUsedAt time.Time `json:"last_used_at"`
}

func (Memory) TableName() string {
	return "wellness.memories"
}
