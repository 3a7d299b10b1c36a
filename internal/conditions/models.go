package conditions

import (
	"time"

	"github.com/lib/pq"
)

type Condition struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	UserID    string         `gorm:"index;not null" json:"user_id"`
	Name      string         `json:"name"`
	Severity  string         `json:"severity"`
	Symptoms  pq.StringArray `gorm:"type:text[]" json:"symptoms"`
	Notes     string         `json:"notes"`
	Active    bool           `gorm:"default:true" json:"active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (Condition) TableName() string {
	return "wellness.conditions"
}
