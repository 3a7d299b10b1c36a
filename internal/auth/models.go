package auth

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	UserID              string         `gorm:"primaryKey" json:"user_id"`
	Email               string         `gorm:"uniqueIndex;not null" json:"email"`
	Name                string         `json:"name"`
	Password            string         `json:"password,omitempty" gorm:"-"`
	HashedPassword      string         `json:"-"`
	OnboardingCompleted bool           `gorm:"default:false" json:"onboarding_completed"`
	Profile             Profile        `gorm:"foreignKey:UserID" json:"profile"`
	Medical             MedicalProfile `gorm:"foreignKey:UserID" json:"medical"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

type Profile struct {
	UserID      string  `gorm:"primaryKey" json:"-"`
	DateOfBirth string  `json:"date_of_birth"`
	Sex         string  `json:"sex"`
	HeightCm    float64 `json:"height_cm"`
	WeightKg    float64 `json:"weight_kg"`
	Timezone    string  `json:"timezone"`
}

type MedicalProfile struct {
	UserID      string         `gorm:"primaryKey" json:"-"`
	Allergies   pq.StringArray `gorm:"type:text[]" json:"allergies"`
	Medications pq.StringArray `gorm:"type:text[]" json:"medications"`
	Notes       string         `json:"notes"`
}

func (User) TableName() string           { return "app_auth.users" }
func (Profile) TableName() string        { return "app_auth.profiles" }
func (MedicalProfile) TableName() string { return "app_auth.medical_profiles" }

// Read-only projections of the wellness tables, preloaded onto the enriched
// identity so notification routes don't make a second round trip.
type ActiveCondition struct {
	ID       string `gorm:"primaryKey" json:"id"`
	UserID   string `json:"-"`
	Name     string `json:"name"`
	Severity string `json:"severity"`
	Active   bool   `json:"-"`
}

type MemoryRecord struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	UserID     string    `json:"-"`
	Key        string    `json:"key"`
	Value      string    `json:"value"`
	LastUsedAt time.Time `json:"last_used_at"`
}

func (ActiveCondition) TableName() string { return "wellness.conditions" }
func (MemoryRecord) TableName() string    { return "wellness.memories" }

// EnrichedUser is the identity shape returned by ResolveEnrichedIdentity.
type EnrichedUser struct {
	User
	Conditions []ActiveCondition `gorm:"foreignKey:UserID" json:"conditions"`
	Memories   []MemoryRecord    `gorm:"foreignKey:UserID" json:"memories"`
}
