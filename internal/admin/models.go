package admin

import "time"

type AdminSession struct {
	SessionID string    `gorm:"primaryKey" json:"-"`
	AdminID   string    `gorm:"not null;unique" json:"-"`
	ExpiresAt time.Time `gorm:"not null"`
}

type AdminUser struct {
	AdminID        string       `gorm:"primaryKey" json:"admin_id"`
	Username       string       `gorm:"uniqueIndex;not null" json:"username"`
	Password       string       `json:"password,omitempty" gorm:"-"`
	HashedPassword string       `json:"-"`
	Active         bool         `gorm:"default:true" json:"active"`
	Session        AdminSession `gorm:"foreignKey:AdminID" json:"-"`
}

func (AdminSession) TableName() string { return "app_admin.sessions" }
func (AdminUser) TableName() string    { return "app_admin.users" }
