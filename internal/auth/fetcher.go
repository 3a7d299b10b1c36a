package auth

import (
	"github.com/wellnest-app/wellnest-backend/internal/db"
)

// UserFetcher is the lookup seam the resolver depends on, so resolver tests
// can run without a database.
type UserFetcher interface {
	FindByEmail(email string) (*User, error)
	FindByID(id string) (*User, error)
	FindEnrichedByEmail(email string) (*EnrichedUser, error)
	FindEnrichedByID(id string) (*EnrichedUser, error)
}

type UserInfo struct{}

func (ui UserInfo) FindByEmail(email string) (*User, error) {
	var user User
	err := db.DB.Preload("Profile").Preload("Medical").
		First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (ui UserInfo) FindByID(id string) (*User, error) {
	var user User
	err := db.DB.Preload("Profile").Preload("Medical").
		First(&user, "user_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (ui UserInfo) FindEnrichedByEmail(email string) (*EnrichedUser, error) {
	var user User
	err := db.DB.Preload("Profile").Preload("Medical").
		First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return ui.enrich(user)
}

func (ui UserInfo) FindEnrichedByID(id string) (*EnrichedUser, error) {
	var user User
	err := db.DB.Preload("Profile").Preload("Medical").
		First(&user, "user_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return ui.enrich(user)
}

func (ui UserInfo) enrich(user User) (*EnrichedUser, error) {
	enriched := EnrichedUser{User: user}

	if err := db.DB.Find(&enriched.Conditions, "user_id = ? AND active = ?", user.UserID, true).Error; err != nil {
		return nil, err
	}
	if err := db.DB.Find(&enriched.Memories, "user_id = ?", user.UserID).Error; err != nil {
		return nil, err
	}

	return &enriched, nil
}
