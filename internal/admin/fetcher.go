package admin

import (
	"github.com/wellnest-app/wellnest-backend/internal/db"
	"github.com/wellnest-app/wellnest-backend/internal/utils"
)

type SessionInfo struct{}

func (si SessionInfo) FindSessionByID(id string) (utils.SessionData, error) {
	var session AdminSession

	err := db.DB.First(&session, "session_id = ?", id).Error
	if err != nil {
		return utils.SessionData{}, err
	}

	return utils.SessionData{
		AdminID:   session.AdminID,
		ExpiresAt: session.ExpiresAt,
	}, nil
}
