package utils

import (
	"context"
)

type contextKey string

const ContextUserIDKey contextKey = "userID"
const ContextAdminIDKey contextKey = "adminID"

func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID := ctx.Value(ContextUserIDKey)
	userIDStr, ok := userID.(string)
	return userIDStr, ok
}

func GetAdminIDFromContext(ctx context.Context) (string, bool) {
	adminID := ctx.Value(ContextAdminIDKey)
	adminIDStr, ok := adminID.(string)
	return adminIDStr, ok
}
