package ownership_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wellnest-app/wellnest-backend/internal/ownership"
)

func TestAssert_Match(t *testing.T) {
	assert.NoError(t, ownership.Assert("user-1", "user-1"))
}

// Mismatch and absence must be the same error so a probing caller can't tell
// "exists but isn't yours" from "doesn't exist".
func TestAssert_MismatchIsNotFound(t *testing.T) {
	assert.ErrorIs(t, ownership.Assert("user-1", "user-2"), ownership.ErrNotFound)
}

func TestAssert_EmptyOwnerIsNotFound(t *testing.T) {
	assert.ErrorIs(t, ownership.Assert("", "user-1"), ownership.ErrNotFound)
	assert.ErrorIs(t, ownership.Assert("user-1", ""), ownership.ErrNotFound)
}
