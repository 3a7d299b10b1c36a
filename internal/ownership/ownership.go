package ownership

import "errors"

// ErrNotFound is returned for a missing resource AND for an ownership
// mismatch. Merging the two keeps a caller probing another user's ids from
// learning whether a record exists. Do not split this into a Forbidden case.
var ErrNotFound = errors.New("not found")

// Assert checks that the resource's owner is the resolved user. Handlers
// fetch the record by id alone first, then call Assert before acting on it.
func Assert(resourceOwnerID, userID string) error {
	if resourceOwnerID == "" || userID == "" || resourceOwnerID != userID {
		return ErrNotFound
	}
	return nil
}
