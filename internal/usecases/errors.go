package usecases

import (
	"errors"
	"net/http"

	"github.com/trek-vn/sltrek/internal/domains/interfaces"
)

var (
	ErrRecipientRequired  = errors.New("recipient id is required")
	ErrSelfRequest        = errors.New("cannot send connection request to yourself")
	ErrRequestAlreadySent = errors.New("connection request already sent")
	ErrAlreadyConnected   = errors.New("already connected")
	ErrNotAuthorized      = errors.New("not authorized")
	ErrRequestNotPending  = errors.New("connection request is not pending")
	ErrFriendshipNotFound = errors.New("friendship not found")
)

// HTTPStatus maps a service error to the status code the API reports.
// Unrecognized errors are treated as internal.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrRecipientRequired),
		errors.Is(err, ErrSelfRequest),
		errors.Is(err, ErrRequestAlreadySent),
		errors.Is(err, ErrAlreadyConnected),
		errors.Is(err, ErrRequestNotPending):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, ErrFriendshipNotFound),
		errors.Is(err, interfaces.ErrConnectionNotFound),
		errors.Is(err, interfaces.ErrUserProfileNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
