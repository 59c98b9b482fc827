package shared

import (
	"github.com/murkotick/grocery-pos-service/internal/app/cart/contracts"
)

// CheckOwner returns ErrSessionForbidden unless the session was opened by userID.
func CheckOwner(s *contracts.Session, userID int64) error {
	if s.UserID != userID {
		return contracts.ErrSessionForbidden
	}
	return nil
}
