package contracts

import (
	"context"
	"errors"
	"time"

	"github.com/murkotick/grocery-pos-service/internal/app/cart/domain"
)

var (
	ErrSessionNotFound  = errors.New("cart session not found")
	ErrSessionForbidden = errors.New("cart session belongs to another user")
)

// Session is one open cart owned by a cashier.
type Session struct {
	ID        string
	UserID    int64
	Cart      *domain.Cart
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SessionStore keeps open carts between requests. Callbacks run while the
// session is locked; they must not retain the Session after returning.
type SessionStore interface {
	Create(kind domain.Kind, userID int64) (*Session, error)
	Update(ctx context.Context, id string, fn func(*Session) error) error
	View(ctx context.Context, id string, fn func(*Session) error) error
	Delete(id string) bool
}
