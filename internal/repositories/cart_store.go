package repositories

import (
	"context"

	"ecompro/internal/models"
)

// CartStore is the key-value persistence for carts: one whole record per
// owner, replaced or deleted as a unit. There is no field-level atomicity;
// every mutation is read-modify-replace, which is also why concurrent
// mutations to the same owner can lose updates (see DESIGN.md).
//
// Get returns (nil, nil) when no cart exists for the owner; a missing cart
// is a valid state, not an error.
type CartStore interface {
	Get(ctx context.Context, ownerID string) (*models.Cart, error)
	Set(ctx context.Context, ownerID string, cart *models.Cart) error
	Delete(ctx context.Context, ownerID string) error
}
