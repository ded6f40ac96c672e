package services

import "errors"

// Typed failures surfaced by the cart, checkout and order services. Every
// operation recovers internal faults into one of these (or a repository
// sentinel) at its boundary; nothing panics across the service edge.
var (
	// ErrCartNotFound is returned when an operation targets a cart that
	// does not exist.
	ErrCartNotFound = errors.New("cart not found")
	// ErrLineNotFound is returned when a cart exists but holds no line for
	// the targeted product.
	ErrLineNotFound = errors.New("cart line not found")
	// ErrEmptyCart is returned when checkout or materialization is
	// attempted with nothing to pay for.
	ErrEmptyCart = errors.New("cart is empty, nothing to check out")
	// ErrPaymentSession is returned when the payment gateway fails to
	// produce a session; the cart is left untouched.
	ErrPaymentSession = errors.New("failed to create payment session")
	// ErrOrderPersistence is returned when the order write fails during
	// materialization; the cart is deliberately not cleared.
	ErrOrderPersistence = errors.New("failed to persist order")
	// ErrDuplicateReview is returned when an owner reviews the same
	// product twice.
	ErrDuplicateReview = errors.New("product already reviewed by this user")
)
