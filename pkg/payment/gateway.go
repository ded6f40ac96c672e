package payment

import "context"

// LineItem is one payable line sent to the gateway. UnitAmount is the
// effective price per unit in minor currency units.
type LineItem struct {
	Name       string `json:"name"`
	ImageURL   string `json:"image_url,omitempty"`
	UnitAmount int64  `json:"unit_amount"`
	Quantity   int    `json:"quantity"`
}

// SessionRequest describes one checkout session. Currency is a single
// deployment-wide value, not per-item.
type SessionRequest struct {
	Currency   string     `json:"currency"`
	LineItems  []LineItem `json:"line_items"`
	SuccessURL string     `json:"success_url"`
	CancelURL  string     `json:"cancel_url"`
	OwnerID    string     `json:"owner_id"`
}

// Gateway creates payment sessions with the external processor. The call is
// opaque from the caller's point of view: line items in, redirect URL out.
type Gateway interface {
	CreateSession(ctx context.Context, req SessionRequest) (string, error)
}
