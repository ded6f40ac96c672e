package repositories

import "errors"

// Sentinel errors shared by all repository implementations. Callers match
// them with errors.Is; implementations wrap them with fmt.Errorf("...: %w").
var (
	ErrProductNotFound     = errors.New("product not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrReviewNotFound      = errors.New("review not found")
	ErrBannerNotFound      = errors.New("banner not found")
	ErrFlashSaleNotFound   = errors.New("flash sale not found")
	ErrDuplicatePaymentRef = errors.New("order with this payment reference already exists")
)
