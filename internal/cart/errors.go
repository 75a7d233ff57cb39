package cart

import "errors"

var (
	ErrItemNotFound    = errors.New("cart item not found")
	ErrProductNotFound = errors.New("product not found")
	ErrMissingParams   = errors.New("missing required parameters")
)
