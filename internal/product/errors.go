package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductExists   = errors.New("product id already exists")
	ErrMissingParams   = errors.New("missing required parameters")
)
