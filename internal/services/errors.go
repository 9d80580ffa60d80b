// internal/services/errors.go
package services

import "errors"

var (
	ErrShopNotFound    = errors.New("shop not found")
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidID       = errors.New("invalid id")
	ErrValidation      = errors.New("validation failed")
)
