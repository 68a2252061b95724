package models

import "errors"

var (
	ErrNotFound        = errors.New("record not found")
	ErrValidation      = errors.New("validation failed")
	ErrInvalidQuantity = errors.New("stock quantity cannot go negative")
	ErrConflict        = errors.New("concurrent stock update, please retry")
	ErrDuplicate       = errors.New("record already exists")
)
