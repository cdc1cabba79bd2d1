package errors

import (
	"errors"
	"fmt"
)

var (
	ErrEncoding         = errors.New("payload encoding failed")
	ErrMalformedToken   = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrExpiredToken     = errors.New("token expired")
	// ErrInvalidToken is the only token error that leaves the service boundary.
	ErrInvalidToken = errors.New("invalid token")

	ErrInsufficientCapability = errors.New("insufficient capability")
	ErrUnauthorized           = errors.New("unauthorized")

	ErrPostNotFound     = errors.New("post not found")
	ErrTermNotFound     = errors.New("term not found")
	ErrTermExists       = errors.New("term already exists")
	ErrTaxonomyNotFound = errors.New("taxonomy not found")
	ErrMenuNotFound     = errors.New("menu not found")
	ErrUnknownEvent     = errors.New("unknown content event")
	ErrInvalidInput     = fmt.Errorf("invalid input")
)
