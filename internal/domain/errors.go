package domain

import "github.com/pkg/errors"

var (
	ErrUnknownListing = errors.New("unknown listing")
	ErrEmptyDocument  = errors.New("empty document")
	ErrHostNotAllowed = errors.New("url does not belong to an allowed host")
	ErrInvalidProfile = errors.New("invalid profile")
)
