package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")
	ErrUnauthenticated  = goerr.New("unauthenticated")
	ErrNoProfile        = goerr.New("no linked account profile")
	ErrForbidden        = goerr.New("forbidden")
)
