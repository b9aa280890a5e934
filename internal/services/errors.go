package services

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidKey         = errors.New("invalid api key")
	ErrNotFound           = errors.New("not found")
)
