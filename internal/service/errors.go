package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidPayload      = errors.New("invalid progress payload")
	ErrWrongPassword       = errors.New("invalid credentials")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrUnsupportedMediaType = errors.New("unsupported evidence file type")
)
