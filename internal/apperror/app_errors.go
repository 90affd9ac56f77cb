package apperror

import "errors"

var (
	ErrInvalidMove          = errors.New("invalid move")
	ErrGameFinished         = errors.New("game is already finished")
	ErrSessionNotFound      = errors.New("session not found")
	ErrNotificationDelivery = errors.New("notification delivery failed")
	ErrNotFound             = errors.New("not found")
)
