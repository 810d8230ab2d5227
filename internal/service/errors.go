package service

import "errors"

var (
	ErrSessionNotFound        = errors.New("session not found")
	ErrInvalidTransition      = errors.New("action not allowed in the current view")
	ErrValidation             = errors.New("invalid profile input")
	ErrRecommendationNotFound = errors.New("recommendation not found")
	ErrEmptyMessage           = errors.New("message is empty")
	ErrChatBusy               = errors.New("advisor is still answering the previous message")
	ErrProviderUnavailable    = errors.New("AI provider request failed")
)
