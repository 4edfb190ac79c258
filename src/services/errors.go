package services

import "errors"

var (
	ErrParsingFailed    = errors.New("failed to parse report")
	ErrEmptyReport      = errors.New("report is empty")
	ErrSettingsNotFound = errors.New("business settings not configured")
)
