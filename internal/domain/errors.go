package domain

import "errors"

var (
	ErrEmptyScreenshot           = errors.New("screenshot content is empty")
	ErrUnsupportedMediaType      = errors.New("unsupported media type")
	ErrExtractionUnavailable     = errors.New("extraction unavailable")
	ErrExtractionFailed          = errors.New("extraction failed")
	ErrInvoiceNotFound           = errors.New("invoice not found")
	ErrInvoiceNotAwaitingPayment = errors.New("invoice not awaiting payment")
	ErrDuplicateCommand          = errors.New("duplicate command")
)
