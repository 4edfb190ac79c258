package apple

import "errors"

var (
	// ErrInvalidFormat means the text has too few lines to be any report.
	ErrInvalidFormat = errors.New("invalid report format")
	// ErrNoTransactionData means the tab-delimited layout was selected but no
	// transaction header row exists.
	ErrNoTransactionData = errors.New("no transaction data found")
)
