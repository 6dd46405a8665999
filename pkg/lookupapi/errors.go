package lookupapi

import "errors"

var (
	ErrNilLookuper   = errors.New("lookup backend is nil")
	ErrEmptyQuery    = errors.New("user agent is empty")
	ErrEmptyBatch    = errors.New("user_agents must not be empty")
	ErrBatchTooLarge = errors.New("too many user agents in batch")
	ErrInvalidBody   = errors.New("invalid request body")
	ErrBodyTooLarge  = errors.New("request body too large")
)
