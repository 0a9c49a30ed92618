package types

import "errors"

// Domain errors for record validation.
var (
	ErrMissingRecordID = errors.New("record id is required")
	ErrUnknownSource   = errors.New("unknown source tag")
)
