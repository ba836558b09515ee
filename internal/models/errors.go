package models

import "errors"

// Custom errors
var (
	ErrMalformedGameID = errors.New("malformed game id")
	ErrInvalidDate     = errors.New("invalid game date")
	ErrEmptyRecords    = errors.New("no game records")
)
