package errorvalues

import "errors"

var (
	ErrAthleteNotFound = errors.New("athlete doesn't exist")
	ErrInvalidScores   = errors.New("energy and mood must be integers from 1 to 10")
	ErrCacheMiss       = errors.New("no cached value")
)
