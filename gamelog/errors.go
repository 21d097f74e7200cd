package gamelog

import "errors"

var (
	// ErrEmptyInput is returned when a game log contains no content at all.
	ErrEmptyInput = errors.New("gamelog: empty input")
	// ErrInsufficientLines is returned when a game log has fewer than a
	// header line and one data line.
	ErrInsufficientLines = errors.New("gamelog: expected a header and at least one data line")
	// ErrNoValidMoments is returned when no data line survives parsing.
	ErrNoValidMoments = errors.New("gamelog: no valid moments found")
	// ErrInvalidTimestamp is returned for timecodes that are not three
	// colon-delimited non-negative integer fields.
	ErrInvalidTimestamp = errors.New("gamelog: invalid timestamp")
	// ErrInvalidRange is returned when an edit or insert would produce an
	// outpoint at or before its inpoint.
	ErrInvalidRange = errors.New("gamelog: outpoint must be after inpoint")
	// ErrUnknownPlayer is returned when an edit or insert references a
	// player id absent from the player directory.
	ErrUnknownPlayer = errors.New("gamelog: unknown player id")
	// ErrMomentNotFound is returned when a moment key has no match in the store.
	ErrMomentNotFound = errors.New("gamelog: moment not found")
)
