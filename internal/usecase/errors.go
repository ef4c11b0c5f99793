package usecase

import "errors"

// Business errors surfaced by the services. Storage errors are never wrapped
// into these; they propagate as-is.
var (
	ErrSchedulingConflict = errors.New("screening overlaps another screening in the same room")
	ErrSeatAlreadyTaken   = errors.New("seat already has a valid ticket for this screening")
	ErrScreeningNotFound  = errors.New("screening not found")
	ErrScreeningHasSales  = errors.New("screening has valid tickets sold")
	ErrEmailTaken         = errors.New("email already registered")
	ErrReviewExists       = errors.New("customer already reviewed this film")
	ErrRoomUnavailable    = errors.New("room is not available for scheduling")
	ErrSeatUnavailable    = errors.New("seat cannot be sold for this screening")
	ErrInvalidTimeRange   = errors.New("end time must be after start time")
)
