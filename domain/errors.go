package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// ErrConflict is a write that lost to a concurrent one. Safe to retry
	// with the same input, nothing was written.
	ErrConflict = errors.New("concurrent update conflict")

	// bid admission rejections, terminal for the given input
	ErrBidTooLow     = errors.New("bid below minimum")
	ErrAuctionClosed = errors.New("auction is not open for bidding")
	ErrSelfBid       = errors.New("seller cannot bid on own auction")

	// ErrInvalidTransition will throw when an auction is not in the source
	// state a transition requires
	ErrInvalidTransition = errors.New("invalid auction state transition")
	// ErrAlreadyProcessed marks an idempotent no-op, e.g. ending an auction
	// that is already ended
	ErrAlreadyProcessed = errors.New("already processed")

	ErrReasonRequired = errors.New("rejection reason is required")
	ErrNotSeller      = errors.New("only the seller may perform this action")
)
