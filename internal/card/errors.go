package card

import "github.com/pkg/errors"

var (
	ErrInvalidIndex      = errors.New("invalid card index")
	ErrInvalidRank       = errors.New("invalid rank")
	ErrInvalidSuit       = errors.New("invalid suit")
	ErrCardCountMismatch = errors.New("card count mismatch")
)
