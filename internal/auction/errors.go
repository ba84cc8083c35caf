package auction

import "errors"

// No-op conditions: impossible commands the caller should have prevented.
// The room drops these without notifying anyone.
var (
	ErrNotLive            = errors.New("auction is not live")
	ErrUnknownPlayer      = errors.New("unknown player")
	ErrUnknownTeam        = errors.New("unknown team")
	ErrPlayerNotAvailable = errors.New("player not available")
	ErrNoLeadingBid       = errors.New("no leading bid")
	ErrNothingToUndo      = errors.New("nothing to undo")
	ErrUnsupportedCommand = errors.New("unsupported command")
)

type RejectionCode string

const (
	RejectBelowBase RejectionCode = "below-base-price"
	RejectBudget    RejectionCode = "insufficient-budget"
	RejectReserve   RejectionCode = "reserve-violation"
	RejectStale     RejectionCode = "stale-bid"
)

// BidRejection is a reported bid failure: the state is untouched and only the
// bidding client learns the reason.
type BidRejection struct {
	Code    RejectionCode
	Message string
}

func (r *BidRejection) Error() string { return r.Message }

// AsRejection unwraps err into a BidRejection if it is one.
func AsRejection(err error) (*BidRejection, bool) {
	var rej *BidRejection
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}
