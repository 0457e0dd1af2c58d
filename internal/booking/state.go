package booking

import "fmt"

// State selects a subset of bookings for listing.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StateFuture   State = "FUTURE"
	StatePast     State = "PAST"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// ParseState maps the query keyword to a State. Empty means ALL; matching is
// case-sensitive. There is no APPROVED filter.
func ParseState(s string) (State, error) {
	switch st := State(s); st {
	case "":
		return StateAll, nil
	case StateAll, StateCurrent, StateFuture, StatePast, StateWaiting, StateRejected:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedState, s)
	}
}
