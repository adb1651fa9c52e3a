package domain

import "context"

// AuthorizationExchange is the one-shot payload relayed to the backend.
// It is built from the provider callback, sent once, and discarded.
type AuthorizationExchange struct {
	Code string `json:"code"`
}

// Outcome classifies a single code exchange.
type Outcome int

const (
	// OutcomeFailed means the exchange did not complete (network, status, body).
	OutcomeFailed Outcome = iota
	// OutcomeRejected means the backend answered userLoggedIn=false.
	OutcomeRejected
	// OutcomeLoggedIn means the backend answered userLoggedIn=true.
	OutcomeLoggedIn
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLoggedIn:
		return "logged_in"
	case OutcomeRejected:
		return "rejected"
	default:
		return "failed"
	}
}

// ExchangeResult is the typed result of one exchange. Err is nil only when
// Outcome is OutcomeLoggedIn.
type ExchangeResult struct {
	Outcome Outcome
	Err     error
}

// LoggedIn reports whether the backend accepted the code.
func (r ExchangeResult) LoggedIn() bool {
	return r.Outcome == OutcomeLoggedIn
}

// CodeExchanger submits an authorization code to the backend and reports the
// backend's "user logged in" answer.
type CodeExchanger interface {
	Exchange(ctx context.Context, code string) (bool, error)
}
