package auth

import "context"

// Completion receives the authorization code once the provider-hosted flow ends.
type Completion func(ctx context.Context, code string)

// LoginStart tells the caller where to send the visitor and which state
// value identifies this attempt. Both are empty for flows that complete inline.
type LoginStart struct {
	RedirectURL string
	State       string
}

// LoginFlow is the identity-provider capability: it starts a hosted login and
// later invokes complete with the authorization code.
type LoginFlow interface {
	StartLogin(ctx context.Context, complete Completion) (LoginStart, error)
}

// Finisher is implemented by flows whose completion arrives on a separate
// request, such as an OAuth redirect callback.
type Finisher interface {
	Finish(ctx context.Context, state, code string) error
}
