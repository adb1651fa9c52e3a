package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nfrund/voxnote/internal/domain"
	"github.com/nfrund/voxnote/internal/logging"
	"github.com/nfrund/voxnote/internal/pubsub"
)

// SuccessFunc runs once after the backend confirms a login.
type SuccessFunc func(ctx context.Context)

// NoopSuccess is the default success hook. What happens after a login
// (redirect, session update) belongs to whoever embeds the handoff.
func NoopSuccess(context.Context) {}

// Handoff relays one authorization code to the backend and interprets the
// answer. It never retries and never stores the code.
type Handoff struct {
	exchanger domain.CodeExchanger
	onSuccess SuccessFunc
	publisher pubsub.Publisher
	logger    *slog.Logger
}

// HandoffOption configures a Handoff.
type HandoffOption func(*Handoff)

// WithSuccess sets the hook invoked after a confirmed login.
func WithSuccess(fn SuccessFunc) HandoffOption {
	return func(h *Handoff) {
		if fn != nil {
			h.onSuccess = fn
		}
	}
}

// WithPublisher publishes a LoginAttempt after every exchange.
func WithPublisher(pub pubsub.Publisher) HandoffOption {
	return func(h *Handoff) { h.publisher = pub }
}

// WithLogger pins the logger. Without it the request-scoped logger is used.
func WithLogger(logger *slog.Logger) HandoffOption {
	return func(h *Handoff) { h.logger = logger }
}

// NewHandoff creates a Handoff around exchanger.
func NewHandoff(exchanger domain.CodeExchanger, opts ...HandoffOption) *Handoff {
	h := &Handoff{
		exchanger: exchanger,
		onSuccess: NoopSuccess,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Exchange submits code to the backend exactly once and classifies the answer.
// Failures are logged once at error level and returned; nothing panics out.
func (h *Handoff) Exchange(ctx context.Context, code string) domain.ExchangeResult {
	logger := h.loggerFor(ctx)

	var result domain.ExchangeResult
	loggedIn, err := h.callExchanger(ctx, code)
	switch {
	case err != nil:
		if !errors.Is(err, domain.ErrExchangeFailed) {
			err = fmt.Errorf("%w: %w", domain.ErrExchangeFailed, err)
		}
		result = domain.ExchangeResult{Outcome: domain.OutcomeFailed, Err: err}
		logger.Error("Authorization code exchange failed", "error", err)
	case !loggedIn:
		result = domain.ExchangeResult{Outcome: domain.OutcomeRejected, Err: domain.ErrLoginRejected}
		logger.Error("Login failed", "error", domain.ErrLoginRejected)
	default:
		result = domain.ExchangeResult{Outcome: domain.OutcomeLoggedIn}
		logger.Debug("User logged in")
		h.runSuccess(ctx, logger)
	}

	h.publish(ctx, logger, result)
	return result
}

// Complete is the provider completion callback. The result is only logged.
func (h *Handoff) Complete(ctx context.Context, code string) {
	_ = h.Exchange(ctx, code)
}

func (h *Handoff) callExchanger(ctx context.Context, code string) (loggedIn bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			loggedIn = false
			err = fmt.Errorf("exchanger panicked: %v", r)
		}
	}()
	return h.exchanger.Exchange(ctx, code)
}

// runSuccess keeps a panicking hook from escaping the completion callback.
// The login itself stays successful.
func (h *Handoff) runSuccess(ctx context.Context, logger *slog.Logger) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Login success hook panicked", "panic", r)
		}
	}()
	h.onSuccess(ctx)
}

func (h *Handoff) publish(ctx context.Context, logger *slog.Logger, result domain.ExchangeResult) {
	if h.publisher == nil {
		return
	}
	attempt := pubsub.NewLoginAttempt(result.Outcome.String(), result.Err)
	if err := pubsub.PublishLoginAttempt(ctx, h.publisher, attempt); err != nil {
		logger.Warn("Failed to publish login attempt", "error", err)
	}
}

func (h *Handoff) loggerFor(ctx context.Context) *slog.Logger {
	if h.logger != nil {
		return h.logger
	}
	return logging.FromContext(ctx)
}
