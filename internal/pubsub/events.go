package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// TopicLoginAttempts carries one LoginAttempt per code exchange.
const TopicLoginAttempts = "auth.login.attempts"

// LoginAttempt records the outcome of one code exchange. It never carries
// the authorization code itself.
type LoginAttempt struct {
	ID      string    `json:"id"`
	Outcome string    `json:"outcome"`
	Error   string    `json:"error,omitempty"`
	At      time.Time `json:"at"`
}

// NewLoginAttempt stamps an attempt with a fresh id and the current time.
func NewLoginAttempt(outcome string, err error) LoginAttempt {
	a := LoginAttempt{
		ID:      uuid.NewString(),
		Outcome: outcome,
		At:      time.Now().UTC(),
	}
	if err != nil {
		a.Error = err.Error()
	}
	return a
}

// PublishLoginAttempt encodes the attempt and publishes it on TopicLoginAttempts.
func PublishLoginAttempt(ctx context.Context, pub Publisher, attempt LoginAttempt) error {
	payload, err := json.Marshal(attempt)
	if err != nil {
		return fmt.Errorf("failed to marshal login attempt: %w", err)
	}
	return pub.Publish(ctx, Message{
		Topic:    TopicLoginAttempts,
		Payload:  payload,
		Metadata: map[string]string{"outcome": attempt.Outcome},
	})
}

// SubscribeLoginAttempts decodes every LoginAttempt and passes it to fn.
func SubscribeLoginAttempts(ctx context.Context, sub Subscriber, fn func(context.Context, LoginAttempt) error) error {
	return sub.Subscribe(ctx, TopicLoginAttempts, func(ctx context.Context, msg Message) error {
		var attempt LoginAttempt
		if err := json.Unmarshal(msg.Payload, &attempt); err != nil {
			return fmt.Errorf("failed to decode login attempt: %w", err)
		}
		return fn(ctx, attempt)
	})
}

// LogLoginAttempts is an audit subscriber writing each attempt at info level.
func LogLoginAttempts(logger *slog.Logger) func(context.Context, LoginAttempt) error {
	return func(_ context.Context, a LoginAttempt) error {
		logger.Info("Login attempt", "attempt_id", a.ID, "outcome", a.Outcome, "at", a.At)
		return nil
	}
}
