package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"marketcart/internal/domain"
)

// fallbackMessage is surfaced when a failure response carries no usable
// message of its own.
const fallbackMessage = "request failed"

// Error is a non-success outcome from the remote collection, carrying the
// human-readable message from the response body.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("remote: %s (status %d)", e.Message, e.Status)
}

// envelope is the response shape shared by the cart and wishlist endpoints.
// Failures populate either message or error; wishlist responses additionally
// carry a summary.
type envelope[T any] struct {
	Success bool                    `json:"success"`
	Data    T                       `json:"data"`
	Message string                  `json:"message"`
	Error   string                  `json:"error"`
	Summary *domain.WishlistSummary `json:"summary"`
}

// call performs one round trip and decodes the envelope into T. Non-success
// responses become a *Error, except duplicate rejections which map to
// domain.ErrAlreadyExists so callers can treat them as idempotent no-ops.
func call[T any](ctx context.Context, c *Client, method, path string, body interface{}) (T, domain.WishlistSummary, error) {
	var zero T
	var summary domain.WishlistSummary

	status, raw, err := c.do(ctx, method, path, body)
	if err != nil {
		return zero, summary, err
	}

	var env envelope[T]
	decodeErr := json.Unmarshal(raw, &env)

	if status < http.StatusOK || status >= http.StatusMultipleChoices || (decodeErr == nil && !env.Success) {
		msg := env.Message
		if msg == "" {
			msg = env.Error
		}
		if msg == "" {
			msg = fallbackMessage
		}
		if status == http.StatusConflict {
			return zero, summary, fmt.Errorf("%s: %w", msg, domain.ErrAlreadyExists)
		}
		if status == http.StatusNotFound {
			return zero, summary, fmt.Errorf("%s: %w", msg, domain.ErrNotFound)
		}
		return zero, summary, &Error{Status: status, Message: msg}
	}
	if decodeErr != nil {
		return zero, summary, fmt.Errorf("decode response: %w", decodeErr)
	}

	if env.Summary != nil {
		summary = *env.Summary
	}
	return env.Data, summary, nil
}
