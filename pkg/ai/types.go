// Package ai is the gateway to the chat-completions provider. Callers hand
// it a system instruction plus the conversation history and get back either
// assistant text or a classified failure.
package ai

import (
	"context"
	"errors"
	"fmt"
)

// Message roles on the completion wire.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single chat message sent to the provider.
type Message struct {
	Role    string
	Content string
}

// ErrCredentialInvalid reports that the provider rejected the API key. The
// session layer treats it as non-recoverable: the stored key is cleared and
// the session ends.
var ErrCredentialInvalid = errors.New("api key rejected by provider")

// ProviderError is a structured error the provider returned that does not
// indicate credential invalidity. Sessions survive it; the message is
// surfaced as conversational content.
type ProviderError struct {
	Code    string
	Message string
}

func (e *ProviderError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("provider error: %s", e.Message)
	}
	return fmt.Sprintf("provider error %s: %s", e.Code, e.Message)
}

// Client sends chat requests to the completion provider. The API key is
// passed per call because the credential is owned by the session layer and
// may be replaced or cleared between calls.
type Client interface {
	// Complete sends the system instruction and history and returns the
	// assistant text. Failures are classified: ErrCredentialInvalid, a
	// *ProviderError, or a wrapped transport error.
	Complete(ctx context.Context, apiKey, system string, history []Message) (string, error)

	// Verify probes the provider with a minimal one-shot completion to
	// check that the key works. Any non-error response counts as valid.
	Verify(ctx context.Context, apiKey string) error
}
