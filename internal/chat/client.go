package chat

import "context"

// Client completes one turn against the hosted model.
type Client interface {
	Complete(ctx context.Context, messages []Message, systemInstruction string) (string, error)
}
