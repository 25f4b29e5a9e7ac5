package interfaces

import "context"

// PublishUseCase defines the interactive release publishing flow
type PublishUseCase interface {
	// Publish runs the full publish sequence for a new shortcut version
	Publish(ctx context.Context) error
}
